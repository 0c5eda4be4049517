// Package scene assembles actors, cameras and legends into the scene
// description the exporters and the renderer consume.
package scene

import (
	"bufio"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ladybug-tools/honeybee-vtk-go/asset"
	"github.com/ladybug-tools/honeybee-vtk-go/model"
	"github.com/ladybug-tools/honeybee-vtk-go/types"
)

// Projection of a camera. The names match the radiance view types.
type Projection string

const (
	Perspective Projection = "v"
	Parallel    Projection = "l"
)

// Camera describes a viewpoint into the scene.
type Camera struct {
	Identifier string
	Position   [3]float64
	Direction  [3]float64
	UpVector   [3]float64
	// Horizontal view angle in degrees. Only used by perspective
	// cameras.
	ViewAngle  float64
	Projection Projection
	// Near and far clipping distances. Both zero means the renderer
	// picks them from the scene bounds.
	ClippingRange [2]float64
	// Half height of the viewport in world units for parallel
	// cameras. Zero means fit to the scene bounds.
	ParallelScale float64
}

// The default viewpoint: looking straight down from above the origin.
func DefaultCamera() *Camera {
	return &Camera{
		Identifier: "camera",
		Position:   [3]float64{0, 0, 100},
		Direction:  [3]float64{0, 0, -1},
		UpVector:   [3]float64{0, 1, 0},
		ViewAngle:  60,
		Projection: Perspective,
	}
}

// FocalPoint is the point the camera looks at.
func (c *Camera) FocalPoint() [3]float64 {
	return [3]float64{
		c.Position[0] + c.Direction[0],
		c.Position[1] + c.Direction[1],
		c.Position[2] + c.Direction[2],
	}
}

// Create a camera from a HBJSON radiance view.
func FromView(view model.View) (*Camera, error) {
	c := DefaultCamera()
	c.Identifier = view.Identifier
	if len(view.Position) == 3 {
		copy(c.Position[:], view.Position)
	}
	if len(view.Direction) == 3 {
		copy(c.Direction[:], view.Direction)
	}
	if len(view.UpVector) == 3 {
		copy(c.UpVector[:], view.UpVector)
	}
	if view.HSize > 0 {
		c.ViewAngle = view.HSize
	}
	switch view.Type {
	case "", "v":
		c.Projection = Perspective
	case "l":
		c.Projection = Parallel
	default:
		return nil, fmt.Errorf("scene: view %s has unsupported type '%s'", view.Identifier, view.Type)
	}
	return c, nil
}

// FromViewFile parses a radiance view file. A view file holds one
// line of rvu style options, e.g.
//
//	rvu -vtv -vp 0 0 50 -vd 0 0 -1 -vu 0 1 0 -vh 60 -vv 60
func FromViewFile(path string) (*Camera, error) {
	res, err := asset.NewResource(path, nil)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	c := DefaultCamera()
	name := res.RemotePath()
	name = strings.TrimSuffix(name, ".vf")
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	c.Identifier = name

	scanner := bufio.NewScanner(res)
	scanner.Buffer(make([]byte, 64*1024), 64*1024)
	for scanner.Scan() {
		tokens := strings.Fields(scanner.Text())
		for i := 0; i < len(tokens); i++ {
			switch tok := tokens[i]; {
			case tok == "-vtv":
				c.Projection = Perspective
			case tok == "-vtl":
				c.Projection = Parallel
			case tok == "-vp" || tok == "-vd" || tok == "-vu":
				if i+3 >= len(tokens) {
					return nil, fmt.Errorf("scene: %s: option %s needs 3 values", path, tok)
				}
				var vec [3]float64
				for j := 0; j < 3; j++ {
					v, err := strconv.ParseFloat(tokens[i+1+j], 64)
					if err != nil {
						return nil, fmt.Errorf("scene: %s: bad value for %s: %s", path, tok, err.Error())
					}
					vec[j] = v
				}
				switch tok {
				case "-vp":
					c.Position = vec
				case "-vd":
					c.Direction = vec
				case "-vu":
					c.UpVector = vec
				}
				i += 3
			case tok == "-vh":
				if i+1 >= len(tokens) {
					return nil, fmt.Errorf("scene: %s: option -vh needs a value", path)
				}
				v, err := strconv.ParseFloat(tokens[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("scene: %s: bad value for -vh: %s", path, err.Error())
				}
				c.ViewAngle = v
				i++
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return c, nil
}

// AerialCameras builds four cameras looking down at the model along
// the horizontal diagonals. The focal point sits at the top of the
// model and the cameras keep the whole model in view.
func AerialCameras(min, max [3]float64) []*Camera {
	center := [3]float64{
		(min[0] + max[0]) / 2,
		(min[1] + max[1]) / 2,
		max[2],
	}
	span := math.Max(max[0]-min[0], math.Max(max[1]-min[1], max[2]-min[2]))
	if span == 0 {
		span = 1
	}

	names := []string{"north_east", "north_west", "south_west", "south_east"}

	// Start at the north east diagonal and rotate the offset a quarter
	// turn around the z axis for each of the other viewpoints.
	base := types.XYZ(float32(span), float32(span), float32(span))
	cameras := make([]*Camera, len(names))
	for i := range names {
		q := types.QuatFromAxisAngle(types.XYZ(0, 0, 1), float32(i)*math.Pi/2)
		offset := q.Rotate(base)
		pos := [3]float64{
			center[0] + float64(offset[0]),
			center[1] + float64(offset[1]),
			center[2] + float64(offset[2]),
		}
		cameras[i] = &Camera{
			Identifier: names[i],
			Position:   pos,
			Direction: [3]float64{
				center[0] - pos[0],
				center[1] - pos[1],
				center[2] - pos[2],
			},
			UpVector:   [3]float64{0, 0, 1},
			ViewAngle:  60,
			Projection: Perspective,
		}
	}
	return cameras
}

// GridCamera places a parallel camera right above a sensor grid so
// its result image covers just that grid. The identifier combines the
// result name and the grid identifier.
func GridCamera(data string, grid *model.PolyData) *Camera {
	min, max := grid.Bounds()
	center := [3]float64{
		(min[0] + max[0]) / 2,
		(min[1] + max[1]) / 2,
		(min[2] + max[2]) / 2,
	}
	scale := math.Max(max[0]-min[0], max[1]-min[1]) / 2
	if scale == 0 {
		scale = 2
	}
	return &Camera{
		Identifier:    fmt.Sprintf("%s_%s", data, grid.Identifier),
		Position:      [3]float64{center[0], center[1], center[2] + 3},
		Direction:     [3]float64{0, 0, -1},
		UpVector:      [3]float64{0, 1, 0},
		Projection:    Parallel,
		ClippingRange: [2]float64{0, 4},
		ParallelScale: scale,
	}
}
