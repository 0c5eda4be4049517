package render

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"sort"

	"github.com/ladybug-tools/honeybee-vtk-go/legend"
	"github.com/ladybug-tools/honeybee-vtk-go/model"
	"github.com/ladybug-tools/honeybee-vtk-go/scene"
	"github.com/ladybug-tools/honeybee-vtk-go/types"
)

// Renderer draws a scene from its cameras into raster images.
type Renderer struct {
	scene *scene.Scene
	opts  Options
}

func New(s *scene.Scene, opts Options) (*Renderer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if len(s.Actors) == 0 {
		return nil, fmt.Errorf("render: the scene has no actors")
	}
	return &Renderer{scene: s, opts: opts}, nil
}

// WriteImages renders one image per scene camera into folder. The
// camera identifier names each file. The written paths are returned
// in camera order.
func (r *Renderer) WriteImages(folder string) ([]string, error) {
	if len(r.scene.Cameras) == 0 {
		return nil, fmt.Errorf("render: the scene has no cameras")
	}
	if err := os.MkdirAll(folder, 0755); err != nil {
		return nil, err
	}

	var paths []string
	for _, cam := range r.scene.Cameras {
		img, err := r.Render(cam)
		if err != nil {
			return nil, err
		}
		path := filepath.Join(folder, fmt.Sprintf("%s.%s", cam.Identifier, extFor(r.opts.Format)))
		if err := WriteImage(img, path, r.opts.Format); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func extFor(format ImageFormat) string {
	if format == FormatJPEG {
		return "jpg"
	}
	return "png"
}

// WriteImage encodes an image to disk in the given format.
func WriteImage(img image.Image, path string, format ImageFormat) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch format {
	case FormatJPEG:
		return jpeg.Encode(f, img, &jpeg.Options{Quality: 95})
	default:
		return png.Encode(f, img)
	}
}

// drawItem is one cell ready for rasterization, with its view depth
// for translucency sorting.
type drawItem struct {
	tris   [][3]screenVert
	lines  [][2]screenVert
	points []screenVert
	color  color.NRGBA
	opaque bool
	depth  float32
}

// Render draws the scene from one camera.
func (r *Renderer) Render(cam *scene.Camera) (*image.NRGBA, error) {
	bg := r.background()
	fb := newFrameBuffer(r.opts.Width, r.opts.Height, bg)

	view, proj, err := r.matrices(cam)
	if err != nil {
		return nil, err
	}
	vp := proj.Mul4(view)

	var opaque, translucent []*drawItem
	for _, actor := range r.scene.Actors {
		for _, pd := range actor.DataSet.Data {
			items, err := r.buildItems(actor, pd, vp)
			if err != nil {
				return nil, err
			}
			for _, item := range items {
				if item.opaque {
					opaque = append(opaque, item)
				} else {
					translucent = append(translucent, item)
				}
			}
		}
	}

	for _, item := range opaque {
		r.drawItem(fb, item)
	}
	// Translucent cells draw back to front over the opaque pass.
	sort.Slice(translucent, func(i, j int) bool {
		return translucent[i].depth > translucent[j].depth
	})
	for _, item := range translucent {
		r.drawItem(fb, item)
	}

	if r.opts.ShowLegends {
		for _, param := range r.scene.Legends() {
			if err := DrawScalarBar(fb.color, param); err != nil {
				return nil, err
			}
		}
	}
	return fb.color, nil
}

func (r *Renderer) background() color.NRGBA {
	if r.opts.Transparent {
		return color.NRGBA{}
	}
	bg := r.scene.Background
	if r.opts.Background != nil {
		bg = *r.opts.Background
	}
	return color.NRGBA{bg.R, bg.G, bg.B, 255}
}

// matrices builds the view and projection matrices for a camera,
// deriving clipping distances and the parallel scale from the scene
// bounds when the camera leaves them open.
func (r *Renderer) matrices(cam *scene.Camera) (view, proj types.Mat4, err error) {
	eye := vec3(cam.Position)
	dir := vec3(cam.Direction)
	if dir.Len() == 0 {
		return view, proj, fmt.Errorf("render: camera %s has a zero view direction", cam.Identifier)
	}
	focal := eye.Add(dir)
	up := vec3(cam.UpVector)
	if up.Len() == 0 {
		up = types.Vec3{0, 0, 1}
	}
	view = types.LookAtV(eye, focal, up)

	near := float32(cam.ClippingRange[0])
	far := float32(cam.ClippingRange[1])
	radius := float32(1)
	if min, max, ok := r.scene.Bounds(); ok {
		center := types.Vec3{
			float32(min[0]+max[0]) / 2,
			float32(min[1]+max[1]) / 2,
			float32(min[2]+max[2]) / 2,
		}
		half := types.Vec3{
			float32(max[0]-min[0]) / 2,
			float32(max[1]-min[1]) / 2,
			float32(max[2]-min[2]) / 2,
		}
		radius = half.Len()
		if radius == 0 {
			radius = 1
		}
		if far <= near {
			dist := center.Sub(eye).Len()
			far = dist + radius*2
			near = (dist - radius*2) / 100
			if near < far/10000 {
				near = far / 10000
			}
		}
	}
	if far <= near {
		near, far = 0.1, 1000
	}

	aspect := float32(r.opts.Width) / float32(r.opts.Height)
	if cam.Projection == scene.Parallel {
		scale := float32(cam.ParallelScale)
		if scale <= 0 {
			scale = radius
		}
		proj = types.Ortho4(-scale*aspect, scale*aspect, -scale, scale, near, far)
	} else {
		angle := float32(cam.ViewAngle)
		if angle <= 0 {
			angle = 60
		}
		proj = types.Perspective4(angle, aspect, near, far)
	}
	return view, proj, nil
}

func vec3(v [3]float64) types.Vec3 {
	return types.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}

// buildItems projects the cells of one polydata and pairs them with
// their resolved colors for the current display mode.
func (r *Renderer) buildItems(actor *scene.Actor, pd *model.PolyData, vp types.Mat4) ([]*drawItem, error) {
	mode := actor.DataSet.DisplayMode
	flat := actor.Color()
	opacity := actor.Opacity()

	lut, arr, err := r.lookup(actor, pd)
	if err != nil {
		return nil, err
	}

	clip := make([]types.Vec4, len(pd.Points))
	for i, p := range pd.Points {
		clip[i] = vp.Mul4x1(types.Vec4{float32(p[0]), float32(p[1]), float32(p[2]), 1})
	}

	edgeColor := color.NRGBA{0, 0, 0, 255}
	var items []*drawItem

	// Cell order is verts, lines, polys; data arrays index cells in
	// that order.
	cellIdx := 0
	cellColor := func(pointIdx int) color.NRGBA {
		if lut != nil {
			var v float64
			if pd.ColorByField == model.PointData {
				v = arr.Values[pointIdx]
			} else {
				v = arr.Values[cellIdx]
			}
			c := lut.Color(v)
			return color.NRGBA{c.R, c.G, c.B, uint8(opacity*255 + 0.5)}
		}
		return color.NRGBA{flat.R, flat.G, flat.B, uint8(opacity*255 + 0.5)}
	}

	for _, cell := range pd.Verts {
		for _, idx := range cell {
			if sv, ok := r.toScreen(clip[idx]); ok {
				items = append(items, &drawItem{
					points: []screenVert{sv},
					color:  cellColor(idx),
					opaque: true,
					depth:  sv.z,
				})
			}
		}
		cellIdx++
	}

	for _, cell := range pd.Lines {
		item := &drawItem{color: cellColor(cell[0]), opaque: true}
		for i := 0; i+1 < len(cell); i++ {
			a, ok1 := r.toScreen(clip[cell[i]])
			b, ok2 := r.toScreen(clip[cell[i+1]])
			if ok1 && ok2 {
				item.lines = append(item.lines, [2]screenVert{a, b})
				item.depth = a.z
			}
		}
		if len(item.lines) > 0 {
			items = append(items, item)
		}
		cellIdx++
	}

	for _, cell := range pd.Polys {
		if len(cell) < 3 {
			cellIdx++
			continue
		}
		c := cellColor(cell[0])
		item := &drawItem{color: c, opaque: c.A == 255}

		if mode == model.ModePoints {
			for _, idx := range cell {
				if sv, ok := r.toScreen(clip[idx]); ok {
					item.points = append(item.points, sv)
					item.depth = sv.z
				}
			}
		} else {
			if mode != model.ModeWireframe {
				shaded := shade(c, pd, cell)
				item.color = shaded
				for k := 1; k < len(cell)-1; k++ {
					tri := [3]types.Vec4{clip[cell[0]], clip[cell[k]], clip[cell[k+1]]}
					for _, clipped := range clipNear(tri) {
						v0, ok0 := r.toScreen(clipped[0])
						v1, ok1 := r.toScreen(clipped[1])
						v2, ok2 := r.toScreen(clipped[2])
						if ok0 && ok1 && ok2 {
							item.tris = append(item.tris, [3]screenVert{v0, v1, v2})
							item.depth = (v0.z + v1.z + v2.z) / 3
						}
					}
				}
			}
			if mode.EdgeVisibility() {
				wire := &drawItem{color: edgeColor, opaque: true}
				if mode == model.ModeWireframe {
					wire.color = color.NRGBA{c.R, c.G, c.B, 255}
				}
				for i := range cell {
					a, ok1 := r.toScreen(clip[cell[i]])
					b, ok2 := r.toScreen(clip[cell[(i+1)%len(cell)]])
					if ok1 && ok2 {
						wire.lines = append(wire.lines, [2]screenVert{a, b})
						wire.depth = a.z
					}
				}
				if len(wire.lines) > 0 {
					items = append(items, wire)
				}
			}
		}
		if len(item.tris) > 0 || len(item.points) > 0 {
			items = append(items, item)
		}
		cellIdx++
	}
	return items, nil
}

// lookup resolves the lookup table and data array a polydata is
// colored by, or nil when it paints with its flat color.
func (r *Renderer) lookup(actor *scene.Actor, pd *model.PolyData) (*legend.LookupTable, *model.DataArray, error) {
	if actor.Monochrome {
		return nil, nil, nil
	}
	arr := pd.ActiveField()
	if arr == nil {
		return nil, nil, nil
	}
	param, ok := actor.DataSet.Legends[arr.Name]
	if !ok {
		return nil, nil, nil
	}
	lut, err := param.BuildLookupTable()
	if err != nil {
		return nil, nil, err
	}
	return lut, arr, nil
}

func (r *Renderer) toScreen(clip types.Vec4) (screenVert, bool) {
	if clip[3] <= 0 {
		return screenVert{}, false
	}
	ndcX := clip[0] / clip[3]
	ndcY := clip[1] / clip[3]
	ndcZ := clip[2] / clip[3]
	return screenVert{
		x: (ndcX + 1) / 2 * float32(r.opts.Width),
		y: (1 - ndcY) / 2 * float32(r.opts.Height),
		z: ndcZ,
	}, true
}

// shade darkens a cell color by the slope of its face so adjacent
// faces of a box stay distinguishable without lighting.
func shade(c color.NRGBA, pd *model.PolyData, cell []int) color.NRGBA {
	var n [3]float64
	for i, idx := range cell {
		cur := pd.Points[idx]
		next := pd.Points[cell[(i+1)%len(cell)]]
		n[0] += (cur[1] - next[1]) * (cur[2] + next[2])
		n[1] += (cur[2] - next[2]) * (cur[0] + next[0])
		n[2] += (cur[0] - next[0]) * (cur[1] + next[1])
	}
	l := math.Sqrt(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])
	if l == 0 {
		return c
	}
	// Faces lit from a fixed overhead direction.
	light := [3]float64{0.3, 0.25, 0.92}
	dot := math.Abs(n[0]*light[0]+n[1]*light[1]+n[2]*light[2]) / l
	factor := 0.55 + 0.45*dot
	return color.NRGBA{
		R: uint8(float64(c.R)*factor + 0.5),
		G: uint8(float64(c.G)*factor + 0.5),
		B: uint8(float64(c.B)*factor + 0.5),
		A: c.A,
	}
}

func (r *Renderer) drawItem(fb *frameBuffer, item *drawItem) {
	for _, tri := range item.tris {
		fb.fillTriangle(tri[0], tri[1], tri[2], item.color, item.opaque)
	}
	for _, line := range item.lines {
		fb.drawLine(line[0], line[1], item.color)
	}
	for _, p := range item.points {
		fb.drawPoint(p, 5, item.color)
	}
}
