package timeseries

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/ladybug-tools/honeybee-vtk-go/legend"
	"github.com/ladybug-tools/honeybee-vtk-go/model"
	"github.com/ladybug-tools/honeybee-vtk-go/render"
	"github.com/ladybug-tools/honeybee-vtk-go/scene"
)

// Step is one extracted timestep folder.
type Step struct {
	Index  int
	Hoy    int
	Folder string
}

// ListSteps finds the timestep folders under a parent folder and
// orders them by index. Folder names follow the "<index>_<hoy>"
// layout ExtractTimesteps writes.
func ListSteps(parent string) ([]Step, error) {
	entries, err := os.ReadDir(parent)
	if err != nil {
		return nil, fmt.Errorf("timeseries: could not read %s: %s", parent, err.Error())
	}

	var steps []Step
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		parts := strings.SplitN(entry.Name(), "_", 2)
		if len(parts) != 2 {
			continue
		}
		index, err1 := strconv.Atoi(parts[0])
		hoy, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil {
			continue
		}
		steps = append(steps, Step{Index: index, Hoy: hoy, Folder: filepath.Join(parent, entry.Name())})
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("timeseries: no timestep folders under %s", parent)
	}
	sort.Slice(steps, func(i, j int) bool { return steps[i].Index < steps[j].Index })
	return steps, nil
}

// ImageOptions controls a timestep image export.
type ImageOptions struct {
	Width  int
	Height int
	// Name of the mounted data, also used in the image file names.
	DataName string
	// Label each image with the date of its timestep.
	Annotate bool
	Legend   *legend.Parameter
}

// ExportImages renders one transparent PNG per grid per timestep into
// target. Images are named "<index>_<hoy>_<grid>.png" so a GIF
// assembly can group them by grid and order them by index.
//
// Only the grids are drawn; each grid gets a parallel camera right
// above it so the frames of one grid line up across timesteps.
func ExportImages(m *model.Model, steps []Step, target string, opts ImageOptions) ([]string, error) {
	if m.Grids.IsEmpty() {
		return nil, fmt.Errorf("timeseries: the model has no grids to export images for")
	}
	if opts.Width <= 0 {
		opts.Width = 1920
	}
	if opts.Height <= 0 {
		opts.Height = 1088
	}
	if opts.DataName == "" {
		return nil, fmt.Errorf("timeseries: the image export needs a data name")
	}
	if err := os.MkdirAll(target, 0755); err != nil {
		return nil, err
	}

	var paths []string
	for _, step := range steps {
		if err := m.MountResults(step.Folder, opts.DataName, opts.Legend, true); err != nil {
			return nil, err
		}
		// The first mount derives the range; reuse it for the rest
		// so colors stay comparable across frames.
		if opts.Legend == nil {
			opts.Legend = m.Grids.Legends[opts.DataName]
		}

		s := scene.New()
		s.Actors = append(s.Actors, scene.NewActor(m.Grids))
		for _, pd := range m.Grids.Data {
			s.Cameras = append(s.Cameras, scene.GridCamera(opts.DataName, pd))
		}

		renderOpts := render.DefaultOptions()
		renderOpts.Width = opts.Width
		renderOpts.Height = opts.Height
		renderOpts.Transparent = true
		renderOpts.ShowLegends = false
		r, err := render.New(s, renderOpts)
		if err != nil {
			return nil, err
		}

		for ci, cam := range s.Cameras {
			img, err := r.Render(cam)
			if err != nil {
				return nil, err
			}
			if opts.Annotate {
				render.DrawText(img, 10, 10, HoyLabel(step.Hoy),
					annotationColor(opts.Legend), opts.Height/30, false)
			}
			grid := m.Grids.Data[ci].Identifier
			path := filepath.Join(target, fmt.Sprintf("%d_%d_%s.png", step.Index, step.Hoy, grid))
			if err := render.WriteImage(img, path, render.FormatPNG); err != nil {
				return nil, err
			}
			paths = append(paths, path)
		}
	}
	return paths, nil
}

func annotationColor(param *legend.Parameter) color.NRGBA {
	if param == nil {
		return color.NRGBA{0, 0, 0, 255}
	}
	c := param.LabelFont.Color
	return color.NRGBA{c.R, c.G, c.B, 255}
}
