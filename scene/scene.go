package scene

import (
	"fmt"
	"sort"

	"github.com/ladybug-tools/honeybee-vtk-go/legend"
	"github.com/ladybug-tools/honeybee-vtk-go/model"
)

// Scene is the full description of what to draw: actors, cameras, a
// background color and the legends of the mounted results.
type Scene struct {
	Background legend.Color
	Actors     []*Actor
	Cameras    []*Camera
}

func New() *Scene {
	return &Scene{Background: legend.Color{R: 255, G: 255, B: 255, A: 255}}
}

// FromModel builds a scene with one actor per non-empty dataset.
// Cameras come from the model views; a model without views gets the
// four aerial cameras.
func FromModel(m *model.Model) (*Scene, error) {
	s := New()
	for _, ds := range m.DataSets() {
		s.Actors = append(s.Actors, NewActor(ds))
	}
	if len(s.Actors) == 0 {
		return nil, fmt.Errorf("scene: the model has no geometry to display")
	}

	for _, view := range m.Views {
		cam, err := FromView(view)
		if err != nil {
			return nil, err
		}
		s.Cameras = append(s.Cameras, cam)
	}
	if len(s.Cameras) == 0 {
		min, max := m.Bounds()
		s.Cameras = AerialCameras(min, max)
	}
	return s, nil
}

// AddViewFiles loads radiance view files as extra cameras.
func (s *Scene) AddViewFiles(paths []string) error {
	for _, path := range paths {
		cam, err := FromViewFile(path)
		if err != nil {
			return err
		}
		s.Cameras = append(s.Cameras, cam)
	}
	return nil
}

// Bounds of all actors.
func (s *Scene) Bounds() (min, max [3]float64, ok bool) {
	for _, actor := range s.Actors {
		amin, amax, aok := actor.Bounds()
		if !aok {
			continue
		}
		if !ok {
			min, max, ok = amin, amax, true
			continue
		}
		for i := 0; i < 3; i++ {
			if amin[i] < min[i] {
				min[i] = amin[i]
			}
			if amax[i] > max[i] {
				max[i] = amax[i]
			}
		}
	}
	return
}

// Legends collects the legend parameters of all mounted results that
// are not hidden.
func (s *Scene) Legends() []*legend.Parameter {
	var out []*legend.Parameter
	seen := map[string]bool{}
	for _, actor := range s.Actors {
		for name, param := range actor.DataSet.Legends {
			if param.HideLegend || seen[name] {
				continue
			}
			seen[name] = true
			out = append(out, param)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
