package scene

import (
	"github.com/ladybug-tools/honeybee-vtk-go/legend"
	"github.com/ladybug-tools/honeybee-vtk-go/model"
)

// Actor pairs a model dataset with its appearance in the scene.
type Actor struct {
	DataSet *model.DataSet
	// Monochrome overrides the dataset color, for result images that
	// should only show the grids in color.
	Monochrome      bool
	MonochromeColor legend.Color
}

func NewActor(ds *model.DataSet) *Actor {
	return &Actor{DataSet: ds}
}

// Color the actor paints with when no data array is active.
func (a *Actor) Color() legend.Color {
	if a.Monochrome {
		return a.MonochromeColor
	}
	return a.DataSet.Color
}

func (a *Actor) Opacity() float64 {
	if a.Monochrome {
		return float64(a.MonochromeColor.A) / 255
	}
	return a.DataSet.Opacity
}

// Bounds of the actor geometry.
func (a *Actor) Bounds() (min, max [3]float64, ok bool) {
	return a.DataSet.Bounds()
}

func (a *Actor) Centroid() [3]float64 {
	min, max, ok := a.Bounds()
	if !ok {
		return [3]float64{}
	}
	return [3]float64{
		(min[0] + max[0]) / 2,
		(min[1] + max[1]) / 2,
		(min[2] + max[2]) / 2,
	}
}
