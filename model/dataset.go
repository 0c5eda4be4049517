package model

import (
	"fmt"

	"github.com/ladybug-tools/honeybee-vtk-go/legend"
)

// DisplayMode controls how a dataset is drawn. The numeric values
// match the vtk.js representation codes the web viewer expects.
type DisplayMode int

const (
	ModePoints           DisplayMode = 0
	ModeWireframe        DisplayMode = 1
	ModeSurface          DisplayMode = 2
	ModeSurfaceWithEdges DisplayMode = 3
	ModeShaded           DisplayMode = 4
)

// ParseDisplayMode maps a CLI name to a display mode.
func ParseDisplayMode(name string) (DisplayMode, error) {
	switch name {
	case "points":
		return ModePoints, nil
	case "wireframe":
		return ModeWireframe, nil
	case "surface":
		return ModeSurface, nil
	case "surfacewithedges", "surface_with_edges":
		return ModeSurfaceWithEdges, nil
	case "shaded":
		return ModeShaded, nil
	}
	return 0, fmt.Errorf("model: unknown display mode '%s'", name)
}

func (m DisplayMode) String() string {
	switch m {
	case ModePoints:
		return "points"
	case ModeWireframe:
		return "wireframe"
	case ModeSurface:
		return "surface"
	case ModeSurfaceWithEdges:
		return "surfacewithedges"
	case ModeShaded:
		return "shaded"
	}
	return fmt.Sprintf("displaymode(%d)", int(m))
}

// Representation returns the vtk.js representation code. Shaded draws
// like a surface; the codes above surface only differ in edge
// rendering, which EdgeVisibility covers.
func (m DisplayMode) Representation() int {
	if m > ModeSurface {
		return int(ModeSurface)
	}
	return int(m)
}

// EdgeVisibility is true for the modes that draw cell edges.
func (m DisplayMode) EdgeVisibility() bool {
	return m == ModeWireframe || m == ModeSurfaceWithEdges
}

// GridOptions selects how sensor grids are loaded from a model.
type GridOptions int

const (
	GridIgnore  GridOptions = 0
	GridSensors GridOptions = 1
	GridMeshes  GridOptions = 2
)

func ParseGridOptions(name string) (GridOptions, error) {
	switch name {
	case "ignore":
		return GridIgnore, nil
	case "points", "sensors":
		return GridSensors, nil
	case "meshes", "mesh":
		return GridMeshes, nil
	}
	return 0, fmt.Errorf("model: unknown grid option '%s'", name)
}

func (g GridOptions) String() string {
	switch g {
	case GridIgnore:
		return "ignore"
	case GridSensors:
		return "points"
	case GridMeshes:
		return "meshes"
	}
	return fmt.Sprintf("gridoptions(%d)", int(g))
}

// DataSet groups the polydata of one model category under a name,
// with the shared display settings the writers read.
type DataSet struct {
	Name        string
	Data        []*PolyData
	Color       legend.Color
	Opacity     float64
	DisplayMode DisplayMode
	// Legend parameters of the result data mounted on this dataset,
	// keyed by array name.
	Legends map[string]*legend.Parameter
}

func NewDataSet(name string, color legend.Color) *DataSet {
	return &DataSet{
		Name:        name,
		Color:       color,
		Opacity:     float64(color.A) / 255,
		DisplayMode: ModeSurface,
		Legends:     map[string]*legend.Parameter{},
	}
}

func (d *DataSet) IsEmpty() bool {
	return len(d.Data) == 0
}

// ColorByName returns the array name the dataset is colored by, or an
// empty string when it is painted with its flat color.
func (d *DataSet) ColorByName() string {
	if len(d.Data) == 0 {
		return ""
	}
	return d.Data[0].ColorByName
}

// ColorBy selects a mounted data array for coloring on every polydata
// in the dataset.
func (d *DataSet) ColorBy(name string, assoc FieldAssociation) error {
	for _, pd := range d.Data {
		if err := pd.ColorBy(name, assoc); err != nil {
			return fmt.Errorf("model: dataset %s: %s", d.Name, err.Error())
		}
	}
	return nil
}

// Bounds of all polydata in the dataset.
func (d *DataSet) Bounds() (min, max [3]float64, ok bool) {
	for _, pd := range d.Data {
		if pd.NumPoints() == 0 {
			continue
		}
		pmin, pmax := pd.Bounds()
		if !ok {
			min, max, ok = pmin, pmax, true
			continue
		}
		for i := 0; i < 3; i++ {
			if pmin[i] < min[i] {
				min[i] = pmin[i]
			}
			if pmax[i] > max[i] {
				max[i] = pmax[i]
			}
		}
	}
	return
}

// FieldRange returns the combined value range of a named array across
// the dataset.
func (d *DataSet) FieldRange(name string, assoc FieldAssociation) (min, max float64, ok bool) {
	for _, pd := range d.Data {
		var arr *DataArray
		if assoc == CellData {
			arr = pd.CellFields[name]
		} else {
			arr = pd.PointFields[name]
		}
		if arr == nil {
			continue
		}
		if !ok {
			min, max, ok = arr.Range[0], arr.Range[1], true
			continue
		}
		if arr.Range[0] < min {
			min = arr.Range[0]
		}
		if arr.Range[1] > max {
			max = arr.Range[1]
		}
	}
	return
}
