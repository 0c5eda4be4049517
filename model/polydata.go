package model

import (
	"fmt"
	"math"
)

// FieldAssociation tells whether a data array attaches to the cells or
// the points of a polydata.
type FieldAssociation string

const (
	CellData  FieldAssociation = "cell"
	PointData FieldAssociation = "point"
)

// DataArray is a named array of per-cell or per-point values.
type DataArray struct {
	Name   string
	Values []float64
	// Range of the values as [min, max]. Calculated when the array
	// is attached to a polydata.
	Range [2]float64
}

func computeRange(values []float64) [2]float64 {
	min, max := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if math.IsInf(min, 1) {
		return [2]float64{0, 0}
	}
	return [2]float64{min, max}
}

// PolyData holds points and the connectivity of vertices, lines and
// polygons over them, plus named data arrays. It is the unit of
// geometry every writer consumes.
type PolyData struct {
	// Identifier of the source object, if any.
	Identifier string

	Points [][3]float64
	// Each poly, line or vert cell is a list of point indices.
	Polys [][]int
	Lines [][]int
	Verts [][]int

	CellFields  map[string]*DataArray
	PointFields map[string]*DataArray

	// Name of the array used for coloring, and where it attaches.
	ColorByName  string
	ColorByField FieldAssociation
}

func NewPolyData() *PolyData {
	return &PolyData{
		CellFields:  map[string]*DataArray{},
		PointFields: map[string]*DataArray{},
	}
}

func (p *PolyData) NumPoints() int {
	return len(p.Points)
}

// NumCells counts all vert, line and poly cells.
func (p *PolyData) NumCells() int {
	return len(p.Verts) + len(p.Lines) + len(p.Polys)
}

// AddField attaches a named data array to the cells or points of this
// polydata. The array length must match the cell or point count.
func (p *PolyData) AddField(assoc FieldAssociation, name string, values []float64) error {
	if name == "" {
		return fmt.Errorf("polydata: a data array needs a non-empty name")
	}

	var want int
	switch assoc {
	case CellData:
		want = p.NumCells()
	case PointData:
		want = p.NumPoints()
	default:
		return fmt.Errorf("polydata: unknown field association '%s'", assoc)
	}
	if len(values) != want {
		return fmt.Errorf(
			"polydata: array '%s' has %d values but the polydata has %d %ss",
			name, len(values), want, assoc)
	}

	arr := &DataArray{Name: name, Values: values, Range: computeRange(values)}
	if assoc == CellData {
		p.CellFields[name] = arr
	} else {
		p.PointFields[name] = arr
	}
	return nil
}

// ColorBy marks a data array as the active one for coloring. The array
// must already be attached.
func (p *PolyData) ColorBy(name string, assoc FieldAssociation) error {
	var ok bool
	switch assoc {
	case CellData:
		_, ok = p.CellFields[name]
	case PointData:
		_, ok = p.PointFields[name]
	}
	if !ok {
		return fmt.Errorf("polydata: no %s array named '%s' to color by", assoc, name)
	}
	p.ColorByName = name
	p.ColorByField = assoc
	return nil
}

// ActiveField returns the array selected by ColorBy, or nil.
func (p *PolyData) ActiveField() *DataArray {
	if p.ColorByName == "" {
		return nil
	}
	if p.ColorByField == PointData {
		return p.PointFields[p.ColorByName]
	}
	return p.CellFields[p.ColorByName]
}

// Bounds returns the axis aligned bounding box of the points as min
// and max corners. Both are zero for an empty polydata.
func (p *PolyData) Bounds() (min, max [3]float64) {
	if len(p.Points) == 0 {
		return
	}
	min, max = p.Points[0], p.Points[0]
	for _, pt := range p.Points[1:] {
		for i := 0; i < 3; i++ {
			if pt[i] < min[i] {
				min[i] = pt[i]
			}
			if pt[i] > max[i] {
				max[i] = pt[i]
			}
		}
	}
	return
}

// JoinPolyData appends several polydata into one. Point indices are
// offset as the point lists are concatenated. Only the data arrays
// present on every input survive the join; partial arrays would leave
// cells without values.
func JoinPolyData(inputs ...*PolyData) *PolyData {
	out := NewPolyData()
	if len(inputs) == 0 {
		return out
	}

	cellNames := commonFieldNames(inputs, CellData)
	pointNames := commonFieldNames(inputs, PointData)

	cellValues := map[string][]float64{}
	pointValues := map[string][]float64{}

	for _, in := range inputs {
		offset := len(out.Points)
		out.Points = append(out.Points, in.Points...)
		out.Verts = append(out.Verts, offsetCells(in.Verts, offset)...)
		out.Lines = append(out.Lines, offsetCells(in.Lines, offset)...)
		out.Polys = append(out.Polys, offsetCells(in.Polys, offset)...)

		for _, name := range cellNames {
			cellValues[name] = append(cellValues[name], in.CellFields[name].Values...)
		}
		for _, name := range pointNames {
			pointValues[name] = append(pointValues[name], in.PointFields[name].Values...)
		}
	}

	for _, name := range cellNames {
		out.AddField(CellData, name, cellValues[name])
	}
	for _, name := range pointNames {
		out.AddField(PointData, name, pointValues[name])
	}

	if first := inputs[0]; first.ColorByName != "" {
		out.ColorBy(first.ColorByName, first.ColorByField)
	}
	out.Identifier = inputs[0].Identifier
	return out
}

func commonFieldNames(inputs []*PolyData, assoc FieldAssociation) []string {
	fields := func(p *PolyData) map[string]*DataArray {
		if assoc == CellData {
			return p.CellFields
		}
		return p.PointFields
	}

	var names []string
	for name := range fields(inputs[0]) {
		shared := true
		for _, in := range inputs[1:] {
			if _, ok := fields(in)[name]; !ok {
				shared = false
				break
			}
		}
		if shared {
			names = append(names, name)
		}
	}
	return names
}

func offsetCells(cells [][]int, offset int) [][]int {
	out := make([][]int, len(cells))
	for i, cell := range cells {
		shifted := make([]int, len(cell))
		for j, idx := range cell {
			shifted[j] = idx + offset
		}
		out[i] = shifted
	}
	return out
}
