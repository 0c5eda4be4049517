package model

import "fmt"

func toPoint3(v []float64) ([3]float64, error) {
	if len(v) != 3 {
		return [3]float64{}, fmt.Errorf("convert: expected an x, y, z triplet; got %d values", len(v))
	}
	return [3]float64{v[0], v[1], v[2]}, nil
}

func toLoop(loop [][]float64) ([][3]float64, error) {
	out := make([][3]float64, len(loop))
	for i, v := range loop {
		p, err := toPoint3(v)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

// Convert a planar face into polydata. Faces without holes become a
// single polygon cell; faces with holes are triangulated so the holes
// actually cut through the surface.
func FromFace3D(identifier string, geo Face3D) (*PolyData, error) {
	boundary, err := toLoop(geo.Boundary)
	if err != nil {
		return nil, fmt.Errorf("convert: face %s: %s", identifier, err.Error())
	}
	if len(boundary) < 3 {
		return nil, fmt.Errorf("convert: face %s has fewer than 3 boundary vertices", identifier)
	}

	pd := NewPolyData()
	pd.Identifier = identifier
	pd.Points = append(pd.Points, boundary...)

	if len(geo.Holes) == 0 {
		cell := make([]int, len(boundary))
		for i := range cell {
			cell[i] = i
		}
		pd.Polys = append(pd.Polys, cell)
		return pd, nil
	}

	holes := make([][][3]float64, len(geo.Holes))
	for i, h := range geo.Holes {
		hole, err := toLoop(h)
		if err != nil {
			return nil, fmt.Errorf("convert: face %s: %s", identifier, err.Error())
		}
		holes[i] = hole
		pd.Points = append(pd.Points, hole...)
	}

	tris, err := TriangulateFace(boundary, holes)
	if err != nil {
		return nil, fmt.Errorf("convert: face %s: %s", identifier, err.Error())
	}
	for _, tri := range tris {
		pd.Polys = append(pd.Polys, []int{tri[0], tri[1], tri[2]})
	}
	return pd, nil
}

// Convert the sensors of a grid into a point cloud polydata. Each
// sensor position becomes a vert cell so writers and renderers treat
// it as visible geometry.
func FromSensorPoints(grid SensorGrid) (*PolyData, error) {
	pd := NewPolyData()
	pd.Identifier = grid.Identifier
	for i, sensor := range grid.Sensors {
		p, err := toPoint3(sensor.Pos)
		if err != nil {
			return nil, fmt.Errorf("convert: grid %s sensor %d: %s", grid.Identifier, i, err.Error())
		}
		pd.Points = append(pd.Points, p)
		pd.Verts = append(pd.Verts, []int{i})
	}
	return pd, nil
}

// Convert the mesh of a sensor grid into polydata. Mesh faces may be
// triangles or quads.
func FromMesh3D(identifier string, mesh *Mesh3D) (*PolyData, error) {
	if mesh == nil {
		return nil, fmt.Errorf("convert: grid %s has no mesh", identifier)
	}

	pd := NewPolyData()
	pd.Identifier = identifier
	for i, v := range mesh.Vertices {
		p, err := toPoint3(v)
		if err != nil {
			return nil, fmt.Errorf("convert: grid %s vertex %d: %s", identifier, i, err.Error())
		}
		pd.Points = append(pd.Points, p)
	}

	for i, face := range mesh.Faces {
		if len(face) < 3 {
			return nil, fmt.Errorf("convert: grid %s mesh face %d has fewer than 3 vertices", identifier, i)
		}
		for _, idx := range face {
			if idx < 0 || idx >= len(pd.Points) {
				return nil, fmt.Errorf("convert: grid %s mesh face %d references vertex %d out of %d",
					identifier, i, idx, len(pd.Points))
			}
		}
		cell := make([]int, len(face))
		copy(cell, face)
		pd.Polys = append(pd.Polys, cell)
	}
	return pd, nil
}

// Convert the base geometry faces of a grid into one joined polydata.
func FromBaseGeometry(grid SensorGrid) (*PolyData, error) {
	if len(grid.BaseGeometry) == 0 {
		return nil, fmt.Errorf("convert: grid %s has no base geometry", grid.Identifier)
	}
	parts := make([]*PolyData, len(grid.BaseGeometry))
	for i, geo := range grid.BaseGeometry {
		pd, err := FromFace3D(grid.Identifier, geo)
		if err != nil {
			return nil, err
		}
		parts[i] = pd
	}
	joined := JoinPolyData(parts...)
	joined.Identifier = grid.Identifier
	return joined, nil
}
