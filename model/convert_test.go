package model

import "testing"

func TestFromFace3D(t *testing.T) {
	geo := Face3D{
		Boundary: [][]float64{{0, 0, 0}, {10, 0, 0}, {10, 10, 0}, {0, 10, 0}},
	}
	pd, err := FromFace3D("wall_1", geo)
	if err != nil {
		t.Fatal(err)
	}
	if pd.Identifier != "wall_1" {
		t.Fatalf("expected identifier wall_1; got %s", pd.Identifier)
	}
	if pd.NumPoints() != 4 || len(pd.Polys) != 1 {
		t.Fatalf("expected one polygon over 4 points; got %d cells over %d points",
			len(pd.Polys), pd.NumPoints())
	}
	if len(pd.Polys[0]) != 4 {
		t.Fatalf("expected the polygon to keep all 4 vertices; got %d", len(pd.Polys[0]))
	}
}

func TestFromFace3DWithHole(t *testing.T) {
	geo := Face3D{
		Boundary: [][]float64{{0, 0, 0}, {10, 0, 0}, {10, 10, 0}, {0, 10, 0}},
		Holes:    [][][]float64{{{4, 4, 0}, {6, 4, 0}, {6, 6, 0}, {4, 6, 0}}},
	}
	pd, err := FromFace3D("wall_2", geo)
	if err != nil {
		t.Fatal(err)
	}
	if pd.NumPoints() != 8 {
		t.Fatalf("expected 8 points for boundary plus hole; got %d", pd.NumPoints())
	}
	if len(pd.Polys) != 8 {
		t.Fatalf("expected the hole to force triangulation into 8 cells; got %d", len(pd.Polys))
	}
	for _, cell := range pd.Polys {
		if len(cell) != 3 {
			t.Fatalf("expected only triangles; got a %d vertex cell", len(cell))
		}
	}
}

func TestFromFace3DBadVertex(t *testing.T) {
	geo := Face3D{Boundary: [][]float64{{0, 0}, {10, 0, 0}, {10, 10, 0}}}
	expError := "convert: face wall_3: convert: expected an x, y, z triplet; got 2 values"
	_, err := FromFace3D("wall_3", geo)
	if err == nil || err.Error() != expError {
		t.Fatalf("expected to get: %s; got %v", expError, err)
	}
}

func TestFromSensorPoints(t *testing.T) {
	grid := SensorGrid{
		Identifier: "grid_1",
		Sensors: []Sensor{
			{Pos: []float64{0, 0, 1}, Dir: []float64{0, 0, 1}},
			{Pos: []float64{1, 0, 1}, Dir: []float64{0, 0, 1}},
		},
	}
	pd, err := FromSensorPoints(grid)
	if err != nil {
		t.Fatal(err)
	}
	if pd.NumPoints() != 2 || len(pd.Verts) != 2 {
		t.Fatalf("expected 2 vert cells over 2 points; got %d over %d",
			len(pd.Verts), pd.NumPoints())
	}
}

func TestFromMesh3D(t *testing.T) {
	mesh := &Mesh3D{
		Vertices: [][]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
		Faces:    [][]int{{0, 1, 2, 3}},
	}
	pd, err := FromMesh3D("grid_1", mesh)
	if err != nil {
		t.Fatal(err)
	}
	if pd.NumPoints() != 4 || len(pd.Polys) != 1 {
		t.Fatalf("expected one quad over 4 points; got %d over %d", len(pd.Polys), pd.NumPoints())
	}

	mesh.Faces = [][]int{{0, 1, 9}}
	expError := "convert: grid grid_1 mesh face 0 references vertex 9 out of 4"
	_, err = FromMesh3D("grid_1", mesh)
	if err == nil || err.Error() != expError {
		t.Fatalf("expected to get: %s; got %v", expError, err)
	}

	expError = "convert: grid grid_2 has no mesh"
	_, err = FromMesh3D("grid_2", nil)
	if err == nil || err.Error() != expError {
		t.Fatalf("expected to get: %s; got %v", expError, err)
	}
}
