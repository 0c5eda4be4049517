package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ladybug-tools/honeybee-vtk-go/legend"
)

func quadGeometry(z float64) Face3D {
	return Face3D{
		Boundary: [][]float64{{0, 0, z}, {10, 0, z}, {10, 10, z}, {0, 10, z}},
	}
}

func testHBModel() *HBModel {
	return &HBModel{
		Type: "Model",
		Rooms: []Room{{
			Identifier: "room_1",
			Faces: []HBFace{
				{
					Identifier: "wall_1",
					FaceType:   "Wall",
					Geometry:   quadGeometry(0),
					Apertures: []HBAperture{
						{Identifier: "window_1", Geometry: quadGeometry(0)},
					},
				},
				{Identifier: "floor_1", FaceType: "Floor", Geometry: quadGeometry(0)},
				{Identifier: "roof_1", FaceType: "RoofCeiling", Geometry: quadGeometry(3)},
			},
			OutdoorShades: []HBShade{
				{Identifier: "shade_1", Geometry: quadGeometry(4)},
			},
		}},
		Properties: ModelProperties{
			Radiance: &RadianceProperties{
				SensorGrids: []SensorGrid{
					{
						Identifier: "grid_1",
						Sensors: []Sensor{
							{Pos: []float64{1, 1, 1}}, {Pos: []float64{2, 1, 1}},
						},
						Mesh: &Mesh3D{
							Vertices: [][]float64{{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}},
							Faces:    [][]int{{0, 1, 2}, {0, 2, 3}},
						},
					},
					{
						Identifier: "grid_1",
						Sensors:    []Sensor{{Pos: []float64{3, 1, 1}}},
						Mesh: &Mesh3D{
							Vertices: [][]float64{{2, 0, 1}, {3, 0, 1}, {3, 1, 1}},
							Faces:    [][]int{{0, 1, 2}},
						},
					},
				},
				Views: []View{
					{Identifier: "street_view", Position: []float64{0, -10, 2},
						Direction: []float64{0, 1, 0}, UpVector: []float64{0, 0, 1}, Type: "v"},
				},
			},
		},
	}
}

func TestFromHBModelDatasets(t *testing.T) {
	m, err := FromHBModel(testHBModel(), GridIgnore)
	if err != nil {
		t.Fatal(err)
	}

	checks := []struct {
		ds   *DataSet
		want int
	}{
		{m.Walls, 1},
		{m.Apertures, 1},
		{m.Floors, 1},
		{m.RoofCeilings, 1},
		{m.Shades, 1},
		{m.Doors, 0},
		{m.Grids, 0},
	}
	for _, c := range checks {
		if len(c.ds.Data) != c.want {
			t.Fatalf("expected %d objects in %s; got %d", c.want, c.ds.Name, len(c.ds.Data))
		}
	}
	if len(m.Views) != 1 || m.Views[0].Identifier != "street_view" {
		t.Fatalf("expected the model views to be carried over; got %v", m.Views)
	}
}

func TestFromHBModelUnknownFaceType(t *testing.T) {
	hb := testHBModel()
	hb.Rooms[0].Faces[0].FaceType = "Roof"
	expError := "model: face wall_1 has unknown face type 'Roof'"
	_, err := FromHBModel(hb, GridIgnore)
	if err == nil || err.Error() != expError {
		t.Fatalf("expected to get: %s; got %v", expError, err)
	}
}

func TestGridsMergeOnIdentifier(t *testing.T) {
	m, err := FromHBModel(testHBModel(), GridMeshes)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Grids.Data) != 1 {
		t.Fatalf("expected grids with the same identifier to merge into 1 polydata; got %d", len(m.Grids.Data))
	}
	pd := m.Grids.Data[0]
	if pd.NumPoints() != 7 || len(pd.Polys) != 3 {
		t.Fatalf("expected 3 merged mesh faces over 7 points; got %d over %d",
			len(pd.Polys), pd.NumPoints())
	}
	if len(m.SensorGrids) != 1 || len(m.SensorGrids[0].Sensors) != 3 {
		t.Fatal("expected the merged sensor grid to combine the sensors")
	}
}

func TestSetDisplayMode(t *testing.T) {
	m, err := FromHBModel(testHBModel(), GridMeshes)
	if err != nil {
		t.Fatal(err)
	}
	m.SetDisplayMode(ModeWireframe)
	if m.Walls.DisplayMode != ModeWireframe {
		t.Fatal("expected the wall display mode to change")
	}
	if m.Grids.DisplayMode == ModeWireframe {
		t.Fatal("expected the grids to keep their own display mode")
	}
	m.SetGridDisplayMode(ModeSurfaceWithEdges)
	if m.Grids.DisplayMode != ModeSurfaceWithEdges {
		t.Fatal("expected the grid display mode to change")
	}
}

func writeResults(t *testing.T, values string) string {
	t.Helper()
	folder := t.TempDir()
	info := `[{"identifier": "grid_1", "full_id": "grid_1", "count": 3}]`
	if err := os.WriteFile(filepath.Join(folder, "grids_info.json"), []byte(info), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(folder, "grid_1.res"), []byte(values), 0644); err != nil {
		t.Fatal(err)
	}
	return folder
}

func TestMountResults(t *testing.T) {
	m, err := FromHBModel(testHBModel(), GridMeshes)
	if err != nil {
		t.Fatal(err)
	}

	folder := writeResults(t, "1.5\n2.5\n4.5\n")
	if err := m.MountResults(folder, "daylight-factor", nil, true); err != nil {
		t.Fatal(err)
	}

	pd := m.Grids.Data[0]
	arr := pd.CellFields["daylight-factor"]
	if arr == nil || len(arr.Values) != 3 {
		t.Fatalf("expected 3 mounted cell values; got %v", arr)
	}
	if pd.ColorByName != "daylight-factor" {
		t.Fatal("expected the mounted data to become the active scalars")
	}

	param := m.Grids.Legends["daylight-factor"]
	if param == nil {
		t.Fatal("expected a legend parameter for the mounted data")
	}
	if param.Min != 1.5 || param.Max != 4.5 {
		t.Fatalf("expected the range to autocalculate to [1.5 4.5]; got [%g %g]", param.Min, param.Max)
	}
}

func TestMountResultsExplicitMinAutoMax(t *testing.T) {
	m, err := FromHBModel(testHBModel(), GridMeshes)
	if err != nil {
		t.Fatal(err)
	}

	param := legend.NewParameter("daylight-factor")
	param.Min, param.Max = 2, 0
	param.AutoMax = true

	folder := writeResults(t, "1.5\n2.5\n4.5\n")
	if err := m.MountResults(folder, "daylight-factor", param, true); err != nil {
		t.Fatal(err)
	}
	if param.Min != 2 || param.Max != 4.5 {
		t.Fatalf("expected the explicit min to hold and the max to come from the data; got [%g %g]",
			param.Min, param.Max)
	}
	if param.AutoMax {
		t.Fatal("expected the filled bound to stop autocalculating")
	}
}

func TestDataSetsZeroValue(t *testing.T) {
	var m Model
	if ds := m.DataSets(); len(ds) != 0 {
		t.Fatalf("expected a zero model to report no datasets; got %d", len(ds))
	}
	if min, max := m.Bounds(); min != max {
		t.Fatalf("expected empty bounds; got %v %v", min, max)
	}
}

func TestMountResultsCountMismatch(t *testing.T) {
	m, err := FromHBModel(testHBModel(), GridMeshes)
	if err != nil {
		t.Fatal(err)
	}

	folder := writeResults(t, "1.5\n2.5\n")
	path := filepath.Join(folder, "grid_1.res")
	expError := "model: " + path + " has 2 values but grid 'grid_1' has 3 mesh faces"
	err = m.MountResults(folder, "daylight-factor", nil, true)
	if err == nil || err.Error() != expError {
		t.Fatalf("expected to get: %s; got %v", expError, err)
	}
}

func TestMountResultsSensorCount(t *testing.T) {
	m, err := FromHBModel(testHBModel(), GridSensors)
	if err != nil {
		t.Fatal(err)
	}

	// 3 merged sensors need 3 point values.
	folder := writeResults(t, "1\n2\n3\n")
	if err := m.MountResults(folder, "irradiance", nil, true); err != nil {
		t.Fatal(err)
	}
	if arr := m.Grids.Data[0].PointFields["irradiance"]; arr == nil || len(arr.Values) != 3 {
		t.Fatal("expected the results to mount as point data in sensors mode")
	}
}

func TestMountResultsNoGrids(t *testing.T) {
	m, err := FromHBModel(testHBModel(), GridIgnore)
	if err != nil {
		t.Fatal(err)
	}
	expError := "model: no grids are loaded; results for 'res' have nowhere to mount"
	err = m.MountResults(t.TempDir(), "res", nil, true)
	if err == nil || err.Error() != expError {
		t.Fatalf("expected to get: %s; got %v", expError, err)
	}
}
