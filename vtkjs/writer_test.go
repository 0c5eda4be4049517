package vtkjs

import (
	"archive/zip"
	"encoding/binary"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/ladybug-tools/honeybee-vtk-go/legend"
	"github.com/ladybug-tools/honeybee-vtk-go/model"
	"github.com/ladybug-tools/honeybee-vtk-go/scene"
)

func testScene(t *testing.T) *scene.Scene {
	t.Helper()
	pd := model.NewPolyData()
	pd.Identifier = "wall_1"
	pd.Points = [][3]float64{{0, 0, 0}, {2, 0, 0}, {2, 0, 3}, {0, 0, 3}}
	pd.Polys = [][]int{{0, 1, 2, 3}}

	ds := model.NewDataSet("Walls", model.DefaultColors["Walls"])
	ds.Data = append(ds.Data, pd)
	ds.DisplayMode = model.ModeSurfaceWithEdges

	s := scene.New()
	s.Actors = append(s.Actors, scene.NewActor(ds))
	s.Cameras = append(s.Cameras, scene.DefaultCamera())
	return s
}

func TestWriteFolder(t *testing.T) {
	dir := t.TempDir()
	if err := WriteFolder(testScene(t), dir); err != nil {
		t.Fatal(err)
	}

	payload, err := os.ReadFile(filepath.Join(dir, "index.json"))
	if err != nil {
		t.Fatal(err)
	}
	var root RootIndex
	if err := json.Unmarshal(payload, &root); err != nil {
		t.Fatal(err)
	}

	if root.Version != 1 {
		t.Fatalf("expected version 1; got %d", root.Version)
	}
	if root.Background != [3]float64{1, 1, 1} {
		t.Fatalf("expected a white background; got %v", root.Background)
	}
	if len(root.Scene) != 1 {
		t.Fatalf("expected 1 scene entry; got %d", len(root.Scene))
	}

	entry := root.Scene[0]
	if entry.Type != "httpDataSetReader" || entry.HttpDataSetReader.URL != "Walls" {
		t.Fatalf("unexpected reader config %+v", entry)
	}
	if entry.ActorRotation != [4]float64{0, 0, 0, 1} {
		t.Fatalf("expected the identity actor rotation; got %v", entry.ActorRotation)
	}
	// SurfaceWithEdges renders as a surface with visible edges.
	if entry.Property.Representation != 2 || entry.Property.EdgeVisibility != 1 {
		t.Fatalf("unexpected representation %+v", entry.Property)
	}
	if entry.Property.PointSize != 5 {
		t.Fatalf("expected point size 5; got %d", entry.Property.PointSize)
	}
	if entry.Mapper.ScalarMode != 4 {
		t.Fatalf("expected scalar mode 4; got %d", entry.Mapper.ScalarMode)
	}
}

func TestDataSetFolderLayout(t *testing.T) {
	dir := t.TempDir()
	if err := WriteFolder(testScene(t), dir); err != nil {
		t.Fatal(err)
	}

	payload, err := os.ReadFile(filepath.Join(dir, "Walls", "index.json"))
	if err != nil {
		t.Fatal(err)
	}
	var index DataSetIndex
	if err := json.Unmarshal(payload, &index); err != nil {
		t.Fatal(err)
	}

	if index.VTKClass != "vtkPolyData" {
		t.Fatalf("expected a vtkPolyData dataset; got %s", index.VTKClass)
	}
	if index.Points == nil || index.Points.Size != 12 || index.Points.DataType != "Float32Array" {
		t.Fatalf("unexpected points array %+v", index.Points)
	}
	if index.Polys == nil || index.Polys.DataType != "Uint32Array" || index.Polys.Size != 5 {
		t.Fatalf("unexpected polys array %+v", index.Polys)
	}

	// The binary file must exist under data/ and carry the
	// little endian payload the ref advertises.
	raw, err := os.ReadFile(filepath.Join(dir, "Walls", "data", index.Polys.Ref.ID))
	if err != nil {
		t.Fatal(err)
	}
	if len(raw) != 5*4 {
		t.Fatalf("expected 20 bytes of poly connectivity; got %d", len(raw))
	}
	if got := binary.LittleEndian.Uint32(raw); got != 4 {
		t.Fatalf("expected the cell to start with its vertex count 4; got %d", got)
	}
}

func TestWriteBundle(t *testing.T) {
	folder := t.TempDir()
	target, err := WriteBundle(testScene(t), folder, "model")
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(target) != "model.vtkjs" {
		t.Fatalf("unexpected bundle name %s", target)
	}

	r, err := zip.OpenReader(target)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	names := map[string]bool{}
	for _, f := range r.File {
		names[f.Name] = true
	}
	if !names["index.json"] || !names["Walls/index.json"] {
		t.Fatalf("expected the bundle to hold the root and dataset indexes; got %v", names)
	}
}

func TestSceneLegendsInRoot(t *testing.T) {
	s := testScene(t)
	param := legend.NewParameter("daylight-factor")
	param.Min, param.Max = 0, 20
	s.Actors[0].DataSet.Legends["daylight-factor"] = param

	dir := t.TempDir()
	if err := WriteFolder(s, dir); err != nil {
		t.Fatal(err)
	}

	payload, err := os.ReadFile(filepath.Join(dir, "index.json"))
	if err != nil {
		t.Fatal(err)
	}
	var root RootIndex
	if err := json.Unmarshal(payload, &root); err != nil {
		t.Fatal(err)
	}
	legends := root.Scene[0].Legends
	if len(legends) != 1 || legends[0].Name != "daylight-factor" {
		t.Fatalf("expected the legend in the root index; got %v", legends)
	}
	if legends[0].Range != [2]float64{0, 20} {
		t.Fatalf("unexpected legend range %v", legends[0].Range)
	}
}
