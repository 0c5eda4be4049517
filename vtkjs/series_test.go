package vtkjs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ladybug-tools/honeybee-vtk-go/scene"
)

func TestWriteSeries(t *testing.T) {
	folder := t.TempDir()
	scenes := []*scene.Scene{testScene(t), testScene(t)}
	target, err := WriteSeries(scenes, []float64{4114, 4115}, folder, "daylight")
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(target) != "series.json" {
		t.Fatalf("unexpected series index path %s", target)
	}

	payload, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	var index SeriesIndex
	if err := json.Unmarshal(payload, &index); err != nil {
		t.Fatal(err)
	}
	if index.Name != "daylight" || len(index.Steps) != 2 {
		t.Fatalf("unexpected series index %+v", index)
	}
	if index.Steps[1].File != "daylight_1.vtkjs" || index.Steps[1].Hoy != 4115 {
		t.Fatalf("unexpected step %+v", index.Steps[1])
	}
	for _, step := range index.Steps {
		if _, err := os.Stat(filepath.Join(folder, step.File)); err != nil {
			t.Fatalf("missing bundle %s", step.File)
		}
	}
}

func TestWriteSeriesErrors(t *testing.T) {
	expError := "vtkjs: a series needs at least one scene"
	if _, err := WriteSeries(nil, nil, t.TempDir(), "x"); err == nil || err.Error() != expError {
		t.Fatalf("expected to get: %s; got %v", expError, err)
	}

	expError = "vtkjs: got 1 scenes but 2 hours of the year"
	_, err := WriteSeries([]*scene.Scene{testScene(t)}, []float64{1, 2}, t.TempDir(), "x")
	if err == nil || err.Error() != expError {
		t.Fatalf("expected to get: %s; got %v", expError, err)
	}
}

func TestWriteHTML(t *testing.T) {
	folder := t.TempDir()
	target, err := WriteHTML(testScene(t), folder, "model")
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(target) != "model.html" {
		t.Fatalf("unexpected viewer path %s", target)
	}

	page, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(page), string(insertMarker)) {
		t.Fatal("expected the insert marker replaced by the bundle")
	}
	// The intermediate bundle is removed once embedded.
	if _, err := os.Stat(filepath.Join(folder, "model.vtkjs")); !os.IsNotExist(err) {
		t.Fatal("expected the standalone bundle cleaned up")
	}
}
