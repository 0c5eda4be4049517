package model

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ladybug-tools/honeybee-vtk-go/asset"
)

func TestReadHBJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "office.hbjson")
	payload := `{
		"type": "Model",
		"identifier": "office",
		"units": "Meters",
		"orphaned_faces": [{
			"identifier": "wall_1",
			"face_type": "Wall",
			"geometry": {"boundary": [[0, 0, 0], [4, 0, 0], [4, 0, 3], [0, 0, 3]]}
		}]
	}`
	if err := os.WriteFile(path, []byte(payload), 0644); err != nil {
		t.Fatal(err)
	}

	hb, err := ReadHBJSON(path)
	if err != nil {
		t.Fatal(err)
	}
	if hb.Identifier != "office" || hb.Units != "Meters" {
		t.Fatalf("unexpected model %+v", hb)
	}
	if len(hb.OrphanedFaces) != 1 || hb.OrphanedFaces[0].FaceType != "Wall" {
		t.Fatalf("unexpected faces %+v", hb.OrphanedFaces)
	}
	if len(hb.OrphanedFaces[0].Geometry.Boundary) != 4 {
		t.Fatalf("unexpected boundary %+v", hb.OrphanedFaces[0].Geometry)
	}
}

func TestReadHBJSONBadExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "office.obj")
	if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}
	expError := "hbjson: unsupported file format for " + path
	if _, err := ReadHBJSON(path); err == nil || err.Error() != expError {
		t.Fatalf("expected to get: %s; got %v", expError, err)
	}
}

func TestDecodeHBJSONErrors(t *testing.T) {
	expError := "hbjson: expected a Model object; got Room"
	_, err := DecodeHBJSON(asset.NewResourceFromStream("model.hbjson", strings.NewReader(`{"type": "Room"}`)))
	if err == nil || err.Error() != expError {
		t.Fatalf("expected to get: %s; got %v", expError, err)
	}

	_, err = DecodeHBJSON(asset.NewResourceFromStream("model.hbjson", strings.NewReader(`not json`)))
	if err == nil || !strings.HasPrefix(err.Error(), "hbjson: failed to parse model.hbjson:") {
		t.Fatalf("unexpected parse error %v", err)
	}
}
