package vtkjs

import (
	"bytes"
	_ "embed"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ladybug-tools/honeybee-vtk-go/scene"
)

//go:embed assets/viewer.html
var viewerTemplate []byte

// The placeholder in the viewer template that the base64 encoded
// bundle replaces.
var insertMarker = []byte("<!–– insert ––>")

// WriteHTML writes a standalone HTML viewer at <folder>/<name>.html.
// The vtkjs bundle is embedded in the page as base64, so the file
// works without a web server.
func WriteHTML(s *scene.Scene, folder, name string) (string, error) {
	bundle, err := WriteBundle(s, folder, name)
	if err != nil {
		return "", err
	}
	defer os.Remove(bundle)

	payload, err := os.ReadFile(bundle)
	if err != nil {
		return "", err
	}
	return writeViewer(payload, folder, name)
}

func writeViewer(bundle []byte, folder, name string) (string, error) {
	if !bytes.Contains(viewerTemplate, insertMarker) {
		return "", fmt.Errorf("vtkjs: the viewer template has no insert marker")
	}
	encoded := base64.StdEncoding.EncodeToString(bundle)
	page := bytes.Replace(viewerTemplate, insertMarker, []byte(encoded), 1)

	target := filepath.Join(folder, name+".html")
	if err := os.WriteFile(target, page, 0644); err != nil {
		return "", err
	}
	return target, nil
}
