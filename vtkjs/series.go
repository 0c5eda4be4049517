package vtkjs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ladybug-tools/honeybee-vtk-go/scene"
)

// SeriesStep is one frame of a time series export.
type SeriesStep struct {
	Index int     `json:"index"`
	Hoy   float64 `json:"hoy"`
	File  string  `json:"file"`
}

// SeriesIndex lists the bundles of a time series in playback order.
type SeriesIndex struct {
	Name  string       `json:"name"`
	Steps []SeriesStep `json:"steps"`
}

// WriteSeries writes one vtkjs bundle per scene into folder, plus a
// series.json describing the playback order. The hoys slice pairs an
// hour of the year with each scene and must match its length.
func WriteSeries(scenes []*scene.Scene, hoys []float64, folder, name string) (string, error) {
	if len(scenes) == 0 {
		return "", fmt.Errorf("vtkjs: a series needs at least one scene")
	}
	if len(hoys) != len(scenes) {
		return "", fmt.Errorf("vtkjs: got %d scenes but %d hours of the year", len(scenes), len(hoys))
	}
	if err := os.MkdirAll(folder, 0755); err != nil {
		return "", err
	}

	index := SeriesIndex{Name: name}
	for i, s := range scenes {
		stepName := fmt.Sprintf("%s_%d", name, i)
		path, err := WriteBundle(s, folder, stepName)
		if err != nil {
			return "", err
		}
		index.Steps = append(index.Steps, SeriesStep{
			Index: i,
			Hoy:   hoys[i],
			File:  filepath.Base(path),
		})
	}

	payload, err := json.MarshalIndent(&index, "", "  ")
	if err != nil {
		return "", err
	}
	target := filepath.Join(folder, "series.json")
	if err := os.WriteFile(target, payload, 0644); err != nil {
		return "", err
	}
	return target, nil
}
