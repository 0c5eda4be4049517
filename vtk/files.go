package vtk

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ladybug-tools/honeybee-vtk-go/model"
)

// Format selects the on-disk flavor of the dataset files.
type Format string

const (
	FormatLegacy Format = "vtk"
	FormatXML    Format = "vtp"
)

// WriteModel writes every dataset of a model as one file per dataset
// and zips them into <folder>/<name>.zip. The joined polydata of a
// dataset keeps its name, so the archive holds Walls.vtk, Grids.vtk
// and so on.
func WriteModel(m *model.Model, folder, name string, format Format) (string, error) {
	if format != FormatLegacy && format != FormatXML {
		return "", fmt.Errorf("vtk: unknown file format '%s'", format)
	}
	if err := os.MkdirAll(folder, 0755); err != nil {
		return "", err
	}

	target := filepath.Join(folder, name+".zip")
	f, err := os.Create(target)
	if err != nil {
		return "", err
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, ds := range m.DataSets() {
		joined := model.JoinPolyData(ds.Data...)
		entry, err := zw.Create(fmt.Sprintf("%s.%s", ds.Name, format))
		if err != nil {
			return "", err
		}
		switch format {
		case FormatLegacy:
			err = WriteLegacy(entry, ds.Name, joined)
		case FormatXML:
			err = WriteXML(entry, joined)
		}
		if err != nil {
			return "", fmt.Errorf("vtk: could not write dataset %s: %s", ds.Name, err.Error())
		}
	}
	if err := zw.Close(); err != nil {
		return "", err
	}
	return target, nil
}
