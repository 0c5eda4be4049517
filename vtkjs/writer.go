package vtkjs

import (
	"crypto/md5"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"

	"github.com/ladybug-tools/honeybee-vtk-go/model"
	"github.com/ladybug-tools/honeybee-vtk-go/scene"
)

// WriteBundle writes a scene as a zipped vtk.js bundle at
// <folder>/<name>.vtkjs and returns its path.
func WriteBundle(s *scene.Scene, folder, name string) (string, error) {
	if err := os.MkdirAll(folder, 0755); err != nil {
		return "", err
	}
	staging, err := os.MkdirTemp("", "vtkjs-*")
	if err != nil {
		return "", err
	}
	defer os.RemoveAll(staging)

	if err := WriteFolder(s, staging); err != nil {
		return "", err
	}

	target := filepath.Join(folder, name+".vtkjs")
	if err := zipFolder(staging, target); err != nil {
		return "", err
	}
	return target, nil
}

// WriteFolder writes the unzipped bundle layout: one folder per
// dataset plus the root index.json.
func WriteFolder(s *scene.Scene, dir string) error {
	root := RootIndex{
		Version:    1,
		Background: s.Background.Decimal(),
	}

	var camera *scene.Camera
	if len(s.Cameras) > 0 {
		camera = s.Cameras[0]
	} else {
		camera = scene.DefaultCamera()
	}
	root.Camera = SceneCamera{
		FocalPoint: camera.FocalPoint(),
		Position:   camera.Position,
		ViewUp:     camera.UpVector,
	}
	if min, max, ok := s.Bounds(); ok {
		root.CenterOfRotation = [3]float64{
			(min[0] + max[0]) / 2,
			(min[1] + max[1]) / 2,
			(min[2] + max[2]) / 2,
		}
	}

	legends := sceneLegends(s)
	for i, actor := range s.Actors {
		ds := actor.DataSet
		joined := model.JoinPolyData(ds.Data...)
		if err := writeDataSet(dir, ds.Name, joined); err != nil {
			return err
		}

		entry := SceneEntry{
			Name:              ds.Name,
			Type:              "httpDataSetReader",
			HttpDataSetReader: DataSetReader{URL: ds.Name},
			Actor: ActorTransform{
				Scale: [3]float64{1, 1, 1},
			},
			ActorRotation: [4]float64{0, 0, 0, 1},
			Mapper: SceneMapper{
				ColorByArrayName: joined.ColorByName,
				ColorMode:        0,
				ScalarMode:       4,
			},
			Property: SceneProperty{
				Representation: ds.DisplayMode.Representation(),
				EdgeVisibility: boolToInt(ds.DisplayMode.EdgeVisibility()),
				DiffuseColor:   actor.Color().Decimal(),
				PointSize:      5,
				Opacity:        actor.Opacity(),
			},
		}
		// The legends ride on the first entry so the viewer finds
		// them in one place.
		if i == 0 {
			entry.Legends = legends
		}
		root.Scene = append(root.Scene, entry)
	}

	payload, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "index.json"), payload, 0644)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func sceneLegends(s *scene.Scene) []SceneLegend {
	var out []SceneLegend
	for _, param := range s.Legends() {
		lut, err := param.BuildLookupTable()
		if err != nil {
			continue
		}
		colors := make([][3]float64, len(lut.Table))
		for i, c := range lut.Table {
			colors[i] = c.Decimal()
		}
		out = append(out, SceneLegend{
			Name:        param.Name,
			Unit:        param.Unit,
			Colors:      colors,
			Range:       [2]float64{param.Min, param.Max},
			Orientation: string(param.Orientation),
			Position:    param.Position,
			Width:       param.Width,
			Height:      param.Height,
			LabelCount:  param.LabelCount,
		})
	}
	return out
}

// writeDataSet writes one polydata folder: index.json plus the binary
// arrays under data/, each named by the md5 of its content.
func writeDataSet(dir, name string, pd *model.PolyData) error {
	base := filepath.Join(dir, name)
	dataDir := filepath.Join(base, "data")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return err
	}

	index := DataSetIndex{
		VTKClass: "vtkPolyData",
		Metadata: map[string]string{"name": name},
	}

	coords := make([]float64, 0, pd.NumPoints()*3)
	for _, p := range pd.Points {
		coords = append(coords, p[0], p[1], p[2])
	}
	points, err := writeFloatArray(dataDir, "vtkPoints", "_points", 3, coords)
	if err != nil {
		return err
	}
	index.Points = points

	if index.Verts, err = writeCellArray(dataDir, "_verts", pd.Verts); err != nil {
		return err
	}
	if index.Lines, err = writeCellArray(dataDir, "_lines", pd.Lines); err != nil {
		return err
	}
	if index.Polys, err = writeCellArray(dataDir, "_polys", pd.Polys); err != nil {
		return err
	}

	if index.PointData, err = writeAttributes(dataDir, pd.PointFields, pd, model.PointData); err != nil {
		return err
	}
	if index.CellData, err = writeAttributes(dataDir, pd.CellFields, pd, model.CellData); err != nil {
		return err
	}

	payload, err := json.MarshalIndent(&index, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(base, "index.json"), payload, 0644)
}

func writeAttributes(dataDir string, fields map[string]*model.DataArray, pd *model.PolyData, assoc model.FieldAssociation) (*Attributes, error) {
	if len(fields) == 0 {
		return nil, nil
	}

	attrs := &Attributes{VTKClass: "vtkDataSetAttributes"}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	// Stable order with the active array first keeps the viewer's
	// initial coloring deterministic.
	active := ""
	if pd.ColorByField == assoc {
		active = pd.ColorByName
	}
	sortNamesActiveFirst(names, active)

	for i, name := range names {
		arr, err := writeFloatArray(dataDir, "vtkDataArray", name, 1, fields[name].Values)
		if err != nil {
			return nil, err
		}
		attrs.Arrays = append(attrs.Arrays, AttributeArray{Data: arr})
		if name == active {
			attrs.ActiveScalars = i
		}
	}
	return attrs, nil
}

func sortNamesActiveFirst(names []string, active string) {
	sort.SliceStable(names, func(i, j int) bool {
		if names[i] == active {
			return true
		}
		if names[j] == active {
			return false
		}
		return names[i] < names[j]
	})
}

func writeFloatArray(dataDir, vtkClass, name string, components int, values []float64) (*TypedArray, error) {
	payload := make([]byte, 4*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(payload[i*4:], math.Float32bits(float32(v)))
	}
	id, err := writeDataFile(dataDir, payload)
	if err != nil {
		return nil, err
	}
	return &TypedArray{
		VTKClass:           vtkClass,
		Name:               name,
		NumberOfComponents: components,
		DataType:           "Float32Array",
		Size:               len(values),
		Ref:                &DataRef{Encode: "LittleEndian", BasePath: "data", ID: id},
	}, nil
}

// writeCellArray writes cells in the vtk.js layout: each cell is its
// point count followed by the point indices.
func writeCellArray(dataDir, name string, cells [][]int) (*TypedArray, error) {
	if len(cells) == 0 {
		return nil, nil
	}
	var flat []uint32
	for _, cell := range cells {
		flat = append(flat, uint32(len(cell)))
		for _, idx := range cell {
			flat = append(flat, uint32(idx))
		}
	}

	payload := make([]byte, 4*len(flat))
	for i, v := range flat {
		binary.LittleEndian.PutUint32(payload[i*4:], v)
	}
	id, err := writeDataFile(dataDir, payload)
	if err != nil {
		return nil, err
	}
	return &TypedArray{
		VTKClass:           "vtkCellArray",
		Name:               name,
		NumberOfComponents: 1,
		DataType:           "Uint32Array",
		Size:               len(flat),
		Ref:                &DataRef{Encode: "LittleEndian", BasePath: "data", ID: id},
	}, nil
}

func writeDataFile(dataDir string, payload []byte) (string, error) {
	sum := md5.Sum(payload)
	id := hex.EncodeToString(sum[:])
	path := filepath.Join(dataDir, id)
	if _, err := os.Stat(path); err == nil {
		return id, nil
	}
	if err := os.WriteFile(path, payload, 0644); err != nil {
		return "", fmt.Errorf("vtkjs: could not write data file: %s", err.Error())
	}
	return id, nil
}
