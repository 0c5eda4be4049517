package model

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/ladybug-tools/honeybee-vtk-go/asset"
	"github.com/ladybug-tools/honeybee-vtk-go/legend"
)

// The default dataset colors. They track the honeybee color scheme so
// a translated model looks the same as it does in the CAD plugins.
var DefaultColors = map[string]legend.Color{
	"Walls":         {R: 230, G: 180, B: 60, A: 255},
	"Apertures":     {R: 64, G: 180, B: 255, A: 128},
	"Doors":         {R: 160, G: 150, B: 100, A: 255},
	"Shades":        {R: 120, G: 75, B: 190, A: 255},
	"Floors":        {R: 255, G: 128, B: 128, A: 255},
	"RoofCeilings":  {R: 128, G: 20, B: 20, A: 255},
	"AirBoundaries": {R: 255, G: 255, B: 200, A: 255},
	"Grids":         {R: 236, G: 64, B: 103, A: 255},
}

// Model holds the polydata of a HBJSON model bucketed by category,
// ready for the writers and the renderer.
type Model struct {
	Walls         *DataSet
	Apertures     *DataSet
	Doors         *DataSet
	Shades        *DataSet
	Floors        *DataSet
	RoofCeilings  *DataSet
	AirBoundaries *DataSet
	Grids         *DataSet

	GridOptions GridOptions
	// Views carried over from the HBJSON radiance properties.
	Views []View
	// Sensor grids in model order, kept for result validation.
	SensorGrids []SensorGrid
}

// Create a model from a HBJSON file on disk or over http/https.
func FromHBJSON(path string, gridOptions GridOptions) (*Model, error) {
	hb, err := ReadHBJSON(path)
	if err != nil {
		return nil, err
	}
	return FromHBModel(hb, gridOptions)
}

// Create a model from a decoded HBJSON document.
func FromHBModel(hb *HBModel, gridOptions GridOptions) (*Model, error) {
	m := &Model{
		Walls:         NewDataSet("Walls", DefaultColors["Walls"]),
		Apertures:     NewDataSet("Apertures", DefaultColors["Apertures"]),
		Doors:         NewDataSet("Doors", DefaultColors["Doors"]),
		Shades:        NewDataSet("Shades", DefaultColors["Shades"]),
		Floors:        NewDataSet("Floors", DefaultColors["Floors"]),
		RoofCeilings:  NewDataSet("RoofCeilings", DefaultColors["RoofCeilings"]),
		AirBoundaries: NewDataSet("AirBoundaries", DefaultColors["AirBoundaries"]),
		Grids:         NewDataSet("Grids", DefaultColors["Grids"]),
		GridOptions:   gridOptions,
	}

	for _, room := range hb.Rooms {
		for _, face := range room.Faces {
			if err := m.addFace(face); err != nil {
				return nil, err
			}
		}
		if err := m.addShades(append(room.IndoorShades, room.OutdoorShades...)); err != nil {
			return nil, err
		}
	}
	for _, face := range hb.OrphanedFaces {
		if err := m.addFace(face); err != nil {
			return nil, err
		}
	}
	for _, ap := range hb.OrphanedApertures {
		if err := m.addAperture(ap); err != nil {
			return nil, err
		}
	}
	for _, door := range hb.OrphanedDoors {
		if err := m.addDoor(door); err != nil {
			return nil, err
		}
	}
	if err := m.addShades(hb.OrphanedShades); err != nil {
		return nil, err
	}

	if hb.Properties.Radiance != nil {
		m.Views = hb.Properties.Radiance.Views
		if err := m.loadGrids(hb.Properties.Radiance.SensorGrids); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Model) addFace(face HBFace) error {
	pd, err := FromFace3D(face.Identifier, face.Geometry)
	if err != nil {
		return err
	}

	switch face.FaceType {
	case "Wall":
		m.Walls.Data = append(m.Walls.Data, pd)
	case "Floor":
		m.Floors.Data = append(m.Floors.Data, pd)
	case "RoofCeiling":
		m.RoofCeilings.Data = append(m.RoofCeilings.Data, pd)
	case "AirBoundary":
		m.AirBoundaries.Data = append(m.AirBoundaries.Data, pd)
	default:
		return fmt.Errorf("model: face %s has unknown face type '%s'", face.Identifier, face.FaceType)
	}

	for _, ap := range face.Apertures {
		if err := m.addAperture(ap); err != nil {
			return err
		}
	}
	for _, door := range face.Doors {
		if err := m.addDoor(door); err != nil {
			return err
		}
	}
	return m.addShades(append(face.IndoorShades, face.OutdoorShades...))
}

func (m *Model) addAperture(ap HBAperture) error {
	pd, err := FromFace3D(ap.Identifier, ap.Geometry)
	if err != nil {
		return err
	}
	m.Apertures.Data = append(m.Apertures.Data, pd)
	return m.addShades(append(ap.IndoorShades, ap.OutdoorShades...))
}

func (m *Model) addDoor(door HBDoor) error {
	pd, err := FromFace3D(door.Identifier, door.Geometry)
	if err != nil {
		return err
	}
	m.Doors.Data = append(m.Doors.Data, pd)
	return nil
}

func (m *Model) addShades(shades []HBShade) error {
	for _, shade := range shades {
		pd, err := FromFace3D(shade.Identifier, shade.Geometry)
		if err != nil {
			return err
		}
		m.Shades.Data = append(m.Shades.Data, pd)
	}
	return nil
}

// loadGrids converts sensor grids according to the grid options.
// Grids sharing an identifier are merged into one polydata so result
// files line up with the merged sensor count.
func (m *Model) loadGrids(grids []SensorGrid) error {
	if m.GridOptions == GridIgnore || len(grids) == 0 {
		return nil
	}

	merged := map[string][]SensorGrid{}
	var order []string
	for _, grid := range grids {
		if _, seen := merged[grid.Identifier]; !seen {
			order = append(order, grid.Identifier)
		}
		merged[grid.Identifier] = append(merged[grid.Identifier], grid)
	}

	for _, id := range order {
		var parts []*PolyData
		var sensors []Sensor
		var mesh Mesh3D
		for _, grid := range merged[id] {
			var pd *PolyData
			var err error
			switch m.GridOptions {
			case GridSensors:
				pd, err = FromSensorPoints(grid)
			case GridMeshes:
				pd, err = FromMesh3D(grid.Identifier, grid.Mesh)
			}
			if err != nil {
				return err
			}
			parts = append(parts, pd)
			sensors = append(sensors, grid.Sensors...)
			if grid.Mesh != nil {
				offset := len(mesh.Vertices)
				mesh.Vertices = append(mesh.Vertices, grid.Mesh.Vertices...)
				for _, face := range grid.Mesh.Faces {
					shifted := make([]int, len(face))
					for i, idx := range face {
						shifted[i] = idx + offset
					}
					mesh.Faces = append(mesh.Faces, shifted)
				}
			}
		}

		joined := JoinPolyData(parts...)
		joined.Identifier = id
		m.Grids.Data = append(m.Grids.Data, joined)

		first := merged[id][0]
		combined := SensorGrid{
			Identifier:  id,
			DisplayName: first.DisplayName,
			FullID:      first.FullID,
			Sensors:     sensors,
		}
		if len(mesh.Vertices) > 0 {
			combined.Mesh = &mesh
		}
		m.SensorGrids = append(m.SensorGrids, combined)
	}
	return nil
}

// DataSets returns the non-empty datasets in a stable order.
func (m *Model) DataSets() []*DataSet {
	all := []*DataSet{
		m.Walls, m.Apertures, m.Doors, m.Shades,
		m.Floors, m.RoofCeilings, m.AirBoundaries, m.Grids,
	}
	var out []*DataSet
	for _, ds := range all {
		if ds == nil || ds.IsEmpty() {
			continue
		}
		out = append(out, ds)
	}
	return out
}

// DataSet looks a dataset up by name.
func (m *Model) DataSet(name string) *DataSet {
	for _, ds := range m.DataSets() {
		if ds.Name == name {
			return ds
		}
	}
	return nil
}

// Bounds of all geometry in the model.
func (m *Model) Bounds() (min, max [3]float64) {
	var ok bool
	for _, ds := range m.DataSets() {
		dmin, dmax, dok := ds.Bounds()
		if !dok {
			continue
		}
		if !ok {
			min, max, ok = dmin, dmax, true
			continue
		}
		for i := 0; i < 3; i++ {
			if dmin[i] < min[i] {
				min[i] = dmin[i]
			}
			if dmax[i] > max[i] {
				max[i] = dmax[i]
			}
		}
	}
	return
}

// SetDisplayMode applies a display mode to every non-grid dataset.
func (m *Model) SetDisplayMode(mode DisplayMode) {
	for _, ds := range m.DataSets() {
		if ds == m.Grids {
			continue
		}
		ds.DisplayMode = mode
	}
}

// SetGridDisplayMode applies a display mode to the grids dataset.
func (m *Model) SetGridDisplayMode(mode DisplayMode) {
	m.Grids.DisplayMode = mode
}

// GridInfo is one entry of a grids_info.json file.
type GridInfo struct {
	Identifier string `json:"identifier"`
	FullID     string `json:"full_id"`
	Name       string `json:"name"`
	Count      int    `json:"count"`
}

// ReadGridsInfo loads a grids_info.json next to result files.
func ReadGridsInfo(path string) ([]GridInfo, error) {
	res, err := asset.NewResource(path, nil)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	var info []GridInfo
	if err := json.NewDecoder(res).Decode(&info); err != nil {
		return nil, fmt.Errorf("model: failed to parse %s: %s", res.Path(), err.Error())
	}
	return info, nil
}

// MountResults loads a folder of simulation results and attaches the
// values to the grids dataset under the given name.
//
// The folder must hold a grids_info.json and one result file per grid
// with the grid identifier as the file stem. Each file carries one
// value per line: one line per sensor when grids are loaded as points
// and one line per mesh face otherwise.
func (m *Model) MountResults(folder, name string, param *legend.Parameter, validate bool) error {
	if m.Grids.IsEmpty() {
		return fmt.Errorf("model: no grids are loaded; results for '%s' have nowhere to mount", name)
	}

	files, info, err := collectResultFiles(folder)
	if err != nil {
		return err
	}
	if validate {
		if err := m.validateResults(folder, files, info); err != nil {
			return err
		}
	}

	assoc := CellData
	if m.GridOptions == GridSensors {
		assoc = PointData
	}

	for _, pd := range m.Grids.Data {
		path, ok := files[pd.Identifier]
		if !ok {
			return fmt.Errorf("model: no result file for grid '%s' in %s", pd.Identifier, folder)
		}
		values, err := readResultValues(path)
		if err != nil {
			return err
		}
		if err := pd.AddField(assoc, name, values); err != nil {
			return err
		}
		if err := pd.ColorBy(name, assoc); err != nil {
			return err
		}
	}

	if param == nil {
		param = legend.NewParameter(name)
		param.AutoMin, param.AutoMax = true, true
	}
	// An equal min and max also means the caller wants the range
	// derived from the data.
	autoMin := param.AutoMin || param.Min == param.Max
	autoMax := param.AutoMax || param.Min == param.Max
	if autoMin || autoMax {
		min, max, ok := m.Grids.FieldRange(name, assoc)
		if !ok {
			return fmt.Errorf("model: no values found for '%s'", name)
		}
		if autoMin {
			param.Min = min
			param.AutoMin = false
		}
		if autoMax {
			param.Max = max
			param.AutoMax = false
		}
	}
	m.Grids.Legends[name] = param
	return nil
}

// collectResultFiles maps grid identifiers to result file paths. Every
// file in the folder other than grids_info.json counts as a result
// file, whatever its extension.
func collectResultFiles(folder string) (map[string]string, []GridInfo, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, nil, fmt.Errorf("model: could not read results folder: %s", err.Error())
	}

	var info []GridInfo
	files := map[string]string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if entry.Name() == "grids_info.json" {
			info, err = ReadGridsInfo(filepath.Join(folder, entry.Name()))
			if err != nil {
				return nil, nil, err
			}
			continue
		}
		stem := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		files[stem] = filepath.Join(folder, entry.Name())
	}
	if info == nil {
		return nil, nil, fmt.Errorf("model: %s has no grids_info.json", folder)
	}
	return files, info, nil
}

// validateResults checks that the result folder matches the loaded
// grids: same number of files as grids, matching identifiers, and one
// value per sensor or mesh face.
func (m *Model) validateResults(folder string, files map[string]string, info []GridInfo) error {
	if len(files) != len(info) {
		return fmt.Errorf(
			"model: %s has %d result files but grids_info.json lists %d grids",
			folder, len(files), len(info))
	}

	loaded := map[string]*PolyData{}
	for _, pd := range m.Grids.Data {
		loaded[pd.Identifier] = pd
	}

	var missing []string
	for _, gi := range info {
		id := gi.FullID
		if id == "" {
			id = gi.Identifier
		}
		pd, ok := loaded[id]
		if !ok {
			pd, ok = loaded[gi.Identifier]
		}
		if !ok {
			missing = append(missing, gi.Identifier)
			continue
		}

		path, ok := files[gi.Identifier]
		if !ok {
			return fmt.Errorf("model: no result file for grid '%s' in %s", gi.Identifier, folder)
		}
		lines, err := countLines(path)
		if err != nil {
			return err
		}

		want := pd.NumPoints()
		unit := "sensors"
		if m.GridOptions != GridSensors {
			want = pd.NumCells()
			unit = "mesh faces"
		}
		if lines != want {
			return fmt.Errorf(
				"model: %s has %d values but grid '%s' has %d %s",
				path, lines, gi.Identifier, want, unit)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf(
			"model: grids_info.json lists grids that are not in the model: %s",
			strings.Join(missing, ", "))
	}
	return nil
}

func readResultValues(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var values []float64
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, fmt.Errorf("model: %s: bad value '%s': %s", path, line, err.Error())
		}
		values = append(values, v)
	}
	return values, scanner.Err()
}

func countLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	count := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) != "" {
			count++
		}
	}
	return count, scanner.Err()
}
