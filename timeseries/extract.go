package timeseries

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ladybug-tools/honeybee-vtk-go/model"
)

// ExtractTimesteps slices annual result files into one folder per
// timestep under target.
//
// The source folder holds a grids_info.json and one annual file per
// grid: a row per sensor with whitespace separated values, one column
// per hour of the year. Each timestep folder is named
// "<index>_<hoy>" and holds a copy of grids_info.json plus a .res
// file per grid with the hoy column, one value per line, ready to
// mount as grid results.
//
// gridsInfo may point at a grids_info.json somewhere else; when empty
// the one inside the source folder is used.
func ExtractTimesteps(source, target string, p Period, gridsInfo string) ([]string, error) {
	if gridsInfo == "" {
		gridsInfo = filepath.Join(source, "grids_info.json")
	}
	info, err := model.ReadGridsInfo(gridsInfo)
	if err != nil {
		return nil, err
	}
	annualFiles, err := annualFilesByStem(source)
	if err != nil {
		return nil, err
	}

	hoys := p.Hoys()
	if len(hoys) == 0 {
		return nil, fmt.Errorf("timeseries: the period selects no timesteps")
	}

	infoPayload, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, err
	}

	var folders []string
	for i, hoy := range hoys {
		folder := filepath.Join(target, fmt.Sprintf("%d_%d", i, hoy))
		if err := os.MkdirAll(folder, 0755); err != nil {
			return nil, err
		}
		if err := os.WriteFile(filepath.Join(folder, "grids_info.json"), infoPayload, 0644); err != nil {
			return nil, err
		}
		folders = append(folders, folder)
	}

	for _, gi := range info {
		path, ok := annualFiles[gi.Identifier]
		if !ok {
			return nil, fmt.Errorf("timeseries: no annual result file for grid '%s' in %s", gi.Identifier, source)
		}
		columns, err := readAnnualColumns(path, hoys)
		if err != nil {
			return nil, err
		}
		for i, folder := range folders {
			if err := writeColumn(filepath.Join(folder, gi.Identifier+".res"), columns[i]); err != nil {
				return nil, err
			}
		}
	}
	return folders, nil
}

func annualFilesByStem(folder string) (map[string]string, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("timeseries: could not read %s: %s", folder, err.Error())
	}
	files := map[string]string{}
	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == "grids_info.json" {
			continue
		}
		stem := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		files[stem] = filepath.Join(folder, entry.Name())
	}
	return files, nil
}

// readAnnualColumns extracts the selected hour columns from an annual
// file. The result is one slice per hoy, each with one value per
// sensor row.
func readAnnualColumns(path string, hoys []int) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	columns := make([][]float64, len(hoys))
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 1024*1024), 16*1024*1024)
	row := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		for i, hoy := range hoys {
			if hoy >= len(fields) {
				return nil, fmt.Errorf(
					"timeseries: %s row %d has %d columns but hour %d was requested",
					path, row, len(fields), hoy)
			}
			v, err := strconv.ParseFloat(fields[hoy], 64)
			if err != nil {
				return nil, fmt.Errorf("timeseries: %s row %d: bad value '%s'", path, row, fields[hoy])
			}
			columns[i] = append(columns[i], v)
		}
		row++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if row == 0 {
		return nil, fmt.Errorf("timeseries: %s holds no result rows", path)
	}
	return columns, nil
}

func writeColumn(path string, values []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, v := range values {
		fmt.Fprintf(w, "%g\n", v)
	}
	return w.Flush()
}
