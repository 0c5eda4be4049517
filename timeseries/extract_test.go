package timeseries

import (
	"os"
	"path/filepath"
	"testing"
)

func writeAnnualSource(t *testing.T) string {
	t.Helper()
	source := t.TempDir()
	info := `[{"identifier": "grid_1", "full_id": "grid_1", "name": "grid_1", "count": 2}]`
	if err := os.WriteFile(filepath.Join(source, "grids_info.json"), []byte(info), 0644); err != nil {
		t.Fatal(err)
	}
	rows := "1 2 3\n4 5 6\n"
	if err := os.WriteFile(filepath.Join(source, "grid_1.ill"), []byte(rows), 0644); err != nil {
		t.Fatal(err)
	}
	return source
}

func TestExtractTimesteps(t *testing.T) {
	source := writeAnnualSource(t)
	target := t.TempDir()

	p, err := NewPeriod(1, 1, 0, 1, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	folders, err := ExtractTimesteps(source, target, p, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(folders) != 2 {
		t.Fatalf("expected 2 timestep folders; got %d", len(folders))
	}
	if filepath.Base(folders[0]) != "0_0" || filepath.Base(folders[1]) != "1_1" {
		t.Fatalf("unexpected folder names %v", folders)
	}

	payload, err := os.ReadFile(filepath.Join(folders[0], "grid_1.res"))
	if err != nil {
		t.Fatal(err)
	}
	if string(payload) != "1\n4\n" {
		t.Fatalf("unexpected first column %q", payload)
	}
	payload, err = os.ReadFile(filepath.Join(folders[1], "grid_1.res"))
	if err != nil {
		t.Fatal(err)
	}
	if string(payload) != "2\n5\n" {
		t.Fatalf("unexpected second column %q", payload)
	}

	if _, err := os.Stat(filepath.Join(folders[0], "grids_info.json")); err != nil {
		t.Fatal("expected a grids_info.json copy in each timestep folder")
	}
}

func TestExtractTimestepsMissingAnnualFile(t *testing.T) {
	source := t.TempDir()
	info := `[{"identifier": "grid_1", "full_id": "grid_1", "name": "grid_1", "count": 2}]`
	if err := os.WriteFile(filepath.Join(source, "grids_info.json"), []byte(info), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := NewPeriod(1, 1, 0, 1, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	expError := "timeseries: no annual result file for grid 'grid_1' in " + source
	_, err = ExtractTimesteps(source, t.TempDir(), p, "")
	if err == nil || err.Error() != expError {
		t.Fatalf("expected to get: %s; got %v", expError, err)
	}
}

func TestExtractTimestepsShortRow(t *testing.T) {
	source := writeAnnualSource(t)

	p, err := NewPeriod(1, 1, 0, 1, 1, 5)
	if err != nil {
		t.Fatal(err)
	}
	_, err = ExtractTimesteps(source, t.TempDir(), p, "")
	if err == nil {
		t.Fatal("expected a row with too few columns to fail")
	}
}

func TestListSteps(t *testing.T) {
	parent := t.TempDir()
	for _, name := range []string{"10_4114", "2_4106", "0_4104"} {
		if err := os.MkdirAll(filepath.Join(parent, name), 0755); err != nil {
			t.Fatal(err)
		}
	}
	// Stray entries are skipped.
	if err := os.WriteFile(filepath.Join(parent, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	steps, err := ListSteps(parent)
	if err != nil {
		t.Fatal(err)
	}
	if len(steps) != 3 {
		t.Fatalf("expected 3 steps; got %d", len(steps))
	}
	if steps[0].Index != 0 || steps[1].Index != 2 || steps[2].Index != 10 {
		t.Fatalf("expected the steps sorted by index; got %+v", steps)
	}
	if steps[2].Hoy != 4114 {
		t.Fatalf("unexpected hoy %d", steps[2].Hoy)
	}

	empty := t.TempDir()
	expError := "timeseries: no timestep folders under " + empty
	_, err = ListSteps(empty)
	if err == nil || err.Error() != expError {
		t.Fatalf("expected to get: %s; got %v", expError, err)
	}
}
