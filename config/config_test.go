package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ladybug-tools/honeybee-vtk-go/asset"
	"github.com/ladybug-tools/honeybee-vtk-go/legend"
)

func decode(t *testing.T, payload string) (*DataConfig, error) {
	t.Helper()
	return Decode(asset.NewResourceFromStream("config.json", strings.NewReader(payload)))
}

func TestDecodeConfig(t *testing.T) {
	cfg, err := decode(t, `{
		"data": [{
			"identifier": "daylight-factor",
			"object_type": "grid",
			"unit": "Percentage",
			"path": "results/daylight",
			"legend_parameters": {
				"color_set": "nuanced",
				"min": 0,
				"max": 20,
				"orientation": "vertical",
				"label_count": 6
			}
		}]
	}`)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Data) != 1 {
		t.Fatalf("expected 1 data entry; got %d", len(cfg.Data))
	}

	param := cfg.Data[0].Parameter()
	if param.ColorSet != legend.Nuanced {
		t.Fatalf("expected the nuanced color set; got %s", param.ColorSet)
	}
	if param.Orientation != legend.Vertical {
		t.Fatal("expected a vertical legend")
	}
	if param.Min != 0 || param.Max != 20 {
		t.Fatalf("expected range [0 20]; got [%g %g]", param.Min, param.Max)
	}
	if param.LabelCount != 6 {
		t.Fatalf("expected 6 labels; got %d", param.LabelCount)
	}
	if param.Unit != "Percentage" {
		t.Fatalf("expected the unit to carry over; got '%s'", param.Unit)
	}
}

func TestAutocalculateRange(t *testing.T) {
	cfg, err := decode(t, `{
		"data": [{
			"identifier": "udi",
			"path": "results/udi",
			"legend_parameters": {
				"min": {"type": "Autocalculate"},
				"max": {"type": "Autocalculate"}
			}
		}]
	}`)
	if err != nil {
		t.Fatal(err)
	}
	param := cfg.Data[0].Parameter()
	if param.Min != 0 || param.Max != 0 {
		t.Fatal("expected an autocalculated range to start as zero so the mount derives it")
	}
	if !param.AutoMin || !param.AutoMax {
		t.Fatal("expected both bounds to be marked for autocalculation")
	}
}

func TestAutocalculateSingleBound(t *testing.T) {
	cfg, err := decode(t, `{
		"data": [{
			"identifier": "udi",
			"path": "results/udi",
			"legend_parameters": {
				"min": 5,
				"max": {"type": "Autocalculate"}
			}
		}]
	}`)
	if err != nil {
		t.Fatal(err)
	}
	param := cfg.Data[0].Parameter()
	if param.Min != 5 || param.AutoMin {
		t.Fatalf("expected an explicit min of 5; got %g (auto %v)", param.Min, param.AutoMin)
	}
	if !param.AutoMax {
		t.Fatal("expected the max to be marked for autocalculation")
	}
}

func TestValidationErrors(t *testing.T) {
	cases := []struct {
		payload  string
		expError string
	}{
		{
			`{"data": [{"path": "results"}]}`,
			"config: every data entry needs an identifier",
		},
		{
			`{"data": [{"identifier": "res"}]}`,
			"config: data entry 'res' needs a path to its results",
		},
		{
			`{"data": [{"identifier": "res", "path": "r", "object_type": "face"}]}`,
			"config: data entry 'res' has unsupported object type 'face'; only 'grid' data can be mounted",
		},
		{
			`{"data": [{"identifier": "res", "path": "r",
				"legend_parameters": {"min": 5, "max": 2}}]}`,
			"config: data entry 'res' has min 5 that is not less than max 2",
		},
		{
			`{"data": [{"identifier": "res", "path": "r",
				"legend_parameters": {"min": 0, "max": 0}}]}`,
			"config: data entry 'res' has both min and max set to 0; remove them to autocalculate the range",
		},
		{
			`{"data": [{"identifier": "res", "path": "r",
				"legend_parameters": {"width": 0.96}}]}`,
			"config: legend width accepts a value from 0.05 to 0.95 inclusive",
		},
		{
			`{"data": [{"identifier": "res", "path": "r",
				"legend_parameters": {"position": [0.01, 0.5]}}]}`,
			"config: legend position accepts values from 0.05 to 0.95 inclusive",
		},
		{
			`{"data": [{"identifier": "res", "path": "r",
				"legend_parameters": {"width": 0.5, "position": [0.6, 0.1]}}]}`,
			"config: a legend of width 0.5 cannot start at x 0.6 and stay inside the viewport",
		},
		{
			`{"data": [{"identifier": "res", "path": "r",
				"legend_parameters": {"color_set": "neon"}}]}`,
			"config: data entry 'res' uses unknown color set 'neon'",
		},
	}

	for _, c := range cases {
		_, err := decode(t, c.payload)
		if err == nil || err.Error() != c.expError {
			t.Fatalf("expected to get: %s; got %v", c.expError, err)
		}
	}
}

func TestGenerate(t *testing.T) {
	root := t.TempDir()
	if _, err := Generate(root); err == nil {
		t.Fatal("expected an empty tree to produce no config")
	}

	folder := filepath.Join(root, "daylight-factor")
	if err := os.MkdirAll(folder, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(folder, "grids_info.json"), []byte("[]"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Generate(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Data) != 1 {
		t.Fatalf("expected 1 generated entry; got %d", len(cfg.Data))
	}
	entry := cfg.Data[0]
	if entry.Identifier != "daylight-factor" || entry.ObjectType != "grid" || entry.Path != folder {
		t.Fatalf("unexpected generated entry %+v", entry)
	}
}
