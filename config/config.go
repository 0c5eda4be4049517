// Package config parses the JSON config files that mount simulation
// results onto a model and style their legends.
package config

import (
	"encoding/json"
	"fmt"

	"github.com/ladybug-tools/honeybee-vtk-go/asset"
	"github.com/ladybug-tools/honeybee-vtk-go/legend"
	"github.com/ladybug-tools/honeybee-vtk-go/model"
)

// DataConfig is the root of a config file: a list of result sets to
// mount on the model.
type DataConfig struct {
	Data []InputFile `json:"data"`
}

// InputFile describes one folder of simulation results.
type InputFile struct {
	Identifier string `json:"identifier"`
	ObjectType string `json:"object_type"`
	Unit       string `json:"unit"`
	Path       string `json:"path"`
	Hide       bool   `json:"hide"`
	Legend     *LegendConfig `json:"legend_parameters"`
}

// Autocalculate stands in for a numeric field whose value should be
// derived from the data. It decodes from {"type": "Autocalculate"} or
// a plain number.
type Autocalculate struct {
	Value float64
	Auto  bool
}

func (a *Autocalculate) UnmarshalJSON(raw []byte) error {
	var num float64
	if err := json.Unmarshal(raw, &num); err == nil {
		a.Value = num
		a.Auto = false
		return nil
	}
	var obj struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil || obj.Type != "Autocalculate" {
		return fmt.Errorf("config: expected a number or an Autocalculate object; got %s", string(raw))
	}
	a.Auto = true
	return nil
}

func (a Autocalculate) MarshalJSON() ([]byte, error) {
	if a.Auto {
		return json.Marshal(map[string]string{"type": "Autocalculate"})
	}
	return json.Marshal(a.Value)
}

// TextConfig styles legend labels and titles.
type TextConfig struct {
	Color [3]int `json:"color"`
	Size  int    `json:"size"`
	Bold  bool   `json:"bold"`
}

// LegendConfig styles the legend of one result set. All fields are
// optional; zero values fall back to the legend defaults.
type LegendConfig struct {
	ColorSet        string         `json:"color_set"`
	Min             *Autocalculate `json:"min"`
	Max             *Autocalculate `json:"max"`
	HideLegend      bool           `json:"hide_legend"`
	Orientation     string         `json:"orientation"`
	Width           float64        `json:"width"`
	Height          float64        `json:"height"`
	Position        []float64      `json:"position"`
	ColorCount      int            `json:"color_count"`
	LabelCount      int            `json:"label_count"`
	DecimalCount    string         `json:"decimal_count"`
	PrecedingLabels bool           `json:"preceding_labels"`
	LabelText       *TextConfig    `json:"label_parameters"`
	TitleText       *TextConfig    `json:"title_parameters"`
}

// Load a config file from a local path or a http/https URL.
func Load(path string) (*DataConfig, error) {
	res, err := asset.NewResource(path, nil)
	if err != nil {
		return nil, err
	}
	defer res.Close()
	return Decode(res)
}

// Decode a config file from a resource stream.
func Decode(res *asset.Resource) (*DataConfig, error) {
	var cfg DataConfig
	if err := json.NewDecoder(res).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %s", res.Path(), err.Error())
	}
	for i := range cfg.Data {
		if err := cfg.Data[i].Validate(); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

// Validate an input file entry.
func (f *InputFile) Validate() error {
	if f.Identifier == "" {
		return fmt.Errorf("config: every data entry needs an identifier")
	}
	if f.Path == "" {
		return fmt.Errorf("config: data entry '%s' needs a path to its results", f.Identifier)
	}
	if f.ObjectType != "" && f.ObjectType != "grid" {
		return fmt.Errorf(
			"config: data entry '%s' has unsupported object type '%s'; only 'grid' data can be mounted",
			f.Identifier, f.ObjectType)
	}
	if f.Legend != nil {
		if err := f.Legend.Validate(f.Identifier); err != nil {
			return err
		}
	}
	return nil
}

func inBounds(v float64) bool {
	return v >= 0.05 && v <= 0.95
}

// Validate the legend settings of a data entry. Width, height and
// position are fractions of the viewport and must leave room for the
// legend to stay inside it.
func (l *LegendConfig) Validate(owner string) error {
	if l.ColorSet != "" && !legend.ColorSet(l.ColorSet).Valid() {
		return fmt.Errorf("config: data entry '%s' uses unknown color set '%s'", owner, l.ColorSet)
	}
	switch l.Orientation {
	case "", "horizontal", "vertical":
	default:
		return fmt.Errorf(
			"config: data entry '%s' has orientation '%s'; use 'horizontal' or 'vertical'",
			owner, l.Orientation)
	}
	switch l.DecimalCount {
	case "", "default", "integer", "decimal_two", "decimal_three":
	default:
		return fmt.Errorf("config: data entry '%s' has unknown decimal count '%s'", owner, l.DecimalCount)
	}

	if l.Width != 0 && !inBounds(l.Width) {
		return fmt.Errorf("config: legend width accepts a value from 0.05 to 0.95 inclusive")
	}
	if l.Height != 0 && !inBounds(l.Height) {
		return fmt.Errorf("config: legend height accepts a value from 0.05 to 0.95 inclusive")
	}
	if len(l.Position) > 0 {
		if len(l.Position) != 2 {
			return fmt.Errorf("config: legend position needs exactly 2 values; got %d", len(l.Position))
		}
		if !inBounds(l.Position[0]) || !inBounds(l.Position[1]) {
			return fmt.Errorf("config: legend position accepts values from 0.05 to 0.95 inclusive")
		}
		// A wide legend far to the right or a tall one far up would
		// run off the viewport.
		if l.Width >= 0.5 && l.Position[0] >= 0.5 {
			return fmt.Errorf("config: a legend of width %g cannot start at x %g and stay inside the viewport",
				l.Width, l.Position[0])
		}
		if l.Height >= 0.5 && l.Position[1] >= 0.5 {
			return fmt.Errorf("config: a legend of height %g cannot start at y %g and stay inside the viewport",
				l.Height, l.Position[1])
		}
	}

	if l.Min != nil && l.Max != nil && !l.Min.Auto && !l.Max.Auto {
		if l.Min.Value == 0 && l.Max.Value == 0 {
			return fmt.Errorf(
				"config: data entry '%s' has both min and max set to 0; remove them to autocalculate the range",
				owner)
		}
		if l.Min.Value >= l.Max.Value {
			return fmt.Errorf(
				"config: data entry '%s' has min %g that is not less than max %g",
				owner, l.Min.Value, l.Max.Value)
		}
	}
	return nil
}

// Parameter converts the legend settings into legend parameters,
// filling unset fields with the defaults.
func (f *InputFile) Parameter() *legend.Parameter {
	p := legend.NewParameter(f.Identifier)
	p.Unit = f.Unit

	l := f.Legend
	if l == nil {
		p.Min, p.Max = 0, 0
		p.AutoMin, p.AutoMax = true, true
		return p
	}

	if l.ColorSet != "" {
		p.ColorSet = legend.ColorSet(l.ColorSet)
	}
	p.HideLegend = l.HideLegend
	if l.Orientation == string(legend.Vertical) {
		p.Orientation = legend.Vertical
		p.Position = [2]float64{0.9, 0.5}
		p.Width, p.Height = 0.05, 0.45
	}
	if l.Width != 0 {
		p.Width = l.Width
	}
	if l.Height != 0 {
		p.Height = l.Height
	}
	if len(l.Position) == 2 {
		p.Position = [2]float64{l.Position[0], l.Position[1]}
	}
	if l.ColorCount != 0 {
		p.ColorCount = l.ColorCount
	}
	if l.LabelCount != 0 {
		p.LabelCount = l.LabelCount
	}
	if l.DecimalCount != "" && l.DecimalCount != "default" {
		p.Format = legend.LabelFormat(l.DecimalCount)
	}
	p.PrecedingLabels = l.PrecedingLabels
	if l.LabelText != nil {
		p.LabelFont = toFont(l.LabelText, p.LabelFont)
	}
	if l.TitleText != nil {
		p.TitleFont = toFont(l.TitleText, p.TitleFont)
	}

	// Each bound resolves on its own: an explicit value is kept and an
	// unset or Autocalculate bound is derived from the data when the
	// results are mounted.
	p.Min, p.Max = 0, 0
	p.AutoMin, p.AutoMax = true, true
	if l.Min != nil && !l.Min.Auto {
		p.Min = l.Min.Value
		p.AutoMin = false
	}
	if l.Max != nil && !l.Max.Auto {
		p.Max = l.Max.Value
		p.AutoMax = false
	}
	return p
}

func toFont(t *TextConfig, def legend.Font) legend.Font {
	f := def
	f.Color = legend.Color{
		R: uint8(t.Color[0]), G: uint8(t.Color[1]), B: uint8(t.Color[2]), A: 255,
	}
	if t.Size != 0 {
		f.Size = t.Size
	}
	f.Bold = t.Bold
	return f
}

// Apply mounts every result set of the config onto the model.
// Relative result paths resolve against the folder of the config file.
func Apply(cfg *DataConfig, m *model.Model, relTo string, validate bool) error {
	for i := range cfg.Data {
		entry := &cfg.Data[i]
		path := asset.ResolvePath(entry.Path, relTo)
		param := entry.Parameter()
		if err := m.MountResults(path, entry.Identifier, param, validate); err != nil {
			return err
		}
		if entry.Hide {
			param.HideLegend = true
		}
	}
	return nil
}
