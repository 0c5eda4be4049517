// Package legend models scalar-bar legends and the color ramps used to
// map simulation results to colors.
package legend

import (
	"fmt"
	"math"
)

// Orientation of a legend in the scene.
type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

// LabelFormat controls how the numbers on a legend are printed.
type LabelFormat string

const (
	FormatDefault      LabelFormat = "default"
	FormatInteger      LabelFormat = "integer"
	FormatDecimalTwo   LabelFormat = "decimal_two"
	FormatDecimalThree LabelFormat = "decimal_three"
)

// Format a label value according to the label format.
func (f LabelFormat) Format(v float64) string {
	switch f {
	case FormatInteger:
		return fmt.Sprintf("%d", int(math.Round(v)))
	case FormatDecimalTwo:
		return fmt.Sprintf("%.2f", v)
	case FormatDecimalThree:
		return fmt.Sprintf("%.3f", v)
	default:
		return fmt.Sprintf("%.3g", v)
	}
}

// Font settings for legend labels and titles.
type Font struct {
	Color Color
	Size  int
	Bold  bool
}

// Parameter describes a scalar-bar legend: its color ramp, value range
// and layout inside the viewport. Position, width and height are
// fractions of the viewport size.
type Parameter struct {
	Name     string
	Unit     string
	ColorSet ColorSet
	Min      float64
	Max      float64
	// AutoMin and AutoMax mark bounds that should be derived from the
	// mounted data instead of the values above. Mounting fills the
	// marked bound and clears its flag.
	AutoMin     bool
	AutoMax     bool
	HideLegend  bool
	Orientation Orientation
	Position    [2]float64
	Width       float64
	Height      float64
	ColorCount  int
	LabelCount  int
	Format      LabelFormat
	// Labels and title precede the color bar when set.
	PrecedingLabels bool
	LabelFont       Font
	TitleFont       Font
}

// Create a legend parameter with the defaults that match the vtk
// scalar bar settings.
func NewParameter(name string) *Parameter {
	return &Parameter{
		Name:        name,
		ColorSet:    Ecotect,
		Min:         0,
		Max:         100,
		Orientation: Horizontal,
		Position:    [2]float64{0.5, 0.1},
		Width:       0.45,
		Height:      0.05,
		LabelCount:  5,
		Format:      FormatInteger,
		LabelFont:   Font{Color: Color{0, 0, 0, 255}, Size: 30},
		TitleFont:   Font{Color: Color{0, 0, 0, 255}, Size: 50, Bold: true},
	}
}

// Validate the legend layout. The same bounds are enforced when a
// legend is parsed from a config file.
func (p *Parameter) Validate() error {
	if !p.ColorSet.Valid() {
		return fmt.Errorf("legend: unknown color set '%s' for %s", p.ColorSet, p.Name)
	}
	if p.Width >= 0.96 {
		return fmt.Errorf("legend: width accepts a decimal number up to 0.95")
	}
	if p.Height >= 0.96 {
		return fmt.Errorf("legend: height accepts a decimal number up to 0.95")
	}
	if p.Position[0] >= 0.96 || p.Position[1] >= 0.96 {
		return fmt.Errorf("legend: position accepts decimal values up to 0.95 for both X and Y")
	}
	colors, _ := p.ColorSet.Colors()
	if p.ColorCount < 0 || p.ColorCount > len(colors) {
		return fmt.Errorf(
			"legend: color count must be an integer less than or equal to the number"+
				" of colors in the color set; got %d", p.ColorCount)
	}
	return nil
}

// LookupTable maps scalar values in a range to interpolated colors
// from a color set.
type LookupTable struct {
	Min   float64
	Max   float64
	Table []Color
	// Color assigned to NaN values.
	NanColor Color
}

// Build a lookup table for this legend parameter. When the legend
// defines a color count the ramp is resampled to that many entries,
// otherwise one entry per anchor color is used.
func (p *Parameter) BuildLookupTable() (*LookupTable, error) {
	anchors, err := p.ColorSet.Colors()
	if err != nil {
		return nil, err
	}

	count := p.ColorCount
	if count == 0 {
		count = len(anchors)
	}

	table := make([]Color, count)
	for i := range table {
		var t float64
		if count > 1 {
			t = float64(i) / float64(count-1)
		}
		table[i] = interpolate(anchors, t)
	}

	return &LookupTable{
		Min:      p.Min,
		Max:      p.Max,
		Table:    table,
		NanColor: Color{255, 0, 0, 255},
	}, nil
}

// Color returns the table color for a scalar value. Values outside the
// range are clamped to the first and last table entries.
func (l *LookupTable) Color(v float64) Color {
	if math.IsNaN(v) {
		return l.NanColor
	}
	if l.Max <= l.Min {
		return l.Table[0]
	}
	t := (v - l.Min) / (l.Max - l.Min)
	if t <= 0 {
		return l.Table[0]
	}
	if t >= 1 {
		return l.Table[len(l.Table)-1]
	}
	return l.Table[int(t*float64(len(l.Table)-1)+0.5)]
}

// Linearly interpolate between the anchor colors of a ramp at
// parameter t in [0, 1].
func interpolate(anchors []Color, t float64) Color {
	if len(anchors) == 1 || t <= 0 {
		return anchors[0]
	}
	if t >= 1 {
		return anchors[len(anchors)-1]
	}
	scaled := t * float64(len(anchors)-1)
	i := int(scaled)
	frac := scaled - float64(i)
	a, b := anchors[i], anchors[i+1]
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*frac + 0.5)
	}
	return Color{lerp(a.R, b.R), lerp(a.G, b.G), lerp(a.B, b.B), lerp(a.A, b.A)}
}
