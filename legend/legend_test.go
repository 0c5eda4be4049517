package legend

import (
	"math"
	"testing"
)

func TestLabelFormat(t *testing.T) {
	cases := []struct {
		format LabelFormat
		value  float64
		want   string
	}{
		{FormatInteger, 12.6, "13"},
		{FormatDecimalTwo, 12.636, "12.64"},
		{FormatDecimalThree, 12.6361, "12.636"},
		{FormatDefault, 12345.6, "1.23e+04"},
	}
	for _, c := range cases {
		if got := c.format.Format(c.value); got != c.want {
			t.Fatalf("format %s of %g: expected %s; got %s", c.format, c.value, c.want, got)
		}
	}
}

func TestParameterValidate(t *testing.T) {
	p := NewParameter("daylight-factor")
	if err := p.Validate(); err != nil {
		t.Fatal(err)
	}

	p.Width = 0.96
	expError := "legend: width accepts a decimal number up to 0.95"
	if err := p.Validate(); err == nil || err.Error() != expError {
		t.Fatalf("expected to get: %s; got %v", expError, err)
	}

	p = NewParameter("daylight-factor")
	p.ColorSet = "sunset"
	expError = "legend: unknown color set 'sunset' for daylight-factor"
	if err := p.Validate(); err == nil || err.Error() != expError {
		t.Fatalf("expected to get: %s; got %v", expError, err)
	}

	p = NewParameter("daylight-factor")
	p.ColorCount = 100
	if err := p.Validate(); err == nil {
		t.Fatal("expected a color count above the ramp size to fail validation")
	}
}

func TestLookupTable(t *testing.T) {
	p := NewParameter("res")
	p.ColorSet = BlueGreenRed
	p.Min, p.Max = 0, 10

	lut, err := p.BuildLookupTable()
	if err != nil {
		t.Fatal(err)
	}
	if len(lut.Table) != 3 {
		t.Fatalf("expected one entry per anchor color; got %d", len(lut.Table))
	}

	if c := lut.Color(-5); c != lut.Table[0] {
		t.Fatalf("expected values below the range to clamp to the first color; got %v", c)
	}
	if c := lut.Color(50); c != lut.Table[2] {
		t.Fatalf("expected values above the range to clamp to the last color; got %v", c)
	}
	if c := lut.Color(5); c != (Color{0, 255, 0, 255}) {
		t.Fatalf("expected the midpoint to map to green; got %v", c)
	}
	if c := lut.Color(math.NaN()); c != lut.NanColor {
		t.Fatalf("expected NaN to map to the NaN color; got %v", c)
	}
}

func TestLookupTableResampling(t *testing.T) {
	p := NewParameter("res")
	p.ColorSet = BlackToWhite
	p.ColorCount = 5

	lut, err := p.BuildLookupTable()
	if err != nil {
		t.Fatal(err)
	}
	if len(lut.Table) != 5 {
		t.Fatalf("expected the ramp resampled to 5 entries; got %d", len(lut.Table))
	}
	mid := lut.Table[2]
	if mid.R != 128 || mid.G != 128 || mid.B != 128 {
		t.Fatalf("expected the middle entry to be mid gray; got %v", mid)
	}
}

func TestColorSetColors(t *testing.T) {
	if _, err := ColorSet("nuanced").Colors(); err != nil {
		t.Fatal(err)
	}
	expError := "legend: unknown color set 'neon'"
	if _, err := ColorSet("neon").Colors(); err == nil || err.Error() != expError {
		t.Fatalf("expected to get: %s; got %v", expError, err)
	}
}

func TestColorDecimal(t *testing.T) {
	d := Color{255, 0, 51, 255}.Decimal()
	if d[0] != 1 || d[1] != 0 || math.Abs(d[2]-0.2) > 1e-9 {
		t.Fatalf("unexpected decimals %v", d)
	}
}
