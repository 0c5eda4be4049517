package legend

import "fmt"

// Color is an RGBA color with 0-255 channels. It mirrors the color
// representation used across the Ladybug Tools ecosystem.
type Color struct {
	R, G, B, A uint8
}

// Create an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{r, g, b, 255}
}

// Return the color channels as 0-1 decimals. The alpha channel is dropped.
func (c Color) Decimal() [3]float64 {
	return [3]float64{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}
}

// ColorSet identifies one of the built-in color ramps.
type ColorSet string

// The built-in color sets. The anchor colors follow the Ladybug Tools
// palettes of the same names.
const (
	Original            ColorSet = "original"
	Nuanced             ColorSet = "nuanced"
	Multicolored        ColorSet = "multi_colored"
	Ecotect             ColorSet = "ecotect"
	ViewStudy           ColorSet = "view_study"
	ShadowStudy         ColorSet = "shadow_study"
	GlareStudy          ColorSet = "glare_study"
	AnnualComfort       ColorSet = "annual_comfort"
	ThermalComfort      ColorSet = "thermal_comfort"
	PeakLoadBalance     ColorSet = "peak_load_balance"
	HeatSensation       ColorSet = "heat_sensation"
	ColdSensation       ColorSet = "cold_sensation"
	Benefit             ColorSet = "benefit"
	Harm                ColorSet = "harm"
	BenefitHarm         ColorSet = "benefit_harm"
	ShadeBenefit        ColorSet = "shade_benefit"
	ShadeHarm           ColorSet = "shade_harm"
	ShadeBenefitHarm    ColorSet = "shade_benefit_harm"
	EnergyBalance       ColorSet = "energy_balance"
	EnergyBalanceStore  ColorSet = "energy_balance_storage"
	Therm               ColorSet = "therm"
	CloudCover          ColorSet = "cloud_cover"
	BlackToWhite        ColorSet = "black_to_white"
	BlueGreenRed        ColorSet = "blue_green_red"
	MulticoloredTwo     ColorSet = "multicolored_2"
	MulticoloredThree   ColorSet = "multicolored_3"
	OpenStudioPalette   ColorSet = "openstudio_palette"
)

var colorSets = map[ColorSet][]Color{
	Original: {
		RGB(75, 107, 169), RGB(115, 147, 202), RGB(170, 200, 247), RGB(193, 213, 208),
		RGB(245, 239, 103), RGB(252, 230, 74), RGB(239, 156, 21), RGB(234, 123, 0),
		RGB(234, 74, 0), RGB(234, 38, 0)},
	Nuanced: {
		RGB(49, 54, 149), RGB(69, 117, 180), RGB(116, 173, 209), RGB(171, 217, 233),
		RGB(224, 243, 248), RGB(255, 255, 191), RGB(254, 224, 144), RGB(253, 174, 97),
		RGB(244, 109, 67), RGB(215, 48, 39), RGB(165, 0, 38)},
	Multicolored: {
		RGB(4, 25, 145), RGB(7, 48, 224), RGB(7, 88, 255), RGB(1, 232, 255),
		RGB(97, 246, 156), RGB(166, 249, 86), RGB(254, 244, 1), RGB(255, 121, 0),
		RGB(239, 39, 0), RGB(138, 17, 0)},
	Ecotect: {
		RGB(0, 0, 255), RGB(53, 0, 202), RGB(107, 0, 148), RGB(160, 0, 95),
		RGB(214, 0, 41), RGB(255, 12, 0), RGB(255, 66, 0), RGB(255, 119, 0),
		RGB(255, 173, 0), RGB(255, 226, 0), RGB(255, 255, 0)},
	ViewStudy: {
		RGB(75, 107, 169), RGB(170, 200, 247), RGB(245, 239, 103), RGB(234, 123, 0),
		RGB(234, 38, 0)},
	ShadowStudy: {
		RGB(120, 120, 120), RGB(135, 135, 135), RGB(150, 150, 150), RGB(165, 165, 165),
		RGB(180, 180, 180), RGB(195, 195, 195), RGB(210, 210, 210), RGB(225, 225, 225),
		RGB(240, 240, 240), RGB(255, 255, 255)},
	GlareStudy: {
		RGB(40, 40, 40), RGB(120, 120, 120), RGB(230, 215, 150), RGB(255, 170, 0),
		RGB(255, 0, 0)},
	AnnualComfort: {
		RGB(0, 16, 120), RGB(38, 70, 160), RGB(5, 180, 222), RGB(16, 240, 242),
		RGB(250, 250, 210), RGB(250, 150, 0), RGB(220, 60, 0), RGB(128, 20, 20)},
	ThermalComfort: {
		RGB(0, 136, 255), RGB(200, 225, 255), RGB(255, 255, 255), RGB(255, 230, 230),
		RGB(255, 0, 0)},
	PeakLoadBalance: {
		RGB(102, 53, 14), RGB(135, 170, 102), RGB(176, 175, 95), RGB(204, 204, 204),
		RGB(255, 140, 0), RGB(255, 0, 0)},
	HeatSensation: {
		RGB(255, 255, 255), RGB(255, 235, 230), RGB(255, 198, 181), RGB(255, 121, 93),
		RGB(255, 62, 13), RGB(200, 9, 9)},
	ColdSensation: {
		RGB(255, 255, 255), RGB(225, 243, 255), RGB(163, 217, 255), RGB(82, 182, 255),
		RGB(0, 116, 255), RGB(0, 26, 200)},
	Benefit: {
		RGB(255, 255, 255), RGB(220, 255, 215), RGB(160, 245, 150), RGB(80, 210, 70),
		RGB(0, 170, 0)},
	Harm: {
		RGB(255, 255, 255), RGB(255, 220, 220), RGB(255, 160, 160), RGB(215, 60, 60),
		RGB(150, 0, 0)},
	BenefitHarm: {
		RGB(150, 0, 0), RGB(255, 160, 160), RGB(255, 255, 255), RGB(160, 245, 150),
		RGB(0, 170, 0)},
	ShadeBenefit: {
		RGB(255, 255, 255), RGB(170, 240, 255), RGB(85, 200, 255), RGB(0, 136, 255)},
	ShadeHarm: {
		RGB(255, 255, 255), RGB(255, 210, 170), RGB(255, 150, 85), RGB(255, 75, 0)},
	ShadeBenefitHarm: {
		RGB(255, 75, 0), RGB(255, 150, 85), RGB(255, 255, 255), RGB(85, 200, 255),
		RGB(0, 136, 255)},
	EnergyBalance: {
		RGB(64, 0, 75), RGB(118, 42, 131), RGB(153, 112, 171), RGB(194, 165, 207),
		RGB(231, 212, 232), RGB(247, 247, 247), RGB(217, 240, 211), RGB(166, 219, 160),
		RGB(90, 174, 97), RGB(27, 120, 55), RGB(0, 68, 27)},
	EnergyBalanceStore: {
		RGB(64, 0, 75), RGB(153, 112, 171), RGB(231, 212, 232), RGB(247, 247, 247),
		RGB(204, 204, 204), RGB(247, 247, 247), RGB(217, 240, 211), RGB(90, 174, 97),
		RGB(0, 68, 27)},
	Therm: {
		RGB(0, 0, 0), RGB(137, 0, 139), RGB(218, 0, 218), RGB(196, 0, 255),
		RGB(0, 92, 255), RGB(0, 198, 252), RGB(0, 244, 215), RGB(0, 220, 101),
		RGB(7, 193, 0), RGB(115, 220, 0), RGB(249, 251, 0), RGB(254, 178, 0),
		RGB(253, 77, 0), RGB(255, 15, 15), RGB(255, 135, 135), RGB(255, 255, 255)},
	CloudCover: {
		RGB(0, 251, 255), RGB(255, 255, 255), RGB(217, 217, 217), RGB(125, 125, 125)},
	BlackToWhite: {
		RGB(0, 0, 0), RGB(255, 255, 255)},
	BlueGreenRed: {
		RGB(0, 0, 255), RGB(0, 255, 0), RGB(255, 0, 0)},
	MulticoloredTwo: {
		RGB(0, 16, 120), RGB(38, 70, 160), RGB(5, 180, 222), RGB(16, 240, 242),
		RGB(179, 252, 110), RGB(250, 250, 0), RGB(250, 150, 0), RGB(255, 75, 0),
		RGB(255, 0, 0)},
	MulticoloredThree: {
		RGB(0, 16, 120), RGB(38, 70, 160), RGB(5, 180, 222), RGB(16, 240, 242),
		RGB(179, 252, 110), RGB(250, 250, 0), RGB(250, 150, 0), RGB(255, 75, 0),
		RGB(255, 0, 0), RGB(128, 0, 0)},
	OpenStudioPalette: {
		RGB(230, 180, 60), RGB(128, 20, 20), RGB(255, 128, 128), RGB(120, 75, 190),
		RGB(64, 180, 255), RGB(160, 150, 100)},
}

// Colors returns the anchor colors for a color set. An error is
// returned for color set names that are not part of the library.
func (cs ColorSet) Colors() ([]Color, error) {
	colors, ok := colorSets[cs]
	if !ok {
		return nil, fmt.Errorf("legend: unknown color set '%s'", cs)
	}
	return colors, nil
}

// Valid returns true if the color set name is part of the library.
func (cs ColorSet) Valid() bool {
	_, ok := colorSets[cs]
	return ok
}
