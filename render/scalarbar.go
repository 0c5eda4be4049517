package render

import (
	"image"
	"image/color"

	"github.com/ladybug-tools/honeybee-vtk-go/legend"
)

// DrawScalarBar paints a legend onto an image. The legend position,
// width and height are fractions of the image size measured from the
// bottom left corner, following the vtk scalar bar conventions.
func DrawScalarBar(img *image.NRGBA, param *legend.Parameter) error {
	lut, err := param.BuildLookupTable()
	if err != nil {
		return err
	}

	bounds := img.Bounds()
	imgW, imgH := bounds.Dx(), bounds.Dy()

	barW := int(param.Width * float64(imgW))
	barH := int(param.Height * float64(imgH))
	x0 := int(param.Position[0] * float64(imgW))
	// The y fraction measures from the bottom of the viewport.
	y0 := imgH - int(param.Position[1]*float64(imgH)) - barH
	if barW <= 0 || barH <= 0 {
		return nil
	}

	vertical := param.Orientation == legend.Vertical
	steps := len(lut.Table)

	for dy := 0; dy < barH; dy++ {
		for dx := 0; dx < barW; dx++ {
			var t float64
			if vertical {
				if barH > 1 {
					t = 1 - float64(dy)/float64(barH-1)
				}
			} else if barW > 1 {
				t = float64(dx) / float64(barW-1)
			}
			idx := int(t * float64(steps-1))
			c := lut.Table[idx]
			img.SetNRGBA(x0+dx, y0+dy, color.NRGBA{c.R, c.G, c.B, 255})
		}
	}
	drawFrame(img, x0, y0, barW, barH, color.NRGBA{0, 0, 0, 255})

	labelFont := param.LabelFont
	labelColor := color.NRGBA{labelFont.Color.R, labelFont.Color.G, labelFont.Color.B, 255}
	labelSize := scaleFont(labelFont.Size, imgH)

	labels := param.LabelCount
	if labels < 2 {
		labels = 2
	}
	for i := 0; i < labels; i++ {
		t := float64(i) / float64(labels-1)
		value := param.Min + t*(param.Max-param.Min)
		text := param.Format.Format(value)
		if vertical {
			ly := y0 + barH - int(t*float64(barH)) - labelSize/2
			DrawText(img, x0+barW+4, ly, text, labelColor, labelSize, labelFont.Bold)
		} else {
			lx := x0 + int(t*float64(barW)) - TextWidth(text, labelSize)/2
			DrawText(img, lx, y0+barH+4, text, labelColor, labelSize, labelFont.Bold)
		}
	}

	title := param.Name
	if param.Unit != "" {
		title += " (" + param.Unit + ")"
	}
	titleFont := param.TitleFont
	titleColor := color.NRGBA{titleFont.Color.R, titleFont.Color.G, titleFont.Color.B, 255}
	titleSize := scaleFont(titleFont.Size, imgH)
	if param.PrecedingLabels && !vertical {
		DrawText(img, x0, y0+barH+labelSize+8, title, titleColor, titleSize, titleFont.Bold)
	} else {
		DrawText(img, x0, y0-titleSize-4, title, titleColor, titleSize, titleFont.Bold)
	}
	return nil
}

// scaleFont maps the legend font sizes, which assume a 1088 pixel
// tall viewport, to the actual image height.
func scaleFont(size, imgH int) int {
	if size <= 0 {
		size = 30
	}
	scaled := size * imgH / 1088
	if scaled < 8 {
		scaled = 8
	}
	return scaled
}

func drawFrame(img *image.NRGBA, x0, y0, w, h int, c color.NRGBA) {
	for dx := 0; dx < w; dx++ {
		img.SetNRGBA(x0+dx, y0, c)
		img.SetNRGBA(x0+dx, y0+h-1, c)
	}
	for dy := 0; dy < h; dy++ {
		img.SetNRGBA(x0, y0+dy, c)
		img.SetNRGBA(x0+w-1, y0+dy, c)
	}
}
