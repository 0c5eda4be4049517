// Package render draws scenes into raster images with a software
// z-buffer pipeline.
package render

import (
	"fmt"

	"github.com/ladybug-tools/honeybee-vtk-go/legend"
)

// ImageFormat selects the on-disk encoding of rendered images.
type ImageFormat string

const (
	FormatPNG  ImageFormat = "png"
	FormatJPEG ImageFormat = "jpeg"
)

func ParseImageFormat(name string) (ImageFormat, error) {
	switch name {
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	}
	return "", fmt.Errorf("render: unknown image format '%s'", name)
}

// Options controls the output of a render pass.
type Options struct {
	Width  int
	Height int
	Format ImageFormat
	// Background overrides the scene background when set.
	Background *legend.Color
	// Transparent renders with a fully transparent background. Only
	// meaningful for PNG output.
	Transparent bool
	// Draw the scalar bars of the mounted results onto the image.
	ShowLegends bool
}

func DefaultOptions() Options {
	return Options{
		Width:       1920,
		Height:      1088,
		Format:      FormatPNG,
		ShowLegends: true,
	}
}

func (o *Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("render: image size %dx%d is not valid", o.Width, o.Height)
	}
	return nil
}
