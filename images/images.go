// Package images post-processes rendered frames: compositing,
// transparency and GIF assembly.
package images

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Load reads a PNG or JPEG image from disk.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("images: could not decode %s: %s", path, err.Error())
	}
	return img, nil
}

// SavePNG writes an image as PNG.
func SavePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

// Composite stacks layers over a base image with alpha blending. All
// images should share the base bounds; smaller layers draw at their
// own offset.
func Composite(base image.Image, layers ...image.Image) *image.NRGBA {
	out := image.NewNRGBA(base.Bounds())
	draw.Draw(out, out.Bounds(), base, base.Bounds().Min, draw.Src)
	for _, layer := range layers {
		draw.Draw(out, layer.Bounds(), layer, layer.Bounds().Min, draw.Over)
	}
	return out
}

// Translucent scales the alpha channel of an image by opacity in
// [0, 1].
func Translucent(img image.Image, opacity float64) *image.NRGBA {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	bounds := img.Bounds()
	out := image.NewNRGBA(bounds)
	draw.Draw(out, bounds, img, bounds.Min, draw.Src)
	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = uint8(float64(out.Pix[i])*opacity + 0.5)
	}
	return out
}

// Frame is one timestep image of a grid.
type Frame struct {
	Index int
	Hoy   int
	Grid  string
	Path  string
}

// GroupFrames buckets timestep image files by grid and orders each
// bucket by timestep index. File names follow the
// "<index>_<hoy>_<grid>.png" layout of the timestep export.
func GroupFrames(folder string) (map[string][]Frame, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("images: could not read %s: %s", folder, err.Error())
	}

	groups := map[string][]Frame{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".png") {
			continue
		}
		stem := strings.TrimSuffix(entry.Name(), ".png")
		parts := strings.SplitN(stem, "_", 3)
		if len(parts) != 3 {
			continue
		}
		index, err1 := strconv.Atoi(parts[0])
		hoy, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil {
			continue
		}
		groups[parts[2]] = append(groups[parts[2]], Frame{
			Index: index,
			Hoy:   hoy,
			Grid:  parts[2],
			Path:  filepath.Join(folder, entry.Name()),
		})
	}
	if len(groups) == 0 {
		return nil, fmt.Errorf("images: no timestep images under %s", folder)
	}
	for _, frames := range groups {
		sort.Slice(frames, func(i, j int) bool { return frames[i].Index < frames[j].Index })
	}
	return groups, nil
}
