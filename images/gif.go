package images

import (
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"
	"path/filepath"
	"sort"
)

// GifOptions controls a GIF assembly.
type GifOptions struct {
	// Delay per frame in hundredths of a second.
	FrameDelay int
	// Number of animation loops. Zero loops forever.
	LoopCount int
	// Extra repeats of the last frame before the animation loops.
	Linger int
	// Fade older frames in under the current one instead of
	// replacing them, so a shadow study leaves a trail.
	GradientTransparency bool
	// Background the transparent frames composite over.
	Background color.NRGBA
}

func DefaultGifOptions() GifOptions {
	return GifOptions{
		FrameDelay: 100,
		LoopCount:  0,
		Linger:     3,
		Background: color.NRGBA{255, 255, 255, 255},
	}
}

// WriteGif assembles frames into an animated GIF at target.
func WriteGif(frames []image.Image, target string, opts GifOptions) error {
	if len(frames) == 0 {
		return fmt.Errorf("images: a gif needs at least one frame")
	}
	if opts.FrameDelay <= 0 {
		opts.FrameDelay = 100
	}

	bounds := frames[0].Bounds()
	bg := image.NewNRGBA(bounds)
	draw.Draw(bg, bounds, image.NewUniform(opts.Background), image.Point{}, draw.Src)

	anim := &gif.GIF{LoopCount: opts.LoopCount}
	addFrame := func(src image.Image, delay int) {
		paletted := image.NewPaletted(bounds, palette.Plan9)
		draw.FloydSteinberg.Draw(paletted, bounds, src, bounds.Min)
		anim.Image = append(anim.Image, paletted)
		anim.Delay = append(anim.Delay, delay)
	}

	for i, frame := range frames {
		var composed *image.NRGBA
		if opts.GradientTransparency {
			// Older frames fade out under the newest one.
			layers := make([]image.Image, 0, i+1)
			for j := 0; j <= i; j++ {
				opacity := 1.0 - 0.7*float64(i-j)/float64(len(frames))
				layers = append(layers, Translucent(frames[j], opacity))
			}
			composed = Composite(bg, layers...)
		} else {
			composed = Composite(bg, frame)
		}

		delay := opts.FrameDelay
		if i == len(frames)-1 && opts.Linger > 0 {
			delay = opts.FrameDelay * (opts.Linger + 1)
		}
		addFrame(composed, delay)
	}

	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, anim)
}

// WriteGifFromFolder groups the timestep images of a folder by grid
// and writes one GIF per grid into target. The written paths are
// returned sorted by grid name.
func WriteGifFromFolder(folder, target string, opts GifOptions) ([]string, error) {
	groups, err := GroupFrames(folder)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(target, 0755); err != nil {
		return nil, err
	}

	grids := make([]string, 0, len(groups))
	for grid := range groups {
		grids = append(grids, grid)
	}
	sort.Strings(grids)

	var paths []string
	for _, grid := range grids {
		var frames []image.Image
		for _, frame := range groups[grid] {
			img, err := Load(frame.Path)
			if err != nil {
				return nil, err
			}
			frames = append(frames, img)
		}
		path := filepath.Join(target, grid+".gif")
		if err := WriteGif(frames, path, opts); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
