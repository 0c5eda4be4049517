package images

import (
	"image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
	"testing"
)

func solidFrame(c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestTranslucent(t *testing.T) {
	img := solidFrame(color.NRGBA{200, 100, 50, 200})
	out := Translucent(img, 0.5)
	got := out.NRGBAAt(3, 3)
	if got.A != 100 {
		t.Fatalf("expected the alpha halved to 100; got %d", got.A)
	}
	if got.R != 200 || got.G != 100 || got.B != 50 {
		t.Fatalf("expected the color channels untouched; got %v", got)
	}

	if a := Translucent(img, 5).NRGBAAt(0, 0).A; a != 200 {
		t.Fatalf("expected the opacity clamped to 1; got alpha %d", a)
	}
}

func TestComposite(t *testing.T) {
	base := solidFrame(color.NRGBA{255, 255, 255, 255})
	layer := solidFrame(color.NRGBA{0, 0, 0, 0})
	layer.SetNRGBA(2, 2, color.NRGBA{255, 0, 0, 255})

	out := Composite(base, layer)
	if got := out.NRGBAAt(2, 2); got != (color.NRGBA{255, 0, 0, 255}) {
		t.Fatalf("expected the layer pixel on top; got %v", got)
	}
	if got := out.NRGBAAt(5, 5); got != (color.NRGBA{255, 255, 255, 255}) {
		t.Fatalf("expected the base to show through; got %v", got)
	}
}

func TestGroupFrames(t *testing.T) {
	folder := t.TempDir()
	for _, name := range []string{
		"1_4115_grid_1.png",
		"0_4114_grid_1.png",
		"0_4114_grid_2.png",
		"readme.txt",
	} {
		if err := os.WriteFile(filepath.Join(folder, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	groups, err := GroupFrames(folder)
	if err != nil {
		t.Fatal(err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 grids; got %d", len(groups))
	}
	frames := groups["grid_1"]
	if len(frames) != 2 {
		t.Fatalf("expected 2 frames for grid_1; got %d", len(frames))
	}
	if frames[0].Index != 0 || frames[1].Index != 1 {
		t.Fatalf("expected the frames ordered by index; got %+v", frames)
	}
	if frames[0].Hoy != 4114 || frames[0].Grid != "grid_1" {
		t.Fatalf("unexpected frame %+v", frames[0])
	}

	empty := t.TempDir()
	expError := "images: no timestep images under " + empty
	if _, err := GroupFrames(empty); err == nil || err.Error() != expError {
		t.Fatalf("expected to get: %s; got %v", expError, err)
	}
}

func TestWriteGif(t *testing.T) {
	frames := []image.Image{
		solidFrame(color.NRGBA{255, 0, 0, 255}),
		solidFrame(color.NRGBA{0, 0, 255, 255}),
	}
	target := filepath.Join(t.TempDir(), "grid_1.gif")

	opts := DefaultGifOptions()
	opts.FrameDelay = 50
	opts.Linger = 2
	if err := WriteGif(frames, target, opts); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(target)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	anim, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatal(err)
	}
	if len(anim.Image) != 2 {
		t.Fatalf("expected 2 gif frames; got %d", len(anim.Image))
	}
	if anim.Delay[0] != 50 {
		t.Fatalf("unexpected frame delay %d", anim.Delay[0])
	}
	// The last frame lingers for the extra repeats.
	if anim.Delay[1] != 150 {
		t.Fatalf("unexpected linger delay %d", anim.Delay[1])
	}
}

func TestWriteGifFromFolder(t *testing.T) {
	folder := t.TempDir()
	for i, c := range []color.NRGBA{{255, 0, 0, 255}, {0, 255, 0, 255}} {
		name := filepath.Join(folder, "0_4114_grid.png")
		if i == 1 {
			name = filepath.Join(folder, "1_4115_grid.png")
		}
		if err := SavePNG(solidFrame(c), name); err != nil {
			t.Fatal(err)
		}
	}

	target := t.TempDir()
	paths, err := WriteGifFromFolder(folder, target, DefaultGifOptions())
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 1 || filepath.Base(paths[0]) != "grid.gif" {
		t.Fatalf("expected one gif per grid; got %v", paths)
	}
	if _, err := os.Stat(paths[0]); err != nil {
		t.Fatal(err)
	}
}
