package render

import (
	"image"
	"image/color"
	"math"

	"github.com/ladybug-tools/honeybee-vtk-go/types"
)

// frameBuffer is the render target: a color image plus a depth value
// per pixel.
type frameBuffer struct {
	w, h  int
	color *image.NRGBA
	depth []float32
}

func newFrameBuffer(w, h int, bg color.NRGBA) *frameBuffer {
	fb := &frameBuffer{
		w:     w,
		h:     h,
		color: image.NewNRGBA(image.Rect(0, 0, w, h)),
		depth: make([]float32, w*h),
	}
	for i := range fb.depth {
		fb.depth[i] = math.MaxFloat32
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			fb.color.SetNRGBA(x, y, bg)
		}
	}
	return fb
}

// setPixel writes a pixel if it passes the depth test. Opaque pixels
// update the depth buffer; translucent ones blend over the current
// color without claiming the depth.
func (fb *frameBuffer) setPixel(x, y int, z float32, c color.NRGBA, opaque bool) {
	if x < 0 || y < 0 || x >= fb.w || y >= fb.h {
		return
	}
	idx := y*fb.w + x
	if z >= fb.depth[idx] {
		return
	}
	if opaque {
		fb.depth[idx] = z
		fb.color.SetNRGBA(x, y, c)
		return
	}
	fb.color.SetNRGBA(x, y, blend(fb.color.NRGBAAt(x, y), c))
}

func blend(dst, src color.NRGBA) color.NRGBA {
	a := float32(src.A) / 255
	mix := func(d, s uint8) uint8 {
		return uint8(float32(d)*(1-a) + float32(s)*a + 0.5)
	}
	out := color.NRGBA{mix(dst.R, src.R), mix(dst.G, src.G), mix(dst.B, src.B), 255}
	if dst.A < 255 {
		// Over a transparent background the result keeps the source
		// coverage.
		outA := a + float32(dst.A)/255*(1-a)
		out.A = uint8(outA*255 + 0.5)
	}
	return out
}

// screenVert is a vertex after the viewport transform. z stays in
// view space for depth testing.
type screenVert struct {
	x, y, z float32
}

// fillTriangle rasterizes a flat colored triangle with barycentric
// depth interpolation.
func (fb *frameBuffer) fillTriangle(v0, v1, v2 screenVert, c color.NRGBA, opaque bool) {
	minX := int(math.Floor(float64(min3(v0.x, v1.x, v2.x))))
	maxX := int(math.Ceil(float64(max3(v0.x, v1.x, v2.x))))
	minY := int(math.Floor(float64(min3(v0.y, v1.y, v2.y))))
	maxY := int(math.Ceil(float64(max3(v0.y, v1.y, v2.y))))
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX >= fb.w {
		maxX = fb.w - 1
	}
	if maxY >= fb.h {
		maxY = fb.h - 1
	}

	area := edge(v0, v1, v2)
	if area == 0 {
		return
	}

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := screenVert{x: float32(x) + 0.5, y: float32(y) + 0.5}
			w0 := edge(v1, v2, p)
			w1 := edge(v2, v0, p)
			w2 := edge(v0, v1, p)
			if area > 0 {
				if w0 < 0 || w1 < 0 || w2 < 0 {
					continue
				}
			} else if w0 > 0 || w1 > 0 || w2 > 0 {
				continue
			}
			w0 /= area
			w1 /= area
			w2 /= area
			z := w0*v0.z + w1*v1.z + w2*v2.z
			fb.setPixel(x, y, z, c, opaque)
		}
	}
}

// drawLine draws a depth tested line. The depth bias pulls edges
// slightly towards the camera so they win against their own surface.
func (fb *frameBuffer) drawLine(v0, v1 screenVert, c color.NRGBA) {
	const depthBias = 1e-3

	dx := float64(v1.x - v0.x)
	dy := float64(v1.y - v0.y)
	steps := int(math.Max(math.Abs(dx), math.Abs(dy)))
	if steps == 0 {
		fb.setPixel(int(v0.x), int(v0.y), v0.z-depthBias, c, true)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float32(i) / float32(steps)
		x := v0.x + t*(v1.x-v0.x)
		y := v0.y + t*(v1.y-v0.y)
		z := v0.z + t*(v1.z-v0.z)
		fb.setPixel(int(x), int(y), z-depthBias, c, true)
	}
}

// drawPoint draws a filled square centered on the vertex.
func (fb *frameBuffer) drawPoint(v screenVert, size int, c color.NRGBA) {
	half := size / 2
	for dy := -half; dy <= half; dy++ {
		for dx := -half; dx <= half; dx++ {
			fb.setPixel(int(v.x)+dx, int(v.y)+dy, v.z, c, true)
		}
	}
}

func edge(a, b, p screenVert) float32 {
	return (b.x-a.x)*(p.y-a.y) - (b.y-a.y)*(p.x-a.x)
}

func min3(a, b, c float32) float32 {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func max3(a, b, c float32) float32 {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}

// clipNear clips a triangle in clip space against the near plane
// z + w > 0 and returns zero, one or two triangles.
func clipNear(tri [3]types.Vec4) [][3]types.Vec4 {
	const eps = 1e-6

	inside := func(v types.Vec4) bool { return v[2]+v[3] > eps }
	intersect := func(a, b types.Vec4) types.Vec4 {
		da := a[2] + a[3]
		db := b[2] + b[3]
		t := da / (da - db)
		var out types.Vec4
		for i := 0; i < 4; i++ {
			out[i] = a[i] + t*(b[i]-a[i])
		}
		return out
	}

	var kept []types.Vec4
	for i := 0; i < 3; i++ {
		cur, next := tri[i], tri[(i+1)%3]
		if inside(cur) {
			kept = append(kept, cur)
			if !inside(next) {
				kept = append(kept, intersect(cur, next))
			}
		} else if inside(next) {
			kept = append(kept, intersect(cur, next))
		}
	}

	switch len(kept) {
	case 3:
		return [][3]types.Vec4{{kept[0], kept[1], kept[2]}}
	case 4:
		return [][3]types.Vec4{
			{kept[0], kept[1], kept[2]},
			{kept[0], kept[2], kept[3]},
		}
	}
	return nil
}
