package model

import (
	"fmt"
	"math"
)

// Triangulate a planar face with optional holes into triangles. The
// returned indices refer to the vertex list formed by the boundary
// loop followed by each hole loop in order.
//
// Hole loops are first bridged into the outer boundary so a single
// loop remains, which is then ear clipped.
func TriangulateFace(boundary [][3]float64, holes [][][3]float64) ([][3]int, error) {
	if len(boundary) < 3 {
		return nil, fmt.Errorf("triangulate: a face needs at least 3 boundary vertices; got %d", len(boundary))
	}

	normal := newellNormal(boundary)
	if vecLen(normal) < 1e-12 {
		return nil, fmt.Errorf("triangulate: degenerate face with zero area")
	}
	u, v := planeBasis(normal)

	// Flatten every loop onto the face plane, remembering the index of
	// each vertex in the combined vertex list.
	project := func(loop [][3]float64, offset int) []point2 {
		out := make([]point2, len(loop))
		for i, p := range loop {
			out[i] = point2{
				x:   p[0]*u[0] + p[1]*u[1] + p[2]*u[2],
				y:   p[0]*v[0] + p[1]*v[1] + p[2]*v[2],
				idx: offset + i,
			}
		}
		return out
	}

	outer := project(boundary, 0)
	if signedArea(outer) < 0 {
		reverseLoop(outer)
	}

	offset := len(boundary)
	for _, hole := range holes {
		if len(hole) < 3 {
			return nil, fmt.Errorf("triangulate: a hole needs at least 3 vertices; got %d", len(hole))
		}
		inner := project(hole, offset)
		offset += len(hole)
		// Holes wind opposite to the outer loop.
		if signedArea(inner) > 0 {
			reverseLoop(inner)
		}
		outer = bridgeHole(outer, inner)
	}

	return earClip(outer)
}

type point2 struct {
	x, y float64
	idx  int
}

func newellNormal(loop [][3]float64) [3]float64 {
	var n [3]float64
	for i, cur := range loop {
		next := loop[(i+1)%len(loop)]
		n[0] += (cur[1] - next[1]) * (cur[2] + next[2])
		n[1] += (cur[2] - next[2]) * (cur[0] + next[0])
		n[2] += (cur[0] - next[0]) * (cur[1] + next[1])
	}
	return n
}

func vecLen(v [3]float64) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// planeBasis returns two unit vectors spanning the plane with the
// given normal.
func planeBasis(normal [3]float64) (u, v [3]float64) {
	n := normal
	l := vecLen(n)
	n[0] /= l
	n[1] /= l
	n[2] /= l

	ref := [3]float64{1, 0, 0}
	if math.Abs(n[0]) > 0.9 {
		ref = [3]float64{0, 1, 0}
	}
	u = cross3(ref, n)
	ul := vecLen(u)
	u[0] /= ul
	u[1] /= ul
	u[2] /= ul
	v = cross3(n, u)
	return u, v
}

func cross3(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func signedArea(loop []point2) float64 {
	var area float64
	for i, cur := range loop {
		next := loop[(i+1)%len(loop)]
		area += cur.x*next.y - next.x*cur.y
	}
	return area / 2
}

func reverseLoop(loop []point2) {
	for i, j := 0, len(loop)-1; i < j; i, j = i+1, j-1 {
		loop[i], loop[j] = loop[j], loop[i]
	}
}

// bridgeHole merges a hole loop into the outer loop with two
// coincident bridge edges, picking the closest visible vertex pair.
func bridgeHole(outer, hole []point2) []point2 {
	bestOuter, bestHole := 0, 0
	bestDist := math.Inf(1)
	for i, op := range outer {
		for j, hp := range hole {
			dx, dy := op.x-hp.x, op.y-hp.y
			d := dx*dx + dy*dy
			if d < bestDist {
				bestDist = d
				bestOuter, bestHole = i, j
			}
		}
	}

	merged := make([]point2, 0, len(outer)+len(hole)+2)
	merged = append(merged, outer[:bestOuter+1]...)
	for k := 0; k <= len(hole); k++ {
		merged = append(merged, hole[(bestHole+k)%len(hole)])
	}
	merged = append(merged, outer[bestOuter:]...)
	return merged
}

// earClip triangulates a simple polygon with counter clockwise
// winding.
func earClip(loop []point2) ([][3]int, error) {
	work := make([]point2, len(loop))
	copy(work, loop)

	var tris [][3]int
	guard := 0
	for len(work) > 3 {
		if guard++; guard > len(loop)*len(loop)+16 {
			return nil, fmt.Errorf("triangulate: could not find an ear; the polygon may self-intersect")
		}

		clipped := false
		for i := range work {
			prev := work[(i+len(work)-1)%len(work)]
			cur := work[i]
			next := work[(i+1)%len(work)]

			if crossZ(prev, cur, next) <= 0 {
				continue
			}
			if containsAnyPoint(prev, cur, next, work) {
				continue
			}

			tris = append(tris, [3]int{prev.idx, cur.idx, next.idx})
			work = append(work[:i], work[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			// Only degenerate collinear vertices remain. Drop the
			// flattest corner and keep going.
			flattest, minCross := 0, math.Inf(1)
			for i := range work {
				prev := work[(i+len(work)-1)%len(work)]
				next := work[(i+1)%len(work)]
				if c := math.Abs(crossZ(prev, work[i], next)); c < minCross {
					minCross = c
					flattest = i
				}
			}
			work = append(work[:flattest], work[flattest+1:]...)
		}
	}
	if len(work) == 3 {
		tris = append(tris, [3]int{work[0].idx, work[1].idx, work[2].idx})
	}
	return tris, nil
}

func crossZ(a, b, c point2) float64 {
	return (b.x-a.x)*(c.y-a.y) - (b.y-a.y)*(c.x-a.x)
}

func containsAnyPoint(a, b, c point2, loop []point2) bool {
	for _, p := range loop {
		if p.idx == a.idx || p.idx == b.idx || p.idx == c.idx {
			continue
		}
		if pointInTriangle(p, a, b, c) {
			return true
		}
	}
	return false
}

func pointInTriangle(p, a, b, c point2) bool {
	d1 := crossZ(a, b, p)
	d2 := crossZ(b, c, p)
	d3 := crossZ(c, a, p)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}
