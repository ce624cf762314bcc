// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package mesh

import (
	"testing"

	"github.com/galvgeo/csgkernel/math/lin"
)

// openClover is an open, petal-shaped fixture on z=0: a center square
// (polygon 0) with four petal quads hanging off each of its edges.
func openClover(t *testing.T) *Geom {
	t.Helper()
	verts := []float64{
		-1, -1, 0, 1, -1, 0, 1, 1, 0, -1, 1, 0, -3, 1, 0, -3, -1, 0,
		3, -1, 0, 3, 1, 0, 1, 3, 0, -1, 3, 0, -1, -3, 0, 1, -3, 0,
	}
	polygons := [][]int{
		{0, 1, 2, 3}, {5, 0, 3, 4}, {1, 6, 7, 2}, {3, 2, 8, 9}, {10, 11, 1, 0},
	}
	surfids := []uint32{0, 1, 2, 3, 4}
	g, err := NewGeom("clover", verts, polygons, surfids)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return g
}

func assertIntSlice(t *testing.T, label string, got, want []int) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: expected %v, got %v", label, want, got)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("%s: expected %v, got %v", label, want, got)
		}
	}
}

func TestSplitPolygonSpanningOnX(t *testing.T) {
	g := openClover(t)
	plane := &Plane{Normal: lin.V3{X: 1, Y: 0, Z: 0}, D: 0}
	var coplanarFront, coplanarBack, front, back []int

	if err := g.SplitPolygon(0, plane, &coplanarFront, &coplanarBack, &front, &back); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertIntSlice(t, "coplanarFront", coplanarFront, nil)
	assertIntSlice(t, "coplanarBack", coplanarBack, nil)
	assertIntSlice(t, "front", front, []int{0})
	assertIntSlice(t, "back", back, []int{5})

	assertIntSlice(t, "polygon 0 (front fragment)", g.Polygon(0), []int{12, 1, 2, 13})
	assertIntSlice(t, "polygon 5 (new back fragment)", g.Polygon(5), []int{0, 12, 13, 3})
	assertIntSlice(t, "polygon 3 (threaded neighbor)", g.Polygon(3), []int{3, 13, 2, 8, 9})
	assertIntSlice(t, "polygon 4 (threaded neighbor)", g.Polygon(4), []int{10, 11, 1, 12, 0})
	assertIntSlice(t, "polygon 1 (untouched)", g.Polygon(1), []int{5, 0, 3, 4})
	assertIntSlice(t, "polygon 2 (untouched)", g.Polygon(2), []int{1, 6, 7, 2})

	if g.NVerts() != 14 {
		t.Fatalf("expected 2 new cut verts (14 total), got %d", g.NVerts())
	}
	if v := g.Vert(12); !v.Aeq(&lin.V3{X: 0, Y: -1, Z: 0}) {
		t.Errorf("expected cut vert 12 at (0,-1,0), got %v", v)
	}
	if v := g.Vert(13); !v.Aeq(&lin.V3{X: 0, Y: 1, Z: 0}) {
		t.Errorf("expected cut vert 13 at (0,1,0), got %v", v)
	}
}

func TestSplitPolygonCoplanarFront(t *testing.T) {
	g := openClover(t)
	plane := &Plane{Normal: lin.V3{X: 0, Y: 0, Z: 1}, D: 0}
	var coplanarFront, coplanarBack, front, back []int
	if err := g.SplitPolygon(0, plane, &coplanarFront, &coplanarBack, &front, &back); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertIntSlice(t, "coplanarFront", coplanarFront, []int{0})
	assertIntSlice(t, "coplanarBack", coplanarBack, nil)
	assertIntSlice(t, "front", front, nil)
	assertIntSlice(t, "back", back, nil)
}

func TestSplitPolygonCoplanarBack(t *testing.T) {
	g := openClover(t)
	plane := &Plane{Normal: lin.V3{X: 0, Y: 0, Z: -1}, D: 0}
	var coplanarFront, coplanarBack, front, back []int
	if err := g.SplitPolygon(0, plane, &coplanarFront, &coplanarBack, &front, &back); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertIntSlice(t, "coplanarFront", coplanarFront, nil)
	assertIntSlice(t, "coplanarBack", coplanarBack, []int{0})
	assertIntSlice(t, "front", front, nil)
	assertIntSlice(t, "back", back, nil)
}

func TestSplitPolygonWhollyFront(t *testing.T) {
	g := goodTet(t)
	plane := &Plane{Normal: lin.V3{X: 0, Y: 0, Z: 1}, D: -10}
	var coplanarFront, coplanarBack, front, back []int
	if err := g.SplitPolygon(0, plane, &coplanarFront, &coplanarBack, &front, &back); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertIntSlice(t, "front", front, []int{0})
	assertIntSlice(t, "back", back, nil)
}
