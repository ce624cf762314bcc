// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package mesh

import (
	"testing"

	"github.com/galvgeo/csgkernel/math/lin"
)

// goodTet returns the "good tet" fixture used throughout the kernel's
// grounding corpus: four triangles wound consistently outward.
func goodTet(t *testing.T) *Geom {
	t.Helper()
	verts := []float64{-1, -1, 0, 1, -1, 0, 0, 1, 0, 0, 0, 1}
	polygons := [][]int{{2, 1, 0}, {0, 1, 3}, {1, 2, 3}, {2, 0, 3}}
	g, err := NewGeom("tet", verts, polygons, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return g
}

func TestNewGeom(t *testing.T) {
	g := goodTet(t)
	if g.NVerts() != 4 {
		t.Errorf("expected 4 verts, got %d", g.NVerts())
	}
	if g.NPolygons() != 4 {
		t.Errorf("expected 4 polygons, got %d", g.NPolygons())
	}
	for _, surfid := range g.Surfids {
		if surfid != 0 {
			t.Errorf("expected default surfid 0, got %d", surfid)
		}
	}
}

func TestNewGeomSurfidMismatch(t *testing.T) {
	verts := []float64{0, 0, 0, 1, 0, 0, 0, 1, 0}
	polygons := [][]int{{0, 1, 2}}
	if _, err := NewGeom("bad", verts, polygons, []uint32{1, 2}); err != ErrSurfidMismatch {
		t.Errorf("expected ErrSurfidMismatch, got %v", err)
	}
}

func TestNewGeomIndexOutOfRange(t *testing.T) {
	verts := []float64{0, 0, 0, 1, 0, 0, 0, 1, 0}
	polygons := [][]int{{0, 1, 5}}
	if _, err := NewGeom("bad", verts, polygons, nil); err != ErrIndexRange {
		t.Errorf("expected ErrIndexRange, got %v", err)
	}
}

func TestGeomVert(t *testing.T) {
	g := goodTet(t)
	v := g.Vert(2)
	if !v.Aeq(&lin.V3{X: 0, Y: 1, Z: 0}) {
		t.Errorf("expected (0,1,0), got %v", v)
	}
}

func TestGeomAppendVert(t *testing.T) {
	g := goodTet(t)
	ivert := g.AppendVert(lin.V3{X: 0, Y: 0, Z: 0})
	if ivert != 4 {
		t.Errorf("expected new vert index 4, got %d", ivert)
	}
	if g.NVerts() != 5 {
		t.Errorf("expected 5 verts, got %d", g.NVerts())
	}
}

func TestGeomPlaneOfPolygon(t *testing.T) {
	verts := []float64{0, 0, 1, 1, 0, 1, 2, 0, 1, 0, 1, 1}
	g, err := NewGeom("flat", verts, [][]int{{0, 1, 2, 3}}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	plane, err := g.PlaneOfPolygon(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !plane.Normal.Aeq(&lin.V3{X: 0, Y: 0, Z: 1}) || !lin.Aeq(plane.D, 1) {
		t.Errorf("expected normal (0,0,1) d=1, got %v d=%f", plane.Normal, plane.D)
	}
}

func TestGeomClone(t *testing.T) {
	g := goodTet(t)
	c := g.Clone()
	c.Verts[0] = 99
	c.Polygons[0][0] = 3
	if g.Verts[0] == 99 || g.Polygons[0][0] == 3 {
		t.Error("Clone shares state with original")
	}
}

func TestGeomFlip(t *testing.T) {
	g := goodTet(t)
	original := append([]int(nil), g.Polygon(0)...)
	g.Flip()
	flipped := g.Polygon(0)
	for i, ivert := range original {
		if flipped[len(flipped)-1-i] != ivert {
			t.Fatalf("expected reversed ring, got %v from %v", flipped, original)
		}
	}
}

func TestGeomAppend(t *testing.T) {
	a, err := NewGeom("a", []float64{0, 0, 0, 1, 0, 0, 0, 1, 0}, [][]int{{0, 1, 2}}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := NewGeom("b", []float64{0, 0, 0, 1, 0, 0, 0, 0, 1}, [][]int{{0, 1, 2}}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	newIpolygons := a.Append(b)
	if len(newIpolygons) != 1 || newIpolygons[0] != 1 {
		t.Errorf("expected one new polygon at index 1, got %v", newIpolygons)
	}
	// Vertices (0,0,0) and (1,0,0) are shared between a and b -- welding
	// should collapse both duplicates rather than leaving orphaned pairs.
	if a.NVerts() != 4 {
		t.Errorf("expected weld to collapse the two shared vertices to 4 total, got %d", a.NVerts())
	}
}

func TestRandomizeSurfidsIsReproducible(t *testing.T) {
	g1 := goodTet(t)
	g2 := goodTet(t)
	g1.RandomizeSurfids(42, 7)
	g2.RandomizeSurfids(42, 7)
	for i := range g1.Surfids {
		if g1.Surfids[i] != g2.Surfids[i] {
			t.Fatalf("same seed produced different surfids at %d: %d vs %d", i, g1.Surfids[i], g2.Surfids[i])
		}
		if g1.Surfids[i] >= 7 {
			t.Errorf("surfid %d out of requested range", g1.Surfids[i])
		}
	}
}
