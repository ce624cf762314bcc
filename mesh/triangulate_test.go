// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package mesh

import "testing"

func trisEqual(got []Tri, want []Tri) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestTrisOfPolygonTriangle(t *testing.T) {
	g, err := NewGeom("tri", []float64{0, 0, 0, 1, 0, 0, 0, 1, 0}, [][]int{{0, 1, 2}}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tris, err := g.TrisOfPolygon(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !trisEqual(tris, []Tri{{0, 1, 2}}) {
		t.Errorf("expected [(0 1 2)], got %v", tris)
	}
}

func TestTrisOfPolygonWithCollinearVerts(t *testing.T) {
	verts := []float64{0, 0, 0, 1, 0, 0, 2, 0, 0, 3, 0, 0, 1, 1, 0, 0, 1, 0}
	g, err := NewGeom("hex", verts, [][]int{{0, 1, 2, 3, 4, 5}}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tris, err := g.TrisOfPolygon(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Tri{{2, 3, 4}, {1, 2, 4}, {0, 1, 4}, {0, 4, 5}}
	if !trisEqual(tris, want) {
		t.Errorf("expected %v, got %v", want, tris)
	}
}

func TestTrisOfPolygonZeroAreaFailsWithNoPlane(t *testing.T) {
	verts := []float64{0, 0, 0, 1, 0, 0, 2, 0, 0, 3, 0, 0}
	g, err := NewGeom("flat", verts, [][]int{{0, 1, 2, 3}}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := g.TrisOfPolygon(0); err != ErrNoPlane {
		t.Errorf("expected ErrNoPlane, got %v", err)
	}
}

func TestTrisOfPolygonZeroLengthEdgeFails(t *testing.T) {
	verts := []float64{0, 0, 0, 1, 0, 0, 1, 0, 0, 3, 1, 0}
	g, err := NewGeom("badedge", verts, [][]int{{0, 1, 2, 3}}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := g.TrisOfPolygon(0); err != ErrTriangulationImpossible {
		t.Errorf("expected ErrTriangulationImpossible, got %v", err)
	}
}

func TestTrisOfPolygonLongerAlignment(t *testing.T) {
	verts := []float64{0, 0, 0, 1, 0, 0, 2, 0, 0, 3, 0, 0, 3, 1, 0, 3, 2, 0, 3, 3, 0}
	g, err := NewGeom("heptagon", verts, [][]int{{0, 1, 2, 3, 4, 5, 6}}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tris, err := g.TrisOfPolygon(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Tri{{2, 3, 4}, {1, 2, 4}, {0, 1, 4}, {0, 4, 5}, {0, 5, 6}}
	if !trisEqual(tris, want) {
		t.Errorf("expected %v, got %v", want, tris)
	}
}
