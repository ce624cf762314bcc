// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package mesh

import "github.com/galvgeo/csgkernel/math/lin"

// Tri is a triangle as three vertex indices, wound the same way as the
// polygon it was cut from.
type Tri [3]int

// TrisOfPolygon triangulates ipolygon by ear-clipping against the
// polygon's overall Newell normal, so a near-planar but not perfectly
// flat (or mildly concave) ring still triangulates correctly. Returns
// ErrTriangulationImpossible when no convex ear can be found -- e.g. a
// zero-length edge collapses a candidate ear to a degenerate triangle --
// and ErrNoPlane when the ring has no derivable plane (e.g. all points
// collinear).
func (g *Geom) TrisOfPolygon(ipolygon int) ([]Tri, error) {
	polygon := append([]int(nil), g.Polygon(ipolygon)...)
	if len(polygon) == 3 {
		return []Tri{{polygon[0], polygon[1], polygon[2]}}, nil
	}
	plane, err := g.PlaneOfPolygon(ipolygon)
	if err != nil {
		return nil, err
	}
	normal := plane.Normal

	var tris []Tri
	for len(polygon) > 2 {
		next, tri, err := earClip(g, polygon, &normal)
		if err != nil {
			return nil, err
		}
		polygon = next
		tris = append(tris, tri)
	}
	return tris, nil
}

// earClip finds the first ear of polygon whose cross product agrees
// with normal -- a convex vertex that does not reflex the ring -- clips
// it out, and returns the remaining ring plus the clipped triangle.
func earClip(g *Geom, polygon []int, normal *lin.V3) ([]int, Tri, error) {
	n := len(polygon)
	for i := 0; i < n-1; i++ {
		ivert0 := polygon[i%n]
		ivert1 := polygon[(i+1)%n]
		ivert2 := polygon[(i+2)%n]
		a, b, c := g.Vert(ivert0), g.Vert(ivert1), g.Vert(ivert2)
		ba := lin.NewV3().Sub(&b, &a)
		ca := lin.NewV3().Sub(&c, &a)
		cross := lin.NewV3().Cross(ba, ca)
		if cross.Dot(normal) > 0 {
			clipped := removeAt(polygon, (i+1)%n)
			return clipped, Tri{ivert0, ivert1, ivert2}, nil
		}
	}
	return nil, Tri{}, ErrTriangulationImpossible
}

// removeAt returns a copy of s with the element at index i removed.
func removeAt(s []int, i int) []int {
	out := make([]int, 0, len(s)-1)
	out = append(out, s[:i]...)
	out = append(out, s[i+1:]...)
	return out
}
