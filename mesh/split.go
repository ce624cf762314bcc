// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package mesh

import "github.com/galvgeo/csgkernel/math/lin"

// Side classifies a vertex or polygon against a splitting plane.
type Side int

const (
	Coplanar Side = 0
	Front    Side = 1
	Back     Side = 2
	Spanning Side = 3 // Front|Back
)

// epsilonCut is the base cutoff used to classify a vertex-to-plane
// distance as coplanar. The source kernel scaled only by |plane.D|,
// which degenerates to zero tolerance for any plane through the origin
// -- every vertex then either strictly fails or strictly passes, with
// no room for the floating-point noise splitting itself introduces.
// The threshold here is max(epsilonCut, epsilonCut*|d|): an absolute
// floor that still widens proportionally to the plane's offset.
const epsilonCut = 1e-6

func classifyDistance(distance, d float64) Side {
	threshold := epsilonCut * absF(d)
	if threshold < epsilonCut {
		threshold = epsilonCut
	}
	switch {
	case distance < -threshold:
		return Back
	case distance > threshold:
		return Front
	default:
		return Coplanar
	}
}

func absF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// SplitPolygon classifies ipolygon against plane and routes it (or its
// fragments) into one of the four inline lists: coplanarFront and
// coplanarBack for a polygon lying in the plane (split by normal
// agreement, not position), front and back for a polygon lying wholly
// to one side, or -- when the polygon straddles the plane -- a fresh
// pair of polygons are cut along the plane and their indices appended
// to front and back instead.
//
// Cutting a SPANNING polygon appends exactly one new vertex per
// spanning edge (via lin.V3.Lerp) and, for each such edge, threads the
// new cut vertex into whichever neighboring polygon shares that edge --
// found through Geom.Halfedges -- so the two polygons stay welded along
// the cut instead of drifting into a crack.
func (g *Geom) SplitPolygon(ipolygon int, plane *Plane, coplanarFront, coplanarBack, front, back *[]int) error {
	polygon := g.Polygon(ipolygon)
	n := len(polygon)
	surfid := g.PolygonSurfid(ipolygon)

	ivertTypes := make([]Side, n)
	var polygonType Side
	for i, ivert := range polygon {
		v := g.Vert(ivert)
		distance := plane.Normal.Dot(&v) - plane.D
		ivertTypes[i] = classifyDistance(distance, plane.D)
		polygonType |= ivertTypes[i]
	}

	switch polygonType {
	case Coplanar:
		polyPlane, err := g.PlaneOfPolygon(ipolygon)
		if err != nil {
			return err
		}
		if plane.Normal.Dot(&polyPlane.Normal) > 0 {
			*coplanarFront = append(*coplanarFront, ipolygon)
		} else {
			*coplanarBack = append(*coplanarBack, ipolygon)
		}
		return nil
	case Front:
		*front = append(*front, ipolygon)
		return nil
	case Back:
		*back = append(*back, ipolygon)
		return nil
	}

	// Spanning: cut the ring into a front fragment and a back fragment,
	// tracking per-spanning-edge cut vertices so bordering polygons can
	// be threaded with the same new vertex below.
	var frontIverts, backIverts []int
	splitEdges := make(map[Halfedge]int)

	for i, ivert0 := range polygon {
		j := (i + 1) % n
		ivert1 := polygon[j]
		type0, type1 := ivertTypes[i], ivertTypes[j]

		if type0 != Back {
			frontIverts = append(frontIverts, ivert0)
		}
		if type0 != Front {
			backIverts = append(backIverts, ivert0)
		}

		if (type0 | type1) == Spanning {
			vert0, vert1 := g.Vert(ivert0), g.Vert(ivert1)
			denom := plane.Normal.Dot(lin.NewV3().Sub(&vert1, &vert0))
			t := (plane.D - plane.Normal.Dot(&vert0)) / denom
			cutVert := lin.NewV3().Lerp(&vert0, &vert1, t)
			cutIvert := g.AppendVert(*cutVert)

			splitEdges[Halfedge{ivert1, ivert0}] = cutIvert
			frontIverts = append(frontIverts, cutIvert)
			backIverts = append(backIverts, cutIvert)
		}
	}

	updated := false
	if len(frontIverts) >= 3 {
		updated = true
		*front = append(*front, g.UpdatePolygon(ipolygon, frontIverts))
	}
	if len(backIverts) >= 3 {
		var newIpolygon int
		if updated {
			newIpolygon = g.AppendPolygon(backIverts, surfid)
		} else {
			updated = true
			newIpolygon = g.UpdatePolygon(ipolygon, backIverts)
		}
		*back = append(*back, newIpolygon)
	}

	halfedges, err := g.Halfedges(nil)
	if err != nil {
		return err
	}
	for splitEdge, cutIvert := range splitEdges {
		splIpolygon, ok := halfedges[splitEdge]
		if !ok {
			continue // border: no neighbor to thread the cut vertex into
		}
		splPolygon := g.Polygon(splIpolygon)
		for k, ivert := range splPolygon {
			if ivert == splitEdge[0] {
				injected := make([]int, 0, len(splPolygon)+1)
				injected = append(injected, splPolygon[:k+1]...)
				injected = append(injected, cutIvert)
				injected = append(injected, splPolygon[k+1:]...)
				g.UpdatePolygon(splIpolygon, injected)
				break
			}
		}
	}
	return nil
}
