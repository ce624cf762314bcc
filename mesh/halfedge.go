// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package mesh

// Halfedge is a directed edge (u, v) between two vertex indices, read
// "from u to v". A correctly-wound 2-manifold has, for every interior
// edge, exactly one polygon claiming (u, v) and exactly one other
// claiming the reverse (v, u).
type Halfedge [2]int

// Halfedges maps each directed edge to the index of the polygon that
// winds it, i.e. the polygon lying to its left when looking down the
// polygon's outward normal.
//
// Rebuilt from scratch on every call rather than incrementally
// maintained alongside splits: an incrementally-updated map would need
// invalidation on every update/append/split and this kernel is not
// expected to run on meshes large enough for the O(E) rebuild to
// dominate.
type Halfedges map[Halfedge]int

// Halfedges returns the halfedge map of the given polygon subset, or of
// every polygon in g when ipolygons is nil. It fails with
// ErrNonManifold the first time two polygons claim the same directed
// edge -- the surface is non-manifold or has inconsistent winding.
func (g *Geom) Halfedges(ipolygons []int) (Halfedges, error) {
	if ipolygons == nil {
		ipolygons = g.IPolygons()
	}
	halfedges := make(Halfedges, len(ipolygons)*4)
	for _, ipolygon := range ipolygons {
		polygon := g.Polygon(ipolygon)
		n := len(polygon)
		for i := 0; i < n; i++ {
			he := Halfedge{polygon[i], polygon[(i+1)%n]}
			if _, seen := halfedges[he]; seen {
				return nil, ErrNonManifold
			}
			halfedges[he] = ipolygon
		}
	}
	return halfedges, nil
}

// BorderHalfedges returns the halfedges of ipolygons (or of every
// polygon in g when ipolygons is nil) that have no matching reverse
// halfedge elsewhere in the subset -- the boundary of an open surface.
// A closed, watertight mesh has none.
func (g *Geom) BorderHalfedges(ipolygons []int) (Halfedges, error) {
	halfedges, err := g.Halfedges(ipolygons)
	if err != nil {
		return nil, err
	}
	border := make(Halfedges, len(halfedges))
	for he, ipolygon := range halfedges {
		opposite := Halfedge{he[1], he[0]}
		if _, ok := halfedges[opposite]; !ok {
			border[he] = ipolygon
		}
	}
	return border, nil
}
