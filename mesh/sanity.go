// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package mesh

// CheckLooseVerts fails with ErrLooseVerts if any vertex in g is never
// referenced by a polygon -- geometry with no connectivity to the rest
// of the mesh, left behind by a bad import or a bug in a transform.
func (g *Geom) CheckLooseVerts() error {
	used := make([]bool, g.NVerts())
	maxUsed := -1
	for _, p := range g.Polygons {
		for _, ivert := range p {
			used[ivert] = true
			if ivert > maxUsed {
				maxUsed = ivert
			}
		}
	}
	count := 0
	for _, u := range used {
		if u {
			count++
		}
	}
	if count != g.NVerts() || maxUsed != g.NVerts()-1 {
		return ErrLooseVerts
	}
	return nil
}

// CheckDegenerateGeometry fails if any polygon cannot be triangulated:
// a collinear ring with no derivable plane, or a ring that ear-clipping
// cannot resolve into triangles.
func (g *Geom) CheckDegenerateGeometry() error {
	for ipolygon := range g.Polygons {
		if _, err := g.TrisOfPolygon(ipolygon); err != nil {
			return err
		}
	}
	return nil
}

// CheckIsSolid fails with ErrNotClosed if g has any border halfedge --
// an edge claimed by only one polygon, meaning the surface is not a
// closed 2-manifold.
func (g *Geom) CheckIsSolid() error {
	border, err := g.BorderHalfedges(nil)
	if err != nil {
		return err
	}
	if len(border) > 0 {
		return ErrNotClosed
	}
	return nil
}

// CheckSanity runs the full battery of structural checks a geometry
// must pass before it can be handed to the BSP engine: no loose
// vertices, no degenerate polygons, and a closed, orientable surface.
func (g *Geom) CheckSanity() error {
	if err := g.CheckLooseVerts(); err != nil {
		return err
	}
	if err := g.CheckDegenerateGeometry(); err != nil {
		return err
	}
	if err := g.CheckIsSolid(); err != nil {
		return err
	}
	return nil
}
