// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package mesh

import "github.com/galvgeo/csgkernel/math/lin"

// MergeDuplicatedVerts collapses vertices whose difference vector passes
// lin.V3.AeqZ (squared distance below lin.Epsilon, i.e. distance below
// about 1e-3) into one, relinks every polygon to the surviving indices, and
// returns the number of vertices removed. Polygon winding and surfids
// are untouched.
//
// O(n^2) in vertex count: for every vertex it scans the unique set
// built so far. Geom.Append calls this after every incremental growth,
// so meshes assembled polygon-by-polygon pay this repeatedly; kept
// simple rather than spatially-hashed since the kernel targets
// preprocessing-scale meshes, not real-time ones.
func (g *Geom) MergeDuplicatedVerts() int {
	originalNVerts := g.NVerts()
	uniqueVerts := make([]float64, 0, len(g.Verts))
	ivertToIvert := make([]int, originalNVerts)

	for ivert := 0; ivert < originalNVerts; ivert++ {
		v := g.Vert(ivert)
		seen := -1
		for i := 0; i*3 < len(uniqueVerts); i++ {
			u := lin.V3{X: uniqueVerts[3*i], Y: uniqueVerts[3*i+1], Z: uniqueVerts[3*i+2]}
			if lin.NewV3().Sub(&v, &u).AeqZ() {
				seen = i
				break
			}
		}
		if seen < 0 {
			seen = len(uniqueVerts) / 3
			uniqueVerts = append(uniqueVerts, v.X, v.Y, v.Z)
		}
		ivertToIvert[ivert] = seen
	}

	for i, p := range g.Polygons {
		relinked := make([]int, len(p))
		for j, ivert := range p {
			relinked[j] = ivertToIvert[ivert]
		}
		g.Polygons[i] = relinked
	}
	g.Verts = uniqueVerts
	return originalNVerts - g.NVerts()
}
