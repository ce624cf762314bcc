// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package mesh

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/galvgeo/csgkernel/math/lin"
)

// Errors describing malformed construction and geometry that violates
// one of Geom's invariants. Each maps to one of the failure classes a
// caller needs to distinguish: malformed construction, degenerate
// geometry, or a mesh invariant violation.
var (
	ErrSurfidMismatch = errors.New("mesh: surfid count does not match polygon count")
	ErrIndexRange     = errors.New("mesh: polygon references a vertex index out of range")

	ErrTriangulationImpossible = errors.New("mesh: triangulation impossible")
	ErrLooseVerts              = errors.New("mesh: loose vertices present")
	ErrNonManifold             = errors.New("mesh: non-manifold or unorientable")
	ErrNotClosed               = errors.New("mesh: surface is not closed")
)

// Geom is a vertex-indexed polygon soup: a flat array of packed vertex
// triples, an ordered list of polygons (each a ring of >=3 vertex
// indices, oriented counter-clockwise seen from outside), and one
// material id (surfid) per polygon.
//
// A vertex index i refers to the coordinate triple at Verts[3i:3i+3].
// Invariants: len(Surfids) == len(Polygons); every polygon index lies
// in [0, NVerts()); after MergeDuplicatedVerts no two vertices are
// within lin.Epsilon of each other; after CheckIsSolid every directed
// half-edge has exactly one reverse half-edge elsewhere in the mesh.
type Geom struct {
	Hid      string
	Verts    []float64
	Polygons [][]int
	Surfids  []uint32
}

// NewGeom builds a Geom from packed vertex triples, polygon vertex
// rings, and per-polygon surfids. A nil surfids defaults every polygon
// to surfid 0 (spec.md/SPEC_FULL.md §9 -- a fixed, reproducible
// default, not the source's unseeded random choice; see
// RandomizeSurfids for an explicit, seeded alternative).
func NewGeom(hid string, verts []float64, polygons [][]int, surfids []uint32) (*Geom, error) {
	g := &Geom{Hid: hid, Verts: append([]float64(nil), verts...)}
	g.Polygons = make([][]int, len(polygons))
	for i, p := range polygons {
		g.Polygons[i] = append([]int(nil), p...)
	}
	if surfids == nil {
		g.Surfids = make([]uint32, len(polygons))
	} else {
		if len(surfids) != len(polygons) {
			return nil, ErrSurfidMismatch
		}
		g.Surfids = append([]uint32(nil), surfids...)
	}
	if err := g.checkIndexRange(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Geom) checkIndexRange() error {
	nv := g.NVerts()
	for _, p := range g.Polygons {
		for _, ivert := range p {
			if ivert < 0 || ivert >= nv {
				return ErrIndexRange
			}
		}
	}
	return nil
}

// NVerts returns the number of vertices in the mesh.
func (g *Geom) NVerts() int { return len(g.Verts) / 3 }

// NPolygons returns the number of polygons in the mesh.
func (g *Geom) NPolygons() int { return len(g.Polygons) }

// IPolygons returns every polygon index, 0..NPolygons()-1.
func (g *Geom) IPolygons() []int {
	ip := make([]int, g.NPolygons())
	for i := range ip {
		ip[i] = i
	}
	return ip
}

// IVerts returns every vertex index, 0..NVerts()-1.
func (g *Geom) IVerts() []int {
	iv := make([]int, g.NVerts())
	for i := range iv {
		iv[i] = i
	}
	return iv
}

// Vert returns the vertex at ivert.
func (g *Geom) Vert(ivert int) lin.V3 {
	i := 3 * ivert
	return lin.V3{X: g.Verts[i], Y: g.Verts[i+1], Z: g.Verts[i+2]}
}

// AppendVert appends a new vertex, returning its index. Split operations
// only ever append new vertices -- they are never deleted.
func (g *Geom) AppendVert(v lin.V3) int {
	ivert := g.NVerts()
	g.Verts = append(g.Verts, v.X, v.Y, v.Z)
	return ivert
}

// Polygon returns the vertex ring of ipolygon.
func (g *Geom) Polygon(ipolygon int) []int { return g.Polygons[ipolygon] }

// PolygonSurfid returns the material id of ipolygon.
func (g *Geom) PolygonSurfid(ipolygon int) uint32 { return g.Surfids[ipolygon] }

// UpdatePolygon replaces the vertex ring of ipolygon in place, returning
// ipolygon for call-site symmetry with AppendPolygon.
func (g *Geom) UpdatePolygon(ipolygon int, verts []int) int {
	g.Polygons[ipolygon] = verts
	return ipolygon
}

// AppendPolygon appends a new polygon with the given vertex ring and
// surfid, returning its index.
func (g *Geom) AppendPolygon(verts []int, surfid uint32) int {
	ipolygon := g.NPolygons()
	g.Polygons = append(g.Polygons, verts)
	g.Surfids = append(g.Surfids, surfid)
	return ipolygon
}

// PlaneOfPolygon derives the plane of ipolygon from its current vertex
// ring. The plane is never cached -- splitting invalidates it, so it is
// always re-derived on demand.
func (g *Geom) PlaneOfPolygon(ipolygon int) (*Plane, error) {
	polygon := g.Polygon(ipolygon)
	points := make([]lin.V3, len(polygon))
	for i, ivert := range polygon {
		points[i] = g.Vert(ivert)
	}
	return PlaneFromPoints(points)
}

// Flip reverses every polygon's vertex order, flipping every normal.
func (g *Geom) Flip() {
	for _, p := range g.Polygons {
		for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
			p[i], p[j] = p[j], p[i]
		}
	}
}

// FlipPolygons reverses the vertex order of the given polygons only.
func (g *Geom) FlipPolygons(ipolygons []int) {
	for _, ipolygon := range ipolygons {
		p := g.Polygons[ipolygon]
		for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
			p[i], p[j] = p[j], p[i]
		}
	}
}

// Clone returns an independent deep copy of g.
func (g *Geom) Clone() *Geom {
	c := &Geom{Hid: g.Hid}
	c.Verts = append([]float64(nil), g.Verts...)
	c.Polygons = make([][]int, len(g.Polygons))
	for i, p := range g.Polygons {
		c.Polygons[i] = append([]int(nil), p...)
	}
	c.Surfids = append([]uint32(nil), g.Surfids...)
	return c
}

// Append extends g with the vertices, polygons, and surfids of other,
// shifting other's polygon vertex indices by g's original vertex count,
// then welds duplicate vertices. It returns the indices, in the
// extended g, of the newly-added polygons -- used by bsp.Node.Append to
// incrementally rebuild the tree with just the new material.
func (g *Geom) Append(other *Geom) []int {
	originalNVerts := g.NVerts()
	originalNPolygons := g.NPolygons()

	for i := 0; i < len(other.Verts); i += 3 {
		g.Verts = append(g.Verts, other.Verts[i], other.Verts[i+1], other.Verts[i+2])
	}
	for _, p := range other.Polygons {
		shifted := make([]int, len(p))
		for i, ivert := range p {
			shifted[i] = ivert + originalNVerts
		}
		g.Polygons = append(g.Polygons, shifted)
	}
	g.Surfids = append(g.Surfids, other.Surfids...)

	g.MergeDuplicatedVerts()

	newIpolygons := make([]int, g.NPolygons()-originalNPolygons)
	for i := range newIpolygons {
		newIpolygons[i] = originalNPolygons + i
	}
	return newIpolygons
}

// RandomizeSurfids assigns every polygon a surfid drawn from
// [0, nsurfids) using a seeded, reproducible source -- the explicit,
// seeded alternative to the source tool's unseeded per-construction
// random default (spec.md §9 / SPEC_FULL.md §9).
func (g *Geom) RandomizeSurfids(seed uint64, nsurfids uint32) {
	if nsurfids == 0 {
		return
	}
	src := rand.New(rand.NewSource(int64(seed)))
	for i := range g.Surfids {
		g.Surfids[i] = uint32(src.Intn(int(nsurfids)))
	}
}

// AssignSurfid sets every polygon's surfid to the same fixed value.
func (g *Geom) AssignSurfid(surfid uint32) {
	for i := range g.Surfids {
		g.Surfids[i] = surfid
	}
}

func (g *Geom) String() string {
	return fmt.Sprintf("Geom(hid=%q, nverts=%d, npolygons=%d)", g.Hid, g.NVerts(), g.NPolygons())
}
