// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Package mesh is the polygon-soup substrate the BSP engine in package
// bsp reasons about: a vertex-indexed polygon list with per-polygon
// material ids, half-edge queries, plane splitting, ear-clip
// triangulation, and the sanity predicates that decide whether a
// surface is a closed, orientable 2-manifold.
package mesh

import (
	"errors"

	"github.com/galvgeo/csgkernel/math/lin"
)

// ErrNoPlane is returned by PlaneFromPoints when the accumulated Newell
// normal of the point ring is the zero vector -- the points are collinear
// (or there are fewer than 3 of them) and no plane can be derived.
var ErrNoPlane = errors.New("mesh: no plane through collinear points")

// Plane is an oriented plane {p : normal·p = d}, normal a unit vector.
// Planes are cheap, value-typed, and cloneable.
type Plane struct {
	Normal lin.V3
	D      float64
}

// PlaneFromPoints derives the plane of a polygon from its ordered vertex
// ring using Newell's method: summing (p[i]-p[0]) x (p[i+1]-p[0]) over
// the ring. This is robust to slight non-planarity in concave polygons
// and fails with ErrNoPlane only when every point is collinear.
func PlaneFromPoints(points []lin.V3) (*Plane, error) {
	n := len(points)
	total := lin.NewV3()
	for i := 0; i < n; i++ {
		a := points[0]
		b := points[i]
		c := points[(i+1)%n]
		ba, ca := lin.NewV3().Sub(&b, &a), lin.NewV3().Sub(&c, &a)
		edge := lin.NewV3().Cross(ba, ca)
		total.Add(total, edge)
	}
	if total.AeqZ() {
		return nil, ErrNoPlane
	}
	normal, err := total.Unit()
	if err != nil {
		return nil, ErrNoPlane
	}
	p0 := points[0]
	return &Plane{Normal: *normal, D: p0.Dot(normal)}, nil
}

// Flip inverts the plane's orientation: the oriented plane switches sides.
func (p *Plane) Flip() {
	p.Normal = *lin.NewV3().Neg(&p.Normal)
	p.D = -p.D
}

// Clone returns an independent copy of p.
func (p *Plane) Clone() *Plane {
	c := *p
	return &c
}
