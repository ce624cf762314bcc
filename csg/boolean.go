// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Package csg drives the bsp package to compute boolean operations
// between two solids: union, intersection, and difference. Only union
// was ever exercised by the tool this kernel is grounded on; the other
// two recipes follow the same clip/invert/clip/invert shape with the
// inversions rearranged, a standard result in BSP-based solid geometry.
package csg

import (
	"log/slog"

	"github.com/galvgeo/csgkernel/bsp"
	"github.com/galvgeo/csgkernel/mesh"
)

// buildTree clones geom (operations mutate their tree's Geom freely)
// and builds a BSP tree over it.
func buildTree(geom *mesh.Geom) (*bsp.Node, error) {
	g := geom.Clone()
	node := bsp.NewNode(g)
	if err := node.Build(nil); err != nil {
		return nil, err
	}
	return node, nil
}

// Union returns a new Geom representing the solid union of a and b.
// Neither input is modified.
func Union(a, b *mesh.Geom) (*mesh.Geom, error) {
	na, err := buildTree(a)
	if err != nil {
		return nil, err
	}
	nb, err := buildTree(b)
	if err != nil {
		return nil, err
	}

	if err := na.ClipTo(nb); err != nil {
		return nil, err
	}
	if err := nb.ClipTo(na); err != nil {
		return nil, err
	}
	nb.Invert()
	if err := nb.ClipTo(na); err != nil {
		return nil, err
	}
	nb.Invert()

	if err := na.MergePolygonsToConcave(); err != nil {
		return nil, err
	}
	na.SyncGeom()
	nb.SyncGeom()
	if err := na.Append(nb); err != nil {
		return nil, err
	}

	slog.Info("csg: union complete", "npolygons", na.Geom.NPolygons())
	return na.Geom, nil
}

// Intersection returns a new Geom representing the solid overlap of a
// and b -- the region enclosed by both. Neither input is modified.
func Intersection(a, b *mesh.Geom) (*mesh.Geom, error) {
	na, err := buildTree(a)
	if err != nil {
		return nil, err
	}
	nb, err := buildTree(b)
	if err != nil {
		return nil, err
	}

	na.Invert()
	if err := nb.ClipTo(na); err != nil {
		return nil, err
	}
	nb.Invert()
	if err := na.ClipTo(nb); err != nil {
		return nil, err
	}
	if err := nb.ClipTo(na); err != nil {
		return nil, err
	}

	na.SyncGeom()
	nb.SyncGeom()
	if err := na.Append(nb); err != nil {
		return nil, err
	}
	na.Invert()

	slog.Info("csg: intersection complete", "npolygons", na.Geom.NPolygons())
	return na.Geom, nil
}

// Difference returns a new Geom representing a with the volume of b
// removed. Neither input is modified.
func Difference(a, b *mesh.Geom) (*mesh.Geom, error) {
	na, err := buildTree(a)
	if err != nil {
		return nil, err
	}
	nb, err := buildTree(b)
	if err != nil {
		return nil, err
	}

	na.Invert()
	if err := na.ClipTo(nb); err != nil {
		return nil, err
	}
	if err := nb.ClipTo(na); err != nil {
		return nil, err
	}
	nb.Invert()
	if err := nb.ClipTo(na); err != nil {
		return nil, err
	}
	nb.Invert()

	na.SyncGeom()
	nb.SyncGeom()
	if err := na.Append(nb); err != nil {
		return nil, err
	}
	na.Invert()

	slog.Info("csg: difference complete", "npolygons", na.Geom.NPolygons())
	return na.Geom, nil
}
