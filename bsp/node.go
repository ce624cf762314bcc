// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Package bsp builds and manipulates binary space partitioning trees
// over a mesh.Geom: recursively splitting polygons along their own
// planes so that any other polygon can be classified and clipped
// against the accumulated solid in O(tree depth) time. This is the
// engine the csg package drives to compute boolean operations.
package bsp

import (
	"log/slog"

	"github.com/galvgeo/csgkernel/mesh"
)

// Node is one node of a BSP tree: a splitting plane, the polygons that
// lie coplanar with it, and the front/back subtrees holding everything
// on either side. Every node in a tree shares the same underlying
// Geom -- only Ipolygons, and which node claims which index, changes.
type Node struct {
	Geom      *mesh.Geom
	Plane     *mesh.Plane
	Ipolygons []int
	Front     *Node
	Back      *Node
}

// NewNode creates an empty (unbuilt) BSP node over geom.
func NewNode(geom *mesh.Geom) *Node {
	return &Node{Geom: geom}
}

// Build recursively partitions ipolygons (or, on the first call, every
// polygon in the node's Geom) into this subtree. The splitting plane of
// a node is fixed to the plane of the first polygon assigned to it;
// calling Build again on an existing tree with new polygon indices (as
// Append does) filters them down to their matching leaves instead of
// rebuilding the tree from scratch.
func (n *Node) Build(ipolygons []int) error {
	if ipolygons == nil {
		ipolygons = n.Geom.IPolygons()
	}
	if len(ipolygons) == 0 {
		return nil
	}

	start := 0
	if n.Plane == nil {
		plane, err := n.Geom.PlaneOfPolygon(ipolygons[0])
		if err != nil {
			return err
		}
		n.Plane = plane
		n.Ipolygons = append(n.Ipolygons, ipolygons[0])
		start = 1
	}

	var front, back []int
	for _, ipolygon := range ipolygons[start:] {
		if err := n.Geom.SplitPolygon(ipolygon, n.Plane, &n.Ipolygons, &n.Ipolygons, &front, &back); err != nil {
			return err
		}
	}

	if len(front) > 0 {
		if n.Front == nil {
			n.Front = NewNode(n.Geom)
		}
		if err := n.Front.Build(front); err != nil {
			return err
		}
	}
	if len(back) > 0 {
		if n.Back == nil {
			n.Back = NewNode(n.Geom)
		}
		if err := n.Back.Build(back); err != nil {
			return err
		}
	}
	return nil
}

// Invert swaps solid and empty space throughout the tree: the Geom is
// flipped exactly once (every polygon normal reversed), then every
// node's plane is flipped and its front/back children swapped.
func (n *Node) Invert() {
	n.Geom.Flip()
	n.invertNode()
}

func (n *Node) invertNode() {
	if n.Plane != nil {
		n.Plane.Flip()
	}
	if n.Front != nil {
		n.Front.invertNode()
	}
	if n.Back != nil {
		n.Back.invertNode()
	}
	n.Front, n.Back = n.Back, n.Front
}

// ClipPolygons recursively removes every polygon in ipolygons (indices
// into geom, which splitting may extend with cut fragments) that falls
// inside the solid region this tree represents, returning the
// survivors. A leaf's back side has no back_node -- by BSP convention
// that means solid space, so anything classified back at a leaf is
// discarded rather than kept.
func (n *Node) ClipPolygons(geom *mesh.Geom, ipolygons []int) ([]int, error) {
	if n.Plane == nil {
		return ipolygons, nil
	}

	var front, back []int
	for _, ipolygon := range ipolygons {
		if err := geom.SplitPolygon(ipolygon, n.Plane, &front, &back, &front, &back); err != nil {
			return nil, err
		}
	}

	var err error
	if n.Front != nil {
		if front, err = n.Front.ClipPolygons(geom, front); err != nil {
			return nil, err
		}
	}
	if n.Back != nil {
		if back, err = n.Back.ClipPolygons(geom, back); err != nil {
			return nil, err
		}
	} else {
		back = nil
	}

	return append(front, back...), nil
}

// ClipTo removes, throughout this tree, every polygon that lies inside
// the solid region clippingBSP represents.
func (n *Node) ClipTo(clippingBSP *Node) error {
	clipped, err := clippingBSP.ClipPolygons(n.Geom, n.Ipolygons)
	if err != nil {
		return err
	}
	n.Ipolygons = clipped
	if n.Front != nil {
		if err := n.Front.ClipTo(clippingBSP); err != nil {
			return err
		}
	}
	if n.Back != nil {
		if err := n.Back.ClipTo(clippingBSP); err != nil {
			return err
		}
	}
	return nil
}

// AllIpolygons returns every polygon index held anywhere in the tree.
// Traversal uses an explicit work stack rather than recursion -- a
// deeply unbalanced tree (a BSP built from an already-mostly-sorted
// polygon list degenerates close to a linked list) would otherwise risk
// a deep call stack for no benefit.
func (n *Node) AllIpolygons() []int {
	var all []int
	stack := []*Node{n}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if node == nil {
			continue
		}
		all = append(all, node.Ipolygons...)
		stack = append(stack, node.Back, node.Front)
	}
	return all
}

// Append grows this tree with other's geometry: other's Geom is merged
// into this node's Geom (vertices welded, polygons re-indexed), and the
// newly-added polygons are filtered down into the existing tree via
// Build rather than triggering a full rebuild.
func (n *Node) Append(other *Node) error {
	newIpolygons := n.Geom.Append(other.Geom)
	slog.Debug("bsp: appended tree", "new_polygons", len(newIpolygons))
	return n.Build(newIpolygons)
}

// SyncGeom rewrites the node's Geom so its Polygons/Surfids match
// exactly, and in order, what the tree currently claims -- dropping any
// polygon that clipping discarded along the way. Call this once,
// always at the tree's root, after clipping is done.
func (n *Node) SyncGeom() {
	geom := n.Geom
	all := n.AllIpolygons()
	polygons := make([][]int, len(all))
	surfids := make([]uint32, len(all))
	for i, ipolygon := range all {
		polygons[i] = geom.Polygon(ipolygon)
		surfids[i] = geom.PolygonSurfid(ipolygon)
	}
	geom.Polygons = polygons
	geom.Surfids = surfids
}

// Clone returns a deep copy of the subtree rooted at n. The underlying
// Geom pointer is shared, matching the tree's existing convention that
// every node in one tree points at the same Geom.
func (n *Node) Clone() *Node {
	c := &Node{Geom: n.Geom, Ipolygons: append([]int(nil), n.Ipolygons...)}
	if n.Plane != nil {
		c.Plane = n.Plane.Clone()
	}
	if n.Front != nil {
		c.Front = n.Front.Clone()
	}
	if n.Back != nil {
		c.Back = n.Back.Clone()
	}
	return c
}
