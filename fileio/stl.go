// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Package fileio reads and writes the on-disk formats this kernel
// exchanges geometry through: ASCII STL and Wavefront OBJ/MTL. Readers
// and writers take an io.Reader/io.Writer rather than a filename so
// callers can point them at anything -- a file, a network stream, or a
// bytes.Buffer in a test.
package fileio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/galvgeo/csgkernel/mesh"
)

// WriteSTL writes geom to w as ASCII STL, triangulating every polygon
// first. Facet normals are written as the placeholder "0 0 0" -- this
// kernel never computes per-facet normals, and most STL consumers
// recompute them from the vertex winding on import anyway.
func WriteSTL(w io.Writer, geom *mesh.Geom) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, "solid name"); err != nil {
		return err
	}
	for ipolygon := 0; ipolygon < geom.NPolygons(); ipolygon++ {
		tris, err := geom.TrisOfPolygon(ipolygon)
		if err != nil {
			return fmt.Errorf("fileio: WriteSTL: polygon %d: %w", ipolygon, err)
		}
		for _, tri := range tris {
			fmt.Fprintln(bw, "facet normal 0 0 0")
			fmt.Fprintln(bw, " outer loop")
			for _, ivert := range tri {
				v := geom.Vert(ivert)
				fmt.Fprintf(bw, "  vertex %.9f %.9f %.9f\n", v.X, v.Y, v.Z)
			}
			fmt.Fprintln(bw, " endloop")
			fmt.Fprintln(bw, "endfacet")
		}
	}
	if _, err := fmt.Fprintln(bw, "endsolid name"); err != nil {
		return err
	}
	return bw.Flush()
}

// ReadSTL reads an ASCII STL stream into a new Geom, merging duplicated
// vertices so adjoining facets share indices instead of each carrying
// its own copy, assigns every resulting polygon the given surfid, and
// runs Geom.CheckSanity before returning.
func ReadSTL(r io.Reader, surfid uint32) (*mesh.Geom, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var verts []float64
	var polygons [][]int
	var tri []int

	for scanner.Scan() {
		var x, y, z float64
		line := scanner.Text()
		switch {
		case matchesKeyword(line, "vertex"):
			if _, err := fmt.Sscanf(line, " vertex %f %f %f", &x, &y, &z); err != nil {
				return nil, fmt.Errorf("fileio: ReadSTL: malformed vertex line %q: %w", line, err)
			}
			ivert := len(verts) / 3
			verts = append(verts, x, y, z)
			tri = append(tri, ivert)
		case matchesKeyword(line, "endloop"):
			if len(tri) != 3 {
				return nil, fmt.Errorf("fileio: ReadSTL: facet with %d vertices, want 3", len(tri))
			}
			polygons = append(polygons, tri)
			tri = nil
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("fileio: ReadSTL: %w", err)
	}

	surfids := make([]uint32, len(polygons))
	for i := range surfids {
		surfids[i] = surfid
	}
	geom, err := mesh.NewGeom("", verts, polygons, surfids)
	if err != nil {
		return nil, err
	}
	geom.MergeDuplicatedVerts()
	if err := geom.CheckSanity(); err != nil {
		return nil, err
	}
	return geom, nil
}

// matchesKeyword reports whether the trimmed-left line begins with
// keyword, the same loose token-at-a-time approach the rest of this
// package's parsers use.
func matchesKeyword(line, keyword string) bool {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return len(line[i:]) >= len(keyword) && line[i:i+len(keyword)] == keyword
}
