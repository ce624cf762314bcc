// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package fileio

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/galvgeo/csgkernel/mesh"
)

// palette is the fixed seven-color material set every written MTL file
// declares, keyed by surfid 0-6. Diffuse-only (Kd); good enough to
// tell materials apart in a viewer without pretending to model real
// surface properties.
var palette = [7][3]float64{
	{0.6, 0.0, 0.0},
	{0.6, 0.6, 0.6},
	{0.0, 0.6, 0.0},
	{0.0, 0.0, 0.6},
	{0.0, 0.6, 0.6},
	{0.6, 0.0, 0.6},
	{0.6, 0.6, 0.0},
}

// WriteOBJ writes geom to w as a Wavefront OBJ, grouping faces by
// surfid under "usemtl" directives, and referencing mtlName as the
// material library (write it with WriteMTL). Vertex coordinates are
// swapped x,z,-y on the way out -- the fire-dynamics convention this
// kernel's geometry is authored in treats z as up, OBJ treats y as up.
func WriteOBJ(w io.Writer, geom *mesh.Geom, mtlName string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# Reference to materials")
	fmt.Fprintf(bw, "mtllib %s\n", mtlName)
	fmt.Fprintln(bw, "# List of vertices x,y,z")
	for ivert := 0; ivert < geom.NVerts(); ivert++ {
		v := geom.Vert(ivert)
		fmt.Fprintf(bw, "v %g %g %g\n", v.X, v.Z, -v.Y)
	}

	surfidToPolygons := make(map[uint32][][]int)
	for ipolygon := 0; ipolygon < geom.NPolygons(); ipolygon++ {
		surfid := geom.PolygonSurfid(ipolygon)
		surfidToPolygons[surfid] = append(surfidToPolygons[surfid], geom.Polygon(ipolygon))
	}
	surfids := make([]uint32, 0, len(surfidToPolygons))
	for surfid := range surfidToPolygons {
		surfids = append(surfids, surfid)
	}
	sort.Slice(surfids, func(i, j int) bool { return surfids[i] < surfids[j] })

	fmt.Fprintln(bw, "# List of polygons by material (surfid)")
	for _, surfid := range surfids {
		fmt.Fprintf(bw, "usemtl %d\n", surfid)
		for _, polygon := range surfidToPolygons[surfid] {
			fmt.Fprint(bw, "f")
			for _, ivert := range polygon {
				fmt.Fprintf(bw, " %d", ivert+1)
			}
			fmt.Fprintln(bw)
		}
	}
	fmt.Fprintln(bw, "# End")
	return bw.Flush()
}

// WriteMTL writes the fixed seven-color material library referenced by
// WriteOBJ. Only materials 0-6 are declared; WriteOBJ still names a
// surfid beyond 6 in its usemtl directive as-is, and that name has no
// entry in this library.
func WriteMTL(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# Materials")
	for i, kd := range palette {
		fmt.Fprintf(bw, "newmtl %d\n", i)
		fmt.Fprintf(bw, "Kd %g %g %g\n", kd[0], kd[1], kd[2])
	}
	return bw.Flush()
}

// ReadOBJ reads a Wavefront OBJ stream, supplemental to the STL path --
// the fire-dynamics tool this kernel descends from only ever wrote OBJ,
// never read it back. Supports the subset WriteOBJ produces: "v x y z"
// vertex lines, "usemtl id" to set the surfid of the faces that follow,
// and "f i j k ..." face lines referencing 1-based vertex indices.
// Vertex coordinates are swapped back x,-z,y to undo WriteOBJ's swap.
// The result is welded and sanity-checked exactly like ReadSTL.
func ReadOBJ(r io.Reader) (*mesh.Geom, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var verts []float64
	var polygons [][]int
	var surfids []uint32
	var surfid uint32

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		fields := strings.Fields(line)
		if len(fields) == 0 || strings.HasPrefix(line, "#") {
			continue
		}
		switch fields[0] {
		case "v":
			if len(fields) != 4 {
				return nil, fmt.Errorf("fileio: ReadOBJ: malformed vertex line %q", line)
			}
			x, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return nil, fmt.Errorf("fileio: ReadOBJ: %w", err)
			}
			y, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("fileio: ReadOBJ: %w", err)
			}
			z, err := strconv.ParseFloat(fields[3], 64)
			if err != nil {
				return nil, fmt.Errorf("fileio: ReadOBJ: %w", err)
			}
			verts = append(verts, x, -z, y)
		case "usemtl":
			if len(fields) != 2 {
				return nil, fmt.Errorf("fileio: ReadOBJ: malformed usemtl line %q", line)
			}
			id, err := strconv.ParseUint(fields[1], 10, 32)
			if err != nil {
				return nil, fmt.Errorf("fileio: ReadOBJ: %w", err)
			}
			surfid = uint32(id)
		case "f":
			polygon := make([]int, 0, len(fields)-1)
			for _, token := range fields[1:] {
				ivert, err := strconv.Atoi(token)
				if err != nil {
					return nil, fmt.Errorf("fileio: ReadOBJ: malformed face index %q: %w", token, err)
				}
				polygon = append(polygon, ivert-1)
			}
			polygons = append(polygons, polygon)
			surfids = append(surfids, surfid)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("fileio: ReadOBJ: %w", err)
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
