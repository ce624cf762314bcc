// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/galvgeo/csgkernel/fileio"
	"github.com/galvgeo/csgkernel/mesh"
)

// formatOf returns the explicit format if given, otherwise infers it
// from path's extension.
func formatOf(path, explicit string) (string, error) {
	if explicit != "" {
		return strings.ToLower(explicit), nil
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".stl":
		return "stl", nil
	case ".obj":
		return "obj", nil
	default:
		return "", fmt.Errorf("cannot infer format from %q, pass --format", path)
	}
}

func readGeom(path, format string, surfid uint32) (*mesh.Geom, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	resolved, err := formatOf(path, format)
	if err != nil {
		return nil, err
	}
	switch resolved {
	case "stl":
		return fileio.ReadSTL(f, surfid)
	case "obj":
		return fileio.ReadOBJ(f)
	default:
		return nil, fmt.Errorf("unsupported input format %q", resolved)
	}
}

func writeGeom(path, format string, geom *mesh.Geom) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	resolved, err := formatOf(path, format)
	if err != nil {
		return err
	}
	switch resolved {
	case "stl":
		return fileio.WriteSTL(f, geom)
	case "obj":
		mtlPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".mtl"
		mtlFile, err := os.Create(mtlPath)
		if err != nil {
			return fmt.Errorf("creating %s: %w", mtlPath, err)
		}
		defer mtlFile.Close()
		if err := fileio.WriteMTL(mtlFile); err != nil {
			return err
		}
		return fileio.WriteOBJ(f, geom, filepath.Base(mtlPath))
	default:
		return fmt.Errorf("unsupported output format %q", resolved)
	}
}
