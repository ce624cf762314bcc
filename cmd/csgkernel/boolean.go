// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package main

import (
	"fmt"
	"log/slog"

	"github.com/galvgeo/csgkernel/csg"
	"github.com/galvgeo/csgkernel/mesh"
	"github.com/spf13/cobra"
)

var (
	outputPath string
	format     string
)

func newBooleanCmd(use, short string, op func(a, b *mesh.Geom) (*mesh.Geom, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <a> <b>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := readGeom(args[0], format, 0)
			if err != nil {
				return err
			}
			b, err := readGeom(args[1], format, 1)
			if err != nil {
				return err
			}
			if err := a.CheckSanity(); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			if err := b.CheckSanity(); err != nil {
				return fmt.Errorf("%s: %w", args[1], err)
			}

			slog.Info("running boolean operation", "op", use, "a", args[0], "b", args[1])
			result, err := op(a, b)
			if err != nil {
				return err
			}
			if outputPath == "" {
				return fmt.Errorf("--output is required")
			}
			return writeGeom(outputPath, format, result)
		},
	}
}

func init() {
	unionCmd := newBooleanCmd("union", "Compute the union of two solids", csg.Union)
	intersectCmd := newBooleanCmd("intersect", "Compute the intersection of two solids", csg.Intersection)
	differenceCmd := newBooleanCmd("difference", "Subtract the second solid from the first", csg.Difference)

	for _, c := range []*cobra.Command{unionCmd, intersectCmd, differenceCmd} {
		c.Flags().StringVarP(&outputPath, "output", "o", "", "output file path")
		c.Flags().StringVarP(&format, "format", "f", "", "input/output format: stl or obj (inferred from extension if omitted)")
		rootCmd.AddCommand(c)
	}
}
