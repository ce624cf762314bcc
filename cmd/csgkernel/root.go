// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/galvgeo/csgkernel/mesh"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "csgkernel",
	Short: "csgkernel - boolean solid geometry preprocessing for fire-dynamics meshes",
	Long: `csgkernel reads STL or OBJ meshes, computes boolean union, intersection,
and difference through a BSP-tree engine, and writes the result back out.`,
	SilenceUsage:      true,
	DisableAutoGenTag: true,
}

var verbose bool

// Execute runs the root command, translating errors into the exit
// codes external callers rely on: 0 success, 1 malformed input (I/O,
// parsing, unreadable files), 2 a mesh-sanity-check failure (the
// geometry read fine but isn't a valid solid).
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "csgkernel:", err)
		os.Exit(exitCodeFor(err))
	}
}

func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, mesh.ErrNonManifold),
		errors.Is(err, mesh.ErrNotClosed),
		errors.Is(err, mesh.ErrLooseVerts),
		errors.Is(err, mesh.ErrNoPlane),
		errors.Is(err, mesh.ErrTriangulationImpossible):
		return 2
	default:
		return 1
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cobra.OnInitialize(func() {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	})
}
