// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package main

import (
	"fmt"
	"log/slog"

	"github.com/galvgeo/csgkernel/csg"
	"github.com/galvgeo/csgkernel/job"
	"github.com/galvgeo/csgkernel/mesh"
	"github.com/spf13/cobra"
)

var runFormat string

var runCmd = &cobra.Command{
	Use:   "run <job.yaml>",
	Short: "Run a batch of boolean operations described in a YAML job file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		j, err := job.LoadFile(args[0])
		if err != nil {
			return err
		}

		results := map[string]*mesh.Geom{}
		load := func(name string, surfid uint32) (*mesh.Geom, error) {
			if g, ok := results[name]; ok {
				return g, nil
			}
			return readGeom(name, runFormat, surfid)
		}

		var last *mesh.Geom
		for i, step := range j.Steps {
			a, err := load(step.Inputs[0], 0)
			if err != nil {
				return fmt.Errorf("job %q: step %d: %w", j.Name, i, err)
			}
			b, err := load(step.Inputs[1], 1)
			if err != nil {
				return fmt.Errorf("job %q: step %d: %w", j.Name, i, err)
			}
			if err := a.CheckSanity(); err != nil {
				return fmt.Errorf("job %q: step %d: %s: %w", j.Name, i, step.Inputs[0], err)
			}
			if err := b.CheckSanity(); err != nil {
				return fmt.Errorf("job %q: step %d: %s: %w", j.Name, i, step.Inputs[1], err)
			}

			var op func(a, b *mesh.Geom) (*mesh.Geom, error)
			switch step.Operation {
			case job.OpUnion:
				op = csg.Union
			case job.OpIntersection:
				op = csg.Intersection
			case job.OpDifference:
				op = csg.Difference
			}

			slog.Info("job: running step", "job", j.Name, "step", i, "operation", step.Operation)
			result, err := op(a, b)
			if err != nil {
				return fmt.Errorf("job %q: step %d: %w", j.Name, i, err)
			}
			if step.Surfid != 0 {
				result.AssignSurfid(step.Surfid)
			}

			last = result
			if step.Output != "" {
				if err := writeGeom(step.Output, runFormat, result); err != nil {
					return fmt.Errorf("job %q: step %d: %w", j.Name, i, err)
				}
				results[step.Output] = result
			}
		}

		if last == nil {
			return fmt.Errorf("job %q: produced no result", j.Name)
		}
		return nil
	},
}

func init() {
	runCmd.Flags().StringVarP(&runFormat, "format", "f", "", "input/output format: stl or obj (inferred from extension if omitted)")
	rootCmd.AddCommand(runCmd)
}
