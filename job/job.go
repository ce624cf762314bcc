// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Package job loads a YAML batch description of boolean operations to
// run, so the CLI's "run" subcommand can execute a whole pipeline (read
// two solids, union them, clip the result against a third, write the
// output) from one file instead of one flag-driven invocation per step.
// The pipeline itself is supplemental -- the tool this kernel descends
// from only ever ran one hardcoded union in its __main__ block.
package job

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Operation names a boolean operation an individual Step performs.
type Operation string

const (
	OpUnion        Operation = "union"
	OpIntersection Operation = "intersection"
	OpDifference   Operation = "difference"
)

// Step is one entry in a Job's pipeline: combine the named input files
// (by default surfid 0 and 1, in the order given) with Operation. A
// nonzero Surfid is assigned to every polygon of the result. When Output
// is set the result is written there, and a later step naming Output as
// an input reuses it; a result without Output is neither written nor
// available to later steps.
type Step struct {
	Operation Operation `yaml:"operation"`
	Inputs    []string  `yaml:"inputs"`
	Output    string    `yaml:"output,omitempty"`
	Surfid    uint32    `yaml:"surfid,omitempty"`
}

// Job is a batch description of a sequence of Steps, loaded from YAML.
type Job struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Load parses a Job description from r.
func Load(r io.Reader) (*Job, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("job: reading job file: %w", err)
	}
	var j Job
	if err := yaml.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("job: parsing job file: %w", err)
	}
	if err := j.Validate(); err != nil {
		return nil, err
	}
	return &j, nil
}

// LoadFile is a convenience wrapper around Load for a path on disk.
func LoadFile(path string) (*Job, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("job: opening %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// Validate checks that every step names a known operation and exactly
// two input files -- this kernel's boolean operations are all binary.
func (j *Job) Validate() error {
	if len(j.Steps) == 0 {
		return fmt.Errorf("job: %q has no steps", j.Name)
	}
	for i, step := range j.Steps {
		switch step.Operation {
		case OpUnion, OpIntersection, OpDifference:
		default:
			return fmt.Errorf("job: step %d: unknown operation %q", i, step.Operation)
		}
		if len(step.Inputs) != 2 {
			return fmt.Errorf("job: step %d: expected 2 inputs, got %d", i, len(step.Inputs))
		}
	}
	return nil
}
