// Package script loads and runs YAML drag scripts: recorded sequences of
// soft-selection drag steps that can be replayed against a mesh.
package script

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/philipparndt/gosculpt/internal/logger"
	"github.com/philipparndt/gosculpt/pkg/deform"
	"github.com/philipparndt/gosculpt/pkg/geometry"
	"github.com/philipparndt/gosculpt/pkg/mesh"
)

// Step is one pointer-move increment of a drag.
type Step struct {
	// Anchor is the vertex index being dragged.
	Anchor int `yaml:"anchor"`
	// Delta is the world-space displacement [x, y, z] for this step.
	Delta [3]float64 `yaml:"delta"`
}

// Script is a replayable sequence of drag steps. Consecutive steps sharing
// an anchor run inside one drag session.
type Script struct {
	Name string `yaml:"name"`
	// Radius, Curve and Threshold override the tool configuration when
	// set; zero values mean "use configured defaults".
	Radius    float64 `yaml:"radius"`
	Curve     string  `yaml:"curve"`
	Threshold float64 `yaml:"threshold"`
	Steps     []Step  `yaml:"steps"`
}

// Load reads a drag script from a YAML file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script %s: %w", path, err)
	}

	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing script %s: %w", path, err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("script %s has no steps", path)
	}
	return &s, nil
}

// Deformer builds a Deformer from the script's overrides on top of base.
func (s *Script) Deformer(base *deform.Deformer) (*deform.Deformer, error) {
	d := *base
	if s.Radius != 0 {
		d.Radius = s.Radius
	}
	if s.Threshold != 0 {
		d.Threshold = s.Threshold
	}
	if s.Curve != "" {
		curve, err := deform.ParseCurve(s.Curve)
		if err != nil {
			return nil, err
		}
		d.Curve = curve
	}
	return &d, nil
}

// Run replays all steps against the mesh. Consecutive steps with the same
// anchor share one drag session; an anchor change ends the session and
// begins a new one.
func (s *Script) Run(m *mesh.Mesh, d *deform.Deformer) error {
	var session *deform.Session
	anchor := -1

	for i, step := range s.Steps {
		if session == nil || step.Anchor != anchor {
			if session != nil {
				session.End()
			}
			var err error
			session, err = d.BeginDrag(m, step.Anchor)
			if err != nil {
				return fmt.Errorf("step %d: %w", i, err)
			}
			anchor = step.Anchor
		}

		delta := geometry.NewVector3(step.Delta[0], step.Delta[1], step.Delta[2])
		if err := session.Drag(delta); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		logger.Sugar.Debugw("applied drag step",
			"step", i, "anchor", step.Anchor, "delta", delta)
	}

	if session != nil {
		session.End()
	}
	return nil
}
