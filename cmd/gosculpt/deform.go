package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gosculpt/internal/logger"
	"github.com/philipparndt/gosculpt/pkg/analysis"
	"github.com/philipparndt/gosculpt/pkg/deform"
	"github.com/philipparndt/gosculpt/pkg/stl"
)

var deformFlags struct {
	anchor    int
	anchorPos string
	delta     string
	steps     int
	radius    float64
	curve     string
	threshold float64
	output    string
	ascii     bool
	watch     bool
}

var deformCmd = &cobra.Command{
	Use:   "deform <file>",
	Short: "Apply a soft-selection drag to a mesh",
	Long: `Drag an anchor vertex by a world-space delta. Vertices within the falloff
radius follow with distance-attenuated displacement; vertices within the
adjacency threshold of any influenced vertex receive an extra half-strength
nudge. The drag can be split into multiple incremental steps.`,
	Args: cobra.ExactArgs(1),
	Run:  runDeform,
}

func init() {
	deformCmd.Flags().IntVar(&deformFlags.anchor, "anchor", -1, "anchor vertex index")
	deformCmd.Flags().StringVar(&deformFlags.anchorPos, "anchor-pos", "", "pick the vertex nearest to x,y,z as anchor")
	deformCmd.Flags().StringVar(&deformFlags.delta, "delta", "", "world-space displacement x,y,z (required)")
	deformCmd.Flags().IntVar(&deformFlags.steps, "steps", 1, "split the drag into this many incremental steps")
	deformCmd.Flags().Float64Var(&deformFlags.radius, "radius", 0, "falloff radius (default from config)")
	deformCmd.Flags().StringVar(&deformFlags.curve, "curve", "", "falloff curve: linear, smooth or cubic")
	deformCmd.Flags().Float64Var(&deformFlags.threshold, "threshold", 0, "adjacency threshold (default from config)")
	deformCmd.Flags().StringVarP(&deformFlags.output, "output", "o", "", "output file (default <file>.deformed.stl)")
	deformCmd.Flags().BoolVar(&deformFlags.ascii, "ascii", false, "write ASCII STL instead of binary")
	deformCmd.Flags().BoolVar(&deformFlags.watch, "watch", false, "re-run when the input file changes")
	_ = deformCmd.MarkFlagRequired("delta")
	rootCmd.AddCommand(deformCmd)
}

func runDeform(cmd *cobra.Command, args []string) {
	input := args[0]
	output := deformFlags.output
	if output == "" {
		output = stl.DeriveOutputName(input)
	}

	run := func() error { return deformOnce(input, output) }

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if deformFlags.watch {
		watchAndRerun([]string{input}, run)
	}
}

// deformOnce runs the full pipeline: load, resolve anchor, drag, save.
func deformOnce(input, output string) error {
	m, err := loadMesh(input)
	if err != nil {
		return err
	}

	d, err := deformerFromFlags()
	if err != nil {
		return err
	}

	anchor := deformFlags.anchor
	if deformFlags.anchorPos != "" {
		point, err := parseVec3(deformFlags.anchorPos)
		if err != nil {
			return fmt.Errorf("--anchor-pos: %w", err)
		}
		var dist float64
		anchor, dist = analysis.NearestVertex(m, point)
		if anchor < 0 {
			return fmt.Errorf("mesh %s has no vertices", input)
		}
		logger.Sugar.Debugw("resolved anchor from position",
			"anchor", anchor, "distance", dist)
	}
	if anchor < 0 {
		return fmt.Errorf("either --anchor or --anchor-pos is required")
	}

	delta, err := parseVec3(deformFlags.delta)
	if err != nil {
		return fmt.Errorf("--delta: %w", err)
	}

	steps := deformFlags.steps
	if steps < 1 {
		steps = 1
	}
	stepDelta := delta.Mul(1.0 / float64(steps))

	start := time.Now()
	session, err := d.BeginDrag(m, anchor)
	if err != nil {
		return err
	}
	for i := 0; i < steps; i++ {
		if err := session.Drag(stepDelta); err != nil {
			return fmt.Errorf("drag step %d: %w", i, err)
		}
	}
	session.End()

	logger.Sugar.Infow("deformation applied",
		"anchor", anchor,
		"delta", delta,
		"steps", steps,
		"radius", d.Radius,
		"curve", d.Curve.String(),
		"elapsed", time.Since(start))

	return saveMesh(m, output, deformFlags.ascii)
}

// deformerFromFlags layers command flags over the configured defaults
func deformerFromFlags() (*deform.Deformer, error) {
	d, err := baseDeformer()
	if err != nil {
		return nil, err
	}
	if deformFlags.radius != 0 {
		d.Radius = deformFlags.radius
	}
	if deformFlags.threshold != 0 {
		d.Threshold = deformFlags.threshold
	}
	if deformFlags.curve != "" {
		curve, err := deform.ParseCurve(deformFlags.curve)
		if err != nil {
			return nil, err
		}
		d.Curve = curve
	}
	return d, nil
}
