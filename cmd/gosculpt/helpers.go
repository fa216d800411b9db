package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/philipparndt/gosculpt/internal/logger"
	"github.com/philipparndt/gosculpt/pkg/deform"
	"github.com/philipparndt/gosculpt/pkg/geometry"
	"github.com/philipparndt/gosculpt/pkg/mesh"
	"github.com/philipparndt/gosculpt/pkg/stl"
)

// parseVec3 parses a comma-separated "x,y,z" vector flag
func parseVec3(s string) (geometry.Vector3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return geometry.Vector3{}, fmt.Errorf("expected x,y,z but got %q", s)
	}

	var components [3]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return geometry.Vector3{}, fmt.Errorf("invalid component %q in %q", part, s)
		}
		components[i] = v
	}
	return geometry.NewVector3(components[0], components[1], components[2]), nil
}

// loadMesh parses an STL file and builds a welded indexed mesh from it
func loadMesh(filename string) (*mesh.Mesh, error) {
	start := time.Now()
	model, err := stl.Parse(filename)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}

	m := mesh.FromModel(model, cfg.Mesh.WeldDecimals)
	logger.Sugar.Debugw("loaded mesh",
		"file", filename,
		"triangles", model.TriangleCount(),
		"vertices", m.VertexCount(),
		"elapsed", time.Since(start))
	return m, nil
}

// saveMesh recomputes normals if needed and writes the mesh as STL
func saveMesh(m *mesh.Mesh, filename string, ascii bool) error {
	if m.NormalsDirty() {
		m.RecomputeNormals()
	}
	if err := stl.Write(m.ToModel(), filename, ascii); err != nil {
		return fmt.Errorf("writing %s: %w", filename, err)
	}
	logger.Sugar.Infow("wrote mesh", "file", filename, "vertices", m.VertexCount())
	return nil
}

// baseDeformer builds a Deformer from configuration defaults
func baseDeformer() (*deform.Deformer, error) {
	curve, err := deform.ParseCurve(cfg.Deform.Curve)
	if err != nil {
		return nil, err
	}
	return &deform.Deformer{
		Radius:    cfg.Deform.Radius,
		Curve:     curve,
		Threshold: cfg.Deform.Threshold,
	}, nil
}
