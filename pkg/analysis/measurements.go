// Package analysis computes statistics over indexed meshes: bounds,
// dimensions, edge lengths and anchor lookup helpers for deformation.
package analysis

import (
	"fmt"
	"math"

	"github.com/philipparndt/gosculpt/pkg/geometry"
	"github.com/philipparndt/gosculpt/pkg/mesh"
)

// MeshStats contains various measurements of a mesh
type MeshStats struct {
	VertexCount   int
	FaceCount     int
	EdgeCount     int
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	SurfaceArea   float64
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
}

// AnalyzeMesh performs comprehensive analysis on a mesh
func AnalyzeMesh(m *mesh.Mesh) *MeshStats {
	stats := &MeshStats{
		VertexCount: m.VertexCount(),
		FaceCount:   m.FaceCount(),
		BoundingBox: m.BoundingBox(),
		SurfaceArea: m.SurfaceArea(),
	}
	stats.Dimensions = stats.BoundingBox.Size()

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0
	edges := 0

	for _, face := range m.Faces {
		pairs := [3][2]int{
			{face[0], face[1]},
			{face[1], face[2]},
			{face[2], face[0]},
		}
		for _, pair := range pairs {
			length := m.Positions[pair[0]].Distance(m.Positions[pair[1]])
			totalLength += length
			edges++
			if length < minLength {
				minLength = length
			}
			if length > maxLength {
				maxLength = length
			}
		}
	}

	stats.EdgeCount = edges
	if edges > 0 {
		stats.MinEdgeLength = minLength
		stats.MaxEdgeLength = maxLength
		stats.AvgEdgeLength = totalLength / float64(edges)
	}

	return stats
}

// NearestVertex finds the index of the vertex nearest to a given point.
// Used to resolve a world-space pick position to an anchor index.
// Returns -1 for an empty mesh.
func NearestVertex(m *mesh.Mesh, point geometry.Vector3) (int, float64) {
	nearest := -1
	best := math.MaxFloat64

	for i, p := range m.Positions {
		d := p.Distance(point)
		if d < best {
			best = d
			nearest = i
		}
	}

	if nearest == -1 {
		return -1, 0
	}
	return nearest, best
}

// FormatVector formats a vector for display
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
