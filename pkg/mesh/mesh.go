// Package mesh provides an indexed vertex/face mesh built from triangle
// soup, with shared vertex positions suitable for soft-selection editing.
package mesh

import (
	"github.com/philipparndt/gosculpt/pkg/geometry"
	"github.com/philipparndt/gosculpt/pkg/stl"
)

// DefaultWeldDecimals is the coordinate precision used to weld coincident
// vertices when building a mesh from triangle soup.
const DefaultWeldDecimals = 5

// Mesh holds an ordered vertex position buffer, per-vertex normals and
// triangle faces indexing into the buffer. The vertex count is fixed for
// the lifetime of the mesh; deformation mutates positions in place.
type Mesh struct {
	Name      string
	Positions []geometry.Vector3
	Normals   []geometry.Vector3
	Faces     [][3]int

	normalsDirty bool
}

// New creates a mesh from a raw position buffer with no faces.
// Useful for synthetic geometry in tests and benchmarks.
func New(positions []geometry.Vector3) *Mesh {
	m := &Mesh{
		Positions: positions,
		Normals:   make([]geometry.Vector3, len(positions)),
	}
	return m
}

// FromModel builds an indexed mesh from an STL model by welding vertices
// whose coordinates are equal after quantizing to weldDecimals decimal
// places. STL stores each triangle's vertices independently, so welding is
// what gives neighboring triangles a shared, deformable vertex.
func FromModel(model *stl.Model, weldDecimals int) *Mesh {
	m := &Mesh{
		Name:  model.Name,
		Faces: make([][3]int, 0, len(model.Triangles)),
	}

	lookup := make(map[geometry.Vector3]int)
	addVertex := func(p geometry.Vector3) int {
		key := p.Quantize(weldDecimals)
		if idx, ok := lookup[key]; ok {
			return idx
		}
		idx := len(m.Positions)
		lookup[key] = idx
		m.Positions = append(m.Positions, p)
		return idx
	}

	for _, tri := range model.Triangles {
		i1 := addVertex(tri.V1)
		i2 := addVertex(tri.V2)
		i3 := addVertex(tri.V3)
		m.Faces = append(m.Faces, [3]int{i1, i2, i3})
	}

	m.Normals = make([]geometry.Vector3, len(m.Positions))
	m.RecomputeNormals()
	return m
}

// ToModel converts the mesh back to an STL triangle-soup model using the
// current vertex positions. Face normals are recomputed from geometry.
func (m *Mesh) ToModel() *stl.Model {
	model := stl.NewModel(m.Name)
	for _, face := range m.Faces {
		v1 := m.Positions[face[0]]
		v2 := m.Positions[face[1]]
		v3 := m.Positions[face[2]]
		tri := geometry.NewTriangle(geometry.Vector3{}, v1, v2, v3)
		tri.Normal = tri.CalculateNormal()
		model.AddTriangle(tri)
	}
	return model
}

// VertexCount returns the number of vertices in the position buffer
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// FaceCount returns the number of triangle faces
func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

// BoundingBox calculates the axis-aligned bounds of all vertex positions
func (m *Mesh) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, p := range m.Positions {
		bbox.Extend(p)
	}
	return bbox
}

// SurfaceArea calculates the total area of all faces at current positions
func (m *Mesh) SurfaceArea() float64 {
	total := 0.0
	for _, face := range m.Faces {
		tri := geometry.NewTriangle(geometry.Vector3{},
			m.Positions[face[0]], m.Positions[face[1]], m.Positions[face[2]])
		total += tri.Area()
	}
	return total
}

// InvalidateNormals marks per-vertex normals as stale. Called by the
// deformation driver after mutating positions; the renderer (or any other
// consumer) decides when to act on it.
func (m *Mesh) InvalidateNormals() {
	m.normalsDirty = true
}

// NormalsDirty reports whether positions changed since the last normal
// recomputation.
func (m *Mesh) NormalsDirty() bool {
	return m.normalsDirty
}

// RecomputeNormals rebuilds per-vertex normals by accumulating
// area-weighted face normals and normalizing. Clears the dirty flag.
func (m *Mesh) RecomputeNormals() {
	for i := range m.Normals {
		m.Normals[i] = geometry.Vector3{}
	}

	for _, face := range m.Faces {
		v1 := m.Positions[face[0]]
		v2 := m.Positions[face[1]]
		v3 := m.Positions[face[2]]
		// Cross product length is twice the face area, so the raw cross
		// product is already an area-weighted normal.
		faceNormal := v2.Sub(v1).Cross(v3.Sub(v1))
		for _, idx := range face {
			m.Normals[idx] = m.Normals[idx].Add(faceNormal)
		}
	}

	for i := range m.Normals {
		m.Normals[i] = m.Normals[i].Normalize()
	}

	m.normalsDirty = false
}

// Clone returns a deep copy of the mesh
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:         m.Name,
		Positions:    make([]geometry.Vector3, len(m.Positions)),
		Normals:      make([]geometry.Vector3, len(m.Normals)),
		Faces:        make([][3]int, len(m.Faces)),
		normalsDirty: m.normalsDirty,
	}
	copy(clone.Positions, m.Positions)
	copy(clone.Normals, m.Normals)
	copy(clone.Faces, m.Faces)
	return clone
}
