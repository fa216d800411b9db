package deform

import (
	"errors"
	"fmt"

	"github.com/philipparndt/gosculpt/pkg/geometry"
	"github.com/philipparndt/gosculpt/pkg/mesh"
)

// Defaults for the deformation parameters, in world units.
const (
	DefaultRadius    = 2.0
	DefaultThreshold = 0.1
)

var (
	// ErrInvalidRadius indicates a falloff radius <= 0
	ErrInvalidRadius = errors.New("falloff radius must be > 0")
	// ErrInvalidThreshold indicates an adjacency threshold <= 0
	ErrInvalidThreshold = errors.New("adjacency threshold must be > 0")
	// ErrIndexOutOfRange indicates an anchor index outside the vertex buffer
	ErrIndexOutOfRange = errors.New("anchor index out of range")
	// ErrNonFinite indicates a NaN or Inf component in the displacement
	ErrNonFinite = errors.New("displacement delta is not finite")
)

// Deformer drives soft-selection deformation passes. The zero value is not
// usable; construct with NewDeformer and adjust fields as needed.
//
// A Deformer holds no per-mesh state and may be shared across meshes, but
// no two passes may mutate the same mesh concurrently.
type Deformer struct {
	// Radius is the world-space distance beyond which a drag has no
	// influence.
	Radius float64
	// Curve selects the falloff shape between anchor and radius.
	Curve Curve
	// Threshold is the distance below which two distinct vertices are
	// treated as connected for smoothing propagation.
	Threshold float64
}

// NewDeformer returns a Deformer with the default radius, smooth falloff
// and default adjacency threshold.
func NewDeformer() *Deformer {
	return &Deformer{
		Radius:    DefaultRadius,
		Curve:     CurveSmooth,
		Threshold: DefaultThreshold,
	}
}

// validate rejects bad parameters and inputs before any mutation, so a
// failed pass leaves the mesh untouched.
func (d *Deformer) validate(m *mesh.Mesh, anchor int, delta geometry.Vector3) error {
	if d.Radius <= 0 {
		return fmt.Errorf("%w: %g", ErrInvalidRadius, d.Radius)
	}
	if d.Threshold <= 0 {
		return fmt.Errorf("%w: %g", ErrInvalidThreshold, d.Threshold)
	}
	if anchor < 0 || anchor >= m.VertexCount() {
		return fmt.Errorf("%w: %d (mesh has %d vertices)", ErrIndexOutOfRange, anchor, m.VertexCount())
	}
	if !delta.IsFinite() {
		return fmt.Errorf("%w: %v", ErrNonFinite, delta)
	}
	return nil
}

// Deform runs one soft-selection pass: the anchor vertex receives the full
// delta, and every other vertex within the falloff radius of the anchor's
// pre-pass position receives the delta scaled by its influence weight.
// Each influenced vertex additionally propagates a half-strength nudge to
// vertices within the adjacency threshold.
//
// Vertices are processed in ascending index order. Later vertices observe
// positions already updated by earlier ones within the same pass;
// overlapping primary/neighbor contributions accumulate.
//
// On success the mesh's normals are invalidated; recomputing them is the
// caller's (typically the renderer's) responsibility.
func (d *Deformer) Deform(m *mesh.Mesh, anchor int, delta geometry.Vector3) error {
	if m.VertexCount() == 0 {
		return nil
	}
	if err := d.validate(m, anchor, delta); err != nil {
		return err
	}

	// Anchor position is snapshotted before any mutation; all influence
	// weights in this pass are measured against it.
	anchorPos := m.Positions[anchor]

	for i := range m.Positions {
		dist := m.Positions[i].Distance(anchorPos)
		w := Falloff(dist, d.Radius, d.Curve)
		if w > 0 {
			applyDisplacement(m.Positions, i, w, delta, d.Threshold)
		}
	}

	m.InvalidateNormals()
	return nil
}
