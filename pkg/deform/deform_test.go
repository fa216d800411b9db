package deform

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gosculpt/pkg/geometry"
	"github.com/philipparndt/gosculpt/pkg/mesh"
)

func newTestMesh(positions ...geometry.Vector3) *mesh.Mesh {
	buf := make([]geometry.Vector3, len(positions))
	copy(buf, positions)
	return mesh.New(buf)
}

func TestDeformZeroDeltaIdempotent(t *testing.T) {
	m := newTestMesh(
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(0.05, 0, 0),
		geometry.NewVector3(1, 1, 0),
	)
	before := m.Clone()

	d := NewDeformer()
	require.NoError(t, d.Deform(m, 0, geometry.Vector3{}))

	// Bit-for-bit unchanged
	assert.Equal(t, before.Positions, m.Positions)
}

func TestDeformAnchorReceivesFullDelta(t *testing.T) {
	// No vertex within the adjacency threshold of the anchor, so nothing
	// feeds a secondary nudge back into it.
	m := newTestMesh(
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(0, 1, 0),
		geometry.NewVector3(1, 0, 0),
	)
	old := m.Positions[0]
	delta := geometry.NewVector3(0.25, -0.5, 1)

	d := NewDeformer()
	require.NoError(t, d.Deform(m, 0, delta))

	assert.Equal(t, old.Add(delta), m.Positions[0])
}

func TestDeformOutOfRadiusUntouched(t *testing.T) {
	m := newTestMesh(
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(5, 0, 0),
		geometry.NewVector3(0, 0, -3),
	)

	d := NewDeformer()
	require.NoError(t, d.Deform(m, 0, geometry.NewVector3(1, 0, 0)))

	assert.Equal(t, geometry.NewVector3(5, 0, 0), m.Positions[1])
	assert.Equal(t, geometry.NewVector3(0, 0, -3), m.Positions[2])
}

func TestDeformExactRadiusUntouched(t *testing.T) {
	// Distance exactly equal to the radius yields zero weight.
	m := newTestMesh(
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(2, 0, 0),
	)

	d := NewDeformer()
	require.NoError(t, d.Deform(m, 0, geometry.NewVector3(0, 1, 0)))

	assert.Equal(t, geometry.NewVector3(2, 0, 0), m.Positions[1])
}

// TestDeformNeighborDoubleContribution pins the engine's accumulating
// overlap behavior: a vertex close enough to the anchor to count as its
// estimated neighbor is moved twice in one pass, first by the anchor's
// propagated nudge and then by its own falloff-driven step, computed from
// its already-nudged position.
func TestDeformNeighborDoubleContribution(t *testing.T) {
	m := newTestMesh(
		geometry.NewVector3(10, 0, 0),   // 0: out of radius
		geometry.NewVector3(0, 1, 0),    // 1: in radius, isolated
		geometry.NewVector3(0, 0, 0),    // 2: anchor
		geometry.NewVector3(0.05, 0, 0), // 3: within threshold of anchor
		geometry.NewVector3(-10, 0, 0),  // 4: out of radius
	)
	delta := geometry.NewVector3(1, 0, 0)

	d := NewDeformer()
	require.NoError(t, d.Deform(m, 2, delta))

	// Untouched outsiders
	assert.Equal(t, geometry.NewVector3(10, 0, 0), m.Positions[0])
	assert.Equal(t, geometry.NewVector3(-10, 0, 0), m.Positions[4])

	// Vertex 1 at distance 1: smoothstep weight 0.5, no neighbors
	assert.Equal(t, geometry.NewVector3(0.5, 1, 0), m.Positions[1])

	// Anchor moves by exactly delta
	assert.Equal(t, geometry.NewVector3(1, 0, 0), m.Positions[2])

	// Vertex 3: nudged by delta*w(anchor)*0.5 while the anchor was
	// processed, then displaced by its own weight measured from the
	// nudged position. Expectation mirrors the pass arithmetic.
	nudgedX := 0.05 + 1.0*(1.0*0.5)
	w3 := Falloff(nudgedX, DefaultRadius, CurveSmooth)
	expected3 := geometry.NewVector3(nudgedX+1.0*w3, 0, 0)
	assert.Equal(t, expected3, m.Positions[3])
}

func TestDeformEmptyMeshNoOp(t *testing.T) {
	m := newTestMesh()
	d := NewDeformer()
	assert.NoError(t, d.Deform(m, 0, geometry.NewVector3(1, 0, 0)))
}

func TestDeformRejectsBadParameters(t *testing.T) {
	m := newTestMesh(
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
	)
	before := m.Clone()
	delta := geometry.NewVector3(1, 0, 0)

	cases := []struct {
		name     string
		deformer Deformer
		anchor   int
		delta    geometry.Vector3
		wantErr  error
	}{
		{"zero radius", Deformer{Radius: 0, Threshold: 0.1}, 0, delta, ErrInvalidRadius},
		{"negative radius", Deformer{Radius: -1, Threshold: 0.1}, 0, delta, ErrInvalidRadius},
		{"zero threshold", Deformer{Radius: 2, Threshold: 0}, 0, delta, ErrInvalidThreshold},
		{"negative anchor", Deformer{Radius: 2, Threshold: 0.1}, -1, delta, ErrIndexOutOfRange},
		{"anchor past end", Deformer{Radius: 2, Threshold: 0.1}, 2, delta, ErrIndexOutOfRange},
		{"nan delta", Deformer{Radius: 2, Threshold: 0.1}, 0, geometry.NewVector3(math.NaN(), 0, 0), ErrNonFinite},
		{"inf delta", Deformer{Radius: 2, Threshold: 0.1}, 0, geometry.NewVector3(0, math.Inf(1), 0), ErrNonFinite},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.deformer.Deform(m, tc.anchor, tc.delta)
			require.ErrorIs(t, err, tc.wantErr)
			// A rejected pass leaves the mesh unchanged
			assert.Equal(t, before.Positions, m.Positions)
			assert.False(t, m.NormalsDirty())
		})
	}
}

func TestDeformInvalidatesNormals(t *testing.T) {
	m := newTestMesh(
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
	)
	require.False(t, m.NormalsDirty())

	d := NewDeformer()
	require.NoError(t, d.Deform(m, 0, geometry.NewVector3(0, 0, 1)))

	assert.True(t, m.NormalsDirty())
}

func TestDeformPositionsStayFinite(t *testing.T) {
	m := newTestMesh(
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(0.01, 0, 0),
		geometry.NewVector3(0.02, 0, 0),
		geometry.NewVector3(1.5, 0.5, 0),
	)

	d := NewDeformer()
	for i := 0; i < 50; i++ {
		require.NoError(t, d.Deform(m, 0, geometry.NewVector3(0.1, -0.05, 0.2)))
	}

	for i, p := range m.Positions {
		assert.True(t, p.IsFinite(), "vertex %d not finite after repeated passes: %v", i, p)
	}
}

func TestDeformCurveSelection(t *testing.T) {
	// Same drag under different curves moves a mid-radius vertex by
	// different amounts, anchored vertex identically.
	delta := geometry.NewVector3(1, 0, 0)
	moved := func(curve Curve) float64 {
		m := newTestMesh(
			geometry.NewVector3(0, 0, 0),
			geometry.NewVector3(0, 1, 0),
		)
		d := NewDeformer()
		d.Curve = curve
		require.NoError(t, d.Deform(m, 0, delta))
		return m.Positions[1].X
	}

	assert.Equal(t, 0.5, moved(CurveLinear))
	assert.Equal(t, 0.5, moved(CurveSmooth))
	assert.Equal(t, 0.125, moved(CurveCubic))
}
