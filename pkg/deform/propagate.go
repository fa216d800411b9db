package deform

import "github.com/philipparndt/gosculpt/pkg/geometry"

// neighborDamping scales the displacement passed on to estimated
// neighbors of a primary vertex. It is a fixed factor, deliberately not
// run through the falloff curve.
const neighborDamping = 0.5

// applyDisplacement moves the vertex at index by delta scaled by
// influence, then nudges every vertex within threshold by half that
// amount. Neighbors are processed in ascending index order.
//
// A vertex can be touched both as a primary target and as a neighbor of
// another primary within one driver pass; the contributions accumulate.
// That double application is part of the engine's observable smoothing
// behavior and must not be de-duplicated here.
func applyDisplacement(positions []geometry.Vector3, index int, influence float64, delta geometry.Vector3, threshold float64) {
	// Neighbors are resolved before the primary vertex moves, so the
	// lookup sees the vertex where its neighbors still surround it.
	neighbors := Neighbors(positions, index, threshold)

	positions[index] = positions[index].Add(delta.Mul(influence))

	for _, j := range neighbors {
		positions[j] = positions[j].Add(delta.Mul(influence * neighborDamping))
	}
}
