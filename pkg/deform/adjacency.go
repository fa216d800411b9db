package deform

import "github.com/philipparndt/gosculpt/pkg/geometry"

// Neighbors returns the indices of all vertices strictly closer than
// threshold to the vertex at index, in ascending index order. The vertex
// itself is excluded.
//
// This is a proximity heuristic, not a topology query: vertices that are
// spatially close but not connected by any face are still reported. The
// smoothing behavior of the whole engine depends on exactly this
// approximation, so it must not be replaced by a face-adjacency walk.
//
// The scan always runs against the live position buffer. Positions mutate
// while a deformation pass is in flight, so a spatial index built at pass
// start could not report the same membership; the exact scan is the only
// estimator.
func Neighbors(positions []geometry.Vector3, index int, threshold float64) []int {
	var neighbors []int
	p := positions[index]
	for j := range positions {
		if j == index {
			continue
		}
		if positions[j].Distance(p) < threshold {
			neighbors = append(neighbors, j)
		}
	}
	return neighbors
}
