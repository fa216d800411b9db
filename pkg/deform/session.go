package deform

import (
	"errors"
	"fmt"

	"github.com/philipparndt/gosculpt/pkg/geometry"
	"github.com/philipparndt/gosculpt/pkg/mesh"
)

// ErrSessionEnded is returned when dragging on a released session
var ErrSessionEnded = errors.New("drag session has ended")

// Session tracks one pointer drag on a mesh: it captures the anchor vertex
// at drag start and applies one deformation pass per pointer move. After
// each pass the session's anchor position advances to the latest pointer
// position, so successive deltas are incremental.
//
// A session exclusively owns the mesh's position buffer between BeginDrag
// and End. Sessions are not safe for concurrent use.
type Session struct {
	deformer *Deformer
	mesh     *mesh.Mesh
	anchor   int

	anchorPos geometry.Vector3
	steps     int
	ended     bool
}

// BeginDrag starts a drag session on the vertex at anchor.
func (d *Deformer) BeginDrag(m *mesh.Mesh, anchor int) (*Session, error) {
	if anchor < 0 || anchor >= m.VertexCount() {
		return nil, fmt.Errorf("%w: %d (mesh has %d vertices)", ErrIndexOutOfRange, anchor, m.VertexCount())
	}
	return &Session{
		deformer:  d,
		mesh:      m,
		anchor:    anchor,
		anchorPos: m.Positions[anchor],
	}, nil
}

// Drag applies one incremental pointer-move step. A failed step leaves the
// mesh unchanged and does not end the session; pointer moves are frequent
// and self-correcting, so the next valid step resumes normally.
func (s *Session) Drag(delta geometry.Vector3) error {
	if s.ended {
		return ErrSessionEnded
	}
	if err := s.deformer.Deform(s.mesh, s.anchor, delta); err != nil {
		return err
	}
	s.anchorPos = s.anchorPos.Add(delta)
	s.steps++
	return nil
}

// AnchorPosition returns the accumulated anchor position after all steps
// applied so far.
func (s *Session) AnchorPosition() geometry.Vector3 {
	return s.anchorPos
}

// Steps returns the number of successfully applied drag steps.
func (s *Session) Steps() int {
	return s.steps
}

// End releases the session. Further Drag calls fail with ErrSessionEnded.
func (s *Session) End() {
	s.ended = true
}
