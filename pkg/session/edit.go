package session

import (
	"fmt"
	"time"

	"github.com/dd0wney/cluso-animator/pkg/keyframe"
	"github.com/dd0wney/cluso-animator/pkg/logging"
	"github.com/dd0wney/cluso-animator/pkg/validation"
)

// Seek makes frame i current without touching the sequence. Invalid
// indices leave the session where it is.
func (s *Session) Seek(i int) error {
	if err := validation.ValidateFrameIndex(i); err != nil {
		return err
	}
	s.current = i
	return nil
}

// Goto is Seek followed, when RepeatOnNavigate is set, by Repeat: an empty
// destination is filled from the nearest earlier keyframe.
func (s *Session) Goto(i int) error {
	if err := s.Seek(i); err != nil {
		return err
	}
	if s.cfg.RepeatOnNavigate {
		s.Repeat()
	}
	return nil
}

// Next moves forward by FrameJump frames.
func (s *Session) Next() error {
	return s.Goto(s.current + s.cfg.FrameJump)
}

// Prev moves back by FrameJump frames.
func (s *Session) Prev() error {
	return s.Goto(s.current - s.cfg.FrameJump)
}

func (s *Session) hasNodes(frame int) bool {
	_, ok := s.seq.Node(frame, 0)
	return ok
}

func (s *Session) threshold() float64 {
	return float64(s.cfg.SelectionThreshold)
}

// Repeat copies the nearest earlier keyframe into the current frame if it
// is empty. It reports whether anything was copied.
func (s *Session) Repeat() bool {
	if s.hasNodes(s.current) {
		return false
	}
	s.seq.RepeatByCopy(s.current)
	if !s.hasNodes(s.current) {
		return false
	}
	s.commit("repeat")
	return true
}

// AddNode appends a node at (x, y) to the current frame and returns its index.
func (s *Session) AddNode(x, y float64) (int, error) {
	req := validation.NodeRequest{Frame: s.current, X: x, Y: y}
	if err := validation.ValidateNodeRequest(&req); err != nil {
		return -1, err
	}
	idx := s.seq.InsertNode(s.current, x, y)
	s.commit("add_node", logging.NodeIndex(idx))
	return idx, nil
}

// MoveNode sets the position of node index in the current frame.
func (s *Session) MoveNode(index int, x, y float64) error {
	req := validation.NodeRefRequest{Frame: s.current, Node: index, X: x, Y: y}
	if err := validation.ValidateNodeRefRequest(&req); err != nil {
		return err
	}
	if _, ok := s.seq.Node(s.current, index); !ok {
		return fmt.Errorf("%w: %d in frame %d", ErrNodeNotFound, index, s.current)
	}
	s.seq.EditNode(s.current, index, x, y)
	s.commit("move_node", logging.NodeIndex(index))
	return nil
}

// MoveSelected nudges the selected node by (dx, dy).
func (s *Session) MoveSelected(dx, dy float64) error {
	idx, ok := s.seq.SelectedIndex(s.current)
	if !ok {
		return ErrNoSelection
	}
	n, _ := s.seq.Node(s.current, idx)
	return s.MoveNode(idx, float64(n.X)+dx, float64(n.Y)+dy)
}

// EditAt handles a click in edit mode: without a selection it selects the
// node nearest to (x, y); with one it moves that node to (x, y) and clears
// the selection. It reports whether a node was moved.
func (s *Session) EditAt(x, y float64) (bool, error) {
	idx, ok := s.seq.SelectedIndex(s.current)
	if !ok {
		s.Select(x, y)
		return false, nil
	}
	req := validation.NodeRefRequest{Frame: s.current, Node: idx, X: x, Y: y}
	if err := validation.ValidateNodeRefRequest(&req); err != nil {
		return false, err
	}
	s.seq.EditNode(s.current, idx, x, y)
	s.seq.UnselectAll(s.current)
	s.commit("move_node", logging.NodeIndex(idx))
	return true, nil
}

// Select selects the node nearest to (x, y) within the configured
// threshold, clearing any previous selection.
func (s *Session) Select(x, y float64) (int, bool) {
	s.seq.SelectNodeWithin(s.current, x, y, s.threshold())
	return s.seq.SelectedIndex(s.current)
}

// Selected returns the selected node of the current frame.
func (s *Session) Selected() (int, bool) {
	return s.seq.SelectedIndex(s.current)
}

// Unselect clears the selection in the current frame.
func (s *Session) Unselect() {
	s.seq.UnselectAll(s.current)
}

// DeleteNodeAt removes the node nearest to (x, y) if it lies within the
// selection threshold. It returns the removed index.
func (s *Session) DeleteNodeAt(x, y float64) (int, bool) {
	idx, ok := s.Select(x, y)
	if !ok {
		return -1, false
	}
	s.seq.RemoveNode(s.current, idx)
	s.commit("delete_node", logging.NodeIndex(idx))
	return idx, true
}

// Connect handles a click in line or circle mode. Without a selection it
// selects the node nearest to (x, y). With one it adds a node at (x, y),
// joins the selected node to it with an edge of the given kind and selects
// the node nearest to the click. It reports whether an edge was added.
func (s *Session) Connect(x, y float64, kind keyframe.EdgeKind) (bool, error) {
	from, ok := s.seq.SelectedIndex(s.current)
	if !ok {
		s.Select(x, y)
		return false, nil
	}

	req := validation.NodeRequest{Frame: s.current, X: x, Y: y}
	if err := validation.ValidateNodeRequest(&req); err != nil {
		return false, err
	}
	to := s.seq.InsertNode(s.current, x, y)
	s.seq.InsertEdge(s.current, from, to, kind)
	s.seq.SelectNodeWithin(s.current, x, y, s.threshold())
	s.commit("connect", logging.String("kind", kind.String()))
	return true, nil
}

// AddEdge joins two existing nodes of the current frame.
func (s *Session) AddEdge(from, to int, kind string) error {
	req := validation.EdgeRequest{Frame: s.current, From: from, To: to, Kind: kind}
	if err := validation.ValidateEdgeRequest(&req); err != nil {
		return err
	}
	for _, idx := range []int{from, to} {
		if _, ok := s.seq.Node(s.current, idx); !ok {
			return fmt.Errorf("%w: %d in frame %d", ErrNodeNotFound, idx, s.current)
		}
	}
	k, err := keyframe.ParseEdgeKind(req.Kind)
	if err != nil {
		return err
	}
	s.seq.InsertEdge(s.current, from, to, k)
	s.commit("add_edge", logging.String("kind", req.Kind))
	return nil
}

// ClearFrame removes every node and edge of the current frame. It reports
// whether there was anything to remove.
func (s *Session) ClearFrame() bool {
	if !s.hasNodes(s.current) {
		return false
	}
	s.seq.ClearFrame(s.current)
	s.commit("clear_frame")
	return true
}

// Interpolate fills every gap between keyframes and returns how many frames
// were filled.
func (s *Session) Interpolate() int {
	gaps := s.seq.Gaps()
	if len(gaps) == 0 {
		return 0
	}

	filled := 0
	for _, g := range gaps {
		filled += g.Interior()
	}

	start := time.Now()
	s.seq.Interpolate()
	s.metrics.ObserveGapFill("linear", time.Since(start))

	s.commit("interpolate", logging.Count(filled))
	return filled
}

// Undo restores the previous snapshot.
func (s *Session) Undo() bool {
	seq, ok := s.history.Undo()
	if !ok {
		return false
	}
	s.seq = seq
	s.metrics.RecordOperation("undo")
	s.publish()
	return true
}

// Redo re-applies the next snapshot.
func (s *Session) Redo() bool {
	seq, ok := s.history.Redo()
	if !ok {
		return false
	}
	s.seq = seq
	s.metrics.RecordOperation("redo")
	s.publish()
	return true
}
