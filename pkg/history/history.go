// Package history keeps undo/redo snapshots of a keyframe sequence.
package history

import "github.com/dd0wney/cluso-animator/pkg/keyframe"

// DefaultCapacity is used when a non-positive capacity is requested.
const DefaultCapacity = 50

// History manages undo/redo by storing deep copies of whole sequences.
// The newest snapshot is the current state; Undo steps back to the one
// before it.
type History struct {
	states  []*keyframe.Sequence
	current int
	max     int
}

// New creates a history holding at most capacity snapshots.
func New(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &History{
		states:  make([]*keyframe.Sequence, 0, capacity),
		current: -1,
		max:     capacity,
	}
}

// SaveState records a deep copy of seq as the current state. Any redo
// states are discarded; the oldest snapshot is dropped once the capacity is
// exceeded.
func (h *History) SaveState(seq *keyframe.Sequence) {
	clone := seq.Clone()

	if h.current < len(h.states)-1 {
		clear(h.states[h.current+1:])
		h.states = h.states[:h.current+1]
	}

	h.states = append(h.states, clone)

	if len(h.states) > h.max {
		h.states[0] = nil
		h.states = h.states[1:]
	} else {
		h.current++
	}
}

// CanUndo returns true if an earlier state exists
func (h *History) CanUndo() bool {
	return h.current > 0
}

// CanRedo returns true if a later state exists
func (h *History) CanRedo() bool {
	return h.current < len(h.states)-1
}

// Undo steps back one state and returns a copy of it.
func (h *History) Undo() (*keyframe.Sequence, bool) {
	if !h.CanUndo() {
		return nil, false
	}
	h.current--
	return h.states[h.current].Clone(), true
}

// Redo steps forward one state and returns a copy of it.
func (h *History) Redo() (*keyframe.Sequence, bool) {
	if !h.CanRedo() {
		return nil, false
	}
	h.current++
	return h.states[h.current].Clone(), true
}

// Clear drops every snapshot.
func (h *History) Clear() {
	clear(h.states)
	h.states = h.states[:0]
	h.current = -1
}

// Stats returns the 1-based current position and the number of snapshots.
func (h *History) Stats() (current, total int) {
	return h.current + 1, len(h.states)
}
