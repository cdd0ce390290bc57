package keyframe

// Sequence is the keyframe store: an index-addressed, growable list of frames.
//
// Out-of-range frame indices (negative or >= Len) never reach a real frame:
// mutators become no-ops and queries return their absent value. Only
// InsertNode grows the sequence, through EnsureLength.
type Sequence struct {
	frames []*Frame
}

// NewSequence creates an empty sequence.
func NewSequence() *Sequence {
	return &Sequence{}
}

// FromFrames builds a sequence owning deep copies of frames.
// Nil entries become empty frames.
func FromFrames(frames []*Frame) *Sequence {
	s := &Sequence{frames: make([]*Frame, len(frames))}
	for i, f := range frames {
		if f == nil {
			f = NewFrame()
		}
		s.frames[i] = f.Clone()
	}
	return s
}

// Len returns the number of frames.
func (s *Sequence) Len() int {
	return len(s.frames)
}

// EnsureLength appends empty frames until the sequence holds at least n frames.
func (s *Sequence) EnsureLength(n int) {
	for len(s.frames) < n {
		s.frames = append(s.frames, NewFrame())
	}
}

// frameAt resolves a frame index to the stored frame.
func (s *Sequence) frameAt(index int) (*Frame, bool) {
	if index < 0 || index >= len(s.frames) {
		return nil, false
	}
	return s.frames[index], true
}

// Frame returns a deep copy of the frame at index.
func (s *Sequence) Frame(index int) (*Frame, bool) {
	f, ok := s.frameAt(index)
	if !ok {
		return nil, false
	}
	return f.Clone(), true
}

// Frames returns deep copies of every frame in index order.
func (s *Sequence) Frames() []*Frame {
	out := make([]*Frame, len(s.frames))
	for i, f := range s.frames {
		out[i] = f.Clone()
	}
	return out
}

// Clone returns a deep copy of the sequence.
func (s *Sequence) Clone() *Sequence {
	return &Sequence{frames: s.Frames()}
}

// InsertNode appends a node to the frame at frameIndex, growing the sequence
// when needed, and returns the new node index. A negative frame index is
// rejected with -1.
func (s *Sequence) InsertNode(frameIndex int, x, y float64) int {
	if frameIndex < 0 {
		return -1
	}
	s.EnsureLength(frameIndex + 1)
	return s.frames[frameIndex].InsertNode(x, y)
}

// EditNode moves a node of the frame at frameIndex.
func (s *Sequence) EditNode(frameIndex, nodeIndex int, x, y float64) {
	if f, ok := s.frameAt(frameIndex); ok {
		f.SetNodePosition(nodeIndex, x, y)
	}
}

// RemoveNode deletes a node of the frame at frameIndex and renumbers its edges.
func (s *Sequence) RemoveNode(frameIndex, nodeIndex int) {
	if f, ok := s.frameAt(frameIndex); ok {
		f.RemoveNode(nodeIndex)
	}
}

// InsertEdge connects two nodes of the frame at frameIndex.
func (s *Sequence) InsertEdge(frameIndex, from, to int, kind EdgeKind) {
	if f, ok := s.frameAt(frameIndex); ok {
		f.InsertEdge(from, to, kind)
	}
}

// ClearFrame replaces the frame at frameIndex with an empty one.
// It never grows the sequence.
func (s *Sequence) ClearFrame(frameIndex int) {
	if _, ok := s.frameAt(frameIndex); ok {
		s.frames[frameIndex] = NewFrame()
	}
}

// Node returns a copy of one node.
func (s *Sequence) Node(frameIndex, nodeIndex int) (Node, bool) {
	f, ok := s.frameAt(frameIndex)
	if !ok {
		return Node{}, false
	}
	return f.Node(nodeIndex)
}

// SelectNode selects the node of frameIndex nearest to (x, y).
func (s *Sequence) SelectNode(frameIndex int, x, y float64) {
	s.SelectNodeWithin(frameIndex, x, y, DefaultSelectionThreshold)
}

// SelectNodeWithin is SelectNode with an explicit threshold.
func (s *Sequence) SelectNodeWithin(frameIndex int, x, y, threshold float64) {
	if f, ok := s.frameAt(frameIndex); ok {
		f.SelectNodeWithin(x, y, threshold)
	}
}

// UnselectAll clears the selection in the frame at frameIndex.
func (s *Sequence) UnselectAll(frameIndex int) {
	if f, ok := s.frameAt(frameIndex); ok {
		f.UnselectAll()
	}
}

// SelectedIndex returns the selected node index of the frame at frameIndex.
func (s *Sequence) SelectedIndex(frameIndex int) (int, bool) {
	f, ok := s.frameAt(frameIndex)
	if !ok {
		return -1, false
	}
	return f.SelectedIndex()
}

// EditSelectedPosition moves the selected node of the frame at frameIndex.
func (s *Sequence) EditSelectedPosition(frameIndex int, x, y float64) {
	if f, ok := s.frameAt(frameIndex); ok {
		f.EditSelectedPosition(x, y)
	}
}

// KeyframeIndices returns the indices of all non-empty frames.
func (s *Sequence) KeyframeIndices() []int {
	var out []int
	for i, f := range s.frames {
		if !f.IsEmpty() {
			out = append(out, i)
		}
	}
	return out
}

// Stats counts frames, keyframes, nodes and edges.
func (s *Sequence) Stats() Stats {
	st := Stats{Frames: len(s.frames)}
	for _, f := range s.frames {
		if !f.IsEmpty() {
			st.Keyframes++
		}
		st.Nodes += len(f.nodes)
		st.Edges += len(f.edges)
	}
	return st
}
