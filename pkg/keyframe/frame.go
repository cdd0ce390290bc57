package keyframe

// Frame is an ordered collection of nodes and the edges between them.
//
// Invariants held after every operation:
//   - node indices are exactly 0..Len()-1
//   - every edge endpoint addresses an existing node
//   - at most one node is selected
type Frame struct {
	nodes []Node
	edges []Edge
}

// NewFrame creates an empty frame.
func NewFrame() *Frame {
	return &Frame{}
}

// Len returns the number of nodes in the frame.
func (f *Frame) Len() int {
	return len(f.nodes)
}

// IsEmpty reports whether the frame holds no nodes, i.e. is not a keyframe.
func (f *Frame) IsEmpty() bool {
	return len(f.nodes) == 0
}

func (f *Frame) inRange(index int) bool {
	return index >= 0 && index < len(f.nodes)
}

// InsertNode appends a node and returns its index.
func (f *Frame) InsertNode(x, y float64) int {
	f.nodes = append(f.nodes, newNode(x, y))
	return len(f.nodes) - 1
}

// RemoveNode deletes the node at index. Edges touching the node are dropped
// and endpoints above index shift down by one. Out-of-range indices are ignored.
func (f *Frame) RemoveNode(index int) {
	if !f.inRange(index) {
		return
	}

	f.nodes = append(f.nodes[:index], f.nodes[index+1:]...)

	kept := f.edges[:0]
	for _, e := range f.edges {
		if e.From == index || e.To == index {
			continue
		}
		if e.From > index {
			e.From--
		}
		if e.To > index {
			e.To--
		}
		kept = append(kept, e)
	}
	// Clear the tail so dropped edges are not retained by the backing array
	for i := len(kept); i < len(f.edges); i++ {
		f.edges[i] = Edge{}
	}
	f.edges = kept
}

// InsertEdge connects two existing nodes. Requests naming a missing node are
// silently dropped.
func (f *Frame) InsertEdge(from, to int, kind EdgeKind) {
	if !f.inRange(from) || !f.inRange(to) {
		return
	}
	f.edges = append(f.edges, Edge{From: from, To: to, Kind: kind})
}

// Node returns a copy of the node at index.
func (f *Frame) Node(index int) (Node, bool) {
	if !f.inRange(index) {
		return Node{}, false
	}
	return f.nodes[index], true
}

// SetNodePosition moves the node at index. Out-of-range indices are ignored.
func (f *Frame) SetNodePosition(index int, x, y float64) {
	if !f.inRange(index) {
		return
	}
	f.nodes[index].setPosition(x, y)
}

// Nodes returns a copy of the node list.
func (f *Frame) Nodes() []Node {
	out := make([]Node, len(f.nodes))
	copy(out, f.nodes)
	return out
}

// Edges returns a copy of the edge list.
func (f *Frame) Edges() []Edge {
	out := make([]Edge, len(f.edges))
	copy(out, f.edges)
	return out
}

// Clone returns a deep copy of the frame.
func (f *Frame) Clone() *Frame {
	if f == nil {
		return nil
	}
	return &Frame{
		nodes: f.Nodes(),
		edges: f.Edges(),
	}
}
