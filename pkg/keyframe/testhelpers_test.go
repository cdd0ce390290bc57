package keyframe

import "testing"

// testFrame builds a frame from coordinate pairs and edges.
func testFrame(t *testing.T, points [][2]int, edges ...Edge) *Frame {
	t.Helper()

	f := NewFrame()
	for _, p := range points {
		f.InsertNode(float64(p[0]), float64(p[1]))
	}
	for _, e := range edges {
		f.InsertEdge(e.From, e.To, e.Kind)
	}
	if len(f.Edges()) != len(edges) {
		t.Fatalf("testFrame: %d of %d edges were rejected", len(edges)-len(f.Edges()), len(edges))
	}
	return f
}

// setKeyframe places the given nodes and edges into frame index of seq.
func setKeyframe(t *testing.T, seq *Sequence, index int, points [][2]int, edges ...Edge) {
	t.Helper()

	for _, p := range points {
		seq.InsertNode(index, float64(p[0]), float64(p[1]))
	}
	for _, e := range edges {
		seq.InsertEdge(index, e.From, e.To, e.Kind)
	}
}

// assertFrameInvariants checks index contiguity, edge validity and single selection.
func assertFrameInvariants(t *testing.T, f *Frame) {
	t.Helper()

	selected := 0
	for _, n := range f.Nodes() {
		if n.Selected {
			selected++
		}
	}
	if selected > 1 {
		t.Errorf("frame has %d selected nodes, want at most 1", selected)
	}
	for i, e := range f.Edges() {
		if e.From < 0 || e.From >= f.Len() || e.To < 0 || e.To >= f.Len() {
			t.Errorf("edge %d = %+v out of range for %d nodes", i, e, f.Len())
		}
	}
}

func nodePositions(f *Frame) [][2]int {
	out := make([][2]int, 0, f.Len())
	for _, n := range f.Nodes() {
		out = append(out, [2]int{n.X, n.Y})
	}
	return out
}
