package keyframe

import "math"

// SelectNode selects the node nearest to (x, y) using DefaultSelectionThreshold.
func (f *Frame) SelectNode(x, y float64) {
	f.SelectNodeWithin(x, y, DefaultSelectionThreshold)
}

// SelectNodeWithin clears the selection, then selects the node nearest to
// (x, y) if it lies within threshold. Ties go to the lowest index. When no
// node is close enough the frame is left with nothing selected.
func (f *Frame) SelectNodeWithin(x, y, threshold float64) {
	ref := newNode(x, y)
	nearest := -1
	minDist := math.Inf(1)

	for i := range f.nodes {
		f.nodes[i].Selected = false
		if d := f.nodes[i].DistanceTo(ref); d < minDist {
			minDist = d
			nearest = i
		}
	}

	if nearest >= 0 && minDist <= threshold {
		f.nodes[nearest].Selected = true
	}
}

// UnselectAll clears the selection flag of every node.
func (f *Frame) UnselectAll() {
	for i := range f.nodes {
		f.nodes[i].Selected = false
	}
}

// SelectedIndex returns the index of the selected node, if any.
func (f *Frame) SelectedIndex() (int, bool) {
	for i, n := range f.nodes {
		if n.Selected {
			return i, true
		}
	}
	return -1, false
}

// EditSelectedPosition moves the selected node. No-op without a selection.
func (f *Frame) EditSelectedPosition(x, y float64) {
	if i, ok := f.SelectedIndex(); ok {
		f.nodes[i].setPosition(x, y)
	}
}
