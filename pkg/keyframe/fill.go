package keyframe

// Gap is a run of empty frames strictly between two keyframes.
// Begin and End are the bounding keyframes, End-Begin > 1.
type Gap struct {
	Begin int `json:"begin"`
	End   int `json:"end"`
}

// Interior returns the number of empty frames inside the gap.
func (g Gap) Interior() int {
	return g.End - g.Begin - 1
}

// RepeatByCopy fills the empty frame at frameIndex with a copy of the nearest
// earlier keyframe. Nothing happens when the sequence is empty, when the
// target already has nodes, or when no earlier keyframe exists. A target past
// the end of the sequence is treated as empty and grows the sequence.
func (s *Sequence) RepeatByCopy(frameIndex int) {
	if len(s.frames) == 0 || frameIndex < 0 {
		return
	}
	if target, ok := s.frameAt(frameIndex); ok && !target.IsEmpty() {
		return
	}

	limit := min(frameIndex, len(s.frames))
	source := -1
	for i := limit - 1; i >= 0; i-- {
		if !s.frames[i].IsEmpty() {
			source = i
			break
		}
	}
	if source < 0 {
		return
	}

	src := s.frames[source]
	for _, n := range src.nodes {
		s.InsertNode(frameIndex, float64(n.X), float64(n.Y))
	}
	for _, e := range src.edges {
		s.InsertEdge(frameIndex, e.From, e.To, e.Kind)
	}
}

// Gaps returns every gap in index order. Empty frames before the first
// keyframe or after the last one never belong to a gap.
func (s *Sequence) Gaps() []Gap {
	var gaps []Gap
	prev := -1
	for i, f := range s.frames {
		if f.IsEmpty() {
			continue
		}
		if prev >= 0 && i-prev > 1 {
			gaps = append(gaps, Gap{Begin: prev, End: i})
		}
		prev = i
	}
	return gaps
}

// Interpolate fills every gap by linear interpolation between its bounding
// keyframes. Only the node prefix both keyframes share is interpolated; edges
// are taken from the opening keyframe and kept only when both endpoints fall
// inside that prefix.
func (s *Sequence) Interpolate() {
	for _, g := range s.Gaps() {
		s.fillGap(g)
	}
}

func (s *Sequence) fillGap(g Gap) {
	begin, end := s.frames[g.Begin], s.frames[g.End]
	n := min(begin.Len(), end.Len())
	span := g.End - g.Begin
	step := 1 / float64(span)

	for i := 0; i < n; i++ {
		from, to := begin.nodes[i], end.nodes[i]
		dx := float64(to.X - from.X)
		dy := float64(to.Y - from.Y)
		for j := 1; j < span; j++ {
			x := float64(from.X) + dx*step*float64(j)
			y := float64(from.Y) + dy*step*float64(j)
			s.frames[g.Begin+j].InsertNode(x, y)
		}
	}

	for _, e := range begin.edges {
		for j := 1; j < span; j++ {
			interior := s.frames[g.Begin+j]
			if e.From < interior.Len() && e.To < interior.Len() {
				interior.InsertEdge(e.From, e.To, e.Kind)
			}
		}
	}
}
