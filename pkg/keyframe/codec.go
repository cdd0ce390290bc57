package keyframe

import "encoding/json"

type frameJSON struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

type sequenceJSON struct {
	Frames []*Frame `json:"frames"`
}

// MarshalJSON implements json.Marshaler.
func (f *Frame) MarshalJSON() ([]byte, error) {
	return json.Marshal(frameJSON{Nodes: f.Nodes(), Edges: f.Edges()})
}

// UnmarshalJSON rebuilds the frame through InsertNode and InsertEdge so that a
// document with dangling edges or several selected nodes still yields a valid
// frame: dangling edges are dropped and only the first selection survives.
func (f *Frame) UnmarshalJSON(data []byte) error {
	var doc frameJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	rebuilt := NewFrame()
	selected := false
	for _, n := range doc.Nodes {
		i := rebuilt.InsertNode(float64(n.X), float64(n.Y))
		if n.Selected && !selected {
			rebuilt.nodes[i].Selected = true
			selected = true
		}
	}
	for _, e := range doc.Edges {
		rebuilt.InsertEdge(e.From, e.To, e.Kind)
	}

	*f = *rebuilt
	return nil
}

// MarshalJSON implements json.Marshaler.
func (s *Sequence) MarshalJSON() ([]byte, error) {
	frames := s.frames
	if frames == nil {
		frames = []*Frame{}
	}
	return json.Marshal(sequenceJSON{Frames: frames})
}

// UnmarshalJSON replaces the whole sequence. Null frames decode as empty ones.
func (s *Sequence) UnmarshalJSON(data []byte) error {
	var doc sequenceJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	for i, f := range doc.Frames {
		if f == nil {
			doc.Frames[i] = NewFrame()
		}
	}
	s.frames = doc.Frames
	return nil
}
