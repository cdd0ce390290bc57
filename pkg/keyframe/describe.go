package keyframe

import (
	"fmt"
	"io"
	"strings"
)

// WriteDescription writes one line per frame with its node count, followed by
// one indented line per edge.
func (s *Sequence) WriteDescription(w io.Writer) error {
	for i, f := range s.frames {
		if _, err := fmt.Fprintf(w, "Frame %d. Nodes: %d\n", i, len(f.nodes)); err != nil {
			return err
		}
		for j, e := range f.edges {
			if _, err := fmt.Fprintf(w, "   Edge %d. (%d, %d) --> %s\n", j, e.From, e.To, e.Kind); err != nil {
				return err
			}
		}
	}
	return nil
}

// Describe returns the text written by WriteDescription.
func (s *Sequence) Describe() string {
	var b strings.Builder
	_ = s.WriteDescription(&b)
	return b.String()
}
