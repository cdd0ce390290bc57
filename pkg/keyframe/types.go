// Package keyframe holds the per-frame skeleton graphs of an animation and the
// gap-filling algorithms that complete the frames lying between keyframes.
//
// A Sequence is an index-addressed list of Frames. A Frame is an ordered list
// of Nodes plus Edges that reference nodes by position. A frame without nodes
// is the representation of "no keyframe here".
//
// Thread Safety:
// Nothing in this package is safe for concurrent use. A Sequence is meant to be
// owned by a single editing session; gap filling reads and writes many frames
// and must run with exclusive access to the whole Sequence.
package keyframe

import (
	"fmt"
	"math"
)

// DefaultSelectionThreshold is the maximum distance, in pixels, between a
// pick position and a node for the node to become selected.
const DefaultSelectionThreshold = 24.0

// Node is a 2D pixel position inside a frame.
type Node struct {
	X        int  `json:"x"`
	Y        int  `json:"y"`
	Selected bool `json:"selected,omitempty"`
}

// newNode truncates the coordinates toward zero.
func newNode(x, y float64) Node {
	return Node{X: int(x), Y: int(y)}
}

func (n *Node) setPosition(x, y float64) {
	n.X, n.Y = int(x), int(y)
}

// DistanceTo returns the Euclidean distance between two nodes.
func (n Node) DistanceTo(other Node) float64 {
	return math.Hypot(float64(n.X-other.X), float64(n.Y-other.Y))
}

// EdgeKind tells the renderer how to draw an edge.
type EdgeKind uint8

const (
	// EdgeLine is a straight segment between the two endpoints
	EdgeLine EdgeKind = iota
	// EdgeCircle is a filled circle whose diameter spans the two endpoints
	EdgeCircle
)

// String returns the string representation of an EdgeKind.
func (k EdgeKind) String() string {
	switch k {
	case EdgeLine:
		return "line"
	case EdgeCircle:
		return "circle"
	default:
		return fmt.Sprintf("EdgeKind(%d)", uint8(k))
	}
}

// ParseEdgeKind converts "line" or "circle" to an EdgeKind.
func ParseEdgeKind(s string) (EdgeKind, error) {
	switch s {
	case "line", "LINE", "l":
		return EdgeLine, nil
	case "circle", "CIRCLE", "c":
		return EdgeCircle, nil
	default:
		return EdgeLine, fmt.Errorf("unknown edge kind: %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k EdgeKind) MarshalText() ([]byte, error) {
	switch k {
	case EdgeLine, EdgeCircle:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("cannot marshal %s", k)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *EdgeKind) UnmarshalText(text []byte) error {
	kind, err := ParseEdgeKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// Edge connects two nodes of the same frame by their indices.
// Indices are positions, not identities: removing a lower-indexed node
// renumbers the edge.
type Edge struct {
	From int      `json:"from"`
	To   int      `json:"to"`
	Kind EdgeKind `json:"kind"`
}

// Stats summarizes a sequence.
type Stats struct {
	Frames    int `json:"frames"`
	Keyframes int `json:"keyframes"`
	Nodes     int `json:"nodes"`
	Edges     int `json:"edges"`
}
