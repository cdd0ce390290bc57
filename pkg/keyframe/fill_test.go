package keyframe

import (
	"reflect"
	"testing"
)

func TestRepeatByCopy(t *testing.T) {
	seq := NewSequence()
	setKeyframe(t, seq, 0, [][2]int{{10, 10}, {20, 20}}, Edge{From: 0, To: 1, Kind: EdgeLine})
	seq.EnsureLength(3)

	seq.RepeatByCopy(2)

	f, ok := seq.Frame(2)
	if !ok {
		t.Fatal("frame 2 missing")
	}
	if got := nodePositions(f); !reflect.DeepEqual(got, [][2]int{{10, 10}, {20, 20}}) {
		t.Errorf("nodes = %v, want [[10 10] [20 20]]", got)
	}
	if got := f.Edges(); !reflect.DeepEqual(got, []Edge{{From: 0, To: 1, Kind: EdgeLine}}) {
		t.Errorf("edges = %+v", got)
	}
	if mid, _ := seq.Frame(1); !mid.IsEmpty() {
		t.Error("frame 1 must stay empty")
	}
}

func TestRepeatByCopyPicksNearestKeyframe(t *testing.T) {
	seq := NewSequence()
	setKeyframe(t, seq, 0, [][2]int{{1, 1}})
	setKeyframe(t, seq, 2, [][2]int{{5, 5}, {6, 6}}, Edge{From: 1, To: 0, Kind: EdgeCircle})

	seq.RepeatByCopy(6)

	if seq.Len() != 7 {
		t.Fatalf("Len() = %d, want 7", seq.Len())
	}
	f, _ := seq.Frame(6)
	if got := nodePositions(f); !reflect.DeepEqual(got, [][2]int{{5, 5}, {6, 6}}) {
		t.Errorf("nodes = %v, want copy of frame 2", got)
	}
	if got := f.Edges(); !reflect.DeepEqual(got, []Edge{{From: 1, To: 0, Kind: EdgeCircle}}) {
		t.Errorf("edges = %+v", got)
	}
}

func TestRepeatByCopyNoOps(t *testing.T) {
	t.Run("empty sequence", func(t *testing.T) {
		seq := NewSequence()
		seq.RepeatByCopy(3)
		if seq.Len() != 0 {
			t.Errorf("Len() = %d, want 0", seq.Len())
		}
	})

	t.Run("no earlier keyframe", func(t *testing.T) {
		seq := NewSequence()
		setKeyframe(t, seq, 3, [][2]int{{1, 1}})
		seq.RepeatByCopy(1)
		if f, _ := seq.Frame(1); !f.IsEmpty() {
			t.Error("frame 1 should remain empty")
		}
	})

	t.Run("target not empty", func(t *testing.T) {
		seq := NewSequence()
		setKeyframe(t, seq, 0, [][2]int{{1, 1}, {2, 2}})
		setKeyframe(t, seq, 1, [][2]int{{9, 9}})
		seq.RepeatByCopy(1)
		if f, _ := seq.Frame(1); f.Len() != 1 {
			t.Errorf("frame 1 has %d nodes, want 1", f.Len())
		}
	})

	t.Run("first frame", func(t *testing.T) {
		seq := NewSequence()
		seq.EnsureLength(2)
		setKeyframe(t, seq, 1, [][2]int{{1, 1}})
		seq.RepeatByCopy(0)
		if f, _ := seq.Frame(0); !f.IsEmpty() {
			t.Error("frame 0 has no predecessor and must stay empty")
		}
	})

	t.Run("negative index", func(t *testing.T) {
		seq := NewSequence()
		setKeyframe(t, seq, 0, [][2]int{{1, 1}})
		seq.RepeatByCopy(-1)
		if seq.Len() != 1 {
			t.Errorf("Len() = %d, want 1", seq.Len())
		}
	})
}

func TestRepeatByCopyDoesNotCopySelection(t *testing.T) {
	seq := NewSequence()
	setKeyframe(t, seq, 0, [][2]int{{1, 1}})
	seq.SelectNode(0, 1, 1)

	seq.RepeatByCopy(1)

	if _, ok := seq.SelectedIndex(1); ok {
		t.Error("copied frame should start without selection")
	}
}

func TestInterpolateThirds(t *testing.T) {
	seq := NewSequence()
	setKeyframe(t, seq, 0, [][2]int{{0, 0}})
	setKeyframe(t, seq, 3, [][2]int{{30, 30}})

	seq.Interpolate()

	want := map[int][2]int{1: {10, 10}, 2: {20, 20}}
	for idx, pos := range want {
		n, ok := seq.Node(idx, 0)
		if !ok {
			t.Fatalf("frame %d node 0 missing", idx)
		}
		if n.X != pos[0] || n.Y != pos[1] {
			t.Errorf("frame %d node 0 = (%d, %d), want %v", idx, n.X, n.Y, pos)
		}
	}
}

func TestInterpolateTruncates(t *testing.T) {
	seq := NewSequence()
	setKeyframe(t, seq, 0, [][2]int{{0, 10}})
	setKeyframe(t, seq, 4, [][2]int{{10, 0}})

	seq.Interpolate()

	want := [][2]int{{2, 7}, {5, 5}, {7, 2}}
	for j, pos := range want {
		n, _ := seq.Node(j+1, 0)
		if n.X != pos[0] || n.Y != pos[1] {
			t.Errorf("frame %d node 0 = (%d, %d), want %v", j+1, n.X, n.Y, pos)
		}
	}
}

func TestInterpolateLeavesLeadingAndTrailingEmpty(t *testing.T) {
	seq := NewSequence()
	seq.EnsureLength(2)
	setKeyframe(t, seq, 2, [][2]int{{0, 0}})
	setKeyframe(t, seq, 4, [][2]int{{4, 4}})
	seq.EnsureLength(7)

	seq.Interpolate()

	for _, idx := range []int{0, 1, 5, 6} {
		if f, _ := seq.Frame(idx); !f.IsEmpty() {
			t.Errorf("frame %d should stay empty, has %d nodes", idx, f.Len())
		}
	}
	if n, _ := seq.Node(3, 0); n.X != 2 || n.Y != 2 {
		t.Errorf("frame 3 node 0 = (%d, %d), want (2, 2)", n.X, n.Y)
	}
}

func TestInterpolateCommonPrefixAndEdges(t *testing.T) {
	seq := NewSequence()
	setKeyframe(t, seq, 0, [][2]int{{0, 0}, {10, 0}}, Edge{From: 0, To: 1})
	setKeyframe(t, seq, 3, [][2]int{{30, 0}})

	seq.Interpolate()

	for _, idx := range []int{1, 2} {
		f, _ := seq.Frame(idx)
		if f.Len() != 1 {
			t.Errorf("frame %d has %d nodes, want 1", idx, f.Len())
		}
		if len(f.Edges()) != 0 {
			t.Errorf("frame %d kept edge %+v whose endpoint is beyond the prefix", idx, f.Edges())
		}
	}
}

func TestInterpolateCopiesEdgesFromOpeningKeyframe(t *testing.T) {
	seq := NewSequence()
	setKeyframe(t, seq, 0, [][2]int{{0, 0}, {10, 0}, {20, 0}},
		Edge{From: 0, To: 1, Kind: EdgeCircle}, Edge{From: 1, To: 2})
	setKeyframe(t, seq, 2, [][2]int{{0, 20}, {10, 20}, {20, 20}},
		Edge{From: 2, To: 0})

	seq.Interpolate()

	f, _ := seq.Frame(1)
	if got := nodePositions(f); !reflect.DeepEqual(got, [][2]int{{0, 10}, {10, 10}, {20, 10}}) {
		t.Errorf("nodes = %v", got)
	}
	want := []Edge{{From: 0, To: 1, Kind: EdgeCircle}, {From: 1, To: 2, Kind: EdgeLine}}
	if got := f.Edges(); !reflect.DeepEqual(got, want) {
		t.Errorf("edges = %+v, want %+v", got, want)
	}
}

func TestInterpolateMultipleGaps(t *testing.T) {
	seq := NewSequence()
	setKeyframe(t, seq, 0, [][2]int{{0, 0}})
	setKeyframe(t, seq, 2, [][2]int{{20, 0}})
	setKeyframe(t, seq, 3, [][2]int{{30, 0}})
	setKeyframe(t, seq, 6, [][2]int{{0, 0}})

	if got := seq.Gaps(); !reflect.DeepEqual(got, []Gap{{Begin: 0, End: 2}, {Begin: 3, End: 6}}) {
		t.Fatalf("Gaps() = %+v", got)
	}

	seq.Interpolate()

	wantX := []int{0, 10, 20, 30, 20, 10, 0}
	for i, x := range wantX {
		n, ok := seq.Node(i, 0)
		if !ok || n.X != x {
			t.Errorf("frame %d node 0 = %+v (ok=%v), want X=%d", i, n, ok, x)
		}
	}
	if len(seq.Gaps()) != 0 {
		t.Errorf("gaps remain after Interpolate: %+v", seq.Gaps())
	}
}

func TestInterpolateNoGaps(t *testing.T) {
	seq := NewSequence()
	setKeyframe(t, seq, 0, [][2]int{{0, 0}})
	setKeyframe(t, seq, 1, [][2]int{{5, 5}})
	before := seq.Describe()

	seq.Interpolate()
	NewSequence().Interpolate()

	if after := seq.Describe(); after != before {
		t.Errorf("adjacent keyframes changed:\n%s", after)
	}
}

func TestGapInterior(t *testing.T) {
	if got := (Gap{Begin: 2, End: 6}).Interior(); got != 3 {
		t.Errorf("Interior() = %d, want 3", got)
	}
}
