package core

import "testing"

func TestSearchNodeTerminus(t *testing.T) {
	n := &SearchNode{
		Xs: []float64{0, 1, 2}, Ys: []float64{0, 0, 0}, Yaws: []float64{0, 0, 0.1},
		Directions: []float64{1, 1, 1},
	}
	term := n.Terminus()
	if term.X != 2 || term.Y != 0 || term.Yaw != 0.1 {
		t.Fatalf("Terminus() = %v, want (2,0,0.1)", term)
	}
}

func TestSearchNodeSameCell(t *testing.T) {
	a := &SearchNode{Idx: Index{1, 2, 3}}
	b := &SearchNode{Idx: Index{1, 2, 3}}
	c := &SearchNode{Idx: Index{1, 2, 4}}
	if !a.SameCell(b) {
		t.Fatalf("expected nodes with identical indices to be the same cell")
	}
	if a.SameCell(c) {
		t.Fatalf("expected nodes with different yaw bins to differ")
	}
}

func TestPathLen(t *testing.T) {
	p := &Path{X: []float64{0, 1, 2}, Y: []float64{0, 0, 0}, Yaw: []float64{0, 0, 0}, Direction: []float64{1, 1, 1}}
	if p.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", p.Len())
	}
}
