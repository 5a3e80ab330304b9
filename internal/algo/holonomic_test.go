package algo

import (
	"math"
	"testing"

	"github.com/Cylos9/Hybrid-A-Star/internal/core"
)

func frameParams(t *testing.T) *core.SpatialParams {
	t.Helper()
	const half = 20
	var ox, oy []int
	for i := -half; i <= half; i++ {
		ox = append(ox, i, i, -half, half)
		oy = append(oy, -half, half, i, i)
	}
	p, err := core.NewSpatialParams(ox, oy, 0.2, 15*math.Pi/180)
	if err != nil {
		t.Fatalf("NewSpatialParams failed: %v", err)
	}
	return p
}

func TestHolonomicHeuristicZeroAtGoal(t *testing.T) {
	p := frameParams(t)
	h := BuildHolonomicHeuristic(p, 0, 0, 0.4)
	if v := h.Value(0, 0); v != 0 {
		t.Fatalf("Value at goal cell = %f, want 0", v)
	}
}

func TestHolonomicHeuristicMatchesEuclideanOnEmptyMap(t *testing.T) {
	// In an empty map, hmap at the start cell equals
	// hypot(gx-sx,gy-sy)/Δxy to within 8-connected quantization.
	p := frameParams(t)
	goalXI, goalYI := 0, 0
	startXI, startYI := 10, 5
	h := BuildHolonomicHeuristic(p, goalXI, goalYI, 0.4)

	want := math.Hypot(float64(startXI-goalXI), float64(startYI-goalYI))
	got := h.Value(startXI, startYI)
	if got > want+math.Sqrt2+1e-9 {
		t.Fatalf("Value(%d,%d) = %f, want <= %f", startXI, startYI, got, want+math.Sqrt2)
	}
	if math.IsInf(got, 1) {
		t.Fatalf("expected a finite reachable heuristic value")
	}
}

func TestHolonomicHeuristicMonotoneInObstacleDensity(t *testing.T) {
	// Adding obstacles cannot lower any hmap entry.
	const half = 20
	var ox, oy []int
	for i := -half; i <= half; i++ {
		ox = append(ox, i, i, -half, half)
		oy = append(oy, -half, half, i, i)
	}
	pBefore, err := core.NewSpatialParams(ox, oy, 0.2, 15*math.Pi/180)
	if err != nil {
		t.Fatalf("NewSpatialParams failed: %v", err)
	}
	hBefore := BuildHolonomicHeuristic(pBefore, 0, 0, 0.4)

	// Add an obstacle between a sample cell and the goal.
	ox = append(ox, 2)
	oy = append(oy, 0)
	pAfter, err := core.NewSpatialParams(ox, oy, 0.2, 15*math.Pi/180)
	if err != nil {
		t.Fatalf("NewSpatialParams failed: %v", err)
	}
	hAfter := BuildHolonomicHeuristic(pAfter, 0, 0, 0.4)

	for _, cell := range [][2]int{{5, 0}, {3, 1}, {10, 10}} {
		before := hBefore.Value(cell[0], cell[1])
		after := hAfter.Value(cell[0], cell[1])
		if after < before-1e-9 {
			t.Fatalf("cell %v: heuristic decreased after adding an obstacle (%f -> %f)", cell, before, after)
		}
	}
}

func TestHolonomicHeuristicGoalBlocked(t *testing.T) {
	ox := []int{0, 1, -1, 0, 0, 20, -20, 0, 0}
	oy := []int{0, 0, 0, 1, -1, 0, 0, 20, -20}
	p, err := core.NewSpatialParams(ox, oy, 0.2, 15*math.Pi/180)
	if err != nil {
		t.Fatalf("NewSpatialParams failed: %v", err)
	}
	h := BuildHolonomicHeuristic(p, 0, 0, 1.0)
	if !h.GoalBlocked(0, 0) {
		t.Fatalf("expected goal cell surrounded by inflated obstacles to be blocked")
	}
}
