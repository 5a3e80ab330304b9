package algo

import (
	"context"
	"math"
	"testing"

	"github.com/Cylos9/Hybrid-A-Star/internal/core"
	"github.com/Cylos9/Hybrid-A-Star/internal/rs"
)

func emptyMapParams(t *testing.T) *core.SpatialParams {
	t.Helper()
	const half = 30
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

func newSearcherForTest(t *testing.T, cfg core.Config, p *core.SpatialParams, goal core.Pose) *Searcher {
	t.Helper()
	goalIdx := p.ToIndex(goal)
	heuristic := BuildHolonomicHeuristic(p, goalIdx.XI, goalIdx.YI, cfg.Vehicle.Radius)
	checker := core.NewChecker(p.Index, cfg.Vehicle, cfg.DeltaXY)
	return NewSearcher(cfg, p, core.BicycleModel{}, checker, heuristic, rs.StandardGenerator{}, nil)
}

// S1 — empty map, straight: start (0,0,0), goal (4,0,0).
func TestSearcherS1EmptyMapStraight(t *testing.T) {
	cfg := core.DefaultConfig()
	p := emptyMapParams(t)
	start := core.NewPose(0, 0, 0)
	goal := core.NewPose(4, 0, 0)

	path, err := newSearcherForTest(t, cfg, p, goal).Run(context.Background(), []float64{start.X, start.Y, start.Yaw}, goal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path == nil {
		t.Fatalf("expected a path")
	}
	for _, d := range path.Direction {
		if d < 0 {
			t.Fatalf("expected all-forward directions on an empty straight map, found %v", path.Direction)
		}
	}
	totalArc := 0.0
	for i := 1; i < len(path.X); i++ {
		totalArc += math.Hypot(path.X[i]-path.X[i-1], path.Y[i]-path.Y[i-1])
	}
	if totalArc < 3.9 || totalArc > 4.5 {
		t.Fatalf("total arc length = %f, want roughly [4.0, 4.4]", totalArc)
	}
}

// S2 — empty map, U-turn: start (0,0,0), goal (0,0,pi).
func TestSearcherS2EmptyMapUTurn(t *testing.T) {
	cfg := core.DefaultConfig()
	p := emptyMapParams(t)
	start := core.NewPose(0, 0, 0)
	goal := core.NewPose(0, 0, math.Pi)

	path, err := newSearcherForTest(t, cfg, p, goal).Run(context.Background(), []float64{start.X, start.Y, start.Yaw}, goal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path == nil {
		t.Fatalf("expected a path for a U-turn on an empty map")
	}
	if len(path.Direction) < 2 {
		t.Fatalf("expected more than one sample")
	}
	if path.Direction[0] != path.Direction[1] {
		t.Fatalf("root-direction rewrite property violated: direction[0]=%f, direction[1]=%f", path.Direction[0], path.Direction[1])
	}
}

// S9 — start and goal share a lattice cell: expect a trivial,
// non-empty path.
func TestSearcherS9SameCellTrivialPath(t *testing.T) {
	cfg := core.DefaultConfig()
	p := emptyMapParams(t)
	start := core.NewPose(1.0, 1.0, 0.1)
	goal := start

	path, err := newSearcherForTest(t, cfg, p, goal).Run(context.Background(), []float64{start.X, start.Y, start.Yaw}, goal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path == nil {
		t.Fatalf("expected a trivial path when start equals goal")
	}
	if path.Len() < 1 {
		t.Fatalf("expected at least one sample")
	}
}

// S4 — infeasible: goal enclosed by an obstacle rectangle tighter than
// the vehicle footprint.
func TestSearcherS4InfeasibleEnclosedGoal(t *testing.T) {
	cfg := core.DefaultConfig()
	const half = 30
	var ox, oy []int
	for i := -half; i <= half; i++ {
		ox = append(ox, i, i, -half, half)
		oy = append(oy, -half, half, i, i)
	}
	// Enclose (5,5) tightly: the box points lie within 0.1m of the
	// goal, so at 0.2m grid spacing every one of them rounds onto the
	// goal's own cell (25,25) and the goal pose itself is in collision.
	toGrid := func(v float64) int { return int(math.Round(v / 0.2)) }
	box := [][2]float64{{4.9, 4.9}, {5.1, 4.9}, {4.9, 5.1}, {5.1, 5.1}, {5.0, 4.9}, {5.0, 5.1}, {4.9, 5.0}, {5.1, 5.0}}
	for _, pt := range box {
		ox = append(ox, toGrid(pt[0]))
		oy = append(oy, toGrid(pt[1]))
	}

	p, err := core.NewSpatialParams(ox, oy, 0.2, 15*math.Pi/180)
	if err != nil {
		t.Fatalf("NewSpatialParams failed: %v", err)
	}
	start := core.NewPose(0, 0, 0)
	goal := core.NewPose(5.0, 5.0, 0)

	path, err := newSearcherForTest(t, cfg, p, goal).Run(context.Background(), []float64{start.X, start.Y, start.Yaw}, goal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != nil {
		t.Fatalf("expected NoPath (nil) for an enclosed, infeasible goal, got a %d-sample path", path.Len())
	}
}

func TestPrimitivesCount(t *testing.T) {
	cfg := core.DefaultConfig()
	prims := Primitives(cfg)
	want := 2 * (2*cfg.NSteer + 1)
	if len(prims) != want {
		t.Fatalf("len(Primitives) = %d, want %d", len(prims), want)
	}
}
