// Package algo implements the search core of the planner: the
// holonomic-with-obstacles heuristic, the 3D-lattice Hybrid-A* search
// with Reeds-Shepp analytic expansion, and path extraction.
package algo

import (
	"context"
	"math"
	"sort"

	"github.com/edaniels/golog"

	"github.com/Cylos9/Hybrid-A-Star/internal/core"
	"github.com/Cylos9/Hybrid-A-Star/internal/rs"
)

// Primitive is one (u, d) control primitive.
type Primitive struct {
	U float64
	D float64
}

// Primitives builds the symmetric primitive set: NSteer
// angular-velocity samples scaled toward UMax, mirrored to their
// negatives, plus zero, each paired with both gears. Yields
// 2*(2*NSteer+1) primitives.
func Primitives(cfg core.Config) []Primitive {
	us := make([]float64, 0, 2*cfg.NSteer+1)
	for i := 1; i <= cfg.NSteer; i++ {
		us = append(us, cfg.UMax*float64(i)/float64(cfg.NSteer))
	}
	us = append(us, 0)
	for i := cfg.NSteer; i >= 1; i-- {
		us = append(us, -cfg.UMax*float64(i)/float64(cfg.NSteer))
	}

	prims := make([]Primitive, 0, 2*len(us))
	for _, d := range [2]float64{1, -1} {
		for _, u := range us {
			prims = append(prims, Primitive{U: u, D: d})
		}
	}
	return prims
}

// Searcher runs one Hybrid-A* search over a fixed set of
// collaborators. It holds no state across Run calls; a Searcher may be
// reused or discarded freely.
type Searcher struct {
	Config    core.Config
	Params    *core.SpatialParams
	Motion    core.MotionModel
	Checker   *core.Checker
	Heuristic *HolonomicHeuristic
	RS        rs.Generator
	Logger    golog.Logger

	primitives []Primitive
}

// NewSearcher builds a Searcher and precomputes its primitive set.
func NewSearcher(cfg core.Config, p *core.SpatialParams, motion core.MotionModel, checker *core.Checker, heuristic *HolonomicHeuristic, gen rs.Generator, logger golog.Logger) *Searcher {
	return &Searcher{
		Config: cfg, Params: p, Motion: motion, Checker: checker,
		Heuristic: heuristic, RS: gen, Logger: logger,
		primitives: Primitives(cfg),
	}
}

// Run executes the search loop from startState (the motion model's
// raw state vector) to goal. It returns the extracted Path on
// success, (nil, nil) on NoPath (the open set emptied without an
// analytic-expansion success), and a non-nil error when ctx is
// cancelled or when startState does not match the motion model's
// state size.
func (s *Searcher) Run(ctx context.Context, startState []float64, goal core.Pose) (*core.Path, error) {
	startPoses, err := s.Motion.FootprintPoses(startState)
	if err != nil {
		return nil, err
	}
	startPose := startPoses[0]
	rootIdx := s.Params.ToIndex(startPose)
	rootKey := s.Params.Key(rootIdx)

	root := &core.SearchNode{
		Idx: rootIdx, Gear: 1,
		Xs: []float64{startPose.X}, Ys: []float64{startPose.Y}, Yaws: []float64{startPose.Yaw},
		Directions: []float64{0},
		State:      startState,
		Steer:      0,
		Cost:       0,
		HasParent:  false,
	}

	open := map[core.CellKey]*core.SearchNode{rootKey: root}
	closed := map[core.CellKey]*core.SearchNode{}
	queue := newOpenQueue()
	queue.push(rootKey, s.f(root))

	if s.Logger != nil {
		s.Logger.Infow("hybrid-astar: search start", "primitives", len(s.primitives))
	}

	iterations := 0
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		key, fPopped, ok := queue.pop()
		if !ok {
			if s.Logger != nil {
				s.Logger.Infow("hybrid-astar: open set emptied, no path", "iterations", iterations)
			}
			return nil, nil
		}
		node, stillOpen := open[key]
		if !stillOpen {
			continue // stale: already closed or superseded
		}
		if fPopped != s.f(node) {
			continue // stale: a better f was pushed since
		}
		delete(open, key)
		closed[key] = node
		iterations++

		if terminal, ok := s.tryAnalyticExpansion(node, goal); ok {
			if s.Logger != nil {
				s.Logger.Infow("hybrid-astar: analytic expansion succeeded", "iterations", iterations)
			}
			return ExtractPath(closed, terminal), nil
		}

		for _, prim := range s.primitives {
			child, ok := s.expand(node, prim)
			if !ok {
				continue
			}
			ckey := s.Params.Key(child.Idx)
			if _, inClosed := closed[ckey]; inClosed {
				continue
			}
			if existing, exists := open[ckey]; exists && existing.Cost <= child.Cost {
				continue
			}
			open[ckey] = child
			queue.push(ckey, s.f(child))
		}
	}
}

// f is the priority f(n) = g(n) + H_COST*hmap[n].
func (s *Searcher) f(n *core.SearchNode) float64 {
	return n.Cost + s.Config.HCost*s.Heuristic.Value(n.Idx.XI, n.Idx.YI)
}

// expand forward-simulates one primitive for arc-length 2*DeltaXY
// sampled at MoveStep, rejecting out-of-bounds or colliding results.
func (s *Searcher) expand(node *core.SearchNode, prim Primitive) (*core.SearchNode, bool) {
	step := 2 * s.Config.DeltaXY
	n := int(math.Round(step / s.Config.MoveStep))
	if n < 1 {
		n = 1
	}

	samples, err := s.Motion.IntegratePrimitive(node.State, prim.U, prim.D, s.Config.MoveStep, n)
	if err != nil {
		return nil, false
	}

	xs := make([]float64, len(samples))
	ys := make([]float64, len(samples))
	yaws := make([]float64, len(samples))
	dirs := make([]float64, len(samples))
	frames := make([][]core.Pose, len(samples))
	for i, st := range samples {
		poses, err := s.Motion.FootprintPoses(st)
		if err != nil {
			return nil, false
		}
		xs[i], ys[i], yaws[i] = poses[0].X, poses[0].Y, poses[0].Yaw
		dirs[i] = prim.D
		frames[i] = poses
	}

	termPose := core.NewPose(xs[len(xs)-1], ys[len(ys)-1], yaws[len(yaws)-1])
	idx := s.Params.ToIndex(termPose)
	if !s.Params.InBounds(idx) {
		return nil, false
	}

	stride := s.Config.CollisionCheckStep
	subFrames := make([][]core.Pose, 0, len(frames)/stride+2)
	for i := 0; i < len(frames); i += stride {
		subFrames = append(subFrames, frames[i])
	}
	subFrames = append(subFrames, frames[len(frames)-1])
	if s.Checker.CollidesSequenceMulti(subFrames) {
		return nil, false
	}

	base := step
	if prim.D < 0 {
		base *= s.Config.BackwardCost
	}
	if prim.D != node.Gear {
		base += s.Config.GearCost
	}
	base += s.Config.AngularVelocityChangeCost * math.Abs(node.Steer-prim.U)

	child := &core.SearchNode{
		Idx: idx, Gear: prim.D,
		Xs: xs, Ys: ys, Yaws: yaws, Directions: dirs,
		State:     samples[len(samples)-1],
		Steer:     prim.U,
		Cost:      node.Cost + base,
		ParentKey: s.Params.Key(node.Idx),
		HasParent: true,
	}
	return child, true
}

// tryAnalyticExpansion is the RS shortcut: enumerate every candidate
// path from node's terminus to goal, score by rsCost, and return the
// first collision-free one in ascending-cost order.
func (s *Searcher) tryAnalyticExpansion(node *core.SearchNode, goal core.Pose) (*core.SearchNode, bool) {
	term := node.Terminus()
	paths, err := s.RS.CalcAllPaths(term.X, term.Y, term.Yaw, goal.X, goal.Y, goal.Yaw, s.Config.MaxCurvatureRadius, s.Config.MoveStep)
	if err != nil || len(paths) == 0 {
		return nil, false
	}

	sort.Slice(paths, func(i, j int) bool { return rsCost(paths[i], s.Config) < rsCost(paths[j], s.Config) })

	for _, p := range paths {
		poses := make([]core.Pose, len(p.X))
		for i := range p.X {
			poses[i] = core.NewPose(p.X[i], p.Y[i], p.Yaw[i])
		}
		sub := core.SubsampleStep(poses, s.Config.CollisionCheckStep)
		if s.Checker.CollidesSequence(sub) {
			continue
		}

		gear := node.Gear
		if len(p.Directions) > 0 {
			gear = p.Directions[len(p.Directions)-1]
		}
		return &core.SearchNode{
			Idx:        s.Params.ToIndex(poses[len(poses)-1]),
			Gear:       gear,
			Xs:         p.X, Ys: p.Y, Yaws: p.Yaw,
			Directions: p.Directions,
			Steer:      node.Steer,
			Cost:       node.Cost + rsCost(p, s.Config),
			ParentKey:  s.Params.Key(node.Idx),
			HasParent:  true,
		}, true
	}
	return nil, false
}

// rsCost scores a candidate RS path: the sum of |length| (reverse
// segments scaled by BackwardCost) plus GearCost for every
// consecutive pair of segments with opposite-sign length.
func rsCost(p rs.Path, cfg core.Config) float64 {
	cost := 0.0
	for _, l := range p.Lengths {
		if l >= 0 {
			cost += l
		} else {
			cost += -l * cfg.BackwardCost
		}
	}
	for i := 1; i < len(p.Lengths); i++ {
		a, b := p.Lengths[i-1], p.Lengths[i]
		if a == 0 || b == 0 {
			continue
		}
		if (a > 0) != (b > 0) {
			cost += cfg.GearCost
		}
	}
	return cost
}
