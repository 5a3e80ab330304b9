// Package hybridastar is the planner façade: it assembles the
// spatial parameters, obstacle index, collision checker, holonomic
// heuristic, and the Hybrid-A* search over a single immutable
// core.Config, and returns the reconstructed Path.
package hybridastar

import (
	"context"
	"math"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"

	"github.com/Cylos9/Hybrid-A-Star/internal/algo"
	"github.com/Cylos9/Hybrid-A-Star/internal/core"
	"github.com/Cylos9/Hybrid-A-Star/internal/rs"
)

// Plan is the planner's entry point: given start/goal poses and the
// occupied grid cells ox_grid/oy_grid, it returns a Path on success,
// (nil, nil) on NoPath (the open set emptied without an analytic
// shortcut), and a non-nil error for invalid input or a cancelled
// context.
func Plan(ctx context.Context, cfg core.Config, start, goal core.Pose, oxGrid, oyGrid []int, logger golog.Logger) (*core.Path, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !finitePose(start) || !finitePose(goal) {
		return nil, errors.Wrap(core.ErrInvalidInput, "start/goal pose must have finite components")
	}

	params, err := core.NewSpatialParams(oxGrid, oyGrid, cfg.DeltaXY, cfg.DeltaYaw)
	if err != nil {
		return nil, err
	}

	startIdx := params.ToIndex(start)
	goalIdx := params.ToIndex(goal)
	if !params.InBounds(startIdx) {
		return nil, errors.Wrap(core.ErrInvalidInput, "start pose outside grid bounds")
	}
	if !params.InBounds(goalIdx) {
		return nil, errors.Wrap(core.ErrInvalidInput, "goal pose outside grid bounds")
	}

	checker := core.NewChecker(params.Index, cfg.Vehicle, cfg.DeltaXY)
	if checker.CollidesAt(start) {
		return nil, errors.Wrap(core.ErrInvalidInput, "start pose is in collision")
	}
	if checker.CollidesAt(goal) {
		return nil, errors.Wrap(core.ErrInvalidInput, "goal pose is in collision")
	}

	heuristic := algo.BuildHolonomicHeuristic(params, goalIdx.XI, goalIdx.YI, cfg.Vehicle.Radius)
	if heuristic.GoalBlocked(goalIdx.XI, goalIdx.YI) {
		// A blocked goal cell degrades to NoPath, but the search
		// still runs since an RS shortcut from the start pose itself
		// may succeed without ever consulting the heuristic.
		if logger != nil {
			logger.Infow("hybridastar: goal cell blocked in holonomic obstacle map")
		}
	}

	motion, startState := motionModelFor(cfg, start)

	searcher := algo.NewSearcher(cfg, params, motion, checker, heuristic, rs.StandardGenerator{}, logger)
	return searcher.Run(ctx, startState, goal)
}

// motionModelFor builds the configured MotionModel and the initial
// state vector for start. For the tractor-trailer extension the façade
// always uses a 4-tuple state (the 6-tuple representation is not
// selected here): start is taken as the tractor pose for the
// tractor-based representation and as the trailer pose for the
// trailer-based one, with the hitch angle initialized to zero (bodies
// aligned) since the façade's single-pose entry point carries no hitch
// information.
func motionModelFor(cfg core.Config, start core.Pose) (core.MotionModel, []float64) {
	if cfg.MotionModel == core.TractorTrailer {
		return core.TractorTrailerModel{Geometry: cfg.Trailer}, []float64{start.X, start.Y, start.Yaw, 0}
	}
	return core.BicycleModel{}, []float64{start.X, start.Y, start.Yaw}
}

func finitePose(p core.Pose) bool {
	return isFinite(p.X) && isFinite(p.Y) && isFinite(p.Yaw)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
