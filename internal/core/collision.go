package core

import (
	"math"

	"github.com/golang/geo/r2"
)

// Checker is the collision checker: footprint vs. obstacle test along
// a simulated segment. It holds a read-only ObstacleIndex and the
// vehicle geometry; it performs no mutation and is safe for
// concurrent use once built.
type Checker struct {
	Index   *ObstacleIndex
	Vehicle VehicleGeometry
	DeltaXY float64 // grid resolution; contributes the one-cell safety margin
}

// NewChecker builds a collision checker over idx for the given
// vehicle geometry and grid resolution.
func NewChecker(idx *ObstacleIndex, vehicle VehicleGeometry, deltaXY float64) *Checker {
	return &Checker{Index: idx, Vehicle: vehicle, DeltaXY: deltaXY}
}

// CollidesAt tests a single rigid body at a single pose: compute the
// footprint center, query the obstacle index within the circumscribed
// radius plus a one-cell safety margin, and test each candidate
// obstacle in the footprint-local frame.
//
// Note: the longitudinal test below uses the circumscribed radius r
// rather than the half-length (RF+RB)/2 — a conservative bound
// preserved verbatim from the source; it is not a bug to "fix"
// without coordinated test updates.
func (c *Checker) CollidesAt(p Pose) bool {
	dl := c.Vehicle.CenterOffset()
	cx := p.X + dl*math.Cos(p.Yaw)
	cy := p.Y + dl*math.Sin(p.Yaw)

	safetyMargin := c.DeltaXY
	r := c.Vehicle.CircumscribedRadius() + safetyMargin

	candidates := c.Index.QueryBall(r2.Point{X: cx, Y: cy}, r)
	if len(candidates) == 0 {
		return false
	}

	cosYaw, sinYaw := math.Cos(p.Yaw), math.Sin(p.Yaw)
	halfW := c.Vehicle.W/2.0 + safetyMargin
	for _, i := range candidates {
		o := c.Index.Point(i)
		xo, yo := o.X-cx, o.Y-cy
		dxLocal := xo*cosYaw + yo*sinYaw
		dyLocal := -xo*sinYaw + yo*cosYaw
		if math.Abs(dxLocal) < r && math.Abs(dyLocal) < halfW {
			return true
		}
	}
	return false
}

// CollidesSequence tests a sequence of single-body poses, as the
// search amortizes: callers are expected to have already subsampled
// to every K-th sample (COLLISION_CHECK_STEP) before calling this.
func (c *Checker) CollidesSequence(poses []Pose) bool {
	for _, p := range poses {
		if c.CollidesAt(p) {
			return true
		}
	}
	return false
}

// CollidesSequenceMulti tests a sequence of multi-body frames (one
// Pose per rigid body per frame), for motion models whose
// FootprintPoses returns more than one body — e.g. the
// tractor-trailer extension, checked as two rigid bodies sharing a
// time step.
func (c *Checker) CollidesSequenceMulti(frames [][]Pose) bool {
	for _, frame := range frames {
		for _, p := range frame {
			if c.CollidesAt(p) {
				return true
			}
		}
	}
	return false
}

// SubsampleStep returns every K-th sample (K = CollisionCheckStep),
// always including the last sample, per the search's amortization
// strategy for collision checks along a segment.
func SubsampleStep(poses []Pose, step int) []Pose {
	if step <= 1 || len(poses) == 0 {
		return poses
	}
	out := make([]Pose, 0, len(poses)/step+1)
	for i := 0; i < len(poses); i += step {
		out = append(out, poses[i])
	}
	last := poses[len(poses)-1]
	if out[len(out)-1] != last {
		out = append(out, last)
	}
	return out
}
