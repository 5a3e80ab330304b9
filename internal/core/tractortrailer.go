package core

import "math"

// TractorTrailerModel is the hitch-jointed motion model extension,
// ported from original_source/hybrid_a_star/model/tractor_trailer_model.py.
// Depending on Geometry.TrailerBased and the caller's state size, the
// state is one of:
//
//   - 6-tuple (x1, y1, theta1, x2, y2, theta2): both poses explicit.
//   - 4-tuple (x, y, theta, gamma) tractor-based: trailer pose derived.
//   - 4-tuple (x2, y2, theta2, gamma) trailer-based: tractor pose derived.
//
// Control input is (v1, w1): tractor longitudinal speed and yaw rate.
// IntegratePrimitive maps the search's (u, d) primitive onto that
// input the same way the baseline model's reference kinematics do:
// a displacement of d*step per sub-step and a yaw rate of d*step*u,
// run through one RK4 step of unit duration, so that a tractor-trailer
// segment advances by the same arc length per sub-step as the
// baseline model.
type TractorTrailerModel struct {
	Geometry TrailerGeometry
	// SixState forces the explicit 6-tuple representation regardless
	// of Geometry.TrailerBased.
	SixState bool
}

// StateSize returns 6 for the full representation, 4 otherwise.
func (m TractorTrailerModel) StateSize() int {
	if m.SixState {
		return 6
	}
	return 4
}

func (m TractorTrailerModel) dynamics(state, input []float64) []float64 {
	v1, w1 := input[0], input[1]
	lb, lf := m.Geometry.LengthBack, m.Geometry.LengthFront

	switch len(state) {
	case 6:
		theta1, theta2 := state[2], state[5]
		gamma := theta2 - theta1
		return []float64{
			v1 * math.Cos(theta1),
			v1 * math.Sin(theta1),
			w1,
			v1*math.Cos(theta2)*math.Cos(gamma) - w1*lb*math.Cos(theta2)*math.Sin(gamma),
			v1*math.Sin(theta2)*math.Cos(gamma) - w1*lb*math.Sin(theta2)*math.Sin(gamma),
			-v1*(1/lf)*math.Sin(gamma) - w1*(lb/lf)*math.Cos(gamma),
		}
	case 4:
		if m.Geometry.TrailerBased {
			theta2, gamma := state[2], state[3]
			return []float64{
				v1*math.Cos(theta2)*math.Cos(gamma) - w1*lb*math.Cos(theta2)*math.Sin(gamma),
				v1*math.Sin(theta2)*math.Cos(gamma) - w1*lb*math.Sin(theta2)*math.Sin(gamma),
				-v1*(1/lf)*math.Sin(gamma) - w1*(lb/lf)*math.Cos(gamma),
				-v1*(1/lf)*math.Sin(gamma) - w1*((lb/lf)*math.Cos(gamma)+1),
			}
		}
		theta1, gamma := state[2], state[3]
		return []float64{
			v1 * math.Cos(theta1),
			v1 * math.Sin(theta1),
			w1,
			-v1*(1/lf)*math.Sin(gamma) - w1*((lb/lf)*math.Cos(gamma)+1),
		}
	default:
		panic("tractortrailer: unreachable state size")
	}
}

// IntegratePrimitive advances the tractor-trailer state arc-length by
// arc-length, one RK4 step per sub-step.
func (m TractorTrailerModel) IntegratePrimitive(state []float64, u, d, step float64, n int) ([][]float64, error) {
	if len(state) != m.StateSize() {
		return nil, errMotionModelMismatchf("tractor-trailer model expects state size %d, got %d", m.StateSize(), len(state))
	}
	samples := make([][]float64, n+1)
	samples[0] = append([]float64(nil), state...)
	input := []float64{d * step, d * step * u}
	for i := 1; i <= n; i++ {
		next := RK4Step(m.dynamics, samples[i-1], input, 1.0)
		next[2] = Wrap(next[2]) // theta1 (or theta2 for the trailer-based 4-tuple)
		if len(next) == 6 {
			next[5] = Wrap(next[5]) // theta2
		}
		samples[i] = next
	}
	return samples, nil
}

// FootprintPoses returns the tractor pose and the trailer pose, in
// that order, deriving whichever one is not directly part of the
// state via the hitch geometry (ported from
// compute_tractor_pose_from_trailer_pose /
// compute_trailer_pose_from_tractor_pose).
func (m TractorTrailerModel) FootprintPoses(state []float64) ([]Pose, error) {
	if len(state) != m.StateSize() {
		return nil, errMotionModelMismatchf("tractor-trailer model expects state size %d, got %d", m.StateSize(), len(state))
	}
	lb, lf := m.Geometry.LengthBack, m.Geometry.LengthFront

	switch len(state) {
	case 6:
		tractor := NewPose(state[0], state[1], state[2])
		trailer := NewPose(state[3], state[4], state[5])
		return []Pose{tractor, trailer}, nil
	case 4:
		if m.Geometry.TrailerBased {
			x2, y2, theta2, gamma := state[0], state[1], state[2], state[3]
			theta1 := theta2 - gamma
			x1 := x2 + lf*math.Cos(theta2) + lb*math.Cos(theta1)
			y1 := y2 + lf*math.Sin(theta2) + lb*math.Sin(theta1)
			return []Pose{NewPose(x1, y1, theta1), NewPose(x2, y2, theta2)}, nil
		}
		x1, y1, theta1, gamma := state[0], state[1], state[2], state[3]
		theta2 := theta1 + gamma
		x2 := x1 - lf*math.Cos(theta1) - lb*math.Cos(theta2)
		y2 := y1 - lf*math.Sin(theta1) - lb*math.Sin(theta2)
		return []Pose{NewPose(x1, y1, theta1), NewPose(x2, y2, theta2)}, nil
	default:
		return nil, errMotionModelMismatchf("unsupported tractor-trailer state size %d", len(state))
	}
}
