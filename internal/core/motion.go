package core

import "math"

// MotionModel is the capability set the search drives a vehicle
// through: how many numbers describe a state, how a control
// primitive advances that state, and which rigid-body poses the
// collision checker must test for a given state. The baseline
// single-body vehicle (BicycleModel) and the tractor-trailer
// extension (TractorTrailerModel) both satisfy it.
type MotionModel interface {
	// StateSize is the length of the state vector this model expects.
	StateSize() int

	// IntegratePrimitive advances state under a constant control
	// primitive (u, d) for n steps of the given arc length, returning
	// n+1 samples including the starting state.
	IntegratePrimitive(state []float64, u, d, step float64, n int) ([][]float64, error)

	// FootprintPoses returns one Pose per rigid body that must be
	// collision-checked for the given state: one for the baseline
	// model, two (tractor, trailer) for the tractor-trailer extension.
	FootprintPoses(state []float64) ([]Pose, error)
}

// BicycleModel is the baseline single-body motion model. Its
// state is (x, y, yaw).
type BicycleModel struct{}

// StateSize is always 3 for the baseline model.
func (BicycleModel) StateSize() int { return 3 }

// IntegratePrimitive applies the reference bicycle-model kinematics:
//
//	x <- x + d*step*cos(yaw); y <- y + d*step*sin(yaw); yaw <- wrap(yaw + d*step*u)
func (BicycleModel) IntegratePrimitive(state []float64, u, d, step float64, n int) ([][]float64, error) {
	if len(state) != 3 {
		return nil, errMotionModelMismatchf("bicycle model expects state size 3, got %d", len(state))
	}
	samples := make([][]float64, n+1)
	samples[0] = []float64{state[0], state[1], state[2]}
	for i := 1; i <= n; i++ {
		prev := samples[i-1]
		x := prev[0] + d*step*math.Cos(prev[2])
		y := prev[1] + d*step*math.Sin(prev[2])
		yaw := Wrap(prev[2] + d*step*u)
		samples[i] = []float64{x, y, yaw}
	}
	return samples, nil
}

// FootprintPoses returns the single rigid-body pose of the baseline
// model.
func (BicycleModel) FootprintPoses(state []float64) ([]Pose, error) {
	if len(state) != 3 {
		return nil, errMotionModelMismatchf("bicycle model expects state size 3, got %d", len(state))
	}
	return []Pose{NewPose(state[0], state[1], state[2])}, nil
}
