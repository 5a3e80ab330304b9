package core

// Dynamics computes the time derivative of state under input.
type Dynamics func(state, input []float64) []float64

// RK4Step advances state by stepSize using classic 4th-order
// Runge-Kutta, ported from
// original_source/hybrid_a_star/model/base_model.py's BaseModel.step
// (method "RK4"). input is held constant across the sub-steps.
func RK4Step(dyn Dynamics, state, input []float64, stepSize float64) []float64 {
	n := len(state)
	add := func(a, b []float64, scale float64) []float64 {
		out := make([]float64, n)
		for i := range out {
			out[i] = a[i] + scale*b[i]
		}
		return out
	}

	k1 := dyn(state, input)
	k2 := dyn(add(state, k1, stepSize/2), input)
	k3 := dyn(add(state, k2, stepSize/2), input)
	k4 := dyn(add(state, k3, stepSize), input)

	next := make([]float64, n)
	for i := range next {
		next[i] = state[i] + (stepSize/6.0)*(k1[i]+2*k2[i]+2*k3[i]+k4[i])
	}
	return next
}
