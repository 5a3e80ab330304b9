// Package rs implements the external Reeds-Shepp collaborator: given
// two oriented poses and a turning radius, it enumerates candidate
// shortest paths for a car that can drive both forward and reverse.
// The planner depends only on the Generator interface, so this
// concrete implementation is swappable.
package rs

import "math"

// Path is one candidate Reeds-Shepp path between two poses: parallel
// sample sequences plus the signed per-segment arc lengths.
// Lengths[i] is the signed arc length of the i-th primitive segment;
// its sign encodes gear (positive forward, negative reverse).
type Path struct {
	X, Y, Yaw  []float64
	Directions []float64
	Lengths    []float64
}

// Generator is the narrow external-collaborator contract.
type Generator interface {
	// CalcAllPaths enumerates every candidate Reeds-Shepp path from
	// (sx,sy,syaw) to (gx,gy,gyaw) at the given turning radius,
	// sampled every step_size arc length.
	CalcAllPaths(sx, sy, syaw, gx, gy, gyaw, radius, stepSize float64) ([]Path, error)

	// PiToPi wraps theta into (-pi, pi].
	PiToPi(theta float64) float64
}

// StandardGenerator implements Generator using the CSC (curve-straight-
// curve) Reeds-Shepp word family: LSL, LSR, RSL, RSR and their
// all-reverse-gear mirrors, obtained from two base formulas by the
// classic reflect/timeflip symmetry transforms. The CCC (LRL/RLR)
// family is intentionally not implemented: it only matters when start
// and goal are very close relative to the turning radius, in which
// case LSL/RSR remain available and the search simply falls back to
// ordinary primitive expansion.
type StandardGenerator struct{}

// PiToPi wraps theta into (-pi, pi].
func (StandardGenerator) PiToPi(theta float64) float64 {
	for theta > math.Pi {
		theta -= 2 * math.Pi
	}
	for theta <= -math.Pi {
		theta += 2 * math.Pi
	}
	return theta
}

func mod2pi(x float64) float64 {
	v := math.Mod(x, 2*math.Pi)
	if v < 0 {
		v += 2 * math.Pi
	}
	return v
}

func polar(x, y float64) (r, theta float64) {
	return math.Hypot(x, y), math.Atan2(y, x)
}
