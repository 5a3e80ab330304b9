package rs

import "math"

// word is one CSC (curve-straight-curve) candidate in the normalized
// (turning radius 1) frame: three segment types and their magnitudes,
// plus the overall gear sign (shared by all three segments, since a
// pure CSC word never switches gear mid-path).
type word struct {
	modes [3]byte // 'L', 'S', or 'R'
	t, u, v float64 // segment magnitudes: t,v are angles (rad), u is distance
	gear    float64 // +1 forward, -1 reverse
}

// lsl solves the same-turn CSC word (base mode L,S,L) in the
// normalized frame: two left turns joined by a straight external
// tangent. Always produces a candidate (possibly a long one).
func lsl(x, y, phi float64) (t, u, v float64) {
	u, theta := polar(x-math.Sin(phi), y-1+math.Cos(phi))
	t = mod2pi(theta)
	v = mod2pi(phi - t)
	return t, u, v
}

// lsr solves the opposite-turn CSC word (base mode L,S,R) in the
// normalized frame: a left and a right turn joined by a straight
// internal tangent. Infeasible when the circles are too close
// together (the internal tangent does not exist).
func lsr(x, y, phi float64) (t, u, v float64, ok bool) {
	u1sq := (x+math.Sin(phi))*(x+math.Sin(phi)) + (y-1-math.Cos(phi))*(y-1-math.Cos(phi))
	if u1sq < 4 {
		return 0, 0, 0, false
	}
	u = math.Sqrt(u1sq - 4)
	t1 := math.Atan2(y-1-math.Cos(phi), x+math.Sin(phi))
	theta := math.Atan2(2, u)
	t = mod2pi(t1 + theta)
	v = mod2pi(t - phi)
	return t, u, v, true
}

// cscWords enumerates all CSC candidates for the goal pose (x,y,phi)
// expressed in the start pose's frame at turning radius 1, via the
// standard reflect (mirror turning direction) and timeflip (reverse
// gear) symmetries applied to the two base formulas above.
func cscWords(x, y, phi float64) []word {
	var out []word

	// LSL family: base formula, reflect (-> RSR), timeflip and
	// reflect+timeflip (-> reverse-gear LSL and RSR).
	if t, u, v := lsl(x, y, phi); true {
		out = append(out, word{modes: [3]byte{'L', 'S', 'L'}, t: t, u: u, v: v, gear: 1})
	}
	if t, u, v := lsl(x, -y, -phi); true {
		out = append(out, word{modes: [3]byte{'R', 'S', 'R'}, t: t, u: u, v: v, gear: 1})
	}
	if t, u, v := lsl(-x, y, -phi); true {
		out = append(out, word{modes: [3]byte{'L', 'S', 'L'}, t: t, u: u, v: v, gear: -1})
	}
	if t, u, v := lsl(-x, -y, phi); true {
		out = append(out, word{modes: [3]byte{'R', 'S', 'R'}, t: t, u: u, v: v, gear: -1})
	}

	// LSR family: base formula, reflect (-> RSL), timeflip and
	// reflect+timeflip (-> reverse-gear LSR and RSL).
	if t, u, v, ok := lsr(x, y, phi); ok {
		out = append(out, word{modes: [3]byte{'L', 'S', 'R'}, t: t, u: u, v: v, gear: 1})
	}
	if t, u, v, ok := lsr(x, -y, -phi); ok {
		out = append(out, word{modes: [3]byte{'R', 'S', 'L'}, t: t, u: u, v: v, gear: 1})
	}
	if t, u, v, ok := lsr(-x, y, -phi); ok {
		out = append(out, word{modes: [3]byte{'L', 'S', 'R'}, t: t, u: u, v: v, gear: -1})
	}
	if t, u, v, ok := lsr(-x, -y, phi); ok {
		out = append(out, word{modes: [3]byte{'R', 'S', 'L'}, t: t, u: u, v: v, gear: -1})
	}

	return out
}
