package rs

import (
	"math"

	"github.com/pkg/errors"
)

// CalcAllPaths enumerates every CSC candidate connecting the two
// poses at the given turning radius, each sampled every stepSize arc
// length. The start and goal poses carry yaw in radians; the
// goal is expressed in the start pose's frame before the CSC solvers
// run, and every resulting sample is transformed back into the
// caller's frame.
func (g StandardGenerator) CalcAllPaths(sx, sy, syaw, gx, gy, gyaw, radius, stepSize float64) ([]Path, error) {
	if radius <= 0 || stepSize <= 0 {
		return nil, errors.Errorf("rs: radius and stepSize must be positive, got %f/%f", radius, stepSize)
	}

	dx, dy := gx-sx, gy-sy
	c, s := math.Cos(syaw), math.Sin(syaw)
	x := (c*dx + s*dy) / radius
	y := (-s*dx + c*dy) / radius
	phi := g.PiToPi(gyaw - syaw)

	var paths []Path
	for _, w := range cscWords(x, y, phi) {
		lengths := [3]float64{
			w.gear * w.t * radius,
			w.gear * w.u * radius,
			w.gear * w.v * radius,
		}
		paths = append(paths, g.sample(sx, sy, syaw, w.modes, lengths, radius, stepSize))
	}
	return paths, nil
}

// sample walks the three signed segments from the start pose,
// producing parallel x/y/yaw/direction samples plus the segment
// length record, using the same Euler step the rest of the search
// uses for primitive simulation.
func (g StandardGenerator) sample(sx, sy, syaw float64, modes [3]byte, lengths [3]float64, radius, stepSize float64) Path {
	var xs, ys, yaws, dirs []float64
	x, y, yaw := sx, sy, syaw
	xs = append(xs, x)
	ys = append(ys, y)
	yaws = append(yaws, yaw)
	dirs = append(dirs, 0)

	for i := 0; i < 3; i++ {
		length := lengths[i]
		if length == 0 {
			continue
		}
		dir := 1.0
		if length < 0 {
			dir = -1.0
		}
		remaining := math.Abs(length)

		var curvature float64
		switch modes[i] {
		case 'L':
			curvature = 1.0 / radius
		case 'R':
			curvature = -1.0 / radius
		case 'S':
			curvature = 0
		}

		for remaining > 1e-9 {
			step := stepSize
			if step > remaining {
				step = remaining
			}
			x += dir * step * math.Cos(yaw)
			y += dir * step * math.Sin(yaw)
			yaw = g.PiToPi(yaw + dir*step*curvature)
			xs = append(xs, x)
			ys = append(ys, y)
			yaws = append(yaws, yaw)
			dirs = append(dirs, dir)
			remaining -= step
		}
	}

	return Path{
		X: xs, Y: ys, Yaw: yaws, Directions: dirs,
		Lengths: []float64{lengths[0], lengths[1], lengths[2]},
	}
}
