package core

import "github.com/golang/geo/r2"

// Footprint is the oriented rectangle the vehicle occupies at a pose,
// axis-aligned in the vehicle frame.
type Footprint struct {
	Center r2.Point // world-frame center of the rectangle
	Yaw    float64
	HalfLength float64 // (RF+RB)/2
	HalfWidth  float64 // W/2
}

// CenterOffset is the longitudinal distance of the footprint center
// forward of the rear axle: (RF-RB)/2.
func (g VehicleGeometry) CenterOffset() float64 {
	return (g.RF - g.RB) / 2.0
}

// CircumscribedRadius is max((RF+RB)/2, W/2) — the conservative bound
// the collision checker queries the obstacle index with.
func (g VehicleGeometry) CircumscribedRadius() float64 {
	half := (g.RF + g.RB) / 2.0
	if g.W/2.0 > half {
		return g.W / 2.0
	}
	return half
}

// FootprintAt computes the oriented rectangle the vehicle occupies at
// pose: center offset (RF-RB)/2 forward of the rear axle,
// half-length (RF+RB)/2, half-width W/2.
func (g VehicleGeometry) FootprintAt(p Pose) Footprint {
	dl := g.CenterOffset()
	cx, cy := Rotate(dl, 0, p.Yaw)
	return Footprint{
		Center:     r2.Point{X: p.X + cx, Y: p.Y + cy},
		Yaw:        p.Yaw,
		HalfLength: (g.RF + g.RB) / 2.0,
		HalfWidth:  g.W / 2.0,
	}
}

// Corners returns the four world-frame corners of the footprint,
// ordered rear-left, rear-right, front-right, front-left.
func (f Footprint) Corners() [4]r2.Point {
	corner := func(dx, dy float64) r2.Point {
		rx, ry := Rotate(dx, dy, f.Yaw)
		return r2.Point{X: f.Center.X + rx, Y: f.Center.Y + ry}
	}
	return [4]r2.Point{
		corner(-f.HalfLength, f.HalfWidth),
		corner(-f.HalfLength, -f.HalfWidth),
		corner(f.HalfLength, -f.HalfWidth),
		corner(f.HalfLength, f.HalfWidth),
	}
}
