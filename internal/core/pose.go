package core

// Pose is a vehicle state in world units: meters and radians. Yaw is
// always normalized to (-pi, pi].
type Pose struct {
	X, Y, Yaw float64
}

// NewPose builds a Pose, wrapping Yaw into (-pi, pi].
func NewPose(x, y, yaw float64) Pose {
	return Pose{X: x, Y: y, Yaw: Wrap(yaw)}
}

// Index is the discrete (xi, yi, yawi) triple a Pose rounds to on the
// search lattice. Two continuous poses with the same Index are the
// same lattice cell.
type Index struct {
	XI, YI, YawI int
}

// CellKey is Index flattened into the single integer used as the
// open/closed-set map key, per the 3D grid layout of SpatialParams.
type CellKey int64
