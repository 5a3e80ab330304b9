package core

import "math"

// MotionModelKind selects which MotionModel implementation a plan
// uses. The baseline is a single rigid body (bicycle/unicycle); the
// tractor-trailer extension adds a hitch-jointed trailer.
type MotionModelKind int

const (
	// Bicycle is the baseline single-body motion model.
	Bicycle MotionModelKind = iota
	// TractorTrailer is the hitch-angle extension ported from
	// original_source/hybrid_a_star/model/tractor_trailer_model.py.
	TractorTrailer
)

// VehicleGeometry is the rigid-body footprint used by the motion
// model and collision checker.
type VehicleGeometry struct {
	Radius float64 // [m] circumscribing radius, used by the holonomic obstacle map
	RF     float64 // [m] rear-axle to front bumper
	RB     float64 // [m] rear-axle to rear bumper
	W      float64 // [m] vehicle width
	WB     float64 // [m] wheelbase
}

// DefaultVehicleGeometry returns the default vehicle dimensions.
func DefaultVehicleGeometry() VehicleGeometry {
	return VehicleGeometry{Radius: 0.4, RF: 0.6, RB: 0.2, W: 0.6, WB: 0.6}
}

// Validate checks the geometry invariants required by the
// InvalidInput error kind.
func (g VehicleGeometry) Validate() error {
	if g.RF+g.RB <= 0 {
		return errInvalidInputf("vehicle geometry: RF+RB must be positive, got %f", g.RF+g.RB)
	}
	if g.W <= 0 {
		return errInvalidInputf("vehicle geometry: W must be positive, got %f", g.W)
	}
	return nil
}

// TrailerGeometry adds the hitch parameters of the tractor-trailer
// extension (original_source tractor_trailer_model.py).
type TrailerGeometry struct {
	LengthBack  float64 // lb: tractor center to hitch point [m]
	LengthFront float64 // lf: trailer center to hitch point [m]
	TrailerBased bool   // true: state is (x2,y2,theta2,gamma); false: (x1,y1,theta1,gamma)
}

// Config is the single immutable configuration value a Plan call
// takes; the planner holds no process-wide mutable tunables.
type Config struct {
	DeltaXY  float64 // [m] xy grid resolution
	DeltaYaw float64 // [rad] yaw bin resolution

	MoveStep float64 // [m] path interpolation resolution
	NSteer   int     // number of angular-velocity samples per side
	UMax     float64 // [rad/unit arc] maximum angular-velocity-like steering term
	UMin     float64 // [rad/unit arc] minimum angular-velocity-like steering term

	MaxCurvatureRadius float64 // [m] turning radius fed to the Reeds-Shepp generator
	CollisionCheckStep int     // sample stride for collision checks along a segment

	GearCost                 float64 // penalty for a direction switch
	BackwardCost              float64 // multiplier applied to reverse-gear arc length
	AngularVelocityChangeCost float64 // penalty per unit change in steering term
	HCost                     float64 // epsilon-weighting applied to the holonomic heuristic

	Vehicle VehicleGeometry
	Trailer TrailerGeometry // only consulted when MotionModel == TractorTrailer
	MotionModel MotionModelKind
}

// DefaultConfig returns a reasonable set of defaults.
func DefaultConfig() Config {
	return Config{
		DeltaXY:                   0.2,
		DeltaYaw:                  15.0 * math.Pi / 180.0,
		MoveStep:                  0.2,
		NSteer:                    10,
		UMax:                      0.5,
		UMin:                      -0.5,
		MaxCurvatureRadius:        0.5,
		CollisionCheckStep:        2,
		GearCost:                  100,
		BackwardCost:              50,
		AngularVelocityChangeCost: 2,
		HCost:                     10,
		Vehicle:                   DefaultVehicleGeometry(),
		MotionModel:               Bicycle,
	}
}

// Validate checks the configuration invariants required by the
// InvalidInput error kind.
func (c Config) Validate() error {
	if c.DeltaXY <= 0 {
		return errInvalidInputf("DeltaXY must be positive, got %f", c.DeltaXY)
	}
	if c.DeltaYaw <= 0 {
		return errInvalidInputf("DeltaYaw must be positive, got %f", c.DeltaYaw)
	}
	if c.MoveStep <= 0 {
		return errInvalidInputf("MoveStep must be positive, got %f", c.MoveStep)
	}
	if c.NSteer <= 0 {
		return errInvalidInputf("NSteer must be positive, got %d", c.NSteer)
	}
	if c.MaxCurvatureRadius <= 0 {
		return errInvalidInputf("MaxCurvatureRadius must be positive, got %f", c.MaxCurvatureRadius)
	}
	if c.CollisionCheckStep <= 0 {
		return errInvalidInputf("CollisionCheckStep must be positive, got %d", c.CollisionCheckStep)
	}
	return c.Vehicle.Validate()
}
