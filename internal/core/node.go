package core

// SearchNode is one cell of the 3D lattice. Its trajectory
// segment is the ordered sequence of continuous (x,y,yaw) samples
// from the parent cell's terminus to this cell's terminus, together
// with a parallel sequence of per-sample directions — all equal to
// Gear within one segment, except for the Reeds-Shepp terminal node,
// whose segment may contain direction switches.
type SearchNode struct {
	Idx Index
	Gear float64 // d: +1 forward, -1 reverse

	Xs, Ys, Yaws []float64
	Directions   []float64 // len(Directions) == len(Xs), per-sample gear

	// State is the motion model's raw terminal state vector (e.g. the
	// 3-tuple for BicycleModel, or the tractor-trailer's 4/6-tuple).
	// Xs/Ys/Yaws above always describe the primary body (the first
	// FootprintPoses pose) for path-extraction and indexing purposes;
	// State is what the next expansion feeds back into
	// IntegratePrimitive so multi-body models carry their hidden
	// degrees of freedom (e.g. hitch angle) across expansions.
	State []float64

	Steer float64 // last applied u, for the steering-change penalty

	Cost float64 // accumulated g-cost from start

	ParentKey CellKey
	HasParent bool // false only for the root node
}

// Terminus returns the node's final sampled pose.
func (n *SearchNode) Terminus() Pose {
	last := len(n.Xs) - 1
	return Pose{X: n.Xs[last], Y: n.Ys[last], Yaw: n.Yaws[last]}
}

// SameCell reports whether two nodes occupy the same lattice cell
// (is_same_grid).
func (n *SearchNode) SameCell(other *SearchNode) bool {
	return n.Idx == other.Idx
}

// HolonomicNode is a cell of the 2D grid Dijkstra computed by the
// holonomic heuristic; it is used only inside that component.
type HolonomicNode struct {
	XI, YI int
	Cost   float64
	Parent CellKey
	HasParent bool
}

// Path is the final planner artifact: parallel sequences of x,
// y, yaw, direction, plus the total cost.
type Path struct {
	X, Y, Yaw, Direction []float64
	Cost                 float64
}

// Len is the number of samples in the path.
func (p *Path) Len() int { return len(p.X) }
