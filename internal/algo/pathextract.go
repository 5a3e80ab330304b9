package algo

import "github.com/Cylos9/Hybrid-A-Star/internal/core"

// ExtractPath walks parent pointers from terminal back to the root
// (via closed, which must contain every node on the chain),
// concatenating each node's trajectory segment in reverse order, then
// reverses the whole sequence. The first sample of every non-root
// segment duplicates its parent's terminal sample and is dropped.
// direction[0] is overwritten with direction[1] since the root's own
// direction is uninitialized by convention; paths of length 1 (start
// and goal share a lattice cell) have no direction[1] and are left
// untouched.
func ExtractPath(closed map[core.CellKey]*core.SearchNode, terminal *core.SearchNode) *core.Path {
	chain := []*core.SearchNode{terminal}
	node := terminal
	for node.HasParent {
		parent, ok := closed[node.ParentKey]
		if !ok {
			break
		}
		chain = append(chain, parent)
		node = parent
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	var x, y, yaw, dir []float64
	for i, n := range chain {
		start := 0
		if i > 0 {
			start = 1
		}
		x = append(x, n.Xs[start:]...)
		y = append(y, n.Ys[start:]...)
		yaw = append(yaw, n.Yaws[start:]...)
		dir = append(dir, n.Directions[start:]...)
	}

	if len(dir) >= 2 {
		dir[0] = dir[1]
	}

	return &core.Path{X: x, Y: y, Yaw: yaw, Direction: dir, Cost: terminal.Cost}
}
