package core

import (
	"sort"

	"github.com/golang/geo/r2"
)

// ObstacleIndex is a read-only 2D KD-tree over obstacle points,
// built once per plan. It answers radius queries
// (QueryBall) in sub-linear average time and is safe for concurrent
// readers once built.
type ObstacleIndex struct {
	points []r2.Point
	root   *kdNode
}

type kdNode struct {
	idx         int // index into ObstacleIndex.points
	axis        int // 0 = split on X, 1 = split on Y
	left, right *kdNode
}

// NewObstacleIndex builds a KD-tree over the given world-frame
// obstacle points. The slice is not retained beyond copying
// coordinates; no mutation is possible after construction.
func NewObstacleIndex(points []r2.Point) *ObstacleIndex {
	idx := &ObstacleIndex{points: append([]r2.Point(nil), points...)}
	order := make([]int, len(points))
	for i := range order {
		order[i] = i
	}
	idx.root = idx.build(order, 0)
	return idx
}

func (t *ObstacleIndex) build(order []int, depth int) *kdNode {
	if len(order) == 0 {
		return nil
	}
	axis := depth % 2
	sort.Slice(order, func(i, j int) bool {
		if axis == 0 {
			return t.points[order[i]].X < t.points[order[j]].X
		}
		return t.points[order[i]].Y < t.points[order[j]].Y
	})
	mid := len(order) / 2
	node := &kdNode{idx: order[mid], axis: axis}
	node.left = t.build(order[:mid], depth+1)
	node.right = t.build(order[mid+1:], depth+1)
	return node
}

// Len returns the number of indexed obstacle points.
func (t *ObstacleIndex) Len() int { return len(t.points) }

// Point returns the world-frame coordinate of obstacle i.
func (t *ObstacleIndex) Point(i int) r2.Point { return t.points[i] }

// QueryBall returns the indices of every obstacle point within radius
// r of center (inclusive).
func (t *ObstacleIndex) QueryBall(center r2.Point, r float64) []int {
	if t.root == nil {
		return nil
	}
	var hits []int
	r2sq := r * r
	var walk func(n *kdNode)
	walk = func(n *kdNode) {
		if n == nil {
			return
		}
		p := t.points[n.idx]
		dx, dy := p.X-center.X, p.Y-center.Y
		if dx*dx+dy*dy <= r2sq {
			hits = append(hits, n.idx)
		}
		var coord, centerCoord float64
		if n.axis == 0 {
			coord, centerCoord = p.X, center.X
		} else {
			coord, centerCoord = p.Y, center.Y
		}
		diff := centerCoord - coord
		near, far := n.left, n.right
		if diff > 0 {
			near, far = n.right, n.left
		}
		walk(near)
		if diff*diff <= r2sq {
			walk(far)
		}
	}
	walk(t.root)
	return hits
}
