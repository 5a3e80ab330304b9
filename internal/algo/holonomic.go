package algo

import (
	"container/heap"
	"math"

	"github.com/Cylos9/Hybrid-A-Star/internal/core"
)

// HolonomicHeuristic is the obstacle-aware 2D lower bound: a single
// Dijkstra run from the goal cell over an inflated obstacle grid,
// consulted by the search in O(1) via Value.
type HolonomicHeuristic struct {
	p       *core.SpatialParams
	hmap    [][]float64 // [xi-minx][yi-miny]; +Inf where unreachable
	blocked [][]bool
}

// motion8 is the 8-connected Dijkstra neighborhood, edge cost
// hypot(dx,dy).
var motion8 = [8][2]int{
	{1, 0}, {0, 1}, {-1, 0}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// BuildHolonomicHeuristic inflates every obstacle grid point by
// vehicleRadius/DeltaXY grid units (Euclidean) into a blocked-cell
// map, then runs Dijkstra from (goalXI, goalYI) outward. Blocked
// cells are never relaxed; cells unreachable from the goal keep +Inf.
func BuildHolonomicHeuristic(p *core.SpatialParams, goalXI, goalYI int, vehicleRadius float64) *HolonomicHeuristic {
	xw, yw := p.XW+1, p.YW+1
	hmap := make([][]float64, xw)
	blocked := make([][]bool, xw)
	for i := range hmap {
		hmap[i] = make([]float64, yw)
		blocked[i] = make([]bool, yw)
		for j := range hmap[i] {
			hmap[i][j] = math.Inf(1)
		}
	}

	rGrid := vehicleRadius / p.DeltaXY
	rCeil := int(math.Ceil(rGrid))
	for idx := range p.OX {
		ox := int(math.Round(p.OX[idx] / p.DeltaXY))
		oy := int(math.Round(p.OY[idx] / p.DeltaXY))
		for dx := -rCeil; dx <= rCeil; dx++ {
			for dy := -rCeil; dy <= rCeil; dy++ {
				if math.Hypot(float64(dx), float64(dy)) > rGrid {
					continue
				}
				xi, yi := ox+dx, oy+dy
				if xi < p.MinX || xi > p.MaxX || yi < p.MinY || yi > p.MaxY {
					continue
				}
				blocked[xi-p.MinX][yi-p.MinY] = true
			}
		}
	}

	h := &HolonomicHeuristic{p: p, hmap: hmap, blocked: blocked}
	h.dijkstra(goalXI, goalYI)
	return h
}

type holoEntry struct {
	xi, yi int
	cost   float64
}

type holoHeap []holoEntry

func (h holoHeap) Len() int            { return len(h) }
func (h holoHeap) Less(i, j int) bool  { return h[i].cost < h[j].cost }
func (h holoHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *holoHeap) Push(x interface{}) { *h = append(*h, x.(holoEntry)) }
func (h *holoHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

func (h *HolonomicHeuristic) dijkstra(goalXI, goalYI int) {
	if goalXI < h.p.MinX || goalXI > h.p.MaxX || goalYI < h.p.MinY || goalYI > h.p.MaxY {
		return
	}
	gx, gy := goalXI-h.p.MinX, goalYI-h.p.MinY
	if h.blocked[gx][gy] {
		return
	}

	pq := &holoHeap{}
	heap.Init(pq)
	h.hmap[gx][gy] = 0
	heap.Push(pq, holoEntry{xi: gx, yi: gy, cost: 0})

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(holoEntry)
		if cur.cost > h.hmap[cur.xi][cur.yi] {
			continue // stale
		}
		for _, m := range motion8 {
			nx, ny := cur.xi+m[0], cur.yi+m[1]
			if nx < 0 || nx >= len(h.hmap) || ny < 0 || ny >= len(h.hmap[0]) {
				continue
			}
			if h.blocked[nx][ny] {
				continue
			}
			next := cur.cost + math.Hypot(float64(m[0]), float64(m[1]))
			if next < h.hmap[nx][ny] {
				h.hmap[nx][ny] = next
				heap.Push(pq, holoEntry{xi: nx, yi: ny, cost: next})
			}
		}
	}
}

// Value returns hmap[xi-minx][yi-miny], or +Inf for an out-of-bounds
// or blocked cell.
func (h *HolonomicHeuristic) Value(xi, yi int) float64 {
	if xi < h.p.MinX || xi > h.p.MaxX || yi < h.p.MinY || yi > h.p.MaxY {
		return math.Inf(1)
	}
	return h.hmap[xi-h.p.MinX][yi-h.p.MinY]
}

// GoalBlocked reports whether the goal cell fell inside the inflated
// obstacle map, meaning the goal is unreachable by the heuristic.
func (h *HolonomicHeuristic) GoalBlocked(goalXI, goalYI int) bool {
	if goalXI < h.p.MinX || goalXI > h.p.MaxX || goalYI < h.p.MinY || goalYI > h.p.MaxY {
		return true
	}
	return h.blocked[goalXI-h.p.MinX][goalYI-h.p.MinY]
}
