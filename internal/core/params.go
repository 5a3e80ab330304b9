package core

import (
	"math"

	"github.com/golang/geo/r2"
)

// SpatialParams (P) is the set of grid bounds and resolutions a plan
// is built against, plus the obstacle coordinates and their index.
// It is built once per plan and never mutated afterward.
type SpatialParams struct {
	MinX, MinY, MinYawI int
	MaxX, MaxY, MaxYawI int
	XW, YW, YawW        int
	DeltaXY, DeltaYaw   float64

	OX, OY []float64 // obstacle points in world coordinates

	Index *ObstacleIndex
}

// NewSpatialParams builds P from integer obstacle grid coordinates.
// minyaw is initialized as round(-pi/deltaYaw) - 1, an asymmetric yaw
// bin offset; it must not be "corrected" without updating every
// index computed against it.
func NewSpatialParams(oxGrid, oyGrid []int, deltaXY, deltaYaw float64) (*SpatialParams, error) {
	if len(oxGrid) == 0 || len(oyGrid) == 0 || len(oxGrid) != len(oyGrid) {
		return nil, errInvalidInputf("obstacle grid coordinates must be non-empty and equal length, got %d/%d", len(oxGrid), len(oyGrid))
	}
	if deltaXY <= 0 || deltaYaw <= 0 {
		return nil, errInvalidInputf("DeltaXY and DeltaYaw must be positive, got %f/%f", deltaXY, deltaYaw)
	}

	minX, maxX := oxGrid[0], oxGrid[0]
	minY, maxY := oyGrid[0], oyGrid[0]
	for i := range oxGrid {
		if oxGrid[i] < minX {
			minX = oxGrid[i]
		}
		if oxGrid[i] > maxX {
			maxX = oxGrid[i]
		}
		if oyGrid[i] < minY {
			minY = oyGrid[i]
		}
		if oyGrid[i] > maxY {
			maxY = oyGrid[i]
		}
	}

	minYaw := int(math.Round(-math.Pi/deltaYaw)) - 1
	maxYaw := int(math.Round(math.Pi / deltaYaw))

	ox := make([]float64, len(oxGrid))
	oy := make([]float64, len(oyGrid))
	points := make([]r2.Point, len(oxGrid))
	for i := range oxGrid {
		ox[i] = float64(oxGrid[i]) * deltaXY
		oy[i] = float64(oyGrid[i]) * deltaXY
		points[i] = r2.Point{X: ox[i], Y: oy[i]}
	}

	return &SpatialParams{
		MinX: minX, MinY: minY, MinYawI: minYaw,
		MaxX: maxX, MaxY: maxY, MaxYawI: maxYaw,
		XW: maxX - minX, YW: maxY - minY, YawW: maxYaw - minYaw,
		DeltaXY: deltaXY, DeltaYaw: deltaYaw,
		OX: ox, OY: oy,
		Index: NewObstacleIndex(points),
	}, nil
}

// ToIndex discretizes a continuous pose into its lattice Index.
func (p *SpatialParams) ToIndex(pose Pose) Index {
	return Index{
		XI:   int(math.Round(pose.X / p.DeltaXY)),
		YI:   int(math.Round(pose.Y / p.DeltaXY)),
		YawI: int(math.Round(Wrap(pose.Yaw) / p.DeltaYaw)),
	}
}

// InBounds reports whether idx is strictly inside the grid's open
// interval (minx, maxx) x (miny, maxy), matching is_index_ok's
// boundary test (which rejects cells exactly on minx/miny/maxx/maxy).
func (p *SpatialParams) InBounds(idx Index) bool {
	return idx.XI > p.MinX && idx.XI < p.MaxX && idx.YI > p.MinY && idx.YI < p.MaxY
}

// Key flattens a 3D lattice Index into the map key the open/closed
// sets use, per calc_index.
func (p *SpatialParams) Key(idx Index) CellKey {
	return CellKey(idx.YawI-p.MinYawI)*CellKey(p.XW)*CellKey(p.YW) +
		CellKey(idx.YI-p.MinY)*CellKey(p.XW) +
		CellKey(idx.XI-p.MinX)
}

// HolonomicKey flattens a 2D (xi, yi) cell into the holonomic grid's
// map key, per calc_holonomic_index.
func (p *SpatialParams) HolonomicKey(xi, yi int) CellKey {
	return CellKey(yi-p.MinY)*CellKey(p.XW) + CellKey(xi-p.MinX)
}
