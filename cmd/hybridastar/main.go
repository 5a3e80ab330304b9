// Command hybridastar runs a few built-in planning scenarios and
// prints the resulting path summaries.
package main

import (
	"context"
	"fmt"
	"math"
	"time"

	hybridastar "github.com/Cylos9/Hybrid-A-Star"
	"github.com/Cylos9/Hybrid-A-Star/internal/core"
	"github.com/edaniels/golog"
)

func main() {
	logger := golog.NewDevelopmentLogger("hybridastar")

	fmt.Println("--- S1: empty map, straight ---")
	runScenario(logger, core.DefaultConfig(), core.NewPose(0, 0, 0), core.NewPose(4, 0, 0), nil, nil)

	fmt.Println("\n--- S2: empty map, U-turn ---")
	runScenario(logger, core.DefaultConfig(), core.NewPose(0, 0, 0), core.NewPose(0, 0, math.Pi), nil, nil)

	fmt.Println("\n--- S3: L-shaped wall ---")
	ox, oy := boxWithDivider()
	runScenario(logger, core.DefaultConfig(), core.NewPose(-0.5, 2, math.Pi/2), core.NewPose(3, 0, math.Pi), ox, oy)
}

func runScenario(logger golog.Logger, cfg core.Config, start, goal core.Pose, ox, oy []int) {
	if len(ox) == 0 {
		ox, oy = boundingFrame()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	started := time.Now()
	path, err := hybridastar.Plan(ctx, cfg, start, goal, ox, oy, logger)
	elapsed := time.Since(started)

	if err != nil {
		fmt.Printf("plan error: %v (%v)\n", err, elapsed)
		return
	}
	if path == nil {
		fmt.Printf("no path found (%v)\n", elapsed)
		return
	}
	fmt.Printf("path found: %d samples, cost=%.2f, elapsed=%v\n", path.Len(), path.Cost, elapsed)
}

// boundingFrame returns a sparse frame of obstacle grid cells around
// the origin, just large enough to give the planner finite bounds.
func boundingFrame() (ox, oy []int) {
	const half = 30
	for i := -half; i <= half; i++ {
		ox = append(ox, i, i, -half, half)
		oy = append(oy, -half, half, i, i)
	}
	return ox, oy
}

// boxWithDivider builds a 4x4 box frame (in meters, at DeltaXY=0.2m
// grid spacing) with an interior divider, forcing a route around it.
func boxWithDivider() (ox, oy []int) {
	const res = 0.2
	toGrid := func(v float64) int { return int(math.Round(v / res)) }

	minX, maxX := toGrid(-2), toGrid(2)
	minY, maxY := toGrid(-2), toGrid(2)
	for x := minX; x <= maxX; x++ {
		ox = append(ox, x, x)
		oy = append(oy, minY, maxY)
	}
	for y := minY; y <= maxY; y++ {
		ox = append(ox, minX, maxX)
		oy = append(oy, y, y)
	}

	centerX := toGrid(0)
	centerY := toGrid(0)
	dividerX := centerX + toGrid(2)
	for y := minY; y <= centerY; y++ {
		ox = append(ox, dividerX)
		oy = append(oy, y)
	}
	return ox, oy
}
