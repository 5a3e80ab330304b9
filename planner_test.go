package hybridastar

import (
	"context"
	"math"
	"testing"

	"github.com/Cylos9/Hybrid-A-Star/internal/core"
)

func frame(half int) (ox, oy []int) {
	for i := -half; i <= half; i++ {
		ox = append(ox, i, i, -half, half)
		oy = append(oy, -half, half, i, i)
	}
	return ox, oy
}

func TestPlanS1EmptyMapStraight(t *testing.T) {
	ox, oy := frame(30)
	path, err := Plan(context.Background(), core.DefaultConfig(), core.NewPose(0, 0, 0), core.NewPose(4, 0, 0), ox, oy, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path == nil {
		t.Fatalf("expected a path")
	}
	for _, yaw := range path.Yaw {
		if yaw <= -math.Pi || yaw > math.Pi {
			t.Fatalf("yaw %f out of (-pi, pi]", yaw)
		}
	}
}

func TestPlanRejectsInvalidConfig(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.DeltaXY = -1
	ox, oy := frame(10)
	if _, err := Plan(context.Background(), cfg, core.NewPose(0, 0, 0), core.NewPose(1, 0, 0), ox, oy, nil); err == nil {
		t.Fatalf("expected error for invalid config")
	}
}

func TestPlanRejectsNonFinitePose(t *testing.T) {
	ox, oy := frame(10)
	bad := core.Pose{X: math.NaN(), Y: 0, Yaw: 0}
	if _, err := Plan(context.Background(), core.DefaultConfig(), bad, core.NewPose(1, 0, 0), ox, oy, nil); err == nil {
		t.Fatalf("expected error for non-finite pose")
	}
}

func TestPlanRejectsOutOfBoundsPose(t *testing.T) {
	ox, oy := frame(5)
	outside := core.NewPose(100, 100, 0)
	if _, err := Plan(context.Background(), core.DefaultConfig(), core.NewPose(0, 0, 0), outside, ox, oy, nil); err == nil {
		t.Fatalf("expected error for out-of-bounds goal pose")
	}
}

func TestPlanRejectsPoseInCollision(t *testing.T) {
	ox, oy := frame(10)
	ox = append(ox, 0)
	oy = append(oy, 0)
	if _, err := Plan(context.Background(), core.DefaultConfig(), core.NewPose(0, 0, 0), core.NewPose(4, 0, 0), ox, oy, nil); err == nil {
		t.Fatalf("expected error for start pose in collision with an obstacle")
	}
}

func TestPlanCancelledContext(t *testing.T) {
	ox, oy := frame(30)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Plan(ctx, core.DefaultConfig(), core.NewPose(0, 0, 0), core.NewPose(4, 0, 0), ox, oy, nil)
	if err == nil {
		t.Fatalf("expected error for a cancelled context")
	}
}
