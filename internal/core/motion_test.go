package core

import (
	"math"
	"testing"
)

func TestBicycleModelIntegratePrimitiveStraight(t *testing.T) {
	m := BicycleModel{}
	samples, err := m.IntegratePrimitive([]float64{0, 0, 0}, 0, 1, 0.2, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(samples) != 6 {
		t.Fatalf("len(samples) = %d, want 6", len(samples))
	}
	last := samples[len(samples)-1]
	if math.Abs(last[0]-1.0) > 1e-9 || math.Abs(last[1]) > 1e-9 || math.Abs(last[2]) > 1e-9 {
		t.Fatalf("expected straight-line advance to (1,0,0), got %v", last)
	}
}

func TestBicycleModelIntegratePrimitiveTurn(t *testing.T) {
	m := BicycleModel{}
	samples, err := m.IntegratePrimitive([]float64{0, 0, 0}, 1.0, 1, 0.1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	last := samples[len(samples)-1]
	wantYaw := Wrap(1.0)
	if math.Abs(last[2]-wantYaw) > 1e-9 {
		t.Fatalf("yaw = %f, want %f", last[2], wantYaw)
	}
}

func TestBicycleModelRejectsWrongStateSize(t *testing.T) {
	m := BicycleModel{}
	if _, err := m.IntegratePrimitive([]float64{0, 0}, 0, 1, 0.2, 1); err == nil {
		t.Fatalf("expected error for wrong state size")
	}
	if _, err := m.FootprintPoses([]float64{0, 0}); err == nil {
		t.Fatalf("expected error for wrong state size")
	}
}

func TestBicycleModelFootprintPoses(t *testing.T) {
	m := BicycleModel{}
	poses, err := m.FootprintPoses([]float64{1, 2, 0.5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(poses) != 1 {
		t.Fatalf("len(poses) = %d, want 1", len(poses))
	}
	if poses[0].X != 1 || poses[0].Y != 2 {
		t.Fatalf("unexpected pose %v", poses[0])
	}
}
