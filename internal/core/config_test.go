package core

import "testing"

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig() failed validation: %v", err)
	}
}

func TestConfigValidateRejectsNonPositiveResolutions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DeltaXY = 0
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for zero DeltaXY")
	}

	cfg = DefaultConfig()
	cfg.DeltaYaw = -1
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for negative DeltaYaw")
	}
}

func TestVehicleGeometryValidate(t *testing.T) {
	g := DefaultVehicleGeometry()
	if err := g.Validate(); err != nil {
		t.Fatalf("default geometry failed validation: %v", err)
	}

	bad := g
	bad.RF, bad.RB = 0, 0
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected error for RF+RB <= 0")
	}

	bad = g
	bad.W = 0
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected error for W <= 0")
	}
}
