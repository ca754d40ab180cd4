package config

import "testing"

// Settings are process-wide; each test restores the defaults it touches.

func TestViewDistanceClampsToSafeMax(t *testing.T) {
	defer SetBaseResolution(64)
	defer SetViewDistance(8)

	SetBaseResolution(64)
	safe := SafeMaxViewDistance()
	if safe < 1 {
		t.Fatalf("SafeMaxViewDistance() = %d, expected >= 1", safe)
	}

	SetViewDistance(safe + 100)
	if got := GetViewDistance(); got != safe {
		t.Errorf("SetViewDistance(%d): got %d, want clamp to %d", safe+100, got, safe)
	}

	SetViewDistance(0)
	if got := GetViewDistance(); got != 1 {
		t.Errorf("SetViewDistance(0): got %d, want 1", got)
	}
}

func TestSafeMaxGrowsWithCoarserResolution(t *testing.T) {
	defer SetBaseResolution(64)

	SetBaseResolution(64)
	fine := SafeMaxViewDistance()
	SetBaseResolution(16)
	coarse := SafeMaxViewDistance()
	if coarse <= fine {
		t.Errorf("coarser base resolution should permit a larger radius: fine=%d coarse=%d", fine, coarse)
	}
}

func TestBaseResolutionReclampsViewDistance(t *testing.T) {
	defer SetBaseResolution(64)
	defer SetViewDistance(8)

	SetBaseResolution(16)
	SetViewDistance(SafeMaxViewDistance()) // large radius, fine at res 16
	SetBaseResolution(256)                 // shrinks the safe maximum
	if got, safe := GetViewDistance(), SafeMaxViewDistance(); got > safe {
		t.Errorf("view distance %d exceeds safe maximum %d after resolution change", got, safe)
	}
}

func TestFloorDepthClamp(t *testing.T) {
	defer SetFloorDepth(-8)

	SetFloorDepth(-100)
	if got := GetFloorDepth(); got != -20 {
		t.Errorf("SetFloorDepth(-100): got %v, want -20", got)
	}
	SetFloorDepth(5)
	if got := GetFloorDepth(); got != 0 {
		t.Errorf("SetFloorDepth(5): got %v, want 0", got)
	}
}

func TestChunkSizeClamp(t *testing.T) {
	defer SetChunkSize(16)

	SetChunkSize(1)
	if got := GetChunkSize(); got != 4 {
		t.Errorf("SetChunkSize(1): got %v, want 4", got)
	}
	SetChunkSize(1000)
	if got := GetChunkSize(); got != 64 {
		t.Errorf("SetChunkSize(1000): got %v, want 64", got)
	}
}
