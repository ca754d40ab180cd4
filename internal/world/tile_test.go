package world

import (
	"testing"

	"openwater/internal/config"
)

func TestTileOriginPlacement(t *testing.T) {
	tile := NewTile(GridCoord{X: 3, Z: -2}, 16)
	x, z := tile.Origin()
	if x != 48 || z != -32 {
		t.Errorf("Origin() = (%v, %v), want (48, -32)", x, z)
	}
}

func TestTileReleaseIdempotent(t *testing.T) {
	b := newFakeBuilder()
	tile := NewTile(GridCoord{}, 16)
	if err := tile.Build(b, 8); err != nil {
		t.Fatal(err)
	}
	if !tile.Alive() {
		t.Fatal("tile not alive after Build")
	}

	tile.Release()
	tile.Release()
	tile.Release()
	if tile.Alive() {
		t.Error("tile alive after Release")
	}
	for i, g := range b.built {
		if g.released != 1 {
			t.Errorf("geometry %d released %d times, want exactly once", i, g.released)
		}
	}
}

func TestTileReleaseOnUnbuiltTile(t *testing.T) {
	tile := NewTile(GridCoord{X: 1, Z: 1}, 16)
	tile.Release() // must not panic
	if tile.Alive() {
		t.Error("unbuilt tile reports alive")
	}
}

func TestTileRebuildAfterRelease(t *testing.T) {
	b := newFakeBuilder()
	tile := NewTile(GridCoord{}, 16)
	if err := tile.Build(b, 8); err != nil {
		t.Fatal(err)
	}
	tile.Release()
	if err := tile.Build(b, 4); err != nil {
		t.Fatal(err)
	}
	if !tile.Alive() {
		t.Error("tile not alive after rebuild")
	}
	if got := b.liveCount(); got != 2 {
		t.Errorf("live geometries = %d, want 2 (one per role)", got)
	}
}

func TestTileBuildPartialFailureReleasesWater(t *testing.T) {
	// Fail only the second (floor) build: water must not leak.
	b := newFakeBuilder()
	fail := &secondBuildFails{inner: b}
	tile := NewTile(GridCoord{}, 16)
	if err := tile.Build(fail, 8); err == nil {
		t.Fatal("expected build error")
	}
	if tile.Alive() {
		t.Error("tile alive after failed build")
	}
	if got := b.liveCount(); got != 0 {
		t.Errorf("live geometries = %d after partial failure, want 0", got)
	}
}

type secondBuildFails struct {
	inner *fakeBuilder
	calls int
}

func (s *secondBuildFails) BuildSurface(role Role, ox, oz, size float64, res int) (Geometry, error) {
	s.calls++
	if s.calls%2 == 0 {
		return nil, errFake
	}
	return s.inner.BuildSurface(role, ox, oz, size, res)
}

var errFake = &buildError{}

type buildError struct{}

func (*buildError) Error() string { return "fake floor failure" }

func TestFloorFieldWithinRelief(t *testing.T) {
	defer config.SetFloorDepth(-8)
	config.SetFloorDepth(-10)

	f := NewFloorField(42)
	for gx := -20; gx <= 20; gx++ {
		for gz := -20; gz <= 20; gz++ {
			d := f.Depth(float64(gx)*3.7, float64(gz)*3.7)
			// go-perlin is only approximately normalized; allow slack.
			if d < -10-2*floorRelief || d > -10+2*floorRelief {
				t.Fatalf("Depth(%d,%d) = %v outside relief band", gx, gz, d)
			}
		}
	}
}

func TestFloorFieldDeterministic(t *testing.T) {
	a := NewFloorField(7)
	b := NewFloorField(7)
	for i := 0; i < 100; i++ {
		x, z := float64(i)*1.3, float64(i)*-2.1
		if a.Depth(x, z) != b.Depth(x, z) {
			t.Fatalf("same seed, different depth at (%v, %v)", x, z)
		}
	}
}
