package meshing

import (
	"math"
	"testing"
)

func TestBuildGridCounts(t *testing.T) {
	for _, res := range []int{1, 2, 8, 64} {
		d, err := BuildGrid(0, 0, 16, res, nil)
		if err != nil {
			t.Fatalf("BuildGrid(res=%d): %v", res, err)
		}
		wantVerts := (res + 1) * (res + 1)
		if got := d.VertexCount(); got != wantVerts {
			t.Errorf("res=%d: VertexCount() = %d, want %d", res, got, wantVerts)
		}
		if got, want := len(d.Indices), res*res*6; got != want {
			t.Errorf("res=%d: %d indices, want %d", res, got, want)
		}
	}
}

func TestBuildGridFlatSheet(t *testing.T) {
	d, err := BuildGrid(32, -16, 16, 4, nil)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < len(d.Vertices); i += 6 {
		x, y, z := d.Vertices[i], d.Vertices[i+1], d.Vertices[i+2]
		if y != 0 {
			t.Fatalf("flat sheet vertex %d has y=%v", i/6, y)
		}
		if x < 32 || x > 48 || z < -16 || z > 0 {
			t.Fatalf("vertex %d at (%v, %v) outside tile bounds", i/6, x, z)
		}
		if nx, ny, nz := d.Vertices[i+3], d.Vertices[i+4], d.Vertices[i+5]; nx != 0 || ny != 1 || nz != 0 {
			t.Fatalf("flat sheet vertex %d normal (%v,%v,%v), want (0,1,0)", i/6, nx, ny, nz)
		}
	}
}

func TestBuildGridDisplacement(t *testing.T) {
	slope := func(x, z float64) float64 { return 0.5*x - 0.25*z }
	d, err := BuildGrid(0, 0, 8, 8, slope)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < len(d.Vertices); i += 6 {
		x, y, z := float64(d.Vertices[i]), float64(d.Vertices[i+1]), float64(d.Vertices[i+2])
		if math.Abs(y-slope(x, z)) > 1e-4 {
			t.Fatalf("vertex at (%v, %v): y=%v, want %v", x, z, y, slope(x, z))
		}
		// Unit normal, pointing up.
		nx, ny, nz := float64(d.Vertices[i+3]), float64(d.Vertices[i+4]), float64(d.Vertices[i+5])
		if norm := math.Sqrt(nx*nx + ny*ny + nz*nz); math.Abs(norm-1) > 1e-4 {
			t.Fatalf("normal length %v, want 1", norm)
		}
		if ny <= 0 {
			t.Fatalf("downward normal (%v,%v,%v)", nx, ny, nz)
		}
	}
}

func TestBuildGridRejectsBadParameters(t *testing.T) {
	if _, err := BuildGrid(0, 0, 16, 0, nil); err == nil {
		t.Error("resolution 0 accepted")
	}
	if _, err := BuildGrid(0, 0, 16, MaxResolution+1, nil); err == nil {
		t.Error("oversized resolution accepted")
	}
	if _, err := BuildGrid(0, 0, 0, 8, nil); err == nil {
		t.Error("zero size accepted")
	}
	if _, err := BuildGrid(0, 0, math.NaN(), 8, nil); err == nil {
		t.Error("NaN size accepted")
	}
	bad := func(x, z float64) float64 { return math.NaN() }
	if _, err := BuildGrid(0, 0, 16, 8, bad); err == nil {
		t.Error("NaN height function accepted")
	}
}

func TestBuildGridIndicesInRange(t *testing.T) {
	d, err := BuildGrid(0, 0, 16, 5, nil)
	if err != nil {
		t.Fatal(err)
	}
	limit := uint32(d.VertexCount())
	for _, ix := range d.Indices {
		if ix >= limit {
			t.Fatalf("index %d out of range (%d vertices)", ix, limit)
		}
	}
}
