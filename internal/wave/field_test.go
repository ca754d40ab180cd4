package wave

import (
	"math"
	"math/rand"
	"testing"
)

func testParams(amplitude, frequency, speed, persistence, lacunarity float64, octaves int) *Parameters {
	p := NewParameters()
	p.SetAmplitude(amplitude)
	p.SetFrequency(frequency)
	p.SetSpeed(speed)
	p.SetPersistence(persistence)
	p.SetLacunarity(lacunarity)
	p.SetOctaves(octaves)
	return p
}

// TestHeightDeterministic verifies repeat queries at fixed parameters and time
// return identical results.
func TestHeightDeterministic(t *testing.T) {
	p := NewParameters()
	p.Advance(3.7)
	f := NewField(p)

	points := [][2]float64{{0, 0}, {13.4, -87.2}, {-500.1, 499.9}, {0.001, 0.001}}
	for _, pt := range points {
		first := f.Height(pt[0], pt[1])
		for i := 0; i < 50; i++ {
			if v := f.Height(pt[0], pt[1]); v != first {
				t.Errorf("Height(%v, %v) not deterministic: %v vs %v", pt[0], pt[1], first, v)
			}
		}
	}
}

// TestHeightOctaveBound verifies |height| never exceeds
// amplitude * sum(persistence^i) across a sampled grid for several parameter
// sets.
func TestHeightOctaveBound(t *testing.T) {
	sets := []*Parameters{
		NewParameters(),
		testParams(0.036, 0.035, 0.4, 0.45, 2.1, 8),
		testParams(2.0, 0.1, 1.0, 0.7, 1.9, 4),
		testParams(0.5, 0.01, 0.0, 0.9, 3.5, 12),
		testParams(1.0, 0.2, 2.0, 0.05, 1.1, 1),
	}
	for si, p := range sets {
		p.Advance(float64(si) * 1.3)
		f := NewField(p)
		bound := p.HeightBound()
		for gx := -40; gx <= 40; gx += 2 {
			for gz := -40; gz <= 40; gz += 2 {
				x := float64(gx) * 3.1
				z := float64(gz) * 3.1
				h := f.Height(x, z)
				if math.IsNaN(h) || math.Abs(h) > bound {
					t.Fatalf("set %d: |Height(%v, %v)| = %v exceeds bound %v", si, x, z, math.Abs(h), bound)
				}
			}
		}
	}
}

// TestHeightSpecimenParameters exercises the reference parameter set:
// amplitude 0.036, base frequency 0.035, 8 octaves at t=0.
func TestHeightSpecimenParameters(t *testing.T) {
	p := testParams(0.036, 0.035, 0.4, 0.45, 2.1, 8)
	f := NewField(p)

	h := f.Height(0, 0)
	if math.IsNaN(h) || math.IsInf(h, 0) {
		t.Fatalf("Height(0,0) = %v, expected finite", h)
	}
	if bound := p.HeightBound(); math.Abs(h) > bound {
		t.Errorf("|Height(0,0)| = %v exceeds bound %v", math.Abs(h), bound)
	}

	// Away from the lattice origin the surface should actually displace.
	p.Advance(2.5)
	nonzero := false
	for i := 1; i <= 32; i++ {
		if f.Height(float64(i)*7.3, float64(i)*-4.1) != 0 {
			nonzero = true
			break
		}
	}
	if !nonzero {
		t.Error("field is identically zero across sample sweep")
	}
}

// TestHeightTimeAdvances verifies the surface animates: advancing time changes
// the height at a fixed point for a moving parameter set.
func TestHeightTimeAdvances(t *testing.T) {
	p := NewParameters()
	f := NewField(p)

	before := f.Height(12.5, -3.25)
	p.Advance(1.0)
	after := f.Height(12.5, -3.25)
	if before == after {
		t.Errorf("Height unchanged after Advance: %v", before)
	}
}

// TestHeightNaNPropagates verifies the field is a total function that does
// not sanitize pathological inputs.
func TestHeightNaNPropagates(t *testing.T) {
	f := NewField(NewParameters())
	if v := f.Height(math.NaN(), 0); !math.IsNaN(v) {
		t.Errorf("Height(NaN, 0) = %v, expected NaN", v)
	}
}

// TestParameterClamping verifies setters clamp to the documented bounds
// rather than rejecting.
func TestParameterClamping(t *testing.T) {
	p := NewParameters()

	p.SetOctaves(0)
	if p.Octaves() != MinOctaves {
		t.Errorf("SetOctaves(0): got %d, want %d", p.Octaves(), MinOctaves)
	}
	p.SetOctaves(500)
	if p.Octaves() != MaxOctaves {
		t.Errorf("SetOctaves(500): got %d, want %d", p.Octaves(), MaxOctaves)
	}

	p.SetPersistence(0)
	if p.Persistence() != MinPersistence {
		t.Errorf("SetPersistence(0): got %v, want %v", p.Persistence(), MinPersistence)
	}
	p.SetLacunarity(-3)
	if p.Lacunarity() != MinLacunarity {
		t.Errorf("SetLacunarity(-3): got %v, want %v", p.Lacunarity(), MinLacunarity)
	}

	prev := p.Amplitude()
	p.SetAmplitude(math.NaN())
	if p.Amplitude() != prev {
		t.Errorf("SetAmplitude(NaN) changed value to %v", p.Amplitude())
	}
	p.SetFrequency(math.Inf(1))
	if p.Frequency() != NewParameters().Frequency() {
		t.Errorf("SetFrequency(+Inf) changed value to %v", p.Frequency())
	}
}

// TestHeightBoundSeries checks the closed-form octave sum.
func TestHeightBoundSeries(t *testing.T) {
	p := testParams(2.0, 0.1, 0, 0.5, 2.0, 3)
	want := 2.0 * (1 + 0.5 + 0.25)
	if got := p.HeightBound(); math.Abs(got-want) > 1e-12 {
		t.Errorf("HeightBound() = %v, want %v", got, want)
	}
}

func BenchmarkHeight(b *testing.B) {
	f := NewField(NewParameters())
	rng := rand.New(rand.NewSource(1))
	xs := make([]float64, 1024)
	zs := make([]float64, 1024)
	for i := range xs {
		xs[i] = rng.Float64() * 1000
		zs[i] = rng.Float64() * 1000
	}
	b.ReportAllocs()
	b.ResetTimer()
	var sink float64
	for i := 0; i < b.N; i++ {
		sink += f.Height(xs[i%1024], zs[i%1024])
	}
	_ = sink
}
