package wave

import "math"

// Parameter bounds. Setters clamp silently; the surface must stay evaluable
// no matter what the settings panel hands us.
const (
	MinAmplitude = 0.0
	MaxAmplitude = 4.0

	MinFrequency = 0.001
	MaxFrequency = 1.0

	MinSpeed = 0.0
	MaxSpeed = 8.0

	MinPersistence = 0.05
	MaxPersistence = 0.95

	MinLacunarity = 1.1
	MaxLacunarity = 4.0

	MinOctaves = 1
	MaxOctaves = 12
)

// Parameters is the shared wave configuration block. One instance exists per
// process; it is created at startup and passed explicitly to every consumer
// (height field, render uniform sync, settings panel). A single logical thread
// owns it: the UI mutates it between frames, Advance moves time once per frame.
type Parameters struct {
	amplitude   float64
	frequency   float64
	speed       float64
	persistence float64
	lacunarity  float64
	octaves     int
	time        float64
}

// NewParameters returns the default open-water parameter block.
func NewParameters() *Parameters {
	return &Parameters{
		amplitude:   0.6,
		frequency:   0.035,
		speed:       0.4,
		persistence: 0.45,
		lacunarity:  2.1,
		octaves:     8,
	}
}

// Advance moves the wave clock forward. Called once per frame.
func (p *Parameters) Advance(dt float64) {
	p.time += dt
}

func (p *Parameters) Amplitude() float64   { return p.amplitude }
func (p *Parameters) Frequency() float64   { return p.frequency }
func (p *Parameters) Speed() float64       { return p.speed }
func (p *Parameters) Persistence() float64 { return p.persistence }
func (p *Parameters) Lacunarity() float64  { return p.lacunarity }
func (p *Parameters) Octaves() int         { return p.octaves }
func (p *Parameters) Time() float64        { return p.time }

func (p *Parameters) SetAmplitude(v float64) {
	p.amplitude = clampFinite(v, MinAmplitude, MaxAmplitude, p.amplitude)
}

func (p *Parameters) SetFrequency(v float64) {
	p.frequency = clampFinite(v, MinFrequency, MaxFrequency, p.frequency)
}

func (p *Parameters) SetSpeed(v float64) {
	p.speed = clampFinite(v, MinSpeed, MaxSpeed, p.speed)
}

func (p *Parameters) SetPersistence(v float64) {
	p.persistence = clampFinite(v, MinPersistence, MaxPersistence, p.persistence)
}

func (p *Parameters) SetLacunarity(v float64) {
	p.lacunarity = clampFinite(v, MinLacunarity, MaxLacunarity, p.lacunarity)
}

func (p *Parameters) SetOctaves(n int) {
	if n < MinOctaves {
		n = MinOctaves
	}
	if n > MaxOctaves {
		n = MaxOctaves
	}
	p.octaves = n
}

// HeightBound returns the worst-case |height| the field can produce with the
// current settings: amplitude times the octave-summed persistence series.
func (p *Parameters) HeightBound() float64 {
	sum := 0.0
	amp := 1.0
	for i := 0; i < p.octaves; i++ {
		sum += amp
		amp *= p.persistence
	}
	return p.amplitude * sum
}

// clampFinite clamps v into [lo,hi]; a NaN or Inf input keeps the previous
// value so a broken slider cannot poison the block.
func clampFinite(v, lo, hi, prev float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return prev
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
