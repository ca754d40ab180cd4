package wave

// Field is the CPU-side wave surface: the same fractal simplex sum the water
// shader displaces vertices with, evaluated on demand for physics queries.
type Field struct {
	params *Parameters
}

// NewField creates a height field over the shared parameter block.
func NewField(params *Parameters) *Field {
	return &Field{params: params}
}

// Params returns the shared parameter block the field reads.
func (f *Field) Params() *Parameters {
	return f.params
}

// Height returns the surface elevation at world (x, z) for the currently
// stored time. Deterministic for fixed parameters, O(octaves), no allocation.
// NaN/Inf inputs propagate unsanitized.
func (f *Field) Height(x, z float64) float64 {
	p := f.params
	shift := p.time * p.speed

	sum := 0.0
	amp := 1.0
	freq := p.frequency
	for i := 0; i < p.octaves; i++ {
		sum += Simplex2(x*freq+shift, z*freq+shift) * amp
		amp *= p.persistence
		freq *= p.lacunarity
	}
	return sum * p.amplitude
}
