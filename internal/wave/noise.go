package wave

import "math"

// 2D simplex-style gradient noise, hand-ported to agree with the water
// shader. The GPU evaluates the same lattice with the same hash and the same
// gradient palette; any change here must be mirrored in the GLSL source or
// CPU-sampled heights silently drift away from the rendered surface.

// Skew constants for the 2D simplex lattice.
const (
	skewF2   = 0.36602540378443865 // (sqrt(3)-1)/2
	unskewG2 = 0.21132486540518713 // (3-sqrt(3))/6
)

// gradients is the fixed palette of corner directions: 8 canonical directions
// repeated twice for a table of 16. Order matters; the shader carries the
// identical table.
var gradients = [16][2]float64{
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
}

// gradientIndex hashes integer lattice coordinates into the palette.
// Go's % keeps the sign of the dividend, so the intermediate is wrapped to
// stay non-negative for negative lattice coordinates.
func gradientIndex(i, j int) int {
	h := (i*1597 + j*6971) % 289
	if h < 0 {
		h += 289
	}
	return h % 16
}

// cornerContribution evaluates one simplex corner: zero outside the falloff
// radius, otherwise (0.5 - d²)⁴ times the gradient dot product.
func cornerContribution(dx, dy float64, gi int) float64 {
	t := 0.5 - dx*dx - dy*dy
	if t < 0 {
		return 0
	}
	t *= t
	g := &gradients[gi]
	return t * t * (g[0]*dx + g[1]*dy)
}

// Simplex2 evaluates 2D simplex noise at (x, y), approximately normalized to
// [-1, 1]. Pure, allocation-free; NaN/Inf inputs propagate.
func Simplex2(x, y float64) float64 {
	// Skew into simplex cell space and find the containing cell.
	s := (x + y) * skewF2
	i := math.Floor(x + s)
	j := math.Floor(y + s)

	// Unskew back to get the offset from the cell origin.
	t := (i + j) * unskewG2
	x0 := x - (i - t)
	y0 := y - (j - t)

	// Which of the two triangles of the cell holds the point.
	var i1, j1 int
	if x0 > y0 {
		i1, j1 = 1, 0
	} else {
		i1, j1 = 0, 1
	}

	x1 := x0 - float64(i1) + unskewG2
	y1 := y0 - float64(j1) + unskewG2
	x2 := x0 - 1 + 2*unskewG2
	y2 := y0 - 1 + 2*unskewG2

	ii := int(i)
	jj := int(j)

	n := cornerContribution(x0, y0, gradientIndex(ii, jj)) +
		cornerContribution(x1, y1, gradientIndex(ii+i1, jj+j1)) +
		cornerContribution(x2, y2, gradientIndex(ii+1, jj+1))

	return 38.0 * n
}
