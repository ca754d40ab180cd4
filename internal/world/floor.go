package world

import (
	"github.com/aquilax/go-perlin"

	"openwater/internal/config"
)

// Seabed noise shape. Low frequency, gentle relief; the floor is scenery and
// never interacts with physics.
const (
	floorNoiseAlpha     = 2.0
	floorNoiseBeta      = 2.0
	floorNoiseOctaves   = 3
	floorNoiseFrequency = 0.02
	floorRelief         = 2.5
)

// FloorField is the static seabed heightfield sampled when floor-role tile
// geometry is built.
type FloorField struct {
	noise *perlin.Perlin
}

// NewFloorField creates a seabed field for a seed.
func NewFloorField(seed int64) *FloorField {
	return &FloorField{
		noise: perlin.NewPerlin(floorNoiseAlpha, floorNoiseBeta, floorNoiseOctaves, seed),
	}
}

// Depth returns the seabed elevation at world (x, z): the configured mean
// floor depth displaced by Perlin relief.
func (f *FloorField) Depth(x, z float64) float64 {
	n := f.noise.Noise2D(x*floorNoiseFrequency, z*floorNoiseFrequency)
	return config.GetFloorDepth() + n*floorRelief
}
