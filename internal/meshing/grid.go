package meshing

import (
	"fmt"
	"math"
)

// MaxResolution guards against runaway quad counts from a bad setting.
const MaxResolution = 1024

// Data is CPU-side grid geometry ready for upload: interleaved position and
// normal (x,y,z,nx,ny,nz) plus a triangle index list.
type Data struct {
	Vertices []float32
	Indices  []uint32
}

// VertexCount returns the number of vertices in the buffer.
func (d *Data) VertexCount() int {
	return len(d.Vertices) / 6
}

// HeightFunc gives the elevation of a surface at world (x, z).
type HeightFunc func(x, z float64) float64

// BuildGrid tessellates a size x size square starting at (originX, originZ)
// into resolution x resolution quads. A nil heightAt produces a flat sheet at
// y=0 with up normals (the water case; displacement happens in the shader).
// With heightAt the grid is displaced on the CPU and normals come from
// central differences (the floor case).
func BuildGrid(originX, originZ, size float64, resolution int, heightAt HeightFunc) (*Data, error) {
	if resolution < 1 {
		return nil, fmt.Errorf("grid resolution %d, need >= 1", resolution)
	}
	if resolution > MaxResolution {
		return nil, fmt.Errorf("grid resolution %d exceeds maximum %d", resolution, MaxResolution)
	}
	if !(size > 0) || math.IsInf(size, 0) {
		return nil, fmt.Errorf("grid size %v, need finite > 0", size)
	}

	n := resolution + 1
	step := size / float64(resolution)

	verts := make([]float32, 0, n*n*6)
	for row := 0; row < n; row++ {
		z := originZ + float64(row)*step
		for col := 0; col < n; col++ {
			x := originX + float64(col)*step

			y := 0.0
			nx, ny, nz := 0.0, 1.0, 0.0
			if heightAt != nil {
				y = heightAt(x, z)
				nx, ny, nz = gradientNormal(x, z, step, heightAt)
			}
			if !isFinite(y) || !isFinite(nx) || !isFinite(ny) || !isFinite(nz) {
				return nil, fmt.Errorf("non-finite height sample at (%v, %v)", x, z)
			}

			verts = append(verts,
				float32(x), float32(y), float32(z),
				float32(nx), float32(ny), float32(nz))
		}
	}

	idx := make([]uint32, 0, resolution*resolution*6)
	for row := 0; row < resolution; row++ {
		for col := 0; col < resolution; col++ {
			v00 := uint32(row*n + col)
			v10 := v00 + 1
			v01 := v00 + uint32(n)
			v11 := v01 + 1
			// CCW front faces viewed from above, matching the culling setup.
			idx = append(idx, v00, v01, v11, v00, v11, v10)
		}
	}

	return &Data{Vertices: verts, Indices: idx}, nil
}

// gradientNormal derives an up-facing unit normal from central differences of
// the height function.
func gradientNormal(x, z, step float64, heightAt HeightFunc) (float64, float64, float64) {
	dx := (heightAt(x+step, z) - heightAt(x-step, z)) / (2 * step)
	dz := (heightAt(x, z+step) - heightAt(x, z-step)) / (2 * step)
	nx, ny, nz := -dx, 1.0, -dz
	inv := 1 / math.Sqrt(nx*nx+ny*ny+nz*nz)
	return nx * inv, ny * inv, nz * inv
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
