package config

import (
	"math"
	"sync"
)

// Fixed limits. Runtime-tunable values live in SceneSettings below.
const (
	// VertexBudget caps worst-case resident geometry. The safe maximum view
	// distance is derived from it so that even with every tile at the base
	// resolution the registry cannot blow past this many vertices.
	VertexBudget = 3_000_000

	// MinResolution is the coarsest level-of-detail resolution a tile is
	// built at through normal leveling.
	MinResolution = 8

	// FallbackResolution is used for the one retry after a geometry build
	// failure. Deliberately tiny; a flat quad beats a hole in the sea.
	FallbackResolution = 2
)

// SceneSettings holds the runtime-tunable scene configuration.
type SceneSettings struct {
	mu             sync.RWMutex
	viewDistance   int     // admission radius in grid cells
	chunkSize      float64 // cell edge length in world units
	baseResolution int     // quads per edge at the finest detail level
	floorDepth     float64 // mean seabed elevation, always <= 0
	fpsLimit       int
}

var globalSceneSettings = &SceneSettings{
	viewDistance:   8,
	chunkSize:      16,
	baseResolution: 64,
	floorDepth:     -8,
	fpsLimit:       120,
}

// GetViewDistance returns the admission radius in grid cells.
func GetViewDistance() int {
	globalSceneSettings.mu.RLock()
	defer globalSceneSettings.mu.RUnlock()
	return globalSceneSettings.viewDistance
}

// SetViewDistance sets the admission radius. Values above the safe maximum
// for the current base resolution are clamped silently, not rejected.
func SetViewDistance(distance int) {
	globalSceneSettings.mu.Lock()
	defer globalSceneSettings.mu.Unlock()
	globalSceneSettings.viewDistance = clampViewDistance(distance, globalSceneSettings.baseResolution)
}

func clampViewDistance(distance, baseResolution int) int {
	if distance < 1 {
		distance = 1
	}
	if safe := safeMaxViewDistance(baseResolution); distance > safe {
		distance = safe
	}
	return distance
}

// GetChunkSize returns the grid cell edge length in world units.
func GetChunkSize() float64 {
	globalSceneSettings.mu.RLock()
	defer globalSceneSettings.mu.RUnlock()
	return globalSceneSettings.chunkSize
}

// SetChunkSize sets the cell edge length, clamped to [4, 64]. Resident tiles
// keep the size they were built with; the new value applies from the next
// admission.
func SetChunkSize(size float64) {
	if math.IsNaN(size) || math.IsInf(size, 0) {
		return
	}
	globalSceneSettings.mu.Lock()
	defer globalSceneSettings.mu.Unlock()
	if size < 4 {
		size = 4
	}
	if size > 64 {
		size = 64
	}
	globalSceneSettings.chunkSize = size
}

// GetBaseResolution returns the finest-level grid resolution.
func GetBaseResolution() int {
	globalSceneSettings.mu.RLock()
	defer globalSceneSettings.mu.RUnlock()
	return globalSceneSettings.baseResolution
}

// SetBaseResolution sets the finest-level grid resolution, clamped to
// [MinResolution, 256]. The view distance is re-clamped afterwards since its
// safe maximum depends on the base resolution.
func SetBaseResolution(res int) {
	globalSceneSettings.mu.Lock()
	defer globalSceneSettings.mu.Unlock()
	if res < MinResolution {
		res = MinResolution
	}
	if res > 256 {
		res = 256
	}
	globalSceneSettings.baseResolution = res
	globalSceneSettings.viewDistance = clampViewDistance(globalSceneSettings.viewDistance, res)
}

// GetFloorDepth returns the mean seabed elevation.
func GetFloorDepth() float64 {
	globalSceneSettings.mu.RLock()
	defer globalSceneSettings.mu.RUnlock()
	return globalSceneSettings.floorDepth
}

// SetFloorDepth sets the mean seabed elevation, clamped to [-20, 0].
func SetFloorDepth(depth float64) {
	if math.IsNaN(depth) || math.IsInf(depth, 0) {
		return
	}
	globalSceneSettings.mu.Lock()
	defer globalSceneSettings.mu.Unlock()
	if depth < -20 {
		depth = -20
	}
	if depth > 0 {
		depth = 0
	}
	globalSceneSettings.floorDepth = depth
}

// GetFPSLimit returns the frame rate cap. Zero means uncapped.
func GetFPSLimit() int {
	globalSceneSettings.mu.RLock()
	defer globalSceneSettings.mu.RUnlock()
	return globalSceneSettings.fpsLimit
}

// SetFPSLimit sets the frame rate cap, clamped to [0, 1000].
func SetFPSLimit(limit int) {
	globalSceneSettings.mu.Lock()
	defer globalSceneSettings.mu.Unlock()
	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}
	globalSceneSettings.fpsLimit = limit
}

// SafeMaxViewDistance reports the largest admission radius the vertex budget
// permits at the current base resolution.
func SafeMaxViewDistance() int {
	globalSceneSettings.mu.RLock()
	defer globalSceneSettings.mu.RUnlock()
	return safeMaxViewDistance(globalSceneSettings.baseResolution)
}

// safeMaxViewDistance bounds the circular admission set: roughly pi*r^2 tiles,
// each carrying a water and a floor grid of (res+1)^2 vertices in the worst
// case (no detail falloff assumed). Coarser base resolution permits a larger
// radius.
func safeMaxViewDistance(baseResolution int) int {
	perTile := 2 * (baseResolution + 1) * (baseResolution + 1)
	r := int(math.Sqrt(float64(VertexBudget) / float64(perTile) / math.Pi))
	if r < 1 {
		r = 1
	}
	return r
}
