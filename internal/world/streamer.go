package world

import (
	"log"
	"math"

	"openwater/internal/config"
	"openwater/internal/profiling"
)

// Detail leveling: level 0 out to nearLevelCells, then one level per band,
// clamped to MaxLevel. Levels are fixed at admission; tiles are not re-leveled
// as the viewpoint drifts (accepted approximation).
const (
	nearLevelCells = 3.0
	levelBandCells = 3.0
	MaxLevel       = 4
)

// Streamer keeps exactly the tiles within the admission radius of the
// viewpoint resident. Single-threaded by construction: the frame loop owns
// Reconcile and the registry; nothing here blocks.
type Streamer struct {
	builder GeometryBuilder
	tiles   map[GridCoord]*Tile

	lastCellX int
	lastCellZ int
	hasLast   bool
}

// NewStreamer creates an empty streamer over the given geometry builder.
func NewStreamer(builder GeometryBuilder) *Streamer {
	return &Streamer{
		builder: builder,
		tiles:   make(map[GridCoord]*Tile),
	}
}

// ReconcileAround reconciles against the grid cell containing world (x, z).
func (s *Streamer) ReconcileAround(x, z float64) {
	size := config.GetChunkSize()
	s.Reconcile(int(math.Floor(x/size)), int(math.Floor(z/size)))
}

// Reconcile makes the registry match the circular admission set around the
// viewpoint cell: admit and build missing tiles, evict everything that fell
// outside. A no-op while the viewpoint cell is unchanged, which is the
// dominant case across frames.
func (s *Streamer) Reconcile(cellX, cellZ int) {
	if s.hasLast && cellX == s.lastCellX && cellZ == s.lastCellZ {
		return
	}
	defer profiling.Track("world.Reconcile")()
	s.lastCellX, s.lastCellZ = cellX, cellZ
	s.hasLast = true

	// Settings are read once so the admission and eviction passes observe the
	// same radius within this call.
	viewDistance := config.GetViewDistance()
	size := config.GetChunkSize()
	baseRes := config.GetBaseResolution()

	for dx := -viewDistance; dx <= viewDistance; dx++ {
		for dz := -viewDistance; dz <= viewDistance; dz++ {
			if dx*dx+dz*dz > viewDistance*viewDistance {
				continue
			}
			coord := GridCoord{X: cellX + dx, Z: cellZ + dz}
			if _, resident := s.tiles[coord]; resident {
				continue
			}
			s.admit(coord, math.Sqrt(float64(dx*dx+dz*dz)), size, baseRes)
		}
	}

	for coord, tile := range s.tiles {
		dx := coord.X - cellX
		dz := coord.Z - cellZ
		if dx*dx+dz*dz > viewDistance*viewDistance {
			tile.Release()
			delete(s.tiles, coord)
		}
	}
}

// admit creates and builds one tile. A failed build is retried once at the
// fallback resolution; a second failure leaves the cell empty for this pass
// and never blocks reconciliation.
func (s *Streamer) admit(coord GridCoord, distance, size float64, baseRes int) {
	tile := NewTile(coord, size)
	tile.Distance = distance
	tile.Level = LevelForDistance(distance)

	res := ResolutionForLevel(tile.Level, baseRes)
	if err := tile.Build(s.builder, res); err != nil {
		log.Printf("world: tile (%d,%d) build at resolution %d failed: %v; retrying at %d",
			coord.X, coord.Z, res, err, config.FallbackResolution)
		if err := tile.Build(s.builder, config.FallbackResolution); err != nil {
			log.Printf("world: tile (%d,%d) fallback build failed: %v; cell left empty", coord.X, coord.Z, err)
			return
		}
	}
	s.tiles[coord] = tile
}

// Tile returns the resident tile at coord, or nil.
func (s *Streamer) Tile(coord GridCoord) *Tile {
	return s.tiles[coord]
}

// Len returns the number of resident tiles.
func (s *Streamer) Len() int {
	return len(s.tiles)
}

// ForEach visits every resident tile. The callback must not mutate the
// registry.
func (s *Streamer) ForEach(fn func(*Tile)) {
	for _, tile := range s.tiles {
		fn(tile)
	}
}

// Invalidate forces the next Reconcile to run even for an unchanged viewpoint
// cell. Called after a settings change that affects admission or geometry.
func (s *Streamer) Invalidate() {
	s.hasLast = false
}

// Rebuild releases and reconstructs the whole registry in place. Used when a
// geometry-affecting setting (base resolution, floor depth) changes.
func (s *Streamer) Rebuild() {
	if !s.hasLast {
		return
	}
	for coord, tile := range s.tiles {
		tile.Release()
		delete(s.tiles, coord)
	}
	cx, cz := s.lastCellX, s.lastCellZ
	s.hasLast = false
	s.Reconcile(cx, cz)
}

// ReleaseAll evicts everything. Shutdown path.
func (s *Streamer) ReleaseAll() {
	for coord, tile := range s.tiles {
		tile.Release()
		delete(s.tiles, coord)
	}
	s.hasLast = false
}

// LevelForDistance maps a viewpoint distance in cells to a detail level.
func LevelForDistance(distance float64) int {
	if distance <= nearLevelCells {
		return 0
	}
	// Band ends are inclusive: a tile exactly on a band edge keeps the
	// finer level.
	level := int(math.Ceil((distance - nearLevelCells) / levelBandCells))
	if level > MaxLevel {
		level = MaxLevel
	}
	return level
}

// ResolutionForLevel halves the base resolution per level, never below the
// configured minimum.
func ResolutionForLevel(level, baseResolution int) int {
	res := baseResolution >> uint(level)
	if res < config.MinResolution {
		res = config.MinResolution
	}
	return res
}
