package world

// GridCoord identifies one cell of the world grid. Value equality; used as
// the registry key.
type GridCoord struct {
	X, Z int
}

// Role names the surface a tile resource belongs to.
type Role int

const (
	RoleWater Role = iota
	RoleFloor
)

func (r Role) String() string {
	switch r {
	case RoleWater:
		return "water"
	case RoleFloor:
		return "floor"
	}
	return "unknown"
}

// Geometry is a committed surface resource. The real implementation wraps GPU
// buffers; Release frees them and detaches the resource from the renderer.
type Geometry interface {
	Release()
}

// GeometryBuilder constructs the renderable resource for one tile role at a
// given grid resolution. The tile passes its own world-space origin so no
// coordinate transform lives outside this package.
type GeometryBuilder interface {
	BuildSurface(role Role, originX, originZ, size float64, resolution int) (Geometry, error)
}

// Tile owns the renderable resources for exactly one grid cell: a water
// surface sheet and a floor sheet. Ownership is exclusive; a tile never
// outlives its registry entry.
type Tile struct {
	Coord    GridCoord
	Level    int     // detail level fixed at admission, 0 = finest
	Distance float64 // cell distance from the viewpoint at admission

	size  float64
	water Geometry
	floor Geometry
	alive bool
}

// NewTile creates an empty tile for a cell of the given edge length.
func NewTile(coord GridCoord, size float64) *Tile {
	return &Tile{Coord: coord, size: size}
}

// Origin returns the tile's world-space corner, coordinate times cell size.
func (t *Tile) Origin() (x, z float64) {
	return float64(t.Coord.X) * t.size, float64(t.Coord.Z) * t.size
}

// Size returns the cell edge length the tile was created with.
func (t *Tile) Size() float64 {
	return t.size
}

// Alive reports whether the tile currently holds built geometry.
func (t *Tile) Alive() bool {
	return t.alive
}

// Build constructs both surface resources at the given resolution. On any
// failure it releases whatever was built and reports the error; the tile is
// then safe to Build again (the streamer retries once at the fallback
// resolution). Building over live geometry rebuilds: old resources are
// released first.
func (t *Tile) Build(b GeometryBuilder, resolution int) error {
	t.Release()

	ox, oz := t.Origin()
	water, err := b.BuildSurface(RoleWater, ox, oz, t.size, resolution)
	if err != nil {
		return err
	}
	floor, err := b.BuildSurface(RoleFloor, ox, oz, t.size, resolution)
	if err != nil {
		water.Release()
		return err
	}

	t.water = water
	t.floor = floor
	t.alive = true
	return nil
}

// Release frees the tile's resources. Idempotent; safe on a never-built or
// already-released tile, and Build may be called again afterwards.
func (t *Tile) Release() {
	if t.water != nil {
		t.water.Release()
		t.water = nil
	}
	if t.floor != nil {
		t.floor.Release()
		t.floor = nil
	}
	t.alive = false
}
