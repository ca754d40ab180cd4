// Package surface renders the streamed water and seabed tiles. It owns the
// GPU lifecycle of tile meshes: the Builder uploads grids produced by the
// meshing package and the Water and Floor renderables draw whatever set of
// meshes is currently resident.
package surface

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"openwater/internal/meshing"
	"openwater/internal/world"
)

// Mesh is the GPU resource backing one tile surface. Vertices are uploaded
// in world coordinates, so no per-tile model matrix is needed.
type Mesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
	owner      map[*Mesh]struct{}
}

// Release deletes the GL objects and removes the mesh from its builder's
// resident set. Safe to call more than once.
func (m *Mesh) Release() {
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
	if m.owner != nil {
		delete(m.owner, m)
		m.owner = nil
	}
}

func (m *Mesh) draw() {
	if m.vao == 0 || m.indexCount == 0 {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
}

// Builder implements world.GeometryBuilder on top of the GL mesh upload.
// Water tiles are built flat (the vertex shader displaces them); floor tiles
// are displaced on the CPU from the seabed height field. Must only be used
// from the thread owning the GL context.
type Builder struct {
	floor  *world.FloorField
	meshes map[world.Role]map[*Mesh]struct{}
}

func NewBuilder(floor *world.FloorField) *Builder {
	return &Builder{
		floor: floor,
		meshes: map[world.Role]map[*Mesh]struct{}{
			world.RoleWater: make(map[*Mesh]struct{}),
			world.RoleFloor: make(map[*Mesh]struct{}),
		},
	}
}

// BuildSurface uploads a tile grid for the given role and returns its mesh.
func (b *Builder) BuildSurface(role world.Role, originX, originZ, size float64, resolution int) (world.Geometry, error) {
	var heightAt meshing.HeightFunc
	if role == world.RoleFloor {
		heightAt = b.floor.Depth
	}

	data, err := meshing.BuildGrid(originX, originZ, size, resolution, heightAt)
	if err != nil {
		return nil, fmt.Errorf("build %s tile at (%v, %v): %w", role, originX, originZ, err)
	}

	m := upload(data)
	set := b.meshes[role]
	set[m] = struct{}{}
	m.owner = set
	return m, nil
}

// Resident returns the number of uploaded meshes for a role.
func (b *Builder) Resident(role world.Role) int {
	return len(b.meshes[role])
}

func (b *Builder) forEach(role world.Role, fn func(*Mesh)) {
	for m := range b.meshes[role] {
		fn(m)
	}
}

func upload(data *meshing.Data) *Mesh {
	m := &Mesh{indexCount: int32(len(data.Indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.GenBuffers(1, &m.ebo)

	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data.Vertices)*4, gl.Ptr(data.Vertices), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data.Indices)*4, gl.Ptr(data.Indices), gl.STATIC_DRAW)

	// Layout: position (3 floats) + normal (3 floats)
	stride := int32(6 * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*4))

	gl.BindVertexArray(0)
	return m
}
