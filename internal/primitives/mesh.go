package primitives

import (
	"errors"
	"fmt"

	"scene-editor/internal/glmath"
)

// Mesh is an indexed triangle mesh: Vertices and Normals hold 3 floats per vertex, Indices hold 3
// zero-based vertex indices per triangle. Meshes in a Registry are shared and must not be modified.
type Mesh struct {
	Vertices []float32
	Indices  []uint32
	Normals  []float32
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

func (m *Mesh) vertex(i uint32) glmath.Vec3 {
	return glmath.Vec3{m.Vertices[i*3], m.Vertices[i*3+1], m.Vertices[i*3+2]}
}

// ErrEmptyMesh is returned by Validate for a mesh with no triangles.
var ErrEmptyMesh = errors.New("mesh: no triangles")

// Validate checks that the mesh has at least one triangle, the buffers are whole triples and every
// index names a vertex.
func (m *Mesh) Validate() error {
	if len(m.Indices) == 0 || len(m.Vertices) == 0 {
		return ErrEmptyMesh
	}
	if len(m.Vertices)%3 != 0 {
		return fmt.Errorf("mesh: %d vertex floats is not a multiple of 3", len(m.Vertices))
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("mesh: %d indices is not a multiple of 3", len(m.Indices))
	}
	n := uint32(m.VertexCount())
	for i, idx := range m.Indices {
		if idx >= n {
			return fmt.Errorf("mesh: index %d at %d out of range (%d vertices)", idx, i, n)
		}
	}
	return nil
}

// GenerateNormals computes per-vertex normals: each triangle's unnormalized face normal (its length
// is twice the triangle area) is added to its three vertices, then every sum is normalized.
// Vertices that belong to no triangle keep a zero normal.
func GenerateNormals(m *Mesh) {
	normals := make([]float32, len(m.Vertices))
	var e1, e2, face glmath.Vec3
	for t := 0; t+2 < len(m.Indices); t += 3 {
		i0, i1, i2 := m.Indices[t], m.Indices[t+1], m.Indices[t+2]
		v0, v1, v2 := m.vertex(i0), m.vertex(i1), m.vertex(i2)
		glmath.Vec3Sub(&e1, v1, v0)
		glmath.Vec3Sub(&e2, v2, v0)
		glmath.Vec3Cross(&face, e1, e2)
		for _, i := range [3]uint32{i0, i1, i2} {
			normals[i*3] += face[0]
			normals[i*3+1] += face[1]
			normals[i*3+2] += face[2]
		}
	}
	var n glmath.Vec3
	for i := 0; i+2 < len(normals); i += 3 {
		glmath.Vec3Normalize(&n, glmath.Vec3{normals[i], normals[i+1], normals[i+2]})
		normals[i], normals[i+1], normals[i+2] = n[0], n[1], n[2]
	}
	m.Normals = normals
}

// CubeMesh returns the unit cube spanning (0,0,0)-(1,1,1): 8 shared vertices, 12 triangles.
func CubeMesh() *Mesh {
	m := &Mesh{
		Vertices: []float32{
			0, 0, 1,
			0, 1, 1,
			1, 1, 1,
			1, 0, 1,

			0, 0, 0,
			0, 1, 0,
			1, 1, 0,
			1, 0, 0,
		},
		// counter-clockwise seen from outside, so face normals point out
		Indices: []uint32{
			0, 2, 1, 0, 3, 2,
			4, 6, 7, 4, 5, 6,
			0, 5, 4, 0, 1, 5,
			3, 6, 2, 3, 7, 6,
			1, 6, 5, 1, 2, 6,
			0, 7, 3, 0, 4, 7,
		},
	}
	GenerateNormals(m)
	return m
}
