package primitives

import "github.com/chewxy/math32"

// defaultSphereRings and defaultSphereSlices control the generated sphere's resolution.
const defaultSphereRings = 16
const defaultSphereSlices = 16

// SphereMesh generates a UV sphere of radius 1 centered on the origin. It is used when no sphere
// asset is available. rings and slices below 3 are raised to 3.
//
// Pole rings are exact points, and the triangles that would collapse onto a pole are not emitted.
func SphereMesh(rings, slices int) *Mesh {
	rings = max(rings, 3)
	slices = max(slices, 3)
	m := &Mesh{}
	for r := 0; r <= rings; r++ {
		phi := math32.Pi * float32(r) / float32(rings)
		y, ringRadius := math32.Cos(phi), math32.Sin(phi)
		switch r {
		case 0:
			y, ringRadius = 1, 0
		case rings:
			y, ringRadius = -1, 0
		}
		for s := 0; s <= slices; s++ {
			theta := 2 * math32.Pi * float32(s) / float32(slices)
			m.Vertices = append(m.Vertices, ringRadius*math32.Cos(theta), y, ringRadius*math32.Sin(theta))
		}
	}
	stride := uint32(slices + 1)
	last := uint32(rings - 1)
	for r := uint32(0); r < uint32(rings); r++ {
		for s := uint32(0); s < uint32(slices); s++ {
			a := r*stride + s
			b := a + stride
			if r != 0 {
				m.Indices = append(m.Indices, a, a+1, b)
			}
			if r != last {
				m.Indices = append(m.Indices, a+1, b+1, b)
			}
		}
	}
	GenerateNormals(m)
	return m
}
