package kernel

// Mesh is a triangle mesh suitable for export or rendering.
// All arrays are flat: vertices has 3 floats per vertex (x,y,z),
// normals has 3 floats per vertex, indices has 3 uint32s per triangle.
type Mesh struct {
	Vertices []float32 `json:"vertices"` // [x0,y0,z0, x1,y1,z1, ...]
	Normals  []float32 `json:"normals"`  // [nx0,ny0,nz0, ...]
	Indices  []uint32  `json:"indices"`  // [i0,i1,i2, ...] triangles
	Name     string    `json:"name"`     // which captured surface this came from
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Triangle returns the three vertices of triangle i as flat [x,y,z]
// triples, following the index buffer.
func (m *Mesh) Triangle(i int) (a, b, c [3]float64) {
	read := func(idx uint32) [3]float64 {
		base := int(idx) * 3
		return [3]float64{
			float64(m.Vertices[base]),
			float64(m.Vertices[base+1]),
			float64(m.Vertices[base+2]),
		}
	}
	return read(m.Indices[i*3]), read(m.Indices[i*3+1]), read(m.Indices[i*3+2])
}
