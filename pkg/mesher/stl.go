package mesher

import (
	"encoding/binary"
	"fmt"
	"io"

	"roomscan/pkg/kernel"
)

// stlTriangle is one 50-byte record of a binary STL file: a face normal,
// three vertices and an unused attribute word.
type stlTriangle struct {
	Normal [3]float32
	V1     [3]float32
	V2     [3]float32
	V3     [3]float32
	Attr   uint16
}

// WriteSTL writes the meshes as a single binary STL body. Vertex order
// within each triangle is preserved from the mesh index buffer.
func WriteSTL(w io.Writer, meshes []*kernel.Mesh) error {
	var header [80]byte
	copy(header[:], "roomscan surface export")
	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return fmt.Errorf("stl header: %w", err)
	}

	total := 0
	for _, m := range meshes {
		total += m.TriangleCount()
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(total)); err != nil {
		return fmt.Errorf("stl count: %w", err)
	}

	for _, m := range meshes {
		for i := 0; i < m.TriangleCount(); i++ {
			if err := binary.Write(w, binary.LittleEndian, triangleRecord(m, i)); err != nil {
				return fmt.Errorf("stl triangle: %w", err)
			}
		}
	}
	return nil
}

func triangleRecord(m *kernel.Mesh, i int) stlTriangle {
	a, b, c := m.Triangle(i)

	var normal [3]float32
	// Per-vertex normals are flat per face; the first vertex normal is
	// the face normal.
	base := int(m.Indices[i*3]) * 3
	if base+2 < len(m.Normals) {
		normal = [3]float32{m.Normals[base], m.Normals[base+1], m.Normals[base+2]}
	}

	toF32 := func(v [3]float64) [3]float32 {
		return [3]float32{float32(v[0]), float32(v[1]), float32(v[2])}
	}
	return stlTriangle{
		Normal: normal,
		V1:     toF32(a),
		V2:     toF32(b),
		V3:     toF32(c),
		Attr:   0,
	}
}
