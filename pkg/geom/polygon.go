package geom

import "math"

// Plane selects the two axes a 3D polygon is projected onto before its
// area is computed.
type Plane int

const (
	PlaneXZ Plane = iota // horizontal plane, Y up (floors)
	PlaneXY              // vertical plane facing Z
	PlaneYZ              // vertical plane facing X
)

func (p Plane) String() string {
	switch p {
	case PlaneXZ:
		return "xz"
	case PlaneXY:
		return "xy"
	case PlaneYZ:
		return "yz"
	default:
		return "unknown"
	}
}

// project returns the two in-plane coordinates of v.
func (p Plane) project(v Vec3) (a, b float64) {
	switch p {
	case PlaneXY:
		return v.X, v.Y
	case PlaneYZ:
		return v.Y, v.Z
	default:
		return v.X, v.Z
	}
}

// SignedPolygonArea computes the signed Shoelace area of the closed
// polygon described by corners, projected onto the given plane. The sign
// depends on winding order. Fewer than 3 corners yield 0.
func SignedPolygonArea(corners []Vec3, plane Plane) float64 {
	n := len(corners)
	if n < 3 {
		return 0
	}
	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		ai, bi := plane.project(corners[i])
		aj, bj := plane.project(corners[j])
		area += ai*bj - aj*bi
	}
	return area / 2
}

// PolygonArea returns the unsigned Shoelace area of the polygon.
func PolygonArea(corners []Vec3, plane Plane) float64 {
	return math.Abs(SignedPolygonArea(corners, plane))
}
