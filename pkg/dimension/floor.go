package dimension

import (
	"roomscan/pkg/geom"
	"roomscan/pkg/scan"
)

// FloorDimension is the derived measurement of the room's floor. A room
// has at most one; absence yields the zero-valued sentinel.
type FloorDimension struct {
	Area           float64     `json:"area"`
	BoundingWidth  float64     `json:"bounding_width"`
	BoundingLength float64     `json:"bounding_length"`
	Corners        []geom.Vec3 `json:"corners,omitempty"`
	Center         geom.Vec3   `json:"center"`
}

// ProcessFloor derives the floor measurement from the first floor surface,
// or returns the zero-valued sentinel when floor is nil. That sentinel is
// a defined fallback, not a failure.
//
// Area prefers the Shoelace polygon area on the horizontal (X/Z) plane and
// uses it only when strictly positive; a zero or degenerate polygon falls
// back to dimensions.X * dimensions.Z. Bounding extents always come from
// the raw dimensions, independent of which area method won.
func ProcessFloor(floor *scan.Surface) FloorDimension {
	if floor == nil {
		return FloorDimension{}
	}

	width := floor.Dimensions.X
	length := floor.Dimensions.Z

	area := geom.PolygonArea(floor.Corners, geom.PlaneXZ)
	if area <= 0 {
		area = width * length
	}

	return FloorDimension{
		Area:           area,
		BoundingWidth:  width,
		BoundingLength: length,
		Corners:        floor.Corners,
		Center:         floor.Transform.Translation(),
	}
}
