package dimension

import (
	"roomscan/pkg/geom"
	"roomscan/pkg/scan"
)

// OpeningKind tags an opening as a door, a window, or an uncategorized
// opening in a wall.
type OpeningKind int

const (
	OpeningDoor OpeningKind = iota
	OpeningWindow
	OpeningGeneric
)

func (k OpeningKind) String() string {
	switch k {
	case OpeningDoor:
		return "door"
	case OpeningWindow:
		return "window"
	case OpeningGeneric:
		return "opening"
	default:
		return "unknown"
	}
}

// OpeningDimension is the derived measurement of a door or window surface.
type OpeningDimension struct {
	ID        scan.SurfaceID `json:"id"`
	Kind      OpeningKind    `json:"kind"`
	Width     float64        `json:"width"`
	Height    float64        `json:"height"`
	Area      float64        `json:"area"`
	Transform geom.Mat4      `json:"transform"`
	// ParentWallID is a lookup key into the wall list, copied verbatim
	// from the surface. Nil when the capture system could not associate
	// the opening with a wall.
	ParentWallID *scan.SurfaceID `json:"parent_wall_id,omitempty"`
}

// ProcessOpenings maps each opening surface to an OpeningDimension tagged
// with kind, preserving order and cardinality. Doors and windows go
// through the same mapping and differ only in the tag.
func ProcessOpenings(openings []scan.Surface, kind OpeningKind) []OpeningDimension {
	out := make([]OpeningDimension, 0, len(openings))
	for _, o := range openings {
		width := o.Dimensions.X
		height := o.Dimensions.Y
		out = append(out, OpeningDimension{
			ID:           o.ID,
			Kind:         kind,
			Width:        width,
			Height:       height,
			Area:         width * height,
			Transform:    o.Transform,
			ParentWallID: o.ParentID,
		})
	}
	return out
}
