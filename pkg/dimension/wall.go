// Package dimension converts a finalized scan snapshot into the physically
// meaningful measurements of a room: per-surface dimensions and areas,
// totals, ceiling height and enclosed volume, all in meters.
package dimension

import (
	"roomscan/pkg/geom"
	"roomscan/pkg/scan"
)

// WallDimension is the derived measurement of a single wall surface.
// Immutable once constructed.
type WallDimension struct {
	ID         scan.SurfaceID  `json:"id"`
	Width      float64         `json:"width"`
	Height     float64         `json:"height"`
	Area       float64         `json:"area"`
	Transform  geom.Mat4       `json:"transform"`
	Confidence scan.Confidence `json:"confidence"`
	IsCurved   bool            `json:"is_curved"`
	Corners    []geom.Vec3     `json:"corners,omitempty"`
}

// Position returns the wall pose's translation component.
func (w WallDimension) Position() geom.Vec3 {
	return w.Transform.Translation()
}

// ProcessWalls maps each wall surface to a WallDimension, preserving order
// and cardinality. Area is always recomputed as width * height; upstream
// carries no area fields to trust.
func ProcessWalls(walls []scan.Surface) []WallDimension {
	out := make([]WallDimension, 0, len(walls))
	for _, w := range walls {
		width := w.Dimensions.X
		height := w.Dimensions.Y
		out = append(out, WallDimension{
			ID:         w.ID,
			Width:      width,
			Height:     height,
			Area:       width * height,
			Transform:  w.Transform,
			Confidence: w.Confidence,
			IsCurved:   w.Curved,
			Corners:    w.Corners,
		})
	}
	return out
}
