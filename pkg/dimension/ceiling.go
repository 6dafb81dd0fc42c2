package dimension

import "math"

// DefaultCeilingHeight is assumed when the scan produced no walls, in meters.
const DefaultCeilingHeight = 2.4

// CeilingDimension is the estimated ceiling measurement. The capture
// system's direct ceiling detections are not reliable enough to use, so
// both fields are approximations derived from wall data and carry no
// polygon corners.
type CeilingDimension struct {
	Area   float64 `json:"area"`
	Height float64 `json:"height"`
}

// EstimateCeiling derives the ceiling from the already-processed wall list.
//
// Height is the absolute value of the first wall's height; different walls
// may disagree in imperfect scans and only the first is trusted. Without
// walls the fixed default applies. Area is a quarter of the summed wall
// areas, which assumes a roughly rectangular room with four walls of
// comparable scale. Both are heuristics, not physical measurements.
func EstimateCeiling(walls []WallDimension) CeilingDimension {
	height := DefaultCeilingHeight
	if len(walls) > 0 {
		height = math.Abs(walls[0].Height)
	}

	total := 0.0
	for _, w := range walls {
		total += w.Area
	}

	return CeilingDimension{
		Area:   total / 4,
		Height: height,
	}
}
