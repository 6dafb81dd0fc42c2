package scan

import (
	"fmt"

	"roomscan/pkg/geom"
)

// Warning is a non-blocking advisory finding about a snapshot. Extraction
// never fails on a warning; the capture/session layer decides whether to
// surface them to the user.
type Warning struct {
	SurfaceID SurfaceID
	Message   string
}

func (w Warning) String() string {
	if w.SurfaceID == "" {
		return w.Message
	}
	return fmt.Sprintf("surface %s: %s", w.SurfaceID, w.Message)
}

// Validate runs all advisory checks over a snapshot. It is read-only and
// never mutates the snapshot.
func Validate(s Snapshot) []Warning {
	var warnings []Warning
	warnings = append(warnings, validateDimensions(s)...)
	warnings = append(warnings, validatePolygons(s)...)
	warnings = append(warnings, validateParentRefs(s)...)
	warnings = append(warnings, validateFloorCount(s)...)
	return warnings
}

func allSurfaces(s Snapshot) []Surface {
	out := make([]Surface, 0, s.SurfaceCount())
	out = append(out, s.Walls...)
	out = append(out, s.Floors...)
	out = append(out, s.Ceilings...)
	out = append(out, s.Doors...)
	out = append(out, s.Windows...)
	return out
}

// validateDimensions flags surfaces whose planar extents are not positive.
// Walls and openings span X (width) and Y (height); floors span X and Z.
func validateDimensions(s Snapshot) []Warning {
	var warnings []Warning
	for _, sf := range allSurfaces(s) {
		second := sf.Dimensions.Y
		axis := "height"
		if sf.Kind == KindFloor {
			second = sf.Dimensions.Z
			axis = "depth"
		}
		if sf.Dimensions.X <= 0 {
			warnings = append(warnings, Warning{
				SurfaceID: sf.ID,
				Message:   fmt.Sprintf("%s width is %.4f, expected positive", sf.Kind, sf.Dimensions.X),
			})
		}
		if second <= 0 {
			warnings = append(warnings, Warning{
				SurfaceID: sf.ID,
				Message:   fmt.Sprintf("%s %s is %.4f, expected positive", sf.Kind, axis, second),
			})
		}
	}
	return warnings
}

// validatePolygons flags corner lists that are present but degenerate:
// fewer than 3 points, or 3+ points spanning zero area. Extraction falls
// back to bounding-box areas for these.
func validatePolygons(s Snapshot) []Warning {
	var warnings []Warning
	for _, sf := range allSurfaces(s) {
		n := len(sf.Corners)
		if n == 0 {
			continue
		}
		if n < 3 {
			warnings = append(warnings, Warning{
				SurfaceID: sf.ID,
				Message:   fmt.Sprintf("polygon has %d corners, need at least 3", n),
			})
			continue
		}
		if sf.Kind == KindFloor && geom.PolygonArea(sf.Corners, geom.PlaneXZ) == 0 {
			warnings = append(warnings, Warning{
				SurfaceID: sf.ID,
				Message:   "floor polygon spans zero area, bounding-box fallback will be used",
			})
		}
	}
	return warnings
}

// validateParentRefs flags openings whose parent wall id resolves to no
// wall in the snapshot. A nil parent id is legitimate and not flagged.
func validateParentRefs(s Snapshot) []Warning {
	walls := make(map[SurfaceID]bool, len(s.Walls))
	for _, w := range s.Walls {
		walls[w.ID] = true
	}

	var warnings []Warning
	for _, opening := range append(append([]Surface{}, s.Doors...), s.Windows...) {
		if opening.ParentID == nil {
			continue
		}
		if !walls[*opening.ParentID] {
			warnings = append(warnings, Warning{
				SurfaceID: opening.ID,
				Message:   fmt.Sprintf("%s references parent wall %s which is not in the snapshot", opening.Kind, *opening.ParentID),
			})
		}
	}
	return warnings
}

// validateFloorCount flags snapshots with more than one floor surface.
// Extraction uses the first floor only.
func validateFloorCount(s Snapshot) []Warning {
	if len(s.Floors) <= 1 {
		return nil
	}
	return []Warning{{
		Message: fmt.Sprintf("snapshot has %d floor surfaces, only the first is used", len(s.Floors)),
	}}
}
