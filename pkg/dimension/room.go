package dimension

import "roomscan/pkg/units"

// RoomDimensions is the root aggregate produced by Extract. It is
// constructed once per extraction call, never mutated afterwards, and
// owned exclusively by the caller; nothing in it points back at the
// snapshot it came from.
type RoomDimensions struct {
	Walls   []WallDimension    `json:"walls"`
	Floor   FloorDimension     `json:"floor"`
	Ceiling CeilingDimension   `json:"ceiling"`
	Doors   []OpeningDimension `json:"doors"`
	Windows []OpeningDimension `json:"windows"`

	TotalFloorArea float64 `json:"total_floor_area"`
	TotalWallArea  float64 `json:"total_wall_area"`
	CeilingHeight  float64 `json:"ceiling_height"`
	RoomVolume     float64 `json:"room_volume"`
}

// WallCount returns the number of walls. Counts are derived, not stored.
func (r RoomDimensions) WallCount() int { return len(r.Walls) }

// DoorCount returns the number of doors.
func (r RoomDimensions) DoorCount() int { return len(r.Doors) }

// WindowCount returns the number of windows.
func (r RoomDimensions) WindowCount() int { return len(r.Windows) }

// The format helpers below delegate to the shared units formatter so that
// a value rendered through RoomDimensions is byte-identical to the same
// value rendered through a standalone units.Formatter.

// FormatFloorArea renders the total floor area in the formatter's unit.
func (r RoomDimensions) FormatFloorArea(f units.Formatter) string {
	return f.Area(r.TotalFloorArea)
}

// FormatWallArea renders the total wall area in the formatter's unit.
func (r RoomDimensions) FormatWallArea(f units.Formatter) string {
	return f.Area(r.TotalWallArea)
}

// FormatCeilingHeight renders the ceiling height in the formatter's unit.
func (r RoomDimensions) FormatCeilingHeight(f units.Formatter) string {
	return f.Length(r.CeilingHeight)
}

// FormatVolume renders the room volume in the formatter's unit.
func (r RoomDimensions) FormatVolume(f units.Formatter) string {
	return f.Volume(r.RoomVolume)
}
