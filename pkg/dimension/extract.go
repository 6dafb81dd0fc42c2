package dimension

import "roomscan/pkg/scan"

// Extract is the sole entry point of the engine. It runs the wall, floor,
// ceiling and opening processors over the snapshot and assembles the
// aggregate totals:
//
//	totalWallArea  = sum of wall areas
//	totalFloorArea = floor area
//	roomVolume     = totalFloorArea * ceilingHeight
//
// The volume is a definition over those two numbers, not a measurement of
// enclosed air. Extract is pure and total: any well-formed snapshot,
// including an all-empty one, yields a result and nothing ever panics.
func Extract(s scan.Snapshot) RoomDimensions {
	walls := ProcessWalls(s.Walls)

	var floorSurface *scan.Surface
	if len(s.Floors) > 0 {
		// First floor wins; extras are reported by scan.Validate.
		floorSurface = &s.Floors[0]
	}
	floor := ProcessFloor(floorSurface)

	ceiling := EstimateCeiling(walls)
	doors := ProcessOpenings(s.Doors, OpeningDoor)
	windows := ProcessOpenings(s.Windows, OpeningWindow)

	totalWallArea := 0.0
	for _, w := range walls {
		totalWallArea += w.Area
	}

	return RoomDimensions{
		Walls:   walls,
		Floor:   floor,
		Ceiling: ceiling,
		Doors:   doors,
		Windows: windows,

		TotalFloorArea: floor.Area,
		TotalWallArea:  totalWallArea,
		CeilingHeight:  ceiling.Height,
		RoomVolume:     floor.Area * ceiling.Height,
	}
}
