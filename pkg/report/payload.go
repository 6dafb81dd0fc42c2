// Package report builds the transport payload consumed by the upstream
// report service and uploads it. Field names are part of the wire contract
// and must not change.
package report

import "roomscan/pkg/dimension"

// WallEntry is the per-wall section of the payload.
type WallEntry struct {
	Name     string  `json:"name"`
	WidthM   float64 `json:"widthM"`
	HeightM  float64 `json:"heightM"`
	AreaM2   float64 `json:"areaM2"`
	IsCurved bool    `json:"isCurved"`
}

// OpeningEntry is the per-door/per-window section of the payload.
type OpeningEntry struct {
	Type    string  `json:"type"`
	WidthM  float64 `json:"widthM"`
	HeightM float64 `json:"heightM"`
	AreaM2  float64 `json:"areaM2"`
}

// Payload is the room-measurement document uploaded to the report service.
// All values are meter-based.
type Payload struct {
	FloorAreaM2    float64        `json:"floorAreaM2"`
	WallAreaM2     float64        `json:"wallAreaM2"`
	CeilingHeightM float64        `json:"ceilingHeightM"`
	VolumeM3       float64        `json:"volumeM3"`
	WallCount      int            `json:"wallCount"`
	DoorCount      int            `json:"doorCount"`
	WindowCount    int            `json:"windowCount"`
	Walls          []WallEntry    `json:"walls"`
	Openings       []OpeningEntry `json:"openings"`
}

// Build assembles the payload from extracted room dimensions. Wall display
// names are generated by the caller; when wallNames is shorter than the
// wall list the surface id fills in.
func Build(rd dimension.RoomDimensions, wallNames []string) Payload {
	walls := make([]WallEntry, 0, len(rd.Walls))
	for i, w := range rd.Walls {
		name := string(w.ID)
		if i < len(wallNames) && wallNames[i] != "" {
			name = wallNames[i]
		}
		walls = append(walls, WallEntry{
			Name:     name,
			WidthM:   w.Width,
			HeightM:  w.Height,
			AreaM2:   w.Area,
			IsCurved: w.IsCurved,
		})
	}

	openings := make([]OpeningEntry, 0, len(rd.Doors)+len(rd.Windows))
	for _, o := range rd.Doors {
		openings = append(openings, openingEntry(o))
	}
	for _, o := range rd.Windows {
		openings = append(openings, openingEntry(o))
	}

	return Payload{
		FloorAreaM2:    rd.TotalFloorArea,
		WallAreaM2:     rd.TotalWallArea,
		CeilingHeightM: rd.CeilingHeight,
		VolumeM3:       rd.RoomVolume,
		WallCount:      rd.WallCount(),
		DoorCount:      rd.DoorCount(),
		WindowCount:    rd.WindowCount(),
		Walls:          walls,
		Openings:       openings,
	}
}

func openingEntry(o dimension.OpeningDimension) OpeningEntry {
	return OpeningEntry{
		Type:    o.Kind.String(),
		WidthM:  o.Width,
		HeightM: o.Height,
		AreaM2:  o.Area,
	}
}
