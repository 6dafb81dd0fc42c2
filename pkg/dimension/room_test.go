package dimension

import (
	"testing"

	"roomscan/pkg/units"
)

// TestFormatHelpersMatchStandaloneFormatter checks that a value rendered
// through RoomDimensions is byte-identical to the same value rendered
// through a standalone formatter, for every unit.
func TestFormatHelpersMatchStandaloneFormatter(t *testing.T) {
	rd := RoomDimensions{
		TotalFloorArea: 12.0,
		TotalWallArea:  28.8,
		CeilingHeight:  2.4,
		RoomVolume:     28.8,
	}

	for _, unit := range []units.Unit{units.Meters, units.Centimeters, units.Feet, units.Inches} {
		f := units.Formatter{Unit: unit, Decimals: 2}

		if got, want := rd.FormatFloorArea(f), f.Area(rd.TotalFloorArea); got != want {
			t.Errorf("%v: FormatFloorArea = %q, standalone = %q", unit, got, want)
		}
		if got, want := rd.FormatWallArea(f), f.Area(rd.TotalWallArea); got != want {
			t.Errorf("%v: FormatWallArea = %q, standalone = %q", unit, got, want)
		}
		if got, want := rd.FormatCeilingHeight(f), f.Length(rd.CeilingHeight); got != want {
			t.Errorf("%v: FormatCeilingHeight = %q, standalone = %q", unit, got, want)
		}
		if got, want := rd.FormatVolume(f), f.Volume(rd.RoomVolume); got != want {
			t.Errorf("%v: FormatVolume = %q, standalone = %q", unit, got, want)
		}
	}
}

func TestDerivedCounts(t *testing.T) {
	rd := RoomDimensions{
		Walls:   make([]WallDimension, 4),
		Doors:   make([]OpeningDimension, 1),
		Windows: make([]OpeningDimension, 2),
	}
	if rd.WallCount() != 4 || rd.DoorCount() != 1 || rd.WindowCount() != 2 {
		t.Errorf("counts = (%d, %d, %d), want (4, 1, 2)", rd.WallCount(), rd.DoorCount(), rd.WindowCount())
	}
}
