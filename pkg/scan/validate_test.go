package scan

import (
	"strings"
	"testing"

	"roomscan/pkg/geom"
)

func validWall(id string) Surface {
	return Surface{
		ID:         SurfaceID(id),
		Kind:       KindWall,
		Dimensions: geom.Vec3{X: 3, Y: 2.4},
		Transform:  geom.Identity(),
		Confidence: ConfidenceHigh,
	}
}

func TestValidateCleanSnapshot(t *testing.T) {
	parent := SurfaceID("w1")
	s := Snapshot{
		Walls: []Surface{validWall("w1"), validWall("w2")},
		Floors: []Surface{{
			ID:         "f1",
			Kind:       KindFloor,
			Dimensions: geom.Vec3{X: 4, Z: 3},
			Transform:  geom.Identity(),
			Corners: []geom.Vec3{
				{X: 0, Z: 0}, {X: 4, Z: 0}, {X: 4, Z: 3}, {X: 0, Z: 3},
			},
		}},
		Doors: []Surface{{
			ID:         "d1",
			Kind:       KindDoor,
			Dimensions: geom.Vec3{X: 0.9, Y: 2},
			Transform:  geom.Identity(),
			ParentID:   &parent,
		}},
	}
	if warnings := Validate(s); len(warnings) != 0 {
		t.Errorf("Validate() = %v, want no warnings", warnings)
	}
}

func TestValidateNonPositiveDimensions(t *testing.T) {
	wall := validWall("w1")
	wall.Dimensions.Y = -2.4
	s := Snapshot{Walls: []Surface{wall}}

	warnings := Validate(s)
	if len(warnings) != 1 {
		t.Fatalf("Validate() = %v, want 1 warning", warnings)
	}
	if !strings.Contains(warnings[0].Message, "height") {
		t.Errorf("warning = %q, want height complaint", warnings[0].Message)
	}
	if warnings[0].SurfaceID != "w1" {
		t.Errorf("SurfaceID = %s, want w1", warnings[0].SurfaceID)
	}
}

func TestValidateFloorUsesDepthAxis(t *testing.T) {
	s := Snapshot{Floors: []Surface{{
		ID:         "f1",
		Kind:       KindFloor,
		Dimensions: geom.Vec3{X: 4, Y: 0, Z: 3}, // Y legitimately zero for a floor
		Transform:  geom.Identity(),
	}}}
	if warnings := Validate(s); len(warnings) != 0 {
		t.Errorf("Validate() = %v, want none (floors span X/Z)", warnings)
	}
}

func TestValidateDegeneratePolygon(t *testing.T) {
	wall := validWall("w1")
	wall.Corners = []geom.Vec3{{X: 0}, {X: 1}}
	s := Snapshot{Walls: []Surface{wall}}

	warnings := Validate(s)
	if len(warnings) != 1 {
		t.Fatalf("Validate() = %v, want 1 warning", warnings)
	}
	if !strings.Contains(warnings[0].Message, "corners") {
		t.Errorf("warning = %q", warnings[0].Message)
	}
}

func TestValidateZeroAreaFloorPolygon(t *testing.T) {
	s := Snapshot{Floors: []Surface{{
		ID:         "f1",
		Kind:       KindFloor,
		Dimensions: geom.Vec3{X: 4, Z: 3},
		Transform:  geom.Identity(),
		Corners:    []geom.Vec3{{X: 0, Z: 0}, {X: 1, Z: 1}, {X: 2, Z: 2}},
	}}}

	warnings := Validate(s)
	if len(warnings) != 1 {
		t.Fatalf("Validate() = %v, want 1 warning", warnings)
	}
	if !strings.Contains(warnings[0].Message, "fallback") {
		t.Errorf("warning = %q", warnings[0].Message)
	}
}

func TestValidateDanglingParentRef(t *testing.T) {
	missing := SurfaceID("no-such-wall")
	s := Snapshot{
		Walls: []Surface{validWall("w1")},
		Windows: []Surface{{
			ID:         "win1",
			Kind:       KindWindow,
			Dimensions: geom.Vec3{X: 1.2, Y: 1},
			Transform:  geom.Identity(),
			ParentID:   &missing,
		}},
	}

	warnings := Validate(s)
	if len(warnings) != 1 {
		t.Fatalf("Validate() = %v, want 1 warning", warnings)
	}
	if warnings[0].SurfaceID != "win1" {
		t.Errorf("SurfaceID = %s, want win1", warnings[0].SurfaceID)
	}
}

func TestValidateNilParentNotFlagged(t *testing.T) {
	s := Snapshot{
		Doors: []Surface{{
			ID:         "d1",
			Kind:       KindDoor,
			Dimensions: geom.Vec3{X: 0.9, Y: 2},
			Transform:  geom.Identity(),
		}},
	}
	if warnings := Validate(s); len(warnings) != 0 {
		t.Errorf("Validate() = %v, want none (nil parent is legitimate)", warnings)
	}
}

func TestValidateMultipleFloors(t *testing.T) {
	floor := Surface{
		ID:         "f1",
		Kind:       KindFloor,
		Dimensions: geom.Vec3{X: 4, Z: 3},
		Transform:  geom.Identity(),
	}
	second := floor
	second.ID = "f2"
	s := Snapshot{Floors: []Surface{floor, second}}

	warnings := Validate(s)
	if len(warnings) != 1 {
		t.Fatalf("Validate() = %v, want 1 warning", warnings)
	}
	if !strings.Contains(warnings[0].Message, "first") {
		t.Errorf("warning = %q", warnings[0].Message)
	}
}

func TestSnapshotCounts(t *testing.T) {
	s := Snapshot{
		Walls:   []Surface{validWall("w1")},
		Windows: []Surface{{ID: "win1", Kind: KindWindow, Dimensions: geom.Vec3{X: 1, Y: 1}}},
	}
	if s.SurfaceCount() != 2 {
		t.Errorf("SurfaceCount() = %d, want 2", s.SurfaceCount())
	}
	if s.IsEmpty() {
		t.Error("IsEmpty() = true, want false")
	}
	if !(Snapshot{}).IsEmpty() {
		t.Error("IsEmpty() = false for zero snapshot")
	}
}
