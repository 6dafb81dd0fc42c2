package dimension

import (
	"math"
	"testing"

	"roomscan/pkg/geom"
	"roomscan/pkg/scan"
)

func TestProcessOpenings(t *testing.T) {
	parent := scan.SurfaceID("wall-7")
	openings := []scan.Surface{
		{
			ID:         "door-1",
			Kind:       scan.KindDoor,
			Dimensions: geom.Vec3{X: 0.9, Y: 2.0},
			Transform:  geom.Identity(),
			ParentID:   &parent,
		},
		{
			ID:         "door-2",
			Kind:       scan.KindDoor,
			Dimensions: geom.Vec3{X: 0.8, Y: 2.1},
			Transform:  geom.Identity(),
		},
	}

	got := ProcessOpenings(openings, OpeningDoor)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}

	first := got[0]
	if first.Kind != OpeningDoor {
		t.Errorf("Kind = %v, want door", first.Kind)
	}
	if math.Abs(first.Area-1.8) > 1e-12 {
		t.Errorf("Area = %v, want 1.8", first.Area)
	}
	if first.ParentWallID == nil || *first.ParentWallID != "wall-7" {
		t.Errorf("ParentWallID = %v, want wall-7", first.ParentWallID)
	}

	// Absent parent association must stay absent, not become a sentinel.
	if got[1].ParentWallID != nil {
		t.Errorf("ParentWallID = %v, want nil", got[1].ParentWallID)
	}
}

func TestProcessOpeningsEmpty(t *testing.T) {
	if got := ProcessOpenings(nil, OpeningWindow); len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestOpeningKindString(t *testing.T) {
	tests := []struct {
		kind OpeningKind
		want string
	}{
		{OpeningDoor, "door"},
		{OpeningWindow, "window"},
		{OpeningGeneric, "opening"},
		{OpeningKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestProcessWallsRecomputesArea(t *testing.T) {
	walls := []scan.Surface{
		{
			ID:         "w1",
			Kind:       scan.KindWall,
			Dimensions: geom.Vec3{X: 3.5, Y: 2.4},
			Transform:  geom.NewTranslation(geom.Vec3{X: 1, Y: 1.2, Z: 0}),
			Confidence: scan.ConfidenceMedium,
			Curved:     true,
		},
	}
	got := ProcessWalls(walls)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	w := got[0]
	if want := 3.5 * 2.4; w.Area != want {
		t.Errorf("Area = %v, want %v", w.Area, want)
	}
	if !w.IsCurved {
		t.Error("IsCurved = false, want true")
	}
	if w.Confidence != scan.ConfidenceMedium {
		t.Errorf("Confidence = %v", w.Confidence)
	}
	if w.Position() != (geom.Vec3{X: 1, Y: 1.2, Z: 0}) {
		t.Errorf("Position() = %v", w.Position())
	}
}
