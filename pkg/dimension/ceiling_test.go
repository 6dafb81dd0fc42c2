package dimension

import (
	"math"
	"testing"
)

func TestEstimateCeilingDefaultHeight(t *testing.T) {
	got := EstimateCeiling(nil)
	if got.Height != DefaultCeilingHeight {
		t.Errorf("Height = %v, want default %v", got.Height, DefaultCeilingHeight)
	}
	if got.Area != 0 {
		t.Errorf("Area = %v, want 0", got.Area)
	}
}

// TestEstimateCeilingFirstWallHeuristic documents that only the first
// wall's height is trusted, even when later walls disagree.
func TestEstimateCeilingFirstWallHeuristic(t *testing.T) {
	walls := []WallDimension{
		{ID: "a", Width: 3, Height: 2.5, Area: 7.5},
		{ID: "b", Width: 3, Height: 2.9, Area: 8.7},
	}
	got := EstimateCeiling(walls)
	if got.Height != 2.5 {
		t.Errorf("Height = %v, want first wall height 2.5", got.Height)
	}
}

func TestEstimateCeilingNegativeHeightAbsoluteValued(t *testing.T) {
	walls := []WallDimension{{ID: "a", Width: 3, Height: -2.4, Area: 7.2}}
	got := EstimateCeiling(walls)
	if got.Height != 2.4 {
		t.Errorf("Height = %v, want 2.4 (absolute value)", got.Height)
	}
}

// TestEstimateCeilingApproximateArea documents the quarter-of-wall-area
// approximation; the result is not a physically measured ceiling.
func TestEstimateCeilingApproximateArea(t *testing.T) {
	walls := []WallDimension{
		{Area: 7.2},
		{Area: 7.2},
		{Area: 9.6},
		{Area: 9.6},
	}
	got := EstimateCeiling(walls)
	if want := (7.2 + 7.2 + 9.6 + 9.6) / 4; math.Abs(got.Area-want) > 1e-12 {
		t.Errorf("Area = %v, want %v", got.Area, want)
	}
}
