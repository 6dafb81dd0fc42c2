// Package scan defines the captured-surface input model consumed by the
// dimension extraction engine, plus advisory validation over a snapshot.
package scan

import (
	"encoding/json"
	"fmt"

	"roomscan/pkg/geom"
)

// SurfaceID is an opaque unique identifier assigned by the capture system.
type SurfaceID string

// Kind enumerates the surface categories the capture system detects.
type Kind int

const (
	KindWall Kind = iota
	KindFloor
	KindCeiling
	KindDoor
	KindWindow
	KindOpening // uncategorized opening in a wall
)

func (k Kind) String() string {
	switch k {
	case KindWall:
		return "wall"
	case KindFloor:
		return "floor"
	case KindCeiling:
		return "ceiling"
	case KindDoor:
		return "door"
	case KindWindow:
		return "window"
	case KindOpening:
		return "opening"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the kind as its wire name ("wall", "floor", ...).
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *Kind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "wall":
		*k = KindWall
	case "floor":
		*k = KindFloor
	case "ceiling":
		*k = KindCeiling
	case "door":
		*k = KindDoor
	case "window":
		*k = KindWindow
	case "opening":
		*k = KindOpening
	default:
		return fmt.Errorf("unknown surface kind %q", s)
	}
	return nil
}

// Confidence is the coarse reliability label the capture system attaches
// to a detected surface.
type Confidence int

const (
	ConfidenceLow Confidence = iota
	ConfidenceMedium
	ConfidenceHigh
)

func (c Confidence) String() string {
	switch c {
	case ConfidenceLow:
		return "low"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceHigh:
		return "high"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the confidence as its wire name ("low", "medium",
// "high").
func (c Confidence) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Confidence) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "low":
		*c = ConfidenceLow
	case "medium":
		*c = ConfidenceMedium
	case "high":
		*c = ConfidenceHigh
	default:
		return fmt.Errorf("unknown confidence %q", s)
	}
	return nil
}

// Surface is a single planar detection produced by the capture system.
// It is fully populated before extraction runs and never mutated after.
//
// Dimensions holds the surface extents in meters, axis-aligned to the
// surface's local pose: X is width, Y is height, Z is depth (floors carry
// their second planar extent in Z).
type Surface struct {
	ID         SurfaceID   `json:"id"`
	Kind       Kind        `json:"kind"`
	Dimensions geom.Vec3   `json:"dimensions"`
	Transform  geom.Mat4   `json:"transform"`
	Confidence Confidence  `json:"confidence"`
	Curved     bool        `json:"curved,omitempty"`
	Corners    []geom.Vec3 `json:"corners,omitempty"`
	// ParentID links an opening to the wall it punctures. Nil when the
	// capture system could not associate the opening with a wall.
	ParentID *SurfaceID `json:"parent_id,omitempty"`
}

// Position returns the surface pose's translation component.
func (s Surface) Position() geom.Vec3 {
	return s.Transform.Translation()
}

// Snapshot is the finalized, pre-partitioned set of surfaces for one room.
// Callers snapshot the raw scan state once and hand it to extraction;
// the engine never holds a reference past the call's return.
type Snapshot struct {
	Walls    []Surface `json:"walls"`
	Floors   []Surface `json:"floors"`
	Ceilings []Surface `json:"ceilings,omitempty"`
	Doors    []Surface `json:"doors"`
	Windows  []Surface `json:"windows"`
}

// SurfaceCount returns the total number of surfaces in the snapshot.
func (s Snapshot) SurfaceCount() int {
	return len(s.Walls) + len(s.Floors) + len(s.Ceilings) + len(s.Doors) + len(s.Windows)
}

// IsEmpty reports whether the snapshot contains no surfaces at all.
func (s Snapshot) IsEmpty() bool {
	return s.SurfaceCount() == 0
}
