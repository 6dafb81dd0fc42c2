// Package mesher turns a scan snapshot into triangle meshes using a
// geometry kernel, one mesh per captured surface, for preview and export.
// It is read-only over the snapshot and independent of dimension
// extraction.
package mesher

import (
	"fmt"

	"roomscan/pkg/kernel"
	"roomscan/pkg/scan"
)

// surfaceThickness is the slab thickness given to planar surfaces so they
// mesh as solids, in meters.
const surfaceThickness = 0.02

// MeshSnapshot builds one mesh per surface in the snapshot, in snapshot
// order (walls, floors, ceilings, doors, windows). Surfaces with no
// positive extent are skipped rather than meshed as empty solids.
func MeshSnapshot(s scan.Snapshot, k kernel.Kernel) ([]*kernel.Mesh, error) {
	groups := [][]scan.Surface{s.Walls, s.Floors, s.Ceilings, s.Doors, s.Windows}

	var meshes []*kernel.Mesh
	for _, group := range groups {
		for _, sf := range group {
			if !meshable(sf) {
				continue
			}
			m, err := meshSurface(sf, k)
			if err != nil {
				return nil, fmt.Errorf("mesher: surface %s: %w", sf.ID, err)
			}
			meshes = append(meshes, m)
		}
	}
	return meshes, nil
}

// meshable reports whether the surface spans a positive planar extent.
func meshable(sf scan.Surface) bool {
	if sf.Kind == scan.KindFloor || sf.Kind == scan.KindCeiling {
		return sf.Dimensions.X > 0 && sf.Dimensions.Z > 0
	}
	return sf.Dimensions.X > 0 && sf.Dimensions.Y > 0
}

// meshSurface builds a thin box for the surface and places it by its pose:
// rotation first, then translation, mirroring how the capture system
// composes the transform.
func meshSurface(sf scan.Surface, k kernel.Kernel) (*kernel.Mesh, error) {
	var solid kernel.Solid
	switch sf.Kind {
	case scan.KindFloor, scan.KindCeiling:
		// Horizontal surfaces span X/Z and get their thickness along Y.
		solid = k.Box(sf.Dimensions.X, surfaceThickness, sf.Dimensions.Z)
	default:
		solid = k.Box(sf.Dimensions.X, sf.Dimensions.Y, surfaceThickness)
	}

	rx, ry, rz := sf.Transform.EulerAngles()
	if rx != 0 || ry != 0 || rz != 0 {
		solid = k.Rotate(solid, rx, ry, rz)
	}

	t := sf.Transform.Translation()
	if t.X != 0 || t.Y != 0 || t.Z != 0 {
		solid = k.Translate(solid, t.X, t.Y, t.Z)
	}

	mesh, err := k.ToMesh(solid)
	if err != nil {
		return nil, fmt.Errorf("mesh: %w", err)
	}
	mesh.Name = string(sf.ID)
	return mesh, nil
}
