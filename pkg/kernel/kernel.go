// Package kernel defines the abstract solid-geometry kernel interface
// used to turn captured planar surfaces into exportable solids. The
// abstraction keeps the mesher independent of the backing CAD library.
package kernel

// Solid is an opaque handle to a geometry kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract geometry kernel interface.
type Kernel interface {
	// Box creates a box centered at the origin with the given extents.
	// Captured surfaces are centered on their pose, so the primitive is
	// center-origin rather than corner-origin.
	Box(x, y, z float64) Solid

	// Union combines two solids.
	Union(a, b Solid) Solid

	// Transforms
	Translate(s Solid, x, y, z float64) Solid
	Rotate(s Solid, x, y, z float64) Solid // Euler angles in degrees

	// Mesh output
	ToMesh(s Solid) (*Mesh, error)
}
