package physics

// AABB is an axis-aligned bounding box, immutable once constructed.
// Invariant: Min <= Max componentwise.
type AABB struct {
	Min, Max Vec2
}

func NewAABB(min, max Vec2) AABB {
	assert(min.X <= max.X && min.Y <= max.Y, "AABB min must be <= max")
	return AABB{Min: min, Max: max}
}

// Overlaps reports whether two AABBs intersect, including edges that touch
// exactly. This is a plain interval overlap test; the broad-phase's own
// touching-is-not-overlapping tie-break lives in its sweep-and-prune sort
// order instead of here.
func (a AABB) Overlaps(b AABB) bool {
	return a.Min.X <= b.Max.X && b.Min.X <= a.Max.X &&
		a.Min.Y <= b.Max.Y && b.Min.Y <= a.Max.Y
}

// boxAABB computes the world-space AABB of an oriented box: the
// world-aligned half-extents are |R|*h, so the box is
// (p - |R|h, p + |R|h). This is bit-exact for axis-aligned inputs (|R|
// reduces to the identity) and stable under small rotations.
func boxAABB(position Vec2, rotation Rotation, halfSize Vec2) AABB {
	extent := rotation.AbsMul(halfSize)
	return AABB{
		Min: position.Sub(extent),
		Max: position.Add(extent),
	}
}
