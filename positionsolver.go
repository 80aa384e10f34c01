package physics

// transformedContact and solvePositions implement the position solver:
// direct pose correction after velocity integration, using the persisted
// local contact data rather than re-running narrow-phase.

// transformedContact recomputes contact position, world normal, and
// penetration from the bodies' current poses using the persisted local
// contact data, rather than re-running the narrow-phase.
func (c *ContactPoint) transformedContact(a, b *Body) (normal, planePoint, clippedPoint Vec2, penetration float32) {
	positions := [2]Vec2{a.position, b.position}
	rotations := [2]Rotation{a.rotation, b.rotation}

	ind1 := c.point.ClipBoxIndex
	ind2 := 1 - ind1

	clippedPoint = positions[ind2].Add(rotations[ind2].Mul(c.point.LocalPoints[ind2]))
	normal = rotations[ind1].Mul(c.point.LocalContactNormal)
	planePoint = positions[ind1].Add(rotations[ind1].Mul(c.point.LocalPoints[ind1]))

	penetration = planePoint.Sub(clippedPoint).Dot(normal)

	if ind1 != 0 {
		normal = normal.Neg()
	}
	return normal, planePoint, clippedPoint, penetration
}

// solvePositions corrects residual penetration by moving poses directly,
// decoupled from velocity (Baumgarte stabilization with an allowed-slop
// term to avoid fighting normal jitter).
func (c *ContactPoint) solvePositions(a, b *Body) {
	const positionCorrectionFactor = 0.2
	const allowedPenetration = 0.001

	normal, planePoint, _, penetration := c.transformedContact(a, b)

	bias := maxF(0, positionCorrectionFactor*(penetration-allowedPenetration))

	armA := planePoint.Sub(a.position)
	armB := planePoint.Sub(b.position)
	mEff := getEffectiveMass(a, b, armA, armB, normal)

	j := normal.Scale(maxF(0, mEff*bias))

	a.position = a.position.Sub(j.Scale(a.invMass))
	a.SetAngle(a.rotation.Angle() - a.invInertia*armA.Cross(j))

	b.position = b.position.Add(j.Scale(b.invMass))
	b.SetAngle(b.rotation.Angle() + b.invInertia*armB.Cross(j))
}

// solvePositions runs one position-correction pass over every contact
// point in the manifold.
func (m *ContactManifold) solvePositions(a, b *Body) {
	for i := 0; i < m.pointsCount; i++ {
		m.points[i].solvePositions(a, b)
	}
}

