package physics

// getEffectiveMass, applyContactImpulse, and the per-contact
// prepareToSolve/solveVelocities pair implement the sequential-impulse
// velocity solver.

// getEffectiveMass computes the effective mass along direction d for two
// bodies with contact arms armA, armB.
func getEffectiveMass(a, b *Body, armA, armB, d Vec2) float32 {
	crossA := armA.Cross(d)
	crossB := armB.Cross(d)
	invResult := a.invMass + b.invMass +
		a.invInertia*crossA*crossA +
		b.invInertia*crossB*crossB
	return 1 / invResult
}

// applyContactImpulse applies impulse at arm r to body b (v += invMass*J,
// w += invInertia*(r x J)); the caller negates impulse for the other body.
func applyContactImpulse(b *Body, r, impulse Vec2) {
	b.linearVelocity = b.linearVelocity.Add(impulse.Scale(b.invMass))
	b.angularVelocity += b.invInertia * r.Cross(impulse)
}

func (c *ContactPoint) velocityAtContact(a, b *Body) Vec2 {
	return b.linearVelocity.Add(CrossSV(b.angularVelocity, c.offsetB)).
		Sub(a.linearVelocity).
		Sub(CrossSV(a.angularVelocity, c.offsetA))
}

// prepareToSolve computes offsets and effective masses from the bodies'
// current poses and applies last frame's warm-start impulse.
func (c *ContactPoint) prepareToSolve(a, b *Body) {
	c.offsetA = c.point.Position.Sub(a.position)
	c.offsetB = c.point.Position.Sub(b.position)

	c.normalMass = getEffectiveMass(a, b, c.offsetA, c.offsetB, c.point.Normal)
	c.tangent = CrossVS(c.point.Normal, 1)
	c.tangentMass = getEffectiveMass(a, b, c.offsetA, c.offsetB, c.tangent)

	warmImpulse := c.point.Normal.Scale(c.normalImpulse).Add(c.tangent.Scale(c.tangentImpulse))
	applyContactImpulse(a, c.offsetA, warmImpulse.Neg())
	applyContactImpulse(b, c.offsetB, warmImpulse)
}

// solveVelocities runs one sequential-impulse pass for the normal and
// friction constraints.
func (c *ContactPoint) solveVelocities(a, b *Body, friction float32) {
	assert(friction >= 0 && friction <= 1, "friction must be in [0, 1]")

	{
		vRel := c.velocityAtContact(a, b)
		lambda := -c.normalMass * vRel.Dot(c.point.Normal)

		old := c.normalImpulse
		c.normalImpulse = maxF(0, old+lambda)
		delta := c.point.Normal.Scale(c.normalImpulse - old)
		applyContactImpulse(a, c.offsetA, delta.Neg())
		applyContactImpulse(b, c.offsetB, delta)
	}

	{
		maxFriction := friction * c.normalImpulse
		vRel := c.velocityAtContact(a, b)
		lambda := -c.tangentMass * vRel.Dot(c.tangent)

		old := c.tangentImpulse
		c.tangentImpulse = clampF(old+lambda, -maxFriction, maxFriction)
		delta := c.tangent.Scale(c.tangentImpulse - old)
		applyContactImpulse(a, c.offsetA, delta.Neg())
		applyContactImpulse(b, c.offsetB, delta)
	}
}

// prepareToSolve and solveVelocities apply each contact point's step to
// every point in the manifold, sharing the manifold's cached friction.
func (m *ContactManifold) prepareToSolve(a, b *Body) {
	for i := 0; i < m.pointsCount; i++ {
		m.points[i].prepareToSolve(a, b)
	}
}

func (m *ContactManifold) solveVelocities(a, b *Body) {
	for i := 0; i < m.pointsCount; i++ {
		m.points[i].solveVelocities(a, b, m.friction)
	}
}

