package physics

// World owns the body store, broad-phase state, and persistent contact
// store, and drives one simulation step end to end.
type World struct {
	gravity            Vec2
	velocityIterations uint32
	positionIterations uint32

	bodies []Body
	bp     *broadPhase
	store  *contactStore

	stats Stats
}

// Stats holds cumulative counters a caller can poll instead of the world
// emitting log lines from the step's hot path.
type Stats struct {
	Steps            uint64
	BroadPhasePairs  uint64
	NarrowPhaseHits  uint64
	ManifoldsCreated uint64
}

// NewWorld constructs a world. velocityIterations must be > 0;
// positionIterations may be 0 to disable position correction entirely.
// reserveCapacity pre-sizes the body store to avoid reallocation churn for
// callers that know their body count up front; it may be 0.
func NewWorld(gravity Vec2, velocityIterations, positionIterations uint32, reserveCapacity uint32) *World {
	assert(velocityIterations > 0, "velocityIterations must be > 0")

	w := &World{
		gravity:            gravity,
		velocityIterations: velocityIterations,
		positionIterations: positionIterations,
		bp:                 newBroadPhase(),
		store:              newContactStore(),
	}
	if reserveCapacity > 0 {
		w.bodies = make([]Body, 0, reserveCapacity)
	}
	return w
}

// SetVelocityIterations changes the number of velocity-solver passes per
// step. n must be > 0.
func (w *World) SetVelocityIterations(n uint32) {
	assert(n > 0, "velocityIterations must be > 0")
	w.velocityIterations = n
}

// SetPositionIterations changes the number of position-solver passes per
// step. n may be 0.
func (w *World) SetPositionIterations(n uint32) {
	w.positionIterations = n
}

// AddBody appends a new body to the store and returns its index. It
// returns (0, false) if the store already holds uint32-max bodies; the
// index in that case is not meaningful.
func (w *World) AddBody(size Vec2, mass, friction float32, position Vec2, angle float32) (BodyIndex, bool) {
	if len(w.bodies) >= int(^BodyIndex(0)) {
		return 0, false
	}
	w.bodies = append(w.bodies, newBody(size, mass, friction, position, angle))
	return BodyIndex(len(w.bodies) - 1), true
}

// Clear empties the body store and the contact store and resets the
// broad-phase. Gravity, the iteration counts, and the cumulative Stats
// counters are kept.
func (w *World) Clear() {
	w.bodies = w.bodies[:0]
	w.bp = newBroadPhase()
	w.store.clear()
}

// NumBodies returns the number of live bodies.
func (w *World) NumBodies() int { return len(w.bodies) }

// Body returns a pointer to body i for direct inspection or mutation
// between steps.
func (w *World) Body(i BodyIndex) *Body { return &w.bodies[i] }

// Bodies returns the live body slice. Callers must not resize it; use
// AddBody to grow the store.
func (w *World) Bodies() []Body { return w.bodies }

// AABB returns the broad-phase's last-computed bounding box for body i.
func (w *World) AABB(i BodyIndex) (AABB, bool) { return w.bp.AABB(i) }

// Manifolds visits every live persistent contact manifold, stopping early
// if fn returns false.
func (w *World) Manifolds(fn func(*ContactManifold) bool) { w.store.each(fn) }

// NumManifolds returns the number of live persistent contact manifolds.
func (w *World) NumManifolds() int { return w.store.len() }

// Stats returns the world's cumulative step counters.
func (w *World) Stats() Stats { return w.stats }

// Step advances the simulation by dt seconds: apply gravity, refresh
// contacts, warm-start and solve velocities, integrate poses, then correct
// residual penetration.
func (w *World) Step(dt float32) {
	assert(dt > 0, "dt must be > 0")
	w.stats.Steps++

	for i := range w.bodies {
		if !w.bodies[i].IsStatic() {
			w.bodies[i].applyGravity(w.gravity, dt)
		}
	}

	w.store.markAllObsolete()

	w.bp.update(w.bodies, func(a, b BodyIndex) {
		w.stats.BroadPhasePairs++
		w.collide(a, b)
	})

	w.store.reapObsolete()

	// Snapshot the active manifolds once: every pass below must walk them
	// in the same order, since sequential impulses accumulate pass to
	// pass, but a fresh map range per pass could reshuffle that order.
	active := w.store.active()

	for _, m := range active {
		m.prepareToSolve(&w.bodies[m.bodyIndA], &w.bodies[m.bodyIndB])
	}

	for iter := uint32(0); iter < w.velocityIterations; iter++ {
		for _, m := range active {
			m.solveVelocities(&w.bodies[m.bodyIndA], &w.bodies[m.bodyIndB])
		}
	}

	for i := range w.bodies {
		if !w.bodies[i].IsStatic() {
			w.bodies[i].integrate(dt)
		}
	}

	for iter := uint32(0); iter < w.positionIterations; iter++ {
		for _, m := range active {
			m.solvePositions(&w.bodies[m.bodyIndA], &w.bodies[m.bodyIndB])
		}
	}
}

// collide runs the narrow-phase for one broad-phase candidate pair (a < b)
// and, if it produces at least one contact point, inserts or updates the
// pair's persistent manifold.
func (w *World) collide(a, b BodyIndex) {
	bodyA := &w.bodies[a]
	bodyB := &w.bodies[b]

	positions := [2]Vec2{bodyA.position, bodyB.position}
	rotations := [2]Rotation{bodyA.rotation, bodyB.rotation}
	halfSizes := [2]Vec2{bodyA.halfSize, bodyB.halfSize}

	var points [maxCollisionPoints]CollisionPoint
	count := boxBoxCollision(positions, rotations, halfSizes, &points)
	if count == 0 {
		return
	}

	w.stats.NarrowPhaseHits++

	cm := &CollisionManifold{
		BodyIndA:    a,
		BodyIndB:    b,
		Points:      points,
		PointsCount: count,
	}
	if w.store.updateOrInsert(bodyA, bodyB, a, b, cm) {
		w.stats.ManifoldsCreated++
	}
}
