// Package physics implements a 2D rigid-body simulation core: an
// impulse-based constraint solver with persistent contact manifolds, a
// sweep-and-prune broad-phase, and an SAT-with-clipping narrow-phase for
// oriented boxes.
//
// A World owns an append-only array of bodies and drives the simulation
// one Step at a time: apply gravity, refresh broad- and narrow-phase
// contacts, warm-start and solve velocities, integrate poses, then
// correct residual penetration.
package physics
