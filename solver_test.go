package physics

import (
	"math"
	"testing"
)

func TestContactPoint_SolveVelocitiesClampsNormalImpulseNonNegative(t *testing.T) {
	bodyA := newBody(Vec2{1, 1}, 1, 0, Vec2{0, 0}, 0)
	bodyB := newBody(Vec2{1, 1}, 1, 0, Vec2{1, 0}, 0)
	// Bodies separating: no impulse should accumulate below zero.
	bodyA.SetLinearVelocity(Vec2{-1, 0})
	bodyB.SetLinearVelocity(Vec2{1, 0})

	cp := newContactPoint(CollisionPoint{
		Position: Vec2{0.5, 0},
		Normal:   Vec2{1, 0},
	})
	cp.prepareToSolve(&bodyA, &bodyB)
	cp.solveVelocities(&bodyA, &bodyB, 0)

	if cp.normalImpulse < 0 {
		t.Errorf("normalImpulse = %v, want >= 0", cp.normalImpulse)
	}
}

func TestContactPoint_SolveVelocitiesMomentumSymmetric(t *testing.T) {
	bodyA := newBody(Vec2{1, 1}, 1, 0, Vec2{0, 0}, 0)
	bodyB := newBody(Vec2{1, 1}, 1, 0, Vec2{1, 0}, 0)
	bodyA.SetLinearVelocity(Vec2{1, 0})
	bodyB.SetLinearVelocity(Vec2{-1, 0})

	cp := newContactPoint(CollisionPoint{
		Position: Vec2{0.5, 0},
		Normal:   Vec2{1, 0},
	})
	cp.prepareToSolve(&bodyA, &bodyB)

	pBefore := bodyA.LinearVelocity().Scale(bodyA.Mass()).Add(bodyB.LinearVelocity().Scale(bodyB.Mass()))
	cp.solveVelocities(&bodyA, &bodyB, 0)
	pAfter := bodyA.LinearVelocity().Scale(bodyA.Mass()).Add(bodyB.LinearVelocity().Scale(bodyB.Mass()))

	if diff := pAfter.Sub(pBefore).Length(); diff > 1e-4 {
		t.Errorf("linear momentum changed by %v, want ~0", diff)
	}
}

func TestContactPoint_FrictionClampedToNormalCone(t *testing.T) {
	bodyA := newBody(Vec2{1, 1}, 1, 0.5, Vec2{0, 0}, 0)
	bodyB := newBody(Vec2{1, 1}, 0, 0.5, Vec2{0, -1}, 0) // static floor
	bodyA.SetLinearVelocity(Vec2{100, 0})                // huge tangential slide

	cp := newContactPoint(CollisionPoint{
		Position: Vec2{0, -0.5},
		Normal:   Vec2{0, 1},
	})
	cp.prepareToSolve(&bodyA, &bodyB)
	for i := 0; i < 10; i++ {
		cp.solveVelocities(&bodyA, &bodyB, 0.5)
	}

	limit := 0.5 * cp.normalImpulse
	if cp.tangentImpulse > limit+1e-4 || cp.tangentImpulse < -limit-1e-4 {
		t.Errorf("tangentImpulse = %v outside cone [%v, %v]", cp.tangentImpulse, -limit, limit)
	}
}

func TestGetEffectiveMass_InfiniteAgainstStaticIsFinite(t *testing.T) {
	dyn := newBody(Vec2{1, 1}, 1, 0, Vec2{}, 0)
	static := newBody(Vec2{1, 1}, 0, 0, Vec2{}, 0)

	m := getEffectiveMass(&dyn, &static, Vec2{0.5, 0}, Vec2{-0.5, 0}, Vec2{1, 0})
	if m <= 0 || math.IsInf(float64(m), 0) {
		t.Errorf("effective mass = %v, want finite and > 0", m)
	}
}
