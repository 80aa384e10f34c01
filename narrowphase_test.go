package physics

import "testing"

func TestBoxBoxCollision_OverlappingAlongX(t *testing.T) {
	positions := [2]Vec2{{0, 0}, {1.5, 0}}
	rotations := [2]Rotation{NewRotation(0), NewRotation(0)}
	halfSizes := [2]Vec2{{1, 1}, {1, 1}}

	var points [maxCollisionPoints]CollisionPoint
	count := boxBoxCollision(positions, rotations, halfSizes, &points)

	if count != 2 {
		t.Fatalf("count = %d, want 2", count)
	}
	for i := 0; i < count; i++ {
		p := points[i]
		if diff := p.Normal.Length() - 1; diff > 1e-5 || diff < -1e-5 {
			t.Errorf("point %d normal not unit length: %v", i, p.Normal)
		}
		if p.Normal.X <= 0 {
			t.Errorf("point %d normal should point from A to B (+X), got %v", i, p.Normal)
		}
		if diff := p.Penetration - 0.5; diff > 1e-4 || diff < -1e-4 {
			t.Errorf("point %d penetration = %v, want 0.5", i, p.Penetration)
		}
	}
}

func TestBoxBoxCollision_SeparatedReturnsZero(t *testing.T) {
	positions := [2]Vec2{{0, 0}, {5, 0}}
	rotations := [2]Rotation{NewRotation(0), NewRotation(0)}
	halfSizes := [2]Vec2{{1, 1}, {1, 1}}

	var points [maxCollisionPoints]CollisionPoint
	count := boxBoxCollision(positions, rotations, halfSizes, &points)
	if count != 0 {
		t.Fatalf("count = %d, want 0", count)
	}
}

func TestBoxBoxCollision_ExactlyTouchingReturnsZero(t *testing.T) {
	// Boxes of half-extent 1 centred at x=0 and x=2 touch with zero
	// overlap: no contact should be reported.
	positions := [2]Vec2{{0, 0}, {2, 0}}
	rotations := [2]Rotation{NewRotation(0), NewRotation(0)}
	halfSizes := [2]Vec2{{1, 1}, {1, 1}}

	var points [maxCollisionPoints]CollisionPoint
	count := boxBoxCollision(positions, rotations, halfSizes, &points)
	if count != 0 {
		t.Fatalf("count = %d, want 0", count)
	}
}

func TestBoxBoxCollision_FeaturePairsCanonicalized(t *testing.T) {
	positions := [2]Vec2{{0, 0}, {1.5, 0}}
	rotations := [2]Rotation{NewRotation(0), NewRotation(0)}
	halfSizes := [2]Vec2{{1, 1}, {1, 1}}

	var points [maxCollisionPoints]CollisionPoint
	count := boxBoxCollision(positions, rotations, halfSizes, &points)
	for i := 0; i < count; i++ {
		fp := points[i].FeaturePair
		if fp[0] != fp[1] && fp[1].Less(fp[0]) {
			t.Errorf("point %d feature pair not canonicalized: %v", i, fp)
		}
	}
}

func TestBoxBoxCollision_SymmetricUnderSwap(t *testing.T) {
	// Swapping the two boxes should flip the reported normal but leave
	// the count and penetration the same, since the algorithm treats its
	// two inputs by position rather than by fixed role.
	positions := [2]Vec2{{0, 0}, {1.5, 0}}
	swapped := [2]Vec2{{1.5, 0}, {0, 0}}
	rotations := [2]Rotation{NewRotation(0), NewRotation(0)}
	halfSizes := [2]Vec2{{1, 1}, {1, 1}}

	var a, b [maxCollisionPoints]CollisionPoint
	countA := boxBoxCollision(positions, rotations, halfSizes, &a)
	countB := boxBoxCollision(swapped, rotations, halfSizes, &b)

	if countA != countB {
		t.Fatalf("counts differ: %d vs %d", countA, countB)
	}
	for i := 0; i < countA; i++ {
		if diff := b[i].Normal.Add(a[i].Normal).Length(); diff > 1e-5 {
			t.Errorf("point %d normal not flipped under swap: %v vs %v", i, a[i].Normal, b[i].Normal)
		}
		if diff := b[i].Penetration - a[i].Penetration; diff > 1e-5 || diff < -1e-5 {
			t.Errorf("point %d penetration differs under swap: %v vs %v", i, a[i].Penetration, b[i].Penetration)
		}
	}
}
