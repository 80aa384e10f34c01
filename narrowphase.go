package physics

import "math"

// maxCollisionPoints is the most contact points a single box-box overlap
// can produce: clipping an edge against two side planes leaves at most two
// surviving endpoints.
const maxCollisionPoints = 2

// GeometryFeature names one edge of one of the two boxes in a collision.
// GeometryIndex is 0 or 1 (which box); EdgeIndex is 0..3 following the
// e0=top, e1=left, e2=bottom, e3=right convention.
type GeometryFeature struct {
	GeometryIndex uint8
	EdgeIndex     uint8
}

// Less orders features lexicographically by (geometryIndex, edgeIndex), the
// order featurePair canonicalization relies on.
func (f GeometryFeature) Less(other GeometryFeature) bool {
	if f.GeometryIndex != other.GeometryIndex {
		return f.GeometryIndex < other.GeometryIndex
	}
	return f.EdgeIndex < other.EdgeIndex
}

// FeaturePair identifies the two box edges that met at a contact point. It
// is the warm-start matching key between successive frames.
type FeaturePair [2]GeometryFeature

// CollisionPoint is one point of narrow-phase output.
type CollisionPoint struct {
	Position    Vec2
	Normal      Vec2 // unit length, points from body A to body B
	Penetration float32
	FeaturePair FeaturePair

	// ClipBoxIndex is which of the two boxes (0 or 1) supplied the
	// reference face. LocalPoints holds the contact in each box's own
	// local frame; LocalContactNormal is the reference normal in the
	// reference box's local frame. Together these let the position
	// solver rebuild penetration from the bodies' current poses without
	// re-running SAT.
	ClipBoxIndex       uint8
	LocalPoints        [2]Vec2
	LocalContactNormal Vec2
}

// CollisionManifold is the narrow-phase's per-pair result: up to two
// contact points between bodyIndA and bodyIndB with bodyIndA < bodyIndB.
type CollisionManifold struct {
	BodyIndA, BodyIndB BodyIndex
	Points             [maxCollisionPoints]CollisionPoint
	PointsCount        int
}

// vertexSigns gives the corner sign pattern for v0..v3 of a box, matching
// the e0=top/e1=left/e2=bottom/e3=right edge convention.
var vertexSigns = [4][2]float32{
	{1, 1},
	{-1, 1},
	{-1, -1},
	{1, -1},
}

// clippedPoint is an edge endpoint carried through the Sutherland-Hodgman
// clip against the reference box's side planes.
type clippedPoint struct {
	position    Vec2
	featurePair FeaturePair
}

type clippedEdge [2]clippedPoint

// plane is a signed half-space test used to clip the incident edge: points
// with getDistance <= 0 are kept.
type plane struct {
	normal Vec2
	offset float32
}

func newPlane(normal, origin Vec2, extraOffset float32) plane {
	return plane{normal: normal, offset: normal.Dot(origin) + extraOffset}
}

func (p plane) getDistance(point Vec2) float32 {
	return p.normal.Dot(point) - p.offset
}

// clipEdgeByPlane clips source by clipPlane, writing the surviving (or
// newly interpolated) points into target. It reports whether two points
// survived. An interpolated point keeps the feature of the endpoint inside
// the half-space and overwrites the outside endpoint's feature with
// (clipBody, clipAxisInd).
func clipEdgeByPlane(source clippedEdge, clipPlane plane, clipBody, clipAxisInd uint8, target *clippedEdge) bool {
	var distances [2]float32
	pointCount := 0
	for pi := 0; pi < 2; pi++ {
		distances[pi] = clipPlane.getDistance(source[pi].position)
		if distances[pi] <= 0 {
			target[pointCount] = source[pi]
			pointCount++
		}
	}

	if pointCount == 1 && distances[0]*distances[1] < 0 {
		lerpFactor := distances[0] / (distances[0] - distances[1])
		point := clippedPoint{
			position: source[0].position.Lerp(source[1].position, lerpFactor),
		}

		var pi int
		if distances[0] <= 0 {
			pi = 1
		}
		point.featurePair = source[pi].featurePair
		point.featurePair[pi] = GeometryFeature{GeometryIndex: clipBody, EdgeIndex: clipAxisInd}

		target[pointCount] = point
		pointCount++
	}

	return pointCount == 2
}

// boxBoxCollision implements the SAT + Sutherland-Hodgman clipping pipeline
// for two oriented boxes given as (position, rotation, half-size) triples.
// It returns the number of contact points written into result (0, 1, or 2).
func boxBoxCollision(positions [2]Vec2, rotations [2]Rotation, halfSizes [2]Vec2, result *[maxCollisionPoints]CollisionPoint) int {
	assert(halfSizes[0].X > 0 && halfSizes[0].Y > 0, "box half-size must be positive")
	assert(halfSizes[1].X > 0 && halfSizes[1].Y > 0, "box half-size must be positive")

	// Step 1: find the minimum-penetration axis, or bail out on a
	// separating axis. relRotation01 = R0^T*R1 and relRotation10 = R1^T*R0
	// are transposes of each other; |relRotation10| is what box 0's loop
	// iteration needs to project box 1's half-size into box 0's frame, and
	// vice versa.
	var clipBoxInd, clipAxisInd uint8
	var minPenetrationDir Vec2
	{
		centersVec := positions[1].Sub(positions[0])
		relRotation01 := rotations[0].TMulRotation(rotations[1])
		relRotation10 := rotations[1].TMulRotation(rotations[0])

		minPenetration := float32(math.MaxFloat32)
		for bi := uint8(0); bi < 2; bi++ {
			other := 1 - bi

			var otherBoxProjections Vec2
			if bi == 0 {
				otherBoxProjections = rotations[bi].MulT(centersVec).Abs().Sub(relRotation10.AbsMul(halfSizes[other]))
			} else {
				otherBoxProjections = rotations[bi].MulT(centersVec).Abs().Sub(relRotation01.AbsMul(halfSizes[other]))
			}

			penetrations := halfSizes[bi].Sub(otherBoxProjections)

			for ai := uint8(0); ai < 2; ai++ {
				p := component(penetrations, ai)
				// An axis with zero or negative overlap is separating —
				// boxes that merely touch produce no contact.
				if p <= 0 {
					return 0
				}
				if p < minPenetration {
					minPenetration = p
					clipBoxInd = bi
					clipAxisInd = ai
				}
			}
		}

		minPenetrationDir = rotations[clipBoxInd].Column(clipAxisInd)
		if minPenetrationDir.Dot(centersVec) < 0 {
			minPenetrationDir = minPenetrationDir.Neg()
		}
	}

	clipNormal := minPenetrationDir
	if clipBoxInd != 0 {
		clipNormal = minPenetrationDir.Neg()
	}

	// Step 2: find the incident edge on the other box.
	incidentBoxInd := 1 - clipBoxInd
	var edge clippedEdge
	{
		incidentDir := rotations[incidentBoxInd].MulT(clipNormal).Neg()

		var incidentEdge int
		if absF(incidentDir.X) > absF(incidentDir.Y) {
			if incidentDir.X > 0 {
				incidentEdge = 3
			} else {
				incidentEdge = 1
			}
		} else {
			if incidentDir.Y > 0 {
				incidentEdge = 0
			} else {
				incidentEdge = 2
			}
		}

		for pi := 0; pi < 2; pi++ {
			pointIndex := (incidentEdge + pi) % 4
			localPosition := Vec2{
				X: vertexSigns[pointIndex][0] * halfSizes[incidentBoxInd].X,
				Y: vertexSigns[pointIndex][1] * halfSizes[incidentBoxInd].Y,
			}

			var fp FeaturePair
			for fi := 0; fi < 2; fi++ {
				fp[fi] = GeometryFeature{
					GeometryIndex: incidentBoxInd,
					EdgeIndex:     uint8((pointIndex + 3 - 3*fi) % 4),
				}
			}

			edge[pi] = clippedPoint{
				position:    positions[incidentBoxInd].Add(rotations[incidentBoxInd].Mul(localPosition)),
				featurePair: fp,
			}
		}
	}

	// Step 3: clip the incident edge against the reference box's side
	// planes.
	{
		sideAxisInd := 1 - clipAxisInd
		sideNormal1 := rotations[clipBoxInd].Column(sideAxisInd)
		sideExtent := component(halfSizes[clipBoxInd], sideAxisInd)

		sideClipPlane1 := newPlane(sideNormal1, positions[clipBoxInd], sideExtent)
		sideEdge1 := 2 - clipAxisInd

		sideClipPlane2 := newPlane(sideNormal1.Neg(), positions[clipBoxInd], sideExtent)
		sideEdge2 := (sideEdge1 + 2) % 4

		var temp clippedEdge
		if !clipEdgeByPlane(edge, sideClipPlane1, clipBoxInd, sideEdge1, &temp) {
			return 0
		}
		if !clipEdgeByPlane(temp, sideClipPlane2, clipBoxInd, sideEdge2, &edge) {
			return 0
		}
	}

	// Step 4: emit contact points against the reference face plane.
	resultCount := 0
	{
		clipPlane := newPlane(clipNormal, positions[clipBoxInd], component(halfSizes[clipBoxInd], clipAxisInd))
		invRotClip := rotations[clipBoxInd]
		invRotIncident := rotations[incidentBoxInd]

		for pi := 0; pi < 2; pi++ {
			point := edge[pi]
			penetration := -clipPlane.getDistance(point.position)
			if penetration < 0 {
				continue
			}

			resultPosition := point.position.Add(clipNormal.Scale(penetration))

			var localPoints [2]Vec2
			localPoints[clipBoxInd] = invRotClip.MulT(resultPosition.Sub(positions[clipBoxInd]))
			localPoints[incidentBoxInd] = invRotIncident.MulT(point.position.Sub(positions[incidentBoxInd]))

			fp := point.featurePair
			if fp[1].Less(fp[0]) {
				fp[0], fp[1] = fp[1], fp[0]
			}

			result[resultCount] = CollisionPoint{
				Position:           resultPosition,
				Normal:             minPenetrationDir,
				Penetration:        penetration,
				FeaturePair:        fp,
				ClipBoxIndex:       clipBoxInd,
				LocalPoints:        localPoints,
				LocalContactNormal: invRotClip.MulT(clipNormal),
			}
			resultCount++
		}
	}

	return resultCount
}
