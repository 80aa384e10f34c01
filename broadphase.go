package physics

import "sort"

// bodyPair is an unordered pair of body indices, always reported with the
// smaller index first.
type bodyPair struct {
	a, b BodyIndex
}

// endpoint is one of the two X-axis interval bounds of a body's AABB.
type endpoint struct {
	x       float32
	body    BodyIndex
	isStart bool
}

// broadPhase implements sweep-and-prune along the X axis. It owns the
// per-body AABB cache, since the AABB is recomputed from scratch every step
// and is also the thing observation callers want to inspect.
type broadPhase struct {
	aabbs     []AABB
	endpoints []endpoint

	// active is the set of body indices whose start endpoint has been
	// visited but whose end has not yet been swept; activeMapping gives
	// each live body's slot in active for O(1) swap-and-pop removal.
	active        []BodyIndex
	activeMapping map[BodyIndex]int
}

func newBroadPhase() *broadPhase {
	return &broadPhase{
		activeMapping: make(map[BodyIndex]int),
	}
}

// sync grows the endpoint/AABB arrays to match the current body count,
// appending two fresh endpoints per newly added body.
func (bp *broadPhase) sync(bodies []Body) {
	for i := len(bp.aabbs); i < len(bodies); i++ {
		bp.aabbs = append(bp.aabbs, AABB{})
		idx := BodyIndex(i)
		bp.endpoints = append(bp.endpoints,
			endpoint{body: idx, isStart: true},
			endpoint{body: idx, isStart: false},
		)
	}
}

// update recomputes every AABB, refreshes and re-sorts the endpoints, then
// sweeps them to emit candidate overlapping pairs to onPair. onPair always
// receives the smaller index first.
func (bp *broadPhase) update(bodies []Body, onPair func(a, b BodyIndex)) {
	bp.sync(bodies)

	for i := range bodies {
		bp.aabbs[i] = boxAABB(bodies[i].Position(), bodies[i].Rotation(), bodies[i].HalfSize())
	}

	for i := range bp.endpoints {
		e := &bp.endpoints[i]
		aabb := bp.aabbs[e.body]
		if e.isStart {
			e.x = aabb.Min.X
		} else {
			e.x = aabb.Max.X
		}
	}

	// Ends sort before starts at an equal coordinate, so two AABBs that
	// merely touch (a.Max.X == b.Min.X) never overlap.
	sort.Slice(bp.endpoints, func(i, j int) bool {
		xi, xj := bp.endpoints[i].x, bp.endpoints[j].x
		if xi != xj {
			return xi < xj
		}
		return !bp.endpoints[i].isStart && bp.endpoints[j].isStart
	})

	bp.active = bp.active[:0]
	for k := range bp.activeMapping {
		delete(bp.activeMapping, k)
	}

	for _, e := range bp.endpoints {
		if e.isStart {
			for _, other := range bp.active {
				bp.emitCandidate(bodies, e.body, other, onPair)
			}
			bp.activeMapping[e.body] = len(bp.active)
			bp.active = append(bp.active, e.body)
		} else {
			bp.removeActive(e.body)
		}
	}
}

func (bp *broadPhase) removeActive(body BodyIndex) {
	idx, ok := bp.activeMapping[body]
	if !ok {
		return
	}
	last := len(bp.active) - 1
	bp.active[idx] = bp.active[last]
	bp.activeMapping[bp.active[idx]] = idx
	bp.active = bp.active[:last]
	delete(bp.activeMapping, body)
}

// emitCandidate applies the static/static and AABB-overlap filters before
// invoking onPair with the smaller index first. The sweep already guarantees
// the X extents overlap, so this only ever rejects on Y, but AABB.Overlaps
// is the one true test for "do these two boxes overlap" and there is no
// reason to hand-roll a second copy of it here.
func (bp *broadPhase) emitCandidate(bodies []Body, x, y BodyIndex, onPair func(a, b BodyIndex)) {
	if bodies[x].IsStatic() && bodies[y].IsStatic() {
		return
	}

	if !bp.aabbs[x].Overlaps(bp.aabbs[y]) {
		return
	}

	if x < y {
		onPair(x, y)
	} else {
		onPair(y, x)
	}
}

// AABB returns the broad-phase's last-computed bounding box for body i,
// exposed for visualization/testing.
func (bp *broadPhase) AABB(i BodyIndex) (AABB, bool) {
	if int(i) >= len(bp.aabbs) {
		return AABB{}, false
	}
	return bp.aabbs[i], true
}
