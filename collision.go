package main

import "math"

// IsBlocked reports whether a point expanded by radius intersects any
// solid object. The horizontal test is a half-extent check on X and Z;
// vertically a solid spans from the ground plane to its top plus radius,
// so anything above a solid's roof is clear of it.
func IsBlocked(p Vec3, radius float64) bool {
	for i := range worldSolids {
		o := &worldSolids[i]
		if math.Abs(p.X-o.X) > o.W/2+radius {
			continue
		}
		if math.Abs(p.Z-o.Z) > o.D/2+radius {
			continue
		}
		top := o.Y + o.H/2
		if p.Y-radius > top {
			continue
		}
		return true
	}
	return false
}

// ResolveSlide computes a collision-safe position approximating movement
// from oldPos to newPos. Each horizontal axis is attempted alone so a
// blocked diagonal move degrades into a slide along the wall. If the
// X-then-Z order leaves the result blocked, the Z-then-X order is tried
// from oldPos; if every candidate is blocked, oldPos is returned. Y is
// carried through untested; ground clamping happens elsewhere.
func ResolveSlide(oldPos, newPos Vec3, radius float64) Vec3 {
	pos := slideAxes(oldPos, newPos, radius, true)
	if !IsBlocked(pos, radius) {
		return pos
	}
	pos = slideAxes(oldPos, newPos, radius, false)
	if !IsBlocked(pos, radius) {
		return pos
	}
	return oldPos
}

// slideAxes attempts the two horizontal axis moves one at a time,
// keeping the old coordinate on any axis whose move is blocked.
func slideAxes(oldPos, newPos Vec3, radius float64, xFirst bool) Vec3 {
	pos := oldPos
	pos.Y = newPos.Y

	tryAxis := func(x bool) {
		cand := pos
		if x {
			cand.X = newPos.X
		} else {
			cand.Z = newPos.Z
		}
		if !IsBlocked(cand, radius) {
			pos = cand
		}
	}

	if xFirst {
		tryAxis(true)
		tryAxis(false)
	} else {
		tryAxis(false)
		tryAxis(true)
	}
	return pos
}
