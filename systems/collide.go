package systems

import "github.com/lixenwraith/alien-invasion/core"

// collidable is any entity pointer with a bounding box
type collidable interface {
	comparable
	Bounds() core.Rect
}

// GroupCollide finds overlaps between two groups
// Every a is tested against every b not already hit, so one b is consumed by the first a overlapping it
// Returns the sets of members from each group that took part in a collision
func GroupCollide[A, B collidable](as []A, bs []B) (hitA map[A]struct{}, hitB map[B]struct{}) {
	hitA = make(map[A]struct{})
	hitB = make(map[B]struct{})
	for _, a := range as {
		boundsA := a.Bounds()
		for _, b := range bs {
			if _, gone := hitB[b]; gone {
				continue
			}
			if boundsA.Intersects(b.Bounds()) {
				hitA[a] = struct{}{}
				hitB[b] = struct{}{}
			}
		}
	}
	return hitA, hitB
}

// CollideAny returns the first member of group overlapping rect
func CollideAny[B collidable](rect core.Rect, group []B) (B, bool) {
	for _, b := range group {
		if rect.Intersects(b.Bounds()) {
			return b, true
		}
	}
	var zero B
	return zero, false
}
