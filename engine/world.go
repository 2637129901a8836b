package engine

import "github.com/lixenwraith/alien-invasion/components"

// World owns every entity collection
// Only the controller and the systems it invokes mutate it, all on the game loop goroutine
type World struct {
	Ship    *components.Ship
	Bullets []*components.Bullet
	Aliens  []*components.Alien
	Stars   []*components.Star
}

// NewWorld creates a world around the player ship
func NewWorld(ship *components.Ship) *World {
	return &World{
		Ship:    ship,
		Bullets: make([]*components.Bullet, 0, 8),
		Aliens:  make([]*components.Alien, 0, 64),
	}
}

// AddBullet appends a bullet to the active set
func (w *World) AddBullet(b *components.Bullet) {
	w.Bullets = append(w.Bullets, b)
}

// ClearBullets removes every bullet
func (w *World) ClearBullets() {
	clear(w.Bullets)
	w.Bullets = w.Bullets[:0]
}

// ClearAliens removes every alien
func (w *World) ClearAliens() {
	clear(w.Aliens)
	w.Aliens = w.Aliens[:0]
}

// RemoveBullets drops the given bullets, returning how many were removed
// Unknown or already-removed entries are ignored
func (w *World) RemoveBullets(drop map[*components.Bullet]struct{}) int {
	var removed int
	w.Bullets, removed = compact(w.Bullets, drop)
	return removed
}

// RemoveAliens drops the given aliens, returning how many were removed
func (w *World) RemoveAliens(drop map[*components.Alien]struct{}) int {
	var removed int
	w.Aliens, removed = compact(w.Aliens, drop)
	return removed
}

// compact filters items in place after the scan that selected drop, preserving order
func compact[T comparable](items []T, drop map[T]struct{}) ([]T, int) {
	if len(drop) == 0 {
		return items, 0
	}
	kept := items[:0]
	for _, item := range items {
		if _, ok := drop[item]; !ok {
			kept = append(kept, item)
		}
	}
	removed := len(items) - len(kept)
	// Release dropped pointers held past the new length
	clear(items[len(kept):])
	return kept, removed
}
