package engine

import (
	"testing"

	"github.com/lixenwraith/alien-invasion/components"
)

func newTestWorld() *World {
	return NewWorld(components.NewShip(60, 48, 12, 1500, 800))
}

func TestRemoveBulletsPreservesOrder(t *testing.T) {
	w := newTestWorld()
	b1 := &components.Bullet{Y: 1}
	b2 := &components.Bullet{Y: 2}
	b3 := &components.Bullet{Y: 3}
	w.AddBullet(b1)
	w.AddBullet(b2)
	w.AddBullet(b3)

	removed := w.RemoveBullets(map[*components.Bullet]struct{}{b2: {}})
	if removed != 1 {
		t.Errorf("Expected 1 removed, got %d", removed)
	}
	if len(w.Bullets) != 2 || w.Bullets[0] != b1 || w.Bullets[1] != b3 {
		t.Errorf("Expected [b1 b3], got %v", w.Bullets)
	}
}

func TestRemoveBulletsTwiceIsNoOp(t *testing.T) {
	w := newTestWorld()
	b := &components.Bullet{Y: -50, Height: 15}
	w.AddBullet(b)
	drop := map[*components.Bullet]struct{}{b: {}}

	if removed := w.RemoveBullets(drop); removed != 1 {
		t.Fatalf("Expected first removal to remove 1, got %d", removed)
	}
	if removed := w.RemoveBullets(drop); removed != 0 {
		t.Errorf("Expected second removal to be a no-op, got %d", removed)
	}
	if len(w.Bullets) != 0 {
		t.Errorf("Expected no bullets, got %d", len(w.Bullets))
	}
}

func TestRemoveAliens(t *testing.T) {
	w := newTestWorld()
	aliens := make([]*components.Alien, 5)
	for i := range aliens {
		aliens[i] = components.NewAlien(float64(i*120), 0, 60, 58, 3, nil)
	}
	w.Aliens = append(w.Aliens, aliens...)

	removed := w.RemoveAliens(map[*components.Alien]struct{}{aliens[0]: {}, aliens[4]: {}})
	if removed != 2 {
		t.Errorf("Expected 2 removed, got %d", removed)
	}
	if len(w.Aliens) != 3 || w.Aliens[0] != aliens[1] || w.Aliens[2] != aliens[3] {
		t.Errorf("Expected middle three aliens to remain, got %v", w.Aliens)
	}
}

func TestClearCollections(t *testing.T) {
	w := newTestWorld()
	w.AddBullet(&components.Bullet{})
	w.Aliens = append(w.Aliens, components.NewAlien(0, 0, 60, 58, 3, nil))

	w.ClearBullets()
	w.ClearAliens()
	if len(w.Bullets) != 0 || len(w.Aliens) != 0 {
		t.Errorf("Expected empty collections, got %d bullets and %d aliens", len(w.Bullets), len(w.Aliens))
	}

	// Clearing empty collections is safe
	w.ClearBullets()
	w.ClearAliens()
}
