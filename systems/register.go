package systems

import "github.com/lixenwraith/alien-invasion/engine"

// RegisterAll wires every system and event handler into the controller
func RegisterAll(c *engine.Controller) {
	bullets := NewBulletSystem()

	c.AddSystem(NewShipSystem())
	c.AddSystem(bullets)
	c.AddSystem(NewFleetSystem())
	c.AddSystem(NewCollisionSystem())

	c.RegisterHandler(bullets)
	c.RegisterHandler(NewLifecycleSystem())
}
