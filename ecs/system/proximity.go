package system

import (
	"log"

	"github.com/milk9111/fissile/ecs"
	"github.com/milk9111/fissile/ecs/component"
)

// ProximityWatcher polls the player's contact sensor once per tick and
// emits a CollisionWith event when something is touched. The sensor reports
// at most one entity, so at most one event is pushed. No player or no
// contact is a no-op, not an error.
type ProximityWatcher struct{}

func NewProximityWatcher() *ProximityWatcher {
	return &ProximityWatcher{}
}

func (p *ProximityWatcher) Update(w *ecs.World) {
	if w == nil {
		return
	}
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}

	player, ok := ecs.First(w, component.PlayerTagComponent)
	if !ok {
		return
	}

	contacted, ok := pw.Contact(player)
	if !ok {
		return
	}

	w.Events().Collisions.Push(ecs.CollisionWith{Entity: contacted})
	log.Printf("proximity: player and %s colliding", contacted)
}
