package system

import (
	"log"

	"github.com/milk9111/fissile/ecs"
	"github.com/milk9111/fissile/ecs/component"
	"github.com/milk9111/fissile/state"
)

// CollisionReducer drains this tick's CollisionWith events and classifies
// each contacted entity: a WinTrigger emits GameOver(Win), anything else is
// logged and dropped. Several winning contacts in one tick each emit an
// event; the transition controller collapses them.
type CollisionReducer struct{}

func NewCollisionReducer() *CollisionReducer {
	return &CollisionReducer{}
}

func (c *CollisionReducer) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for _, ev := range w.Events().Collisions.Drain() {
		if ecs.Has(w, ev.Entity, component.WinTriggerComponent) {
			w.Events().GameOvers.Push(ecs.GameOver{Target: state.Win})
			continue
		}
		log.Printf("collision: entity %s is not a win trigger", ev.Entity)
	}
}
