package system

import (
	"log"

	"github.com/milk9111/fissile/ecs"
	"github.com/milk9111/fissile/ecs/component"
	"github.com/milk9111/fissile/state"
)

// WinSoundClip is the sfx entity clip flagged on game over.
const WinSoundClip = "explosion"

// TransitionController consumes GameOver events. Only the last event
// enqueued this tick is honored; the queue is cleared unconditionally so
// nothing leaks into the next tick. Side effects run exactly once per
// terminal event: flag the one-shot win sound, despawn the player (a player
// that is already gone is tolerated), and request the state transition.
type TransitionController struct {
	store *state.Store
}

func NewTransitionController(store *state.Store) *TransitionController {
	return &TransitionController{store: store}
}

func (t *TransitionController) Update(w *ecs.World) {
	if w == nil || t.store == nil {
		return
	}

	ev, ok := w.Events().GameOvers.Last()
	if !ok {
		return
	}
	defer w.Events().GameOvers.Clear()

	ecs.ForEach(w, component.AudioComponent, func(_ ecs.Entity, a *component.Audio) {
		a.FlagPlay(WinSoundClip)
	})

	if player, ok := ecs.First(w, component.PlayerTagComponent); ok {
		if pw := w.PhysicsWorld(); pw != nil {
			pw.RemoveBody(player)
		}
		ecs.DestroyEntity(w, player)
	}

	log.Printf("game over: transitioning to %s", ev.Target)
	t.store.Request(ev.Target)
}
