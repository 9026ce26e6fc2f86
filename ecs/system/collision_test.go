package system

import (
	"testing"

	"github.com/milk9111/fissile/ecs"
	"github.com/milk9111/fissile/ecs/component"
	"github.com/milk9111/fissile/state"
)

func TestCollisionReducer(t *testing.T) {
	cases := []struct {
		name          string
		winTrigger    bool
		wantGameOvers int
	}{
		{"win_trigger_emits_game_over", true, 1},
		{"plain_entity_dropped", false, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			target := ecs.CreateEntity(w)
			if c.winTrigger {
				mustAdd(t, w, target, component.WinTriggerComponent, &component.WinTrigger{})
			}

			w.Events().Collisions.Push(ecs.CollisionWith{Entity: target})

			NewCollisionReducer().Update(w)

			if got := w.Events().GameOvers.Len(); got != c.wantGameOvers {
				t.Fatalf("game over events = %d, want %d", got, c.wantGameOvers)
			}
			if c.wantGameOvers > 0 {
				ev, _ := w.Events().GameOvers.Last()
				if ev.Target != state.Win {
					t.Fatalf("target = %s, want %s", ev.Target, state.Win)
				}
			}
			if w.Events().Collisions.Len() != 0 {
				t.Fatalf("collisions should be drained")
			}
		})
	}
}

func TestCollisionReducerMultipleContacts(t *testing.T) {
	w := ecs.NewWorld()
	for i := 0; i < 3; i++ {
		atom := ecs.CreateEntity(w)
		mustAdd(t, w, atom, component.WinTriggerComponent, &component.WinTrigger{})
		w.Events().Collisions.Push(ecs.CollisionWith{Entity: atom})
	}

	NewCollisionReducer().Update(w)

	// One event per winning contact; collapsing them is the transition
	// controller's job.
	if got := w.Events().GameOvers.Len(); got != 3 {
		t.Fatalf("game over events = %d, want 3", got)
	}
}
