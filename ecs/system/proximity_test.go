package system

import (
	"testing"

	"github.com/jakecoffman/cp/v2"
	"github.com/milk9111/fissile/ecs"
	"github.com/milk9111/fissile/ecs/component"
)

func TestProximityWatcherEmitsContact(t *testing.T) {
	w := ecs.NewWorld()
	pw := ecs.NewPhysicsWorld()
	w.SetPhysicsWorld(pw)

	atom := ecs.CreateEntity(w)
	pw.AddTrigger(atom, 10, -20, 4)

	player := ecs.CreateEntity(w)
	mustAdd(t, w, player, component.PlayerTagComponent, &component.PlayerTag{})
	body := pw.AddPlayerBody(player, 0, 0, 0.5)

	watcher := NewProximityWatcher()

	watcher.Update(w)
	if w.Events().Collisions.Len() != 0 {
		t.Fatalf("no event expected while clear of the trigger")
	}

	body.SetPosition(cp.Vector{X: 10, Y: -20})
	pw.Step(1.0 / 60.0)

	watcher.Update(w)
	evs := w.Events().Collisions.Drain()
	if len(evs) != 1 {
		t.Fatalf("events = %d, want 1", len(evs))
	}
	if evs[0].Entity != atom {
		t.Fatalf("contacted %s, want %s", evs[0].Entity, atom)
	}
}

func TestProximityWatcherNoPlayer(t *testing.T) {
	w := ecs.NewWorld()
	w.SetPhysicsWorld(ecs.NewPhysicsWorld())

	NewProximityWatcher().Update(w)

	if w.Events().Collisions.Len() != 0 {
		t.Fatalf("no player should mean no events")
	}
}
