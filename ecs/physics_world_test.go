package ecs

import (
	"testing"

	"github.com/jakecoffman/cp/v2"
)

func TestContactBeginAndSeparate(t *testing.T) {
	pw := NewPhysicsWorld()
	w := NewWorld()
	w.SetPhysicsWorld(pw)

	atom := CreateEntity(w)
	player := CreateEntity(w)

	pw.AddTrigger(atom, 10, -20, 4)
	body := pw.AddPlayerBody(player, 0, 0, 0.5)
	if body == nil {
		t.Fatalf("AddPlayerBody returned nil")
	}

	if _, ok := pw.Contact(player); ok {
		t.Fatalf("no contact expected before stepping")
	}

	// Park the player inside the trigger circle and step.
	body.SetPosition(cp.Vector{X: 10, Y: -20})
	pw.Step(1.0 / 60.0)

	contacted, ok := pw.Contact(player)
	if !ok {
		t.Fatalf("expected contact after stepping inside the trigger")
	}
	if contacted != atom {
		t.Fatalf("contacted %s, want %s", contacted, atom)
	}

	// Move well clear and step again; the separate handler must clear it.
	body.SetPosition(cp.Vector{X: 100, Y: 100})
	pw.Step(1.0 / 60.0)

	if _, ok := pw.Contact(player); ok {
		t.Fatalf("contact should clear after separation")
	}
}

func TestTriggerIsSensor(t *testing.T) {
	pw := NewPhysicsWorld()
	w := NewWorld()
	w.SetPhysicsWorld(pw)

	atom := CreateEntity(w)
	player := CreateEntity(w)

	pw.AddTrigger(atom, 0, 0, 4)
	body := pw.AddPlayerBody(player, -10, 0, 0.5)

	// Drive straight through the trigger; a sensor must not deflect or
	// stop the body.
	body.SetVelocity(20, 0)
	for i := 0; i < 120; i++ {
		pw.Step(1.0 / 60.0)
	}

	pos := body.Position()
	if pos.X < 10 {
		t.Fatalf("sensor blocked the body, x = %v", pos.X)
	}
}

func TestRemoveBodyClearsContacts(t *testing.T) {
	pw := NewPhysicsWorld()
	w := NewWorld()
	w.SetPhysicsWorld(pw)

	atom := CreateEntity(w)
	player := CreateEntity(w)

	pw.AddTrigger(atom, 0, 0, 4)
	body := pw.AddPlayerBody(player, 0, 0, 0.5)
	body.SetPosition(cp.Vector{X: 0, Y: 0})
	pw.Step(1.0 / 60.0)

	if _, ok := pw.Contact(player); !ok {
		t.Fatalf("expected contact before removal")
	}

	pw.RemoveBody(player)
	if _, ok := pw.Contact(player); ok {
		t.Fatalf("contact should be gone after RemoveBody")
	}

	// Removing twice is tolerated.
	pw.RemoveBody(player)
}

func TestStepIgnoresBadDt(t *testing.T) {
	pw := NewPhysicsWorld()
	player := makeTestEntity()
	body := pw.AddPlayerBody(player, 0, 0, 0.5)
	body.SetVelocity(10, 0)

	pw.Step(0)
	pw.Step(-1)

	if pos := body.Position(); pos.X != 0 {
		t.Fatalf("bad dt should not advance the simulation, x = %v", pos.X)
	}
}

func makeTestEntity() Entity {
	w := NewWorld()
	return CreateEntity(w)
}
