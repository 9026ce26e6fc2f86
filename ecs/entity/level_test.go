package entity

import (
	"math"
	"testing"

	"github.com/milk9111/fissile/ecs"
	"github.com/milk9111/fissile/ecs/component"
)

// The embedded level prefab is what the binary ships; it has to build as
// committed, script and all.
func TestBuildEmbeddedLevel(t *testing.T) {
	w := ecs.NewWorld()
	pw := ecs.NewPhysicsWorld()
	w.SetPhysicsWorld(pw)

	atoms, err := BuildLevel(w, "level.yaml")
	if err != nil {
		t.Fatalf("build embedded level: %v", err)
	}
	if len(atoms) != 9 {
		t.Fatalf("atoms = %d, want 9", len(atoms))
	}

	for i, atom := range atoms {
		trigger, ok := ecs.Get(w, atom, component.WinTriggerComponent)
		if !ok {
			t.Fatalf("atom %d missing win trigger", i)
		}
		if trigger.Radius != 4 {
			t.Fatalf("atom %d radius = %v, want 4", i, trigger.Radius)
		}

		transform, ok := ecs.Get(w, atom, component.TransformComponent)
		if !ok {
			t.Fatalf("atom %d missing transform", i)
		}
		wantZ := -20.0 + 9.0*float64(i)
		if transform.Pos.X != 10 || math.Abs(transform.Pos.Z-wantZ) > 1e-9 {
			t.Fatalf("atom %d at %v, want x=10 z=%v", i, transform.Pos, wantZ)
		}
	}
}

func TestBuildLevelNilWorld(t *testing.T) {
	if _, err := BuildLevel(nil, "level.yaml"); err == nil {
		t.Fatalf("nil world should error")
	}
}
