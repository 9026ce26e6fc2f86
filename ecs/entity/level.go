package entity

import (
	"fmt"

	"github.com/milk9111/fissile/common"
	"github.com/milk9111/fissile/ecs"
	"github.com/milk9111/fissile/ecs/component"
	"github.com/milk9111/fissile/prefabs"
)

// BuildLevel spawns the static scene from the level prefab: one win trigger
// entity per atom placement, each registered as a sensor circle on the
// ground plane.
func BuildLevel(w *ecs.World, levelPath string) ([]ecs.Entity, error) {
	if w == nil {
		return nil, fmt.Errorf("build level: world is nil")
	}

	spec, err := prefabs.LoadLevelSpec(levelPath)
	if err != nil {
		return nil, fmt.Errorf("build level: %w", err)
	}

	placements, err := spec.Resolve()
	if err != nil {
		return nil, fmt.Errorf("build level: %w", err)
	}

	pw := w.PhysicsWorld()
	if pw == nil {
		return nil, fmt.Errorf("build level: world has no physics")
	}

	atoms := make([]ecs.Entity, 0, len(placements))
	for i, placement := range placements {
		atom, err := NewAtom(w, placement)
		if err != nil {
			for _, built := range atoms {
				pw.RemoveBody(built)
				ecs.DestroyEntity(w, built)
			}
			return nil, fmt.Errorf("build level: atom %d: %w", i, err)
		}
		atoms = append(atoms, atom)
	}

	return atoms, nil
}

// NewAtom spawns one atom win trigger at a resolved placement.
func NewAtom(w *ecs.World, placement prefabs.AtomPlacement) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)

	if err := ecs.Add(w, e, component.WinTriggerComponent, &component.WinTrigger{Radius: placement.Radius}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, err
	}
	if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{
		Pos: common.Vec3{X: placement.X, Y: 0, Z: placement.Z},
	}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, err
	}

	if pw := w.PhysicsWorld(); pw != nil {
		pw.AddTrigger(e, placement.X, placement.Z, placement.Radius)
	}

	return e, nil
}
