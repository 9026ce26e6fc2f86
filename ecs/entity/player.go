package entity

import (
	"fmt"

	"github.com/milk9111/fissile/ecs"
	"github.com/milk9111/fissile/ecs/component"
)

// NewPlayer builds the player prefab and registers its dynamic body with
// the physics world. The body starts floating at the prefab's transform
// height, grounded.
func NewPlayer(w *ecs.World) (ecs.Entity, error) {
	e, err := BuildEntity(w, "player.yaml")
	if err != nil {
		return 0, err
	}

	t, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("new player: prefab has no transform")
	}
	p, ok := ecs.Get(w, e, component.PlayerComponent)
	if !ok {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("new player: prefab has no player component")
	}

	pw := w.PhysicsWorld()
	if pw == nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("new player: world has no physics")
	}

	body := pw.AddPlayerBody(e, t.Pos.X, t.Pos.Z, p.Radius)
	if err := ecs.Add(w, e, component.BodyComponent, &component.Body{
		Body:     body,
		Height:   t.Pos.Y,
		Grounded: true,
	}); err != nil {
		pw.RemoveBody(e)
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("new player: %w", err)
	}

	loco, ok := ecs.Get(w, e, component.LocomotionComponent)
	if ok {
		loco.JumpHeight = p.JumpHeight
		loco.FloatHeight = p.FloatHeight
	}

	return e, nil
}
