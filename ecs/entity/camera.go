package entity

import (
	"github.com/milk9111/fissile/ecs"
	"github.com/milk9111/fissile/ecs/component"
)

// NewCamera builds the gameplay orbit camera. It starts inactive; the mode
// switcher enables it when gameplay begins.
func NewCamera(w *ecs.World) (ecs.Entity, error) {
	return BuildEntity(w, "camera.yaml")
}

// NewMenuCamera creates the fixed menu camera, active from the start.
func NewMenuCamera(w *ecs.World) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.MenuCameraComponent, &component.MenuCamera{Active: true}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, err
	}
	return e, nil
}
