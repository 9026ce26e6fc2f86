package entity

import "github.com/milk9111/fissile/ecs"

// NewSFX builds the global sound effect entity.
func NewSFX(w *ecs.World) (ecs.Entity, error) {
	return BuildEntity(w, "sfx.yaml")
}
