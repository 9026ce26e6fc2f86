package system

import (
	"github.com/milk9111/fissile/ecs"
	"github.com/milk9111/fissile/ecs/component"
	"github.com/milk9111/fissile/state"
)

// PauseSystem toggles Game and Pause on the pause key edge.
type PauseSystem struct {
	store *state.Store
}

func NewPauseSystem(store *state.Store) *PauseSystem {
	return &PauseSystem{store: store}
}

func (p *PauseSystem) Update(w *ecs.World) {
	if w == nil || p.store == nil {
		return
	}

	pressed := false
	ecs.ForEach(w, component.InputComponent, func(_ ecs.Entity, input *component.Input) {
		pressed = pressed || input.PauseJustPressed
	})
	if !pressed {
		return
	}

	switch p.store.Get() {
	case state.Game:
		p.store.Request(state.Pause)
	case state.Pause:
		p.store.Request(state.Game)
	}
}
