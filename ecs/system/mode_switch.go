package system

import (
	"github.com/milk9111/fissile/ecs"
	"github.com/milk9111/fissile/ecs/component"
	"github.com/milk9111/fissile/state"
)

// ModeSwitcher reacts to committed state changes: it flips which camera is
// active, whether the cursor is locked, and which menu panel is visible.
// Edge-triggered: the previous state is held explicitly and a tick without
// a change is a no-op.
type ModeSwitcher struct {
	store *state.Store

	last   state.GameState
	primed bool
}

func NewModeSwitcher(store *state.Store) *ModeSwitcher {
	return &ModeSwitcher{store: store}
}

func (m *ModeSwitcher) Update(w *ecs.World) {
	if w == nil || m.store == nil {
		return
	}
	current := m.store.Get()
	if m.primed && current == m.last {
		return
	}
	m.last = current
	m.primed = true

	gameplay := current == state.Game

	ecs.ForEach(w, component.CameraComponent, func(_ ecs.Entity, cam *component.Camera) {
		cam.Active = gameplay
		cam.CursorLock = gameplay
	})
	ecs.ForEach(w, component.MenuCameraComponent, func(_ ecs.Entity, cam *component.MenuCamera) {
		cam.Active = !gameplay
	})
	ecs.ForEach(w, component.MenuPanelComponent, func(_ ecs.Entity, panel *component.MenuPanel) {
		panel.Visible = panel.ShownIn == current
	})
}
