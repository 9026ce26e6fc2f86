package system

import (
	"log"

	"github.com/milk9111/fissile/ecs"
	"github.com/milk9111/fissile/ecs/component"
	"github.com/milk9111/fissile/state"
)

// SetupSystem runs the lazy one-shot scene construction: the menus the
// first tick Menu is entered, the level the first tick Game is entered, and
// the player whenever Game is active and no player exists (which re-creates
// it after every win, since game over always despawns it). The one-shot
// gates are explicit sentinel flags.
type SetupSystem struct {
	store *state.Store

	buildMenus  func(w *ecs.World) error
	buildLevel  func(w *ecs.World) error
	buildPlayer func(w *ecs.World) error

	menusBuilt bool
	levelBuilt bool
}

func NewSetupSystem(store *state.Store, buildMenus, buildLevel, buildPlayer func(w *ecs.World) error) *SetupSystem {
	return &SetupSystem{
		store:       store,
		buildMenus:  buildMenus,
		buildLevel:  buildLevel,
		buildPlayer: buildPlayer,
	}
}

// InvalidateLevel forces the level to be rebuilt the next tick Game is
// active. Used by prefab hot reload.
func (s *SetupSystem) InvalidateLevel() {
	s.levelBuilt = false
}

func (s *SetupSystem) Update(w *ecs.World) {
	if w == nil || s.store == nil {
		return
	}

	switch s.store.Get() {
	case state.Menu:
		if !s.menusBuilt && s.buildMenus != nil {
			if err := s.buildMenus(w); err != nil {
				log.Printf("setup: build menus: %v", err)
				return
			}
			s.menusBuilt = true
		}
	case state.Game:
		if !s.levelBuilt && s.buildLevel != nil {
			if err := s.buildLevel(w); err != nil {
				log.Printf("setup: build level: %v", err)
				return
			}
			s.levelBuilt = true
		}
		if _, ok := ecs.First(w, component.PlayerTagComponent); !ok && s.buildPlayer != nil {
			if err := s.buildPlayer(w); err != nil {
				log.Printf("setup: build player: %v", err)
			}
		}
	}
}
