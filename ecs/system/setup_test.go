package system

import (
	"errors"
	"testing"

	"github.com/milk9111/fissile/ecs"
	"github.com/milk9111/fissile/ecs/component"
	"github.com/milk9111/fissile/state"
)

type setupCounts struct {
	menus  int
	levels int
	player int
}

func newCountingSetup(store *state.Store, counts *setupCounts, spawnPlayer bool) *SetupSystem {
	return NewSetupSystem(store,
		func(w *ecs.World) error { counts.menus++; return nil },
		func(w *ecs.World) error { counts.levels++; return nil },
		func(w *ecs.World) error {
			counts.player++
			if spawnPlayer {
				e := ecs.CreateEntity(w)
				return ecs.Add(w, e, component.PlayerTagComponent, &component.PlayerTag{})
			}
			return nil
		},
	)
}

func commitState(store *state.Store, st state.GameState) {
	store.Request(st)
	store.Commit()
}

func TestSetupMenusBuildOnce(t *testing.T) {
	w := ecs.NewWorld()
	store := state.NewStore()
	var counts setupCounts
	sys := newCountingSetup(store, &counts, true)

	commitState(store, state.Menu)
	sys.Update(w)
	sys.Update(w)
	sys.Update(w)

	if counts.menus != 1 {
		t.Fatalf("menus built %d times, want 1", counts.menus)
	}
	if counts.levels != 0 || counts.player != 0 {
		t.Fatalf("level/player should not build in menu: %+v", counts)
	}
}

func TestSetupLevelAndPlayerOnGameplayEntry(t *testing.T) {
	w := ecs.NewWorld()
	store := state.NewStore()
	var counts setupCounts
	sys := newCountingSetup(store, &counts, true)

	commitState(store, state.Game)
	sys.Update(w)
	sys.Update(w)

	if counts.levels != 1 {
		t.Fatalf("level built %d times, want 1", counts.levels)
	}
	if counts.player != 1 {
		t.Fatalf("player built %d times, want 1 (player exists after first build)", counts.player)
	}
}

func TestSetupPlayerRespawnsAfterDespawn(t *testing.T) {
	w := ecs.NewWorld()
	store := state.NewStore()
	var counts setupCounts
	sys := newCountingSetup(store, &counts, true)

	commitState(store, state.Game)
	sys.Update(w)

	player, ok := ecs.First(w, component.PlayerTagComponent)
	if !ok {
		t.Fatalf("player should exist after setup")
	}
	ecs.DestroyEntity(w, player)

	sys.Update(w)
	if counts.player != 2 {
		t.Fatalf("player built %d times, want respawn after despawn", counts.player)
	}
	// Level stays built across the respawn.
	if counts.levels != 1 {
		t.Fatalf("level rebuilt unexpectedly: %d", counts.levels)
	}
}

func TestSetupInvalidateLevelRebuilds(t *testing.T) {
	w := ecs.NewWorld()
	store := state.NewStore()
	var counts setupCounts
	sys := newCountingSetup(store, &counts, true)

	commitState(store, state.Game)
	sys.Update(w)
	sys.InvalidateLevel()
	sys.Update(w)

	if counts.levels != 2 {
		t.Fatalf("level built %d times, want rebuild after invalidate", counts.levels)
	}
}

func TestSetupBuildErrorRetriesNextTick(t *testing.T) {
	w := ecs.NewWorld()
	store := state.NewStore()

	fails := 1
	builds := 0
	sys := NewSetupSystem(store,
		nil,
		func(w *ecs.World) error {
			builds++
			if fails > 0 {
				fails--
				return errors.New("boom")
			}
			return nil
		},
		nil,
	)

	commitState(store, state.Game)
	sys.Update(w)
	sys.Update(w)
	sys.Update(w)

	// First tick fails, second succeeds, third is a no-op.
	if builds != 2 {
		t.Fatalf("level build attempts = %d, want 2", builds)
	}
}
