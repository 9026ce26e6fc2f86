package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/fissile/common"
	"github.com/milk9111/fissile/ecs"
	"github.com/milk9111/fissile/ecs/component"
	"github.com/milk9111/fissile/ecs/entity"
	"github.com/milk9111/fissile/ecs/system"
	"github.com/milk9111/fissile/prefabs"
	"github.com/milk9111/fissile/state"
)

const simDt = 1.0 / 60.0

type Game struct {
	frames int
	debug  bool
	quit   bool

	world     *ecs.World
	store     *state.Store
	simulate  *ecs.Scheduler
	reconcile *ecs.Scheduler
	setup     *system.SetupSystem

	uis     map[state.GameState]*ebitenui.UI
	panels  map[state.GameState]ecs.Entity
	watcher *prefabs.Watcher
}

func NewGame(debug, watch bool) *Game {
	world := ecs.NewWorld()
	world.SetPhysicsWorld(ecs.NewPhysicsWorld())
	store := state.NewStore()

	g := &Game{
		debug:  debug,
		world:  world,
		store:  store,
		uis:    make(map[state.GameState]*ebitenui.UI),
		panels: make(map[state.GameState]ecs.Entity),
	}

	g.setup = system.NewSetupSystem(store, g.buildMenus, g.buildLevel, g.buildPlayer)

	inGame := func() bool { return store.Get() == state.Game }

	// Everything up to the transition controller reads the state committed
	// last tick; Commit happens between the two schedulers.
	sim := ecs.NewScheduler()
	sim.Add(system.NewInputSystem())
	sim.Add(system.NewPauseSystem(store))
	sim.AddIf(system.NewControlMapper(), inGame)
	sim.AddIf(system.NewCameraOrbitSystem(), inGame)
	sim.AddIf(system.NewLocomotionSystem(simDt), inGame)
	sim.AddIf(system.NewPhysicsSystem(simDt), inGame)
	sim.AddIf(system.NewProximityWatcher(), inGame)
	sim.Add(system.NewCollisionReducer())
	sim.Add(system.NewTransitionController(store))
	g.simulate = sim

	post := ecs.NewScheduler()
	post.Add(system.NewModeSwitcher(store))
	post.Add(g.setup)
	post.Add(system.NewAudioSystem())
	g.reconcile = post

	if watch {
		watcher, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.Printf("game: prefab watcher disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}

	return g
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.frames++

	// Assets are embedded so loading finishes on the first tick.
	if g.store.Get() == state.Loading {
		g.store.Request(state.Menu)
	}

	g.drainWatcher()

	g.simulate.Update(g.world)
	g.store.Commit()
	g.reconcile.Update(g.world)

	g.syncCursorMode()
	g.updateVisibleUI()

	g.world.Events().Flush()
	return nil
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	reload := false
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("game: prefab changed: %s", path)
			reload = true
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("game: prefab watcher: %v", err)
			}
		default:
			if reload {
				g.reloadLevel()
			}
			return
		}
	}
}

// reloadLevel tears down the current atoms and lets the lazy setup rebuild
// them from the edited prefab the next gameplay tick.
func (g *Game) reloadLevel() {
	pw := g.world.PhysicsWorld()
	var atoms []ecs.Entity
	ecs.ForEach(g.world, component.WinTriggerComponent, func(e ecs.Entity, _ *component.WinTrigger) {
		atoms = append(atoms, e)
	})
	for _, e := range atoms {
		if pw != nil {
			pw.RemoveBody(e)
		}
		ecs.DestroyEntity(g.world, e)
	}
	g.setup.InvalidateLevel()
}

func (g *Game) syncCursorMode() {
	captured := false
	ecs.ForEach(g.world, component.CameraComponent, func(_ ecs.Entity, cam *component.Camera) {
		if cam.Active && cam.CursorLock {
			captured = true
		}
	})
	if captured {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
}

func (g *Game) updateVisibleUI() {
	for st, e := range g.panels {
		panel, ok := ecs.Get(g.world, e, component.MenuPanelComponent)
		if !ok || !panel.Visible {
			continue
		}
		if ui := g.uis[st]; ui != nil {
			ui.Update()
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawScene(screen)

	for st, e := range g.panels {
		panel, ok := ecs.Get(g.world, e, component.MenuPanelComponent)
		if !ok || !panel.Visible {
			continue
		}
		if ui := g.uis[st]; ui != nil {
			ui.Draw(screen)
		}
	}

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("State: %s    Frames: %d    FPS: %.2f", g.store.Get(), g.frames, ebiten.ActualFPS()))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) buildMenus(w *ecs.World) error {
	if _, err := entity.NewCamera(w); err != nil {
		return fmt.Errorf("build menus: camera: %w", err)
	}
	if _, err := entity.NewMenuCamera(w); err != nil {
		return fmt.Errorf("build menus: menu camera: %w", err)
	}
	if _, err := entity.NewSFX(w); err != nil {
		return fmt.Errorf("build menus: sfx: %w", err)
	}

	for _, build := range []struct {
		shownIn state.GameState
		ui      func(*Game) *ebitenui.UI
	}{
		{state.Menu, NewMainMenuUI},
		{state.Pause, NewPauseUI},
		{state.Win, NewWinUI},
	} {
		e := ecs.CreateEntity(w)
		if err := ecs.Add(w, e, component.MenuPanelComponent, &component.MenuPanel{
			ShownIn: build.shownIn,
			Visible: build.shownIn == g.store.Get(),
		}); err != nil {
			return fmt.Errorf("build menus: panel %s: %w", build.shownIn, err)
		}
		g.panels[build.shownIn] = e
		g.uis[build.shownIn] = build.ui(g)
	}

	return nil
}

func (g *Game) buildLevel(w *ecs.World) error {
	_, err := entity.BuildLevel(w, "level.yaml")
	return err
}

func (g *Game) buildPlayer(w *ecs.World) error {
	_, err := entity.NewPlayer(w)
	return err
}
