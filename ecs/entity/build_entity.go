package entity

import (
	"fmt"
	"sort"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/fissile/assets"
	"github.com/milk9111/fissile/common"
	"github.com/milk9111/fissile/ecs"
	"github.com/milk9111/fissile/ecs/component"
	"github.com/milk9111/fissile/prefabs"
)

type buildContext struct {
	PrefabPath string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":      addPlayerTag,
	"win_trigger_tag": addWinTriggerTag,
	"player":          addPlayer,
	"transform":       addTransform,
	"input":           addInput,
	"locomotion":      addLocomotion,
	"camera":          addCamera,
	"audio":           addAudio,
}

var componentBuildOrder = []string{
	"player_tag",
	"win_trigger_tag",
	"player",
	"transform",
	"input",
	"locomotion",
	"camera",
	"audio",
}

// BuildEntity creates an entity from a prefab's component bag. Components
// build in a fixed order so intra-prefab dependencies resolve the same way
// every run; a failed builder tears the entity back down.
func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := buildComponent(w, e, name, raw, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, err
		}
		delete(remaining, name)
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if err := buildComponent(w, e, name, remaining[name], ctx); err != nil {
				ecs.DestroyEntity(w, e)
				return 0, err
			}
		}
	}

	return e, nil
}

func buildComponent(w *ecs.World, e ecs.Entity, name string, raw any, ctx *buildContext) error {
	builder, ok := componentRegistry[name]
	if !ok {
		return fmt.Errorf("build entity: %q: no builder for component %q", ctx.PrefabPath, name)
	}
	if err := builder(w, e, raw, ctx); err != nil {
		return fmt.Errorf("build entity: %q: add %q: %w", ctx.PrefabPath, name, err)
	}
	return nil
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent, &component.PlayerTag{})
}

func addWinTriggerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.WinTriggerComponent, &component.WinTrigger{})
}

type playerSpec = prefabs.PlayerComponentSpec

func addPlayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[playerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode player spec: %w", err)
	}
	return ecs.Add(w, e, component.PlayerComponent, &component.Player{
		MoveSpeed:   spec.MoveSpeed,
		JumpHeight:  spec.JumpHeight,
		FloatHeight: spec.FloatHeight,
		Radius:      spec.Radius,
	})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	return ecs.Add(w, e, component.TransformComponent, &component.Transform{
		Pos: common.Vec3{X: spec.X, Y: spec.Y, Z: spec.Z},
		Yaw: spec.Yaw,
	})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent, &component.Input{})
}

func addLocomotion(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.LocomotionComponent, &component.Locomotion{})
}

type cameraSpec = prefabs.CameraComponentSpec

func addCamera(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[cameraSpec](raw)
	if err != nil {
		return fmt.Errorf("decode camera spec: %w", err)
	}
	return ecs.Add(w, e, component.CameraComponent, &component.Camera{
		Distance: spec.Distance,
		OffsetX:  spec.OffsetX,
		OffsetY:  spec.OffsetY,
	})
}

type audioSpec = prefabs.AudioComponentSpec
type audioClipSpec = prefabs.AudioClipSpec

func addAudio(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[audioSpec](raw)
	if err != nil {
		return fmt.Errorf("decode audio spec: %w", err)
	}
	if len(spec.Clips) == 0 {
		return nil
	}
	comp, err := buildAudioComponentFromSpec(spec.Clips)
	if err != nil {
		return fmt.Errorf("build audio component from spec: %w", err)
	}
	if comp == nil {
		return nil
	}
	for _, name := range spec.Autoplay {
		for i := range comp.Names {
			if comp.Names[i] == name {
				comp.Play[i] = true
			}
		}
	}
	return ecs.Add(w, e, component.AudioComponent, comp)
}

func buildAudioComponentFromSpec(audioSpecs []audioClipSpec) (*component.Audio, error) {
	n := len(audioSpecs)
	if n == 0 {
		return nil, nil
	}

	names := make([]string, 0, n)
	players := make([]*audio.Player, 0, n)
	volume := make([]float64, 0, n)
	play := make([]bool, 0, n)
	stop := make([]bool, 0, n)

	for i, clip := range audioSpecs {
		player, err := assets.LoadAudioPlayer(clip.File)
		if err != nil {
			return nil, fmt.Errorf("audio clip %d (%q): %w", i, clip.Name, err)
		}
		names = append(names, clip.Name)
		players = append(players, player)
		volume = append(volume, clip.Volume)
		play = append(play, false)
		stop = append(stop, false)
	}

	return &component.Audio{
		Names:   names,
		Players: players,
		Volume:  volume,
		Play:    play,
		Stop:    stop,
	}, nil
}
