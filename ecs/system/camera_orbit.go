package system

import (
	"math"

	"github.com/milk9111/fissile/ecs"
	"github.com/milk9111/fissile/ecs/component"
)

const (
	orbitSensitivity = 0.005
	pitchLimit       = math.Pi/2 - 0.01
)

// CameraOrbitSystem is the consumed orbit implementation: mouse deltas spin
// the active gameplay camera while its cursor lock is engaged, and the lock
// key toggles the lock. The orchestration core only ever touches the Active
// and CursorLock flags.
type CameraOrbitSystem struct{}

func NewCameraOrbitSystem() *CameraOrbitSystem {
	return &CameraOrbitSystem{}
}

func (c *CameraOrbitSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var dx, dy float64
	var lockToggle bool
	ecs.ForEach(w, component.InputComponent, func(_ ecs.Entity, input *component.Input) {
		dx, dy = input.MouseDX, input.MouseDY
		lockToggle = lockToggle || input.LockJustPressed
	})

	ecs.ForEach(w, component.CameraComponent, func(_ ecs.Entity, cam *component.Camera) {
		if !cam.Active {
			return
		}
		if lockToggle {
			cam.CursorLock = !cam.CursorLock
		}
		if !cam.CursorLock {
			return
		}
		cam.Yaw -= dx * orbitSensitivity
		cam.Pitch -= dy * orbitSensitivity
		if cam.Pitch > pitchLimit {
			cam.Pitch = pitchLimit
		}
		if cam.Pitch < -pitchLimit {
			cam.Pitch = -pitchLimit
		}
	})
}
