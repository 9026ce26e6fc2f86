package system

import (
	"math"

	"github.com/milk9111/fissile/common"
	"github.com/milk9111/fissile/ecs"
	"github.com/milk9111/fissile/ecs/component"
)

// ControlMapper turns the input snapshot into a locomotion intent. Movement
// keys sum player-local unit directions; the result is normalized (zero
// stays zero) and scaled to the player's move speed. The desired facing
// comes from the camera forward projected onto the ground plane; a
// degenerate projection (camera looking straight up or down) requests no
// facing change. Missing player or camera is a silent no-op for the tick.
// Below this projected length the camera is considered vertical and no
// facing is requested.
const degenerateFacingEpsilon = 1e-9

type ControlMapper struct{}

func NewControlMapper() *ControlMapper {
	return &ControlMapper{}
}

func (c *ControlMapper) Update(w *ecs.World) {
	if w == nil {
		return
	}

	player, ok := ecs.First(w, component.PlayerTagComponent)
	if !ok {
		return
	}
	input, ok := ecs.Get(w, player, component.InputComponent)
	if !ok {
		return
	}
	transform, ok := ecs.Get(w, player, component.TransformComponent)
	if !ok {
		return
	}
	tuning, ok := ecs.Get(w, player, component.PlayerComponent)
	if !ok {
		return
	}
	loco, ok := ecs.Get(w, player, component.LocomotionComponent)
	if !ok {
		return
	}

	camEntity, ok := ecs.First(w, component.CameraComponent)
	if !ok {
		return
	}
	cam, ok := ecs.Get(w, camEntity, component.CameraComponent)
	if !ok {
		return
	}

	var direction common.Vec3
	if input.Forward {
		direction = direction.Add(transform.Forward())
	}
	if input.Back {
		direction = direction.Sub(transform.Forward())
	}
	if input.Left {
		direction = direction.Sub(transform.Right())
	}
	if input.Right {
		direction = direction.Add(transform.Right())
	}
	loco.DesiredVelocity = direction.NormalizeOrZero().Scale(tuning.MoveSpeed)

	// The projection of a near-vertical camera forward is a float residue
	// (cos(pi/2) is ~6e-17, not 0), so an exact zero check is not enough.
	facing := cam.Forward().Horizontal()
	if facing.Length() < degenerateFacingEpsilon {
		loco.HasDesiredYaw = false
	} else {
		facing = facing.NormalizeOrZero()
		loco.DesiredYaw = math.Atan2(facing.X, facing.Z)
		loco.HasDesiredYaw = true
	}

	loco.FloatHeight = tuning.FloatHeight
	if input.Jump {
		loco.JumpRequested = true
		loco.JumpHeight = tuning.JumpHeight
	}
}
