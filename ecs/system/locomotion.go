package system

import (
	"math"

	"github.com/jakecoffman/cp/v2"
	"github.com/milk9111/fissile/ecs"
	"github.com/milk9111/fissile/ecs/component"
)

const gravity = 9.81

// LocomotionSystem is the solver side of the movement seam. It applies the
// desired plane velocity to the Chipmunk body, snaps the heading toward the
// requested facing, and integrates the analytic vertical axis: the body
// floats at FloatHeight and jump requests launch it to JumpHeight. Repeat
// jump requests while airborne are ignored, which is the debounce the
// control mapper relies on.
type LocomotionSystem struct {
	dt float64
}

func NewLocomotionSystem(dt float64) *LocomotionSystem {
	return &LocomotionSystem{dt: dt}
}

func (l *LocomotionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.LocomotionComponent, component.BodyComponent, func(e ecs.Entity, loco *component.Locomotion, body *component.Body) {
		if body.Body != nil {
			body.Body.SetVelocityVector(cp.Vector{X: loco.DesiredVelocity.X, Y: loco.DesiredVelocity.Z})
		}

		if loco.HasDesiredYaw {
			if t, ok := ecs.Get(w, e, component.TransformComponent); ok {
				t.Yaw = loco.DesiredYaw
			}
		}

		if loco.JumpRequested && body.Grounded {
			body.VerticalVel = math.Sqrt(2 * gravity * loco.JumpHeight)
			body.Grounded = false
		}
		loco.JumpRequested = false

		if !body.Grounded {
			body.Height += body.VerticalVel * l.dt
			body.VerticalVel -= gravity * l.dt
			if body.Height <= loco.FloatHeight {
				body.Height = loco.FloatHeight
				body.VerticalVel = 0
				body.Grounded = true
			}
		} else {
			body.Height = loco.FloatHeight
		}
	})
}
