package component

import "github.com/milk9111/fissile/common"

// Locomotion is the movement intent handed to the locomotion solver. The
// control mapper fills it; the solver consumes and resets the one-shot
// fields.
type Locomotion struct {
	DesiredVelocity common.Vec3
	DesiredYaw      float64
	HasDesiredYaw   bool

	JumpRequested bool
	JumpHeight    float64
	FloatHeight   float64
}

var LocomotionComponent = NewComponentKind[Locomotion]()
