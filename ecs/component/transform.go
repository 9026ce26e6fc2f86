package component

import (
	"math"

	"github.com/milk9111/fissile/common"
)

// Transform is an entity's world position and heading (yaw about the up
// axis, radians).
type Transform struct {
	Pos common.Vec3
	Yaw float64
}

// Forward is the entity-local forward unit vector on the ground plane.
func (t *Transform) Forward() common.Vec3 {
	if t == nil {
		return common.Vec3{}
	}
	return common.Vec3{X: math.Sin(t.Yaw), Z: math.Cos(t.Yaw)}
}

// Right is the entity-local right unit vector on the ground plane.
func (t *Transform) Right() common.Vec3 {
	if t == nil {
		return common.Vec3{}
	}
	return common.Vec3{X: math.Cos(t.Yaw), Z: -math.Sin(t.Yaw)}
}

var TransformComponent = NewComponentKind[Transform]()
