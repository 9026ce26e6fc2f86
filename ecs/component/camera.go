package component

import (
	"math"

	"github.com/milk9111/fissile/common"
)

// Camera is the third-person orbit camera. The mode switcher owns Active
// and CursorLock; the orbit system owns the angles. Yaw/Pitch are radians,
// pitch positive looking up.
type Camera struct {
	Active     bool
	CursorLock bool

	Yaw      float64
	Pitch    float64
	Distance float64
	OffsetX  float64
	OffsetY  float64
}

// Forward is the camera's view direction.
func (c *Camera) Forward() common.Vec3 {
	if c == nil {
		return common.Vec3{}
	}
	cosP := math.Cos(c.Pitch)
	return common.Vec3{
		X: cosP * math.Sin(c.Yaw),
		Y: math.Sin(c.Pitch),
		Z: cosP * math.Cos(c.Yaw),
	}
}

var CameraComponent = NewComponentKind[Camera]()

// MenuCamera renders the UI layer; it is active exactly when the gameplay
// camera is not.
type MenuCamera struct {
	Active bool
}

var MenuCameraComponent = NewComponentKind[MenuCamera]()
