package system

import (
	"github.com/milk9111/fissile/ecs"
	"github.com/milk9111/fissile/ecs/component"
)

// PhysicsSystem steps the Chipmunk space and syncs body positions back into
// transforms. The plane position comes from the body; the vertical axis is
// the analytically integrated Height.
type PhysicsSystem struct {
	dt float64
}

func NewPhysicsSystem(dt float64) *PhysicsSystem {
	return &PhysicsSystem{dt: dt}
}

func (p *PhysicsSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}

	pw.Step(p.dt)

	ecs.ForEach2(w, component.BodyComponent, component.TransformComponent, func(_ ecs.Entity, body *component.Body, t *component.Transform) {
		if body.Body == nil {
			return
		}
		pos := body.Body.Position()
		t.Pos.X = pos.X
		t.Pos.Z = pos.Y
		t.Pos.Y = body.Height
	})
}
