package ecs

import (
	"math"

	"github.com/jakecoffman/cp/v2"
)

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypeTrigger
)

// PhysicsWorld owns the Chipmunk space. The simulation runs on the ground
// plane: cp X is world X and cp Y is world Z; the vertical axis is solved
// by the locomotion system. Trigger volumes are static circle sensors, the
// player a dynamic circle body.
//
// It also implements the proximity/contact sensor: Begin/Separate handlers
// between player and trigger shapes maintain a per-player contact entry
// that Contact exposes as an optional read.
type PhysicsWorld struct {
	space         *cp.Space
	handlersReady bool

	shapeToEntity map[*cp.Shape]Entity
	bodies        map[Entity]*cp.Body
	shapes        map[Entity]*cp.Shape
	contacts      map[Entity]Entity
}

// NewPhysicsWorld creates a zero-gravity plane space.
func NewPhysicsWorld() *PhysicsWorld {
	space := cp.NewSpace()
	space.Iterations = 20

	pw := &PhysicsWorld{
		space:         space,
		shapeToEntity: make(map[*cp.Shape]Entity),
		bodies:        make(map[Entity]*cp.Body),
		shapes:        make(map[Entity]*cp.Shape),
		contacts:      make(map[Entity]Entity),
	}
	pw.setupHandlers()
	return pw
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// AddTrigger registers a static circular trigger volume for an entity.
func (pw *PhysicsWorld) AddTrigger(e Entity, x, z, radius float64) {
	if pw == nil || pw.space == nil || !e.Valid() {
		return
	}
	shape := cp.NewCircle(pw.space.StaticBody, radius, cp.Vector{X: x, Y: z})
	shape.SetSensor(true)
	shape.SetCollisionType(collisionTypeTrigger)
	pw.space.AddShape(shape)
	pw.shapeToEntity[shape] = e
	pw.shapes[e] = shape
}

// AddPlayerBody creates the player's dynamic circle body.
func (pw *PhysicsWorld) AddPlayerBody(e Entity, x, z, radius float64) *cp.Body {
	if pw == nil || pw.space == nil || !e.Valid() {
		return nil
	}
	mass := 1.0
	body := cp.NewBody(mass, cp.MomentForCircle(mass, 0, radius, cp.Vector{}))
	body.SetPosition(cp.Vector{X: x, Y: z})
	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetFriction(0.8)
	shape.SetCollisionType(collisionTypePlayer)

	pw.space.AddBody(body)
	pw.space.AddShape(shape)
	pw.shapeToEntity[shape] = e
	pw.bodies[e] = body
	pw.shapes[e] = shape
	return body
}

// RemoveBody tears down an entity's body and shape. Unknown entities are a
// no-op so despawning twice is tolerated.
func (pw *PhysicsWorld) RemoveBody(e Entity) {
	if pw == nil || pw.space == nil {
		return
	}
	shape, ok := pw.shapes[e]
	if !ok {
		return
	}
	pw.space.RemoveShape(shape)
	delete(pw.shapeToEntity, shape)
	delete(pw.shapes, e)
	if body, ok := pw.bodies[e]; ok {
		pw.space.RemoveBody(body)
		delete(pw.bodies, e)
	}
	delete(pw.contacts, e)
	for player, contacted := range pw.contacts {
		if contacted == e {
			delete(pw.contacts, player)
		}
	}
}

// Body returns the dynamic body registered for an entity.
func (pw *PhysicsWorld) Body(e Entity) (*cp.Body, bool) {
	if pw == nil {
		return nil, false
	}
	body, ok := pw.bodies[e]
	return body, ok
}

// Contact is the proximity sensor read: the entity the player currently
// touches, if any.
func (pw *PhysicsWorld) Contact(player Entity) (Entity, bool) {
	if pw == nil {
		return 0, false
	}
	contacted, ok := pw.contacts[player]
	return contacted, ok
}

// Step advances the simulation.
func (pw *PhysicsWorld) Step(dt float64) {
	if pw == nil || pw.space == nil || dt <= 0 || math.IsNaN(dt) {
		return
	}
	pw.space.Step(dt)
}

func (pw *PhysicsWorld) setupHandlers() {
	if pw == nil || pw.handlersReady || pw.space == nil {
		return
	}

	handler := pw.space.NewCollisionHandler(collisionTypePlayer, collisionTypeTrigger)
	handler.UserData = pw
	handler.BeginFunc = func(arb *cp.Arbiter, _ *cp.Space, userData interface{}) bool {
		world, ok := userData.(*PhysicsWorld)
		if !ok || world == nil {
			return true
		}
		if player, trigger, ok := world.arbiterEntities(arb); ok {
			world.contacts[player] = trigger
		}
		return true
	}
	handler.SeparateFunc = func(arb *cp.Arbiter, _ *cp.Space, userData interface{}) {
		world, ok := userData.(*PhysicsWorld)
		if !ok || world == nil {
			return
		}
		if player, trigger, ok := world.arbiterEntities(arb); ok {
			if world.contacts[player] == trigger {
				delete(world.contacts, player)
			}
		}
	}

	pw.handlersReady = true
}

func (pw *PhysicsWorld) arbiterEntities(arb *cp.Arbiter) (player, trigger Entity, ok bool) {
	shapeA, shapeB := arb.Shapes()
	entA, okA := pw.shapeToEntity[shapeA]
	entB, okB := pw.shapeToEntity[shapeB]
	if !okA || !okB {
		return 0, 0, false
	}
	if shapeA.CollisionType() == collisionTypePlayer {
		return entA, entB, true
	}
	return entB, entA, true
}
