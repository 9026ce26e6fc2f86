package system

import (
	"math"
	"testing"

	"github.com/milk9111/fissile/common"
	"github.com/milk9111/fissile/ecs"
	"github.com/milk9111/fissile/ecs/component"
)

const testDt = 1.0 / 60.0

func newLocomotionWorld(t *testing.T) (*ecs.World, ecs.Entity) {
	t.Helper()
	w := ecs.NewWorld()
	pw := ecs.NewPhysicsWorld()
	w.SetPhysicsWorld(pw)

	player := ecs.CreateEntity(w)
	mustAdd(t, w, player, component.TransformComponent, &component.Transform{})
	mustAdd(t, w, player, component.LocomotionComponent, &component.Locomotion{FloatHeight: 4})

	body := pw.AddPlayerBody(player, 0, 0, 0.5)
	mustAdd(t, w, player, component.BodyComponent, &component.Body{
		Body:     body,
		Height:   4,
		Grounded: true,
	})
	return w, player
}

func TestLocomotionAppliesPlaneVelocity(t *testing.T) {
	w, player := newLocomotionWorld(t)
	loco, _ := ecs.Get(w, player, component.LocomotionComponent)
	loco.DesiredVelocity = common.Vec3{X: 20, Z: -5}

	NewLocomotionSystem(testDt).Update(w)

	body, _ := ecs.Get(w, player, component.BodyComponent)
	vel := body.Body.Velocity()
	if vel.X != 20 || vel.Y != -5 {
		t.Fatalf("body velocity = %v, want {20 -5}", vel)
	}
}

func TestLocomotionSnapsYaw(t *testing.T) {
	w, player := newLocomotionWorld(t)
	loco, _ := ecs.Get(w, player, component.LocomotionComponent)
	loco.HasDesiredYaw = true
	loco.DesiredYaw = 1.25

	NewLocomotionSystem(testDt).Update(w)

	transform, _ := ecs.Get(w, player, component.TransformComponent)
	if transform.Yaw != 1.25 {
		t.Fatalf("yaw = %v, want 1.25", transform.Yaw)
	}
}

func TestLocomotionNoFacingRequestKeepsYaw(t *testing.T) {
	w, player := newLocomotionWorld(t)
	transform, _ := ecs.Get(w, player, component.TransformComponent)
	transform.Yaw = 0.75

	NewLocomotionSystem(testDt).Update(w)

	if transform.Yaw != 0.75 {
		t.Fatalf("yaw drifted to %v without a request", transform.Yaw)
	}
}

func TestLocomotionJumpReachesApexAndLands(t *testing.T) {
	w, player := newLocomotionWorld(t)
	loco, _ := ecs.Get(w, player, component.LocomotionComponent)
	loco.JumpRequested = true
	loco.JumpHeight = 2.5

	sys := NewLocomotionSystem(testDt)

	maxHeight := 4.0
	landedAt := -1
	for i := 0; i < 600; i++ {
		sys.Update(w)
		body, _ := ecs.Get(w, player, component.BodyComponent)
		if body.Height > maxHeight {
			maxHeight = body.Height
		}
		if body.Grounded && i > 1 {
			landedAt = i
			break
		}
	}

	if landedAt < 0 {
		t.Fatalf("player never landed")
	}
	apex := maxHeight - 4
	if math.Abs(apex-2.5) > 0.2 {
		t.Fatalf("jump apex %v above float height, want about 2.5", apex)
	}

	body, _ := ecs.Get(w, player, component.BodyComponent)
	if body.Height != 4 {
		t.Fatalf("landing height = %v, want 4", body.Height)
	}
	if body.VerticalVel != 0 {
		t.Fatalf("vertical velocity after landing = %v", body.VerticalVel)
	}
}

func TestLocomotionAirborneJumpIgnored(t *testing.T) {
	w, player := newLocomotionWorld(t)
	loco, _ := ecs.Get(w, player, component.LocomotionComponent)
	loco.JumpRequested = true
	loco.JumpHeight = 2.5

	sys := NewLocomotionSystem(testDt)
	sys.Update(w)

	body, _ := ecs.Get(w, player, component.BodyComponent)
	launchVel := body.VerticalVel
	if body.Grounded {
		t.Fatalf("jump should leave the ground")
	}

	// Mashing jump mid-air must not re-launch.
	loco.JumpRequested = true
	sys.Update(w)
	if body.VerticalVel > launchVel {
		t.Fatalf("airborne jump re-launched: %v > %v", body.VerticalVel, launchVel)
	}
	if loco.JumpRequested {
		t.Fatalf("jump request should be consumed every tick")
	}
}
