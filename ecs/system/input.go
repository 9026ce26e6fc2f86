package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/fissile/ecs"
	"github.com/milk9111/fissile/ecs/component"
)

// InputSystem snapshots raw keyboard and mouse state into every Input
// component once per tick. Everything downstream reads the snapshot, never
// the device.
type InputSystem struct {
	lastMouseX int
	lastMouseY int
	hasMouse   bool
}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	forward := ebiten.IsKeyPressed(ebiten.KeyW)
	back := ebiten.IsKeyPressed(ebiten.KeyS)
	left := ebiten.IsKeyPressed(ebiten.KeyA)
	right := ebiten.IsKeyPressed(ebiten.KeyD)
	jump := ebiten.IsKeyPressed(ebiten.KeySpace)
	pausePressed := inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	lockPressed := inpututil.IsKeyJustPressed(ebiten.KeyC)

	mx, my := ebiten.CursorPosition()
	dx, dy := 0.0, 0.0
	if i.hasMouse {
		dx = float64(mx - i.lastMouseX)
		dy = float64(my - i.lastMouseY)
	}
	i.lastMouseX, i.lastMouseY = mx, my
	i.hasMouse = true

	ecs.ForEach(w, component.InputComponent, func(_ ecs.Entity, input *component.Input) {
		input.Forward = forward
		input.Back = back
		input.Left = left
		input.Right = right
		input.Jump = jump
		input.PauseJustPressed = pausePressed
		input.LockJustPressed = lockPressed
		input.MouseDX = dx
		input.MouseDY = dy
	})
}
