package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/fissile/common"
	"github.com/milk9111/fissile/ecs"
	"github.com/milk9111/fissile/ecs/component"
)

const sceneScale = 6 // pixels per world unit in the top-down view

// drawScene renders a top-down view of the ground plane: world X maps to
// screen x and world Z to screen y, centered on the screen. It is a stand-in
// for a real 3D renderer but enough to play the game.
func (g *Game) drawScene(screen *ebiten.Image) {
	screen.Fill(color.NRGBA{R: 0x10, G: 0x12, B: 0x18, A: 0xff})

	cx := float32(common.BaseWidth) / 2
	cy := float32(common.BaseHeight) / 2

	ecs.ForEach2(g.world, component.WinTriggerComponent, component.TransformComponent,
		func(_ ecs.Entity, trigger *component.WinTrigger, t *component.Transform) {
			x := cx + float32(t.Pos.X)*sceneScale
			y := cy + float32(t.Pos.Z)*sceneScale
			vector.DrawFilledCircle(screen, x, y, float32(trigger.Radius)*sceneScale, color.NRGBA{R: 0xd8, G: 0x40, B: 0x30, A: 0xff}, true)
		})

	ecs.ForEach2(g.world, component.PlayerTagComponent, component.TransformComponent,
		func(e ecs.Entity, _ *component.PlayerTag, t *component.Transform) {
			x := cx + float32(t.Pos.X)*sceneScale
			y := cy + float32(t.Pos.Z)*sceneScale

			// Radius swells with height so jumps read in the top-down view.
			radius := float32(0.5 * sceneScale)
			if body, ok := ecs.Get(g.world, e, component.BodyComponent); ok {
				radius += float32(body.Height-4) * 0.5
				if radius < 2 {
					radius = 2
				}
			}
			vector.DrawFilledCircle(screen, x, y, radius, color.NRGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}, true)

			// Facing indicator.
			fwd := t.Forward()
			vector.StrokeLine(screen, x, y,
				x+float32(fwd.X)*radius*2, y+float32(fwd.Z)*radius*2,
				1, color.NRGBA{R: 0x80, G: 0xc0, B: 0xff, A: 0xff}, true)
		})
}
