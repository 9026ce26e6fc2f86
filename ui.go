package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/fissile/common"
	"github.com/milk9111/fissile/state"
	"golang.org/x/image/font/basicfont"
)

// The menus use colored nine-slices and the built-in basic font, so no
// theme assets are needed.

// NewMainMenuUI builds the title screen with Start Game and Quit.
func NewMainMenuUI(g *Game) *ebitenui.UI {
	return newMenuUI("Fissile Material", []menuButton{
		{"Start Game", func() { g.store.Request(state.Game) }},
		{"Quit", func() { g.quit = true }},
	})
}

// NewPauseUI builds the centered pause menu with Resume and Quit.
func NewPauseUI(g *Game) *ebitenui.UI {
	return newMenuUI("Paused", []menuButton{
		{"Resume", func() { g.store.Request(state.Game) }},
		{"Quit", func() { g.quit = true }},
	})
}

// NewWinUI builds the win screen with Play Again and Quit.
func NewWinUI(g *Game) *ebitenui.UI {
	return newMenuUI("Congratulations!", []menuButton{
		{"Play Again", func() { g.store.Request(state.Game) }},
		{"Quit", func() { g.quit = true }},
	})
}

type menuButton struct {
	label   string
	clicked func()
}

func newMenuUI(title string, buttons []menuButton) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	btnTextColor := &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/2, common.BaseHeight/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)

	panel.AddChild(widget.NewText(
		widget.TextOpts.Text(title, &face, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	))

	for _, btn := range buttons {
		clicked := btn.clicked
		panel.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
			widget.ButtonOpts.Text(btn.label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				clicked()
			}),
		))
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}
