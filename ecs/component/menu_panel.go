package component

import "github.com/milk9111/fissile/state"

// MenuPanel ties a UI panel to the game state it is shown in. Visibility is
// a pure function of the current state, recomputed by the mode switcher on
// every state change.
type MenuPanel struct {
	ShownIn state.GameState
	Visible bool
}

var MenuPanelComponent = NewComponentKind[MenuPanel]()
