package component

// WinTrigger marks entities whose contact with the player ends the game in
// victory. Radius mirrors the registered sensor circle so the renderer does
// not need the physics world. Read-only after level setup.
type WinTrigger struct {
	Radius float64
}

var WinTriggerComponent = NewComponentKind[WinTrigger]()
