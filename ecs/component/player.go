package component

// PlayerTag marks the single controllable entity; it is also the camera
// target. The spawn gate in the setup system keeps it a singleton while in
// the game state.
type PlayerTag struct{}

var PlayerTagComponent = NewComponentKind[PlayerTag]()

// Player holds the locomotion tuning for the controllable sphere.
type Player struct {
	MoveSpeed   float64
	JumpHeight  float64
	FloatHeight float64
	Radius      float64
}

var PlayerComponent = NewComponentKind[Player]()
