package component

// Input is the per-tick snapshot of raw input state. The input system
// writes it; the control mapper, pause, and camera systems only read it.
type Input struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool
	Jump    bool

	PauseJustPressed bool
	LockJustPressed  bool

	MouseDX float64
	MouseDY float64
}

var InputComponent = NewComponentKind[Input]()
