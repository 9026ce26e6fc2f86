package component

import "github.com/jakecoffman/cp/v2"

// Body links an entity to its dynamic physics body. Height and VerticalVel
// carry the analytically solved vertical axis; the Chipmunk body only moves
// on the ground plane.
type Body struct {
	Body  *cp.Body
	Shape *cp.Shape

	Height      float64
	VerticalVel float64
	Grounded    bool
}

var BodyComponent = NewComponentKind[Body]()
