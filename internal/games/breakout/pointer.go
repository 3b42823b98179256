package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Pointer marks where the ball will meet the paddle. It is recomputed every
// frame by Ball.ReflectOffPaddle and has no state of its own.
type Pointer struct {
	core.Instance
	Visible bool
}

// NewPointer creates a hidden pointer.
func NewPointer(size float32) Pointer {
	return Pointer{
		Instance: core.Instance{Size: core.V(size, size), Color: core.Red},
	}
}
