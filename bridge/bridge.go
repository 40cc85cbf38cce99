package bridge

import "fmt"

// Renderer is the implementor interface: primitive operations only.
type Renderer interface {
	Circle() string
	Rectangle() string
}

// RedInk renders every primitive in red.
type RedInk struct{}

// Circle draws a red circle.
func (RedInk) Circle() string { return "red circle" }

// Rectangle draws a red rectangle.
func (RedInk) Rectangle() string { return "red rectangle" }

// BlueInk renders every primitive in blue.
type BlueInk struct{}

// Circle draws a blue circle.
func (BlueInk) Circle() string { return "blue circle" }

// Rectangle draws a blue rectangle.
func (BlueInk) Rectangle() string { return "blue rectangle" }

// Shape is the abstraction. It owns a Renderer and builds higher-level
// operations out of the renderer's primitives.
type Shape struct {
	renderer Renderer
}

// NewShape returns a Shape drawn with r.
func NewShape(r Renderer) *Shape {
	return &Shape{renderer: r}
}

// SetRenderer swaps the implementation at runtime.
func (s *Shape) SetRenderer(r Renderer) {
	s.renderer = r
}

// Draw composes the renderer's primitives into one picture. It knows
// nothing about which concrete renderer is underneath.
func (s *Shape) Draw() string {
	return fmt.Sprintf("Shape drawing a %s and a %s",
		s.renderer.Circle(), s.renderer.Rectangle())
}
