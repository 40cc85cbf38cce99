package decorator

import "fmt"

// Shape is the component interface preserved through every wrapping.
type Shape interface {
	// Description returns a human-readable description of the shape.
	Description() string
}

// Circle is a primitive shape.
type Circle struct {
	Radius float64
}

// Description reports the circle and its radius.
func (c Circle) Description() string {
	return fmt.Sprintf("Circle of radius %v", c.Radius)
}

// Coloured decorates any Shape with a colour.
type Coloured struct {
	shape  Shape
	colour string
}

// WithColour wraps shape, adding colour to its description.
func WithColour(colour string, shape Shape) Coloured {
	return Coloured{shape: shape, colour: colour}
}

// Description forwards to the wrapped shape and appends the colour.
func (c Coloured) Description() string {
	return fmt.Sprintf("%s which is coloured %s", c.shape.Description(), c.colour)
}
