package builder

import "fmt"

// Car is the product. All fields are plain values; a built Car is
// independent of the builder that produced it.
type Car struct {
	Wheels int
	Seats  int
	Colour string
}

// Description renders the car for humans.
func (c Car) Description() string {
	return fmt.Sprintf("This is a %s car with %d wheels and %d seats.",
		c.Colour, c.Wheels, c.Seats)
}

// Builder is the abstract interface for supplying a car's parts.
// Concrete builders validate the accumulated parts in Build.
type Builder interface {
	Wheels(n int) Builder
	Seats(n int) Builder
	Colour(c string) Builder
	Build() (Car, error)
}

// CarBuilder accumulates parts for one Car. The zero value is not
// usable; construct via NewCarBuilder.
type CarBuilder struct {
	car Car
}

// NewCarBuilder returns a builder with an empty work in progress.
func NewCarBuilder() *CarBuilder {
	return &CarBuilder{}
}

// Wheels sets the wheel count.
func (b *CarBuilder) Wheels(n int) Builder {
	b.car.Wheels = n

	return b
}

// Seats sets the seat count.
func (b *CarBuilder) Seats(n int) Builder {
	b.car.Seats = n

	return b
}

// Colour sets the paint colour.
func (b *CarBuilder) Colour(c string) Builder {
	b.car.Colour = c

	return b
}

// Build validates the accumulated parts and returns the finished Car.
// Returns ErrWheelCount, ErrSeatCount or ErrNoColour on invalid input.
// The builder keeps its state, so Build may be called again after fixes.
func (b *CarBuilder) Build() (Car, error) {
	if b.car.Wheels < 3 {
		return Car{}, ErrWheelCount
	}
	if b.car.Seats < 1 {
		return Car{}, ErrSeatCount
	}
	if b.car.Colour == "" {
		return Car{}, ErrNoColour
	}

	return b.car, nil
}

// Director drives any Builder through the fixed recipe for a standard
// car. The director knows the order of steps; the builder knows the
// representation.
type Director struct {
	builder Builder
}

// NewDirector returns a Director driving b.
func NewDirector(b Builder) *Director {
	return &Director{builder: b}
}

// Construct runs the standard recipe: a red four-wheeled five-seater.
func (d *Director) Construct() (Car, error) {
	return d.builder.
		Colour("red").
		Wheels(4).
		Seats(5).
		Build()
}
