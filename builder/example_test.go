package builder_test

import (
	"fmt"

	"github.com/patternsmith/gofkit/builder"
)

// ExampleDirector shows the director running its recipe against a
// concrete builder. The calling code never sees the assembly steps.
func ExampleDirector() {
	d := builder.NewDirector(builder.NewCarBuilder())

	car, err := d.Construct()
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(car.Description())
	// Output:
	// This is a red car with 4 wheels and 5 seats.
}
