package facade_test

import (
	"fmt"

	"github.com/patternsmith/gofkit/facade"
)

// ExampleCompiler compiles in one call; the facade sequences the four
// subsystem stages behind it.
func ExampleCompiler() {
	c := facade.NewCompiler()

	fmt.Println(c.Run())
	// Output:
	// parsing source code
	// generating machine code
	// optimising generated machine code
	// linking code
}
