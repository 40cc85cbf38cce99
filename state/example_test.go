package state_test

import (
	"fmt"

	"github.com/patternsmith/gofkit/state"
)

// ExamplePost shows the content staying hidden until the workflow
// completes.
func ExamplePost() {
	p := state.NewPost()
	p.AddText("I ate a salad for lunch today")

	fmt.Printf("%s: %q\n", p.Stage(), p.Content())
	p.RequestReview()
	fmt.Printf("%s: %q\n", p.Stage(), p.Content())
	p.Approve()
	fmt.Printf("%s: %q\n", p.Stage(), p.Content())
	// Output:
	// draft: ""
	// pending review: ""
	// published: "I ate a salad for lunch today"
}
