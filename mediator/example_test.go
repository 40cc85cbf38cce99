package mediator_test

import (
	"fmt"

	"github.com/patternsmith/gofkit/mediator"
)

// ExampleDialog presses buttons that know nothing of the display; the
// mediator turns each press into a status line and a counted press.
func ExampleDialog() {
	d := mediator.NewDialog()
	d.RegisterView(mediator.NewButton())
	d.RegisterSearch(mediator.NewButton())
	d.RegisterBook(mediator.NewButton())
	d.RegisterDisplay(&mediator.Display{})

	for _, act := range []func() (string, error){d.View, d.Book, d.View} {
		status, err := act()
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		fmt.Println(status)
	}

	view, search, book := d.PressCounts()
	fmt.Printf("presses: view=%d search=%d book=%d\n", view, search, book)
	// Output:
	// viewing
	// booking
	// viewing
	// presses: view=2 search=0 book=1
}
