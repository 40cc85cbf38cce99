package mediator

import "errors"

// ErrNotRegistered is returned when an action needs a colleague that was
// never registered with the mediator.
var ErrNotRegistered = errors.New("mediator: colleague not registered")

// Button is a colleague: it counts its presses and nothing more.
type Button struct {
	count int
}

// NewButton returns an unpressed button.
func NewButton() *Button {
	return &Button{}
}

// Press records one press.
func (b *Button) Press() { b.count++ }

// PressCount reports how often the button was pressed.
func (b *Button) PressCount() int { return b.count }

// Display is a colleague rendering status lines.
type Display struct{}

// Print renders a status line.
func (Display) Print(status string) string { return status }

// Mediator coordinates the dialog's colleagues.
type Mediator interface {
	View() (string, error)
	Search() (string, error)
	Book() (string, error)
	PressCounts() (view, search, book int)
}

// Dialog is the concrete mediator for the booking dialog. All
// interaction between buttons and display is encoded here and nowhere
// else.
type Dialog struct {
	view    *Button
	search  *Button
	book    *Button
	display *Display
}

// NewDialog returns a dialog with no colleagues registered.
func NewDialog() *Dialog {
	return &Dialog{}
}

// RegisterView attaches the view button.
func (d *Dialog) RegisterView(b *Button) { d.view = b }

// RegisterSearch attaches the search button.
func (d *Dialog) RegisterSearch(b *Button) { d.search = b }

// RegisterBook attaches the book button.
func (d *Dialog) RegisterBook(b *Button) { d.book = b }

// RegisterDisplay attaches the display.
func (d *Dialog) RegisterDisplay(disp *Display) { d.display = disp }

// View presses the view button and shows "viewing" on the display.
func (d *Dialog) View() (string, error) {
	return d.act(d.view, "viewing")
}

// Search presses the search button and shows "searching".
func (d *Dialog) Search() (string, error) {
	return d.act(d.search, "searching")
}

// Book presses the book button and shows "booking".
func (d *Dialog) Book() (string, error) {
	return d.act(d.book, "booking")
}

// act is the shared choreography: bump the button, print the status.
func (d *Dialog) act(b *Button, status string) (string, error) {
	if b == nil || d.display == nil {
		return "", ErrNotRegistered
	}
	b.Press()

	return d.display.Print(status), nil
}

// PressCounts reports how often each button was pressed. Unregistered
// buttons count as zero.
func (d *Dialog) PressCounts() (view, search, book int) {
	if d.view != nil {
		view = d.view.PressCount()
	}
	if d.search != nil {
		search = d.search.PressCount()
	}
	if d.book != nil {
		book = d.book.PressCount()
	}

	return view, search, book
}
