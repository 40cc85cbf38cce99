// Package mediator demonstrates the Mediator pattern: one object
// encapsulating how a set of colleagues interact, so the colleagues
// never refer to each other directly.
//
// 🚀 What is a Mediator?
//
//	Every interaction runs through the hub. Colleagues stay small and
//	reusable because each one knows only the mediator, and the
//	choreography between them lives in exactly one place where it can
//	be varied independently.
//
// The example is a booking dialog: three buttons and a display. Pressing
// a button must both bump that button's counter and put a status on the
// display — but buttons know nothing of displays. The mediator wires the
// two effects together.
//
// Participants:
//   - Mediator — the coordination interface.
//   - Dialog   — the concrete mediator owning the choreography.
//   - Button   — a colleague counting its presses.
//   - Display  — a colleague printing statuses.
//
// ⚙️ Usage:
//
//	d := mediator.NewDialog()
//	d.RegisterView(mediator.NewButton())
//	d.RegisterDisplay(&mediator.Display{})
//	status, err := d.View() // "viewing"
//
// Driving an action whose colleagues are not registered yet returns
// ErrNotRegistered rather than failing later and further away. With
// many subjects and many observers, a mediator is also the standard cure
// for observer spaghetti: it observes the subjects and notifies the
// observers.
package mediator
