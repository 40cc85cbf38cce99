// Package decorator demonstrates the Decorator pattern: attaching
// responsibilities to an object dynamically by wrapping it in another
// object with the same interface.
//
// 🚀 What is a Decorator?
//
//	A flexible alternative to subclassing. Each decorator holds a
//	component, satisfies the component's interface, forwards calls to
//	the wrapped component, and adds its own behaviour on the way
//	through. Decorators nest without limit, so any combination of
//	responsibilities can be assembled at runtime.
//
// Participants:
//   - Shape    — the component interface decorators must preserve.
//   - Circle   — a concrete component; the primitive being decorated.
//   - Coloured — the decorator: wraps any Shape and appends a colour to
//     its description.
//
// ⚙️ Usage:
//
//	c := decorator.Circle{Radius: 3.5}
//	red := decorator.WithColour("red", c)
//	greenRed := decorator.WithColour("green", red)
//
// Decorator is a degenerate Composite with exactly one child, plus added
// behaviour. One caution: a decorated component is not identical to the
// bare component, so identity comparisons across the wrapping boundary
// mislead. io.Reader wrappers like bufio.Reader are Go's everyday
// decorators.
package decorator
