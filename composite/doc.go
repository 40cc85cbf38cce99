// Package composite demonstrates the Composite pattern: composing
// objects into tree structures so clients treat single objects and whole
// compositions uniformly.
//
// 🚀 What is a Composite?
//
//	One interface represents both primitives and their containers. A
//	container holds any mix of leaves and further containers, and
//	forwards each request to all of its children. Wherever client code
//	expects a primitive, a whole subtree may stand in.
//
// Participants:
//   - Graphic   — the component interface shared by leaves and groups.
//   - Ellipse   — a leaf: renders itself, has no children.
//   - Group     — the composite: manages children (Add/Remove) and
//     renders by concatenating their renderings.
//
// ⚙️ Usage:
//
//	g := composite.NewGroup()
//	g.Add(composite.Ellipse{}, composite.NewGroup())
//	out := g.Render()
//
// Composite and Decorator often share a component interface; a decorator
// is in effect a composite of exactly one child that adds behaviour.
// Because any Graphic may be added anywhere, nothing restricts which
// types end up inside a group — if that matters, it takes runtime
// checks. Go's value semantics sidestep the ownership questions the
// textbook spends ink on; a Group simply holds its children's values or
// pointers, both fine as long as nobody builds a cycle.
package composite
