// Package state demonstrates the State pattern: an object whose
// behaviour changes with its internal state, implemented as one type per
// state instead of conditionals scattered through the code.
//
// 🚀 What is the State pattern?
//
//	A state machine in object form. The context delegates state-
//	dependent requests to its current state object; transitions replace
//	that object with the next one. Each state's behaviour lives in its
//	own type, new states slot in without touching the others, and
//	impossible transitions simply return the current state.
//
// The example is a blog post workflow:
//
//	draft ──RequestReview──▶ pending review ──Approve──▶ published
//
// Only a published post reveals its content.
//
// Participants:
//   - Post — the context: holds the text and the current state, and
//     exposes the stable interface clients use.
//   - stage — the state interface: review, approve, content.
//   - draft, pendingReview, published — concrete states.
//
// ⚙️ Usage:
//
//	p := state.NewPost()
//	p.AddText("I ate a salad for lunch today")
//	p.Content()       // ""
//	p.RequestReview()
//	p.Approve()
//	p.Content()       // the text
//
// Transitions here are decided by the states themselves; the context
// just installs whatever state a transition hands back. The states are
// stateless values, so they are shared rather than re-allocated — the
// textbook's note that state instances are usually singletons.
package state
