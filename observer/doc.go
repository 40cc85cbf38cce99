// Package observer demonstrates the Observer pattern: a one-to-many
// dependency where every registered observer is notified automatically
// when the subject's state changes.
//
// 🚀 What is an Observer?
//
//	Publish–subscribe between objects. The subject keeps a list of
//	observers and pushes each change to all of them; the observers never
//	hold the subject. That keeps data and its presentations consistent
//	without coupling them — the heart of Model-View separation.
//
// Participants:
//   - Observer — the notification interface (Update).
//   - Model    — the concrete subject: holds the datum, notifies on
//     SetData, supports Register and Unregister.
//   - View     — a concrete observer recording what it was told.
//   - ZapSink  — an observer forwarding notifications into a zap
//     logger, showing the pattern feeding real infrastructure.
//
// ⚙️ Usage:
//
//	m := observer.NewModel()
//	v := observer.NewView("view_0")
//	m.Register(v)
//	m.SetData(24) // v now knows 24
//
// This is the push model: the update carries the data, so observers
// need no back-reference to the subject. Watch for cascades (one change
// fanning into many updates) and for observers outliving their
// registration — Unregister exists for exactly that. With many subjects
// and observers, promote the wiring into a mediator.
package observer
