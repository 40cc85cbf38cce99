// Package command demonstrates the Command pattern: a request wrapped in
// an object, so requests can be parameterised, queued, logged and
// undone.
//
// 🚀 What is a Command?
//
//	The invoker holds command objects without knowing what they do or to
//	whom. Each command binds a receiver to one action; executing the
//	command performs the action, and keeping executed commands in a
//	history is what makes undo, redo and transactional rollback
//	possible.
//
// Participants:
//   - Command            — the interface: Execute plus Undo, so every
//     request knows its own inverse.
//   - TurnOn, TurnOff    — concrete commands binding a Light to one
//     action each.
//   - Switch             — the invoker: dispatches by name, records
//     history, and replays inverses for undo.
//   - Light              — the receiver that knows how to do the work.
//
// ⚙️ Usage:
//
//	sw := command.NewSwitch()
//	out, err := sw.Press("ON")   // "light turned on"
//	out, err = sw.Undo()         // "light turned off"
//
// Unknown command names return ErrUnknownCommand; an empty history
// returns ErrNothingToUndo. Variations worth knowing: macro commands
// (a sequence executed as one), wizard-style deferred execution, and
// batching several fine-grained commands into one undo step.
package command
