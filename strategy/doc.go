// Package strategy demonstrates the Strategy pattern: a family of
// interchangeable algorithms selected at runtime, behind one interface.
//
// 🚀 What is a Strategy?
//
//	The context holds a strategy and forwards work to it. Because every
//	algorithm satisfies the same small interface, callers swap one for
//	another without conditionals, and algorithm-specific structures
//	never leak into client code.
//
// Participants:
//   - Strategy   — the interface common to all algorithms.
//   - Fast, Slow — concrete strategies.
//   - Task       — the context: holds the current strategy, swaps it via
//     SetStrategy.
//
// ⚙️ Usage:
//
//	task := strategy.NewTask(strategy.Slow{})
//	task.Run()                      // "very slow algorithm ..."
//	task.SetStrategy(strategy.Fast{})
//	task.Run()                      // "very fast algorithm"
//
// Data exchange is the design tension: passing parameters keeps context
// and strategy decoupled but can mean wide interfaces; passing the
// context itself is cheap but couples tighter. Unlike states, strategies
// never know about each other and expose only the one operation.
// Sorting orders and compression codecs are everyday strategies.
package strategy
