// Package bridge demonstrates the Bridge pattern: decoupling an
// abstraction from its implementation so the two can vary independently.
//
// 🚀 What is a Bridge?
//
//	Two layers. The implementor interface offers primitive operations;
//	the abstraction holds an implementor and composes those primitives
//	into higher-level behaviour. Swap the implementor and the
//	abstraction's whole surface changes rendering without changing code.
//
// Participants:
//   - Renderer          — the implementor interface: primitive drawing
//     operations only.
//   - RedInk, BlueInk   — concrete implementors.
//   - Shape             — the abstraction: owns a Renderer and composes
//     its primitives in Draw.
//
// ⚙️ Usage:
//
//	s := bridge.NewShape(bridge.BlueInk{})
//	fmt.Println(s.Draw())
//
// The implementor's interface need not mirror the abstraction's; keeping
// it down to primitives is what lets Draw-style aggregate methods be
// written once, ignorant of every concrete renderer. Shape also allows
// swapping the renderer at runtime (SetRenderer), the variant the
// textbook notes for clients that learn the implementation late.
package bridge
