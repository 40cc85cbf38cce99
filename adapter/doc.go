// Package adapter demonstrates the Adapter pattern: making an existing
// type usable through an interface it was never written for, without
// touching its source.
//
// Participants:
//   - Rechargeable — the target interface the client requires.
//   - Client       — code written purely against Rechargeable.
//   - Phone        — the adaptee: it can Charge, but under the wrong
//     method name and shape.
//   - USBCharger   — the adapter: wraps a Phone and satisfies
//     Rechargeable by forwarding to it.
//
// The adapter here uses composition (it owns its Phone), the usual Go
// shape. The forwarding work can be trivial renaming, as here, or real
// conversion of arguments and results; the further apart the two
// interfaces sit, the more the adapter costs. Two-way adapters also
// expose the adaptee's own interface so the wrapped object can still be
// used where the adaptee is expected.
package adapter
