// Package facade demonstrates the Facade pattern: one unified,
// higher-level interface over a subsystem of cooperating parts.
//
// A compiler is the canonical case. Inside live parsers, code
// generators, optimisers and linkers, each with its own interface; most
// callers just want "compile this". The facade knows which subsystem
// part handles which step and sequences them, without hiding the parts
// from the few callers that need them directly — every stage here stays
// exported.
//
// Participants:
//   - Compiler — the facade; delegates to the stages in order.
//   - Parser, CodeGenerator, Optimiser, Linker — subsystem parts. They
//     do the work and know nothing about the facade.
//
// Coupling can be loosened further by making the facade itself an
// interface with one implementation per subsystem variant.
package facade
