// Package singleton demonstrates the Singleton pattern: exactly one
// instance of a type per process, reached through a single access point.
//
// 🚀 What is a Singleton?
//
//	The type itself guarantees there is only one of it. Clients call
//	Instance() and always receive the same object; construction is lazy
//	and happens on the first call, guarded by sync.Once so concurrent
//	first calls stay safe.
//
// Participants:
//   - Counter    — the singleton: a mutex-guarded value shared by all
//     callers.
//   - Instance() — the access point performing the once-only lazy
//     construction.
//
// ⚙️ Usage:
//
//	singleton.Instance().Incr()
//	n := singleton.Instance().Value()
//
// A singleton beats a plain package-level variable when construction
// needs runtime information, or when the instance must satisfy an
// interface. The costs are real too: it is shared mutable state, it
// couples its callers invisibly, and it makes tests order-sensitive.
// Reach for it sparingly — caches, hardware handles, and not much else.
package singleton
