// Package proxy demonstrates the Proxy pattern: a surrogate standing in
// for another object to control access to it.
//
// 🚀 What is a Proxy?
//
//	Proxy and subject share one interface, so clients cannot tell which
//	they hold. The proxy decides when — and whether — to forward.
//	The classic flavours:
//	  • protection proxy — checks preconditions before forwarding
//	  • virtual proxy    — delays building an expensive subject until
//	    first use
//	  • remote proxy     — local representative for a remote object
//	  • smart reference  — extra bookkeeping per access (counting,
//	    caching, copy-on-write)
//
// This package implements the first two.
//
// Participants:
//   - Car        — the subject interface shared by proxy and real object.
//   - Engine     — the real subject.
//   - DriverGate — a protection proxy: forwards Drive only for drivers
//     over 18.
//   - LazyCar    — a virtual proxy: constructs its Engine on first Drive.
//
// ⚙️ Usage:
//
//	gate := proxy.NewDriverGate(19, proxy.Engine{})
//	fmt.Println(gate.Drive()) // "car is driving"
//
// One caution carried over from the textbook: identity of the proxy and
// identity of its subject differ, so comparisons across the boundary
// surprise.
package proxy
