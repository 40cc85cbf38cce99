// Package chain demonstrates the Chain of Responsibility pattern:
// decoupling a request's sender from its receiver by passing the request
// along a chain of handlers until one takes it.
//
// 🚀 What is a Chain of Responsibility?
//
//	Each handler knows which requests it can deal with; everything else
//	is forwarded to its successor. It is an object-shaped version of a
//	cascade of ifs, with the advantage that the links can be rearranged
//	and reconfigured at runtime.
//
// The example is the purchasing chain: a manager approves small spends,
// a director bigger ones, and so on up to the president. A request that
// tops even the president's limit falls off the end of the chain as
// ErrNoApprover.
//
// Participants:
//   - Approver — the handler interface.
//   - Officer  — a concrete handler with a role, a spending limit and an
//     optional successor.
//   - Request  — the request travelling the chain.
//
// ⚙️ Usage:
//
//	president := chain.NewOfficer("president", 40_000, nil)
//	manager := chain.NewOfficer("manager", 5_000, president)
//	verdict, err := manager.Approve(chain.Request{Amount: 500, Purpose: "desk repair"})
//
// Handlers may also fan out instead of merely escalating, forming a tree
// of responsibilities — logging frameworks do exactly that. The shape is
// near-identical to Decorator; the difference is that exactly one link
// handles each request here, while every decorator layer acts.
package chain
