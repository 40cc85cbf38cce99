package chain

import (
	"errors"
	"fmt"
)

// ErrNoApprover is returned when a request exceeds every limit in the
// chain.
var ErrNoApprover = errors.New("chain: request amount is too high for every approver")

// Request is the purchase request travelling the chain.
type Request struct {
	// Amount in whole dollars.
	Amount int
	// Purpose of the spend, for the approval note.
	Purpose string
}

// Approver is the handler interface.
type Approver interface {
	// Approve handles the request or passes it on, returning the
	// approval note or ErrNoApprover.
	Approve(Request) (string, error)
}

// Officer is a concrete handler: it approves spends under its limit and
// escalates the rest to its successor.
type Officer struct {
	role  string
	limit int
	next  Approver
}

// NewOfficer returns an Officer with the given role and spending limit.
// next may be nil for the end of the chain.
func NewOfficer(role string, limit int, next Approver) *Officer {
	return &Officer{role: role, limit: limit, next: next}
}

// Approve handles requests under the officer's limit and forwards the
// rest. Falls off the end of the chain with ErrNoApprover.
func (o *Officer) Approve(r Request) (string, error) {
	if r.Amount < o.limit {
		return fmt.Sprintf("%s will approve $%d for %s", o.role, r.Amount, r.Purpose), nil
	}
	if o.next == nil {
		return "", ErrNoApprover
	}

	return o.next.Approve(r)
}
