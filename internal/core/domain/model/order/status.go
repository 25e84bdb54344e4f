package order

import (
	"errors"
	"fmt"

	"nailorders/internal/pkg/errs"
)

// ErrUnknownStatus is matched (errors.Is) by every error produced for a status
// outside the defined sequence. Advancing the terminal status is not an error.
var ErrUnknownStatus = errors.New("unknown status")

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	DepositPaid ──> Ordered ──> Shipped
//
// Transitions only move forward by one step (see Next). Manual edits may still
// set any member directly; that path does not go through the workflow.
type Status int

const (
	// Unknown marks a value outside the sequence, including uninitialized Status values.
	Unknown Status = iota

	// DepositPaid is the initial status: the customer paid the deposit.
	DepositPaid

	// Ordered indicates the nails were ordered from production.
	Ordered

	// Shipped indicates the order was sent out. Terminal state.
	Shipped
)

// sequence is the workflow order. Index 0 is the earliest status.
var sequence = []Status{DepositPaid, Ordered, Shipped}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "unknown",
		DepositPaid: "deposit_paid",
		Ordered:     "ordered",
		Shipped:     "shipped",
	}
}

// Statuses returns the workflow sequence, earliest first. Each status doubles
// as a list tab.
func Statuses() []Status {
	out := make([]Status, len(sequence))
	copy(out, sequence)
	return out
}

// ParseStatus maps a persisted or client-supplied name to a Status.
// Names outside the sequence map to Unknown.
func ParseStatus(s string) Status {
	for _, st := range sequence {
		if getStatusStrings()[st] == s {
			return st
		}
	}
	return Unknown
}

// String returns the persisted name of the status, "unknown" for values
// outside the sequence.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate reports whether the status is a member of the sequence.
//
// Returns:
//   - nil for DepositPaid, Ordered and Shipped
//   - a ValueIsInvalidError matching ErrUnknownStatus otherwise
func (s Status) Validate() error {
	if s.position() < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%w: %d is not in the status sequence", ErrUnknownStatus, int(s)),
		)
	}
	return nil
}

// IsTerminal reports whether no forward transition exists from s.
func (s Status) IsTerminal() bool {
	return s == sequence[len(sequence)-1]
}

// Next returns the status one position after s.
//
// Returns:
//   - (next, nil) when s is a member that is not last
//   - (s, nil) when s is the terminal status; advancing it is a no-op
//   - (Unknown, error matching ErrUnknownStatus) when s is not a member
//
// Example:
//
//	next, err := order.DepositPaid.Next() // Ordered, nil
//	next, err = order.Shipped.Next()      // Shipped, nil
//	_, err = order.Unknown.Next()         // errors.Is(err, order.ErrUnknownStatus)
func (s Status) Next() (Status, error) {
	pos := s.position()
	if pos < 0 {
		return Unknown, s.Validate()
	}
	if pos == len(sequence)-1 {
		return s, nil
	}
	return sequence[pos+1], nil
}

func (s Status) position() int {
	for i, st := range sequence {
		if st == s {
			return i
		}
	}
	return -1
}
