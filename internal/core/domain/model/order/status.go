package order

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It is derived from the
// completion state of its milestones:
//
//   - Created: only the creation milestone is complete
//   - InProgress: at least one later milestone is complete, the last is not
//   - Delivered: the last milestone is complete (final state)
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota
	// Created is the status of a freshly created order.
	Created
	// InProgress orders are being handled by operations staff.
	InProgress
	// Delivered orders have reached the customer.
	Delivered
)

var statusStrings = map[Status]string{
	Created:    "Created",
	InProgress: "InProgress",
	Delivered:  "Delivered",
}

// Validate checks that the status is Created, InProgress or Delivered.
func (s Status) Validate() error {
	if _, ok := statusStrings[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the status name, or "Unknown".
func (s Status) String() string {
	if str, ok := statusStrings[s]; ok {
		return str
	}
	return "Unknown"
}

// IsFinal reports whether no further milestone can be completed.
func (s Status) IsFinal() bool {
	return s == Delivered
}

// statusFor derives the status from an ordered milestone list.
func statusFor(milestones []*Milestone) Status {
	if len(milestones) == 0 {
		return Unknown
	}
	if milestones[len(milestones)-1].IsCompleted() {
		return Delivered
	}
	for _, m := range milestones[1:] {
		if m.IsCompleted() {
			return InProgress
		}
	}
	return Created
}
