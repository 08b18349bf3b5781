package warehouse

import (
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"
)

// Status is the operational state of a warehouse.
type Status int

const (
	// Unknown (0) catches uninitialised values.
	Unknown Status = iota
	// Active warehouses accept shipments.
	Active
	// Inactive warehouses are closed.
	Inactive
	// Maintenance warehouses are temporarily unavailable.
	Maintenance
)

var statusNames = map[Status]string{
	Active:      "ACTIVE",
	Inactive:    "INACTIVE",
	Maintenance: "MAINTENANCE",
}

// ParseStatus converts the stored name (case-insensitive) into a Status.
func ParseStatus(s string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for status, n := range statusNames {
		if n == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("warehouse status", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("warehouse status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}
