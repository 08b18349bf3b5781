package order

import (
	"errors"
	"fmt"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrMilestoneIsNotConstructed is returned when a Milestone was not built by NewMilestone.
	ErrMilestoneIsNotConstructed = errors.New("Milestone must be created via NewMilestone constructor")

	// ErrMilestoneAlreadyCompleted is returned when completing a completed milestone.
	ErrMilestoneAlreadyCompleted = errors.New("milestone is already completed")

	// ErrMilestoneSequenceIsInvalid is returned when a milestone list breaks the ordering rules.
	ErrMilestoneSequenceIsInvalid = errors.New("milestone sequence is invalid")
)

// Milestone is a checkpoint in the fulfilment of an order.
type Milestone struct {
	id             kernel.UUID
	description    string
	coordinates    *kernel.Location
	warehouseID    *kernel.UUID
	isCompleted    bool
	executionOrder int
	isLast         bool

	isConstructed bool
}

// NewMilestone creates a milestone.
//
// Parameters:
//   - id: milestone identifier
//   - description: human readable step, e.g. "Order Accepted"
//   - coordinates: where the step happens, nil when unknown
//   - warehouseID: facility handling the step, nil when none
//   - executionOrder: position in the traversal sequence (>= 1)
//   - isLast: whether this is the final milestone of the order
//   - isCompleted: initial completion flag
func NewMilestone(
	id kernel.UUID,
	description string,
	coordinates *kernel.Location,
	warehouseID *kernel.UUID,
	executionOrder int,
	isLast bool,
	isCompleted bool,
) (*Milestone, error) {
	m := &Milestone{
		isLast:        isLast,
		isCompleted:   isCompleted,
		isConstructed: true,
	}

	if err := errors.Join(
		m.setID(id),
		m.setDescription(description),
		m.setCoordinates(coordinates),
		m.setWarehouseID(warehouseID),
		m.setExecutionOrder(executionOrder),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// Validate reports whether the milestone was built by NewMilestone.
func (m *Milestone) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMilestoneIsNotConstructed
	}
	return nil
}

// ID returns the milestone identifier.
func (m *Milestone) ID() kernel.UUID {
	return m.id
}

// Description returns the step description.
func (m *Milestone) Description() string {
	return m.description
}

// Coordinates returns where the step happens, or nil.
func (m *Milestone) Coordinates() *kernel.Location {
	if m.coordinates == nil {
		return nil
	}
	loc := *m.coordinates
	return &loc
}

// WarehouseID returns the handling facility, or nil.
func (m *Milestone) WarehouseID() *kernel.UUID {
	if m.warehouseID == nil {
		return nil
	}
	id := *m.warehouseID
	return &id
}

// IsCompleted reports whether the step has been done.
func (m *Milestone) IsCompleted() bool {
	return m.isCompleted
}

// ExecutionOrder returns the position of the milestone in the sequence.
func (m *Milestone) ExecutionOrder() int {
	return m.executionOrder
}

// IsLast reports whether this is the final milestone of the order.
func (m *Milestone) IsLast() bool {
	return m.isLast
}

// Complete marks the milestone done.
func (m *Milestone) Complete() error {
	if m.isCompleted {
		return ErrMilestoneAlreadyCompleted
	}
	m.isCompleted = true
	return nil
}

// ValidateSequence checks the ordering rules of a milestone list: execution
// orders start at 1 and strictly increase, and exactly one milestone (the one
// with the highest execution order) is flagged as last.
func ValidateSequence(milestones []*Milestone) error {
	if len(milestones) == 0 {
		return fmt.Errorf("%w: no milestones", ErrMilestoneSequenceIsInvalid)
	}

	lastCount := 0
	for i, m := range milestones {
		if err := m.Validate(); err != nil {
			return err
		}
		if i == 0 && m.executionOrder != 1 {
			return fmt.Errorf("%w: first execution order is %d, not 1", ErrMilestoneSequenceIsInvalid, m.executionOrder)
		}
		if i > 0 && m.executionOrder <= milestones[i-1].executionOrder {
			return fmt.Errorf("%w: execution order %d does not follow %d",
				ErrMilestoneSequenceIsInvalid, m.executionOrder, milestones[i-1].executionOrder)
		}
		if m.isLast {
			lastCount++
		}
	}

	if lastCount != 1 {
		return fmt.Errorf("%w: %d milestones are flagged as last", ErrMilestoneSequenceIsInvalid, lastCount)
	}
	if !milestones[len(milestones)-1].isLast {
		return fmt.Errorf("%w: the last flag is not on the final milestone", ErrMilestoneSequenceIsInvalid)
	}

	return nil
}

func (m *Milestone) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Milestone) setDescription(description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return errs.NewValueIsRequiredError("milestone description")
	}
	m.description = description
	return nil
}

func (m *Milestone) setCoordinates(coordinates *kernel.Location) error {
	if coordinates == nil {
		return nil
	}
	if err := coordinates.Validate(); err != nil {
		return err
	}
	loc := *coordinates
	m.coordinates = &loc
	return nil
}

func (m *Milestone) setWarehouseID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	wid := *id
	m.warehouseID = &wid
	return nil
}

func (m *Milestone) setExecutionOrder(executionOrder int) error {
	if executionOrder < 1 {
		return errs.NewValueIsInvalidErrorWithCause("execution order", fmt.Errorf("%d is less than 1", executionOrder))
	}
	m.executionOrder = executionOrder
	return nil
}
