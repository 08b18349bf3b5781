package commands

import (
	"errors"
	"math"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCompleteMilestoneCommandIsNotConstructed = errors.New(
	"CompleteMilestoneCommand must be created via NewCompleteMilestoneCommand constructor",
)

// CompleteMilestoneCommand marks one milestone of an order as done.
type CompleteMilestoneCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	executionOrder int

	guard guard.ConstructorGuard
}

// NewCompleteMilestoneCommand creates a command for the milestone with the
// given 1-based execution order.
func NewCompleteMilestoneCommand(orderID kernel.UUID, executionOrder int) (CompleteMilestoneCommand, error) {
	cmd := CompleteMilestoneCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setExecutionOrder(executionOrder),
	); err != nil {
		return CompleteMilestoneCommand{}, err
	}

	return cmd, nil
}

func (c CompleteMilestoneCommand) Validate() error {
	return c.guard.Validate(ErrCompleteMilestoneCommandIsNotConstructed)
}

func (c CompleteMilestoneCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CompleteMilestoneCommand) ExecutionOrder() int {
	return c.executionOrder
}

func (c *CompleteMilestoneCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CompleteMilestoneCommand) setExecutionOrder(executionOrder int) error {
	if executionOrder < 1 {
		return errs.NewValueIsOutOfRangeError("execution order", executionOrder, 1, math.MaxInt)
	}
	c.executionOrder = executionOrder
	return nil
}
