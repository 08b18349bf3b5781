package commands_test

import (
	"errors"
	"log/slog"
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/pricing"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/clockz"
)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	pickup, err := kernel.NewLocation(9.0350, 38.7520)
	require.NoError(t, err)
	dropoff, err := kernel.NewLocation(8.9806, 38.7578)
	require.NoError(t, err)

	created, err := order.NewMilestone(kernel.NewUUID(), "Order Created", &pickup, nil, 1, false, true)
	require.NoError(t, err)
	transit, err := order.NewMilestone(kernel.NewUUID(), "In Transit", &pickup, nil, 2, false, false)
	require.NoError(t, err)
	delivered, err := order.NewMilestone(kernel.NewUUID(), "Delivered to Customer", &dropoff, nil, 3, true, false)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), order.Endpoints{
		PickupAddress:   "Piassa, Addis Ababa",
		Pickup:          pickup,
		DropoffAddress:  "Bole, Addis Ababa",
		Dropoff:         dropoff,
		OriginCity:      "Addis Ababa",
		DestinationCity: "Addis Ababa",
	}, pricing.Params{
		DeliveryType:    pricing.InCity,
		OriginCity:      "Addis Ababa",
		DestinationCity: "Addis Ababa",
		ActualWeight:    1,
	}, pricing.NewBreakdown(120, 1, pricing.Multipliers{
		CustomerType: 1, SubscriptionType: 1, OrderType: 1, GoodsType: 1, PremiumType: 1, VehicleType: 1,
	}, 0, nil), []kernel.UUID{kernel.NewUUID()}, []*order.Milestone{created, transit, delivered})
	require.NoError(t, err)
	return o
}

type completeMilestoneFixture struct {
	factory   *MockOrderUoWFactory
	uow       *MockUoW
	orders    *MockOrderRepository
	publisher *MockOrderEventPublisher
}

func newCompleteMilestoneFixture() *completeMilestoneFixture {
	f := &completeMilestoneFixture{
		factory:   new(MockOrderUoWFactory),
		uow:       new(MockUoW),
		orders:    new(MockOrderRepository),
		publisher: new(MockOrderEventPublisher),
	}
	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("OrderRepository").Return(f.orders)
	return f
}

func (f *completeMilestoneFixture) handler() commands.CompleteMilestoneCommandHandler {
	return commands.NewCompleteMilestoneCommandHandler(f.factory, f.publisher, clockz.NewFakeClock(),
		slog.New(slog.DiscardHandler))
}

func (f *completeMilestoneFixture) assertExpectations(t *testing.T) {
	t.Helper()
	f.factory.AssertExpectations(t)
	f.uow.AssertExpectations(t)
	f.orders.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
}

func TestCompleteMilestoneCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := newTestOrder(t)
	cmd, err := commands.NewCompleteMilestoneCommand(o.ID(), 2)
	require.NoError(t, err)

	f := newCompleteMilestoneFixture()
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		f.orders.On("Update", ctx, o).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.publisher.On("Publish", ctx, mock.MatchedBy(func(e ports.OrderEvent) bool {
			return e.Type == ports.OrderMilestoneCompletedEvent &&
				e.OrderID == o.ID().String() &&
				e.Status == "InProgress" &&
				e.Milestone == "In Transit"
		})).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := f.handler()
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	f.assertExpectations(t)

	assert.Equal(t, order.InProgress, updated.Status())
	assert.True(t, updated.Milestones()[1].IsCompleted())
	assert.False(t, updated.Milestones()[2].IsCompleted())
}

func TestCompleteMilestoneCommandHandler_Handle_LastMilestoneDelivers(t *testing.T) {
	ctx := t.Context()
	o := newTestOrder(t)
	_, err := o.CompleteMilestone(2)
	require.NoError(t, err)
	cmd, err := commands.NewCompleteMilestoneCommand(o.ID(), 3)
	require.NoError(t, err)

	f := newCompleteMilestoneFixture()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	f.orders.On("Update", ctx, o).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()
	f.publisher.On("Publish", ctx, mock.MatchedBy(func(e ports.OrderEvent) bool {
		return e.Status == "Delivered"
	})).Return(nil).Once()

	h := f.handler()
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	f.assertExpectations(t)
	assert.Equal(t, order.Delivered, updated.Status())
}

func TestCompleteMilestoneCommandHandler_Handle_DomainErrors(t *testing.T) {
	tests := []struct {
		name           string
		executionOrder int
		wantErr        error
	}{
		{name: "out of sequence", executionOrder: 3, wantErr: order.ErrMilestoneOutOfSequence},
		{name: "already completed", executionOrder: 1, wantErr: order.ErrMilestoneAlreadyCompleted},
		{name: "unknown milestone", executionOrder: 9, wantErr: errs.ErrObjectNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			o := newTestOrder(t)
			cmd, err := commands.NewCompleteMilestoneCommand(o.ID(), tt.executionOrder)
			require.NoError(t, err)

			f := newCompleteMilestoneFixture()
			f.uow.On("Begin", ctx).Return(nil).Once()
			f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
			f.uow.On("Rollback", ctx).Return(nil).Once()

			h := f.handler()
			_, err = h.Handle(ctx, cmd)
			require.ErrorIs(t, err, tt.wantErr)
			f.assertExpectations(t)
			f.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
		})
	}
}

func TestCompleteMilestoneCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewCompleteMilestoneCommand(id, 2)
	require.NoError(t, err)

	f := newCompleteMilestoneFixture()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.orders.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("order", id)).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	h := f.handler()
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	f.assertExpectations(t)
}

func TestCompleteMilestoneCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	o := newTestOrder(t)
	cmd, err := commands.NewCompleteMilestoneCommand(o.ID(), 2)
	require.NoError(t, err)

	f := newCompleteMilestoneFixture()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	f.orders.On("Update", ctx, o).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(errors.New("commit error")).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	h := f.handler()
	_, err = h.Handle(ctx, cmd)
	require.EqualError(t, err, "commit error")
	f.assertExpectations(t)
	f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestCompleteMilestoneCommandHandler_Handle_ValidationError(t *testing.T) {
	f := newCompleteMilestoneFixture()
	h := f.handler()

	_, err := h.Handle(t.Context(), commands.CompleteMilestoneCommand{})
	require.ErrorIs(t, err, commands.ErrCompleteMilestoneCommandIsNotConstructed)
	f.factory.AssertNotCalled(t, "Create")
}
