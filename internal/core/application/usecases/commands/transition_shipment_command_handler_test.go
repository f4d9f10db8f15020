package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLifecycleUoW(t *testing.T) (*MockLifecycleUoW, *MockShipmentRepository, *MockStatusEventRepository, *MockLifecycleUoWFactory) {
	t.Helper()
	uow := new(MockLifecycleUoW)
	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()
	return uow, new(MockShipmentRepository), new(MockStatusEventRepository), factory
}

func TestTransitionShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := shipmentAt(t, shipment.InTransit)
	cmd, err := commands.NewTransitionShipmentCommand(
		aggregate.ID(), shipment.OutForDelivery, shipment.RoleOperator,
		"hub-scanner-3", "out for delivery", nil, nil, nil, nil,
	)
	require.NoError(t, err)

	uow, repo, events, factory := newLifecycleUoW(t)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("StatusEventRepository").Return(events).Once(),
		events.On("Append", mock.Anything, mock.AnythingOfType("*shipment.StatusEvent")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewTransitionShipmentCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, shipment.OutForDelivery, aggregate.Status())
	event := events.Calls[0].Arguments.Get(1).(*shipment.StatusEvent)
	require.Equal(t, shipment.InTransit, event.PreviousStatus())
	require.Equal(t, shipment.OutForDelivery, event.NewStatus())
	require.Equal(t, "hub-scanner-3", event.SourceRef())

	repo.AssertExpectations(t)
	events.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestTransitionShipmentCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	aggregate := shipmentAt(t, shipment.InTransit)
	cmd, err := commands.NewTransitionShipmentCommand(
		aggregate.ID(), shipment.Delivered, shipment.RoleOperator,
		"", "", nil, nil, nil, nil,
	)
	require.NoError(t, err)

	uow, repo, _, factory := newLifecycleUoW(t)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewTransitionShipmentCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	var invalidErr *shipment.InvalidTransitionError
	require.ErrorAs(t, err, &invalidErr)
	require.Equal(t, shipment.InTransit, aggregate.Status(), "failed transition must not persist")
	uow.AssertExpectations(t)
}

func TestTransitionShipmentCommandHandler_Handle_ForbiddenRole(t *testing.T) {
	ctx := t.Context()
	aggregate := shipmentAt(t, shipment.InTransit)
	cmd, err := commands.NewTransitionShipmentCommand(
		aggregate.ID(), shipment.OutForDelivery, shipment.RoleBrand,
		"brand-42", "", nil, nil, nil, nil,
	)
	require.NoError(t, err)

	uow, repo, _, factory := newLifecycleUoW(t)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewTransitionShipmentCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, shipment.ErrTransitionForbidden)
	uow.AssertExpectations(t)
}

func TestTransitionShipmentCommandHandler_Handle_AppliesAWBBeforeDispatch(t *testing.T) {
	ctx := t.Context()
	// ready to ship, transporter assigned, no AWB yet
	transporterID := kernel.NewUUID()
	aggregate, err := shipment.RestoreShipment(
		kernel.NewUUID(), "ORD-7002",
		mustPincode(t, "110001"), mustPincode(t, "560001"),
		shipment.Prepaid, 0, 2.5, 3.0,
		&transporterID, nil, shipment.ReadyToShip, 2,
	)
	require.NoError(t, err)

	awb := "AWB445566"
	cmd, err := commands.NewTransitionShipmentCommand(
		aggregate.ID(), shipment.Dispatched, shipment.RoleOperator,
		"", "dispatched", nil, nil, &awb, nil,
	)
	require.NoError(t, err)

	uow, repo, events, factory := newLifecycleUoW(t)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("StatusEventRepository").Return(events).Once(),
		events.On("Append", mock.Anything, mock.Anything).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewTransitionShipmentCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, shipment.Dispatched, aggregate.Status())
	require.NotNil(t, aggregate.AWBNumber())
	require.Equal(t, awb, *aggregate.AWBNumber())
}

func TestTransitionShipmentCommandHandler_Handle_StaleVersion(t *testing.T) {
	ctx := t.Context()
	aggregate := shipmentAt(t, shipment.InTransit)
	cmd, err := commands.NewTransitionShipmentCommand(
		aggregate.ID(), shipment.OutForDelivery, shipment.RoleOperator,
		"", "", nil, nil, nil, nil,
	)
	require.NoError(t, err)

	uow, repo, _, factory := newLifecycleUoW(t)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).
			Return(errs.NewVersionIsInvalidErrorWithCause("shipment")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewTransitionShipmentCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	uow.AssertExpectations(t)
}
