package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/ndr"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newNDRUoW(t *testing.T) (*MockNDRUoW, *MockShipmentRepository, *MockStatusEventRepository, *MockNDRRepository, *MockNDRUoWFactory) {
	t.Helper()
	uow := new(MockNDRUoW)
	factory := new(MockNDRUoWFactory)
	factory.On("Create").Return(uow).Once()
	return uow, new(MockShipmentRepository), new(MockStatusEventRepository), new(MockNDRRepository), factory
}

func TestRecordFailedAttemptCommandHandler_Handle_FirstAttempt(t *testing.T) {
	ctx := t.Context()
	aggregate := shipmentAt(t, shipment.OutForDelivery)
	cmd, err := commands.NewRecordFailedAttemptCommand(aggregate.ID(), "CUSTOMER_NOT_AVAILABLE", nil)
	require.NoError(t, err)

	uow, shipments, events, reports, factory := newNDRUoW(t)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipments).Once(),
		shipments.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("NDRRepository").Return(reports).Once(),
		reports.On("GetOpenByShipment", mock.Anything, aggregate.ID()).
			Return(nil, errs.NewObjectNotFoundError("ndrReport", aggregate.ID())).Once(),
		reports.On("Add", mock.Anything, mock.AnythingOfType("*ndr.Report")).Return(nil).Once(),
		shipments.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("StatusEventRepository").Return(events).Once(),
		events.On("Append", mock.Anything, mock.AnythingOfType("*shipment.StatusEvent")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewRecordFailedAttemptCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, shipment.NDR, aggregate.Status())
	created := reports.Calls[1].Arguments.Get(1).(*ndr.Report)
	require.Equal(t, ndr.StatusOpen, created.Status())
	require.Equal(t, "CUSTOMER_NOT_AVAILABLE", created.ReasonCode())
	require.False(t, created.CustomerContacted())

	event := events.Calls[0].Arguments.Get(1).(*shipment.StatusEvent)
	require.Equal(t, shipment.OutForDelivery, event.PreviousStatus())
	require.Equal(t, shipment.NDR, event.NewStatus())

	uow.AssertExpectations(t)
	reports.AssertExpectations(t)
}

func TestRecordFailedAttemptCommandHandler_Handle_ReusesOpenReport(t *testing.T) {
	ctx := t.Context()
	aggregate := shipmentAt(t, shipment.NDR)
	existing := openReportFor(t, aggregate.ID())
	cmd, err := commands.NewRecordFailedAttemptCommand(aggregate.ID(), "ADDRESS_ISSUE", nil)
	require.NoError(t, err)

	uow, shipments, _, reports, factory := newNDRUoW(t)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipments).Once(),
		shipments.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("NDRRepository").Return(reports).Once(),
		reports.On("GetOpenByShipment", mock.Anything, aggregate.ID()).Return(existing, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewRecordFailedAttemptCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	// no duplicate report, no second transition
	reports.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	shipments.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	require.Equal(t, shipment.NDR, aggregate.Status())
	uow.AssertExpectations(t)
}

func TestRecordFailedAttemptCommandHandler_Handle_NotOutForDelivery(t *testing.T) {
	ctx := t.Context()
	aggregate := shipmentAt(t, shipment.InTransit)
	cmd, err := commands.NewRecordFailedAttemptCommand(aggregate.ID(), "CUSTOMER_NOT_AVAILABLE", nil)
	require.NoError(t, err)

	uow, shipments, _, reports, factory := newNDRUoW(t)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipments).Once(),
		shipments.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("NDRRepository").Return(reports).Once(),
		reports.On("GetOpenByShipment", mock.Anything, aggregate.ID()).
			Return(nil, errs.NewObjectNotFoundError("ndrReport", aggregate.ID())).Once(),
		reports.On("Add", mock.Anything, mock.Anything).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewRecordFailedAttemptCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, shipment.ErrInvalidTransition)
	uow.AssertExpectations(t)
}
