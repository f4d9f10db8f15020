package commands_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/ndr"
	"logistics/internal/core/domain/model/partner"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetByOrderNumber(ctx context.Context, orderNumber string) (*shipment.Shipment, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

type MockStatusEventRepository struct{ mock.Mock }

func (m *MockStatusEventRepository) Append(ctx context.Context, event *shipment.StatusEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockStatusEventRepository) ListByShipment(ctx context.Context, shipmentID kernel.UUID) ([]*shipment.StatusEvent, error) {
	args := m.Called(ctx, shipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.StatusEvent), args.Error(1)
}

type MockNDRRepository struct{ mock.Mock }

func (m *MockNDRRepository) Add(ctx context.Context, report *ndr.Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockNDRRepository) Update(ctx context.Context, report *ndr.Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockNDRRepository) Get(ctx context.Context, id kernel.UUID) (*ndr.Report, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ndr.Report), args.Error(1)
}

func (m *MockNDRRepository) GetOpenByShipment(ctx context.Context, shipmentID kernel.UUID) (*ndr.Report, error) {
	args := m.Called(ctx, shipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ndr.Report), args.Error(1)
}

func (m *MockNDRRepository) GetOverdueOpen(ctx context.Context, before time.Time) ([]*ndr.Report, error) {
	args := m.Called(ctx, before)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ndr.Report), args.Error(1)
}

func (m *MockNDRRepository) AppendCallLog(ctx context.Context, log *ndr.CallLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockNDRRepository) ListCallLogs(ctx context.Context, reportID kernel.UUID) ([]*ndr.CallLog, error) {
	args := m.Called(ctx, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ndr.CallLog), args.Error(1)
}

type MockServiceabilityProvider struct{ mock.Mock }

func (m *MockServiceabilityProvider) GetServiceableEntries(
	ctx context.Context, origin, destination kernel.Pincode, needCOD bool,
) ([]partner.ServiceabilityEntry, error) {
	args := m.Called(ctx, origin, destination, needCOD)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.ServiceabilityEntry), args.Error(1)
}

type MockShipmentUoW struct{ mock.Mock }

func (m *MockShipmentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockLifecycleUoW struct{ MockShipmentUoW }

func (m *MockLifecycleUoW) StatusEventRepository() ports.StatusEventRepository {
	args := m.Called()
	return args.Get(0).(ports.StatusEventRepository)
}

type MockLifecycleUoWFactory struct{ mock.Mock }

func (m *MockLifecycleUoWFactory) Create() commands.LifecycleUoW {
	args := m.Called()
	return args.Get(0).(commands.LifecycleUoW)
}

type MockNDRUoW struct{ MockLifecycleUoW }

func (m *MockNDRUoW) NDRRepository() ports.NDRRepository {
	args := m.Called()
	return args.Get(0).(ports.NDRRepository)
}

type MockNDRUoWFactory struct{ mock.Mock }

func (m *MockNDRUoWFactory) Create() commands.NDRUoW {
	args := m.Called()
	return args.Get(0).(commands.NDRUoW)
}

func mustPincode(t *testing.T, value string) kernel.Pincode {
	t.Helper()
	pin, err := kernel.NewPincode(value)
	require.NoError(t, err)
	return pin
}

// shipmentAt rebuilds a shipment in the given status with a transporter and
// AWB present, the way the repository would return it mid-lifecycle.
func shipmentAt(t *testing.T, status shipment.Status) *shipment.Shipment {
	t.Helper()
	transporterID := kernel.NewUUID()
	awb := "AWB900012"
	s, err := shipment.RestoreShipment(
		kernel.NewUUID(),
		"ORD-7001",
		mustPincode(t, "110001"),
		mustPincode(t, "560001"),
		shipment.Prepaid,
		0,
		2.5,
		3.0,
		&transporterID,
		&awb,
		status,
		4,
	)
	require.NoError(t, err)
	return s
}

func openReportFor(t *testing.T, shipmentID kernel.UUID) *ndr.Report {
	t.Helper()
	report, err := ndr.NewReport(kernel.NewUUID(), shipmentID, "CUSTOMER_NOT_AVAILABLE", time.Now().Add(-time.Hour))
	require.NoError(t, err)
	return report
}
