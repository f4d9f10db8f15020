package ports

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/ndr"
)

// NDRRepository defines the persistence contract for non-delivery reports and
// their call logs. Report updates use optimistic concurrency the same way
// ShipmentRepository does.
type NDRRepository interface {
	// Add persists a new report.
	Add(ctx context.Context, aggregate *ndr.Report) error

	// Update persists changes to an existing report, comparing the
	// aggregate's version against the stored row before writing.
	Update(ctx context.Context, aggregate *ndr.Report) error

	// Get retrieves a report by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*ndr.Report, error)

	// GetOpenByShipment retrieves the shipment's single unresolved report.
	// Returns errs.ObjectNotFoundError when none is open.
	GetOpenByShipment(ctx context.Context, shipmentID kernel.UUID) (*ndr.Report, error)

	// GetOverdueOpen retrieves every unresolved report opened before the
	// given cutoff, oldest first.
	GetOverdueOpen(ctx context.Context, before time.Time) ([]*ndr.Report, error)

	// AppendCallLog persists one contact attempt record.
	AppendCallLog(ctx context.Context, log *ndr.CallLog) error

	// ListCallLogs retrieves a report's contact attempts ordered by creation.
	ListCallLogs(ctx context.Context, reportID kernel.UUID) ([]*ndr.CallLog, error)
}
