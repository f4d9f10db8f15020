package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
// Updates use optimistic concurrency: the aggregate's version must match the
// stored row, otherwise errs.VersionIsInvalidError is returned and nothing is
// written.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage.
	// The shipment must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate, comparing
	// the aggregate's version against the stored row before writing.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetByOrderNumber retrieves a shipment by its human-readable order number.
	GetByOrderNumber(ctx context.Context, orderNumber string) (*shipment.Shipment, error)
}

// StatusEventRepository defines the append-only persistence contract for the
// shipment audit trail. Events are never updated or deleted.
type StatusEventRepository interface {
	// Append persists one audit record.
	Append(ctx context.Context, event *shipment.StatusEvent) error

	// ListByShipment retrieves a shipment's audit trail ordered by occurrence.
	ListByShipment(ctx context.Context, shipmentID kernel.UUID) ([]*shipment.StatusEvent, error)
}
