package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/guard"
)

var ErrGetStatusHistoryQueryIsNotConstructed = errors.New(
	"GetStatusHistoryQuery must be created via NewGetStatusHistoryQuery constructor",
)

// GetStatusHistoryQuery retrieves a shipment's full audit trail, ordered by
// occurrence.
type GetStatusHistoryQuery struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetStatusHistoryQuery creates a query for a shipment's audit trail.
func NewGetStatusHistoryQuery(shipmentID kernel.UUID) (GetStatusHistoryQuery, error) {
	query := GetStatusHistoryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setShipmentID(shipmentID); err != nil {
		return GetStatusHistoryQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStatusHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusHistoryQueryIsNotConstructed)
}

// ShipmentID returns the shipment whose trail is requested.
func (q GetStatusHistoryQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

func (q *GetStatusHistoryQuery) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	q.shipmentID = shipmentID
	return nil
}

// GetStatusHistoryQueryResponse is one audit trail entry.
type GetStatusHistoryQueryResponse struct {
	ID             kernel.UUID
	PreviousStatus shipment.Status
	NewStatus      shipment.Status
	Source         shipment.Role
	SourceRef      string
	StatusText     string
	Location       *string
	Remarks        *string
	Metadata       map[string]string
	OccurredAt     time.Time
}
