package queries

import (
	"context"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetAllowedTransitionsQueryHandler reads a shipment's current status and
// filters the transition table by the caller's role. The status read bypasses
// the aggregate: only one column is needed for this projection.
type GetAllowedTransitionsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllowedTransitionsQueryHandler creates a handler for transition
// lookups. Requires a GORM database connection for query execution.
func NewGetAllowedTransitionsQueryHandler(db *gorm.DB) GetAllowedTransitionsQueryHandler {
	return GetAllowedTransitionsQueryHandler{db: db}
}

// Handle executes the lookup. Returns errs.ObjectNotFoundError for unknown
// shipment ids.
func (h GetAllowedTransitionsQueryHandler) Handle(
	ctx context.Context,
	query GetAllowedTransitionsQuery,
) (GetAllowedTransitionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAllowedTransitionsQueryResponse{}, err
	}

	var statusValue int
	result := h.db.WithContext(ctx).Raw(`
		SELECT status
		FROM shipments
		WHERE id = ?
	`, query.ShipmentID().String()).Scan(&statusValue)
	if result.Error != nil {
		return GetAllowedTransitionsQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetAllowedTransitionsQueryResponse{},
			errs.NewObjectNotFoundError("shipmentID", query.ShipmentID())
	}

	currentStatus := shipment.Status(statusValue)
	if err := currentStatus.Validate(); err != nil {
		return GetAllowedTransitionsQueryResponse{}, err
	}

	return GetAllowedTransitionsQueryResponse{
		CurrentStatus:      currentStatus,
		AllowedTransitions: currentStatus.AllowedNextForRole(query.ActorRole()),
	}, nil
}
