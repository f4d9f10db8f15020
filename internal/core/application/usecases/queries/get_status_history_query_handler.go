package queries

import (
	"context"
	"database/sql"
	"encoding/json"

	"logistics/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetStatusHistoryQueryHandler reads a shipment's append-only audit trail
// straight from the events table.
type GetStatusHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetStatusHistoryQueryHandler creates a handler for audit trail queries.
// Requires a GORM database connection for query execution.
func NewGetStatusHistoryQueryHandler(db *gorm.DB) GetStatusHistoryQueryHandler {
	return GetStatusHistoryQueryHandler{db: db}
}

// Handle executes the query. An unknown shipment id yields an empty trail,
// matching the append-only table's view of the world.
func (h GetStatusHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetStatusHistoryQuery,
) ([]GetStatusHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	events := make([]GetStatusHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			previous_status,
			new_status,
			source,
			source_ref,
			status_text,
			location,
			remarks,
			metadata,
			occurred_at
		FROM status_events
		WHERE shipment_id = ?
		ORDER BY occurred_at, id
	`, query.ShipmentID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			event        GetStatusHistoryQueryResponse
			id           string
			location     sql.NullString
			remarks      sql.NullString
			metadataJSON []byte
		)

		err = rows.Scan(
			&id,
			&event.PreviousStatus,
			&event.NewStatus,
			&event.Source,
			&event.SourceRef,
			&event.StatusText,
			&location,
			&remarks,
			&metadataJSON,
			&event.OccurredAt,
		)
		if err != nil {
			return nil, err
		}

		eventID, idErr := kernel.UUIDFromString(id)
		if idErr != nil {
			return nil, idErr
		}
		event.ID = eventID

		if location.Valid {
			event.Location = &location.String
		}
		if remarks.Valid {
			event.Remarks = &remarks.String
		}
		if len(metadataJSON) > 0 {
			if err = json.Unmarshal(metadataJSON, &event.Metadata); err != nil {
				return nil, err
			}
		}

		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
