package queries

import (
	"context"

	"logistics/internal/core/domain/model/partner"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

// SelectPartnerQueryHandler runs the partner selection engine read-only.
// Reads the serviceability index and ranks candidates; no shipment state is
// touched. An uncovered route yields a nil recommendation, not an error.
type SelectPartnerQueryHandler struct {
	serviceability ports.ServiceabilityProvider
	selector       services.PartnerSelector
}

// NewSelectPartnerQueryHandler creates a handler for rate shopping queries.
// Requires a ServiceabilityProvider for the coverage read.
func NewSelectPartnerQueryHandler(serviceability ports.ServiceabilityProvider) SelectPartnerQueryHandler {
	return SelectPartnerQueryHandler{
		serviceability: serviceability,
		selector:       services.NewPartnerSelector(),
	}
}

// Handle executes the selection over the current serviceability index.
func (h SelectPartnerQueryHandler) Handle(ctx context.Context, query SelectPartnerQuery) (partner.SelectionResult, error) {
	if err := query.Validate(); err != nil {
		return partner.SelectionResult{}, err
	}

	entries, err := h.serviceability.GetServiceableEntries(
		ctx, query.OriginPincode(), query.DestinationPincode(), query.IsCOD())
	if err != nil {
		return partner.SelectionResult{}, err
	}

	return h.selector.Select(entries, query.WeightKg(), query.IsCOD(), query.CODAmount(), query.Weights())
}
