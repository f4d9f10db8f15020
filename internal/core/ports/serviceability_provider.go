package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/partner"
)

// ServiceabilityProvider reads the partner coverage index for a route. The
// provider injects the default reliability score for partners without a
// recorded metric, so the selection engine never needs fallback logic.
type ServiceabilityProvider interface {
	// GetServiceableEntries returns the active entries of active partners
	// covering the route. When needCOD is set only COD-capable partners are
	// returned. An empty slice is a normal outcome, not an error.
	GetServiceableEntries(ctx context.Context, origin, destination kernel.Pincode, needCOD bool) ([]partner.ServiceabilityEntry, error)
}
