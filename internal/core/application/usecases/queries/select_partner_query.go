// Package queries contains read-only operations for retrieving system state.
// Implements the Query side of the CQRS architecture: no query mutates state,
// and read models bypass the aggregates where a raw projection is cheaper.
package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrSelectPartnerQueryIsNotConstructed = errors.New(
	"SelectPartnerQuery must be created via NewSelectPartnerQuery constructor",
)

// SelectPartnerQuery ranks shipping partners for a prospective shipment
// without assigning anything. Used for rate shopping before a shipment
// exists; the assignment command runs the same engine.
type SelectPartnerQuery struct { //nolint:recvcheck //using for validation
	originPincode      kernel.Pincode
	destinationPincode kernel.Pincode
	weightKg           float64
	isCOD              bool
	codAmount          float64
	weights            services.SelectionWeights

	guard guard.ConstructorGuard
}

// NewSelectPartnerQuery creates a partner selection query.
// Pass nil weights to use the defaults.
func NewSelectPartnerQuery(
	originPincode kernel.Pincode,
	destinationPincode kernel.Pincode,
	weightKg float64,
	isCOD bool,
	codAmount float64,
	weights *services.SelectionWeights,
) (SelectPartnerQuery, error) {
	query := SelectPartnerQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setRoute(originPincode, destinationPincode),
		query.setShipmentFacts(weightKg, isCOD, codAmount),
		query.setWeights(weights),
	); err != nil {
		return SelectPartnerQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q SelectPartnerQuery) Validate() error {
	return q.guard.Validate(ErrSelectPartnerQueryIsNotConstructed)
}

// OriginPincode returns the pickup pincode.
func (q SelectPartnerQuery) OriginPincode() kernel.Pincode {
	return q.originPincode
}

// DestinationPincode returns the delivery pincode.
func (q SelectPartnerQuery) DestinationPincode() kernel.Pincode {
	return q.destinationPincode
}

// WeightKg returns the chargeable weight to quote for.
func (q SelectPartnerQuery) WeightKg() float64 {
	return q.weightKg
}

// IsCOD reports whether the prospective shipment is cash on delivery.
func (q SelectPartnerQuery) IsCOD() bool {
	return q.isCOD
}

// CODAmount returns the collectable amount for COD shipments.
func (q SelectPartnerQuery) CODAmount() float64 {
	return q.codAmount
}

// Weights returns the scoring axis weights for this selection.
func (q SelectPartnerQuery) Weights() services.SelectionWeights {
	return q.weights
}

func (q *SelectPartnerQuery) setRoute(origin, destination kernel.Pincode) error {
	if err := origin.Validate(); err != nil {
		return err
	}
	if err := destination.Validate(); err != nil {
		return err
	}

	q.originPincode = origin
	q.destinationPincode = destination
	return nil
}

func (q *SelectPartnerQuery) setShipmentFacts(weightKg float64, isCOD bool, codAmount float64) error {
	if weightKg <= 0 {
		return errs.NewValueIsInvalidError("weightKg")
	}
	if codAmount < 0 {
		return errs.NewValueIsInvalidError("codAmount")
	}

	q.weightKg = weightKg
	q.isCOD = isCOD
	q.codAmount = codAmount
	return nil
}

func (q *SelectPartnerQuery) setWeights(weights *services.SelectionWeights) error {
	if weights == nil {
		q.weights = services.DefaultSelectionWeights()
		return nil
	}
	if err := weights.Validate(); err != nil {
		return err
	}

	q.weights = *weights
	return nil
}
