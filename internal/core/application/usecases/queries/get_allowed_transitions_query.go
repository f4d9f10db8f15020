package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/guard"
)

var ErrGetAllowedTransitionsQueryIsNotConstructed = errors.New(
	"GetAllowedTransitionsQuery must be created via NewGetAllowedTransitionsQuery constructor",
)

// GetAllowedTransitionsQuery retrieves the legal next statuses of a shipment
// for a given actor role, so clients can render only the actions the caller
// may actually take.
type GetAllowedTransitionsQuery struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	actorRole  shipment.Role

	guard guard.ConstructorGuard
}

// NewGetAllowedTransitionsQuery creates a query for a shipment's legal
// transitions as seen by the given role.
func NewGetAllowedTransitionsQuery(shipmentID kernel.UUID, actorRole shipment.Role) (GetAllowedTransitionsQuery, error) {
	query := GetAllowedTransitionsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setShipmentID(shipmentID),
		query.setActorRole(actorRole),
	); err != nil {
		return GetAllowedTransitionsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllowedTransitionsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllowedTransitionsQueryIsNotConstructed)
}

// ShipmentID returns the shipment to inspect.
func (q GetAllowedTransitionsQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

// ActorRole returns the role whose permitted targets are requested.
func (q GetAllowedTransitionsQuery) ActorRole() shipment.Role {
	return q.actorRole
}

func (q *GetAllowedTransitionsQuery) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	q.shipmentID = shipmentID
	return nil
}

func (q *GetAllowedTransitionsQuery) setActorRole(actorRole shipment.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}

	q.actorRole = actorRole
	return nil
}

// GetAllowedTransitionsQueryResponse carries the shipment's current status
// and the transition targets the role may request from it.
type GetAllowedTransitionsQueryResponse struct {
	CurrentStatus      shipment.Status
	AllowedTransitions []shipment.Status
}
