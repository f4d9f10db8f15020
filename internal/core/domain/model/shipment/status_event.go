package shipment

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// StatusEvent is the immutable audit record appended for every successful
// lifecycle transition. Events are append-only: they are never mutated or
// deleted, and exactly one is written per transition, in the same unit of
// work as the status change itself.
type StatusEvent struct {
	id         kernel.UUID
	shipmentID kernel.UUID

	previousStatus Status
	newStatus      Status

	// source is the actor role that drove the transition
	source Role

	// sourceRef identifies the concrete actor (user id, job name, partner webhook)
	sourceRef string

	statusText string
	location   *string
	remarks    *string

	// metadata carries structured audit detail as a queryable key/value map
	metadata map[string]string

	occurredAt time.Time

	isConstructed bool
}

// NewStatusEvent creates an audit record for one transition. location,
// remarks and metadata are optional; the metadata map is copied so later
// caller mutations cannot leak into the event.
func NewStatusEvent(
	id kernel.UUID,
	shipmentID kernel.UUID,
	previousStatus Status,
	newStatus Status,
	source Role,
	sourceRef string,
	statusText string,
	location *string,
	remarks *string,
	metadata map[string]string,
	occurredAt time.Time,
) (*StatusEvent, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}
	if err := previousStatus.Validate(); err != nil {
		return nil, err
	}
	if err := newStatus.Validate(); err != nil {
		return nil, err
	}
	if err := source.Validate(); err != nil {
		return nil, err
	}
	if occurredAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("occurredAt")
	}

	var meta map[string]string
	if len(metadata) > 0 {
		meta = make(map[string]string, len(metadata))
		for k, v := range metadata {
			meta[k] = v
		}
	}

	return &StatusEvent{
		id:             id,
		shipmentID:     shipmentID,
		previousStatus: previousStatus,
		newStatus:      newStatus,
		source:         source,
		sourceRef:      sourceRef,
		statusText:     statusText,
		location:       location,
		remarks:        remarks,
		metadata:       meta,
		occurredAt:     occurredAt,
		isConstructed:  true,
	}, nil
}

// Validate ensures the StatusEvent was created through NewStatusEvent.
func (e *StatusEvent) Validate() error {
	if e == nil || !e.isConstructed {
		return errs.NewValueIsRequiredError("StatusEvent must be created via NewStatusEvent")
	}
	return nil
}

// ID returns the event's unique identifier.
func (e *StatusEvent) ID() kernel.UUID {
	return e.id
}

// ShipmentID returns the shipment the event belongs to.
func (e *StatusEvent) ShipmentID() kernel.UUID {
	return e.shipmentID
}

// PreviousStatus returns the pre-transition lifecycle status.
func (e *StatusEvent) PreviousStatus() Status {
	return e.previousStatus
}

// NewStatus returns the post-transition lifecycle status.
func (e *StatusEvent) NewStatus() Status {
	return e.newStatus
}

// Source returns the actor role that drove the transition.
func (e *StatusEvent) Source() Role {
	return e.source
}

// SourceRef identifies the concrete actor behind Source.
func (e *StatusEvent) SourceRef() string {
	return e.sourceRef
}

// StatusText returns the free-text description supplied with the transition.
func (e *StatusEvent) StatusText() string {
	return e.statusText
}

// Location returns the scan location, if any.
func (e *StatusEvent) Location() *string {
	return e.location
}

// Remarks returns operator remarks, if any.
func (e *StatusEvent) Remarks() *string {
	return e.remarks
}

// Metadata returns a copy of the structured audit detail.
func (e *StatusEvent) Metadata() map[string]string {
	if e.metadata == nil {
		return nil
	}
	meta := make(map[string]string, len(e.metadata))
	for k, v := range e.metadata {
		meta[k] = v
	}
	return meta
}

// OccurredAt returns the transition timestamp.
func (e *StatusEvent) OccurredAt() time.Time {
	return e.occurredAt
}
