package shipment

import (
	"errors"
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
// The lifecycle is a state machine whose transitions are declared as data in
// allowedTransitions below; a shipment may only ever move along those edges.
//
// Forward chain:
//
//	CREATED -> CONFIRMED -> PARTNER_ASSIGNED -> AWB_GENERATED -> PICKUP_SCHEDULED
//	        -> PICKED -> PACKING -> PACKED -> LABELLED -> READY_TO_SHIP
//	        -> DISPATCHED -> HANDED_OVER -> IN_TRANSIT -> OUT_FOR_DELIVERY -> DELIVERED
//
// Every pre-dispatch state may be cancelled. A failed delivery attempt moves
// OUT_FOR_DELIVERY into NDR, from where the shipment either reattempts
// delivery, resolves, or enters the strictly linear RTO chain
// RTO_INITIATED -> RTO_IN_TRANSIT -> RTO_DELIVERED.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when a shipment is first booked.
	Created

	// Confirmed indicates the brand has confirmed the shipment for fulfilment.
	Confirmed

	// PartnerAssigned indicates the selection engine chose a delivery partner.
	PartnerAssigned

	// AWBGenerated indicates the partner issued an airway bill for the shipment.
	AWBGenerated

	// PickupScheduled indicates a pickup slot was booked with the partner.
	PickupScheduled

	// Picked indicates the partner collected the shipment.
	Picked

	// Packing indicates warehouse packing is in progress.
	Packing

	// Packed indicates packing finished.
	Packed

	// Labelled indicates the shipping label was applied.
	Labelled

	// ReadyToShip indicates the shipment awaits handover to the partner fleet.
	ReadyToShip

	// Dispatched indicates the shipment left the origin facility.
	Dispatched

	// HandedOver indicates the partner line-haul accepted the shipment.
	HandedOver

	// InTransit indicates the shipment is moving between facilities.
	InTransit

	// OutForDelivery indicates a delivery attempt is underway.
	OutForDelivery

	// Delivered is a terminal status: the consignee received the shipment.
	Delivered

	// NDR indicates a delivery attempt failed and the exception workflow owns
	// the shipment until it reattempts, resolves, or returns.
	NDR

	// RTOInitiated indicates the return-to-origin flow has started.
	RTOInitiated

	// RTOInTransit indicates the shipment is travelling back to origin.
	RTOInTransit

	// RTODelivered is a terminal status: the shipment returned to origin.
	RTODelivered

	// Cancelled is a terminal status: the shipment was cancelled pre-dispatch
	// or abandoned out of the exception workflow.
	Cancelled

	// Lost is a terminal status: the shipment went missing in motion.
	Lost
)

// allowedTransitions is the lifecycle transition table. It is business policy
// expressed as data: adding a status is a table change plus tests, not new
// branching code. Terminal statuses map to an empty row.
var allowedTransitions = map[Status][]Status{
	Created:         {Confirmed, Cancelled},
	Confirmed:       {PartnerAssigned, Cancelled},
	PartnerAssigned: {AWBGenerated, Cancelled},
	AWBGenerated:    {PickupScheduled, Cancelled},
	PickupScheduled: {Picked, Cancelled},
	Picked:          {Packing, Cancelled},
	Packing:         {Packed, Cancelled},
	Packed:          {Labelled, Cancelled},
	Labelled:        {ReadyToShip, Cancelled},
	ReadyToShip:     {Dispatched, Cancelled},
	Dispatched:      {HandedOver, Lost},
	HandedOver:      {InTransit, Lost},
	InTransit:       {OutForDelivery, Lost},
	OutForDelivery:  {Delivered, NDR, Lost},
	NDR:             {OutForDelivery, RTOInitiated, Delivered, Cancelled},
	RTOInitiated:    {RTOInTransit},
	RTOInTransit:    {RTODelivered},
	Delivered:       {},
	RTODelivered:    {},
	Cancelled:       {},
	Lost:            {},
}

// statusRequiresAWB marks the in-motion statuses a shipment may only enter
// once the partner issued an airway bill.
var statusRequiresAWB = map[Status]bool{
	Dispatched:     true,
	HandedOver:     true,
	InTransit:      true,
	OutForDelivery: true,
	RTOInTransit:   true,
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "UNKNOWN",
		Created:         "CREATED",
		Confirmed:       "CONFIRMED",
		PartnerAssigned: "PARTNER_ASSIGNED",
		AWBGenerated:    "AWB_GENERATED",
		PickupScheduled: "PICKUP_SCHEDULED",
		Picked:          "PICKED",
		Packing:         "PACKING",
		Packed:          "PACKED",
		Labelled:        "LABELLED",
		ReadyToShip:     "READY_TO_SHIP",
		Dispatched:      "DISPATCHED",
		HandedOver:      "HANDED_OVER",
		InTransit:       "IN_TRANSIT",
		OutForDelivery:  "OUT_FOR_DELIVERY",
		Delivered:       "DELIVERED",
		NDR:             "NDR",
		RTOInitiated:    "RTO_INITIATED",
		RTOInTransit:    "RTO_IN_TRANSIT",
		RTODelivered:    "RTO_DELIVERED",
		Cancelled:       "CANCELLED",
		Lost:            "LOST",
	}
}

// Validate checks that the Status is a member of the lifecycle state set.
// Unknown and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := allowedTransitions[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical upper-snake name of the status.
// Invalid values render as "UNKNOWN". Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// StatusFromString parses a canonical status name, case-insensitively.
func StatusFromString(value string) (Status, error) {
	needle := strings.ToUpper(strings.TrimSpace(value))
	for status, name := range getStatusStrings() {
		if status != Unknown && name == needle {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", value))
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	row, ok := allowedTransitions[s]
	return ok && len(row) == 0
}

// CanTransitionTo reports whether the transition table contains an edge from
// this status to target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range allowedTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// AllowedNext returns a copy of the transition-table row for this status, in
// declaration order. Terminal statuses return an empty slice.
func (s Status) AllowedNext() []Status {
	row := allowedTransitions[s]
	next := make([]Status, len(row))
	copy(next, row)
	return next
}

// AllowedNextForRole returns the subset of AllowedNext the given actor role
// may request, in declaration order.
func (s Status) AllowedNextForRole(role Role) []Status {
	next := make([]Status, 0, len(allowedTransitions[s]))
	for _, target := range allowedTransitions[s] {
		if role.CanRequest(target) {
			next = append(next, target)
		}
	}
	return next
}

// RequiresAWB reports whether entering this status requires an airway bill to
// be present on the shipment.
func (s Status) RequiresAWB() bool {
	return statusRequiresAWB[s]
}

// ErrInvalidTransition is the unwrap target for InvalidTransitionError,
// allowing callers to classify with errors.Is.
var ErrInvalidTransition = errors.New("status transition is not allowed")

// InvalidTransitionError is returned when a requested transition has no edge
// in the transition table. It carries the allowed set so callers can surface
// the legal next actions.
type InvalidTransitionError struct {
	Current   Status
	Requested Status
	Allowed   []Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given
// current/requested pair, capturing the currently allowed targets.
func NewInvalidTransitionError(current, requested Status) *InvalidTransitionError {
	return &InvalidTransitionError{
		Current:   current,
		Requested: requested,
		Allowed:   current.AllowedNext(),
	}
}

func (e *InvalidTransitionError) Error() string {
	names := make([]string, len(e.Allowed))
	for i, status := range e.Allowed {
		names[i] = status.String()
	}
	return fmt.Sprintf("%s: %s -> %s (allowed: [%s])",
		ErrInvalidTransition, e.Current, e.Requested, strings.Join(names, ", "))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
