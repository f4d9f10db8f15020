package shipment

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
// created through NewShipment or RestoreShipment.
var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")

// Shipment is the aggregate root under lifecycle control. It carries the
// route, commercial and physical facts of one booking plus the current
// lifecycle status, and it is the only place a status may change: every
// change goes through TransitionTo, which enforces the role gate, the
// transition table, and the airway-bill invariant.
//
// Invariants:
//   - status is always a member of the lifecycle state set
//   - status only changes through a validated transition
//   - COD shipments carry a positive codAmount, prepaid shipments carry none
//   - chargeable weight is never below actual weight
//   - awbNumber is present before entering any in-motion status
type Shipment struct {
	id          kernel.UUID
	orderNumber string

	originPincode      kernel.Pincode
	destinationPincode kernel.Pincode

	paymentMode PaymentMode
	codAmount   float64

	weightKg         float64
	chargeableWeight float64

	// transporterID is the chosen delivery partner (nil until selection completes)
	transporterID *kernel.UUID

	// awbNumber is the partner-issued airway bill (nil until issued)
	awbNumber *string

	status Status

	// version supports optimistic concurrency in the persistence layer
	version int

	isConstructed bool
}

// NewShipment creates a freshly booked shipment in Created status.
// Chargeable weight defaults to the actual weight when the caller passes a
// smaller value than weightKg would allow; it must come from the rate
// calculator when volumetric dimensions are known.
func NewShipment(
	id kernel.UUID,
	orderNumber string,
	originPincode kernel.Pincode,
	destinationPincode kernel.Pincode,
	paymentMode PaymentMode,
	codAmount float64,
	weightKg float64,
	chargeableWeight float64,
) (*Shipment, error) {
	shipment := &Shipment{
		status:        Created,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		shipment.setID(id),
		shipment.setOrderNumber(orderNumber),
		shipment.setRoute(originPincode, destinationPincode),
		shipment.setPayment(paymentMode, codAmount),
		shipment.setWeights(weightKg, chargeableWeight),
	); err != nil {
		return nil, err
	}

	return shipment, nil
}

// RestoreShipment reconstructs a shipment from persistence, including its
// assignment, status and version. Used only by repository implementations.
func RestoreShipment(
	id kernel.UUID,
	orderNumber string,
	originPincode kernel.Pincode,
	destinationPincode kernel.Pincode,
	paymentMode PaymentMode,
	codAmount float64,
	weightKg float64,
	chargeableWeight float64,
	transporterID *kernel.UUID,
	awbNumber *string,
	status Status,
	version int,
) (*Shipment, error) {
	shipment, err := NewShipment(
		id, orderNumber, originPincode, destinationPincode,
		paymentMode, codAmount, weightKg, chargeableWeight,
	)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if version <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("version",
			fmt.Errorf("%d is not greater than 0", version))
	}
	if transporterID != nil {
		if err = transporterID.Validate(); err != nil {
			return nil, err
		}
	}
	if awbNumber != nil && *awbNumber == "" {
		return nil, errs.NewValueIsRequiredError("awbNumber")
	}

	shipment.status = status
	shipment.version = version
	shipment.transporterID = transporterID
	shipment.awbNumber = awbNumber
	return shipment, nil
}

// Validate ensures the Shipment was created through a constructor.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two shipments by identifier.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// OrderNumber returns the human-readable, globally unique order number.
func (s *Shipment) OrderNumber() string {
	return s.orderNumber
}

// OriginPincode returns the pickup-side pincode.
func (s *Shipment) OriginPincode() kernel.Pincode {
	return s.originPincode
}

// DestinationPincode returns the delivery-side pincode.
func (s *Shipment) DestinationPincode() kernel.Pincode {
	return s.destinationPincode
}

// PaymentMode returns how the shipment is paid for.
func (s *Shipment) PaymentMode() PaymentMode {
	return s.paymentMode
}

// CODAmount returns the cash to collect on delivery (zero for prepaid).
func (s *Shipment) CODAmount() float64 {
	return s.codAmount
}

// WeightKg returns the actual weight.
func (s *Shipment) WeightKg() float64 {
	return s.weightKg
}

// ChargeableWeight returns the weight used for freight pricing.
func (s *Shipment) ChargeableWeight() float64 {
	return s.chargeableWeight
}

// Transporter returns the assigned delivery partner's ID, or nil when
// selection has not completed.
func (s *Shipment) Transporter() *kernel.UUID {
	return s.transporterID
}

// AWBNumber returns the partner-issued airway bill, or nil when not issued.
func (s *Shipment) AWBNumber() *string {
	return s.awbNumber
}

// Status returns the current lifecycle status.
func (s *Shipment) Status() Status {
	return s.status
}

// Version returns the optimistic-concurrency version of the aggregate.
func (s *Shipment) Version() int {
	return s.version
}

// TransitionTo moves the shipment to newStatus on behalf of actor.
//
// The role gate is checked first: a role that may never request newStatus
// receives ErrTransitionForbidden, regardless of the current status. Then the
// transition table is consulted; an absent edge yields an
// InvalidTransitionError carrying the allowed set. Finally the airway-bill
// invariant is enforced for in-motion targets.
func (s *Shipment) TransitionTo(newStatus Status, actor Role) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	if err := actor.Validate(); err != nil {
		return err
	}

	if !actor.CanRequest(newStatus) {
		return ErrTransitionForbidden
	}

	if !s.status.CanTransitionTo(newStatus) {
		return NewInvalidTransitionError(s.status, newStatus)
	}

	if newStatus.RequiresAWB() && s.awbNumber == nil {
		return errs.NewValueIsRequiredError("awbNumber")
	}

	s.status = newStatus
	return nil
}

// AssignTransporter records the delivery partner chosen by the selection
// engine. Allowed while the shipment is Confirmed, or PartnerAssigned for a
// reassignment before the airway bill exists.
func (s *Shipment) AssignTransporter(transporterID kernel.UUID) error {
	if err := transporterID.Validate(); err != nil {
		return err
	}

	if s.status != Confirmed && s.status != PartnerAssigned {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to assign a transporter", s.status))
	}
	if s.awbNumber != nil {
		return errs.NewValueIsInvalidError("transporter cannot change after AWB issuance")
	}

	s.transporterID = &transporterID
	return nil
}

// AssignAWB records the partner-issued airway bill. The AWB is write-once and
// requires an assigned transporter.
func (s *Shipment) AssignAWB(awbNumber string) error {
	if awbNumber == "" {
		return errs.NewValueIsRequiredError("awbNumber")
	}
	if s.transporterID == nil {
		return errs.NewValueIsRequiredError("transporterId")
	}
	if s.awbNumber != nil {
		return errs.NewValueIsInvalidErrorWithCause("awbNumber",
			fmt.Errorf("awb %q is already assigned", *s.awbNumber))
	}

	s.awbNumber = &awbNumber
	return nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	s.orderNumber = orderNumber
	return nil
}

func (s *Shipment) setRoute(origin, destination kernel.Pincode) error {
	if err := origin.Validate(); err != nil {
		return err
	}
	if err := destination.Validate(); err != nil {
		return err
	}
	s.originPincode = origin
	s.destinationPincode = destination
	return nil
}

func (s *Shipment) setPayment(mode PaymentMode, codAmount float64) error {
	if err := mode.Validate(); err != nil {
		return err
	}
	if mode == COD && codAmount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("codAmount",
			fmt.Errorf("%f is not greater than 0 for a COD shipment", codAmount))
	}
	if mode == Prepaid && codAmount != 0 {
		return errs.NewValueIsInvalidErrorWithCause("codAmount",
			fmt.Errorf("%f must be 0 for a prepaid shipment", codAmount))
	}

	s.paymentMode = mode
	s.codAmount = codAmount
	return nil
}

func (s *Shipment) setWeights(weightKg, chargeableWeight float64) error {
	if weightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weightKg",
			fmt.Errorf("%f is not greater than 0", weightKg))
	}
	if chargeableWeight < weightKg {
		return errs.NewValueIsInvalidErrorWithCause("chargeableWeight",
			fmt.Errorf("%f is less than the actual weight %f", chargeableWeight, weightKg))
	}

	s.weightKg = weightKg
	s.chargeableWeight = chargeableWeight
	return nil
}
