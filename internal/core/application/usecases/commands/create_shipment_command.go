package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// Dimensions are the package dimensions in centimetres, used to derive the
// volumetric weight. A zero-value Dimensions means no dimensions were given.
type Dimensions struct {
	LengthCm float64
	WidthCm  float64
	HeightCm float64
}

// IsZero reports whether no dimensions were supplied.
func (d Dimensions) IsZero() bool {
	return d.LengthCm == 0 && d.WidthCm == 0 && d.HeightCm == 0
}

// CreateShipmentCommand represents a request to register a new shipment.
// Encapsulates the route, commercial terms and physical facts of the package.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID         kernel.UUID
	orderNumber        string
	originPincode      kernel.Pincode
	destinationPincode kernel.Pincode
	paymentMode        shipment.PaymentMode
	codAmount          float64
	weightKg           float64
	dimensions         Dimensions

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a new shipment.
// Dimensions are optional; when given they must all be positive.
func NewCreateShipmentCommand(
	shipmentID kernel.UUID,
	orderNumber string,
	originPincode kernel.Pincode,
	destinationPincode kernel.Pincode,
	paymentMode shipment.PaymentMode,
	codAmount float64,
	weightKg float64,
	dimensions Dimensions,
) (CreateShipmentCommand, error) {
	command := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setShipmentID(shipmentID),
		command.setOrderNumber(orderNumber),
		command.setRoute(originPincode, destinationPincode),
		command.setPayment(paymentMode, codAmount),
		command.setPhysical(weightKg, dimensions),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the unique identifier for the new shipment.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// OrderNumber returns the human-readable order number.
func (c CreateShipmentCommand) OrderNumber() string {
	return c.orderNumber
}

// OriginPincode returns the pickup pincode.
func (c CreateShipmentCommand) OriginPincode() kernel.Pincode {
	return c.originPincode
}

// DestinationPincode returns the delivery pincode.
func (c CreateShipmentCommand) DestinationPincode() kernel.Pincode {
	return c.destinationPincode
}

// PaymentMode returns the shipment's payment mode.
func (c CreateShipmentCommand) PaymentMode() shipment.PaymentMode {
	return c.paymentMode
}

// CODAmount returns the collectable amount for COD shipments.
func (c CreateShipmentCommand) CODAmount() float64 {
	return c.codAmount
}

// WeightKg returns the actual package weight.
func (c CreateShipmentCommand) WeightKg() float64 {
	return c.weightKg
}

// Dimensions returns the package dimensions, zero when not supplied.
func (c CreateShipmentCommand) Dimensions() Dimensions {
	return c.dimensions
}

func (c *CreateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *CreateShipmentCommand) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *CreateShipmentCommand) setRoute(origin, destination kernel.Pincode) error {
	if err := origin.Validate(); err != nil {
		return err
	}
	if err := destination.Validate(); err != nil {
		return err
	}

	c.originPincode = origin
	c.destinationPincode = destination
	return nil
}

func (c *CreateShipmentCommand) setPayment(mode shipment.PaymentMode, codAmount float64) error {
	if err := mode.Validate(); err != nil {
		return err
	}
	if codAmount < 0 {
		return errs.NewValueIsInvalidError("codAmount")
	}

	c.paymentMode = mode
	c.codAmount = codAmount
	return nil
}

func (c *CreateShipmentCommand) setPhysical(weightKg float64, dimensions Dimensions) error {
	if weightKg <= 0 {
		return errs.NewValueIsInvalidError("weightKg")
	}
	if !dimensions.IsZero() &&
		(dimensions.LengthCm <= 0 || dimensions.WidthCm <= 0 || dimensions.HeightCm <= 0) {
		return errs.NewValueIsInvalidError("dimensions")
	}

	c.weightKg = weightKg
	c.dimensions = dimensions
	return nil
}
