// Package shipmentrepo provides data transfer objects and mapping functions for
// shipment persistence. This package implements the repository pattern for the
// shipment aggregate and its append-only status event trail, handling the
// conversion between domain entities and database representations.
package shipmentrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment aggregates.
// The version column backs optimistic concurrency control: every update is
// conditional on the version the caller read.
type ShipmentDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderNumber        string     `gorm:"uniqueIndex"`
	OriginPincode      string     `gorm:"type:varchar(6)"`
	DestinationPincode string     `gorm:"type:varchar(6)"`
	PaymentMode        int
	CODAmount          float64
	WeightKg           float64
	ChargeableWeight   float64
	TransporterID      *uuid.UUID `gorm:"type:uuid;index"`
	AWBNumber          *string    `gorm:"index"`
	Status             int        `gorm:"index"`
	Version            int
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// StatusEventDTO represents one immutable audit trail row. Rows are only ever
// inserted, never updated.
type StatusEventDTO struct {
	ID             uuid.UUID         `gorm:"type:uuid;primaryKey"`
	ShipmentID     uuid.UUID         `gorm:"type:uuid;index"`
	PreviousStatus int
	NewStatus      int
	Source         int
	SourceRef      string
	StatusText     string
	Location       *string
	Remarks        *string
	Metadata       map[string]string `gorm:"serializer:json"`
	OccurredAt     time.Time         `gorm:"index"`
}

// TableName specifies the database table name for status event entities.
func (StatusEventDTO) TableName() string {
	return "status_events"
}

// fromDomain converts a shipment aggregate to its database representation.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	var transporterID *uuid.UUID
	if id := aggregate.Transporter(); id != nil {
		raw := id.Bytes()
		transporterID = &raw
	}

	return ShipmentDTO{
		ID:                 aggregate.ID().Bytes(),
		OrderNumber:        aggregate.OrderNumber(),
		OriginPincode:      aggregate.OriginPincode().String(),
		DestinationPincode: aggregate.DestinationPincode().String(),
		PaymentMode:        int(aggregate.PaymentMode()),
		CODAmount:          aggregate.CODAmount(),
		WeightKg:           aggregate.WeightKg(),
		ChargeableWeight:   aggregate.ChargeableWeight(),
		TransporterID:      transporterID,
		AWBNumber:          aggregate.AWBNumber(),
		Status:             int(aggregate.Status()),
		Version:            aggregate.Version(),
	}
}

// toDomain converts a database DTO to a shipment aggregate using RestoreShipment.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	origin, err := kernel.NewPincode(dto.OriginPincode)
	if err != nil {
		return nil, err
	}

	destination, err := kernel.NewPincode(dto.DestinationPincode)
	if err != nil {
		return nil, err
	}

	var transporterID *kernel.UUID
	if dto.TransporterID != nil {
		tID, transporterErr := kernel.UUIDFromBytes((*dto.TransporterID)[:])
		if transporterErr != nil {
			return nil, transporterErr
		}

		transporterID = &tID
	}

	return shipment.RestoreShipment(
		id,
		dto.OrderNumber,
		origin,
		destination,
		shipment.PaymentMode(dto.PaymentMode),
		dto.CODAmount,
		dto.WeightKg,
		dto.ChargeableWeight,
		transporterID,
		dto.AWBNumber,
		shipment.Status(dto.Status),
		dto.Version,
	)
}

// eventFromDomain converts a status event to its database representation.
func eventFromDomain(event *shipment.StatusEvent) StatusEventDTO {
	return StatusEventDTO{
		ID:             event.ID().Bytes(),
		ShipmentID:     event.ShipmentID().Bytes(),
		PreviousStatus: int(event.PreviousStatus()),
		NewStatus:      int(event.NewStatus()),
		Source:         int(event.Source()),
		SourceRef:      event.SourceRef(),
		StatusText:     event.StatusText(),
		Location:       event.Location(),
		Remarks:        event.Remarks(),
		Metadata:       event.Metadata(),
		OccurredAt:     event.OccurredAt(),
	}
}

// eventToDomain converts a database DTO to a status event.
func eventToDomain(dto StatusEventDTO) (*shipment.StatusEvent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}

	return shipment.NewStatusEvent(
		id,
		shipmentID,
		shipment.Status(dto.PreviousStatus),
		shipment.Status(dto.NewStatus),
		shipment.Role(dto.Source),
		dto.SourceRef,
		dto.StatusText,
		dto.Location,
		dto.Remarks,
		dto.Metadata,
		dto.OccurredAt,
	)
}
