// Package ndrrepo provides data transfer objects and mapping functions for NDR
// report persistence. This package implements the repository pattern for the
// report aggregate and its immutable call log entries.
package ndrrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/ndr"

	"github.com/google/uuid"
)

// NDRReportDTO represents the database structure for persisting NDR reports.
// The partial unique index enforces at most one unresolved report per shipment
// at the database level, closing the race between two concurrent failed
// delivery attempts.
type NDRReportDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ShipmentID         uuid.UUID  `gorm:"type:uuid;index:idx_open_report_per_shipment,unique,where:status IN (1,2)"`
	Status             int
	ReasonCode         string
	CustomerContacted  bool
	CustomerResponseAt *time.Time
	CorrectedAddress   *string
	CorrectedPincode   *string    `gorm:"type:varchar(6)"`
	CorrectedPhone     *string
	RescheduledDate    *time.Time
	PreferredTimeSlot  *string
	IsResolved         bool
	ResolvedAt         *time.Time
	ResolutionType     int
	Version            int
	CreatedAt          time.Time  `gorm:"index"`
}

// TableName specifies the database table name for NDR report entities.
func (NDRReportDTO) TableName() string {
	return "ndr_reports"
}

// NDRCallLogDTO represents one immutable contact attempt row.
type NDRCallLogDTO struct {
	ID               uuid.UUID         `gorm:"type:uuid;primaryKey"`
	ReportID         uuid.UUID         `gorm:"type:uuid;index"`
	CallStatus       int
	CallOutcome      int
	CustomerResponse *string
	NewAddress       *string
	NewPhone         *string
	PreferredDate    *time.Time
	PreferredSlot    *string
	Metadata         map[string]string `gorm:"serializer:json"`
	CreatedAt        time.Time
}

// TableName specifies the database table name for NDR call log entities.
func (NDRCallLogDTO) TableName() string {
	return "ndr_call_logs"
}

// fromDomain converts an NDR report aggregate to its database representation.
func fromDomain(report *ndr.Report) NDRReportDTO {
	var correctedPincode *string
	if pin := report.CorrectedPincode(); pin != nil {
		raw := pin.String()
		correctedPincode = &raw
	}

	return NDRReportDTO{
		ID:                 report.ID().Bytes(),
		ShipmentID:         report.ShipmentID().Bytes(),
		Status:             int(report.Status()),
		ReasonCode:         report.ReasonCode(),
		CustomerContacted:  report.CustomerContacted(),
		CustomerResponseAt: report.CustomerResponseAt(),
		CorrectedAddress:   report.CorrectedAddress(),
		CorrectedPincode:   correctedPincode,
		CorrectedPhone:     report.CorrectedPhone(),
		RescheduledDate:    report.RescheduledDate(),
		PreferredTimeSlot:  report.PreferredTimeSlot(),
		IsResolved:         report.IsResolved(),
		ResolvedAt:         report.ResolvedAt(),
		ResolutionType:     int(report.ResolutionType()),
		Version:            report.Version(),
		CreatedAt:          report.CreatedAt(),
	}
}

// toDomain converts a database DTO to an NDR report aggregate using RestoreReport.
func toDomain(dto NDRReportDTO) (*ndr.Report, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}

	var correctedPincode *kernel.Pincode
	if dto.CorrectedPincode != nil {
		pin, pinErr := kernel.NewPincode(*dto.CorrectedPincode)
		if pinErr != nil {
			return nil, pinErr
		}

		correctedPincode = &pin
	}

	return ndr.RestoreReport(
		id,
		shipmentID,
		ndr.Status(dto.Status),
		dto.ReasonCode,
		dto.CustomerContacted,
		dto.CustomerResponseAt,
		dto.CorrectedAddress,
		correctedPincode,
		dto.CorrectedPhone,
		dto.RescheduledDate,
		dto.PreferredTimeSlot,
		dto.IsResolved,
		dto.ResolvedAt,
		ndr.ResolutionType(dto.ResolutionType),
		dto.Version,
		dto.CreatedAt,
	)
}

// callLogFromDomain converts a call log entry to its database representation.
func callLogFromDomain(log *ndr.CallLog) NDRCallLogDTO {
	return NDRCallLogDTO{
		ID:               log.ID().Bytes(),
		ReportID:         log.ReportID().Bytes(),
		CallStatus:       int(log.CallStatus()),
		CallOutcome:      int(log.CallOutcome()),
		CustomerResponse: log.CustomerResponse(),
		NewAddress:       log.NewAddress(),
		NewPhone:         log.NewPhone(),
		PreferredDate:    log.PreferredDate(),
		PreferredSlot:    log.PreferredSlot(),
		Metadata:         log.Metadata(),
		CreatedAt:        log.CreatedAt(),
	}
}

// callLogToDomain converts a database DTO to a call log entry.
func callLogToDomain(dto NDRCallLogDTO) (*ndr.CallLog, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	reportID, err := kernel.UUIDFromBytes(dto.ReportID[:])
	if err != nil {
		return nil, err
	}

	return ndr.NewCallLog(
		id,
		reportID,
		ndr.CallStatus(dto.CallStatus),
		ndr.CallOutcome(dto.CallOutcome),
		dto.CustomerResponse,
		dto.NewAddress,
		dto.NewPhone,
		dto.PreferredDate,
		dto.PreferredSlot,
		dto.Metadata,
		dto.CreatedAt,
	)
}
