package ndr

import (
	"errors"
	"math"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// ErrReportIsNotConstructed is returned when a Report was created without
// NewReport or RestoreReport.
var ErrReportIsNotConstructed = errors.New("NDR report must be created via NewReport or RestoreReport")

// ErrReportIsClosed is returned when a mutation is attempted on a report that
// already left the open states.
var ErrReportIsClosed = errors.New("NDR report is no longer open")

// Report is the aggregate root for a non-delivery exception. A report opens
// when a delivery attempt fails and is worked by the support team until it is
// resolved or escalated to return-to-origin. A shipment never has more than
// one unresolved report at a time; repeated failed attempts reuse the open
// one.
type Report struct {
	id         kernel.UUID
	shipmentID kernel.UUID

	status     Status
	reasonCode string

	customerContacted  bool
	customerResponseAt *time.Time

	correctedAddress *string
	correctedPincode *kernel.Pincode
	correctedPhone   *string

	rescheduledDate   *time.Time
	preferredTimeSlot *string

	isResolved     bool
	resolvedAt     *time.Time
	resolutionType ResolutionType

	version   int
	createdAt time.Time

	isConstructed bool
}

// NewReport opens a report for a failed delivery attempt.
func NewReport(id kernel.UUID, shipmentID kernel.UUID, reasonCode string, createdAt time.Time) (*Report, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(reasonCode) == "" {
		return nil, errs.NewValueIsRequiredError("reasonCode")
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}

	return &Report{
		id:            id,
		shipmentID:    shipmentID,
		status:        StatusOpen,
		reasonCode:    reasonCode,
		version:       1,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreReport rebuilds a report from persistence without reapplying the
// workflow rules.
func RestoreReport(
	id kernel.UUID,
	shipmentID kernel.UUID,
	status Status,
	reasonCode string,
	customerContacted bool,
	customerResponseAt *time.Time,
	correctedAddress *string,
	correctedPincode *kernel.Pincode,
	correctedPhone *string,
	rescheduledDate *time.Time,
	preferredTimeSlot *string,
	isResolved bool,
	resolvedAt *time.Time,
	resolutionType ResolutionType,
	version int,
	createdAt time.Time,
) (*Report, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(reasonCode) == "" {
		return nil, errs.NewValueIsRequiredError("reasonCode")
	}
	if version < 1 {
		return nil, errs.NewValueIsOutOfRangeError("version", version, 1, math.MaxInt)
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}

	return &Report{
		id:                 id,
		shipmentID:         shipmentID,
		status:             status,
		reasonCode:         reasonCode,
		customerContacted:  customerContacted,
		customerResponseAt: customerResponseAt,
		correctedAddress:   correctedAddress,
		correctedPincode:   correctedPincode,
		correctedPhone:     correctedPhone,
		rescheduledDate:    rescheduledDate,
		preferredTimeSlot:  preferredTimeSlot,
		isResolved:         isResolved,
		resolvedAt:         resolvedAt,
		resolutionType:     resolutionType,
		version:            version,
		createdAt:          createdAt,
		isConstructed:      true,
	}, nil
}

func (r *Report) ensureOpen() error {
	if err := r.Validate(); err != nil {
		return err
	}
	if !r.status.IsOpen() {
		return ErrReportIsClosed
	}
	return nil
}

// RegisterContact records the outcome of a customer contact attempt. Only a
// connected call marks the customer as contacted; a corrected address or
// phone supplied by the customer is stored on the report.
func (r *Report) RegisterContact(
	callStatus CallStatus,
	respondedAt time.Time,
	correctedAddress *string,
	correctedPincode *kernel.Pincode,
	correctedPhone *string,
) error {
	if err := r.ensureOpen(); err != nil {
		return err
	}
	if err := callStatus.Validate(); err != nil {
		return err
	}
	if respondedAt.IsZero() {
		return errs.NewValueIsRequiredError("respondedAt")
	}
	if correctedPincode != nil {
		if err := correctedPincode.Validate(); err != nil {
			return err
		}
	}

	if callStatus == CallConnected {
		r.customerContacted = true
		r.customerResponseAt = &respondedAt
	}
	if correctedAddress != nil {
		r.correctedAddress = correctedAddress
	}
	if correctedPincode != nil {
		r.correctedPincode = correctedPincode
	}
	if correctedPhone != nil {
		r.correctedPhone = correctedPhone
	}
	return nil
}

// ScheduleReattempt books a new delivery window. The date must not lie in the
// past relative to the report's creation.
func (r *Report) ScheduleReattempt(date time.Time, timeSlot string) error {
	if err := r.ensureOpen(); err != nil {
		return err
	}
	if date.IsZero() {
		return errs.NewValueIsRequiredError("rescheduledDate")
	}
	if date.Before(r.createdAt) {
		return errs.NewValueIsInvalidError("rescheduledDate")
	}

	r.status = StatusReattemptScheduled
	r.rescheduledDate = &date
	if slot := strings.TrimSpace(timeSlot); slot != "" {
		r.preferredTimeSlot = &slot
	}
	return nil
}

// InitiateRTO escalates the report to return-to-origin. The report leaves
// the open states but is not resolved; the shipment's RTO chain takes over.
func (r *Report) InitiateRTO() error {
	if err := r.ensureOpen(); err != nil {
		return err
	}

	r.status = StatusRTOInitiated
	return nil
}

// Resolve closes the report with the given resolution.
func (r *Report) Resolve(resolution ResolutionType, resolvedAt time.Time) error {
	if err := r.ensureOpen(); err != nil {
		return err
	}
	if err := resolution.Validate(); err != nil {
		return err
	}
	if resolvedAt.IsZero() {
		return errs.NewValueIsRequiredError("resolvedAt")
	}

	r.status = StatusClosed
	r.isResolved = true
	r.resolvedAt = &resolvedAt
	r.resolutionType = resolution
	return nil
}

// Validate ensures the Report was created through a constructor.
func (r *Report) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReportIsNotConstructed
	}
	return nil
}

// ID returns the report's unique identifier.
func (r *Report) ID() kernel.UUID {
	return r.id
}

// ShipmentID returns the shipment the report belongs to.
func (r *Report) ShipmentID() kernel.UUID {
	return r.shipmentID
}

// Status returns the current report status.
func (r *Report) Status() Status {
	return r.status
}

// ReasonCode returns the partner-supplied failure reason.
func (r *Report) ReasonCode() string {
	return r.reasonCode
}

// CustomerContacted reports whether a contact attempt ever connected.
func (r *Report) CustomerContacted() bool {
	return r.customerContacted
}

// CustomerResponseAt returns the time of the last connected contact, if any.
func (r *Report) CustomerResponseAt() *time.Time {
	return r.customerResponseAt
}

// CorrectedAddress returns the customer-supplied address fix, if any.
func (r *Report) CorrectedAddress() *string {
	return r.correctedAddress
}

// CorrectedPincode returns the customer-supplied pincode fix, if any.
func (r *Report) CorrectedPincode() *kernel.Pincode {
	return r.correctedPincode
}

// CorrectedPhone returns the customer-supplied phone fix, if any.
func (r *Report) CorrectedPhone() *string {
	return r.correctedPhone
}

// RescheduledDate returns the booked reattempt date, if any.
func (r *Report) RescheduledDate() *time.Time {
	return r.rescheduledDate
}

// PreferredTimeSlot returns the booked reattempt window, if any.
func (r *Report) PreferredTimeSlot() *string {
	return r.preferredTimeSlot
}

// IsResolved reports whether the report closed with a resolution.
func (r *Report) IsResolved() bool {
	return r.isResolved
}

// ResolvedAt returns the resolution time, if resolved.
func (r *Report) ResolvedAt() *time.Time {
	return r.resolvedAt
}

// ResolutionType returns how the report was resolved, if resolved.
func (r *Report) ResolutionType() ResolutionType {
	return r.resolutionType
}

// Version returns the optimistic concurrency version.
func (r *Report) Version() int {
	return r.version
}

// CreatedAt returns the time the report was opened.
func (r *Report) CreatedAt() time.Time {
	return r.createdAt
}
