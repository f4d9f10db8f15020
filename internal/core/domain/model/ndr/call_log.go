package ndr

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// CallLog is the immutable record of one customer contact attempt on an NDR
// report. Logs are append-only; every attempt is kept regardless of outcome.
type CallLog struct {
	id       kernel.UUID
	reportID kernel.UUID

	callStatus CallStatus

	// callOutcome is set only when the call connected
	callOutcome CallOutcome

	customerResponse *string
	newAddress       *string
	newPhone         *string
	preferredDate    *time.Time
	preferredSlot    *string

	metadata map[string]string

	createdAt time.Time

	isConstructed bool
}

// NewCallLog creates a contact attempt record. callOutcome must be set when
// the call connected and absent otherwise; the metadata map is copied.
func NewCallLog(
	id kernel.UUID,
	reportID kernel.UUID,
	callStatus CallStatus,
	callOutcome CallOutcome,
	customerResponse *string,
	newAddress *string,
	newPhone *string,
	preferredDate *time.Time,
	preferredSlot *string,
	metadata map[string]string,
	createdAt time.Time,
) (*CallLog, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := reportID.Validate(); err != nil {
		return nil, err
	}
	if err := callStatus.Validate(); err != nil {
		return nil, err
	}
	if callOutcome != CallOutcomeUnknown {
		if callStatus != CallConnected {
			return nil, errs.NewValueIsInvalidError("callOutcome requires a connected call")
		}
		if err := callOutcome.Validate(); err != nil {
			return nil, err
		}
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}

	var meta map[string]string
	if len(metadata) > 0 {
		meta = make(map[string]string, len(metadata))
		for k, v := range metadata {
			meta[k] = v
		}
	}

	return &CallLog{
		id:               id,
		reportID:         reportID,
		callStatus:       callStatus,
		callOutcome:      callOutcome,
		customerResponse: customerResponse,
		newAddress:       newAddress,
		newPhone:         newPhone,
		preferredDate:    preferredDate,
		preferredSlot:    preferredSlot,
		metadata:         meta,
		createdAt:        createdAt,
		isConstructed:    true,
	}, nil
}

// Validate ensures the CallLog was created through NewCallLog.
func (l *CallLog) Validate() error {
	if l == nil || !l.isConstructed {
		return errs.NewValueIsRequiredError("CallLog must be created via NewCallLog")
	}
	return nil
}

// ID returns the log entry's unique identifier.
func (l *CallLog) ID() kernel.UUID {
	return l.id
}

// ReportID returns the report the attempt belongs to.
func (l *CallLog) ReportID() kernel.UUID {
	return l.reportID
}

// CallStatus returns whether the attempt reached the customer.
func (l *CallLog) CallStatus() CallStatus {
	return l.callStatus
}

// CallOutcome returns what a connected customer asked for.
func (l *CallLog) CallOutcome() CallOutcome {
	return l.callOutcome
}

// CustomerResponse returns the free-text customer response, if any.
func (l *CallLog) CustomerResponse() *string {
	return l.customerResponse
}

// NewAddress returns the address supplied during the call, if any.
func (l *CallLog) NewAddress() *string {
	return l.newAddress
}

// NewPhone returns the phone number supplied during the call, if any.
func (l *CallLog) NewPhone() *string {
	return l.newPhone
}

// PreferredDate returns the reattempt date requested during the call, if any.
func (l *CallLog) PreferredDate() *time.Time {
	return l.preferredDate
}

// PreferredSlot returns the reattempt window requested during the call, if any.
func (l *CallLog) PreferredSlot() *string {
	return l.preferredSlot
}

// Metadata returns a copy of the structured call detail.
func (l *CallLog) Metadata() map[string]string {
	if l.metadata == nil {
		return nil
	}
	meta := make(map[string]string, len(l.metadata))
	for k, v := range l.metadata {
		meta[k] = v
	}
	return meta
}

// CreatedAt returns the time of the attempt.
func (l *CallLog) CreatedAt() time.Time {
	return l.createdAt
}
