package ndr

import (
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"
)

// Status is the sub-state of an NDR report, separate from the shipment
// lifecycle status. A report opens on the first failed attempt and closes
// either through a resolution or by escalating to return-to-origin.
type Status int

const (
	// StatusUnknown represents an invalid or undefined report status.
	StatusUnknown Status = iota

	// StatusOpen is the initial report status after a failed delivery attempt.
	StatusOpen

	// StatusReattemptScheduled indicates a successful customer contact booked
	// a new delivery window.
	StatusReattemptScheduled

	// StatusRTOInitiated indicates the report escalated to return-to-origin.
	StatusRTOInitiated

	// StatusClosed indicates the report was resolved (delivered or cancelled).
	StatusClosed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:            "UNKNOWN",
		StatusOpen:               "OPEN",
		StatusReattemptScheduled: "REATTEMPT_SCHEDULED",
		StatusRTOInitiated:       "RTO_INITIATED",
		StatusClosed:             "CLOSED",
	}
}

// Validate checks that the Status is one of the defined report states.
func (s Status) Validate() error {
	if s < StatusOpen || s > StatusClosed {
		return errs.NewValueIsInvalidErrorWithCause("ndrStatus",
			fmt.Errorf("%d is not a valid NDR status", s))
	}
	return nil
}

// String returns the canonical report status name. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsOpen reports whether the report still owns the exception: open reports
// and scheduled reattempts both count, escalated and closed reports do not.
func (s Status) IsOpen() bool {
	return s == StatusOpen || s == StatusReattemptScheduled
}

// ResolutionType records how a resolved NDR ended.
type ResolutionType int

const (
	// ResolutionUnknown represents an invalid or undefined resolution.
	ResolutionUnknown ResolutionType = iota

	// ResolutionDelivered means the shipment was delivered after all.
	ResolutionDelivered

	// ResolutionCancelled means the shipment was cancelled out of the exception.
	ResolutionCancelled
)

// Validate checks that the ResolutionType is one of the defined resolutions.
func (r ResolutionType) Validate() error {
	if r != ResolutionDelivered && r != ResolutionCancelled {
		return errs.NewValueIsInvalidErrorWithCause("resolutionType",
			fmt.Errorf("%d is not a valid resolution type", r))
	}
	return nil
}

// String returns the canonical resolution name. Implements fmt.Stringer.
func (r ResolutionType) String() string {
	switch r {
	case ResolutionDelivered:
		return "DELIVERED"
	case ResolutionCancelled:
		return "CANCELLED"
	default:
		return "UNKNOWN"
	}
}

// ResolutionTypeFromString parses a canonical resolution name, case-insensitively.
func ResolutionTypeFromString(value string) (ResolutionType, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "DELIVERED":
		return ResolutionDelivered, nil
	case "CANCELLED":
		return ResolutionCancelled, nil
	default:
		return ResolutionUnknown, errs.NewValueIsInvalidErrorWithCause("resolutionType",
			fmt.Errorf("%q is not a valid resolution type", value))
	}
}

// CallStatus records whether a contact attempt reached the customer.
type CallStatus int

const (
	// CallStatusUnknown represents an invalid or undefined call status.
	CallStatusUnknown CallStatus = iota

	// CallConnected means the customer answered.
	CallConnected

	// CallNoAnswer means the call rang out.
	CallNoAnswer

	// CallBusy means the line was busy.
	CallBusy

	// CallSwitchedOff means the handset was off.
	CallSwitchedOff

	// CallWrongNumber means the number did not belong to the customer.
	CallWrongNumber
)

func getCallStatusStrings() map[CallStatus]string {
	return map[CallStatus]string{
		CallStatusUnknown: "UNKNOWN",
		CallConnected:     "CONNECTED",
		CallNoAnswer:      "NO_ANSWER",
		CallBusy:          "BUSY",
		CallSwitchedOff:   "SWITCHED_OFF",
		CallWrongNumber:   "WRONG_NUMBER",
	}
}

// Validate checks that the CallStatus is one of the defined outcomes.
func (c CallStatus) Validate() error {
	if c < CallConnected || c > CallWrongNumber {
		return errs.NewValueIsInvalidErrorWithCause("callStatus",
			fmt.Errorf("%d is not a valid call status", c))
	}
	return nil
}

// String returns the canonical call status name. Implements fmt.Stringer.
func (c CallStatus) String() string {
	if str, ok := getCallStatusStrings()[c]; ok {
		return str
	}
	return "UNKNOWN"
}

// CallStatusFromString parses a canonical call status name, case-insensitively.
func CallStatusFromString(value string) (CallStatus, error) {
	needle := strings.ToUpper(strings.TrimSpace(value))
	for status, name := range getCallStatusStrings() {
		if status != CallStatusUnknown && name == needle {
			return status, nil
		}
	}
	return CallStatusUnknown, errs.NewValueIsInvalidErrorWithCause("callStatus",
		fmt.Errorf("%q is not a valid call status", value))
}

// CallOutcome records what a connected customer asked for.
type CallOutcome int

const (
	// CallOutcomeUnknown represents an absent or undefined outcome.
	CallOutcomeUnknown CallOutcome = iota

	// OutcomeRescheduleRequested means the customer asked for a new window.
	OutcomeRescheduleRequested

	// OutcomeAddressUpdated means the customer corrected the address.
	OutcomeAddressUpdated

	// OutcomeCancelRequested means the customer refused the shipment.
	OutcomeCancelRequested

	// OutcomeWillCollect means the customer will collect from the hub.
	OutcomeWillCollect
)

func getCallOutcomeStrings() map[CallOutcome]string {
	return map[CallOutcome]string{
		CallOutcomeUnknown:         "UNKNOWN",
		OutcomeRescheduleRequested: "RESCHEDULE_REQUESTED",
		OutcomeAddressUpdated:      "ADDRESS_UPDATED",
		OutcomeCancelRequested:     "CANCEL_REQUESTED",
		OutcomeWillCollect:         "WILL_COLLECT",
	}
}

// Validate checks that the CallOutcome is one of the defined outcomes.
func (c CallOutcome) Validate() error {
	if c < OutcomeRescheduleRequested || c > OutcomeWillCollect {
		return errs.NewValueIsInvalidErrorWithCause("callOutcome",
			fmt.Errorf("%d is not a valid call outcome", c))
	}
	return nil
}

// String returns the canonical call outcome name. Implements fmt.Stringer.
func (c CallOutcome) String() string {
	if str, ok := getCallOutcomeStrings()[c]; ok {
		return str
	}
	return "UNKNOWN"
}

// CallOutcomeFromString parses a canonical call outcome name, case-insensitively.
func CallOutcomeFromString(value string) (CallOutcome, error) {
	needle := strings.ToUpper(strings.TrimSpace(value))
	for outcome, name := range getCallOutcomeStrings() {
		if outcome != CallOutcomeUnknown && name == needle {
			return outcome, nil
		}
	}
	return CallOutcomeUnknown, errs.NewValueIsInvalidErrorWithCause("callOutcome",
		fmt.Errorf("%q is not a valid call outcome", value))
}
