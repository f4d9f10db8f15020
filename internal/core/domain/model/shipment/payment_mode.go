package shipment

import (
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"
)

// PaymentMode represents how a shipment is paid for.
type PaymentMode int

const (
	// PaymentModeUnknown represents an invalid or undefined payment mode.
	PaymentModeUnknown PaymentMode = iota

	// Prepaid shipments are paid up front; no cash changes hands on delivery.
	Prepaid

	// COD shipments collect the order value in cash on delivery.
	COD
)

func getPaymentModeStrings() map[PaymentMode]string {
	return map[PaymentMode]string{
		PaymentModeUnknown: "UNKNOWN",
		Prepaid:            "PREPAID",
		COD:                "COD",
	}
}

// Validate checks that the PaymentMode is one of the defined modes.
func (m PaymentMode) Validate() error {
	if m != Prepaid && m != COD {
		return errs.NewValueIsInvalidErrorWithCause("paymentMode",
			fmt.Errorf("%d is not a valid payment mode", m))
	}
	return nil
}

// String returns the canonical payment mode name. Implements fmt.Stringer.
func (m PaymentMode) String() string {
	if str, ok := getPaymentModeStrings()[m]; ok {
		return str
	}
	return "UNKNOWN"
}

// PaymentModeFromString parses a canonical payment mode name, case-insensitively.
func PaymentModeFromString(value string) (PaymentMode, error) {
	needle := strings.ToUpper(strings.TrimSpace(value))
	for mode, name := range getPaymentModeStrings() {
		if mode != PaymentModeUnknown && name == needle {
			return mode, nil
		}
	}
	return PaymentModeUnknown, errs.NewValueIsInvalidErrorWithCause("paymentMode",
		fmt.Errorf("%q is not a valid payment mode", value))
}
