package kernel

import (
	"fmt"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// PincodeLength is the number of digits in a valid postal pincode.
const PincodeLength = 6

// ErrPincodeIsNotConstructed is returned when attempting to use an improperly
// initialized Pincode. Pincodes must be created via the NewPincode constructor.
var ErrPincodeIsNotConstructed = errs.NewValueIsRequiredError(
	"pincode must be created via NewPincode constructor")

// Pincode represents a postal pincode identifying one end of a delivery route.
// It is an immutable value object: exactly six digits, the first of which is
// non-zero. The zero value is invalid and fails validation - use the
// constructor to create instances.
//
// Example:
//
//	pin, err := kernel.NewPincode("560001")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(pin.String()) // Output: 560001
type Pincode struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewPincode creates a Pincode from its string representation.
// The value must be exactly six ASCII digits with a non-zero leading digit.
// Returns a validation error otherwise.
func NewPincode(value string) (Pincode, error) {
	pin := Pincode{
		guard: guard.NewConstructorGuard(),
	}

	if err := pin.setValue(value); err != nil {
		return Pincode{}, err
	}

	return pin, nil
}

// Validate checks that the Pincode was created through NewPincode.
// The zero value fails with ErrPincodeIsNotConstructed.
func (p Pincode) Validate() error {
	return p.guard.Validate(ErrPincodeIsNotConstructed)
}

// String returns the six-digit pincode. Implements fmt.Stringer.
func (p Pincode) String() string {
	return p.value
}

// IsEqual compares two pincodes by value.
func (p Pincode) IsEqual(other Pincode) bool {
	return p.value == other.value
}

func (p *Pincode) setValue(value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError("pincode")
	}

	if len(value) != PincodeLength {
		return errs.NewValueIsInvalidErrorWithCause("pincode",
			fmt.Errorf("%q must be exactly %d digits", value, PincodeLength))
	}

	for i, r := range value {
		if r < '0' || r > '9' {
			return errs.NewValueIsInvalidErrorWithCause("pincode",
				fmt.Errorf("%q contains a non-digit character", value))
		}
		if i == 0 && r == '0' {
			return errs.NewValueIsInvalidErrorWithCause("pincode",
				fmt.Errorf("%q must not start with zero", value))
		}
	}

	p.value = value
	return nil
}
