package kernel_test

import (
	"fmt"
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPincode(t *testing.T) {
	t.Run("should create valid pincodes", func(t *testing.T) {
		validPincodes := []string{"110001", "560001", "700001", "999999", "100000"}

		for _, value := range validPincodes {
			t.Run(fmt.Sprintf("should accept %s", value), func(t *testing.T) {
				pin, err := kernel.NewPincode(value)

				require.NoError(t, err)
				require.NoError(t, pin.Validate())
				assert.Equal(t, value, pin.String())
			})
		}
	})

	t.Run("should reject empty pincode", func(t *testing.T) {
		_, err := kernel.NewPincode("")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject malformed pincodes", func(t *testing.T) {
		invalidPincodes := []string{
			"12345",    // too short
			"1234567",  // too long
			"12a456",   // non-digit
			"012345",   // leading zero
			"12 456",   // whitespace
			"-12345",   // sign
			"12345\n6", // newline
		}

		for _, value := range invalidPincodes {
			t.Run(fmt.Sprintf("should reject %q", value), func(t *testing.T) {
				_, err := kernel.NewPincode(value)

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			})
		}
	})
}

func TestPincode_Validate(t *testing.T) {
	t.Run("zero value is not constructed", func(t *testing.T) {
		var pin kernel.Pincode

		err := pin.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrPincodeIsNotConstructed, err)
	})

	t.Run("constructed pincode is valid", func(t *testing.T) {
		pin, err := kernel.NewPincode("400001")
		require.NoError(t, err)

		require.NoError(t, pin.Validate())
	})
}

func TestPincode_IsEqual(t *testing.T) {
	first, err := kernel.NewPincode("110001")
	require.NoError(t, err)
	second, err := kernel.NewPincode("110001")
	require.NoError(t, err)
	third, err := kernel.NewPincode("560001")
	require.NoError(t, err)

	assert.True(t, first.IsEqual(second))
	assert.False(t, first.IsEqual(third))
}
