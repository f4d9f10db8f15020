package services_test

import (
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/partner"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntry() partner.ServiceabilityEntry {
	return partner.ServiceabilityEntry{
		TransporterID:    kernel.NewUUID(),
		PartnerCode:      "BDART",
		PartnerName:      "Blue Dart",
		BaseRate:         40,
		RatePerKg:        12,
		CODChargePercent: 2,
		CODChargeMin:     30,
		MaxCODAmount:     50000,
		SupportsCOD:      true,
		TATDays:          2,
		Reliability:      92,
	}
}

func TestRateCalculator_VolumetricWeight(t *testing.T) {
	calc := services.NewRateCalculator()

	t.Run("divides cubic volume by 5000", func(t *testing.T) {
		got, err := calc.VolumetricWeight(50, 40, 30)

		require.NoError(t, err)
		assert.InDelta(t, 12.0, got, 1e-9)
	})

	t.Run("zero dimensions give zero weight", func(t *testing.T) {
		got, err := calc.VolumetricWeight(0, 40, 30)

		require.NoError(t, err)
		assert.Zero(t, got)
	})

	t.Run("negative dimension is rejected", func(t *testing.T) {
		_, err := calc.VolumetricWeight(-1, 40, 30)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRateCalculator_ChargeableWeight(t *testing.T) {
	calc := services.NewRateCalculator()

	t.Run("takes the greater of actual and volumetric", func(t *testing.T) {
		got, err := calc.ChargeableWeight(2.5, 12)
		require.NoError(t, err)
		assert.Equal(t, 12.0, got)

		got, err = calc.ChargeableWeight(15, 12)
		require.NoError(t, err)
		assert.Equal(t, 15.0, got)
	})

	t.Run("rejects non-positive actual weight", func(t *testing.T) {
		_, err := calc.ChargeableWeight(0, 12)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRateCalculator_Quote(t *testing.T) {
	calc := services.NewRateCalculator()

	t.Run("prepaid quote is base plus per kg", func(t *testing.T) {
		got, err := calc.Quote(testEntry(), 5, false, 0)

		require.NoError(t, err)
		assert.InDelta(t, 40+12*5, got, 1e-9)
	})

	t.Run("cod fee is the percentage when above the minimum", func(t *testing.T) {
		// 2% of 5000 = 100, above the 30 minimum
		got, err := calc.Quote(testEntry(), 5, true, 5000)

		require.NoError(t, err)
		assert.InDelta(t, 100+100, got, 1e-9)
	})

	t.Run("cod fee floors at the partner minimum", func(t *testing.T) {
		// 2% of 500 = 10, below the 30 minimum
		got, err := calc.Quote(testEntry(), 5, true, 500)

		require.NoError(t, err)
		assert.InDelta(t, 100+30, got, 1e-9)
	})

	t.Run("cod flag without an amount charges no fee", func(t *testing.T) {
		got, err := calc.Quote(testEntry(), 5, true, 0)

		require.NoError(t, err)
		assert.InDelta(t, 100, got, 1e-9)
	})

	t.Run("rejects malformed entries", func(t *testing.T) {
		entry := testEntry()
		entry.TATDays = 0

		_, err := calc.Quote(entry, 5, false, 0)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
