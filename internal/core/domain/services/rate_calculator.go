package services

import (
	"logistics/internal/core/domain/model/partner"
	"logistics/internal/pkg/errs"
)

// volumetricDivisor converts cubic centimetres to kilograms per the standard
// courier convention.
const volumetricDivisor = 5000.0

// RateCalculator is a pure domain service computing chargeable weight and
// per-partner shipping quotes. It holds no state and performs no I/O.
type RateCalculator struct{}

// NewRateCalculator creates a new RateCalculator instance.
func NewRateCalculator() RateCalculator {
	return RateCalculator{}
}

// VolumetricWeight converts package dimensions in centimetres to the
// dimensional weight in kilograms.
func (RateCalculator) VolumetricWeight(lengthCm, widthCm, heightCm float64) (float64, error) {
	if lengthCm < 0 || widthCm < 0 || heightCm < 0 {
		return 0, errs.NewValueIsInvalidError("dimensions")
	}
	return lengthCm * widthCm * heightCm / volumetricDivisor, nil
}

// ChargeableWeight is the billed weight: the greater of actual and volumetric.
func (RateCalculator) ChargeableWeight(actualKg, volumetricKg float64) (float64, error) {
	if actualKg <= 0 {
		return 0, errs.NewValueIsInvalidError("actualKg")
	}
	if volumetricKg < 0 {
		return 0, errs.NewValueIsInvalidError("volumetricKg")
	}
	if volumetricKg > actualKg {
		return volumetricKg, nil
	}
	return actualKg, nil
}

// Quote computes the total charge for shipping the given weight under one
// partner's terms. The COD fee applies only to cash-on-delivery shipments
// with a positive collectable amount and is the greater of the partner's
// flat minimum and its percentage of the amount.
func (RateCalculator) Quote(entry partner.ServiceabilityEntry, weightKg float64, isCOD bool, codAmount float64) (float64, error) {
	if weightKg <= 0 {
		return 0, errs.NewValueIsInvalidError("weightKg")
	}
	if codAmount < 0 {
		return 0, errs.NewValueIsInvalidError("codAmount")
	}
	if err := entry.Validate(); err != nil {
		return 0, err
	}

	rate := entry.BaseRate + entry.RatePerKg*weightKg
	if isCOD && codAmount > 0 {
		codCharge := entry.CODChargePercent / 100 * codAmount
		if entry.CODChargeMin > codCharge {
			codCharge = entry.CODChargeMin
		}
		rate += codCharge
	}
	return rate, nil
}
