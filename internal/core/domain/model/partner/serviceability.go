package partner

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// ServiceabilityEntry is one partner's coverage and commercial terms for a
// route, as read from the serviceability index. The reading adapter injects
// the default reliability for partners without a recorded metric, so entries
// arriving here always carry a usable value.
type ServiceabilityEntry struct {
	TransporterID kernel.UUID
	PartnerCode   string
	PartnerName   string

	BaseRate  float64
	RatePerKg float64

	CODChargePercent float64
	CODChargeMin     float64
	MaxCODAmount     float64
	SupportsCOD      bool

	TATDays int

	// Reliability is the trailing performance metric on a 0 to 100 scale.
	Reliability float64
}

// Validate checks the entry carries usable commercial terms.
func (e ServiceabilityEntry) Validate() error {
	if err := e.TransporterID.Validate(); err != nil {
		return err
	}
	if e.PartnerCode == "" {
		return errs.NewValueIsRequiredError("partnerCode")
	}
	if e.BaseRate < 0 {
		return errs.NewValueIsInvalidError("baseRate")
	}
	if e.RatePerKg < 0 {
		return errs.NewValueIsInvalidError("ratePerKg")
	}
	if e.CODChargePercent < 0 || e.CODChargeMin < 0 || e.MaxCODAmount < 0 {
		return errs.NewValueIsInvalidError("codCharges")
	}
	if e.TATDays <= 0 {
		return errs.NewValueIsInvalidError("tatDays")
	}
	if e.Reliability < 0 || e.Reliability > 100 {
		return errs.NewValueIsOutOfRangeError("reliability", e.Reliability, 0, 100)
	}
	return nil
}
