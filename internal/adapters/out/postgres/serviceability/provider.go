package serviceability

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/partner"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// defaultReliability is read for partners that have no delivery history yet.
const defaultReliability = 80.0

// GormServiceabilityProvider implements ServiceabilityProvider by joining the
// transporter master data with lane coverage.
type GormServiceabilityProvider struct {
	db *gorm.DB
}

// NewGormServiceabilityProvider creates a provider over the partner master data.
func NewGormServiceabilityProvider(db *gorm.DB) *GormServiceabilityProvider {
	return &GormServiceabilityProvider{db: db}
}

// GetServiceableEntries retrieves every active partner covering the given lane.
// When needCOD is set, partners without COD support on the lane are excluded
// at the database level. Ordered by partner code for stable output.
func (p *GormServiceabilityProvider) GetServiceableEntries(
	ctx context.Context,
	origin kernel.Pincode,
	destination kernel.Pincode,
	needCOD bool,
) ([]partner.ServiceabilityEntry, error) {
	if err := origin.Validate(); err != nil {
		return nil, err
	}
	if err := destination.Validate(); err != nil {
		return nil, err
	}

	type row struct {
		TransporterID uuid.UUID
		Code          string
		Name          string
		Reliability   float64
		BaseRate      float64
		RatePerKg     float64
		CODChargePct  float64
		CODChargeMin  float64
		MaxCODAmount  float64
		SupportsCOD   bool
		TATDays       int
	}

	query := `
		SELECT
			t.id AS transporter_id,
			t.code,
			t.name,
			COALESCE(t.reliability, ?) AS reliability,
			s.base_rate,
			s.rate_per_kg,
			s.cod_charge_percent AS cod_charge_pct,
			s.cod_charge_min,
			s.max_cod_amount,
			s.supports_cod,
			s.tat_days
		FROM serviceability_entries s
		JOIN transporters t ON t.id = s.transporter_id
		WHERE t.is_active
		  AND s.origin_pincode = ?
		  AND s.destination_pincode = ?
	`
	args := []any{defaultReliability, origin.String(), destination.String()}

	if needCOD {
		query += " AND s.supports_cod"
	}
	query += " ORDER BY t.code"

	var rows []row
	if err := p.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	entries := make([]partner.ServiceabilityEntry, 0, len(rows))
	for _, r := range rows {
		transporterID, err := kernel.UUIDFromBytes(r.TransporterID[:])
		if err != nil {
			return nil, err
		}

		entries = append(entries, partner.ServiceabilityEntry{
			TransporterID:    transporterID,
			PartnerCode:      r.Code,
			PartnerName:      r.Name,
			BaseRate:         r.BaseRate,
			RatePerKg:        r.RatePerKg,
			CODChargePercent: r.CODChargePct,
			CODChargeMin:     r.CODChargeMin,
			MaxCODAmount:     r.MaxCODAmount,
			SupportsCOD:      r.SupportsCOD,
			TATDays:          r.TATDays,
			Reliability:      r.Reliability,
		})
	}

	return entries, nil
}
