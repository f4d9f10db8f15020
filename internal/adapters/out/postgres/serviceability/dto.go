// Package serviceability provides the read-side adapter over the partner
// master data. Transporters and their lane coverage are reference data
// maintained outside the decision flow, so this package only reads.
package serviceability

import (
	"time"

	"github.com/google/uuid"
)

// TransporterDTO represents one delivery partner in the master data.
// Reliability is nullable: partners without enough delivery history have no
// score yet and are read with a neutral default.
type TransporterDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code        string    `gorm:"uniqueIndex"`
	Name        string
	IsActive    bool      `gorm:"index"`
	Reliability *float64
	CreatedAt   time.Time
}

// TableName specifies the database table name for transporter entities.
func (TransporterDTO) TableName() string {
	return "transporters"
}

// ServiceabilityEntryDTO represents one lane a transporter covers, with its
// commercial terms for that lane.
type ServiceabilityEntryDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	TransporterID      uuid.UUID `gorm:"type:uuid;index:idx_lane_per_transporter,unique"`
	OriginPincode      string    `gorm:"type:varchar(6);index:idx_lane_per_transporter,unique"`
	DestinationPincode string    `gorm:"type:varchar(6);index:idx_lane_per_transporter,unique"`
	BaseRate           float64
	RatePerKg          float64
	CODChargePercent   float64
	CODChargeMin       float64
	MaxCODAmount       float64
	SupportsCOD        bool
	TATDays            int
}

// TableName specifies the database table name for serviceability entries.
func (ServiceabilityEntryDTO) TableName() string {
	return "serviceability_entries"
}
