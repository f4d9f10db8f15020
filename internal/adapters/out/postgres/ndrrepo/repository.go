package ndrrepo

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/ndr"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// openStatuses are the report statuses counted as unresolved.
var openStatuses = []int{int(ndr.StatusOpen), int(ndr.StatusReattemptScheduled)}

// GormNDRRepository implements NDRRepository using GORM.
type GormNDRRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormNDRRepository creates a new GORM NDR repository.
func NewGormNDRRepository(db *gorm.DB, tracker aggregateTracker) *GormNDRRepository {
	return &GormNDRRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new NDR report to the database. The partial unique index on
// open reports rejects the insert when the shipment already has one
// unresolved.
func (r *GormNDRRepository) Add(ctx context.Context, aggregate *ndr.Report) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing NDR report using a compare-and-swap on the version
// column. A lost race surfaces as errs.VersionIsInvalidError.
func (r *GormNDRRepository) Update(ctx context.Context, aggregate *ndr.Report) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).
		Model(&NDRReportDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&NDRReportDTO{}).
			Where("id = ?", dto.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("ndrReport", aggregate.ID().String())
		}
		return errs.NewVersionIsInvalidErrorWithCause("ndrReport")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an NDR report by ID.
func (r *GormNDRRepository) Get(ctx context.Context, id kernel.UUID) (*ndr.Report, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto NDRReportDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("ndrReport", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetOpenByShipment retrieves the shipment's single unresolved report.
func (r *GormNDRRepository) GetOpenByShipment(
	ctx context.Context, shipmentID kernel.UUID,
) (*ndr.Report, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	var dto NDRReportDTO
	err := r.db.WithContext(ctx).
		First(&dto, "shipment_id = ? AND status IN ?", shipmentID.Bytes(), openStatuses).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("ndrReport", shipmentID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetOverdueOpen retrieves every unresolved report opened before the given
// cutoff, oldest first.
func (r *GormNDRRepository) GetOverdueOpen(ctx context.Context, before time.Time) ([]*ndr.Report, error) {
	var dtos []NDRReportDTO
	err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&dtos, "status IN ? AND created_at < ?", openStatuses, before).Error
	if err != nil {
		return nil, err
	}

	reports := make([]*ndr.Report, 0, len(dtos))
	for _, dto := range dtos {
		report, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		reports = append(reports, report)
	}

	return reports, nil
}

// AppendCallLog persists one contact attempt record.
func (r *GormNDRRepository) AppendCallLog(ctx context.Context, log *ndr.CallLog) error {
	if err := log.Validate(); err != nil {
		return err
	}

	dto := callLogFromDomain(log)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// ListCallLogs retrieves a report's contact attempts ordered by creation.
func (r *GormNDRRepository) ListCallLogs(ctx context.Context, reportID kernel.UUID) ([]*ndr.CallLog, error) {
	if err := reportID.Validate(); err != nil {
		return nil, err
	}

	var dtos []NDRCallLogDTO
	err := r.db.WithContext(ctx).
		Order("created_at, id").
		Find(&dtos, "report_id = ?", reportID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	logs := make([]*ndr.CallLog, 0, len(dtos))
	for _, dto := range dtos {
		log, mapErr := callLogToDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		logs = append(logs, log)
	}

	return logs, nil
}
