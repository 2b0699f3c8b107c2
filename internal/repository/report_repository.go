package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hostelms/internal/model"
)

// ReportRepository defines report persistence operations. Reports are
// immutable, so there is no update.
type ReportRepository interface {
	Create(ctx context.Context, report *model.Report) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Report, error)
	List(ctx context.Context) ([]model.Report, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository.
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(ctx context.Context, report *model.Report) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *reportRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Report, error) {
	var report model.Report
	if err := r.db.WithContext(ctx).Preload("Generator").Preload("Hostel").
		Where("id = ?", id).First(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *reportRepository) List(ctx context.Context) ([]model.Report, error) {
	var reports []model.Report
	if err := r.db.WithContext(ctx).Preload("Generator").Preload("Hostel").
		Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *reportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Report{}).Error
}
