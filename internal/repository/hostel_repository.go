package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hostelms/internal/model"
)

// RoomTotals aggregates room counts across all hostels.
type RoomTotals struct {
	TotalHostels        int64 `json:"totalHostels"`
	TotalRooms          int64 `json:"totalRooms"`
	TotalAvailableRooms int64 `json:"totalAvailableRooms"`
}

// HostelRepository defines hostel persistence operations.
type HostelRepository interface {
	Create(ctx context.Context, hostel *model.Hostel) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Hostel, error)
	List(ctx context.Context) ([]model.Hostel, error)
	Update(ctx context.Context, hostel *model.Hostel) error
	Delete(ctx context.Context, id uuid.UUID) error
	Totals(ctx context.Context) (*RoomTotals, error)
}

type hostelRepository struct {
	db *gorm.DB
}

// NewHostelRepository creates a new hostel repository.
func NewHostelRepository(db *gorm.DB) HostelRepository {
	return &hostelRepository{db: db}
}

func (r *hostelRepository) Create(ctx context.Context, hostel *model.Hostel) error {
	return r.db.WithContext(ctx).Create(hostel).Error
}

// FindByID resolves the creator association so callers get a display-friendly
// owner instead of a bare id.
func (r *hostelRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Hostel, error) {
	var hostel model.Hostel
	if err := r.db.WithContext(ctx).Preload("Creator").Where("id = ?", id).First(&hostel).Error; err != nil {
		return nil, err
	}
	return &hostel, nil
}

func (r *hostelRepository) List(ctx context.Context) ([]model.Hostel, error) {
	var hostels []model.Hostel
	if err := r.db.WithContext(ctx).Preload("Creator").Find(&hostels).Error; err != nil {
		return nil, err
	}
	return hostels, nil
}

func (r *hostelRepository) Update(ctx context.Context, hostel *model.Hostel) error {
	return r.db.WithContext(ctx).Save(hostel).Error
}

func (r *hostelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Hostel{}).Error
}

// Totals computes hostel and room counts in a single aggregate query.
func (r *hostelRepository) Totals(ctx context.Context) (*RoomTotals, error) {
	var totals RoomTotals
	err := r.db.WithContext(ctx).Model(&model.Hostel{}).
		Select("COUNT(*) AS total_hostels, COALESCE(SUM(total_rooms), 0) AS total_rooms, COALESCE(SUM(available_rooms), 0) AS total_available_rooms").
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return &totals, nil
}
