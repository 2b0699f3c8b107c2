package repository

import (
	"context"

	"gorm.io/gorm"

	"hostelms/internal/model"
)

// SettingRepository defines setting persistence operations, keyed by the
// unique setting key.
type SettingRepository interface {
	Create(ctx context.Context, setting *model.Setting) error
	FindByKey(ctx context.Context, key string) (*model.Setting, error)
	List(ctx context.Context) ([]model.Setting, error)
	Update(ctx context.Context, setting *model.Setting) error
	DeleteByKey(ctx context.Context, key string) error
}

type settingRepository struct {
	db *gorm.DB
}

// NewSettingRepository creates a new setting repository.
func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db: db}
}

func (r *settingRepository) Create(ctx context.Context, setting *model.Setting) error {
	return r.db.WithContext(ctx).Create(setting).Error
}

func (r *settingRepository) FindByKey(ctx context.Context, key string) (*model.Setting, error) {
	var setting model.Setting
	if err := r.db.WithContext(ctx).Where("setting_key = ?", key).First(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *settingRepository) List(ctx context.Context) ([]model.Setting, error) {
	var settings []model.Setting
	if err := r.db.WithContext(ctx).Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *settingRepository) Update(ctx context.Context, setting *model.Setting) error {
	return r.db.WithContext(ctx).Save(setting).Error
}

func (r *settingRepository) DeleteByKey(ctx context.Context, key string) error {
	res := r.db.WithContext(ctx).Where("setting_key = ?", key).Delete(&model.Setting{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
