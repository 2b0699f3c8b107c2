package service

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"hostelms/internal/cache"
	"hostelms/internal/errors"
	"hostelms/internal/model"
	"hostelms/internal/repository"
)

const settingCacheTTL = 5 * time.Minute

// UpsertSettingInput carries the writable fields of a setting. Description
// and DataType are optional on update; an existing record keeps its values
// when they are nil.
type UpsertSettingInput struct {
	Value       interface{}
	Description *string
	DataType    *string
}

// SettingService exposes setting operations with upsert semantics keyed on
// the unique setting key.
type SettingService interface {
	List(ctx context.Context) ([]model.Setting, error)
	GetByKey(ctx context.Context, key string) (*model.Setting, error)
	UpsertByKey(ctx context.Context, key string, input UpsertSettingInput) (*model.Setting, error)
	DeleteByKey(ctx context.Context, key string) error
}

type settingService struct {
	settingRepo repository.SettingRepository
	cache       *cache.Client
}

// NewSettingService builds a SettingService with repository and cache.
func NewSettingService(settingRepo repository.SettingRepository, cache *cache.Client) SettingService {
	return &settingService{settingRepo: settingRepo, cache: cache}
}

func settingCacheKey(key string) string {
	return "setting:" + key
}

func (s *settingService) List(ctx context.Context) ([]model.Setting, error) {
	settings, err := s.settingRepo.List(ctx)
	if err != nil {
		return nil, errors.Internal("error fetching settings", err)
	}
	return settings, nil
}

func (s *settingService) GetByKey(ctx context.Context, key string) (*model.Setting, error) {
	var cached model.Setting
	if s.cache.GetJSON(ctx, settingCacheKey(key), &cached) {
		return &cached, nil
	}

	setting, err := s.settingRepo.FindByKey(ctx, key)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("setting not found")
		}
		return nil, errors.Internal("error fetching setting", err)
	}

	s.cache.SetJSON(ctx, settingCacheKey(key), setting, settingCacheTTL)
	return setting, nil
}

// UpsertByKey creates the setting when the key is unknown and updates
// value/description/type when it exists. The value's JSON shape must match
// the declared data type.
func (s *settingService) UpsertByKey(ctx context.Context, key string, input UpsertSettingInput) (*model.Setting, error) {
	if input.Value == nil {
		return nil, errors.Validation("please provide setting value")
	}

	existing, err := s.settingRepo.FindByKey(ctx, key)
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, errors.Internal("error updating setting", err)
	}

	dataType := model.DataTypeString
	if existing != nil {
		dataType = existing.DataType
	}
	if input.DataType != nil {
		dataType = *input.DataType
	}
	if !model.ValidDataType(dataType) {
		return nil, errors.Validation("dataType must be string, number, boolean, or array")
	}
	if !valueMatchesType(input.Value, dataType) {
		return nil, errors.Validation("settingValue does not match declared dataType " + dataType)
	}

	if existing == nil {
		setting := &model.Setting{
			SettingKey:   key,
			SettingValue: input.Value,
			DataType:     dataType,
		}
		if input.Description != nil {
			setting.Description = *input.Description
		}
		if err := s.settingRepo.Create(ctx, setting); err != nil {
			return nil, errors.Internal("error updating setting", err)
		}
		s.cache.Delete(ctx, settingCacheKey(key))
		return setting, nil
	}

	existing.SettingValue = input.Value
	existing.DataType = dataType
	if input.Description != nil {
		existing.Description = *input.Description
	}
	if err := s.settingRepo.Update(ctx, existing); err != nil {
		return nil, errors.Internal("error updating setting", err)
	}

	s.cache.Delete(ctx, settingCacheKey(key))
	return existing, nil
}

func (s *settingService) DeleteByKey(ctx context.Context, key string) error {
	if err := s.settingRepo.DeleteByKey(ctx, key); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.NotFound("setting not found")
		}
		return errors.Internal("error deleting setting", err)
	}
	s.cache.Delete(ctx, settingCacheKey(key))
	return nil
}

// valueMatchesType checks a decoded JSON value against a declared data type.
func valueMatchesType(value interface{}, dataType string) bool {
	switch dataType {
	case model.DataTypeString:
		_, ok := value.(string)
		return ok
	case model.DataTypeNumber:
		switch value.(type) {
		case float64, float32, int, int32, int64, json.Number:
			return true
		}
		return false
	case model.DataTypeBoolean:
		_, ok := value.(bool)
		return ok
	case model.DataTypeArray:
		_, ok := value.([]interface{})
		return ok
	}
	return false
}
