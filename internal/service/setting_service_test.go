package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "hostelms/internal/errors"
	"hostelms/internal/model"
)

func TestSettingService_UpsertByKey_Creates(t *testing.T) {
	mockRepo := new(MockSettingRepository)
	mockRepo.On("FindByKey", mock.Anything, "siteName").Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Setting")).Return(nil)

	svc := NewSettingService(mockRepo, nil)
	setting, err := svc.UpsertByKey(context.Background(), "siteName", UpsertSettingInput{
		Value: "Foo",
	})

	assert.NoError(t, err)
	assert.Equal(t, "siteName", setting.SettingKey)
	assert.Equal(t, "Foo", setting.SettingValue)
	assert.Equal(t, model.DataTypeString, setting.DataType)
	mockRepo.AssertExpectations(t)
}

// Writing the same key twice updates the existing record rather than
// creating a second one.
func TestSettingService_UpsertByKey_Idempotent(t *testing.T) {
	mockRepo := new(MockSettingRepository)

	var stored *model.Setting
	mockRepo.On("FindByKey", mock.Anything, "siteName").Return(nil, gorm.ErrRecordNotFound).Once()
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Setting")).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*model.Setting)
	}).Return(nil).Once()

	svc := NewSettingService(mockRepo, nil)

	_, err := svc.UpsertByKey(context.Background(), "siteName", UpsertSettingInput{Value: "Foo"})
	assert.NoError(t, err)
	assert.NotNil(t, stored)

	mockRepo.On("FindByKey", mock.Anything, "siteName").Return(stored, nil)
	mockRepo.On("Update", mock.Anything, stored).Return(nil).Once()

	setting, err := svc.UpsertByKey(context.Background(), "siteName", UpsertSettingInput{Value: "Foo"})
	assert.NoError(t, err)
	assert.Equal(t, "Foo", setting.SettingValue)

	mockRepo.AssertExpectations(t)
	mockRepo.AssertNumberOfCalls(t, "Create", 1)
}

func TestSettingService_UpsertByKey_UpdatesValueAndType(t *testing.T) {
	existing := &model.Setting{
		SettingKey:   "maxBookingsPerUser",
		SettingValue: float64(3),
		DataType:     model.DataTypeNumber,
	}

	mockRepo := new(MockSettingRepository)
	mockRepo.On("FindByKey", mock.Anything, "maxBookingsPerUser").Return(existing, nil)
	mockRepo.On("Update", mock.Anything, existing).Return(nil)

	svc := NewSettingService(mockRepo, nil)
	setting, err := svc.UpsertByKey(context.Background(), "maxBookingsPerUser", UpsertSettingInput{
		Value:       float64(5),
		Description: strPtr("raised limit"),
	})

	assert.NoError(t, err)
	assert.Equal(t, float64(5), setting.SettingValue)
	assert.Equal(t, model.DataTypeNumber, setting.DataType)
	assert.Equal(t, "raised limit", setting.Description)
	mockRepo.AssertExpectations(t)
}

func TestSettingService_UpsertByKey_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input UpsertSettingInput
	}{
		{
			name:  "missing value",
			input: UpsertSettingInput{},
		},
		{
			name:  "unknown data type",
			input: UpsertSettingInput{Value: "x", DataType: strPtr("object")},
		},
		{
			name:  "string value declared as number",
			input: UpsertSettingInput{Value: "five", DataType: strPtr(model.DataTypeNumber)},
		},
		{
			name:  "number value declared as boolean",
			input: UpsertSettingInput{Value: float64(1), DataType: strPtr(model.DataTypeBoolean)},
		},
		{
			name:  "scalar value declared as array",
			input: UpsertSettingInput{Value: "wifi", DataType: strPtr(model.DataTypeArray)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockSettingRepository)
			mockRepo.On("FindByKey", mock.Anything, "k").Return(nil, gorm.ErrRecordNotFound).Maybe()

			svc := NewSettingService(mockRepo, nil)
			_, err := svc.UpsertByKey(context.Background(), "k", tt.input)

			assert.Error(t, err)
			appErr, ok := apperrors.AsError(err)
			assert.True(t, ok)
			assert.Equal(t, apperrors.KindValidation, appErr.Kind)
			mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		})
	}
}

func TestSettingService_UpsertByKey_ArrayValue(t *testing.T) {
	mockRepo := new(MockSettingRepository)
	mockRepo.On("FindByKey", mock.Anything, "facilities").Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Setting")).Return(nil)

	svc := NewSettingService(mockRepo, nil)
	setting, err := svc.UpsertByKey(context.Background(), "facilities", UpsertSettingInput{
		Value:    []interface{}{"wifi", "laundry"},
		DataType: strPtr(model.DataTypeArray),
	})

	assert.NoError(t, err)
	assert.Equal(t, model.DataTypeArray, setting.DataType)
	mockRepo.AssertExpectations(t)
}

func TestSettingService_DeleteByKey_NotFound(t *testing.T) {
	mockRepo := new(MockSettingRepository)
	mockRepo.On("DeleteByKey", mock.Anything, "missing").Return(gorm.ErrRecordNotFound)

	svc := NewSettingService(mockRepo, nil)
	err := svc.DeleteByKey(context.Background(), "missing")

	assert.Error(t, err)
	appErr, ok := apperrors.AsError(err)
	assert.True(t, ok)
	assert.Equal(t, apperrors.KindNotFound, appErr.Kind)
}
