package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"hostelms/internal/auth"
	apperrors "hostelms/internal/errors"
	"hostelms/internal/model"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
func boolPtr(v bool) *bool    { return &v }

func validHostelInput() CreateHostelInput {
	return CreateHostelInput{
		HostelName: "Sunrise Hostel",
		Address:    "12 MG Road",
		City:       "Bengaluru",
		State:      "Karnataka",
		Pincode:    "560001",
		TotalRooms: 40,
		CostPerBed: decimal.NewFromInt(5000),
		Facilities: []string{"wifi", "laundry"},
	}
}

func TestHostelService_Create(t *testing.T) {
	ownerID := uuid.New()

	tests := []struct {
		name         string
		mutate       func(*CreateHostelInput)
		setupMock    func(*MockHostelRepository)
		expectedKind apperrors.Kind
		wantErr      bool
		check        func(*testing.T, *model.Hostel)
	}{
		{
			name:   "success with explicit available rooms",
			mutate: func(in *CreateHostelInput) { in.AvailableRooms = intPtr(25) },
			setupMock: func(m *MockHostelRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Hostel")).Return(nil)
			},
			check: func(t *testing.T, h *model.Hostel) {
				assert.Equal(t, 25, h.AvailableRooms)
				assert.Equal(t, ownerID, h.CreatedBy)
			},
		},
		{
			name:   "available rooms default to total rooms",
			mutate: func(in *CreateHostelInput) {},
			setupMock: func(m *MockHostelRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Hostel")).Return(nil)
			},
			check: func(t *testing.T, h *model.Hostel) {
				assert.Equal(t, 40, h.AvailableRooms)
			},
		},
		{
			name:         "missing required field",
			mutate:       func(in *CreateHostelInput) { in.City = "" },
			setupMock:    func(m *MockHostelRepository) {},
			expectedKind: apperrors.KindValidation,
			wantErr:      true,
		},
		{
			name:         "available rooms above total rooms",
			mutate:       func(in *CreateHostelInput) { in.AvailableRooms = intPtr(41) },
			setupMock:    func(m *MockHostelRepository) {},
			expectedKind: apperrors.KindValidation,
			wantErr:      true,
		},
		{
			name:         "negative available rooms",
			mutate:       func(in *CreateHostelInput) { in.AvailableRooms = intPtr(-1) },
			setupMock:    func(m *MockHostelRepository) {},
			expectedKind: apperrors.KindValidation,
			wantErr:      true,
		},
		{
			name:         "negative cost per bed",
			mutate:       func(in *CreateHostelInput) { in.CostPerBed = decimal.NewFromInt(-1) },
			setupMock:    func(m *MockHostelRepository) {},
			expectedKind: apperrors.KindValidation,
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockHostelRepository)
			tt.setupMock(mockRepo)

			svc := NewHostelService(mockRepo, nil)
			input := validHostelInput()
			tt.mutate(&input)

			hostel, err := svc.Create(context.Background(), ownerID, input)

			if tt.wantErr {
				assert.Error(t, err)
				appErr, ok := apperrors.AsError(err)
				assert.True(t, ok)
				assert.Equal(t, tt.expectedKind, appErr.Kind)
				assert.Nil(t, hostel)
				mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, hostel)
				tt.check(t, hostel)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestHostelService_Update_Ownership(t *testing.T) {
	ownerID := uuid.New()
	hostelID := uuid.New()

	owner := &auth.Identity{UserID: ownerID, Role: model.RoleUser}
	admin := &auth.Identity{UserID: uuid.New(), Role: model.RoleAdmin}
	stranger := &auth.Identity{UserID: uuid.New(), Role: model.RoleUser}

	stored := func() *model.Hostel {
		return &model.Hostel{
			ID:             hostelID,
			HostelName:     "Sunrise Hostel",
			Address:        "12 MG Road",
			City:           "Bengaluru",
			State:          "Karnataka",
			Pincode:        "560001",
			TotalRooms:     40,
			AvailableRooms: 25,
			CostPerBed:     decimal.NewFromInt(5000),
			CreatedBy:      ownerID,
		}
	}

	tests := []struct {
		name         string
		ident        *auth.Identity
		expectedKind apperrors.Kind
		wantErr      bool
	}{
		{name: "owner may update", ident: owner},
		{name: "admin bypasses ownership", ident: admin},
		{name: "non-owner non-admin is forbidden", ident: stranger, expectedKind: apperrors.KindForbidden, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockHostelRepository)
			mockRepo.On("FindByID", mock.Anything, hostelID).Return(stored(), nil)
			if !tt.wantErr {
				mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Hostel")).Return(nil)
			}

			svc := NewHostelService(mockRepo, nil)
			hostel, err := svc.Update(context.Background(), tt.ident, hostelID, UpdateHostelInput{
				HostelName: strPtr("Renamed Hostel"),
			})

			if tt.wantErr {
				assert.Error(t, err)
				appErr, ok := apperrors.AsError(err)
				assert.True(t, ok)
				assert.Equal(t, tt.expectedKind, appErr.Kind)
				mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Renamed Hostel", hostel.HostelName)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestHostelService_Update_RoomBounds(t *testing.T) {
	ownerID := uuid.New()
	hostelID := uuid.New()
	owner := &auth.Identity{UserID: ownerID, Role: model.RoleUser}

	mockRepo := new(MockHostelRepository)
	mockRepo.On("FindByID", mock.Anything, hostelID).Return(&model.Hostel{
		ID:             hostelID,
		HostelName:     "Sunrise Hostel",
		TotalRooms:     40,
		AvailableRooms: 25,
		CreatedBy:      ownerID,
	}, nil)

	svc := NewHostelService(mockRepo, nil)

	// Shrinking totalRooms below availableRooms must be rejected.
	_, err := svc.Update(context.Background(), owner, hostelID, UpdateHostelInput{
		TotalRooms: intPtr(10),
	})
	assert.Error(t, err)
	appErr, ok := apperrors.AsError(err)
	assert.True(t, ok)
	assert.Equal(t, apperrors.KindValidation, appErr.Kind)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestHostelService_Update_NotFound(t *testing.T) {
	hostelID := uuid.New()
	admin := &auth.Identity{UserID: uuid.New(), Role: model.RoleAdmin}

	mockRepo := new(MockHostelRepository)
	mockRepo.On("FindByID", mock.Anything, hostelID).Return(nil, gorm.ErrRecordNotFound)

	svc := NewHostelService(mockRepo, nil)
	_, err := svc.Update(context.Background(), admin, hostelID, UpdateHostelInput{})
	assert.Error(t, err)
	appErr, ok := apperrors.AsError(err)
	assert.True(t, ok)
	assert.Equal(t, apperrors.KindNotFound, appErr.Kind)
}

func TestHostelService_Delete_Ownership(t *testing.T) {
	ownerID := uuid.New()
	hostelID := uuid.New()
	stranger := &auth.Identity{UserID: uuid.New(), Role: model.RoleUser}

	mockRepo := new(MockHostelRepository)
	mockRepo.On("FindByID", mock.Anything, hostelID).Return(&model.Hostel{
		ID:        hostelID,
		CreatedBy: ownerID,
	}, nil)

	svc := NewHostelService(mockRepo, nil)
	err := svc.Delete(context.Background(), stranger, hostelID)
	assert.Error(t, err)
	appErr, ok := apperrors.AsError(err)
	assert.True(t, ok)
	assert.Equal(t, apperrors.KindForbidden, appErr.Kind)
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
