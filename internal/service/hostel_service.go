package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"hostelms/internal/auth"
	"hostelms/internal/cache"
	"hostelms/internal/errors"
	"hostelms/internal/model"
	"hostelms/internal/repository"
)

// CreateHostelInput carries the fields of a hostel creation request.
type CreateHostelInput struct {
	HostelName     string
	Address        string
	City           string
	State          string
	Pincode        string
	TotalRooms     int
	AvailableRooms *int
	CostPerBed     decimal.Decimal
	Description    string
	Facilities     []string
}

// UpdateHostelInput carries a partial hostel update. Nil fields are left
// untouched. The owner reference is immutable and cannot appear here.
type UpdateHostelInput struct {
	HostelName     *string
	Address        *string
	City           *string
	State          *string
	Pincode        *string
	TotalRooms     *int
	AvailableRooms *int
	CostPerBed     *decimal.Decimal
	Description    *string
	Facilities     []string
}

// HostelService exposes hostel management operations.
type HostelService interface {
	Create(ctx context.Context, ownerID uuid.UUID, input CreateHostelInput) (*model.Hostel, error)
	List(ctx context.Context) ([]model.Hostel, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Hostel, error)
	Update(ctx context.Context, ident *auth.Identity, id uuid.UUID, input UpdateHostelInput) (*model.Hostel, error)
	Delete(ctx context.Context, ident *auth.Identity, id uuid.UUID) error
}

type hostelService struct {
	hostelRepo repository.HostelRepository
	cache      *cache.Client
}

// NewHostelService builds a HostelService. Hostel writes invalidate the
// cached dashboard statistics.
func NewHostelService(hostelRepo repository.HostelRepository, cache *cache.Client) HostelService {
	return &hostelService{hostelRepo: hostelRepo, cache: cache}
}

// Create stores a new hostel owned by ownerID. AvailableRooms defaults to
// TotalRooms when omitted and may never exceed it.
func (s *hostelService) Create(ctx context.Context, ownerID uuid.UUID, input CreateHostelInput) (*model.Hostel, error) {
	if input.HostelName == "" || input.Address == "" || input.City == "" ||
		input.State == "" || input.Pincode == "" || input.TotalRooms == 0 {
		return nil, errors.Validation("please provide all required fields")
	}
	if input.TotalRooms < 1 {
		return nil, errors.Validation("totalRooms must be at least 1")
	}
	if input.CostPerBed.Sign() < 0 {
		return nil, errors.Validation("costPerBed cannot be negative")
	}

	availableRooms := input.TotalRooms
	if input.AvailableRooms != nil {
		availableRooms = *input.AvailableRooms
	}
	if availableRooms < 0 {
		return nil, errors.Validation("availableRooms cannot be negative")
	}
	if availableRooms > input.TotalRooms {
		return nil, errors.Validation("availableRooms cannot exceed totalRooms")
	}

	facilities := input.Facilities
	if facilities == nil {
		facilities = []string{}
	}

	hostel := &model.Hostel{
		HostelName:     input.HostelName,
		Address:        input.Address,
		City:           input.City,
		State:          input.State,
		Pincode:        input.Pincode,
		TotalRooms:     input.TotalRooms,
		AvailableRooms: availableRooms,
		CostPerBed:     input.CostPerBed,
		Description:    input.Description,
		Facilities:     facilities,
		CreatedBy:      ownerID,
	}

	if err := s.hostelRepo.Create(ctx, hostel); err != nil {
		return nil, errors.Internal("error creating hostel", err)
	}

	s.cache.Delete(ctx, dashboardStatsCacheKey)
	return hostel, nil
}

func (s *hostelService) List(ctx context.Context) ([]model.Hostel, error) {
	hostels, err := s.hostelRepo.List(ctx)
	if err != nil {
		return nil, errors.Internal("error fetching hostels", err)
	}
	return hostels, nil
}

func (s *hostelService) Get(ctx context.Context, id uuid.UUID) (*model.Hostel, error) {
	hostel, err := s.hostelRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("hostel not found")
		}
		return nil, errors.Internal("error fetching hostel", err)
	}
	return hostel, nil
}

// Update applies a partial update after an owner-or-admin check against the
// stored record.
func (s *hostelService) Update(ctx context.Context, ident *auth.Identity, id uuid.UUID, input UpdateHostelInput) (*model.Hostel, error) {
	hostel, err := s.hostelRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("hostel not found")
		}
		return nil, errors.Internal("error updating hostel", err)
	}

	if err := auth.CheckOwner(ident, hostel.CreatedBy, "not authorized to update this hostel"); err != nil {
		return nil, err
	}

	if input.HostelName != nil {
		hostel.HostelName = *input.HostelName
	}
	if input.Address != nil {
		hostel.Address = *input.Address
	}
	if input.City != nil {
		hostel.City = *input.City
	}
	if input.State != nil {
		hostel.State = *input.State
	}
	if input.Pincode != nil {
		hostel.Pincode = *input.Pincode
	}
	if input.TotalRooms != nil {
		hostel.TotalRooms = *input.TotalRooms
	}
	if input.AvailableRooms != nil {
		hostel.AvailableRooms = *input.AvailableRooms
	}
	if input.CostPerBed != nil {
		hostel.CostPerBed = *input.CostPerBed
	}
	if input.Description != nil {
		hostel.Description = *input.Description
	}
	if input.Facilities != nil {
		hostel.Facilities = input.Facilities
	}

	if hostel.TotalRooms < 1 {
		return nil, errors.Validation("totalRooms must be at least 1")
	}
	if hostel.AvailableRooms < 0 {
		return nil, errors.Validation("availableRooms cannot be negative")
	}
	if hostel.AvailableRooms > hostel.TotalRooms {
		return nil, errors.Validation("availableRooms cannot exceed totalRooms")
	}
	if hostel.CostPerBed.Sign() < 0 {
		return nil, errors.Validation("costPerBed cannot be negative")
	}

	if err := s.hostelRepo.Update(ctx, hostel); err != nil {
		return nil, errors.Internal("error updating hostel", err)
	}

	s.cache.Delete(ctx, dashboardStatsCacheKey)
	return hostel, nil
}

// Delete removes a hostel after an owner-or-admin check. Reports referencing
// the hostel are left in place.
func (s *hostelService) Delete(ctx context.Context, ident *auth.Identity, id uuid.UUID) error {
	hostel, err := s.hostelRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.NotFound("hostel not found")
		}
		return errors.Internal("error deleting hostel", err)
	}

	if err := auth.CheckOwner(ident, hostel.CreatedBy, "not authorized to delete this hostel"); err != nil {
		return err
	}

	if err := s.hostelRepo.Delete(ctx, id); err != nil {
		return errors.Internal("error deleting hostel", err)
	}

	s.cache.Delete(ctx, dashboardStatsCacheKey)
	return nil
}
