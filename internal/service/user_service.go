package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hostelms/internal/auth"
	"hostelms/internal/errors"
	"hostelms/internal/model"
	"hostelms/internal/repository"
)

// UpdateUserInput carries a partial user update. Nil fields are left
// untouched.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Phone    *string
	Address  *string
	Role     *string
	IsActive *bool
	Password *string
}

// UserService exposes user management operations.
type UserService interface {
	List(ctx context.Context) ([]model.User, error)
	Get(ctx context.Context, ident *auth.Identity, id uuid.UUID) (*model.User, error)
	Update(ctx context.Context, ident *auth.Identity, id uuid.UUID, input UpdateUserInput) (*model.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService builds a UserService.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Internal("error fetching users", err)
	}
	return users, nil
}

// Get returns a user profile. Non-admin callers may only view their own.
func (s *userService) Get(ctx context.Context, ident *auth.Identity, id uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("user not found")
		}
		return nil, errors.Internal("error fetching user", err)
	}

	if err := auth.CheckOwner(ident, user.ID, "not authorized to view this profile"); err != nil {
		return nil, err
	}

	return user, nil
}

// Update applies a partial profile update. Non-admin callers may only update
// their own profile and may not change role or active status; password
// changes are rejected outright on this path.
func (s *userService) Update(ctx context.Context, ident *auth.Identity, id uuid.UUID, input UpdateUserInput) (*model.User, error) {
	if err := auth.CheckOwner(ident, id, "not authorized to update this profile"); err != nil {
		return nil, err
	}

	if input.Password != nil {
		return nil, errors.Validation("cannot update password through this route")
	}
	if (input.Role != nil || input.IsActive != nil) && !ident.IsAdmin() {
		return nil, errors.Forbidden("only admins can change role or active status")
	}
	if input.Role != nil && *input.Role != model.RoleAdmin && *input.Role != model.RoleUser {
		return nil, errors.Validation("role must be admin or user")
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("user not found")
		}
		return nil, errors.Internal("error updating user", err)
	}

	if input.Email != nil && *input.Email != user.Email {
		existing, err := s.userRepo.FindByEmail(ctx, *input.Email)
		if err != nil && err != gorm.ErrRecordNotFound {
			return nil, errors.Internal("error updating user", err)
		}
		if existing != nil {
			return nil, errors.Conflict("user already exists with this email")
		}
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Address != nil {
		user.Address = *input.Address
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Internal("error updating user", err)
	}

	return user, nil
}

func (s *userService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.userRepo.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.NotFound("user not found")
		}
		return errors.Internal("error deleting user", err)
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return errors.Internal("error deleting user", err)
	}
	return nil
}
