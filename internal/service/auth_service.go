package service

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hostelms/internal/auth"
	"hostelms/internal/errors"
	"hostelms/internal/model"
	"hostelms/internal/repository"
)

const (
	bcryptCost        = 10
	minPasswordLength = 6
)

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	Role            string
}

// AuthService handles registration, credential verification, and self lookup.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*model.User, string, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	Me(ctx context.Context, userID uuid.UUID) (*model.User, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a new user with a hashed password and returns the created
// record plus an issued token.
func (s *authService) Register(ctx context.Context, input RegisterInput) (*model.User, string, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" || input.ConfirmPassword == "" {
		return nil, "", errors.Validation("please provide all required fields")
	}
	if input.Password != input.ConfirmPassword {
		return nil, "", errors.Validation("passwords do not match")
	}
	if len(input.Password) < minPasswordLength {
		return nil, "", errors.Validation("password must be at least 6 characters")
	}

	role := input.Role
	if role == "" {
		role = model.RoleUser
	}
	if role != model.RoleAdmin && role != model.RoleUser {
		return nil, "", errors.Validation("role must be admin or user")
	}

	existing, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		return nil, "", errors.Conflict("user already exists with this email")
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, "", errors.Internal("error during registration", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, "", errors.Internal("error during registration", err)
	}

	user := &model.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		Role:         role,
		IsActive:     true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", errors.Internal("error during registration", err)
	}

	token, err := s.jwtService.Generate(user.ID, user.Role)
	if err != nil {
		return nil, "", errors.Internal("error during registration", err)
	}

	return user, token, nil
}

// Login verifies credentials and returns the user plus an issued token.
// Unknown email and wrong password produce the identical error so callers
// cannot tell which part was wrong. The active flag is checked strictly
// after password verification.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	if email == "" || password == "" {
		return nil, "", errors.Validation("please provide email and password")
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", errors.Auth("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", errors.Auth("invalid credentials")
	}

	if !user.IsActive {
		return nil, "", errors.Forbidden("your account has been deactivated")
	}

	token, err := s.jwtService.Generate(user.ID, user.Role)
	if err != nil {
		return nil, "", errors.Internal("error during login", err)
	}

	return user, token, nil
}

// Me returns the authenticated user's own record.
func (s *authService) Me(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("user not found")
		}
		return nil, errors.Internal("error fetching user", err)
	}
	return user, nil
}
