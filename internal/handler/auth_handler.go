package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"hostelms/internal/errors"
	"hostelms/internal/model"
	"hostelms/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email" validate:"omitempty,email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Role            string `json:"role"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password"`
}

// AuthUser is the trimmed user shape returned alongside a token.
type AuthUser struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

// AuthResponse represents an authentication response.
type AuthResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    AuthUser `json:"user"`
}

func authUser(user *model.User) AuthUser {
	return AuthUser{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return errors.Validation("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, token, err := h.authService.Register(c.Request().Context(), service.RegisterInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Role:            req.Role,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, AuthResponse{
		Success: true,
		Message: "user registered successfully",
		Token:   token,
		User:    authUser(user),
	})
}

// Login godoc
// @Summary Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} Envelope
// @Failure 401 {object} Envelope
// @Failure 403 {object} Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return errors.Validation("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, AuthResponse{
		Success: true,
		Message: "logged in successfully",
		Token:   token,
		User:    authUser(user),
	})
}

// Me godoc
// @Summary Get the current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Envelope
// @Failure 401 {object} Envelope
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	ident, err := CurrentIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.authService.Me(c.Request().Context(), ident.UserID)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "", user)
}

// Logout godoc
// @Summary Logout
// @Description Tokens are stateless; logout is a client-side discard and has
// @Description no server-side effect.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Envelope
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	return respond(c, http.StatusOK, "logged out successfully", nil)
}
