package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"hostelms/internal/errors"
	"hostelms/internal/service"
)

// UserHandler handles user management endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UpdateUserRequest represents a partial user update.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	Role     *string `json:"role"`
	IsActive *bool   `json:"isActive"`
	Password *string `json:"password"`
}

// List godoc
// @Summary List all users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Envelope
// @Failure 403 {object} Envelope
// @Router /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respondList(c, http.StatusOK, len(users), users)
}

// Get godoc
// @Summary Get a user by id
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} Envelope
// @Failure 403 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	ident, err := CurrentIdentity(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.Validation("invalid user id")
	}

	user, err := h.userService.Get(c.Request().Context(), ident, id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", user)
}

// Update godoc
// @Summary Update a user profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body UpdateUserRequest true "Fields to update"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 403 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	ident, err := CurrentIdentity(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.Validation("invalid user id")
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return errors.Validation("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userService.Update(c.Request().Context(), ident, id, service.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		Role:     req.Role,
		IsActive: req.IsActive,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "user updated successfully", user)
}

// Delete godoc
// @Summary Delete a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} Envelope
// @Failure 403 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.Validation("invalid user id")
	}

	if err := h.userService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "user deleted successfully", nil)
}

// Profile godoc
// @Summary Get the current user's profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Envelope
// @Router /users/profile/me [get]
func (h *UserHandler) Profile(c echo.Context) error {
	ident, err := CurrentIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.userService.Get(c.Request().Context(), ident, ident.UserID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", user)
}
