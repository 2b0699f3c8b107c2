package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hostelms/internal/errors"
	"hostelms/internal/service"
)

// SettingHandler handles setting endpoints.
type SettingHandler struct {
	settingService service.SettingService
}

// NewSettingHandler creates a new setting handler.
func NewSettingHandler(settingService service.SettingService) *SettingHandler {
	return &SettingHandler{settingService: settingService}
}

// UpsertSettingRequest represents a setting write. The value is a variant
// validated against the declared data type.
type UpsertSettingRequest struct {
	SettingValue interface{} `json:"settingValue"`
	Description  *string     `json:"description"`
	DataType     *string     `json:"dataType"`
}

// List godoc
// @Summary List all settings
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Envelope
// @Router /settings [get]
func (h *SettingHandler) List(c echo.Context) error {
	settings, err := h.settingService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respondList(c, http.StatusOK, len(settings), settings)
}

// Get godoc
// @Summary Get a setting by key
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Param key path string true "Setting key"
// @Success 200 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /settings/{key} [get]
func (h *SettingHandler) Get(c echo.Context) error {
	setting, err := h.settingService.GetByKey(c.Request().Context(), c.Param("key"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", setting)
}

// Upsert godoc
// @Summary Create or update a setting
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param key path string true "Setting key"
// @Param request body UpsertSettingRequest true "Setting data"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 403 {object} Envelope
// @Router /settings/{key} [put]
func (h *SettingHandler) Upsert(c echo.Context) error {
	var req UpsertSettingRequest
	if err := c.Bind(&req); err != nil {
		return errors.Validation("invalid request body")
	}

	setting, err := h.settingService.UpsertByKey(c.Request().Context(), c.Param("key"), service.UpsertSettingInput{
		Value:       req.SettingValue,
		Description: req.Description,
		DataType:    req.DataType,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "setting updated successfully", setting)
}

// Delete godoc
// @Summary Delete a setting
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Param key path string true "Setting key"
// @Success 200 {object} Envelope
// @Failure 403 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /settings/{key} [delete]
func (h *SettingHandler) Delete(c echo.Context) error {
	if err := h.settingService.DeleteByKey(c.Request().Context(), c.Param("key")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "setting deleted successfully", nil)
}
