package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"hostelms/internal/errors"
	"hostelms/internal/service"
)

// ReportHandler handles report endpoints. Every route is admin-only; the
// role check happens in the router middleware.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new report handler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// CreateReportRequest represents a report creation request.
type CreateReportRequest struct {
	ReportType  string                 `json:"reportType"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	HostelID    *uuid.UUID             `json:"hostelId"`
	Data        map[string]interface{} `json:"data"`
}

// Create godoc
// @Summary Create a report
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateReportRequest true "Report data"
// @Success 201 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 403 {object} Envelope
// @Router /reports [post]
func (h *ReportHandler) Create(c echo.Context) error {
	ident, err := CurrentIdentity(c)
	if err != nil {
		return err
	}

	var req CreateReportRequest
	if err := c.Bind(&req); err != nil {
		return errors.Validation("invalid request body")
	}

	report, err := h.reportService.Create(c.Request().Context(), ident.UserID, service.CreateReportInput{
		ReportType:  req.ReportType,
		Title:       req.Title,
		Description: req.Description,
		HostelID:    req.HostelID,
		Data:        req.Data,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "report created successfully", report)
}

// List godoc
// @Summary List all reports
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Envelope
// @Failure 403 {object} Envelope
// @Router /reports [get]
func (h *ReportHandler) List(c echo.Context) error {
	reports, err := h.reportService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respondList(c, http.StatusOK, len(reports), reports)
}

// Get godoc
// @Summary Get a report by id
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 200 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /reports/{id} [get]
func (h *ReportHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.Validation("invalid report id")
	}

	report, err := h.reportService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", report)
}

// Delete godoc
// @Summary Delete a report
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 200 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /reports/{id} [delete]
func (h *ReportHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.Validation("invalid report id")
	}

	if err := h.reportService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "report deleted successfully", nil)
}

// DashboardStats godoc
// @Summary Get dashboard statistics
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Envelope
// @Failure 403 {object} Envelope
// @Router /reports/dashboard/stats [get]
func (h *ReportHandler) DashboardStats(c echo.Context) error {
	stats, err := h.reportService.DashboardStats(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", stats)
}
