package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"hostelms/internal/errors"
	"hostelms/internal/service"
)

// HostelHandler handles hostel endpoints.
type HostelHandler struct {
	hostelService service.HostelService
}

// NewHostelHandler creates a new hostel handler.
func NewHostelHandler(hostelService service.HostelService) *HostelHandler {
	return &HostelHandler{hostelService: hostelService}
}

// CreateHostelRequest represents a hostel creation request.
type CreateHostelRequest struct {
	HostelName     string          `json:"hostelName"`
	Address        string          `json:"address"`
	City           string          `json:"city"`
	State          string          `json:"state"`
	Pincode        string          `json:"pincode"`
	TotalRooms     int             `json:"totalRooms"`
	AvailableRooms *int            `json:"availableRooms"`
	CostPerBed     decimal.Decimal `json:"costPerBed"`
	Description    string          `json:"description"`
	Facilities     []string        `json:"facilities"`
}

// UpdateHostelRequest represents a partial hostel update.
type UpdateHostelRequest struct {
	HostelName     *string          `json:"hostelName"`
	Address        *string          `json:"address"`
	City           *string          `json:"city"`
	State          *string          `json:"state"`
	Pincode        *string          `json:"pincode"`
	TotalRooms     *int             `json:"totalRooms"`
	AvailableRooms *int             `json:"availableRooms"`
	CostPerBed     *decimal.Decimal `json:"costPerBed"`
	Description    *string          `json:"description"`
	Facilities     []string         `json:"facilities"`
}

// Create godoc
// @Summary Create a hostel
// @Description The authenticated caller becomes the hostel owner.
// @Tags hostels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateHostelRequest true "Hostel data"
// @Success 201 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 401 {object} Envelope
// @Router /hostel [post]
func (h *HostelHandler) Create(c echo.Context) error {
	ident, err := CurrentIdentity(c)
	if err != nil {
		return err
	}

	var req CreateHostelRequest
	if err := c.Bind(&req); err != nil {
		return errors.Validation("invalid request body")
	}

	hostel, err := h.hostelService.Create(c.Request().Context(), ident.UserID, service.CreateHostelInput{
		HostelName:     req.HostelName,
		Address:        req.Address,
		City:           req.City,
		State:          req.State,
		Pincode:        req.Pincode,
		TotalRooms:     req.TotalRooms,
		AvailableRooms: req.AvailableRooms,
		CostPerBed:     req.CostPerBed,
		Description:    req.Description,
		Facilities:     req.Facilities,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "hostel created successfully", hostel)
}

// List godoc
// @Summary List all hostels
// @Tags hostels
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Envelope
// @Router /hostel [get]
func (h *HostelHandler) List(c echo.Context) error {
	hostels, err := h.hostelService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respondList(c, http.StatusOK, len(hostels), hostels)
}

// Get godoc
// @Summary Get a hostel by id
// @Tags hostels
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hostel ID"
// @Success 200 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /hostel/{id} [get]
func (h *HostelHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.Validation("invalid hostel id")
	}

	hostel, err := h.hostelService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", hostel)
}

// Update godoc
// @Summary Update a hostel
// @Description Allowed for the hostel owner or an admin.
// @Tags hostels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hostel ID"
// @Param request body UpdateHostelRequest true "Fields to update"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 403 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /hostel/{id} [put]
func (h *HostelHandler) Update(c echo.Context) error {
	ident, err := CurrentIdentity(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.Validation("invalid hostel id")
	}

	var req UpdateHostelRequest
	if err := c.Bind(&req); err != nil {
		return errors.Validation("invalid request body")
	}

	hostel, err := h.hostelService.Update(c.Request().Context(), ident, id, service.UpdateHostelInput{
		HostelName:     req.HostelName,
		Address:        req.Address,
		City:           req.City,
		State:          req.State,
		Pincode:        req.Pincode,
		TotalRooms:     req.TotalRooms,
		AvailableRooms: req.AvailableRooms,
		CostPerBed:     req.CostPerBed,
		Description:    req.Description,
		Facilities:     req.Facilities,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "hostel updated successfully", hostel)
}

// Delete godoc
// @Summary Delete a hostel
// @Description Allowed for the hostel owner or an admin.
// @Tags hostels
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hostel ID"
// @Success 200 {object} Envelope
// @Failure 403 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /hostel/{id} [delete]
func (h *HostelHandler) Delete(c echo.Context) error {
	ident, err := CurrentIdentity(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.Validation("invalid hostel id")
	}

	if err := h.hostelService.Delete(c.Request().Context(), ident, id); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "hostel deleted successfully", nil)
}
