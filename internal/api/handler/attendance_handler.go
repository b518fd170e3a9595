package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/peopleops/hr-system/internal/core/domain"
	"github.com/peopleops/hr-system/internal/core/ports"
)

// AttendanceHandler handles admin-side attendance tracking.
type AttendanceHandler struct {
	service ports.AttendanceService
}

func NewAttendanceHandler(service ports.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{service: service}
}

type attendanceRequest struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	Status     string `json:"status" validate:"required,oneof=Present Remote Absent"`
}

// List returns all attendance entries.
//
// @Summary      List attendance
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.AttendanceEntry
// @Router       /attendance [get]
func (h *AttendanceHandler) List(c echo.Context) error {
	entries, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []*domain.AttendanceEntry{}
	}
	return c.JSON(http.StatusOK, entries)
}

// Create adds an attendance entry.
//
// @Summary      Create attendance entry
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      attendanceRequest  true  "Attendance entry"
// @Success      201   {object}  domain.AttendanceEntry
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /attendance [post]
func (h *AttendanceHandler) Create(c echo.Context) error {
	var req attendanceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entry, err := h.service.Create(c.Request().Context(), ports.AttendanceInput{
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		Status:     req.Status,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, entry)
}

// Update patches an attendance entry identified by the id query parameter.
//
// @Summary      Update attendance entry
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    query     string             true  "Entry id"
// @Param        body  body      attendanceRequest  true  "Updated entry"
// @Success      200   {object}  domain.AttendanceEntry
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /attendance [put]
func (h *AttendanceHandler) Update(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "id is required")
	}

	var req attendanceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entry, err := h.service.Update(c.Request().Context(), id, ports.AttendanceInput{
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		Status:     req.Status,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, entry)
}

// Delete removes an attendance entry.
//
// @Summary      Delete attendance entry
// @Tags         attendance
// @Security     BearerAuth
// @Param        id  query  string  true  "Entry id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /attendance [delete]
func (h *AttendanceHandler) Delete(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "id is required")
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
