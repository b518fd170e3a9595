package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/peopleops/hr-system/internal/core/domain"
	"github.com/peopleops/hr-system/internal/core/ports"
)

// LeaveHandler handles admin-side leave management.
type LeaveHandler struct {
	service ports.LeaveService
}

func NewLeaveHandler(service ports.LeaveService) *LeaveHandler {
	return &LeaveHandler{service: service}
}

type leaveRequest struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	StartDate  string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate    string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Reason     string `json:"reason" validate:"required"`
	Status     string `json:"status" validate:"omitempty,oneof=Pending Approved Rejected"`
}

// List returns all leave requests.
//
// @Summary      List leave requests
// @Tags         leave
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.LeaveRequest
// @Router       /leave [get]
func (h *LeaveHandler) List(c echo.Context) error {
	requests, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if requests == nil {
		requests = []*domain.LeaveRequest{}
	}
	return c.JSON(http.StatusOK, requests)
}

// Create files a leave request on an employee's behalf.
//
// @Summary      Create leave request
// @Tags         leave
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      leaveRequest  true  "Leave request"
// @Success      201   {object}  domain.LeaveRequest
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /leave [post]
func (h *LeaveHandler) Create(c echo.Context) error {
	var req leaveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	request, err := h.service.Create(c.Request().Context(), ports.LeaveInput{
		EmployeeID: req.EmployeeID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Reason:     req.Reason,
		Status:     req.Status,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, request)
}

// Update patches a leave request identified by the id query parameter.
//
// @Summary      Update leave request
// @Tags         leave
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    query     string        true  "Request id"
// @Param        body  body      leaveRequest  true  "Updated request"
// @Success      200   {object}  domain.LeaveRequest
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /leave [put]
func (h *LeaveHandler) Update(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "id is required")
	}

	var req leaveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	request, err := h.service.Update(c.Request().Context(), id, ports.LeaveInput{
		EmployeeID: req.EmployeeID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Reason:     req.Reason,
		Status:     req.Status,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, request)
}

// Delete removes a leave request.
//
// @Summary      Delete leave request
// @Tags         leave
// @Security     BearerAuth
// @Param        id  query  string  true  "Request id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /leave [delete]
func (h *LeaveHandler) Delete(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "id is required")
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
