package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/peopleops/hr-system/internal/api/metrics"
	"github.com/peopleops/hr-system/internal/core/domain"
	"github.com/peopleops/hr-system/internal/core/ports"
)

// PortalHandler serves the employee self-service surface. Every route is
// scoped to the employee identity carried by the token; an employee can never
// address another employee's data.
type PortalHandler struct {
	employees  ports.EmployeeService
	attendance ports.AttendanceService
	leave      ports.LeaveService
}

func NewPortalHandler(employees ports.EmployeeService, attendance ports.AttendanceService, leave ports.LeaveService) *PortalHandler {
	return &PortalHandler{employees: employees, attendance: attendance, leave: leave}
}

type applyLeaveRequest struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Reason    string `json:"reason" validate:"required"`
}

// Me returns the caller's own employee record.
//
// @Summary      My profile
// @Tags         portal
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Employee
// @Failure      404  {object}  map[string]string
// @Router       /employee/me [get]
func (h *PortalHandler) Me(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	employee, err := h.employees.Get(c.Request().Context(), claims.EmployeeID)
	if err != nil {
		return err
	}

	metrics.PortalReadsTotal.WithLabelValues("profile").Inc()
	return c.JSON(http.StatusOK, employee)
}

// Attendance returns the caller's own attendance entries.
//
// @Summary      My attendance
// @Tags         portal
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.AttendanceEntry
// @Router       /employee/attendance [get]
func (h *PortalHandler) Attendance(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	entries, err := h.attendance.ListForEmployee(c.Request().Context(), claims.EmployeeID)
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []*domain.AttendanceEntry{}
	}
	return c.JSON(http.StatusOK, entries)
}

// Leave returns the caller's own leave requests.
//
// @Summary      My leave requests
// @Tags         portal
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.LeaveRequest
// @Router       /employee/leave [get]
func (h *PortalHandler) Leave(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	requests, err := h.leave.ListForEmployee(c.Request().Context(), claims.EmployeeID)
	if err != nil {
		return err
	}
	if requests == nil {
		requests = []*domain.LeaveRequest{}
	}
	return c.JSON(http.StatusOK, requests)
}

// ApplyLeave files a new leave request for the caller.
//
// @Summary      Apply for leave
// @Tags         portal
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      applyLeaveRequest  true  "Leave application"
// @Success      201   {object}  domain.LeaveRequest
// @Failure      400   {object}  map[string]string
// @Router       /employee/leave [post]
func (h *PortalHandler) ApplyLeave(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req applyLeaveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	request, err := h.leave.Apply(c.Request().Context(), claims.EmployeeID, ports.ApplyLeaveInput{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, request)
}

// CancelLeave withdraws the caller's own pending leave request.
//
// @Summary      Cancel a pending leave request
// @Tags         portal
// @Security     BearerAuth
// @Param        id  query  string  true  "Request id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /employee/leave [delete]
func (h *PortalHandler) CancelLeave(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	id := c.QueryParam("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "id is required")
	}

	if err := h.leave.Cancel(c.Request().Context(), claims.EmployeeID, id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
