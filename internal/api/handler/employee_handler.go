package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/peopleops/hr-system/internal/core/domain"
	"github.com/peopleops/hr-system/internal/core/ports"
)

// EmployeeHandler handles admin-side employee management.
type EmployeeHandler struct {
	service ports.EmployeeService
}

func NewEmployeeHandler(service ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

type permissionsRequest struct {
	AttendanceView bool `json:"attendance_view"`
	LeaveApply     bool `json:"leave_apply"`
	ProfileView    bool `json:"profile_view"`
}

func (p permissionsRequest) domain() domain.Permissions {
	return domain.Permissions{
		AttendanceView: p.AttendanceView,
		LeaveApply:     p.LeaveApply,
		ProfileView:    p.ProfileView,
	}
}

type createEmployeeRequest struct {
	Name        string             `json:"name" validate:"required"`
	Email       string             `json:"email" validate:"required,email"`
	Role        string             `json:"role" validate:"required"`
	Department  string             `json:"department" validate:"required"`
	Status      string             `json:"status" validate:"omitempty,oneof=Active Onboarding Inactive"`
	Username    string             `json:"username" validate:"required"`
	Password    string             `json:"password" validate:"required,min=6"`
	Permissions permissionsRequest `json:"permissions"`
}

type updateEmployeeRequest struct {
	Name        string             `json:"name" validate:"required"`
	Email       string             `json:"email" validate:"required,email"`
	Role        string             `json:"role" validate:"required"`
	Department  string             `json:"department" validate:"required"`
	Status      string             `json:"status" validate:"required,oneof=Active Onboarding Inactive"`
	Permissions permissionsRequest `json:"permissions"`
}

// List returns all employee records.
//
// @Summary      List employees
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Employee
// @Router       /employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	employees, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if employees == nil {
		employees = []*domain.Employee{}
	}
	return c.JSON(http.StatusOK, employees)
}

// Create onboards a new employee and provisions their portal account.
//
// @Summary      Create employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createEmployeeRequest  true  "Employee record and portal credentials"
// @Success      201   {object}  domain.Employee
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /employees [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req createEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	employee, err := h.service.Create(c.Request().Context(), ports.CreateEmployeeInput{
		Name:        req.Name,
		Email:       req.Email,
		JobTitle:    req.Role,
		Department:  req.Department,
		Status:      req.Status,
		Username:    req.Username,
		Password:    req.Password,
		Permissions: req.Permissions.domain(),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, employee)
}

// Update patches an employee record identified by the id query parameter.
//
// @Summary      Update employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    query     string                 true  "Employee id"
// @Param        body  body      updateEmployeeRequest  true  "Updated record"
// @Success      200   {object}  domain.Employee
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /employees [put]
func (h *EmployeeHandler) Update(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "id is required")
	}

	var req updateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	employee, err := h.service.Update(c.Request().Context(), ports.UpdateEmployeeInput{
		ID:          id,
		Name:        req.Name,
		Email:       req.Email,
		JobTitle:    req.Role,
		Department:  req.Department,
		Status:      req.Status,
		Permissions: req.Permissions.domain(),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, employee)
}

// Delete removes an employee record and its portal account.
//
// @Summary      Delete employee
// @Tags         employees
// @Security     BearerAuth
// @Param        id  query  string  true  "Employee id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /employees [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "id is required")
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
