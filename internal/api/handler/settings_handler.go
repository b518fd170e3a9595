package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/peopleops/hr-system/internal/core/domain"
	"github.com/peopleops/hr-system/internal/core/ports"
)

// SettingsHandler handles the company settings document.
type SettingsHandler struct {
	service ports.SettingsService
}

func NewSettingsHandler(service ports.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

type settingsRequest struct {
	CompanyName      string `json:"companyName"`
	Timezone         string `json:"timezone"`
	DefaultWorkHours string `json:"defaultWorkHours"`
}

// Get returns the company settings, zero-valued when never saved.
//
// @Summary      Get company settings
// @Tags         settings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.CompanySettings
// @Router       /settings [get]
func (h *SettingsHandler) Get(c echo.Context) error {
	settings, err := h.service.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}

// Update replaces the company settings document.
//
// @Summary      Update company settings
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      settingsRequest  true  "Settings"
// @Success      200   {object}  domain.CompanySettings
// @Failure      400   {object}  map[string]string
// @Router       /settings [put]
func (h *SettingsHandler) Update(c echo.Context) error {
	var req settingsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	settings, err := h.service.Update(c.Request().Context(), &domain.CompanySettings{
		CompanyName:      req.CompanyName,
		Timezone:         req.Timezone,
		DefaultWorkHours: req.DefaultWorkHours,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, settings)
}
