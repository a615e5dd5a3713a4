package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"weddinginvite/internal/delivery/http/helpers"
	"weddinginvite/internal/domain"
)

// UpdateSettingsRequest is the request body for PUT /api/admin/settings.
// Every field is replaced; omitted fields are cleared.
type UpdateSettingsRequest struct {
	CompanyName    string `json:"company_name"`
	CompanyPhone   string `json:"company_phone"`
	CompanyEmail   string `json:"company_email"`
	CompanyWebsite string `json:"company_website"`
	CompanyAddress string `json:"company_address"`
}

// Validate implements Validator.
func (req UpdateSettingsRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(req.CompanyName) == "" {
		errs = append(errs, "company_name is required")
	}
	if strings.TrimSpace(req.CompanyEmail) != "" && !helpers.ValidEmail(req.CompanyEmail) {
		errs = append(errs, "company_email must be a valid email address")
	}
	return errs
}

// SettingsSuccessResponse is the success response envelope for the settings endpoints.
type SettingsSuccessResponse struct {
	Data  *domain.Settings  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// SettingsController serves the company settings shown in invitation footers.
type SettingsController struct {
	Logger  *slog.Logger
	Service domain.SettingsService
}

func NewSettingsController(logger *slog.Logger, svc domain.SettingsService) *SettingsController {
	return &SettingsController{
		Logger:  logger,
		Service: svc,
	}
}

// GetSettings godoc
// @Summary Get company settings
// @Description Returns the company details for invitation footers. Defaults are returned until settings are saved.
// @Tags settings
// @Produce json
// @Success 200 {object} controllers.SettingsSuccessResponse
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /api/settings [get]
// @Router /api/admin/settings [get]
func (c *SettingsController) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := c.Service.Get(r.Context())
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, settings)
}

// UpdateSettings godoc
// @Summary Save company settings
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body UpdateSettingsRequest true "Company settings"
// @Success 200 {object} controllers.SettingsSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /api/admin/settings [put]
func (c *SettingsController) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req UpdateSettingsRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	settings, err := c.Service.Update(r.Context(), &domain.Settings{
		CompanyName:    req.CompanyName,
		CompanyPhone:   req.CompanyPhone,
		CompanyEmail:   req.CompanyEmail,
		CompanyWebsite: req.CompanyWebsite,
		CompanyAddress: req.CompanyAddress,
	})
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, settings)
}
