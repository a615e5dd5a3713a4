package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"weddinginvite/internal/delivery/http/helpers"
	"weddinginvite/internal/domain"
)

// CreateCeremonyRequest is the request body for POST /api/admin/clients/{id}/ceremonies.
// DateTime is RFC 3339.
type CreateCeremonyRequest struct {
	Title    string     `json:"title"`
	DateTime *time.Time `json:"date_time"`
	Venue    string     `json:"venue"`
	MapURL   *string    `json:"map_url"`
	Notes    *string    `json:"notes"`
}

// Validate implements Validator.
func (req CreateCeremonyRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(req.Title) == "" {
		errs = append(errs, "title is required")
	}
	if req.DateTime == nil || req.DateTime.IsZero() {
		errs = append(errs, "date_time is required")
	}
	if strings.TrimSpace(req.Venue) == "" {
		errs = append(errs, "venue is required")
	}
	return errs
}

// UpdateCeremonyRequest is the request body for PATCH /api/admin/clients/{id}/ceremonies/{ceremonyID}.
type UpdateCeremonyRequest struct {
	Title    *string    `json:"title"`
	DateTime *time.Time `json:"date_time"`
	Venue    *string    `json:"venue"`
	MapURL   *string    `json:"map_url"`
	Notes    *string    `json:"notes"`
}

// Validate implements Validator.
func (req UpdateCeremonyRequest) Validate() []string {
	var errs []string
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		errs = append(errs, "title must not be empty")
	}
	if req.Venue != nil && strings.TrimSpace(*req.Venue) == "" {
		errs = append(errs, "venue must not be empty")
	}
	return errs
}

// CeremonySuccessResponse is the success response envelope for single-ceremony endpoints.
type CeremonySuccessResponse struct {
	Data  *domain.Ceremony  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// CeremonyListSuccessResponse is the success response envelope for GET /api/admin/clients/{id}/ceremonies (200).
type CeremonyListSuccessResponse struct {
	Data  []*domain.Ceremony `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// CeremonyController serves admin operations on a client's ceremonies.
type CeremonyController struct {
	Logger  *slog.Logger
	Service domain.CeremonyService
}

func NewCeremonyController(logger *slog.Logger, svc domain.CeremonyService) *CeremonyController {
	return &CeremonyController{
		Logger:  logger,
		Service: svc,
	}
}

// AddCeremony godoc
// @Summary Add a ceremony
// @Tags ceremonies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID (UUID)"
// @Param body body CreateCeremonyRequest true "Ceremony"
// @Success 201 {object} controllers.CeremonySuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /api/admin/clients/{id}/ceremonies [post]
func (c *CeremonyController) AddCeremony(w http.ResponseWriter, r *http.Request) {
	clientID, ok := helpers.PathUUID(w, r, "id")
	if !ok {
		return
	}
	var req CreateCeremonyRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	ceremony := &domain.Ceremony{
		ClientID: clientID,
		Title:    req.Title,
		DateTime: *req.DateTime,
		Venue:    req.Venue,
		MapURL:   req.MapURL,
		Notes:    req.Notes,
	}
	if err := c.Service.Add(r.Context(), ceremony); err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, ceremony)
}

// ListCeremonies godoc
// @Summary List a client's ceremonies
// @Description Returns the ceremonies ordered by date_time.
// @Tags ceremonies
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID (UUID)"
// @Success 200 {object} controllers.CeremonyListSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /api/admin/clients/{id}/ceremonies [get]
func (c *CeremonyController) ListCeremonies(w http.ResponseWriter, r *http.Request) {
	clientID, ok := helpers.PathUUID(w, r, "id")
	if !ok {
		return
	}
	ceremonies, err := c.Service.List(r.Context(), clientID)
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ceremonies)
}

// UpdateCeremony godoc
// @Summary Update a ceremony
// @Tags ceremonies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID (UUID)"
// @Param ceremonyID path string true "Ceremony ID (UUID)"
// @Param body body UpdateCeremonyRequest true "Fields to update (all optional)"
// @Success 200 {object} controllers.CeremonySuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /api/admin/clients/{id}/ceremonies/{ceremonyID} [patch]
func (c *CeremonyController) UpdateCeremony(w http.ResponseWriter, r *http.Request) {
	clientID, ok := helpers.PathUUID(w, r, "id")
	if !ok {
		return
	}
	ceremonyID, ok := helpers.PathUUID(w, r, "ceremonyID")
	if !ok {
		return
	}
	var req UpdateCeremonyRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	ceremony, err := c.Service.Update(r.Context(), clientID, ceremonyID, domain.CeremonyUpdate{
		Title:    req.Title,
		DateTime: req.DateTime,
		Venue:    req.Venue,
		MapURL:   req.MapURL,
		Notes:    req.Notes,
	})
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ceremony)
}

// DeleteCeremony godoc
// @Summary Delete a ceremony
// @Tags ceremonies
// @Security BearerAuth
// @Param id path string true "Client ID (UUID)"
// @Param ceremonyID path string true "Ceremony ID (UUID)"
// @Success 204 "No Content"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /api/admin/clients/{id}/ceremonies/{ceremonyID} [delete]
func (c *CeremonyController) DeleteCeremony(w http.ResponseWriter, r *http.Request) {
	clientID, ok := helpers.PathUUID(w, r, "id")
	if !ok {
		return
	}
	ceremonyID, ok := helpers.PathUUID(w, r, "ceremonyID")
	if !ok {
		return
	}
	if err := c.Service.Delete(r.Context(), clientID, ceremonyID); err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
