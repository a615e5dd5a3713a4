package controllers

import (
	"log/slog"
	"net/http"

	"weddinginvite/internal/delivery/http/helpers"
	"weddinginvite/internal/domain"
)

// ListRSVPsSuccessResponse is the success response envelope for GET /api/admin/clients/{id}/rsvps (200).
type ListRSVPsSuccessResponse struct {
	Data  []*domain.RSVP    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// TemplateListSuccessResponse is the success response envelope for GET /api/admin/templates (200).
type TemplateListSuccessResponse struct {
	Data  []*domain.Template `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// GuestbookController serves RSVP and template listings to admins.
type GuestbookController struct {
	Logger  *slog.Logger
	Service domain.GuestbookService
}

func NewGuestbookController(logger *slog.Logger, svc domain.GuestbookService) *GuestbookController {
	return &GuestbookController{
		Logger:  logger,
		Service: svc,
	}
}

// ListRSVPs godoc
// @Summary List a client's RSVPs
// @Description Returns the replies to the client's invitation, newest first. Without page and page_size every reply is returned.
// @Tags rsvps
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID (UUID)"
// @Param page query int false "Page number (default 1 when page_size is set)"
// @Param page_size query int false "Page size (default 50 when page is set, max 200)"
// @Success 200 {object} controllers.ListRSVPsSuccessResponse
// @Header 200 {integer} X-Total-Count "Number of replies"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /api/admin/clients/{id}/rsvps [get]
func (c *GuestbookController) ListRSVPs(w http.ResponseWriter, r *http.Request) {
	clientID, ok := helpers.PathUUID(w, r, "id")
	if !ok {
		return
	}
	p, ok := helpers.ParsePagination(w, r)
	if !ok {
		return
	}
	rsvps, total, err := c.Service.ListRSVPs(r.Context(), clientID, p)
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	helpers.SetTotalCount(w, total)
	helpers.WriteJSONSuccess(w, http.StatusOK, rsvps)
}

// ListTemplates godoc
// @Summary List invitation templates
// @Tags templates
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.TemplateListSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /api/admin/templates [get]
func (c *GuestbookController) ListTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := c.Service.ListTemplates(r.Context())
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, templates)
}
