package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"weddinginvite/internal/delivery/http/helpers"
	"weddinginvite/internal/domain"
)

// InvitationSuccessResponse is the success response envelope for GET /api/invite/{slug} (200).
type InvitationSuccessResponse struct {
	Data  *domain.Invitation `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// RSVPRequest is the request body for POST /api/invite/{slug}/rsvp.
// Response is free text; yes, no and maybe are the expected values.
type RSVPRequest struct {
	Name     string  `json:"name"`
	Email    *string `json:"email"`
	Response string  `json:"response"`
	Message  *string `json:"message"`
}

// Validate implements Validator.
func (req RSVPRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(req.Response) == "" {
		errs = append(errs, "response is required")
	}
	if email := optionalText(req.Email); email != nil && !helpers.ValidEmail(*email) {
		errs = append(errs, "email must be a valid email address")
	}
	return errs
}

// optionalText returns nil for a missing or blank value and the trimmed value otherwise.
func optionalText(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// RSVPSuccessResponse is the success response envelope for POST /api/invite/{slug}/rsvp (200).
type RSVPSuccessResponse struct {
	Data  *domain.RSVP      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// BlessingRequest is the request body for POST /api/invite/{slug}/blessings.
type BlessingRequest struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// Validate implements Validator.
func (req BlessingRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(req.Message) == "" {
		errs = append(errs, "message is required")
	}
	if len(req.Message) > 1000 {
		errs = append(errs, "message must be at most 1000 characters")
	}
	return errs
}

// BlessingSuccessResponse is the success response envelope for POST /api/invite/{slug}/blessings (201).
type BlessingSuccessResponse struct {
	Data  *domain.Blessing  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// BlessingListSuccessResponse is the success response envelope for GET /api/invite/{slug}/blessings (200).
type BlessingListSuccessResponse struct {
	Data  []*domain.Blessing `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// InviteController serves the public invitation pages.
type InviteController struct {
	Logger  *slog.Logger
	Service domain.InvitationService
}

func NewInviteController(logger *slog.Logger, svc domain.InvitationService) *InviteController {
	return &InviteController{
		Logger:  logger,
		Service: svc,
	}
}

// GetInvitation godoc
// @Summary Get an invitation
// @Description Returns the client, ceremonies, photos (with public urls) and template for the invitation slug. Template is null when the client's template does not exist.
// @Tags invite
// @Produce json
// @Param slug path string true "Invitation slug"
// @Success 200 {object} controllers.InvitationSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /api/invite/{slug} [get]
func (c *InviteController) GetInvitation(w http.ResponseWriter, r *http.Request) {
	inv, err := c.Service.GetInvitation(r.Context(), r.PathValue("slug"))
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, inv)
}

// SubmitRSVP godoc
// @Summary Reply to an invitation
// @Description Records a guest's reply. The same guest may reply more than once.
// @Tags invite
// @Accept json
// @Produce json
// @Param slug path string true "Invitation slug"
// @Param body body RSVPRequest true "Reply"
// @Success 200 {object} controllers.RSVPSuccessResponse "data contains the recorded reply"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /api/invite/{slug}/rsvp [post]
func (c *InviteController) SubmitRSVP(w http.ResponseWriter, r *http.Request) {
	var req RSVPRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	rsvp := &domain.RSVP{
		Name:     req.Name,
		Email:    optionalText(req.Email),
		Response: req.Response,
		Message:  optionalText(req.Message),
	}
	if err := c.Service.SubmitRSVP(r.Context(), r.PathValue("slug"), rsvp); err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, rsvp)
}

// ListBlessings godoc
// @Summary List blessings
// @Description Returns the messages guests left on the invitation, newest first.
// @Tags invite
// @Produce json
// @Param slug path string true "Invitation slug"
// @Success 200 {object} controllers.BlessingListSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /api/invite/{slug}/blessings [get]
func (c *InviteController) ListBlessings(w http.ResponseWriter, r *http.Request) {
	blessings, err := c.Service.ListBlessings(r.Context(), r.PathValue("slug"))
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, blessings)
}

// PostBlessing godoc
// @Summary Leave a blessing
// @Tags invite
// @Accept json
// @Produce json
// @Param slug path string true "Invitation slug"
// @Param body body BlessingRequest true "Blessing"
// @Success 201 {object} controllers.BlessingSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /api/invite/{slug}/blessings [post]
func (c *InviteController) PostBlessing(w http.ResponseWriter, r *http.Request) {
	var req BlessingRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	b := &domain.Blessing{Name: req.Name, Message: req.Message}
	if err := c.Service.PostBlessing(r.Context(), r.PathValue("slug"), b); err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, b)
}
