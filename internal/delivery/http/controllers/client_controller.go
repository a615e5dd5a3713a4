package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"weddinginvite/internal/delivery/http/helpers"
	"weddinginvite/internal/delivery/http/middleware"
	"weddinginvite/internal/domain"
)

// CreateClientRequest is the request body for POST /api/admin/clients.
// Slug is optional; when empty it is derived from couple_name.
type CreateClientRequest struct {
	CoupleName   string `json:"couple_name"`
	ContactEmail string `json:"contact_email"`
	Slug         string `json:"slug"`
	TemplateID   string `json:"template_id"`
}

// Validate implements Validator.
func (req CreateClientRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(req.CoupleName) == "" {
		errs = append(errs, "couple_name is required")
	}
	if !helpers.ValidEmail(req.ContactEmail) {
		errs = append(errs, "contact_email must be a valid email address")
	}
	if strings.TrimSpace(req.TemplateID) == "" {
		errs = append(errs, "template_id is required")
	}
	return errs
}

// UpdateClientRequest is the request body for PATCH /api/admin/clients/{id}.
// Omitted fields are unchanged. The slug cannot be changed.
type UpdateClientRequest struct {
	CoupleName   *string `json:"couple_name"`
	ContactEmail *string `json:"contact_email"`
	TemplateID   *string `json:"template_id"`
}

// Validate implements Validator.
func (req UpdateClientRequest) Validate() []string {
	var errs []string
	if req.CoupleName != nil && strings.TrimSpace(*req.CoupleName) == "" {
		errs = append(errs, "couple_name must not be empty")
	}
	if req.ContactEmail != nil && !helpers.ValidEmail(*req.ContactEmail) {
		errs = append(errs, "contact_email must be a valid email address")
	}
	if req.TemplateID != nil && strings.TrimSpace(*req.TemplateID) == "" {
		errs = append(errs, "template_id must not be empty")
	}
	return errs
}

// ClientSuccessResponse is the success response envelope for single-client endpoints.
type ClientSuccessResponse struct {
	Data  *domain.Client    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListClientsSuccessResponse is the success response envelope for GET /api/admin/clients (200).
type ListClientsSuccessResponse struct {
	Data  []*domain.Client  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ClientController serves admin operations on clients.
type ClientController struct {
	Logger  *slog.Logger
	Service domain.ClientService
}

func NewClientController(logger *slog.Logger, svc domain.ClientService) *ClientController {
	return &ClientController{
		Logger:  logger,
		Service: svc,
	}
}

// ListClients godoc
// @Summary List clients
// @Description Returns clients, newest first. Without page and page_size every client is returned. X-Total-Count holds the number of clients.
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1 when page_size is set)"
// @Param page_size query int false "Page size (default 50 when page is set, max 200)"
// @Success 200 {object} controllers.ListClientsSuccessResponse
// @Header 200 {integer} X-Total-Count "Number of clients"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /api/admin/clients [get]
func (c *ClientController) ListClients(w http.ResponseWriter, r *http.Request) {
	p, ok := helpers.ParsePagination(w, r)
	if !ok {
		return
	}
	clients, total, err := c.Service.List(r.Context(), p)
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	helpers.SetTotalCount(w, total)
	helpers.WriteJSONSuccess(w, http.StatusOK, clients)
}

// CreateClient godoc
// @Summary Create a client
// @Description Creates a client. When the requested slug is taken a 4-character hex suffix is appended; the response holds the slug actually assigned.
// @Tags clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateClientRequest true "Client"
// @Success 201 {object} controllers.ClientSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /api/admin/clients [post]
func (c *ClientController) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req CreateClientRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	client := &domain.Client{
		CoupleName:   strings.TrimSpace(req.CoupleName),
		ContactEmail: req.ContactEmail,
		Slug:         req.Slug,
		TemplateID:   strings.TrimSpace(req.TemplateID),
	}
	if err := c.Service.Create(r.Context(), client); err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	if p, ok := middleware.PrincipalFromContext(r.Context()); ok {
		c.Logger.InfoContext(r.Context(), "client created", "client_id", client.ID, "slug", client.Slug, "admin", p.UserID)
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, client)
}

// GetClient godoc
// @Summary Get a client
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID (UUID)"
// @Success 200 {object} controllers.ClientSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /api/admin/clients/{id} [get]
func (c *ClientController) GetClient(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathUUID(w, r, "id")
	if !ok {
		return
	}
	client, err := c.Service.Get(r.Context(), id)
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, client)
}

// UpdateClient godoc
// @Summary Update a client
// @Description Updates couple_name, contact_email and template_id. Omitted fields are unchanged.
// @Tags clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID (UUID)"
// @Param body body UpdateClientRequest true "Fields to update (all optional)"
// @Success 200 {object} controllers.ClientSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /api/admin/clients/{id} [patch]
func (c *ClientController) UpdateClient(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathUUID(w, r, "id")
	if !ok {
		return
	}
	var req UpdateClientRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	client, err := c.Service.Update(r.Context(), id, domain.ClientUpdate{
		CoupleName:   req.CoupleName,
		ContactEmail: req.ContactEmail,
		TemplateID:   req.TemplateID,
	})
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, client)
}
