package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weddinginvite/internal/delivery/http/helpers"
	"weddinginvite/internal/delivery/http/middleware"
	"weddinginvite/internal/domain"
)

func TestClientController_CreateClient(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
		wantSlug   string
	}{
		{"created with slug", `{"couple_name":"Alice & Bob","contact_email":"alice@example.com","slug":"alice-bob","template_id":"elegant"}`, nil, http.StatusCreated, "alice-bob"},
		{"created without slug", `{"couple_name":"Alice & Bob","contact_email":"alice@example.com","template_id":"elegant"}`, nil, http.StatusCreated, "alice-bob"},
		{"invalid email", `{"couple_name":"Alice & Bob","contact_email":"alice","template_id":"elegant"}`, nil, http.StatusBadRequest, ""},
		{"missing couple name", `{"contact_email":"alice@example.com","template_id":"elegant"}`, nil, http.StatusBadRequest, ""},
		{"missing template", `{"couple_name":"Alice & Bob","contact_email":"alice@example.com"}`, nil, http.StatusBadRequest, ""},
		{"service validation", `{"couple_name":"&","contact_email":"alice@example.com","template_id":"elegant"}`, domain.Validation("slug must contain at least one letter or digit"), http.StatusBadRequest, ""},
		{"upstream failure", `{"couple_name":"Alice & Bob","contact_email":"alice@example.com","template_id":"elegant"}`, domain.Upstream("create client", errors.New("timeout")), http.StatusBadGateway, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeClientService{err: tt.svcErr}
			c := NewClientController(testLogger, svc)
			req := httptest.NewRequest(http.MethodPost, "/api/admin/clients", strings.NewReader(tt.body))
			req = req.WithContext(middleware.SetPrincipal(req.Context(), &domain.Principal{UserID: "admin-1"}))

			rr := serve("POST /api/admin/clients", c.CreateClient, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			env := decode(t, rr)
			if tt.wantSlug == "" {
				require.NotNil(t, env.Error)
				return
			}
			var got domain.Client
			require.NoError(t, json.Unmarshal(env.Data, &got))
			assert.Equal(t, tt.wantSlug, got.Slug)
			assert.Equal(t, testClientID, got.ID)
			assert.Equal(t, "Alice & Bob", svc.lastCreate.CoupleName)
		})
	}
}

func TestClientController_ListClients(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantParams domain.PaginationParams
	}{
		{"no parameters returns every client", "", http.StatusOK, domain.PaginationParams{}},
		{"page and size", "?page=2&page_size=10", http.StatusOK, domain.PaginationParams{Page: 2, PageSize: 10}},
		{"size only starts at page one", "?page_size=10", http.StatusOK, domain.PaginationParams{Page: 1, PageSize: 10}},
		{"malformed page", "?page=abc", http.StatusBadRequest, domain.PaginationParams{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clients := make([]*domain.Client, 25)
			for i := range clients {
				clients[i] = &domain.Client{ID: testClientID, Slug: "alice-bob"}
			}
			svc := &fakeClientService{clients: clients, total: len(clients)}
			c := NewClientController(testLogger, svc)

			rr := serve("GET /api/admin/clients", c.ListClients, httptest.NewRequest(http.MethodGet, "/api/admin/clients"+tt.query, nil))

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus != http.StatusOK {
				assert.Equal(t, "bad_request", decode(t, rr).Error.Code)
				return
			}
			assert.Equal(t, tt.wantParams, svc.lastParams)
			assert.Equal(t, "25", rr.Header().Get(helpers.TotalCountHeader))
			var got []*domain.Client
			require.NoError(t, json.Unmarshal(decode(t, rr).Data, &got))
			assert.Len(t, got, 25)
		})
	}
}

func TestClientController_GetClient(t *testing.T) {
	svc := &fakeClientService{}
	c := NewClientController(testLogger, svc)

	rr := serve("GET /api/admin/clients/{id}", c.GetClient, httptest.NewRequest(http.MethodGet, "/api/admin/clients/"+testClientID, nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, testClientID, svc.lastID)

	rr = serve("GET /api/admin/clients/{id}", c.GetClient, httptest.NewRequest(http.MethodGet, "/api/admin/clients/nope", nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	svc.err = domain.NotFound("Client not found")
	rr = serve("GET /api/admin/clients/{id}", c.GetClient, httptest.NewRequest(http.MethodGet, "/api/admin/clients/"+testClientID, nil))
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Client not found", decode(t, rr).Error.Message)
}

func TestClientController_UpdateClient(t *testing.T) {
	svc := &fakeClientService{}
	c := NewClientController(testLogger, svc)

	req := httptest.NewRequest(http.MethodPatch, "/api/admin/clients/"+testClientID, strings.NewReader(`{"template_id":"romantic"}`))
	rr := serve("PATCH /api/admin/clients/{id}", c.UpdateClient, req)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, svc.lastUpdate.TemplateID)
	assert.Equal(t, "romantic", *svc.lastUpdate.TemplateID)
	assert.Nil(t, svc.lastUpdate.CoupleName)

	req = httptest.NewRequest(http.MethodPatch, "/api/admin/clients/"+testClientID, strings.NewReader(`{"slug":"new-slug"}`))
	rr = serve("PATCH /api/admin/clients/{id}", c.UpdateClient, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	req = httptest.NewRequest(http.MethodPatch, "/api/admin/clients/"+testClientID, strings.NewReader(`{"contact_email":"bad"}`))
	rr = serve("PATCH /api/admin/clients/{id}", c.UpdateClient, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
