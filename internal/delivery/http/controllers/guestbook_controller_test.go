package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weddinginvite/internal/delivery/http/helpers"
	"weddinginvite/internal/domain"
)

func TestGuestbookController_ListRSVPs(t *testing.T) {
	svc := &fakeGuestbookService{rsvps: []*domain.RSVP{{ID: "r1", Name: "John Doe", Response: "yes"}}}
	c := NewGuestbookController(testLogger, svc)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/clients/"+testClientID+"/rsvps?page_size=5", nil)
	rr := serve("GET /api/admin/clients/{id}/rsvps", c.ListRSVPs, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, domain.PaginationParams{Page: 1, PageSize: 5}, svc.lastParams)
	assert.Equal(t, "1", rr.Header().Get(helpers.TotalCountHeader))
	var got []*domain.RSVP
	require.NoError(t, json.Unmarshal(decode(t, rr).Data, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "John Doe", got[0].Name)

	req = httptest.NewRequest(http.MethodGet, "/api/admin/clients/"+testClientID+"/rsvps", nil)
	rr = serve("GET /api/admin/clients/{id}/rsvps", c.ListRSVPs, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, -1, svc.lastParams.Limit())
}

func TestGuestbookController_ListTemplates(t *testing.T) {
	svc := &fakeGuestbookService{templates: []*domain.Template{{ID: "elegant", Name: "Elegant", Config: map[string]any{"font": "serif"}}}}
	c := NewGuestbookController(testLogger, svc)

	rr := serve("GET /api/admin/templates", c.ListTemplates, httptest.NewRequest(http.MethodGet, "/api/admin/templates", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"id":"elegant","name":"Elegant","slug":"","config":{"font":"serif"}}]`, string(decode(t, rr).Data))

	svc.err = domain.Upstream("list templates", errors.New("malformed config"))
	rr = serve("GET /api/admin/templates", c.ListTemplates, httptest.NewRequest(http.MethodGet, "/api/admin/templates", nil))
	assert.Equal(t, http.StatusBadGateway, rr.Code)
}
