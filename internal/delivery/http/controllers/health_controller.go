package controllers

import (
	"encoding/json"
	"net/http"
)

// HealthResponse is the body of GET /.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

// Health godoc
// @Summary Health check
// @Description Reports that the API is up. The body is not wrapped in the response envelope.
// @Tags health
// @Produce json
// @Success 200 {object} controllers.HealthResponse
// @Router / [get]
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(HealthResponse{Status: "ok", Message: "Wedding API is running"})
}
