package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/trc-server/internal/core"
)

// APIHandlers provides read-only HTTP handlers over hub state.
type APIHandlers struct {
	hub *core.Hub
	log *zerolog.Logger
}

// NewAPIHandlers creates a new API handlers instance.
func NewAPIHandlers(hub *core.Hub, logger *zerolog.Logger) *APIHandlers {
	return &APIHandlers{hub: hub, log: logger}
}

// StatsResponse represents the server stats response body.
type StatsResponse struct {
	Sessions int `json:"sessions"`
	Rooms    int `json:"rooms"`
}

// Health reports liveness.
// GET /healthz
func (h *APIHandlers) Health(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// Rooms returns the current room list with member counts. Counts may
// briefly include dead peers the broadcast path has not reaped yet.
// GET /api/rooms
func (h *APIHandlers) Rooms(c *gin.Context) {
	c.JSON(http.StatusOK, h.hub.Rooms())
}

// Stats returns logged-in session and room counts.
// GET /api/stats
func (h *APIHandlers) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, StatsResponse{
		Sessions: h.hub.SessionCount(),
		Rooms:    h.hub.RoomCount(),
	})
}
