// Package http serves the observability API and the websocket line
// bridge next to the raw TCP listener.
package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/trc-server/internal/config"
	"github.com/vovakirdan/trc-server/internal/core"
)

// NewServer builds the HTTP server with health, stats and /ws routes.
func NewServer(hub *core.Hub, cfg config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	api := NewAPIHandlers(hub, logger)
	router.GET("/healthz", api.Health)
	router.GET("/api/rooms", api.Rooms)
	router.GET("/api/stats", api.Stats)
	router.GET("/ws", gin.WrapH(NewWSHandler(hub, cfg, logger)))

	return &stdhttp.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}
