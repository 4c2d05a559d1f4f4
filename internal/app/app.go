package app

import (
	"context"
	stdhttp "net/http"

	"github.com/rs/zerolog"

	"github.com/vovakirdan/trc-server/internal/config"
	"github.com/vovakirdan/trc-server/internal/core"
	transporthttp "github.com/vovakirdan/trc-server/internal/transport/http"
	transporttcp "github.com/vovakirdan/trc-server/internal/transport/tcp"
)

// App wires together the hub and both transports.
type App struct {
	cfg        config.Config
	hub        *core.Hub
	tcpServer  *transporttcp.Server
	httpServer *stdhttp.Server
	log        *zerolog.Logger
}

// New constructs the application with provided configuration.
func New(cfg config.Config, logger *zerolog.Logger) *App {
	hub := core.NewHub(logger)
	return &App{
		cfg:        cfg,
		hub:        hub,
		tcpServer:  transporttcp.New(cfg, hub, logger),
		httpServer: transporthttp.NewServer(hub, cfg, logger),
		log:        logger,
	}
}

// Run starts both listeners and blocks until context cancellation or a
// fatal server error.
func (a *App) Run(ctx context.Context) error {
	tcpCtx, cancelTCP := context.WithCancel(ctx)
	defer cancelTCP()

	serverErr := make(chan error, 2)
	go func() {
		serverErr <- a.tcpServer.Serve(tcpCtx)
	}()
	go func() {
		if err := a.httpServer.ListenAndServe(); err != nil && err != stdhttp.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	a.log.Info().
		Str("tcp_addr", a.cfg.TCPAddr).
		Str("http_addr", a.cfg.HTTPAddr).
		Msg("server started")

	select {
	case err := <-serverErr:
		cancelTCP()
		a.shutdownHTTP()
		<-serverErr
		return err
	case <-ctx.Done():
		a.log.Info().Msg("shutting down")
		shutdownErr := a.shutdownHTTP()
		first, second := <-serverErr, <-serverErr
		for _, err := range []error{shutdownErr, first, second} {
			if err != nil {
				return err
			}
		}
		return nil
	}
}

func (a *App) shutdownHTTP() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.log.Warn().Err(err).Msg("http shutdown")
		return err
	}
	return nil
}
