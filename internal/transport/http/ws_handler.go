package http

import (
	"context"
	"errors"
	"io"
	stdhttp "net/http"

	"github.com/coder/websocket"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/trc-server/internal/config"
	"github.com/vovakirdan/trc-server/internal/core"
)

// WSHandler upgrades HTTP connections and bridges them to a core
// session. The bridge is transparent: one inbound text frame is one
// protocol line, and outgoing bytes (prompt and erase sequences
// included) are forwarded as text frames.
type WSHandler struct {
	hub       *core.Hub
	queueSize int
	log       *zerolog.Logger
}

// NewWSHandler builds a new WebSocket handler.
func NewWSHandler(hub *core.Hub, cfg config.Config, logger *zerolog.Logger) stdhttp.Handler {
	return &WSHandler{hub: hub, queueSize: cfg.SendQueueSize, log: logger}
}

func (h *WSHandler) ServeHTTP(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	ctx := r.Context()

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("ws accept error")
		return
	}
	defer conn.Close(websocket.StatusInternalError, "internal error")

	sess := core.NewSession(h.queueSize)
	h.hub.Register(sess)
	defer h.hub.Disconnect(sess)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 2)
	go func() {
		errCh <- h.readLoop(ctx, conn, sess)
	}()
	go func() {
		errCh <- h.writeLoop(ctx, conn, sess)
	}()

	err = <-errCh
	cancel() // stop the other goroutine
	<-errCh

	status := websocket.StatusNormalClosure
	reason := "closing"
	if err != nil && !errors.Is(err, context.Canceled) {
		if errors.Is(err, io.EOF) {
			err = nil
		}
		if s := websocket.CloseStatus(err); s != 0 {
			status = s
		}
		if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
			err = nil
		}
		if err != nil {
			if status == websocket.StatusNormalClosure {
				status = websocket.StatusInternalError
			}
			reason = err.Error()
			h.log.Warn().Err(err).Str("session_id", sess.ID).Msg("ws connection closed with error")
		}
	}

	conn.Close(status, reason)
}

func (h *WSHandler) readLoop(ctx context.Context, conn *websocket.Conn, sess *core.Session) error {
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return err
		}
		h.hub.HandleLine(sess, string(data))
		if sess.Closed() {
			return nil
		}
	}
}

func (h *WSHandler) writeLoop(ctx context.Context, conn *websocket.Conn, sess *core.Session) error {
	for {
		select {
		case payload := <-sess.Outgoing():
			if err := conn.Write(ctx, websocket.MessageText, payload); err != nil {
				h.log.Error().Err(err).Str("session_id", sess.ID).Msg("write ws payload")
				return err
			}
		case <-sess.Done():
			// Flush what is already queued, then stop.
			for {
				select {
				case payload := <-sess.Outgoing():
					if err := conn.Write(ctx, websocket.MessageText, payload); err != nil {
						return err
					}
				default:
					return nil
				}
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
