// Package tcp provides the raw line-protocol transport: one TCP
// connection per session, newline-framed input, byte-stream output.
package tcp

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"sync"

	"github.com/rs/zerolog"

	"github.com/vovakirdan/trc-server/internal/config"
	"github.com/vovakirdan/trc-server/internal/core"
)

// Server accepts TCP connections and bridges each one to a core
// session: a scanner read loop feeding hub.HandleLine and a write loop
// draining the session's outgoing queue.
type Server struct {
	addr         string
	maxLineBytes int
	queueSize    int
	hub          *core.Hub
	log          *zerolog.Logger
	listener     net.Listener
	wg           sync.WaitGroup
}

// New creates a TCP server that feeds the provided hub.
func New(cfg config.Config, hub *core.Hub, logger *zerolog.Logger) *Server {
	return &Server{
		addr:         cfg.TCPAddr,
		maxLineBytes: cfg.MaxLineBytes,
		queueSize:    cfg.SendQueueSize,
		hub:          hub,
		log:          logger,
	}
}

// Listen binds the TCP address. Split from Serve so callers can learn
// the bound address before accepting; tests listen on ":0".
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.addr, err)
	}
	s.listener = ln
	return nil
}

// Addr returns the bound address, or "" before Listen.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Serve accepts connections until ctx is cancelled, then waits for
// per-connection goroutines to drain.
func (s *Server) Serve(ctx context.Context) error {
	if s.listener == nil {
		if err := s.Listen(); err != nil {
			return err
		}
	}

	go func() {
		<-ctx.Done()
		s.listener.Close()
	}()
	s.log.Info().Str("addr", s.Addr()).Msg("tcp listener started")

	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				s.wg.Wait()
				return nil
			}
			s.log.Warn().Err(err).Msg("accept failed")
			continue
		}

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.handleConn(ctx, conn)
		}()
	}
}

func (s *Server) handleConn(ctx context.Context, conn net.Conn) {
	sess := core.NewSession(s.queueSize)

	// Shutdown closes the listener but not accepted connections; make
	// sure cancellation unblocks this connection's read loop too.
	stop := context.AfterFunc(ctx, func() {
		sess.Close()
		conn.Close()
	})
	defer stop()

	s.log.Debug().
		Str("session_id", sess.ID).
		Str("remote", conn.RemoteAddr().String()).
		Msg("connection accepted")

	var writer sync.WaitGroup
	writer.Add(1)
	go func() {
		defer writer.Done()
		defer conn.Close()
		writeLoop(conn, sess)
	}()

	s.hub.Register(sess)

	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, 4096), s.maxLineBytes)
	for scanner.Scan() {
		s.hub.HandleLine(sess, scanner.Text())
		if sess.Closed() {
			break
		}
	}
	if err := scanner.Err(); err != nil && !errors.Is(err, net.ErrClosed) {
		s.log.Debug().Err(err).Str("session_id", sess.ID).Msg("read loop ended")
	}

	s.hub.Disconnect(sess)
	writer.Wait()
}

// writeLoop drains the outgoing queue until the session is done, then
// flushes whatever is still queued (typically the farewell line) and
// closes the connection via the deferred Close above it.
func writeLoop(conn net.Conn, sess *core.Session) {
	for {
		select {
		case payload := <-sess.Outgoing():
			if _, err := conn.Write(payload); err != nil {
				sess.Close()
				return
			}
		case <-sess.Done():
			for {
				select {
				case payload := <-sess.Outgoing():
					if _, err := conn.Write(payload); err != nil {
						return
					}
				default:
					return
				}
			}
		}
	}
}
