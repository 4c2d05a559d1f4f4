package core

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func newTestHub() *Hub {
	logger := zerolog.Nop()
	return NewHub(&logger)
}

// drain collects everything currently queued on the session's output.
func drain(s *Session) string {
	var b strings.Builder
	for {
		select {
		case payload := <-s.outgoing:
			b.Write(payload)
		default:
			return b.String()
		}
	}
}

func loginAs(t *testing.T, h *Hub, name string) *Session {
	t.Helper()

	s := NewSession(64)
	h.Register(s)
	h.HandleLine(s, name)
	out := drain(s)
	if !strings.Contains(out, "Welcome "+name+"!") {
		t.Fatalf("login as %q failed, output: %q", name, out)
	}
	if s.State() != StateNeutral {
		t.Fatalf("expected StateNeutral after login, got %v", s.State())
	}
	return s
}
