package core

import (
	"sync"

	"github.com/google/uuid"
)

// State tracks where a session is in the protocol.
type State int

const (
	// StateLogin is the initial state; every input is routed to the login handler.
	StateLogin State = iota
	// StateNeutral means logged in but not in any room.
	StateNeutral
	// StateInRoom means the session is a member of exactly one room.
	StateInRoom
	// StateEnded is terminal; no further input is processed.
	StateEnded
)

// Session is one connected peer as seen by the core layer. Name stays
// empty until login succeeds; room is set iff state is StateInRoom.
// The outgoing queue plus the done channel form the output handle a
// transport write loop drains.
type Session struct {
	ID   string
	Name string

	state State
	room  string

	outgoing  chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

// NewSession constructs a session in the login state with a buffered
// outgoing queue of the given size.
func NewSession(queueSize int) *Session {
	if queueSize <= 0 {
		queueSize = 32
	}
	return &Session{
		ID:       uuid.NewString(),
		state:    StateLogin,
		outgoing: make(chan []byte, queueSize),
		done:     make(chan struct{}),
	}
}

// State returns the current protocol state.
func (s *Session) State() State { return s.state }

// Room returns the joined room name, or "" outside StateInRoom.
func (s *Session) Room() string { return s.room }

// Outgoing is the queue of byte payloads awaiting delivery to the peer.
func (s *Session) Outgoing() <-chan []byte { return s.outgoing }

// Done is closed once the session will produce no further output.
func (s *Session) Done() <-chan struct{} { return s.done }

// Close marks the output handle dead. Safe to call more than once.
func (s *Session) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

// Closed reports whether the output handle is dead.
func (s *Session) Closed() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// send enqueues a payload. The payload is dropped if the session is
// gone or the consumer is too slow to keep the queue drained.
func (s *Session) send(payload []byte) {
	select {
	case s.outgoing <- payload:
	case <-s.done:
	default:
		// Drop if slow consumer.
	}
}

func (s *Session) sendString(text string) {
	s.send([]byte(text))
}

func (s *Session) sendError(perr *ProtocolError) {
	s.sendString("ERROR: " + perr.Message + crlf)
}
