package core

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Hub owns the name registry and the room store, shared by every
// session. One inbound line is handled start-to-finish under hub.mu,
// which is what keeps name registration and room membership free of
// cross-connection races.
type Hub struct {
	mu       sync.Mutex
	sessions map[string]*Session            // name -> session
	rooms    map[string]map[string]*Session // room -> member name -> session
	log      *zerolog.Logger
}

// NewHub creates an empty hub.
func NewHub(logger *zerolog.Logger) *Hub {
	return &Hub{
		sessions: make(map[string]*Session),
		rooms:    make(map[string]map[string]*Session),
		log:      logger,
	}
}

// Register greets a freshly accepted session with the login banner.
func (h *Hub) Register(s *Session) {
	s.sendString(banner)
	s.sendString(prompt)
	h.log.Debug().Str("session_id", s.ID).Msg("session registered")
}

// HandleLine processes one inbound line for s and returns once every
// resulting write has been queued. The whole unit runs under the hub
// lock: sanitize, gate by state, dispatch, redraw the prompt.
func (h *Hub) HandleLine(s *Session, raw string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if s.state == StateEnded {
		return
	}
	line, ok := sanitizeLine(raw)
	if !ok {
		return
	}

	if s.state == StateLogin {
		h.login(s, line)
	} else {
		h.dispatch(s, line)
	}

	if s.state != StateEnded {
		s.sendString(prompt)
	}
}

// Disconnect tears the session down regardless of its state:
// deregister the name, drop room membership, collect the room if that
// emptied it, kill the output handle. Also runs after /quit already
// ended the session, in which case only the registry and room entries
// are left to clean.
func (h *Hub) Disconnect(s *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if s.Name != "" {
		if registered, ok := h.sessions[s.Name]; ok && registered == s {
			delete(h.sessions, s.Name)
		}
	}
	h.removeMembership(s)
	s.state = StateEnded
	s.Close()

	evt := h.log.Info().Str("session_id", s.ID)
	if s.Name != "" {
		evt = evt.Str("name", s.Name)
	}
	evt.Msg("session disconnected")
}

// removeMembership drops s from its room, if any, and collects the
// room the moment the member set becomes empty.
func (h *Hub) removeMembership(s *Session) {
	if s.room == "" {
		return
	}
	if members, ok := h.rooms[s.room]; ok {
		delete(members, s.Name)
		if len(members) == 0 {
			delete(h.rooms, s.room)
			h.log.Info().Str("room", s.room).Msg("room deleted")
		}
	}
	s.room = ""
}

func (h *Hub) login(s *Session, name string) {
	if !validName(name) {
		s.sendError(errUnallowedUsername)
		s.sendString(loginPrompt)
		return
	}
	if _, taken := h.sessions[name]; taken {
		s.sendError(errNameTaken)
		s.sendString(loginPrompt)
		return
	}

	h.sessions[name] = s
	s.Name = name
	s.state = StateNeutral
	s.sendString(welcomeLines(name))
	h.log.Info().Str("session_id", s.ID).Str("name", name).Msg("logged in")
}

func (h *Hub) dispatch(s *Session, line string) {
	if !printableASCII(line) {
		s.sendError(errIllegalCharacter)
		return
	}
	if !strings.HasPrefix(line, "/") {
		h.chat(s, line)
		return
	}

	cmd := ParseCommand(line)
	switch cmd.Kind {
	case CommandHelp:
		s.sendString(helpText)
	case CommandRooms:
		h.listRooms(s)
	case CommandCreate:
		h.createRoom(s, cmd.Arg)
	case CommandJoin:
		h.joinRoom(s, cmd.Arg)
	case CommandMembers:
		h.listMembers(s)
	case CommandMsg:
		h.sendPrivate(s, cmd.Arg)
	case CommandLeave:
		h.leaveRoom(s)
	case CommandQuit:
		h.quit(s)
	default:
		s.sendError(errUnknownCommand)
	}
}

func (h *Hub) chat(s *Session, text string) {
	if s.state != StateInRoom {
		s.sendError(errNotInRoom)
		return
	}
	h.broadcast(s.room, chatLine(s.Name, text), s)
}

// broadcast fans payload out to every live member of room except
// exclude. Members whose output handle is dead are pruned along the
// way; a dead recipient never aborts delivery to the rest.
func (h *Hub) broadcast(room, payload string, exclude *Session) {
	members := h.rooms[room]
	for name, member := range members {
		if member == exclude {
			continue
		}
		if member.Closed() {
			delete(members, name)
			h.log.Debug().Str("name", name).Str("room", room).Msg("pruned dead room member")
			continue
		}
		member.sendString(erase + payload + prompt)
	}
	if len(members) == 0 {
		delete(h.rooms, room)
	}
}

func (h *Hub) listRooms(s *Session) {
	if s.state == StateInRoom {
		s.sendError(errAlreadyInRoom)
		return
	}
	if len(h.rooms) == 0 {
		s.sendString("-> There are no existing rooms" + crlf)
		return
	}

	var b strings.Builder
	b.WriteString("-> Active rooms are:" + crlf)
	for name, members := range h.rooms {
		fmt.Fprintf(&b, "* %s(%d)%s", name, len(members), crlf)
	}
	b.WriteString("-> End of list" + crlf)
	s.sendString(b.String())
}

func (h *Hub) listMembers(s *Session) {
	if s.state != StateInRoom {
		s.sendError(errMustJoinFirst)
		return
	}
	h.sendMemberList(s)
}

func (h *Hub) sendMemberList(s *Session) {
	var b strings.Builder
	b.WriteString("-> People in the room are:" + crlf)
	for name := range h.rooms[s.room] {
		if name == s.Name {
			fmt.Fprintf(&b, "* %s(you)%s", name, crlf)
		} else {
			fmt.Fprintf(&b, "* %s%s", name, crlf)
		}
	}
	b.WriteString("-> End of list" + crlf)
	s.sendString(b.String())
}

func (h *Hub) createRoom(s *Session, name string) {
	if s.state == StateInRoom {
		s.sendError(errAlreadyInRoom)
		return
	}
	if _, exists := h.rooms[name]; exists {
		s.sendError(errRoomExists(name))
		return
	}
	if !validName(name) {
		s.sendError(errInvalidRoomName)
		return
	}

	h.rooms[name] = map[string]*Session{s.Name: s}
	s.room = name
	s.state = StateInRoom
	s.sendString(fmt.Sprintf("-> You created and joined the room '%s'%s", name, crlf))
	h.log.Info().Str("name", s.Name).Str("room", name).Msg("room created")
}

func (h *Hub) joinRoom(s *Session, name string) {
	if s.state == StateInRoom {
		s.sendError(errAlreadyInRoom)
		return
	}
	if isBlank(name) {
		s.sendError(errBlankRoomName)
		return
	}
	members, ok := h.rooms[name]
	if !ok {
		s.sendError(errRoomNotFound(name))
		return
	}

	members[s.Name] = s
	s.room = name
	s.state = StateInRoom
	s.sendString(fmt.Sprintf("-> You joined the room '%s'%s", name, crlf))
	h.sendMemberList(s)
	h.broadcast(name, joinedAnnouncement(s.Name), s)
	h.log.Info().Str("name", s.Name).Str("room", name).Msg("joined room")
}

func (h *Hub) leaveRoom(s *Session) {
	if s.state != StateInRoom {
		s.sendError(errNotInRoom)
		return
	}

	room := s.room
	if members, ok := h.rooms[room]; ok {
		delete(members, s.Name)
		if len(members) == 0 {
			delete(h.rooms, room)
			h.log.Info().Str("room", room).Msg("room deleted")
		}
	}

	s.sendString(fmt.Sprintf("-> You left the room '%s'%s", room, crlf))
	h.broadcast(room, leftAnnouncement(s.Name), s)
	s.state = StateNeutral
	s.room = ""
}

func (h *Hub) sendPrivate(s *Session, arg string) {
	if s.state != StateInRoom {
		s.sendError(errNotInRoom)
		return
	}
	if isBlank(arg) {
		s.sendError(errMalformedCommand)
		return
	}
	i := strings.IndexByte(arg, ' ')
	if i == -1 {
		s.sendError(errMalformedCommand)
		return
	}

	recipient, body := arg[:i], arg[i+1:]
	target, ok := h.rooms[s.room][recipient]
	if !ok {
		s.sendError(errRecipientNotFound)
		return
	}
	if isBlank(body) {
		s.sendError(errEmptyMessage)
		return
	}
	if recipient == s.Name {
		s.sendError(errSelfMessage)
		return
	}

	target.sendString(erase + privateLine(s.Name, body) + prompt)
}

// quit ends the session with the farewell line. Registry and room
// cleanup happen in Disconnect, which the transport invokes once the
// read loop unwinds.
func (h *Hub) quit(s *Session) {
	s.sendString(farewell)
	s.state = StateEnded
	s.Close()
	h.log.Info().Str("session_id", s.ID).Str("name", s.Name).Msg("session quit")
}

// RoomInfo is a point-in-time view of one room.
type RoomInfo struct {
	Name    string `json:"name"`
	Members int    `json:"members"`
}

// Rooms returns a snapshot of room names and member counts, sorted by
// name. Member counts may include a dead peer that broadcast has not
// reaped yet.
func (h *Hub) Rooms() []RoomInfo {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]RoomInfo, 0, len(h.rooms))
	for name, members := range h.rooms {
		out = append(out, RoomInfo{Name: name, Members: len(members)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// SessionCount returns the number of logged-in sessions.
func (h *Hub) SessionCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sessions)
}

// RoomCount returns the number of live rooms.
func (h *Hub) RoomCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms)
}
