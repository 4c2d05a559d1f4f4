package core

import "fmt"

// Error codes for protocol errors. Every one of these is session-local
// and reported inline as a single "ERROR: ..." line.
const (
	ErrCodeIllegalCharacter  = "illegal_character"
	ErrCodeUnallowedUsername = "unallowed_username"
	ErrCodeNameTaken         = "name_taken"
	ErrCodeUnknownCommand    = "unknown_command"
	ErrCodeAlreadyInRoom     = "already_in_room"
	ErrCodeNotInRoom         = "not_in_room"
	ErrCodeRoomNotFound      = "room_not_found"
	ErrCodeRoomExists        = "room_already_exists"
	ErrCodeInvalidRoomName   = "invalid_room_name"
	ErrCodeBlankRoomName     = "blank_room_name"
	ErrCodeRecipientNotFound = "recipient_not_found"
	ErrCodeEmptyMessage      = "empty_message"
	ErrCodeSelfMessage       = "self_message"
	ErrCodeMalformedCommand  = "malformed_command"
)

// ProtocolError wraps a code and the exact line shown to the user.
type ProtocolError struct {
	Code    string
	Message string
}

func (e *ProtocolError) Error() string {
	return e.Message
}

func protocolError(code, msg string) *ProtocolError {
	return &ProtocolError{Code: code, Message: msg}
}

var (
	errIllegalCharacter  = protocolError(ErrCodeIllegalCharacter, "Unallowed character found.")
	errUnallowedUsername = protocolError(ErrCodeUnallowedUsername, "Unallowed username.")
	errNameTaken         = protocolError(ErrCodeNameTaken, "Name already taken.")
	errUnknownCommand    = protocolError(ErrCodeUnknownCommand, "Unknown command.")
	errAlreadyInRoom     = protocolError(ErrCodeAlreadyInRoom, "You already joined a room.")
	errNotInRoom         = protocolError(ErrCodeNotInRoom, "Please create or join a room first.")
	errMustJoinFirst     = protocolError(ErrCodeNotInRoom, "You have to join a room first.")
	errInvalidRoomName   = protocolError(ErrCodeInvalidRoomName, "Please enter a valid room name.")
	errBlankRoomName     = protocolError(ErrCodeBlankRoomName, "Please enter a room name.")
	errRecipientNotFound = protocolError(ErrCodeRecipientNotFound, "No such user in that room.")
	errEmptyMessage      = protocolError(ErrCodeEmptyMessage, "Please enter a message.")
	errSelfMessage       = protocolError(ErrCodeSelfMessage, "You can't send a PM to yourself.")
	errMalformedCommand  = protocolError(ErrCodeMalformedCommand, "Invalid command.")
)

func errRoomNotFound(name string) *ProtocolError {
	return protocolError(ErrCodeRoomNotFound, fmt.Sprintf("The room '%s' doesn't exist.", name))
}

func errRoomExists(name string) *ProtocolError {
	return protocolError(ErrCodeRoomExists, fmt.Sprintf("The room '%s' already exists.", name))
}
