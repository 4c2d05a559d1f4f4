package core

import (
	"fmt"
	"strings"
)

// Wire-level text fragments of the TRC line protocol. Clients are
// assumed to be dumb terminals: the prompt is redrawn after every
// processed input and erased with backspaces before asynchronous
// pushes.
const (
	crlf   = "\r\n"
	prompt = "> "
	erase  = "\b\b"

	banner      = "\r\n## Welcome to TRC ##\r\n<Please enter username>\r\n"
	loginPrompt = "<Please enter username>\r\n"
	farewell    = "-> See You Space Cowboy!\r\n"
)

var helpText = strings.Join([]string{
	"-> Command list:",
	"* to display the room list:   /rooms",
	"* to create a room:           /create 'nameOfTheRoom'",
	"* to join a room:             /join 'nameOfTheRoom'",
	"* to display room members:    /members",
	"* to send a private message:  /msg 'recipientName' 'message'",
	"* to leave the current room:  /leave",
	"* to leave the chat:          /quit",
	"-> End of list",
	"",
}, crlf)

func welcomeLines(name string) string {
	return fmt.Sprintf("\r\n-> Welcome %s!\r\n-> To display the list of commands, please hit: /help\r\n", name)
}

func chatLine(from, text string) string {
	return fmt.Sprintf("%s: %s%s", from, text, crlf)
}

func privateLine(from, text string) string {
	return fmt.Sprintf("[PM]%s: %s%s", from, text, crlf)
}

func joinedAnnouncement(name string) string {
	return fmt.Sprintf("-> '%s' joined the room%s", name, crlf)
}

func leftAnnouncement(name string) string {
	return fmt.Sprintf("-> '%s' left the room%s", name, crlf)
}
