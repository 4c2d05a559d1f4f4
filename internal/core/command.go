package core

import "strings"

// CommandKind identifies one of the fixed protocol commands.
type CommandKind int

const (
	CommandHelp CommandKind = iota
	CommandRooms
	CommandCreate
	CommandJoin
	CommandMembers
	CommandMsg
	CommandLeave
	CommandQuit
	// CommandUnknown is any slash-prefixed name outside the set above.
	CommandUnknown
)

// Command is a parsed slash command together with its raw argument tail.
type Command struct {
	Kind CommandKind
	Arg  string
}

var commandNames = map[string]CommandKind{
	"/help":    CommandHelp,
	"/rooms":   CommandRooms,
	"/create":  CommandCreate,
	"/join":    CommandJoin,
	"/members": CommandMembers,
	"/msg":     CommandMsg,
	"/leave":   CommandLeave,
	"/quit":    CommandQuit,
}

// ParseCommand splits a slash-prefixed line on the first space into a
// command name and argument tail. The tail may be empty; it is not
// trimmed, handlers decide what blank means.
func ParseCommand(line string) Command {
	name, arg := line, ""
	if i := strings.IndexByte(line, ' '); i != -1 {
		name, arg = line[:i], line[i+1:]
	}
	kind, ok := commandNames[name]
	if !ok {
		return Command{Kind: CommandUnknown, Arg: arg}
	}
	return Command{Kind: kind, Arg: arg}
}
