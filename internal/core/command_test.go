package core

import "testing"

func TestParseCommand(t *testing.T) {
	cases := []struct {
		line string
		kind CommandKind
		arg  string
	}{
		{"/help", CommandHelp, ""},
		{"/rooms", CommandRooms, ""},
		{"/create lobby", CommandCreate, "lobby"},
		{"/create", CommandCreate, ""},
		{"/join lobby", CommandJoin, "lobby"},
		{"/members", CommandMembers, ""},
		{"/msg bob hi there", CommandMsg, "bob hi there"},
		{"/leave", CommandLeave, ""},
		{"/quit", CommandQuit, ""},
		{"/dance", CommandUnknown, ""},
		{"/CREATE lobby", CommandUnknown, "lobby"},
		{"/create  lobby", CommandCreate, " lobby"},
	}

	for _, tc := range cases {
		cmd := ParseCommand(tc.line)
		if cmd.Kind != tc.kind || cmd.Arg != tc.arg {
			t.Errorf("ParseCommand(%q) = {%v %q}, want {%v %q}",
				tc.line, cmd.Kind, cmd.Arg, tc.kind, tc.arg)
		}
	}
}
