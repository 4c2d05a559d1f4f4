package core

import "testing"

func TestSanitizeLine(t *testing.T) {
	cases := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"hello", "hello", true},
		{"hello\r\n", "hello", true},
		{"hello\n", "hello", true},
		{"hello\r", "hello", true},
		{"", "", false},
		{"\r\n", "", false},
		{"   ", "", false},
		{" \t ", "", false},
		{"  hi  ", "  hi  ", true},
	}

	for _, tc := range cases {
		got, ok := sanitizeLine(tc.raw)
		if got != tc.want || ok != tc.ok {
			t.Errorf("sanitizeLine(%q) = (%q, %v), want (%q, %v)", tc.raw, got, ok, tc.want, tc.ok)
		}
	}
}

func TestValidName(t *testing.T) {
	valid := []string{"alice", "Bob7", "X", "42"}
	for _, name := range valid {
		if !validName(name) {
			t.Errorf("validName(%q) = false, want true", name)
		}
	}

	invalid := []string{"", "bad name", "na-me", "na!me", "caf\xc3\xa9", "a_b"}
	for _, name := range invalid {
		if validName(name) {
			t.Errorf("validName(%q) = true, want false", name)
		}
	}
}

func TestPrintableASCII(t *testing.T) {
	if !printableASCII("hello /msg bob ~") {
		t.Error("plain printable input rejected")
	}
	for _, s := range []string{"tab\there", "bell\x07", "caf\xc3\xa9", "\x1b[31m"} {
		if printableASCII(s) {
			t.Errorf("printableASCII(%q) = true, want false", s)
		}
	}
}
