package client

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

// Local validation failures never touch the stub's connection, so a
// client with no connection at all is enough to exercise them.
func runLocal(t *testing.T, input string) string {
	t.Helper()
	var out bytes.Buffer
	c := &Client{out: &out}
	if err := c.Run(context.Background(), strings.NewReader(input)); err != nil {
		t.Fatalf("run: %v", err)
	}
	return out.String()
}

func TestRun_UsageErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"missing argument", "insert\n", "Usage: insert <positive integer>"},
		{"non-numeric", "insert five\n", "Usage: insert <positive integer>"},
		{"negative", "insert -3\n", "Usage: insert <positive integer>"},
		{"too many args", "insert 5 6\n", "Too many arguments were input"},
		{"zero", "insert 0\n", "number must be an integer >= 2"},
		{"one", "insert 1\n", "number must be an integer >= 2"},
		{"delete missing argument", "delete\n", "Usage: delete <positive integer>"},
		{"delete below minimum", "delete 1\n", "number must be an integer >= 2"},
		{"list with args", "list 5\n", "Too many arguments were input"},
		{"clear with args", "clear now\n", "Too many arguments were input"},
		{"unknown", "frobnicate\n", "Unknown command"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := runLocal(t, tc.input)
			if !strings.Contains(out, tc.want) {
				t.Fatalf("output %q does not contain %q", out, tc.want)
			}
		})
	}
}

func TestRun_HelpAndExit(t *testing.T) {
	out := runLocal(t, "help\nexit\nlist\n")

	// help prints the summary twice: once on startup, once on request.
	if strings.Count(out, "Available Commands") != 2 {
		t.Fatalf("help not printed on request:\n%s", out)
	}
	// exit stops the loop before the trailing list runs.
	if strings.Contains(out, "Current count") {
		t.Fatalf("command after exit was executed:\n%s", out)
	}
}

func TestRun_EndOfInput(t *testing.T) {
	out := runLocal(t, "")
	if !strings.Contains(out, "Available Commands") {
		t.Fatalf("startup help missing:\n%s", out)
	}
}

func TestRun_BlankLinesIgnored(t *testing.T) {
	out := runLocal(t, "\n   \nexit\n")
	if strings.Contains(out, "Unknown command") {
		t.Fatalf("blank line treated as command:\n%s", out)
	}
}
