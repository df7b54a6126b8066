package client

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"numberd/domain/numberset"
)

const helpText = `Number Registry CLI
Usage:
    command [options]

Available Commands
    insert <positive integer>     Stores a number on the server
    delete <positive integer>     Deletes the specified number from the server
    list                          Prints all numbers, smallest to largest, with their timestamp
    clear                         Deletes all stored entries
    help                          Prints this summary
    exit                          Quits
`

// Run reads commands from in until "exit" or end of input. Arguments
// are validated locally before any call is made — the same malformed
// inputs the service would reject never reach the wire — but whatever
// the service answers is displayed as-is.
func (c *Client) Run(ctx context.Context, in io.Reader) error {
	fmt.Fprint(c.out, helpText)
	fmt.Fprintln(c.out)

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line == "exit" {
			return nil
		}
		c.dispatch(ctx, line)
		fmt.Fprintln(c.out)
	}
	return sc.Err()
}

func (c *Client) dispatch(ctx context.Context, line string) {
	args := strings.Fields(line)
	cmd := args[0]

	switch cmd {
	case "insert":
		if number, ok := c.numberArg(cmd, args); ok {
			c.Insert(ctx, number)
		}
	case "delete":
		if number, ok := c.numberArg(cmd, args); ok {
			c.Delete(ctx, number)
		}
	case "list":
		if c.noArgs(args) {
			c.List(ctx)
		}
	case "clear":
		if c.noArgs(args) {
			c.Clear(ctx)
		}
	case "help":
		fmt.Fprint(c.out, helpText)
	default:
		fmt.Fprintln(c.out, "Unknown command")
	}
}

// numberArg enforces the command shape: exactly one argument that
// parses as an integer >= 2. The server applies the same minimum; the
// local check only saves a round trip.
func (c *Client) numberArg(cmd string, args []string) (uint64, bool) {
	if len(args) > 2 {
		fmt.Fprintln(c.out, "Too many arguments were input")
		return 0, false
	}
	if len(args) < 2 {
		fmt.Fprintf(c.out, "Usage: %s <positive integer>\n", cmd)
		return 0, false
	}

	number, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		fmt.Fprintf(c.out, "Usage: %s <positive integer>\n", cmd)
		return 0, false
	}
	if number < numberset.MinNumber {
		fmt.Fprintf(c.out, "number must be an integer >= %d\n", numberset.MinNumber)
		return 0, false
	}
	return number, true
}

func (c *Client) noArgs(args []string) bool {
	if len(args) > 1 {
		fmt.Fprintln(c.out, "Too many arguments were input")
		return false
	}
	return true
}
