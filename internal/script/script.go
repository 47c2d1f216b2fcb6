package script

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"

	"stagelist.dev/stagelist/internal/engine"
	"stagelist.dev/stagelist/internal/errors"
)

// Op identifies a script command
type Op int

const (
	// OpInsert inserts a value into the working list
	OpInsert Op = iota
	// OpDelete deletes a position from the working list
	OpDelete
	// OpCommit commits the open batch
	OpCommit
	// OpRollback rolls the working list back to the saved list
	OpRollback
	// OpShow prints one or both lists
	OpShow
)

func (o Op) String() string {
	switch o {
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	case OpCommit:
		return "commit"
	case OpRollback:
		return "rollback"
	case OpShow:
		return "show"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Target selects which lists a show command prints
type Target int

const (
	// ShowAll prints the saved list followed by the working list
	ShowAll Target = iota
	// ShowWorking prints only the working list
	ShowWorking
	// ShowSaved prints only the saved list
	ShowSaved
)

// Which returns the sequences selected by the target, in display order
func (t Target) Which() []engine.Which {
	switch t {
	case ShowWorking:
		return []engine.Which{engine.Working}
	case ShowSaved:
		return []engine.Which{engine.Saved}
	default:
		return []engine.Which{engine.Saved, engine.Working}
	}
}

// Command is one parsed script line
type Command struct {
	Op       Op
	Position int
	Value    string
	Target   Target
	Line     int
}

// String renders the command back into script form
func (c Command) String() string {
	switch c.Op {
	case OpInsert:
		return fmt.Sprintf("insert %d %s", c.Position, shellquote.Join(c.Value))
	case OpDelete:
		return fmt.Sprintf("delete %d", c.Position)
	case OpShow:
		switch c.Target {
		case ShowWorking:
			return "show working"
		case ShowSaved:
			return "show saved"
		default:
			return "show all"
		}
	default:
		return c.Op.String()
	}
}

// Parse reads every command from r
func Parse(r io.Reader) ([]Command, error) {
	var commands []Command

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		cmd, ok, err := parseLine(lineNum, scanner.Text())
		if err != nil {
			return nil, err
		}
		if ok {
			commands = append(commands, cmd)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	return commands, nil
}

// ParseString parses a script held in memory
func ParseString(s string) ([]Command, error) {
	return Parse(strings.NewReader(s))
}

// ParseLine parses a single line. ok is false for blank lines and comments.
func ParseLine(line string) (cmd Command, ok bool, err error) {
	return parseLine(1, line)
}

func parseLine(lineNum int, line string) (Command, bool, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return Command{}, false, nil
	}

	fields, err := shellquote.Split(trimmed)
	if err != nil {
		return Command{}, false, errors.NewScriptError(lineNum, trimmed, "malformed quoting", err)
	}
	if len(fields) == 0 {
		return Command{}, false, nil
	}

	cmd := Command{Line: lineNum}
	verb := strings.ToLower(fields[0])
	args := fields[1:]

	switch verb {
	case "insert", "add":
		if len(args) < 2 {
			return Command{}, false, errors.NewScriptError(lineNum, trimmed, "insert needs a position and a value", nil)
		}
		pos, err := parsePosition(lineNum, trimmed, args[0])
		if err != nil {
			return Command{}, false, err
		}
		cmd.Op = OpInsert
		cmd.Position = pos
		cmd.Value = strings.Join(args[1:], " ")

	case "delete", "del", "remove":
		if len(args) != 1 {
			return Command{}, false, errors.NewScriptError(lineNum, trimmed, "delete needs exactly one position", nil)
		}
		pos, err := parsePosition(lineNum, trimmed, args[0])
		if err != nil {
			return Command{}, false, err
		}
		cmd.Op = OpDelete
		cmd.Position = pos

	case "commit":
		if len(args) != 0 {
			return Command{}, false, errors.NewScriptError(lineNum, trimmed, "commit takes no arguments", nil)
		}
		cmd.Op = OpCommit

	case "rollback":
		if len(args) != 0 {
			return Command{}, false, errors.NewScriptError(lineNum, trimmed, "rollback takes no arguments", nil)
		}
		cmd.Op = OpRollback

	case "show", "print":
		if len(args) > 1 {
			return Command{}, false, errors.NewScriptError(lineNum, trimmed, "show takes at most one argument", nil)
		}
		cmd.Op = OpShow
		if len(args) == 1 && strings.ToLower(args[0]) != "all" {
			which, err := engine.ParseWhich(args[0])
			if err != nil {
				return Command{}, false, errors.NewScriptError(lineNum, trimmed, "unknown show target", err)
			}
			cmd.Target = ShowWorking
			if which == engine.Saved {
				cmd.Target = ShowSaved
			}
		}

	default:
		return Command{}, false, errors.NewScriptError(lineNum, trimmed, fmt.Sprintf("unknown command %q", fields[0]), nil)
	}

	return cmd, true, nil
}

// parsePosition accepts any integer; range checks belong to the engine so
// that a bad position is counted as a failed operation rather than a parse error.
func parsePosition(lineNum int, line, s string) (int, error) {
	pos, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.NewScriptError(lineNum, line, fmt.Sprintf("invalid position %q", s), err)
	}
	return pos, nil
}
