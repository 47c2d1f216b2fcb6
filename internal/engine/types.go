package engine

import (
	"fmt"
	"strings"
)

// Which selects one of the two sequences owned by a staged list
type Which int

const (
	// Working is the mutable sequence edited by Insert and Delete
	Working Which = iota
	// Saved is the last committed sequence
	Saved
)

func (w Which) String() string {
	switch w {
	case Working:
		return "working"
	case Saved:
		return "saved"
	default:
		return fmt.Sprintf("Which(%d)", int(w))
	}
}

// ParseWhich parses "working" or "saved" (case-insensitive)
func ParseWhich(s string) (Which, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "working", "edited":
		return Working, nil
	case "saved", "committed":
		return Saved, nil
	default:
		return 0, fmt.Errorf("unknown sequence %q (expected working or saved)", s)
	}
}

// Outcome is the result of a Commit
type Outcome int

const (
	// Committed indicates the batch was promoted into the saved sequence
	Committed Outcome = iota
	// Aborted indicates a failed operation forced a rollback
	Aborted
)

func (o Outcome) String() string {
	switch o {
	case Committed:
		return "committed"
	case Aborted:
		return "aborted"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Counters tracks the operations issued since the batch opened
type Counters struct {
	Attempted int
	Succeeded int
}

// Failed returns the number of operations that hit a bounds violation
func (c Counters) Failed() int {
	return c.Attempted - c.Succeeded
}

// Clean reports whether every attempted operation succeeded
func (c Counters) Clean() bool {
	return c.Attempted == c.Succeeded
}
