package runtime

import (
	"io"

	"github.com/google/uuid"

	"stagelist.dev/stagelist/internal/engine"
	"stagelist.dev/stagelist/internal/metrics"
	"stagelist.dev/stagelist/internal/tui"
)

// Context provides access to engine, output and metrics for commands
type Context struct {
	Engine  engine.Engine[string]
	Splog   *tui.Splog
	Metrics *metrics.Recorder
	BatchID string
}

// NewContext creates a new context around eng that logs through splog
func NewContext(eng engine.Engine[string], splog *tui.Splog) *Context {
	return &Context{
		Engine:  eng,
		Splog:   splog,
		Metrics: metrics.NewRecorder(),
		BatchID: uuid.NewString(),
	}
}

// NewDefaultContext creates a context with a fresh engine whose debug
// records go through splog
func NewDefaultContext(splog *tui.Splog) *Context {
	eng := engine.NewEngine[string](engine.WithLogger(splog.Logger()))
	return NewContext(eng, splog)
}

// NewTestContext creates a context with a fresh engine writing console output to w
func NewTestContext(w io.Writer) *Context {
	return NewDefaultContext(tui.NewSplogWithWriter(w))
}

// Log returns the splog tagged with the open batch
func (c *Context) Log() *tui.Splog {
	return c.Splog.With("batch", c.BatchID)
}

// NextBatch starts a new batch identifier. Called whenever a batch closes.
func (c *Context) NextBatch() {
	c.BatchID = uuid.NewString()
}
