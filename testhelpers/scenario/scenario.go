// Package scenario provides a high-level test scenario that combines an
// Engine and a runtime Context with captured output to provide a terse API
// for action and command tests.
package scenario

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"stagelist.dev/stagelist/internal/actions"
	"stagelist.dev/stagelist/internal/engine"
	"stagelist.dev/stagelist/internal/runtime"
	"stagelist.dev/stagelist/internal/script"
	"stagelist.dev/stagelist/testhelpers"
)

// Scenario represents a high-level test scenario over one staged list
type Scenario struct {
	T       *testing.T
	Engine  engine.Engine[string]
	Context *runtime.Context
	Output  *bytes.Buffer
	Summary actions.RunSummary
}

// NewScenario creates a new Scenario with an empty list.
// Safe for parallel tests.
func NewScenario(t *testing.T) *Scenario {
	t.Helper()

	out := &bytes.Buffer{}
	ctx := runtime.NewTestContext(out)

	return &Scenario{
		T:       t,
		Engine:  ctx.Engine,
		Context: ctx,
		Output:  out,
	}
}

// Insert inserts value at position through InsertAction.
func (s *Scenario) Insert(position int, value string) *Scenario {
	s.T.Helper()
	err := actions.InsertAction(s.Context, actions.InsertOptions{Position: position, Value: value})
	require.NoError(s.T, err)
	return s
}

// Delete deletes position through DeleteAction.
func (s *Scenario) Delete(position int) *Scenario {
	s.T.Helper()
	err := actions.DeleteAction(s.Context, actions.DeleteOptions{Position: position})
	require.NoError(s.T, err)
	return s
}

// Commit commits the open batch and asserts the outcome.
func (s *Scenario) Commit(expected engine.Outcome) *Scenario {
	s.T.Helper()
	require.Equal(s.T, expected, actions.CommitAction(s.Context))
	return s
}

// Rollback rolls back the open batch.
func (s *Scenario) Rollback() *Scenario {
	s.T.Helper()
	actions.RollbackAction(s.Context)
	return s
}

// Run parses and runs src, accumulating the run summary.
func (s *Scenario) Run(src string) *Scenario {
	s.T.Helper()
	commands, err := script.ParseString(src)
	require.NoError(s.T, err)

	summary, err := actions.RunScriptAction(s.Context, commands, actions.RunOptions{})
	require.NoError(s.T, err)

	s.Summary.Commands += summary.Commands
	s.Summary.Commits += summary.Commits
	s.Summary.Aborts += summary.Aborts
	s.Summary.Rollbacks += summary.Rollbacks
	s.Summary.OutOfBounds += summary.OutOfBounds
	return s
}

// ExpectWorking asserts the working list contents.
func (s *Scenario) ExpectWorking(expected ...string) *Scenario {
	s.T.Helper()
	testhelpers.ExpectWorking(s.T, s.Engine, expected...)
	return s
}

// ExpectSaved asserts the saved list contents.
func (s *Scenario) ExpectSaved(expected ...string) *Scenario {
	s.T.Helper()
	testhelpers.ExpectSaved(s.T, s.Engine, expected...)
	return s
}

// ExpectClean asserts that no batch is open.
func (s *Scenario) ExpectClean() *Scenario {
	s.T.Helper()
	testhelpers.ExpectClean(s.T, s.Engine)
	return s
}

// ExpectOutput asserts that the captured output contains every fragment.
func (s *Scenario) ExpectOutput(fragments ...string) *Scenario {
	s.T.Helper()
	for _, f := range fragments {
		require.Contains(s.T, s.Output.String(), f)
	}
	return s
}
