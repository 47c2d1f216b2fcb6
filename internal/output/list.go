package output

import (
	"fmt"
	"strings"

	"stagelist.dev/stagelist/internal/engine"
)

// ListTitle returns the display title for a sequence
func ListTitle(which engine.Which) string {
	if which == engine.Saved {
		return "Saved list"
	}
	return "Working list"
}

// RenderList renders a titled, numbered sequence
func RenderList(which engine.Which, items []string) string {
	var b strings.Builder

	b.WriteString(ColorHeader(fmt.Sprintf("%s (%d)", ListTitle(which), len(items))))
	b.WriteString("\n")

	if len(items) == 0 {
		b.WriteString("  ")
		b.WriteString(ColorDim("(empty)"))
		b.WriteString("\n")
		return b.String()
	}

	width := len(fmt.Sprint(len(items) - 1))
	for i, item := range items {
		b.WriteString("  ")
		b.WriteString(ColorDim(fmt.Sprintf("%*d", width, i)))
		b.WriteString("  ")
		b.WriteString(ElementColor(item, i))
		b.WriteString("\n")
	}

	return b.String()
}

// RenderLists renders each requested sequence of reader, separated by a blank line
func RenderLists(reader engine.ListReader[string], which ...engine.Which) string {
	parts := make([]string, 0, len(which))
	for _, w := range which {
		parts = append(parts, RenderList(w, reader.Render(w)))
	}
	return strings.Join(parts, "\n")
}

// RenderCounters renders the open batch counters
func RenderCounters(c engine.Counters) string {
	text := fmt.Sprintf("batch: %d attempted, %d succeeded", c.Attempted, c.Succeeded)
	if c.Failed() > 0 {
		return ColorWarning(text + fmt.Sprintf(", %d failed", c.Failed()))
	}
	return ColorDim(text)
}

// RenderOutcome renders a commit outcome badge
func RenderOutcome(outcome engine.Outcome) string {
	if outcome == engine.Committed {
		return ColorSuccess("✓ " + outcome.String())
	}
	return ColorFailure("✗ " + outcome.String())
}
