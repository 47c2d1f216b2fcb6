package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ElementColor returns text styled with the palette color for index
func ElementColor(text string, index int) string {
	if len(ElementColors) == 0 {
		return text
	}

	color := ElementColors[index%len(ElementColors)]
	hexColor := lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", color[0], color[1], color[2]))

	return lipgloss.NewStyle().
		Foreground(hexColor).
		Render(text)
}

// ColorHeader renders a section header
func ColorHeader(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("6")).
		Bold(true).
		Render(text)
}

// ColorSuccess colors text green
func ColorSuccess(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("2")).
		Render(text)
}

// ColorFailure colors text red
func ColorFailure(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("1")).
		Render(text)
}

// ColorWarning colors text yellow
func ColorWarning(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("3")).
		Render(text)
}

// ColorDim makes text dim/gray
func ColorDim(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Render(text)
}
