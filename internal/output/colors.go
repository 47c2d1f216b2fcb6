package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ElementColors defines the palette cycled through when rendering list elements
var ElementColors = [][]int{
	{76, 203, 241},  // Light blue
	{77, 202, 125},  // Green
	{245, 200, 0},   // Yellow
	{248, 144, 72},  // Orange
	{235, 130, 188}, // Pink
	{159, 131, 228}, // Purple
}

// ColorMode controls whether rendered output carries ANSI colors
type ColorMode string

const (
	// ColorAuto colors output only when writing to a terminal
	ColorAuto ColorMode = "auto"
	// ColorAlways forces true-color output
	ColorAlways ColorMode = "always"
	// ColorNever disables colors
	ColorNever ColorMode = "never"
)

// ParseColorMode parses auto, always or never. An empty string means auto.
func ParseColorMode(s string) (ColorMode, error) {
	switch ColorMode(s) {
	case "", ColorAuto:
		return ColorAuto, nil
	case ColorAlways:
		return ColorAlways, nil
	case ColorNever:
		return ColorNever, nil
	default:
		return "", fmt.Errorf("invalid color mode %q (expected auto, always or never)", s)
	}
}

// ConfigureColor sets the lipgloss color profile for output written to w
func ConfigureColor(mode ColorMode, w io.Writer) {
	lipgloss.SetColorProfile(ProfileFor(mode, w))
}

// ProfileFor picks the termenv profile for mode when writing to w
func ProfileFor(mode ColorMode, w io.Writer) termenv.Profile {
	switch mode {
	case ColorAlways:
		return termenv.TrueColor
	case ColorNever:
		return termenv.Ascii
	}

	f, ok := w.(*os.File)
	if !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return termenv.Ascii
	}
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}
