package tui

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"

	"stagelist.dev/stagelist/internal/errors"
)

// CheckInteractiveAllowed returns an error if interactive prompts cannot be shown,
// either because STAGELIST_NON_INTERACTIVE is set or no terminal is attached
func CheckInteractiveAllowed() error {
	if os.Getenv("STAGELIST_NON_INTERACTIVE") != "" {
		return fmt.Errorf("%w (STAGELIST_NON_INTERACTIVE is set)", errors.ErrInteractiveDisabled)
	}
	if !IsTTY() {
		return fmt.Errorf("%w (no terminal attached)", errors.ErrInteractiveDisabled)
	}
	return nil
}

// PromptConfirm asks a yes/no question
func PromptConfirm(message string, defaultValue bool) (bool, error) {
	if err := CheckInteractiveAllowed(); err != nil {
		return false, err
	}

	confirmed := defaultValue
	prompt := &survey.Confirm{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false, fmt.Errorf("failed to get confirmation: %w", err)
	}
	return confirmed, nil
}
