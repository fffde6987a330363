package ui

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
)

// PromptYesNo prompts the user for a yes/no answer
func (u *UI) PromptYesNo(prompt string, defaultYes bool) (bool, error) {
	if u.nonInteractive {
		return defaultYes, nil
	}

	var result bool
	p := &survey.Confirm{
		Message: prompt,
		Default: defaultYes,
	}

	err := survey.AskOne(p, &result)
	return result, err
}

// ConfirmWrite asks before a target file is overwritten
func (u *UI) ConfirmWrite(path string) (bool, error) {
	return u.PromptYesNo(fmt.Sprintf("Write changes to %s?", path), true)
}
