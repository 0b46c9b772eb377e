package cli

import (
	"github.com/AlecAivazis/survey/v2"
)

// promptSelectMission asks the user to pick a mission from the list.
func promptSelectMission(names []string, current string) (string, error) {
	prompt := &survey.Select{
		Message: "Select the active mission:",
		Options: names,
	}
	for _, name := range names {
		if name == current {
			prompt.Default = current
			break
		}
	}

	var selected string
	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", err
	}
	return selected, nil
}

// promptConfirmMerge asks for confirmation before a merge run mutates
// mission files.
func promptConfirmMerge(mission string, modCount int) (bool, error) {
	prompt := &survey.Confirm{
		Message: mergeConfirmMessage(mission, modCount),
		Default: false,
	}

	var confirmed bool
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false, err
	}
	return confirmed, nil
}
