package params

import (
	"os"

	"github.com/mattn/go-isatty"
	survey "gopkg.in/AlecAivazis/survey.v1"
)

// Prompter asks the operator for a value. Implementations return the
// operator's answer; a blank answer means the default was accepted.
type Prompter interface {
	Ask(label, def string) (string, error)
}

// TerminalPrompter asks on the controlling terminal, showing the
// default so that pressing return keeps it.
type TerminalPrompter struct{}

func (TerminalPrompter) Ask(label, def string) (string, error) {
	var answer string
	if err := survey.AskOne(&survey.Input{Message: label, Default: def}, &answer, nil); err != nil {
		return "", err
	}
	return answer, nil
}

// Interactive reports whether prompting makes sense for this process,
// i.e. both ends of the conversation are a terminal.
func Interactive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}
