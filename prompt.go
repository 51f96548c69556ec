package mintdb

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
)

// PasswordPromptFunc asks the user for a password.
type PasswordPromptFunc func() (string, error)

// PromptPassword is the default password prompt: a masked terminal prompt,
// falling back to a plain stdin read when no terminal is available. The
// fallback echoes input, so scripts should prefer MINTDB_PASSWORD.
func PromptPassword() (string, error) {
	prompt := promptui.Prompt{
		Label: "Password",
		Mask:  '*',
	}
	pw, err := prompt.Run()
	if err == nil {
		return pw, nil
	}
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrAbort) {
		return "", err
	}

	fmt.Fprint(os.Stderr, "Password: ")
	line, readErr := bufio.NewReader(os.Stdin).ReadString('\n')
	if readErr != nil && line == "" {
		return "", fmt.Errorf("read password: %w", readErr)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
