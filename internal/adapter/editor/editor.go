// Package editor resolves and runs the user's text editor over the edit
// list. Resolution happens once at startup; the rest of the program sees
// only the resulting command name.
package editor

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/tristan-harris/cbr/internal/domain"
)

// fallbackEditors are tried on PATH when neither the flag nor the
// environment names an editor.
var fallbackEditors = []string{"nano", "vi"}

// Resolve picks the editor command: the explicit override first, then
// $VISUAL, then $EDITOR, then well-known editors on PATH.
func Resolve(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual, nil
	}
	if env := os.Getenv("EDITOR"); env != "" {
		return env, nil
	}
	for _, candidate := range fallbackEditors {
		if _, err := exec.LookPath(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: set $VISUAL or $EDITOR, or pass --editor", domain.ErrNoEditor)
}

// CommandEditor runs a resolved editor command as a child process attached
// to the caller's terminal.
type CommandEditor struct {
	command string
}

func NewCommandEditor(command string) *CommandEditor {
	return &CommandEditor{command: command}
}

// Edit blocks until the editor exits. A non-zero exit aborts the run; no
// filesystem changes have been made at that point.
func (e *CommandEditor) Edit(ctx context.Context, path string) error {
	cmd := exec.CommandContext(ctx, e.command, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: editor %q: %v", domain.ErrExternalProcess, e.command, err)
	}
	return nil
}
