// Package viewer opens a rendered page once it has been written.
//
// Opening is a post-render hook: it is optional, configurable per platform
// and never changes the outcome of a draw.
package viewer

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"
)

// OpenTimeout bounds how long a viewer command may take to start.
const OpenTimeout = 10 * time.Second

// ErrNoCommand is returned when no viewer command is available.
var ErrNoCommand = errors.New("no viewer command available")

// Opener opens a file for the user.
type Opener interface {
	Open(ctx context.Context, path string) error
}

// Nop is an Opener that does nothing.
type Nop struct{}

// Open implements Opener.
func (Nop) Open(context.Context, string) error { return nil }

// CommandOpener runs an external command with the path as its last argument.
type CommandOpener struct {
	Command string
	run     func(ctx context.Context, name string, args ...string) error
}

// NewCommandOpener creates an opener for a command line such as
// "xdg-open" or "firefox --new-tab".
func NewCommandOpener(command string) *CommandOpener {
	return &CommandOpener{Command: command, run: runCommand}
}

// Open runs the command for path.
func (o *CommandOpener) Open(ctx context.Context, path string) error {
	parts := strings.Fields(o.Command)
	if len(parts) == 0 {
		return ErrNoCommand
	}

	ctx, cancel := context.WithTimeout(ctx, OpenTimeout)
	defer cancel()

	args := append(parts[1:], path)
	if err := o.run(ctx, parts[0], args...); err != nil {
		return fmt.Errorf("failed to open %s with %q: %w", path, parts[0], err)
	}
	return nil
}

func runCommand(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

// New returns the Opener for the given settings: Nop when opening is
// disabled or no command can be found.
func New(open bool, command string) Opener {
	if !open {
		return Nop{}
	}
	if command == "" {
		command = DetectCommand(runtime.GOOS, exec.LookPath)
	}
	if command == "" {
		return Nop{}
	}
	return NewCommandOpener(command)
}

// DetectCommand returns the platform's default command for opening files,
// or "" if none is available.
func DetectCommand(goos string, lookPath func(string) (string, error)) string {
	switch goos {
	case "darwin":
		return "open"
	case "windows":
		return "rundll32 url.dll,FileProtocolHandler"
	}

	for _, candidate := range []string{"xdg-open", "gio open", "wslview"} {
		bin := strings.Fields(candidate)[0]
		if _, err := lookPath(bin); err == nil {
			return candidate
		}
	}
	return ""
}
