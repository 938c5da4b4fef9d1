// Package runner executes a command line through a shell interpreter and
// captures what the child wrote. The interpreter is injected so that callers
// (and tests) decide which program parses the command line.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/google/uuid"
	"github.com/kballard/go-shellquote"
)

const (
	// DefaultShell is resolved through PATH.
	DefaultShell = "sh"
	// DefaultFlag tells the shell to read the command from the next argument.
	DefaultFlag = "-c"
)

// CommandRunner defines an interface for running shell command lines.
type CommandRunner interface {
	Run(ctx context.Context, command string) (*Result, error)
}

// ShellRunner runs command lines as `<Shell> <Flag> <command>`.
type ShellRunner struct {
	Shell string
	Flag  string
}

// NewShellRunner returns a runner for the given interpreter. Empty values
// fall back to DefaultShell and DefaultFlag.
func NewShellRunner(shell, flag string) *ShellRunner {
	if shell == "" {
		shell = DefaultShell
	}
	if flag == "" {
		flag = DefaultFlag
	}
	return &ShellRunner{Shell: shell, Flag: flag}
}

// Run executes command and blocks until the interpreter exits. The child
// inherits the environment and working directory and gets no stdin.
//
// A non-zero exit status is not an error; it is recorded in the Result.
// Only a failure to start or wait on the interpreter is returned, as a
// *SpawnError.
func (r *ShellRunner) Run(ctx context.Context, command string) (*Result, error) {
	runID := uuid.New().String()
	args := []string{r.Flag, command}

	cmd := exec.CommandContext(ctx, r.Shell, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	exitCode := 0
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, &SpawnError{RunID: runID, Shell: r.Shell, Args: args, Err: err}
		}
		exitCode = exitErr.ExitCode()
	}

	return &Result{
		RunID:    runID,
		ExitCode: exitCode,
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
	}, nil
}

// SpawnError reports that the interpreter could not be launched at all.
type SpawnError struct {
	RunID string
	Shell string
	Args  []string
	Err   error
}

func (e *SpawnError) Error() string {
	line := shellquote.Join(append([]string{e.Shell}, e.Args...)...)
	return fmt.Sprintf("failed to execute process (run %s): %s: %v", e.RunID, line, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}
