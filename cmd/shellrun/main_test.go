package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zoro11031/homelab-coreos-minipc/shellrun/internal/cli"
	"github.com/zoro11031/homelab-coreos-minipc/shellrun/internal/runner"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := runRoot(cmd, args)
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no arguments", []string{}, cli.UsageLine + "\n"},
		{"echo", []string{`echo "hello"`}, "hello\n\n"},
		{"stderr only", []string{"echo nope >&2"}, "\n"},
		{"non-zero exit", []string{"echo still printed; exit 7"}, "still printed\n\n"},
		{"completion request name reaches the shell", []string{"__complete"}, "\n"},
		{"completion request without descriptions", []string{"__completeNoDesc", "x"}, "\n"},
		{"literal double dash kept", []string{"--", "echo ignored"}, "\n"},
		{"extra arguments ignored", []string{"echo one", "echo two"}, "one\n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v, want nil", err)
			}
			if got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRootCommandDoesNotParseFlags(t *testing.T) {
	// --help goes to the shell; cobra must not answer it with its own help.
	got, err := execute(t, "--help")
	if err != nil {
		t.Fatalf("Execute() error = %v, want nil", err)
	}
	if strings.Contains(got, "shellrun <command>") {
		t.Errorf("output = %q, want the shell's response rather than cobra help", got)
	}
}

func TestRootCommandSpawnFault(t *testing.T) {
	home := t.TempDir()
	missing := filepath.Join(home, "missing-shell")
	writeHomeConfig(t, home, "SHELL_PATH="+missing+"\n")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})

	err := runRoot(cmd, []string{"echo hi"})
	var spawnErr *runner.SpawnError
	if !errors.As(err, &spawnErr) {
		t.Fatalf("Execute() error = %v, want *runner.SpawnError", err)
	}
	if out.Len() != 0 {
		t.Errorf("output = %q, want nothing", out.String())
	}
}

func writeHomeConfig(t *testing.T, home, content string) {
	t.Helper()
	t.Setenv("HOME", home)
	if err := os.WriteFile(filepath.Join(home, ".shellrun.conf"), []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
}
