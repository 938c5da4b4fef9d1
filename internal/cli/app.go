// Package cli wires configuration, diagnostics and the command runner into
// the single shellrun operation: run one command line, print what it wrote.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/zoro11031/homelab-coreos-minipc/shellrun/internal/config"
	"github.com/zoro11031/homelab-coreos-minipc/shellrun/internal/runner"
	"github.com/zoro11031/homelab-coreos-minipc/shellrun/internal/ui"
)

// UsageLine is printed when no command line was given.
const UsageLine = "Usage: cargo run <command>"

// Options customizes NewApp. Zero values select the defaults.
type Options struct {
	ConfigPath string               // "" selects ~/.shellrun.conf
	Out        io.Writer            // captured output, default os.Stdout
	Err        io.Writer            // diagnostics, default os.Stderr
	Runner     runner.CommandRunner // default built from config
}

// App holds all dependencies needed to run a command line
type App struct {
	Config *config.Config
	UI     *ui.UI
	Runner runner.CommandRunner
	Out    io.Writer
}

// NewApp creates an App with all dependencies initialized. A config file
// that cannot be read is reported and the defaults are used.
func NewApp(opts Options) *App {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := opts.Err
	if errOut == nil {
		errOut = os.Stderr
	}
	uiInstance := ui.NewWithWriter(errOut)

	cfg := config.New(opts.ConfigPath)
	if err := cfg.Load(); err != nil {
		uiInstance.Warningf("Ignoring config %s: %v", cfg.FilePath(), err)
	}

	r := opts.Runner
	if r == nil {
		r = runner.NewShellRunner(
			cfg.GetOrDefault(config.KeyShellPath, runner.DefaultShell),
			cfg.GetOrDefault(config.KeyShellFlag, runner.DefaultFlag),
		)
	}

	return &App{
		Config: cfg,
		UI:     uiInstance,
		Runner: r,
		Out:    out,
	}
}

// Run executes args[0] as a shell command line and prints its captured
// stdout followed by a newline. Further arguments are ignored. With no
// arguments it prints the usage line and spawns nothing.
//
// The child's exit status and stderr do not affect the outcome; only a
// failure to launch the interpreter is returned.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) < 1 {
		fmt.Fprintln(a.Out, UsageLine)
		return nil
	}

	result, err := a.Runner.Run(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(a.Out, result.Output())
	return nil
}
