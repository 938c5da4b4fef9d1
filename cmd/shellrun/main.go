package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/zoro11031/homelab-coreos-minipc/shellrun/internal/cli"
	"github.com/zoro11031/homelab-coreos-minipc/shellrun/internal/ui"
)

// newRootCmd builds the shellrun command. Flag parsing is disabled so the
// first argument reaches the shell verbatim, even when it looks like a flag.
func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shellrun <command>",
		Short: "Run a command line through sh and print its output",
		Long: `Run a single command line through the configured shell interpreter
(sh -c by default), wait for it to finish and print what it wrote to stdout.

The interpreter can be changed in ~/.shellrun.conf:
  SHELL_PATH=/bin/bash
  SHELL_FLAG=-c`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true, // Usage is printed by the app itself
		SilenceErrors:      true, // We format errors ourselves for consistent output
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 && args[0] == "--" {
				args = args[1:]
			}
			app := cli.NewApp(cli.Options{
				Out: cmd.OutOrStdout(),
				Err: cmd.ErrOrStderr(),
			})
			return app.Run(cmd.Context(), args)
		},
	}
}

// runRoot executes cmd with args placed behind "--", so cobra resolves no
// subcommand from them (its hidden __complete included). RunE drops the
// leading "--" again.
func runRoot(cmd *cobra.Command, args []string) error {
	cmd.SetArgs(append([]string{"--"}, args...))
	return cmd.Execute()
}

func main() {
	if err := runRoot(newRootCmd(), os.Args[1:]); err != nil {
		ui.New().Errorf("%v", err)
		os.Exit(1)
	}
}
