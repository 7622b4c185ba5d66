package cmd

import (
	"github.com/spf13/cobra"

	"github.com/thatoneguy-ian/fvtt5eold/internal/config"
	"github.com/thatoneguy-ian/fvtt5eold/internal/installer"
	"github.com/thatoneguy-ian/fvtt5eold/internal/prompt"
	"github.com/thatoneguy-ian/fvtt5eold/internal/runner"
)

// runInstall loads settings and runs the full setup pipeline.
func runInstall(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}
	opts.log.Debug("Loaded settings for %s (config file: %q)", cfg.AppName, opts.configPath)

	run := runner.New(opts.exec, opts.log).WithStreams(runner.Streams{
		Stdin:  opts.in,
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
	})

	ins := installer.New(installer.Options{
		Config:     cfg,
		Runner:     run,
		Logger:     opts.log,
		Prompter:   prompt.New(opts.in, cmd.OutOrStdout()),
		InstallDir: opts.installDir,
	})
	return ins.Run(cmd.Context())
}
