package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thatoneguy-ian/fvtt5eold/internal/installer"
	"github.com/thatoneguy-ian/fvtt5eold/internal/logger"
	"github.com/thatoneguy-ian/fvtt5eold/internal/runner"
)

// Exit codes returned by Execute.
const (
	exitOK    = 0
	exitFatal = 1
)

// rootOptions holds the flag values and the collaborators one invocation uses.
type rootOptions struct {
	debug      bool
	configPath string
	installDir string

	exec runner.Executor
	in   io.Reader
	log  *logger.Logger
}

// newRootCmd builds the `setup-5etools` command. exec spawns external tools and
// in feeds the install-path prompt.
func newRootCmd(exec runner.Executor, in io.Reader) (*cobra.Command, *rootOptions) {
	opts := &rootOptions{exec: exec, in: in}

	rootCmd := &cobra.Command{
		Use:   "setup-5etools",
		Short: "Install and run a self-hosted 5etools server",
		Long: `setup-5etools clones the 5etools source and image repositories, installs
their npm dependencies, builds the service worker and starts the server under PM2.

Run it with no arguments and answer the install directory prompt.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,

		// PersistentPreRun sets up logging from the --debug flag before anything runs.
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.log = logger.New(cmd.OutOrStdout(), opts.debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	rootCmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to a YAML file overriding the default settings")
	rootCmd.Flags().StringVar(&opts.installDir, "install-dir", "", "Install directory; skips the interactive prompt")

	return rootCmd, opts
}

// Execute runs the CLI and exits with 0 on success and 1 on any failure.
func Execute() {
	rootCmd, opts := newRootCmd(runner.ExecExecutor{}, os.Stdin)
	os.Exit(execute(rootCmd, opts))
}

// execute runs rootCmd and maps its outcome to an exit code. Panics are
// reported like any other unexpected error.
func execute(rootCmd *cobra.Command, opts *rootOptions) (code int) {
	defer func() {
		if r := recover(); r != nil {
			reportUnexpected(rootCmd, opts, fmt.Errorf("%v", r))
			code = exitFatal
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		var stepErr *installer.StepError
		if errors.As(err, &stepErr) {
			// The failing stage already explained itself.
			logFor(rootCmd, opts).Debug("Aborted at stage %s: %v", stepErr.Stage, stepErr.Err)
		} else {
			reportUnexpected(rootCmd, opts, err)
		}
		return exitFatal
	}
	return exitOK
}

func reportUnexpected(rootCmd *cobra.Command, opts *rootOptions, err error) {
	log := logFor(rootCmd, opts)
	log.Error("An unexpected error occurred:")
	log.Error("%v", err)
}

// logFor returns the configured logger, or a plain one when flag parsing failed
// before PersistentPreRun could build it.
func logFor(rootCmd *cobra.Command, opts *rootOptions) *logger.Logger {
	if opts.log != nil {
		return opts.log
	}
	return logger.New(rootCmd.ErrOrStderr(), false)
}
