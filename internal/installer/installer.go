// Package installer sets up a self-hosted 5etools server.
//
// Run executes one linear pipeline:
//
//	check -> prompt -> provision dir -> clone app -> clone assets ->
//	npm install -> build (best-effort) -> pm2 check/install -> pm2 start ->
//	pm2 save (best-effort) -> report
//
// Each fatal stage logs its own failure and returns a *StepError; nothing is
// rolled back and nothing is retried. A rerun starts over from the top.
package installer

import (
	"context"

	"github.com/thatoneguy-ian/fvtt5eold/internal/config"
	"github.com/thatoneguy-ian/fvtt5eold/internal/logger"
	"github.com/thatoneguy-ian/fvtt5eold/internal/prompt"
	"github.com/thatoneguy-ian/fvtt5eold/internal/runner"
)

// PathPrompter asks the operator for the install directory.
type PathPrompter interface {
	InstallPath(appName, defaultPath string) (string, error)
}

// Options configures an Installer.
type Options struct {
	Config config.Config
	Runner *runner.Runner
	Logger *logger.Logger
	// Prompter is consulted only when InstallDir is empty.
	Prompter PathPrompter
	// InstallDir skips the interactive prompt when set.
	InstallDir string
}

// Installer runs the setup pipeline.
type Installer struct {
	cfg        config.Config
	run        *runner.Runner
	log        *logger.Logger
	prompter   PathPrompter
	installDir string
}

// New returns an Installer. Missing Logger or Runner default to a discarding
// logger and the os/exec runner.
func New(opts Options) *Installer {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	run := opts.Runner
	if run == nil {
		run = runner.New(runner.ExecExecutor{}, log)
	}
	return &Installer{
		cfg:        opts.Config,
		run:        run,
		log:        log,
		prompter:   opts.Prompter,
		installDir: opts.InstallDir,
	}
}

// Run executes the whole pipeline and returns the first fatal error.
func (i *Installer) Run(ctx context.Context) error {
	i.log.Step("Starting %s setup script...", i.cfg.AppName)

	if err := i.CheckPrerequisites(ctx); err != nil {
		return err
	}

	installPath, err := i.InstallPath()
	if err != nil {
		return err
	}
	i.log.Step("--- Installation directory set to: %s ---", installPath)

	if err := i.ProvisionDir(installPath); err != nil {
		return err
	}

	srcPath, err := i.CloneRepositories(ctx, installPath)
	if err != nil {
		return err
	}

	if err := i.InstallDependencies(ctx, srcPath); err != nil {
		return err
	}
	i.Build(ctx, srcPath)
	i.log.Success("✅ Node.js setup complete.")

	if err := i.EnsureSupervisor(ctx); err != nil {
		return err
	}
	if err := i.StartServer(ctx, srcPath); err != nil {
		return err
	}
	i.PersistProcesses(ctx, srcPath)

	i.Report()
	return nil
}

// InstallPath returns the absolute install directory. A preset directory wins;
// without one the operator is prompted, and with no prompter the default is used.
func (i *Installer) InstallPath() (string, error) {
	var (
		p   string
		err error
	)
	if i.installDir != "" || i.prompter == nil {
		p, err = prompt.ResolveInstallPath(i.installDir, i.cfg.DefaultPath)
	} else {
		p, err = i.prompter.InstallPath(i.cfg.AppName, i.cfg.DefaultPath)
	}
	if err != nil {
		return "", fail(StagePrompt, err)
	}
	return p, nil
}
