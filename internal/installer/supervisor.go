package installer

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/thatoneguy-ian/fvtt5eold/internal/runner"
)

func (i *Installer) supervisorLabel() string {
	return strings.ToUpper(i.cfg.Supervisor.Binary)
}

// EnsureSupervisor makes PM2 available, installing it globally through npm only
// when the version probe fails. A failed global install is fatal and comes
// with elevated-privilege guidance.
func (i *Installer) EnsureSupervisor(ctx context.Context) error {
	sup := i.cfg.Supervisor
	label := i.supervisorLabel()

	i.log.Step("\n--- Setting up %s to manage the server ---", label)
	if i.run.Probe(ctx, sup.Binary, "--version") {
		i.log.Success("✅ %s is already installed.", label)
		return nil
	}

	i.log.Info("%s not found. Attempting to install globally...", label)
	pkg := sup.Package
	if pkg == "" {
		pkg = sup.Binary
	}
	installCmd := runner.Command{Name: i.cfg.NPM.Binary, Args: []string{"install", pkg, "-g"}}
	if !i.run.Run(ctx, installCmd) {
		i.log.Error("❌ Failed to install %s globally.", label)
		i.log.Hint("Please try running the script with administrator/sudo privileges, or install %s manually by running:", label)
		i.log.Hint("sudo %s", installCmd)
		return commandFailed(StageSupervisorInstall, installCmd)
	}

	i.log.Success("✅ %s installed successfully.", label)
	return nil
}

// StartServer launches `npm run <serve script>` under PM2 with the configured
// process name, from the app checkout. Failure is fatal.
func (i *Installer) StartServer(ctx context.Context, srcPath string) error {
	sup := i.cfg.Supervisor
	label := i.supervisorLabel()

	if declared, err := hasScript(filepath.Join(srcPath, "package.json"), sup.ServeScript); err == nil && !declared {
		i.log.Warn("package.json has no %q script; %s will keep restarting a failing process.", sup.ServeScript, label)
	}

	i.log.Info("Starting %s server with %s...", i.cfg.AppName, label)
	cmd := runner.Command{
		Name: sup.Binary,
		Args: []string{"start", i.cfg.NPM.Binary, "--name", sup.ProcessName, "--", "run", sup.ServeScript},
		Dir:  srcPath,
	}
	if !i.run.Run(ctx, cmd) {
		i.log.Error("❌ Failed to start server with %s.", label)
		return commandFailed(StageSupervisorStart, cmd)
	}
	return nil
}

// PersistProcesses saves PM2's process list so the server comes back after a
// reboot. Failure is only reported.
func (i *Installer) PersistProcesses(ctx context.Context, srcPath string) bool {
	cmd := runner.Command{Name: i.cfg.Supervisor.Binary, Args: []string{"save"}, Dir: srcPath}
	if !i.run.Run(ctx, cmd) {
		i.log.Warn("Could not save the %s process list; run '%s' yourself to restart the server after a reboot.",
			i.supervisorLabel(), cmd)
		return false
	}
	return true
}
