package installer

import (
	"context"
	"path/filepath"

	"github.com/thatoneguy-ian/fvtt5eold/internal/runner"
)

// InstallDependencies runs `npm install` in the app checkout. Failure is fatal.
func (i *Installer) InstallDependencies(ctx context.Context, srcPath string) error {
	i.log.Step("\n--- Setting up Node.js dependencies ---")
	i.log.Info("Running '%s install'... (This may take several minutes)", i.cfg.NPM.Binary)

	cmd := runner.Command{Name: i.cfg.NPM.Binary, Args: []string{"install"}, Dir: srcPath}
	if !i.run.Run(ctx, cmd) {
		return commandFailed(StageInstallDeps, cmd)
	}
	return nil
}

// Build runs the production build script and reports whether it succeeded.
// It never aborts the run: an unoptimized server beats no server.
//
// When package.json can be read and does not declare the script, the build is
// skipped with a warning. An unreadable manifest does not stop the attempt.
func (i *Installer) Build(ctx context.Context, srcPath string) bool {
	script := i.cfg.NPM.BuildScript
	if script == "" {
		i.log.Debug("No build script configured; skipping build")
		return true
	}

	i.log.Info("Building service worker for performance...")

	declared, err := hasScript(filepath.Join(srcPath, "package.json"), script)
	switch {
	case err != nil:
		i.log.Debug("Could not inspect package.json: %v", err)
	case !declared:
		i.log.Warn("package.json has no %q script; skipping build.", script)
		return false
	}

	cmd := runner.Command{Name: i.cfg.NPM.Binary, Args: []string{"run", script}, Dir: srcPath}
	if !i.run.Run(ctx, cmd) {
		i.log.Warn("Build failed; continuing with an unoptimized server.")
		return false
	}
	return true
}
