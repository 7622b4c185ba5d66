package installer

import (
	"context"
	"path/filepath"

	"github.com/thatoneguy-ian/fvtt5eold/internal/config"
	"github.com/thatoneguy-ian/fvtt5eold/internal/runner"
)

// cloneCommand builds `git clone <url> [dir]` run from workDir.
func cloneCommand(repo config.Repository, workDir string) runner.Command {
	args := []string{"clone", repo.URL}
	if repo.Dir != "" {
		args = append(args, repo.Dir)
	}
	return runner.Command{Name: "git", Args: args, Dir: workDir}
}

// CloneRepositories clones the app into installPath and then the assets into
// the app checkout. It returns the path of the app checkout. If the first clone
// fails the second is never attempted.
//
// Cloning into a directory left by an earlier run fails in git itself; that
// failure is fatal like any other and the operator reruns after cleaning up.
func (i *Installer) CloneRepositories(ctx context.Context, installPath string) (string, error) {
	repos := i.cfg.Repositories

	i.log.Step("\n--- Cloning Repositories ---")
	i.log.Info("Cloning %s source repository... (This may take a moment)", i.cfg.AppName)
	appCmd := cloneCommand(repos.App, installPath)
	if !i.run.Run(ctx, appCmd) {
		return "", commandFailed(StageCloneApp, appCmd)
	}

	srcPath := filepath.Join(installPath, i.cfg.AppDir())
	i.log.Info("Cloning %s image repository... (This is very large and will take a long time)", i.cfg.AppName)
	assetsCmd := cloneCommand(repos.Assets, srcPath)
	if !i.run.Run(ctx, assetsCmd) {
		return "", commandFailed(StageCloneAssets, assetsCmd)
	}

	i.log.Success("✅ Repositories cloned successfully.")
	return srcPath, nil
}
