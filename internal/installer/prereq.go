package installer

import (
	"context"
	"fmt"
)

// CheckPrerequisites probes every configured tool. The first missing tool is
// reported with install guidance and returned as a fatal error. Nothing on disk
// is touched, so it is safe to call repeatedly.
func (i *Installer) CheckPrerequisites(ctx context.Context) error {
	i.log.Step("--- Checking Prerequisites ---")

	for _, tool := range i.cfg.Prerequisites {
		args := tool.VersionArgs
		if len(args) == 0 {
			args = []string{"--version"}
		}

		if i.run.Probe(ctx, tool.Name, args...) {
			i.log.Success("✅ %s is installed.", tool.Name)
			continue
		}

		i.log.Error("❌ %s not found.", tool.Name)
		if tool.InstallURL != "" {
			i.log.Hint("Please install %s from %s and ensure it's in your system's PATH.", tool.Name, tool.InstallURL)
		} else {
			i.log.Hint("Please install %s and ensure it's in your system's PATH.", tool.Name)
		}
		return fail(StageCheck, fmt.Errorf("%w: %s", ErrPrerequisiteMissing, tool.Name))
	}
	return nil
}
