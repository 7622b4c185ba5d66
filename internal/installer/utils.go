package installer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/tidwall/jsonc"
)

// ProvisionDir makes sure path exists as a directory, creating parents as needed.
func (i *Installer) ProvisionDir(path string) error {
	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		i.log.Debug("Install directory %s already exists", path)
		return nil
	case err == nil:
		return fail(StageProvisionDir, fmt.Errorf("%s exists and is not a directory", path))
	case !errors.Is(err, fs.ErrNotExist):
		return fail(StageProvisionDir, fmt.Errorf("failed to stat %s: %w", path, err))
	}

	i.log.Info("Directory not found. Creating it now...")
	if err := os.MkdirAll(path, 0755); err != nil {
		return fail(StageProvisionDir, fmt.Errorf("mkdir failed: %w", err))
	}
	return nil
}

// packageManifest is the part of package.json the installer looks at.
type packageManifest struct {
	Scripts map[string]string `json:"scripts"`
}

// hasScript reports whether the package.json at manifestPath declares script.
// The manifest is passed through jsonc first so stray comments or trailing
// commas do not turn a readable file into an error.
func hasScript(manifestPath, script string) (bool, error) {
	raw, err := os.ReadFile(manifestPath)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", manifestPath, err)
	}

	var pkg packageManifest
	if err := json.Unmarshal(jsonc.ToJSON(raw), &pkg); err != nil {
		return false, fmt.Errorf("failed to parse %s: %w", manifestPath, err)
	}
	_, ok := pkg.Scripts[script]
	return ok, nil
}
