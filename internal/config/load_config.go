package config

import (
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default returns the settings for a stock 5etools install.
func Default() Config {
	return Config{
		AppName:     "5etools",
		DefaultPath: "./5etools-server",
		URL:         "http://localhost:5050/index.html",
		Prerequisites: []Tool{
			{Name: "git", VersionArgs: []string{"--version"}, InstallURL: "https://git-scm.com/downloads"},
			{Name: "npm", VersionArgs: []string{"--version"}, InstallURL: "https://nodejs.org/en/download"},
		},
		Repositories: Repositories{
			App:    Repository{URL: "https://github.com/5etools-mirror-3/5etools-src.git"},
			Assets: Repository{URL: "https://github.com/5etools-mirror-3/5etools-img.git", Dir: "img"},
		},
		NPM: NPM{
			Binary:      "npm",
			BuildScript: "build:sw:prod",
		},
		Supervisor: Supervisor{
			Binary:      "pm2",
			Package:     "pm2",
			ProcessName: "5etools",
			ServeScript: "serve:dev",
		},
	}
}

// LoadConfig returns the default settings overlaid with the YAML file at
// configFile. An empty configFile returns the defaults unchanged.
//
// Only the keys present in the file replace defaults, so a file containing just
//
//	supervisor:
//	  process_name: dnd
//
// renames the PM2 process and keeps everything else.
func LoadConfig(configFile string) (Config, error) {
	cfg := Default()
	if configFile == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(configFile)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read %s: %w", configFile, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal %s: %w", configFile, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", configFile, err)
	}
	return cfg, nil
}

// Validate reports the first required field that is empty.
func (c Config) Validate() error {
	var missing []string
	check := func(name, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}

	check("app_name", c.AppName)
	check("default_path", c.DefaultPath)
	check("repositories.app.url", c.Repositories.App.URL)
	check("repositories.assets.url", c.Repositories.Assets.URL)
	check("npm.binary", c.NPM.Binary)
	check("supervisor.binary", c.Supervisor.Binary)
	check("supervisor.process_name", c.Supervisor.ProcessName)
	check("supervisor.serve_script", c.Supervisor.ServeScript)
	for i, t := range c.Prerequisites {
		check(fmt.Sprintf("prerequisites[%d].name", i), t.Name)
	}

	if len(missing) > 0 {
		return errors.New("missing " + strings.Join(missing, ", "))
	}
	if c.AppDir() == "" {
		return errors.New("cannot derive a checkout directory from repositories.app.url")
	}
	return nil
}

// repoBase mirrors how git names a clone: the last path element without ".git".
func repoBase(url string) string {
	url = strings.TrimRight(url, "/")
	if i := strings.LastIndex(url, ":"); i >= 0 && !strings.Contains(url[i:], "/") {
		// scp-like "host:repo.git"
		url = url[i+1:]
	}
	base := strings.TrimSuffix(path.Base(url), ".git")
	if base == "." || base == "/" {
		return ""
	}
	return base
}
