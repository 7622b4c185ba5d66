package config

// Tool is an external executable that must be reachable on PATH before the
// install begins.
// - Name: executable name (e.g., git).
// - VersionArgs: arguments for a quiet availability probe (e.g., --version).
// - InstallURL: where the operator can download it when the probe fails.
type Tool struct {
	Name        string   `yaml:"name"`
	VersionArgs []string `yaml:"version_args"`
	InstallURL  string   `yaml:"install_url"`
}

// Repository is a git repository to clone.
// - URL: clone URL.
// - Dir: directory name to clone into, relative to the working directory of
//   the clone. Empty means git's default (the repository basename).
type Repository struct {
	URL string `yaml:"url"`
	Dir string `yaml:"dir"`
}

// Repositories holds the two codebases an install materializes. Assets is
// cloned inside the checkout of App.
type Repositories struct {
	App    Repository `yaml:"app"`
	Assets Repository `yaml:"assets"`
}

// NPM holds the package manager invocations run inside the app checkout.
// - Binary: package manager executable.
// - BuildScript: package.json script for the production build (best-effort).
type NPM struct {
	Binary      string `yaml:"binary"`
	BuildScript string `yaml:"build_script"`
}

// Supervisor describes how the server is kept running by PM2.
// - Binary: supervisor executable.
// - Package: npm package installed globally when Binary is missing.
// - ProcessName: fixed logical name of the managed process.
// - ServeScript: package.json script PM2 launches through npm.
type Supervisor struct {
	Binary      string `yaml:"binary"`
	Package     string `yaml:"package"`
	ProcessName string `yaml:"process_name"`
	ServeScript string `yaml:"serve_script"`
}

// Config is the full, immutable description of one install run.
type Config struct {
	AppName       string       `yaml:"app_name"`
	DefaultPath   string       `yaml:"default_path"`
	URL           string       `yaml:"url"`
	Prerequisites []Tool       `yaml:"prerequisites"`
	Repositories  Repositories `yaml:"repositories"`
	NPM           NPM          `yaml:"npm"`
	Supervisor    Supervisor   `yaml:"supervisor"`
}

// AppDir is the name of the app checkout directory inside the install path.
func (c Config) AppDir() string {
	if c.Repositories.App.Dir != "" {
		return c.Repositories.App.Dir
	}
	return repoBase(c.Repositories.App.URL)
}
