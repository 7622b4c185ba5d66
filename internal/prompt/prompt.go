// Package prompt asks the operator where to install.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Prompter reads answers from in and writes questions to out.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Prompter over the given streams.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// InstallPath asks for the install directory and returns it as an absolute
// path. A blank answer, or end of input before any answer, selects defaultPath.
func (p *Prompter) InstallPath(appName, defaultPath string) (string, error) {
	_, _ = fmt.Fprintf(p.out, "Enter the directory where you want to install %s (e.g., %s): ", appName, defaultPath)

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read install path: %w", err)
	}
	return ResolveInstallPath(line, defaultPath)
}

// ResolveInstallPath applies defaultPath to a blank answer and makes the result
// absolute against the current directory.
func ResolveInstallPath(answer, defaultPath string) (string, error) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		answer = defaultPath
	}
	abs, err := filepath.Abs(answer)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %q: %w", answer, err)
	}
	return abs, nil
}
