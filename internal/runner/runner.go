// Package runner spawns external commands for the installer.
//
// Run streams a child's output straight to the terminal and reports
// success or failure. It logs the failing command but never terminates
// the process; whether a failure is fatal is the caller's decision.
package runner

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/thatoneguy-ian/fvtt5eold/internal/logger"
)

// Command is one external invocation.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
}

// String renders the command the way an operator would type it.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, quote(c.Name))
	for _, a := range c.Args {
		parts = append(parts, quote(a))
	}
	return strings.Join(parts, " ")
}

func quote(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\"'") {
		return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
	}
	return s
}

// Streams are the standard streams handed to a child process.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Executor starts a command and waits for it. A nil error means exit status 0.
type Executor interface {
	Execute(ctx context.Context, cmd Command, streams Streams) error
}

// ExecExecutor runs commands with os/exec.
type ExecExecutor struct{}

// Execute implements Executor.
func (ExecExecutor) Execute(ctx context.Context, c Command, streams Streams) error {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	cmd.Stdin = streams.Stdin
	cmd.Stdout = streams.Stdout
	cmd.Stderr = streams.Stderr
	return cmd.Run()
}

// Runner wraps an Executor with the installer's logging contract.
type Runner struct {
	exec    Executor
	log     *logger.Logger
	streams Streams
}

// New returns a Runner that inherits the terminal's standard streams.
func New(exec Executor, log *logger.Logger) *Runner {
	if exec == nil {
		exec = ExecExecutor{}
	}
	return &Runner{
		exec:    exec,
		log:     log,
		streams: Streams{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr},
	}
}

// WithStreams returns a copy of r that wires children to the given streams.
func (r *Runner) WithStreams(s Streams) *Runner {
	cp := *r
	cp.streams = s
	return &cp
}

// Run executes cmd with output streamed to the terminal. On failure it logs the
// command and the underlying error and returns false.
func (r *Runner) Run(ctx context.Context, cmd Command) bool {
	r.log.Debug("Running command: %s (dir=%q)", cmd, cmd.Dir)
	if err := r.exec.Execute(ctx, cmd, r.streams); err != nil {
		r.log.Error("❌ Error executing command: %s", cmd)
		r.log.Error("%v", err)
		return false
	}
	return true
}

// Probe runs name with args and all output discarded, reporting whether it
// exited successfully. A missing executable is simply "not found".
func (r *Runner) Probe(ctx context.Context, name string, args ...string) bool {
	cmd := Command{Name: name, Args: args}
	err := r.exec.Execute(ctx, cmd, Streams{Stdout: io.Discard, Stderr: io.Discard})
	if err != nil {
		r.log.Debug("Probe %s failed: %v", cmd, err)
		return false
	}
	return true
}
