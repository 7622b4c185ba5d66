// Package runnertest provides a recording Executor for tests.
package runnertest

import (
	"context"
	"errors"
	"strings"

	"github.com/thatoneguy-ian/fvtt5eold/internal/runner"
)

// ErrFailed is the error returned for commands marked as failing.
var ErrFailed = errors.New("exit status 1")

// Recorder records every command it is asked to execute and fails the ones
// whose rendered form starts with a registered prefix.
type Recorder struct {
	Calls []runner.Command

	failures []string
	hooks    map[string]func(runner.Command)
}

// Fail makes every command whose String() starts with prefix return ErrFailed.
func (r *Recorder) Fail(prefix string) *Recorder {
	r.failures = append(r.failures, prefix)
	return r
}

// On registers fn to run when a command starting with prefix executes, before
// the failure check. Useful to simulate side effects such as a clone creating
// a directory.
func (r *Recorder) On(prefix string, fn func(runner.Command)) *Recorder {
	if r.hooks == nil {
		r.hooks = make(map[string]func(runner.Command))
	}
	r.hooks[prefix] = fn
	return r
}

// Execute implements runner.Executor.
func (r *Recorder) Execute(_ context.Context, cmd runner.Command, _ runner.Streams) error {
	r.Calls = append(r.Calls, cmd)
	line := cmd.String()
	for prefix, fn := range r.hooks {
		if strings.HasPrefix(line, prefix) {
			fn(cmd)
		}
	}
	for _, prefix := range r.failures {
		if strings.HasPrefix(line, prefix) {
			return ErrFailed
		}
	}
	return nil
}

// Lines returns the rendered commands in call order.
func (r *Recorder) Lines() []string {
	out := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		out[i] = c.String()
	}
	return out
}

// Ran reports whether any executed command started with prefix.
func (r *Recorder) Ran(prefix string) bool {
	for _, l := range r.Lines() {
		if strings.HasPrefix(l, prefix) {
			return true
		}
	}
	return false
}

// Find returns the first executed command starting with prefix.
func (r *Recorder) Find(prefix string) (runner.Command, bool) {
	for _, c := range r.Calls {
		if strings.HasPrefix(c.String(), prefix) {
			return c, true
		}
	}
	return runner.Command{}, false
}
