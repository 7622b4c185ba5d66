package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thatoneguy-ian/fvtt5eold/internal/runner/runnertest"
)

func runCLI(t *testing.T, rec *runnertest.Recorder, stdin string, args ...string) (int, string) {
	t.Helper()
	color.NoColor = true

	rootCmd, opts := newRootCmd(rec, strings.NewReader(stdin))
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	return execute(rootCmd, opts), out.String()
}

func TestExecuteSuccess(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "srv")
	rec := &runnertest.Recorder{}

	code, out := runCLI(t, rec, "", "--install-dir", dir)

	assert.Equal(t, exitOK, code)
	assert.DirExists(t, dir)
	assert.True(t, rec.Ran("pm2 start npm --name 5etools -- run serve:dev"))
	assert.Contains(t, out, "Setup Complete!")
}

func TestExecutePromptsWithoutFlag(t *testing.T) {
	chdir(t, t.TempDir())
	rec := &runnertest.Recorder{}

	code, out := runCLI(t, rec, "\n")

	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, "Enter the directory where you want to install 5etools (e.g., ./5etools-server): ")
	assert.DirExists(t, "5etools-server")
}

func TestExecuteFatalStepExitsOne(t *testing.T) {
	rec := (&runnertest.Recorder{}).Fail("git --version")

	code, out := runCLI(t, rec, "")

	assert.Equal(t, exitFatal, code)
	assert.Contains(t, out, "git not found.")
	assert.NotContains(t, out, "An unexpected error occurred")
}

func TestExecuteBadConfigIsUnexpected(t *testing.T) {
	rec := &runnertest.Recorder{}

	code, out := runCLI(t, rec, "", "--config", filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Equal(t, exitFatal, code)
	assert.Contains(t, out, "An unexpected error occurred")
	assert.Empty(t, rec.Calls)
}

func TestExecuteConfigOverridesProcessName(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("supervisor:\n  process_name: dnd\n"), 0644))
	rec := &runnertest.Recorder{}

	code, out := runCLI(t, rec, "", "--config", cfgPath, "--install-dir", filepath.Join(t.TempDir(), "srv"))

	assert.Equal(t, exitOK, code)
	assert.True(t, rec.Ran("pm2 start npm --name dnd -- run serve:dev"))
	assert.Contains(t, out, "'pm2 stop dnd' - Stop the server")
}

func TestExecuteRejectsArguments(t *testing.T) {
	code, out := runCLI(t, &runnertest.Recorder{}, "", "extra")

	assert.Equal(t, exitFatal, code)
	assert.Contains(t, out, "unknown command")
}

func TestExecuteDebugFlag(t *testing.T) {
	rec := &runnertest.Recorder{}

	code, out := runCLI(t, rec, "", "--debug", "--install-dir", filepath.Join(t.TempDir(), "srv"))

	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, "[DEBUG] Running command: git clone")
}
