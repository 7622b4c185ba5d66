package prompt

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	return wd
}

func TestInstallPathBlankUsesDefault(t *testing.T) {
	for _, input := range []string{"\n", "   \n", "", "\r\n"} {
		var out bytes.Buffer
		p := New(strings.NewReader(input), &out)

		got, err := p.InstallPath("5etools", "./5etools-server")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(cwd(t), "5etools-server"), got, "input %q", input)
		assert.Equal(t, "Enter the directory where you want to install 5etools (e.g., ./5etools-server): ", out.String())
	}
}

func TestInstallPathUsesAnswer(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "srv")
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"relative", "games/dnd\n", filepath.Join(cwd(t), "games", "dnd")},
		{"relative trailing separator", "games/dnd/\n", filepath.Join(cwd(t), "games", "dnd")},
		{"absolute", abs + "\n", abs},
		{"absolute trailing separator", abs + string(filepath.Separator) + "\n", abs},
		{"no newline before EOF", "games", filepath.Join(cwd(t), "games")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(strings.NewReader(tt.input), &bytes.Buffer{})
			got, err := p.InstallPath("5etools", "./5etools-server")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInstallPathReadsOneLineOnly(t *testing.T) {
	p := New(strings.NewReader("first\nsecond\n"), &bytes.Buffer{})
	got, err := p.InstallPath("5etools", "./5etools-server")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd(t), "first"), got)
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) { return 0, errors.New("tty gone") }

func TestInstallPathReadError(t *testing.T) {
	p := New(brokenReader{}, &bytes.Buffer{})
	_, err := p.InstallPath("5etools", "./5etools-server")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tty gone")
}

func TestResolveInstallPath(t *testing.T) {
	got, err := ResolveInstallPath("", "./x-server")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd(t), "x-server"), got)
	assert.True(t, filepath.IsAbs(got))
}
