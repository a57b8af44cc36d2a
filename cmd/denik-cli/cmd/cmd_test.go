package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestVersionCommand(t *testing.T) {
	assert.Equal(t, "denik-cli v"+version+"\n", run(t, "version"))
}

func TestThemeCSSCommand(t *testing.T) {
	out := run(t, "theme", "css")
	assert.Contains(t, out, ":root")
	assert.Contains(t, out, "--radius: 12px")
}

func TestLangFromEnv(t *testing.T) {
	assert.Equal(t, "cs-CZ", langFromEnv("cs_CZ.UTF-8"))
	assert.Equal(t, "en-US", langFromEnv("en_US@euro"))
	assert.Equal(t, "", langFromEnv(""))
}

func TestTUILogger(t *testing.T) {
	logger, closeLog, err := tuiLogger("")
	require.NoError(t, err)
	logger.Info("dropped")
	closeLog()

	path := filepath.Join(t.TempDir(), "tui.log")
	logger, closeLog, err = tuiLogger(path)
	require.NoError(t, err)
	logger.Info("kept", "email", "jana@example.cz")
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `msg=kept email=jana@example.cz`)
}
