package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/ldforge/internal/paths"
)

// testEnv is an isolated config and data directory pair.
type testEnv struct {
	configDir string
	dataDir   string
	outDir    string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv(paths.EnvConfigDir, "")
	t.Setenv(paths.EnvDataDir, "")
	base := t.TempDir()
	env := &testEnv{
		configDir: filepath.Join(base, "config"),
		dataDir:   filepath.Join(base, "data"),
		outDir:    filepath.Join(base, "out"),
	}
	require.NoError(t, os.MkdirAll(env.configDir, 0o755))
	return env
}

// writeConfig writes config.yaml into the environment's config directory.
func (e *testEnv) writeConfig(t *testing.T, yaml string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(e.configDir, configFileExt), []byte(yaml), 0o644))
}

// run executes the CLI in-process with the environment's directories.
func (e *testEnv) run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--config-dir", e.configDir, "--data-dir", e.dataDir}, args...))
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

// writeFile writes content to name inside a fresh temp dir and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
