package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

// setConfigFile sets the global configFile variable and registers a cleanup to restore it.
func setConfigFile(t *testing.T, cfgPath string) {
	t.Helper()
	oldConfigFile := configFile
	configFile = cfgPath
	t.Cleanup(func() { configFile = oldConfigFile })
}

// setupBrokenConfigFile creates a config file with invalid YAML that causes Load() to fail.
func setupBrokenConfigFile(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("{{invalid yaml content"), 0644))
	return cfgPath
}

// setupConfigFile writes a config that keeps every store under a temporary
// directory and serves the embedded sample content. learning holds extra
// lines of the learning section. It returns the directory.
func setupConfigFile(t *testing.T, learning string) string {
	t.Helper()
	tmpDir := t.TempDir()
	cfg := fmt.Sprintf(`identity:
  directory: %[1]s/identity
learning:
  directory: %[1]s/learning
%[2]s
database:
  driver: sqlite
  path: %[1]s/examprep.db
outputs:
  report_directory: %[1]s/reports
`, filepath.ToSlash(tmpDir), learning)
	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0644))
	setConfigFile(t, cfgPath)
	return tmpDir
}

// execute runs the root command with args against the current configFile
// and returns what it printed.
func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	// The root command resets configFile when it registers its flags.
	args = append(args, "--config", configFile)

	var stdout bytes.Buffer
	rootCommand := newRootCommand()
	rootCommand.SetArgs(args)
	rootCommand.SetIn(strings.NewReader(input))
	rootCommand.SetOut(&stdout)
	rootCommand.SetErr(&stdout)
	err := rootCommand.Execute()
	return stdout.String(), err
}

func login(t *testing.T, email string) {
	t.Helper()
	_, err := execute(t, "", "login", "--email", email, "--password", "secret")
	require.NoError(t, err)
}
