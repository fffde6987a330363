package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoro11031/fix-result-types/pkg/version"
)

const source = "const result = await saveProfileAPI(caseId, payload)\n"

func execute(t *testing.T, args ...string) error {
	t.Helper()
	baseDir, configPath, verbose = ".", "", false
	dryRun, interactive, backup = false, false, false
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func writeSource(t *testing.T, dir, rel string) string {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(source), 0644))
	return path
}

func TestRootCommandPatchesFile(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "src/one.tsx")

	require.NoError(t, execute(t, "--dir", dir, "src/one.tsx"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "const result = await saveProfileAPI(caseId, payload) as { success: boolean; error?: string }\n", string(data))
}

func TestRootCommandDryRun(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "src/one.tsx")

	require.NoError(t, execute(t, "-C", dir, "--dry-run", "src/one.tsx"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, source, string(data))
}

func TestRootCommandMissingFilesStillSucceeds(t *testing.T) {
	assert.NoError(t, execute(t, "--dir", t.TempDir()))
}

func TestRootCommandRejectsBadConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".fix-result-types.conf"), []byte("BACKUP=perhaps\n"), 0644))

	assert.Error(t, execute(t, "--dir", dir))
}

func TestConfigSetAndUnset(t *testing.T) {
	dir := t.TempDir()
	confPath := filepath.Join(dir, ".fix-result-types.conf")

	require.NoError(t, execute(t, "--dir", dir, "config", "set", "TARGET_FILES", "src/one.tsx,src/two.tsx"))
	data, err := os.ReadFile(confPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "TARGET_FILES=src/one.tsx,src/two.tsx\n")

	require.NoError(t, execute(t, "--dir", dir, "config", "unset", "TARGET_FILES"))
	data, err = os.ReadFile(confPath)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "TARGET_FILES")

	assert.Error(t, execute(t, "--dir", dir, "config", "set", "UNKNOWN", "x"))
}

func TestStatusCommandDoesNotWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "src/one.tsx")

	require.NoError(t, execute(t, "--dir", dir, "status", "src/one.tsx"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, source, string(data))
}

func TestVersionInfo(t *testing.T) {
	info := version.Info()
	assert.True(t, strings.HasPrefix(info, "fix-result-types version "))
	assert.Contains(t, info, version.Version)
}
