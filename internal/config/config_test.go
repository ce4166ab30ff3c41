package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	cfg, path, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, "info", cfg.SeverityThreshold)
	assert.False(t, cfg.Experimental)
}

func TestLoad_ParsesFile(t *testing.T) {
	dir := t.TempDir()
	content := `severityThreshold: high
experimental: true
detectors:
  - MOVE-REENTRANCY
ignore:
  - rule: MOVE-INT-OVERFLOW
    path: legacy/
    reason: tracked in audit backlog
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644))

	cfg, path, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, FileName), path)
	assert.Equal(t, "high", cfg.SeverityThreshold)
	assert.True(t, cfg.Experimental)
	assert.Equal(t, []string{"MOVE-REENTRANCY"}, cfg.Detectors)
	require.Len(t, cfg.Ignore, 1)
	assert.Equal(t, "MOVE-INT-OVERFLOW", cfg.Ignore[0].Rule)
}

func TestLoad_SearchesUpwards(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, FileName), []byte("severityThreshold: medium\n"), 0o644))

	cfg, path, err := Load(nested)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, FileName), path)
	assert.Equal(t, "medium", cfg.SeverityThreshold)
}

func TestLoad_MalformedFileFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("severityThreshold: [\n"), 0o644))
	_, _, err := Load(dir)
	require.Error(t, err)
}

func TestWriteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	want := Default()
	want.SeverityThreshold = "low"
	_, err := Write(dir, want)
	require.NoError(t, err)

	got, _, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
