package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xab-mack/moveguard/internal/model"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := &cobra.Command{Use: "moveguard"}
	AddCommands(root)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestScanCommand_JSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pool.move")
	require.NoError(t, os.WriteFile(path, []byte("let total = a + b;"), 0o644))

	out, err := runCommand(t, "scan", path, "--format", "json")
	require.NoError(t, err)

	var findings []model.Finding
	require.NoError(t, json.Unmarshal([]byte(out), &findings))
	require.Len(t, findings, 1)
	assert.Equal(t, "MOVE-INT-OVERFLOW", findings[0].RuleID)
	assert.Equal(t, 1, findings[0].Location.Line)
}

func TestScanCommand_UnknownFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pool.move")
	require.NoError(t, os.WriteFile(path, []byte("let x = 1;"), 0o644))

	_, err := runCommand(t, "scan", path, "--format", "csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestScanCommand_FailOn(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pool.move")
	require.NoError(t, os.WriteFile(path, []byte("let total = a + b;"), 0o644))

	_, err := runCommand(t, "scan", path, "--format", "json", "--fail-on", "high")
	require.Error(t, err)

	_, err = runCommand(t, "scan", path, "--format", "json", "--fail-on", "critical")
	require.NoError(t, err)
}

func TestScanCommand_MissingPath(t *testing.T) {
	_, err := runCommand(t, "scan", filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
}

func TestRulesListCommand(t *testing.T) {
	out, err := runCommand(t, "rules", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "MOVE-REENTRANCY")
	assert.Contains(t, out, "MOVE-ACCESS-CONTROL")
	assert.Contains(t, out, "(experimental)")
}
