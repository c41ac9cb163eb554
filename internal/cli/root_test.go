package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecobin-app/ecobin/internal/cli"
)

// setupCLITest isolates the home directory so config and data never touch
// the real one.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("ECOBIN_DATA_DIR", "")
	t.Setenv("ECOBIN_LOG_LEVEL", "error")
	t.Setenv("ECOBIN_HIDE_TIPS", "1")
	return home
}

// execute runs the root command with args and returns combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestLogCmd(t *testing.T) {
	setupCLITest(t)
	dataDir := t.TempDir()

	out, err := execute(t, "log", "--category", "plastic", "--weight", "2", "--data-dir", dataDir)
	require.NoError(t, err)

	assert.Contains(t, out, "Logged")
	assert.Contains(t, out, "Plastic")
	assert.Contains(t, out, "2.0 kg")
	// Plastic at 2kg: footprint 3.00, saved 2.40.
	assert.Contains(t, out, "Environmental impact: 2.40 kg CO2 saved")
	assert.Contains(t, out, "Carbon footprint:")
	assert.NotContains(t, out, "stored offline")
}

func TestLogCmd_Offline(t *testing.T) {
	setupCLITest(t)
	dataDir := t.TempDir()

	out, err := execute(t, "log", "-c", "paper", "-w", "1", "--offline", "--data-dir", dataDir)
	require.NoError(t, err)
	assert.Contains(t, out, "stored offline")
}

func TestLogCmd_InvalidCategory(t *testing.T) {
	setupCLITest(t)
	dataDir := t.TempDir()

	out, err := execute(t, "log", "-c", "styrofoam", "--data-dir", dataDir)
	require.Error(t, err)
	assert.Contains(t, out, "invalid waste category")
}

func TestLogCmd_RequiresCategory(t *testing.T) {
	setupCLITest(t)

	_, err := execute(t, "log", "--weight", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "category")
}

func TestStatsCmd(t *testing.T) {
	setupCLITest(t)
	dataDir := t.TempDir()

	_, err := execute(t, "log", "-c", "plastic", "-w", "2", "--data-dir", dataDir)
	require.NoError(t, err)
	_, err = execute(t, "log", "-c", "organic", "-w", "1.5", "--data-dir", dataDir)
	require.NoError(t, err)

	out, err := execute(t, "stats", "--range", "all", "--data-dir", dataDir)
	require.NoError(t, err)

	assert.Contains(t, out, "Waste Statistics (all)")
	assert.Contains(t, out, "Items logged: 2")
	assert.Contains(t, out, "Total weight: 3.5 kg")
	assert.Contains(t, out, "Plastic: 1")
	assert.Contains(t, out, "Organic Waste: 1")
}

func TestStatsCmd_InvalidRange(t *testing.T) {
	setupCLITest(t)

	out, err := execute(t, "stats", "--range", "decade")
	require.Error(t, err)
	assert.Contains(t, out, "invalid --range")
}

func TestImpactCmd_EmptyStore(t *testing.T) {
	setupCLITest(t)
	dataDir := t.TempDir()

	out, err := execute(t, "impact", "--data-dir", dataDir)
	require.NoError(t, err)

	assert.Contains(t, out, "Environmental Impact (all)")
	assert.Contains(t, out, "Records: 0")
	assert.Contains(t, out, "Carbon saved: 0.00 kg CO2")
}

func TestImpactCmd_AfterLogging(t *testing.T) {
	setupCLITest(t)
	dataDir := t.TempDir()

	_, err := execute(t, "log", "-c", "plastic", "-w", "2", "--data-dir", dataDir)
	require.NoError(t, err)

	out, err := execute(t, "impact", "--range", "week", "--data-dir", dataDir)
	require.NoError(t, err)

	assert.Contains(t, out, "Records: 1")
	assert.Contains(t, out, "Carbon saved: 2.40 kg CO2")
	assert.Contains(t, out, "Water saved: 200 liters")
	assert.Contains(t, out, "Energy saved: 100 kWh")
}

func TestClassifyCmd(t *testing.T) {
	setupCLITest(t)
	dataDir := t.TempDir()

	out, err := execute(t, "classify", "photo.jpg", "--data-dir", dataDir)
	require.NoError(t, err)

	assert.Contains(t, out, "Classification Result")
	assert.Contains(t, out, "Confidence:")
	assert.Contains(t, out, "Disposal suggestions:")
}

func TestSettingsRoundTrip(t *testing.T) {
	setupCLITest(t)
	dataDir := t.TempDir()

	out, err := execute(t, "settings", "get", "--data-dir", dataDir)
	require.NoError(t, err)
	assert.Contains(t, out, "Eco Warrior")
	assert.Contains(t, out, "Nairobi, Kenya")

	out, err = execute(t, "settings", "set", "--name", "Amina", "--theme", "dark", "--data-dir", dataDir)
	require.NoError(t, err)
	assert.Contains(t, out, "Settings saved")

	out, err = execute(t, "settings", "get", "--data-dir", dataDir)
	require.NoError(t, err)
	assert.Contains(t, out, "Amina")
	assert.Contains(t, out, "dark")
}

func TestSettingsSet_InvalidTheme(t *testing.T) {
	setupCLITest(t)
	dataDir := t.TempDir()

	_, err := execute(t, "settings", "set", "--theme", "neon", "--data-dir", dataDir)
	require.Error(t, err)
}

func TestCommunityStatsCmd(t *testing.T) {
	setupCLITest(t)
	dataDir := t.TempDir()

	out, err := execute(t, "community", "stats", "--data-dir", dataDir)
	require.NoError(t, err)

	assert.Contains(t, out, "Members: 1,247")
	assert.Contains(t, out, "Waste diverted: 2.4 tons")
}

func TestCommunityLeaderboardCmd(t *testing.T) {
	setupCLITest(t)
	dataDir := t.TempDir()

	out, err := execute(t, "community", "leaderboard", "--data-dir", dataDir)
	require.NoError(t, err)
	assert.Contains(t, out, "Leaderboard")
	assert.Contains(t, out, "1.")
}

func TestSyncCmd_Offline(t *testing.T) {
	setupCLITest(t)
	dataDir := t.TempDir()

	out, err := execute(t, "sync", "--offline", "--data-dir", dataDir)
	require.NoError(t, err)
	assert.Contains(t, out, "Offline: sync skipped")
}

func TestSyncCmd_DrainsPending(t *testing.T) {
	setupCLITest(t)
	dataDir := t.TempDir()

	_, err := execute(t, "log", "-c", "glass", "-w", "1", "--offline", "--data-dir", dataDir)
	require.NoError(t, err)

	out, err := execute(t, "sync", "--data-dir", dataDir)
	require.NoError(t, err)
	assert.Contains(t, out, "Sync complete: 1 scanned, 1 synced, 0 failed")

	out, err = execute(t, "sync", "--data-dir", dataDir)
	require.NoError(t, err)
	assert.Contains(t, out, "Sync complete: 0 scanned, 0 synced, 0 failed")
}

func TestDashboardCmd_NonInteractiveFallback(t *testing.T) {
	setupCLITest(t)
	dataDir := t.TempDir()

	_, err := execute(t, "log", "-c", "metal", "-w", "0.5", "--data-dir", dataDir)
	require.NoError(t, err)

	// Test output is not a terminal, so the command prints a one-shot
	// weekly overview instead of starting the TUI.
	out, err := execute(t, "dashboard", "--data-dir", dataDir)
	require.NoError(t, err)
	assert.Contains(t, out, "Waste Statistics (week)")
	assert.Contains(t, out, "Environmental Impact (week)")
}

func TestConfigInitCmd(t *testing.T) {
	home := setupCLITest(t)

	out, err := execute(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration initialized successfully")

	configPath := filepath.Join(home, ".ecobin", "config.yaml")
	_, statErr := os.Stat(configPath)
	require.NoError(t, statErr)

	// A second init without --force refuses to overwrite.
	_, err = execute(t, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	_, err = execute(t, "config", "init", "--force")
	require.NoError(t, err)
}

func TestConfigShowCmd(t *testing.T) {
	setupCLITest(t)

	out, err := execute(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Data dir:")
	assert.Contains(t, out, "Log level: error")
}

func TestVersionFlag(t *testing.T) {
	setupCLITest(t)

	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "test")
}
