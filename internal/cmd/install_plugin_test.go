package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInstallPluginCommand_CreatesSettings(t *testing.T) {
	settingsPath := filepath.Join(t.TempDir(), "settings.json")

	output, err := executeCommand(t, NewInstallPluginCommand(), "--settings-path", settingsPath)
	if err != nil {
		t.Fatalf("Install-plugin command failed: %v", err)
	}
	if !strings.Contains(output, "Updated") {
		t.Errorf("Expected update message, got: %s", output)
	}

	data, err := os.ReadFile(settingsPath)
	if err != nil {
		t.Fatalf("Failed to read settings file: %v", err)
	}
	var settings map[string]any
	if err := json.Unmarshal(data, &settings); err != nil {
		t.Fatalf("Settings file is not valid JSON: %v", err)
	}
	plugins, ok := settings["enabledPlugins"].([]any)
	if !ok || len(plugins) != 1 || plugins[0] != "airis-agent@agiletec" {
		t.Errorf("Expected airis-agent@agiletec enabled, got: %v", settings["enabledPlugins"])
	}
}

func TestInstallPluginCommand_Idempotent(t *testing.T) {
	settingsPath := filepath.Join(t.TempDir(), "settings.json")

	if _, err := executeCommand(t, NewInstallPluginCommand(), "--settings-path", settingsPath); err != nil {
		t.Fatalf("First run failed: %v", err)
	}
	output, err := executeCommand(t, NewInstallPluginCommand(), "--settings-path", settingsPath)
	if err != nil {
		t.Fatalf("Second run failed: %v", err)
	}
	if !strings.Contains(output, "No changes needed") {
		t.Errorf("Expected idempotent message, got: %s", output)
	}
}

func TestInstallPluginCommand_CustomMarketplace(t *testing.T) {
	settingsPath := filepath.Join(t.TempDir(), "settings.json")

	_, err := executeCommand(t, NewInstallPluginCommand(),
		"--settings-path", settingsPath,
		"--marketplace", "acme", "--repo", "acme/tools", "--plugin", "gate")
	if err != nil {
		t.Fatalf("Install-plugin command failed: %v", err)
	}

	data, err := os.ReadFile(settingsPath)
	if err != nil {
		t.Fatalf("Failed to read settings file: %v", err)
	}
	if !strings.Contains(string(data), "gate@acme") || !strings.Contains(string(data), "acme/tools") {
		t.Errorf("Expected custom marketplace entries, got: %s", data)
	}
}
