package doctor

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunHealthyInstall(t *testing.T) {
	t.Setenv("AIRIS_HOME", filepath.Join(t.TempDir(), "airis-home"))

	results := Run()

	if len(results.Checks) != 4 {
		t.Fatalf("checks = %d, want 4", len(results.Checks))
	}
	for _, check := range results.Checks {
		if !check.Passed {
			t.Errorf("check %q failed: %v", check.Name, check.Details)
		}
	}
	if !results.Passed {
		t.Error("Passed = false, want true for healthy install")
	}
}

func TestRunReportsInvalidConfig(t *testing.T) {
	home := filepath.Join(t.TempDir(), "airis-home")
	t.Setenv("AIRIS_HOME", home)
	if err := os.MkdirAll(home, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(home, "config.yaml"), []byte("log_level: shouty\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	results := Run()

	if results.Passed {
		t.Error("Passed = true, want false with invalid config")
	}

	var configCheck *Check
	for i := range results.Checks {
		if results.Checks[i].Name == "configuration" {
			configCheck = &results.Checks[i]
		}
	}
	if configCheck == nil {
		t.Fatal("configuration check missing")
	}
	if configCheck.Passed {
		t.Error("configuration check passed despite invalid log level")
	}
}

func TestRunHistoryDisabledIsOptional(t *testing.T) {
	home := filepath.Join(t.TempDir(), "airis-home")
	t.Setenv("AIRIS_HOME", home)
	if err := os.MkdirAll(home, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	configContent := "history:\n  enabled: false\n  db_path: history.db\n"
	if err := os.WriteFile(filepath.Join(home, "config.yaml"), []byte(configContent), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	results := Run()

	for _, check := range results.Checks {
		if check.Name == "assessment history" && !check.Passed {
			t.Errorf("history check failed with history disabled: %v", check.Details)
		}
	}
}
