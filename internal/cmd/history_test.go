package cmd

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/airisdev/airis-agent/internal/confidence"
	"github.com/airisdev/airis-agent/internal/history"
)

// seedHistory writes assessments directly into the store under home.
func seedHistory(t *testing.T, home string, tasks ...string) {
	t.Helper()

	store, err := history.NewStore(filepath.Join(home, "history.db"))
	if err != nil {
		t.Fatalf("Failed to open history store: %v", err)
	}
	defer store.Close()

	for _, task := range tasks {
		_, err := store.Record(context.Background(), history.Assessment{
			Task:            task,
			Complexity:      confidence.ComplexityMedium,
			Score:           0.95,
			Action:          confidence.ActionProceed,
			TokensAllocated: 1000,
		})
		if err != nil {
			t.Fatalf("Failed to seed record: %v", err)
		}
	}
}

func TestHistoryCommand_ListsRecords(t *testing.T) {
	home := t.TempDir()
	t.Setenv("AIRIS_HOME", home)
	seedHistory(t, home, "first task", "second task")

	output, err := executeCommand(t, NewHistoryCommand())
	if err != nil {
		t.Fatalf("History command failed: %v", err)
	}

	if !strings.Contains(output, "first task") || !strings.Contains(output, "second task") {
		t.Errorf("Expected both tasks in output, got: %s", output)
	}
	if !strings.Contains(output, "0.95") {
		t.Errorf("Expected score in output, got: %s", output)
	}
}

func TestHistoryCommand_Empty(t *testing.T) {
	t.Setenv("AIRIS_HOME", t.TempDir())

	output, err := executeCommand(t, NewHistoryCommand())
	if err != nil {
		t.Fatalf("History command failed: %v", err)
	}
	if !strings.Contains(output, "no assessments recorded") {
		t.Errorf("Expected empty-history message, got: %s", output)
	}
}

func TestHistoryCommand_Stats(t *testing.T) {
	home := t.TempDir()
	t.Setenv("AIRIS_HOME", home)
	seedHistory(t, home, "one", "two", "three")

	output, err := executeCommand(t, NewHistoryCommand(), "--stats")
	if err != nil {
		t.Fatalf("History command failed: %v", err)
	}
	if !strings.Contains(output, "proceed") || !strings.Contains(output, "3") {
		t.Errorf("Expected proceed count of 3, got: %s", output)
	}
}

func TestHistoryCommand_Prune(t *testing.T) {
	home := t.TempDir()
	t.Setenv("AIRIS_HOME", home)
	seedHistory(t, home, "recent task")

	output, err := executeCommand(t, NewHistoryCommand(), "--prune")
	if err != nil {
		t.Fatalf("History command failed: %v", err)
	}
	if !strings.Contains(output, "pruned 0 assessment(s)") {
		t.Errorf("Expected recent record to survive pruning, got: %s", output)
	}
}

func TestHistoryCommand_Disabled(t *testing.T) {
	home := t.TempDir()
	t.Setenv("AIRIS_HOME", home)

	configYAML := "log_level: info\nhistory:\n  enabled: false\n"
	if err := os.WriteFile(filepath.Join(home, "config.yaml"), []byte(configYAML), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	_, err := executeCommand(t, NewHistoryCommand())
	if err == nil {
		t.Fatal("Expected error when history is disabled")
	}
	if !strings.Contains(err.Error(), "disabled") {
		t.Errorf("Expected disabled error, got: %v", err)
	}
}
