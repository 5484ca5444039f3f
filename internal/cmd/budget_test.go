package cmd

import (
	"strings"
	"testing"
)

func TestBudgetCommand(t *testing.T) {
	output, err := executeCommand(t, NewBudgetCommand())
	if err != nil {
		t.Fatalf("Budget command failed: %v", err)
	}

	for _, want := range []string{"COMPLEXITY", "simple", "200", "medium", "1000", "complex", "2500"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in output, got: %s", want, output)
		}
	}

	// Rows are ordered by ascending allocation
	if strings.Index(output, "simple") > strings.Index(output, "medium") ||
		strings.Index(output, "medium") > strings.Index(output, "complex") {
		t.Errorf("Expected simple, medium, complex order, got: %s", output)
	}
}
