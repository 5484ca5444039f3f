package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// newFixtureRepo lays out a small repository for indexing.
func newFixtureRepo(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	files := map[string]string{
		"main.go":   "package main\n\nfunc main() {}\n",
		"README.md": "# Fixture Project\n\nA test repository.\n",
		"go.mod":    "module example.com/fixture\n\ngo 1.25\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(root, name), []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	return root
}

func TestIndexCommand_Markdown(t *testing.T) {
	repo := newFixtureRepo(t)

	output, err := executeCommand(t, NewIndexCommand(), repo, "--mode", "quick")
	if err != nil {
		t.Fatalf("Index command failed: %v", err)
	}
	if !strings.Contains(output, "main.go") {
		t.Errorf("Expected entry point in output, got: %s", output)
	}
	if !strings.Contains(output, "README.md") {
		t.Errorf("Expected README in output, got: %s", output)
	}
}

func TestIndexCommand_JSON(t *testing.T) {
	repo := newFixtureRepo(t)

	output, err := executeCommand(t, NewIndexCommand(), repo, "--mode", "quick", "--json")
	if err != nil {
		t.Fatalf("Index command failed: %v", err)
	}

	var index map[string]any
	if err := json.Unmarshal([]byte(output), &index); err != nil {
		t.Fatalf("Output is not valid JSON: %v\n%s", err, output)
	}
}

func TestIndexCommand_WritesOutputFiles(t *testing.T) {
	repo := newFixtureRepo(t)
	outDir := t.TempDir()

	output, err := executeCommand(t, NewIndexCommand(), repo, "--mode", "quick", "--output", outDir)
	if err != nil {
		t.Fatalf("Index command failed: %v", err)
	}
	if !strings.Contains(output, "wrote ") {
		t.Errorf("Expected wrote notices, got: %s", output)
	}

	for _, name := range []string{"PROJECT_INDEX.md", "PROJECT_INDEX.json"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("Expected %s to exist: %v", name, err)
		}
	}
}

func TestIndexCommand_MissingRepo(t *testing.T) {
	_, err := executeCommand(t, NewIndexCommand(), filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("Expected error for missing repository")
	}
}
