package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// GetAirisHome returns the airis home directory.
// Priority order:
//  1. AIRIS_HOME environment variable (if set)
//  2. Project root detected by a .airis-root marker file, walking up
//     from the working directory
//  3. Current working directory (fallback)
//
// The .airis directory under the resolved root is created if missing.
func GetAirisHome() (string, error) {
	if home := os.Getenv("AIRIS_HOME"); home != "" {
		if err := os.MkdirAll(home, 0755); err != nil {
			return "", fmt.Errorf("create airis home directory: %w", err)
		}
		return home, nil
	}

	root, err := findProjectRoot()
	if err != nil || root == "" {
		root, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
	}

	airisHome := filepath.Join(root, ".airis")
	if err := os.MkdirAll(airisHome, 0755); err != nil {
		return "", fmt.Errorf("create airis home directory: %w", err)
	}

	return airisHome, nil
}

// findProjectRoot walks up from the working directory looking for a
// .airis-root marker file or an existing .airis directory.
func findProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	current := cwd
	for {
		markerPath := filepath.Join(current, ".airis-root")
		if _, err := os.Stat(markerPath); err == nil {
			return current, nil
		}

		homePath := filepath.Join(current, ".airis")
		if info, err := os.Stat(homePath); err == nil && info.IsDir() {
			return current, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", nil // Reached filesystem root without a marker
		}
		current = parent
	}
}
