// Package doctor runs installation health checks for airis.
package doctor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/airisdev/airis-agent/internal/config"
	"github.com/airisdev/airis-agent/internal/history"
)

// Check is the outcome of one health check.
type Check struct {
	Name    string   `json:"name"`
	Passed  bool     `json:"passed"`
	Details []string `json:"details,omitempty"`
}

// Results aggregates all checks from one doctor run.
type Results struct {
	Checks []Check `json:"checks"`
	Passed bool    `json:"passed"`
}

// Run executes all health checks: home directory resolution, config
// validity, history database access, and plugin configuration presence.
// Optional concerns (plugin not installed, history disabled) pass with an
// explanatory detail rather than failing the run.
func Run() Results {
	var results Results

	home, homeCheck := checkHome()
	results.Checks = append(results.Checks, homeCheck)

	cfg, configCheck := checkConfig(home)
	results.Checks = append(results.Checks, configCheck)

	results.Checks = append(results.Checks, checkHistory(home, cfg))
	results.Checks = append(results.Checks, checkPluginSettings())

	results.Passed = true
	for _, check := range results.Checks {
		if !check.Passed {
			results.Passed = false
			break
		}
	}

	return results
}

// checkHome resolves the airis home and verifies it is writable.
func checkHome() (string, Check) {
	check := Check{Name: "airis home directory"}

	home, err := config.GetAirisHome()
	if err != nil {
		check.Details = []string{fmt.Sprintf("cannot resolve home: %v", err)}
		return "", check
	}

	probe := filepath.Join(home, ".doctor-probe")
	if err := os.WriteFile(probe, nil, 0644); err != nil {
		check.Details = []string{fmt.Sprintf("home %s is not writable: %v", home, err)}
		return home, check
	}
	os.Remove(probe)

	check.Passed = true
	check.Details = []string{home}
	return home, check
}

// checkConfig loads and validates config.yaml from home.
func checkConfig(home string) (*config.Config, Check) {
	check := Check{Name: "configuration"}

	if home == "" {
		check.Details = []string{"skipped: home directory unavailable"}
		return nil, check
	}

	cfg, err := config.LoadConfigFromDir(home)
	if err != nil {
		check.Details = []string{fmt.Sprintf("config invalid: %v", err)}
		return nil, check
	}

	check.Passed = true
	check.Details = []string{fmt.Sprintf("log level %s, history enabled: %v", cfg.LogLevel, cfg.History.Enabled)}
	return cfg, check
}

// checkHistory verifies the history database opens when enabled.
func checkHistory(home string, cfg *config.Config) Check {
	check := Check{Name: "assessment history"}

	if cfg == nil {
		check.Details = []string{"skipped: configuration unavailable"}
		return check
	}
	if !cfg.History.Enabled {
		check.Passed = true
		check.Details = []string{"history disabled (optional)"}
		return check
	}

	store, err := history.NewStore(cfg.HistoryDBPath(home))
	if err != nil {
		check.Details = []string{fmt.Sprintf("cannot open history database: %v", err)}
		return check
	}
	store.Close()

	check.Passed = true
	check.Details = []string{cfg.HistoryDBPath(home)}
	return check
}

// checkPluginSettings reports whether the Claude settings file exists.
// Absence is not a failure: the plugin is optional.
func checkPluginSettings() Check {
	check := Check{Name: "Claude plugin settings", Passed: true}

	home, err := os.UserHomeDir()
	if err != nil {
		check.Details = []string{"cannot resolve user home (optional check)"}
		return check
	}

	settingsPath := filepath.Join(home, ".claude", "settings.json")
	if _, err := os.Stat(settingsPath); err != nil {
		check.Details = []string{"no Claude settings found (optional); run airis install-plugin"}
		return check
	}

	check.Details = []string{settingsPath}
	return check
}
