// Package plugin configures a Claude Code installation to load the Airis
// Agent plugin: it registers the plugin marketplace and enables the
// plugin in the host settings file.
package plugin

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/airisdev/airis-agent/internal/filelock"
)

// Defaults for the hosted plugin.
const (
	DefaultMarketplaceName = "agiletec"
	DefaultRepo            = "agiletec-inc/airis-agent"
	DefaultPluginName      = "airis-agent"
)

// Options configures a plugin installation.
type Options struct {
	// SettingsPath is the Claude settings file. Empty selects
	// ~/.claude/settings.json.
	SettingsPath string

	// MarketplaceName keys the marketplace entry in settings.
	MarketplaceName string

	// Repo is the GitHub repository hosting the plugin marketplace.
	Repo string

	// PluginName is the plugin to enable.
	PluginName string
}

// withDefaults fills unset options.
func (o Options) withDefaults() (Options, error) {
	if o.SettingsPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return o, fmt.Errorf("resolve home directory: %w", err)
		}
		o.SettingsPath = filepath.Join(home, ".claude", "settings.json")
	}
	if o.MarketplaceName == "" {
		o.MarketplaceName = DefaultMarketplaceName
	}
	if o.Repo == "" {
		o.Repo = DefaultRepo
	}
	if o.PluginName == "" {
		o.PluginName = DefaultPluginName
	}
	return o, nil
}

// marketplaceSource mirrors the Claude settings marketplace schema.
type marketplaceSource struct {
	Source struct {
		Source string `json:"source"`
		Repo   string `json:"repo"`
	} `json:"source"`
}

// Ensure configures the settings file so the plugin is auto-installed.
// Returns whether the file changed and a human-readable message. The
// write is atomic; unknown settings keys are preserved.
func Ensure(opts Options) (bool, string, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return false, "", err
	}

	settings, err := loadSettings(opts.SettingsPath)
	if err != nil {
		return false, "", err
	}

	changed := false

	// Register the marketplace.
	marketplaces, ok := settings["extraKnownMarketplaces"].(map[string]any)
	if !ok {
		marketplaces = map[string]any{}
		settings["extraKnownMarketplaces"] = marketplaces
	}

	var want marketplaceSource
	want.Source.Source = "github"
	want.Source.Repo = opts.Repo
	wantJSON, _ := json.Marshal(want)
	currentJSON, _ := json.Marshal(marketplaces[opts.MarketplaceName])
	if string(currentJSON) != string(wantJSON) {
		var entry map[string]any
		json.Unmarshal(wantJSON, &entry)
		marketplaces[opts.MarketplaceName] = entry
		changed = true
	}

	// Enable the plugin.
	identifier := fmt.Sprintf("%s@%s", opts.PluginName, opts.MarketplaceName)
	enabled, err := enabledPlugins(settings)
	if err != nil {
		return false, "", err
	}
	found := false
	for _, item := range enabled {
		if item == identifier {
			found = true
			break
		}
	}
	if !found {
		enabled = append(enabled, identifier)
		changed = true
	}
	settings["enabledPlugins"] = enabled

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return false, "", fmt.Errorf("marshal settings: %w", err)
	}
	if err := filelock.WriteFileAtomic(opts.SettingsPath, append(data, '\n'), 0644); err != nil {
		return false, "", fmt.Errorf("write settings: %w", err)
	}

	if changed {
		return true, fmt.Sprintf("Updated %s with marketplace %q and plugin %q.",
			opts.SettingsPath, opts.MarketplaceName, identifier), nil
	}
	return false, fmt.Sprintf("No changes needed; %q already configured in %s.",
		identifier, opts.SettingsPath), nil
}

// loadSettings reads the settings file, treating a missing or empty file
// as empty settings and malformed JSON as an error.
func loadSettings(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return map[string]any{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	if len(data) == 0 {
		return map[string]any{}, nil
	}

	var settings map[string]any
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid JSON in %s: %w", path, err)
	}
	if settings == nil {
		settings = map[string]any{}
	}
	return settings, nil
}

// enabledPlugins extracts the enabledPlugins list, rejecting non-list
// values.
func enabledPlugins(settings map[string]any) ([]string, error) {
	raw, ok := settings["enabledPlugins"]
	if !ok || raw == nil {
		return nil, nil
	}

	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("enabledPlugins must be a list in Claude settings")
	}

	plugins := make([]string, 0, len(list))
	for _, item := range list {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("enabledPlugins entries must be strings")
		}
		plugins = append(plugins, s)
	}
	return plugins, nil
}
