package cmd

import (
	"fmt"
	"os"

	"github.com/airisdev/airis-agent/internal/confidence"
	"github.com/airisdev/airis-agent/internal/config"
	"github.com/airisdev/airis-agent/internal/history"
	"github.com/airisdev/airis-agent/internal/logger"
)

// runtime bundles the pieces most commands need: resolved home, loaded
// config, a console logger, and a constructed scorer.
type runtime struct {
	home   string
	cfg    *config.Config
	log    *logger.ConsoleLogger
	scorer *confidence.Scorer
}

// newRuntime resolves the airis home, loads config.yaml from it, and
// builds the scorer from the configured weight table.
func newRuntime(logLevel string) (*runtime, error) {
	home, err := config.GetAirisHome()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadConfigFromDir(home)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.MergeWithFlags(&logLevel, nil)
	}

	table, err := cfg.WeightTable()
	if err != nil {
		return nil, err
	}
	scorer, err := confidence.NewScorer(table)
	if err != nil {
		return nil, err
	}

	return &runtime{
		home:   home,
		cfg:    cfg,
		log:    logger.NewConsoleLogger(os.Stderr, cfg.LogLevel),
		scorer: scorer,
	}, nil
}

// openHistory opens the configured history store, or returns nil when
// history is disabled.
func (rt *runtime) openHistory() (*history.Store, error) {
	if !rt.cfg.History.Enabled {
		return nil, nil
	}
	store, err := history.NewStore(rt.cfg.HistoryDBPath(rt.home))
	if err != nil {
		return nil, fmt.Errorf("open history store: %w", err)
	}
	return store, nil
}
