/*
Package cli implements the toolmatch command-line interface.

Each command is constructed by its own NewXCmd function for modularity and
testability. Commands share the app helper, which wires configuration,
logging, the catalog store, the cache and the recommendation service.
*/
package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/khanglvm/toolmatch/internal/cache"
	"github.com/khanglvm/toolmatch/internal/catalog"
	"github.com/khanglvm/toolmatch/internal/config"
	"github.com/khanglvm/toolmatch/internal/logging"
	"github.com/khanglvm/toolmatch/internal/recommend"
	"github.com/khanglvm/toolmatch/internal/scoring"
)

// app bundles the wired components a command needs.
type app struct {
	cfg      *config.Config
	logger   zerolog.Logger
	provider *catalog.SQLiteProvider
	store    cache.Store
	scorer   *scoring.Scorer
	service  *recommend.Service
}

// setupApp builds the full component graph from the config file referenced
// by the root --config flag.
func setupApp(cmd *cobra.Command) (*app, error) {
	configPath, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	provider, err := catalog.OpenSQLite(cfg.Database.Path, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}

	store, err := openStore(cfg, logger)
	if err != nil {
		provider.Close()
		return nil, err
	}

	tables, err := config.LoadScoringTables(cfg.Scoring.TablesPath)
	if err != nil {
		provider.Close()
		store.Close()
		return nil, err
	}

	scorer, err := scoring.NewScorer(tables)
	if err != nil {
		provider.Close()
		store.Close()
		return nil, fmt.Errorf("failed to build scorer: %w", err)
	}

	return &app{
		cfg:      cfg,
		logger:   logger,
		provider: provider,
		store:    store,
		scorer:   scorer,
		service:  recommend.NewService(provider, store, scorer, logger),
	}, nil
}

// openStore selects the cache backend from config.
func openStore(cfg *config.Config, logger zerolog.Logger) (cache.Store, error) {
	switch cfg.Cache.Backend {
	case "badger":
		store, err := cache.OpenBadger(cfg.Cache.Dir)
		if err != nil {
			return nil, fmt.Errorf("failed to open badger cache: %w", err)
		}
		return store, nil
	default:
		return cache.NewMemoryStore(), nil
	}
}

// Close releases the app's resources.
func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		a.logger.Warn().Err(err).Msg("failed to close cache store")
	}
	if err := a.provider.Close(); err != nil {
		a.logger.Warn().Err(err).Msg("failed to close catalog")
	}
}
