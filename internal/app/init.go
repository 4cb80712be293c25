// Package app wires configuration into a ready-to-use organizer. Shared by
// the CLI, the terminal shell and the desktop shell.
package app

import (
	"fmt"

	"github.com/Nomadcxx/yearsort/internal/activity"
	"github.com/Nomadcxx/yearsort/internal/config"
	"github.com/Nomadcxx/yearsort/internal/database"
	"github.com/Nomadcxx/yearsort/internal/history"
	"github.com/Nomadcxx/yearsort/internal/logging"
	"github.com/Nomadcxx/yearsort/internal/organizer"
	"github.com/Nomadcxx/yearsort/internal/paths"
	"github.com/Nomadcxx/yearsort/internal/transfer"
)

type Options struct {
	// DryRun forces preview mode on top of the config value.
	DryRun bool
	// Console mirrors log lines to stderr. Off for the terminal shell.
	Console bool
	Verbose bool
}

type App struct {
	Config    *config.Config
	Logger    *logging.Logger
	History   *history.Store
	Activity  *activity.Logger   // nil when disabled or unavailable
	Ledger    *database.LedgerDB // nil when disabled or unavailable
	Organizer *organizer.Organizer
}

// Init builds an App from cfg. The activity log and ledger are optional:
// failures opening them are logged and the App runs without them.
func Init(cfg *config.Config, opts Options) (*App, error) {
	lc := cfg.LoggingConfig(opts.Console)
	if opts.Verbose {
		lc.Level = "debug"
	}
	logger, err := logging.New(lc)
	if err != nil {
		return nil, fmt.Errorf("unable to open log: %w", err)
	}

	backend, err := transfer.ParseBackend(cfg.Organize.Backend)
	if err != nil {
		logger.Close()
		return nil, err
	}

	a := &App{
		Config:  cfg,
		Logger:  logger,
		History: history.New(cfg.History.File),
	}

	if cfg.Activity.Enabled {
		a.Activity = openActivity(cfg, logger)
	}
	if cfg.Ledger.Enabled {
		a.Ledger = openLedger(cfg, logger)
	}

	options := []func(*organizer.Organizer){
		organizer.WithDryRun(cfg.Organize.DryRun || opts.DryRun),
		organizer.WithMover(transfer.New(backend)),
		organizer.WithHistory(a.History),
		organizer.WithLogger(logger),
	}
	if a.Activity != nil {
		options = append(options, organizer.WithActivity(a.Activity))
	}
	if a.Ledger != nil {
		options = append(options, organizer.WithLedger(a.Ledger))
	}
	a.Organizer = organizer.NewOrganizer(options...)

	logger.Debug("app", "initialized",
		logging.F("history", a.History.Path()),
		logging.F("backend", backend.String()),
		logging.F("dry_run", a.Organizer.DryRun()),
		logging.F("activity", a.Activity != nil),
		logging.F("ledger", a.Ledger != nil))

	return a, nil
}

// OpenLedger opens the configured ledger for read-only commands.
func OpenLedger(cfg *config.Config) (*database.LedgerDB, error) {
	path, err := cfg.LedgerPath()
	if err != nil {
		return nil, fmt.Errorf("unable to get ledger path: %w", err)
	}
	return database.OpenPath(path)
}

func openActivity(cfg *config.Config, logger *logging.Logger) *activity.Logger {
	dir, err := paths.ActivityDir()
	if err != nil {
		logger.Warn("app", "activity log disabled", logging.F("error", err.Error()))
		return nil
	}
	act, err := activity.NewLogger(dir)
	if err != nil {
		logger.Warn("app", "activity log disabled", logging.F("error", err.Error()))
		return nil
	}
	if cfg.Activity.RetentionDays > 0 {
		if err := act.PruneOld(cfg.Activity.RetentionDays); err != nil {
			logger.Warn("app", "unable to prune activity logs", logging.F("error", err.Error()))
		}
	}
	return act
}

func openLedger(cfg *config.Config, logger *logging.Logger) *database.LedgerDB {
	db, err := OpenLedger(cfg)
	if err != nil {
		logger.Warn("app", "move ledger disabled", logging.F("error", err.Error()))
		return nil
	}
	return db
}

// Close releases the activity log, ledger and log file.
func (a *App) Close() error {
	var firstErr error
	if a.Activity != nil {
		if err := a.Activity.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if a.Ledger != nil {
		if err := a.Ledger.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if err := a.Logger.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
