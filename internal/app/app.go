package app

import (
	"context"
	"net/http"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/drafty/external/draftapi"
	"github.com/riskibarqy/drafty/internal/config"
	"github.com/riskibarqy/drafty/internal/infrastructure/export"
	"github.com/riskibarqy/drafty/internal/infrastructure/repository/sqldb"
	"github.com/riskibarqy/drafty/internal/infrastructure/staging"
	idgen "github.com/riskibarqy/drafty/internal/platform/id"
	"github.com/riskibarqy/drafty/internal/platform/logging"
	"github.com/riskibarqy/drafty/internal/platform/metrics"
	"github.com/riskibarqy/drafty/internal/usecase"
)

// NewLogger builds the process logger: JSON to stdout, teed to the rotating
// log file when one is configured.
func NewLogger(cfg config.Config) *logging.Logger {
	return logging.New(cfg.Log.Level, logging.FileOptions{
		Path:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})
}

// LoadConfig reads the config file named by DRAFTY_CONFIG and marks any
// failure as ErrConfig.
func LoadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, crerr.Mark(err, usecase.ErrConfig)
	}
	return cfg, nil
}

// OpenStore opens the configured relational store. The caller closes it.
func OpenStore(ctx context.Context, cfg config.Config, logger *logging.Logger) (*sqlx.DB, error) {
	db, err := sqldb.Open(ctx, cfg.Storage.Driver, cfg.Storage.DSN)
	if err != nil {
		return nil, crerr.Mark(crerr.Wrap(err, "open store"), usecase.ErrStorage)
	}
	logger.InfoContext(ctx, "store opened", "driver", cfg.Storage.Driver, "database", sqldb.DescribeDSN(cfg.Storage.DSN))
	return db, nil
}

// Run performs one pipeline pass under a fresh run id and writes the run
// metrics text file when configured.
func Run(ctx context.Context, cfg config.Config, logger *logging.Logger, refresh bool) (usecase.RunResult, error) {
	runID, err := idgen.NewUUIDGenerator().NewID()
	if err != nil {
		return usecase.RunResult{}, err
	}
	logger = logger.With("run_id", runID)

	db, err := OpenStore(ctx, cfg, logger)
	if err != nil {
		return usecase.RunResult{}, err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.WarnContext(ctx, "close store", "error", closeErr)
		}
	}()

	collector := metrics.New()
	pipeline := NewPipeline(cfg, db, collector, logger)

	result, runErr := pipeline.Run(ctx, usecase.RunOptions{
		Refresh:    refresh,
		LeagueCode: cfg.LeagueCode,
		Brackets:   cfg.BracketList,
	})
	if err := collector.WriteTextfile(cfg.Metrics.Textfile, time.Now()); err != nil {
		logger.WarnContext(ctx, "write metrics textfile", "path", cfg.Metrics.Textfile, "error", err)
	}
	return result, runErr
}

// NewPipeline wires the fetcher, staging store, repositories and exporters
// around one database handle.
func NewPipeline(cfg config.Config, db *sqlx.DB, observer usecase.RunObserver, logger *logging.Logger) *usecase.PipelineService {
	store := staging.NewStore(cfg.Paths.StagingDir, cfg.Paths.StateDir)
	stagingCSV := export.NewWriter(cfg.Paths.StagingDir)
	exports := export.NewWriter(cfg.Paths.ExportDir)

	client := draftapi.NewClient(draftapi.ClientConfig{
		HTTPClient: &http.Client{Timeout: cfg.API.Timeout},
		BaseURL:    cfg.API.BaseURL,
		Timeout:    cfg.API.Timeout,
		UserAgent:  cfg.API.UserAgent,
		Logger:     logger,
	}, store)

	leagueRepo := sqldb.NewLeagueRepository(db)
	playerRepo := sqldb.NewPlayerRepository(db)
	txRepo := sqldb.NewTransactionRepository(db)
	historyRepo := sqldb.NewHistoryRepository(db)
	pickRepo := sqldb.NewPickRepository(db)
	statsRepo := sqldb.NewLiveStatsRepository(db)

	loader := usecase.NewLoaderService(store, stagingCSV, usecase.LoaderRepositories{
		League:      leagueRepo,
		Player:      playerRepo,
		Transaction: txRepo,
		History:     historyRepo,
		Pick:        pickRepo,
		LiveStats:   statsRepo,
	}, logger)
	transform := usecase.NewTransformService(usecase.TransformRepositories{
		League:      leagueRepo,
		Player:      playerRepo,
		Transaction: txRepo,
		History:     historyRepo,
		Pick:        pickRepo,
		LiveStats:   statsRepo,
		Derived:     sqldb.NewDerivedRepository(db),
	}, exports, logger)

	return usecase.NewPipelineService(client, sqldb.NewSchema(db), loader, transform, observer, logger)
}
