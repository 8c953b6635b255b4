// Package app assembles the service from configuration: repositories,
// use cases, the passport verifier, and the HTTP server.
package app

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	_ "github.com/lib/pq"

	"github.com/riskibarqy/clubdesk/internal/config"
	"github.com/riskibarqy/clubdesk/internal/domain/player"
	"github.com/riskibarqy/clubdesk/internal/domain/team"
	"github.com/riskibarqy/clubdesk/internal/infrastructure/account/passport"
	cacherepo "github.com/riskibarqy/clubdesk/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/clubdesk/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/clubdesk/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/clubdesk/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/clubdesk/internal/platform/cache"
	idgen "github.com/riskibarqy/clubdesk/internal/platform/id"
	"github.com/riskibarqy/clubdesk/internal/platform/logging"
	"github.com/riskibarqy/clubdesk/internal/platform/resilience"
	"github.com/riskibarqy/clubdesk/internal/usecase"
)

// NewHTTPServer builds the API server. The returned cleanup releases
// resources held by the wiring, currently the database pool.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	teamRepo, playerRepo, cleanup, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		teamRepo = cacherepo.NewTeamRepository(teamRepo, store)
		playerRepo = cacherepo.NewPlayerRepository(playerRepo, store)
	}

	rosterSvc := usecase.NewRosterService(teamRepo, playerRepo, idgen.NewRandomGenerator())
	dashboardSvc := usecase.NewDashboardService(teamRepo, playerRepo)
	importSvc := usecase.NewRosterImportService(rosterSvc, logger)

	verifier := passport.NewClient(passport.ClientConfig{
		HTTPClient:     &http.Client{Timeout: cfg.PassportTimeout},
		BaseURL:        cfg.PassportBaseURL,
		IntrospectPath: cfg.PassportIntrospectPath,
		AdminKey:       cfg.PassportAdminKey,
		CacheTTL:       cfg.PassportCacheTTL,
		CacheMaxSize:   cfg.PassportCacheMaxSize,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.PassportCircuitEnabled,
			FailureThreshold: cfg.PassportCircuitFailureCount,
			OpenTimeout:      cfg.PassportCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.PassportCircuitHalfOpenMaxReq,
		},
		Logger: logger,
	})

	handler := httpapi.NewHandler(rosterSvc, dashboardSvc, importSvc, logger)
	router := httpapi.NewRouter(handler, verifier, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = cleanup()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}

// buildRepositories selects the storage backend: postgres when DB_URL
// is set, seeded in-memory repositories otherwise.
func buildRepositories(cfg config.Config, logger *logging.Logger) (team.Repository, player.Repository, func() error, error) {
	dbURL := strings.TrimSpace(cfg.DBURL)
	if dbURL == "" {
		logger.Info("storage backend selected", "backend", "memory", "reason", "DB_URL empty")
		return memory.NewTeamRepository(memory.SeedTeams()),
			memory.NewPlayerRepository(memory.SeedPlayers()),
			func() error { return nil },
			nil
	}

	db, err := openDB(cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open database: %w", err)
	}

	logger.Info("storage backend selected", "backend", "postgres", "db_name", dbNameFromURL(dbURL))
	return postgres.NewTeamRepository(db), postgres.NewPlayerRepository(db), db.Close, nil
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	dbURL := normalizeDBURL(strings.TrimSpace(cfg.DBURL), cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Open("postgres", dbURL,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(dbURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	return db, nil
}
