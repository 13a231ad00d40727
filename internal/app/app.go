package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/betting-analytics/internal/config"
	"github.com/riskibarqy/betting-analytics/internal/domain/betslip"
	"github.com/riskibarqy/betting-analytics/internal/domain/chat"
	"github.com/riskibarqy/betting-analytics/internal/domain/fantasy"
	"github.com/riskibarqy/betting-analytics/internal/domain/user"
	"github.com/riskibarqy/betting-analytics/internal/infrastructure/identity"
	"github.com/riskibarqy/betting-analytics/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/betting-analytics/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/betting-analytics/internal/interfaces/httpapi"
	idgen "github.com/riskibarqy/betting-analytics/internal/platform/id"
	"github.com/riskibarqy/betting-analytics/internal/platform/logging"
	"github.com/riskibarqy/betting-analytics/internal/platform/resilience"
	"github.com/riskibarqy/betting-analytics/internal/usecase"
)

type repositories struct {
	users    user.Repository
	betSlips betslip.Repository
	chats    chat.Repository
	fantasy  fantasy.Repository
}

// NewHTTPServer wires storage, the identity client and the HTTP router.
// The returned cleanup releases the database pool and must be called after
// the server has shut down.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	repos, cleanup, err := openRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	rules := fantasy.DefaultRules()
	rules.MaxRosterSize = cfg.FantasyMaxRosterSize
	rules.MaxPlayersPerClub = cfg.FantasyMaxPlayersPerClub

	userActions := usecase.NewUserActions(repos.users, logger)
	betSlipActions := usecase.NewBetSlipActions(repos.betSlips, repos.users, logger)
	chatActions := usecase.NewChatActions(repos.chats, repos.users, logger)
	fantasyActions := usecase.NewFantasyActions(repos.fantasy, repos.users, rules, logger)
	dashboard := usecase.NewDashboardService(repos.users, repos.betSlips, repos.chats, repos.fantasy, logger)

	identityClient := identity.NewClient(nil, identity.Config{
		BaseURL:        cfg.IdentityBaseURL,
		IntrospectPath: cfg.IdentityIntrospectPath,
		AdminKey:       cfg.IdentityAdminKey,
		Timeout:        cfg.IdentityTimeout,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.IdentityCircuitEnabled,
			FailureThreshold: cfg.IdentityCircuitFailureCount,
			OpenTimeout:      cfg.IdentityCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.IdentityCircuitHalfOpenMax,
		},
	}, logger)

	handler := httpapi.NewHandler(userActions, betSlipActions, chatActions, fantasyActions, dashboard, logger)
	router := httpapi.NewRouter(handler, identityClient, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, cleanup, nil
}

func openRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, func() error, error) {
	if cfg.StorageBackend == config.StorageMemory {
		logger.Warn("using in-memory storage, data is lost on restart")
		store := memory.NewStore(idgen.NewUUIDGenerator())
		return repositories{
			users:    memory.NewUserRepository(store),
			betSlips: memory.NewBetSlipRepository(store),
			chats:    memory.NewChatRepository(store),
			fantasy:  memory.NewFantasyRepository(store),
		}, func() error { return nil }, nil
	}

	db, err := OpenDatabase(ctx, cfg, logger)
	if err != nil {
		return repositories{}, nil, err
	}

	return postgresRepositories(db), db.Close, nil
}

func postgresRepositories(db *sqlx.DB) repositories {
	return repositories{
		users:    postgres.NewUserRepository(db),
		betSlips: postgres.NewBetSlipRepository(db),
		chats:    postgres.NewChatRepository(db),
		fantasy:  postgres.NewFantasyRepository(db),
	}
}
