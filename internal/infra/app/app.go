package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/abh6007/job-board-app/internal/core/port"
	"github.com/abh6007/job-board-app/internal/infra/config"
	"github.com/abh6007/job-board-app/internal/infra/database"
	"github.com/abh6007/job-board-app/internal/infra/logger"
	redisinfra "github.com/abh6007/job-board-app/internal/infra/redis"
	"github.com/abh6007/job-board-app/internal/infra/security"
	postgresrepo "github.com/abh6007/job-board-app/internal/repository/postgres"
	redisrepo "github.com/abh6007/job-board-app/internal/repository/redis"
	"github.com/abh6007/job-board-app/internal/transport/http/middleware"
	"github.com/abh6007/job-board-app/internal/transport/http/routes"
	"github.com/abh6007/job-board-app/internal/usecase"
)

type Application struct {
	cfg      *config.AppConfig
	engine   *gin.Engine
	logger   *zap.Logger
	pool     *pgxpool.Pool
	redis    *redisinfra.Client
	sessions *usecase.SessionService
}

func New(ctx context.Context, cfg *config.AppConfig) (*Application, error) {
	log, err := logger.New(cfg.App.Env)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	argonCfg := security.Argon2Config{
		Memory:      cfg.Argon2.Memory,
		Iterations:  cfg.Argon2.Iterations,
		Parallelism: cfg.Argon2.Parallelism,
		SaltLength:  cfg.Argon2.SaltLength,
		KeyLength:   cfg.Argon2.KeyLength,
	}
	if err := security.ConfigureArgon2(argonCfg); err != nil {
		return nil, fmt.Errorf("configure argon2: %w", err)
	}

	if err := database.Migrate(cfg.Postgres, log); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	pool, err := database.NewPostgresPool(ctx, cfg.Postgres, log)
	if err != nil {
		return nil, fmt.Errorf("init postgres: %w", err)
	}

	var redisClient *redisinfra.Client
	var sessionCache *redisrepo.SessionCache
	if cfg.Redis.Enabled {
		redisClient, err = redisinfra.NewClient(cfg.Redis, log)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("init redis: %w", err)
		}
		sessionCache = redisrepo.NewSessionCache(redisClient.Client(), cfg.Redis.SessionCachePrefix)
	}

	repos := postgresrepo.NewRepositories(pool)
	validator := security.PasswordValidatorWithMinLength(cfg.Admin.PasswordMinLength)

	// Assign only when enabled so the service sees a plain nil interface.
	var cache port.SessionCache
	if sessionCache != nil {
		cache = sessionCache
	}

	sessionService := usecase.NewSessionService(repos.Sessions, cache, cfg.Session.TTL, cfg.Redis.SessionCacheTTL, log)
	authService := usecase.NewAuthService(repos.Users, sessionService, validator, log)
	recoveryService := usecase.NewRecoveryService(repos.RecoveryCodes, repos.Users, validator, log)
	jobService := usecase.NewJobService(repos.Jobs, log)
	contentService := usecase.NewContentService(repos.SocialLinks, repos.AutomationLinks, repos.AboutMe, repos.DesignSettings, log)
	bootstrap := usecase.NewBootstrapService(repos.Users, repos.Jobs, repos.SocialLinks, repos.AboutMe,
		cfg.Admin.DefaultPassword, cfg.Admin.SeedDemoData, log)

	if err := bootstrap.Run(ctx); err != nil {
		pool.Close()
		if redisClient != nil {
			_ = redisClient.Close()
		}
		return nil, fmt.Errorf("bootstrap: %w", err)
	}

	metrics, err := middleware.NewHTTPMetrics(middleware.HTTPMetricsOptions{})
	if err != nil {
		log.Warn("failed to init http metrics", zap.Error(err))
	}

	deps := routes.Dependencies{
		Config:   cfg,
		Logger:   log,
		Metrics:  metrics,
		Database: pool,
		Services: routes.ServiceSet{
			Auth:     authService,
			Sessions: sessionService,
			Recovery: recoveryService,
			Jobs:     jobService,
			Content:  contentService,
		},
	}
	if redisClient != nil {
		deps.Cache = redisClient
	}

	engine := routes.Register(deps)

	return &Application{
		cfg:      cfg,
		engine:   engine,
		logger:   log,
		pool:     pool,
		redis:    redisClient,
		sessions: sessionService,
	}, nil
}

func (a *Application) Run(ctx context.Context) error {
	defer func() {
		_ = a.logger.Sync()
	}()
	defer func() {
		if a.pool != nil {
			a.pool.Close()
		}
	}()
	defer func() {
		if a.redis != nil {
			_ = a.redis.Close()
		}
	}()

	purgeCtx, stopPurge := context.WithCancel(ctx)
	defer stopPurge()
	go a.purgeExpiredSessions(purgeCtx)

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", a.cfg.App.Host, a.cfg.App.Port),
		Handler:           a.engine,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	a.logger.Info("starting job board API",
		zap.String("env", a.cfg.App.Env),
		zap.String("address", srv.Addr),
	)

	serverErrCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrCh <- fmt.Errorf("run server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown server: %w", err)
		}
		return nil
	case err := <-serverErrCh:
		return err
	}
}

// purgeExpiredSessions drops dead session rows on a fixed interval so the
// table does not grow without bound.
func (a *Application) purgeExpiredSessions(ctx context.Context) {
	period := a.cfg.Session.PurgePeriod
	if period <= 0 {
		period = time.Hour
	}

	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			purged, err := a.sessions.PurgeExpired(ctx)
			if err != nil {
				a.logger.Warn("session purge failed", zap.Error(err))
				continue
			}
			if purged > 0 {
				a.logger.Info("purged expired sessions", zap.Int64("count", purged))
			}
		}
	}
}
