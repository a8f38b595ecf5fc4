package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/matsols/matsols-api/internal/config"
	"github.com/matsols/matsols-api/internal/domain/advisor"
	"github.com/matsols/matsols-api/internal/domain/chat"
	"github.com/matsols/matsols-api/internal/domain/degree"
	"github.com/matsols/matsols-api/internal/domain/lead"
	"github.com/matsols/matsols-api/internal/domain/update"
	"github.com/matsols/matsols-api/internal/domain/user"
	"github.com/matsols/matsols-api/internal/infrastructure/auth"
	"github.com/matsols/matsols-api/internal/infrastructure/cache"
	"github.com/matsols/matsols-api/internal/infrastructure/database"
	"github.com/matsols/matsols-api/internal/infrastructure/logger"
	"github.com/matsols/matsols-api/internal/infrastructure/observability"
	chatrepo "github.com/matsols/matsols-api/internal/infrastructure/repository/chat"
	degreerepo "github.com/matsols/matsols-api/internal/infrastructure/repository/degree"
	leadrepo "github.com/matsols/matsols-api/internal/infrastructure/repository/lead"
	updaterepo "github.com/matsols/matsols-api/internal/infrastructure/repository/update"
	userrepo "github.com/matsols/matsols-api/internal/infrastructure/repository/user"
	"github.com/matsols/matsols-api/internal/infrastructure/retention"
	"github.com/matsols/matsols-api/internal/infrastructure/telemetry"
	"github.com/matsols/matsols-api/internal/interfaces/httpserver"
	"github.com/matsols/matsols-api/internal/interfaces/httpserver/handlers"
)

// @title MATSOLS API
// @version 1.0
// @description Degree catalog, consultation leads and the keyword chat advisor.
// @contact.name MATSOLS Engineering
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
type Application struct {
	httpServer *httpserver.HTTPServer
	retention  *retention.Scheduler
	log        zerolog.Logger
}

func NewApplication(httpServer *httpserver.HTTPServer, scheduler *retention.Scheduler, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		retention:  scheduler,
		log:        log,
	}
}

// Start runs the HTTP server and the retention job until ctx is cancelled
// or either of them fails.
func (a *Application) Start(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.httpServer.Run(gctx)
	})
	g.Go(func() error {
		return a.retention.Run(gctx)
	})
	return g.Wait()
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	db, err := newGormDB(ctx, database.ConfigFrom(cfg), log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize database")
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Error().Err(err).Msg("close database")
		}
	}()

	redisClient, err := newRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("connect redis")
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	authValidator, err := auth.NewValidator(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize auth validator")
	}
	defer authValidator.Close()

	degreeCache, err := newDegreeCache(cfg, redisClient, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize catalog cache")
	}

	degreeService := degree.NewService(degreerepo.NewDegreeRepository(db), degreeCache, log)
	chatService := chat.NewService(chatrepo.NewChatRepository(db), log)
	advisorService := advisor.NewService(advisor.NewCatalogCorpus(degreeService), chatService, log)
	leadService := lead.NewService(leadrepo.NewLeadRepository(db), log)
	updateService := update.NewService(updaterepo.NewUpdateRepository(db), log)
	userService := user.NewService(
		userrepo.NewUserRepository(db),
		auth.NewBcryptHasher(0),
		auth.NewTokenIssuer(cfg),
		log,
	)

	handlerProvider := handlers.NewProvider(
		advisorService,
		chatService,
		degreeService,
		leadService,
		updateService,
		userService,
		telemetry.NewRedactor(telemetry.Mode(cfg.ChatLogPII), cfg.PIIHashSalt),
		log,
	)
	httpServer := httpserver.New(cfg, log, handlerProvider, authValidator, db)
	scheduler := retention.NewScheduler(chatService, newRetentionLocker(redisClient, log), cfg.ChatRetention, cfg.ChatPruneSchedule, log)

	app := NewApplication(httpServer, scheduler, log)
	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

func newGormDB(ctx context.Context, cfg database.Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(ctx, db, log); err != nil {
		return nil, err
	}
	return db, nil
}

// newRedisClient returns nil when REDIS_URL is unset.
func newRedisClient(ctx context.Context, cfg *config.Config, log zerolog.Logger) (redis.UniversalClient, error) {
	if cfg.RedisURL == "" {
		log.Info().Msg("REDIS_URL not set, using in-process catalog cache")
		return nil, nil
	}
	return cache.NewRedisClient(ctx, cfg.RedisURL)
}

func newDegreeCache(cfg *config.Config, client redis.UniversalClient, log zerolog.Logger) (degree.Cache, error) {
	if client != nil {
		return cache.NewRedisDegreeCache(client, cfg.CatalogCacheTTL, log), nil
	}
	return cache.NewMemoryDegreeCache(cfg.CatalogCacheSize, cfg.CatalogCacheTTL)
}

func newRetentionLocker(client redis.UniversalClient, log zerolog.Logger) retention.Locker {
	if client == nil {
		return nil
	}
	return retention.NewRedisLocker(client, log)
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
