package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/releasewatch/internal/config"
	"github.com/MrSnakeDoc/releasewatch/internal/domain"
	"github.com/MrSnakeDoc/releasewatch/internal/httpserver"
	"github.com/MrSnakeDoc/releasewatch/internal/httpserver/deps"
	"github.com/MrSnakeDoc/releasewatch/internal/logger"
	"github.com/MrSnakeDoc/releasewatch/internal/redis"
	"github.com/MrSnakeDoc/releasewatch/internal/sources/summaryfile"
	redisstore "github.com/MrSnakeDoc/releasewatch/internal/store/redis"
	"github.com/MrSnakeDoc/releasewatch/internal/version"
	"github.com/MrSnakeDoc/releasewatch/internal/view"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	source, redisClient, err := newSource(cfg, loggerClient)
	if err != nil {
		loggerClient.Error("failed to initialize summary source",
			logger.String("source", cfg.Source),
			logger.Error(err))
		os.Exit(1)
	}

	renderer, err := view.NewRenderer(time.Now, cfg.Location)
	if err != nil {
		loggerClient.Error("failed to initialize renderer", logger.Error(err))
		os.Exit(1)
	}

	d := deps.Deps{
		Logger:          loggerClient,
		StartTime:       time.Now(),
		Version:         version.Version,
		Commit:          version.Commit,
		BuildDate:       version.BuildDate,
		GoVersion:       version.GoVersion,
		TimeNow:         time.Now,
		AllowedHosts:    cfg.AllowedHosts,
		AllowedCIDRS:    cfg.AllowedCIDRS,
		TrustProxy:      cfg.TrustProxy,
		Source:          source,
		Renderer:        renderer,
		RateLimitBurst:  cfg.RateLimitBurst,
		RateLimitPerMin: cfg.RateLimitPerMin,
		ReadyTimeout:    2 * time.Second,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
	}
}

// newSource opens the configured summary source. The Redis client is
// returned so it can be closed on shutdown.
func newSource(cfg *config.Config, loggerClient logger.Logger) (domain.SummarySource, *goredis.Client, error) {
	switch cfg.Source {
	case config.SourceRedis:
		// fail fast if unavailable
		loggerClient.Info("connecting to redis", logger.String("addr", cfg.RedisAddr))
		client, err := redis.New(context.Background(), redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			DB:             cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
			WarnThreshold:  cfg.RedisWarnThreshold,
		}, loggerClient)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		loggerClient.Info("redis initialized successfully")
		return redisstore.NewStore(client), client, nil

	default:
		if _, err := os.Stat(cfg.SummaryFile); err != nil {
			// the monitor may not have written it yet; /readyz reports it
			loggerClient.Warn("summary file not readable yet",
				logger.String("file", cfg.SummaryFile),
				logger.Error(err))
		}
		return summaryfile.NewSource(cfg.SummaryFile), nil, nil
	}
}

func (a *App) Run() error {
	a.logger.Info("🚀 Starting "+version.String(),
		logger.String("listen", a.cfg.ListenPort),
		logger.String("source", a.cfg.Source),
		logger.String("timezone", a.cfg.Timezone))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warn("failed to close redis", logger.Error(err))
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ releasewatch stopped cleanly")
	_ = a.logger.Sync()
	return nil
}
