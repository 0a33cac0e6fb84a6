package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/joelkehle/assistant-desk/internal/classifier"
	"github.com/joelkehle/assistant-desk/internal/config"
	"github.com/joelkehle/assistant-desk/internal/httpapi"
	"github.com/joelkehle/assistant-desk/internal/logging"
	"github.com/joelkehle/assistant-desk/internal/priorart"
	"github.com/joelkehle/assistant-desk/internal/report"
	"github.com/joelkehle/assistant-desk/internal/scoring"
	"github.com/joelkehle/assistant-desk/internal/store"
	"github.com/joelkehle/assistant-desk/internal/telemetry"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	dbFlag := flag.String("db", "", "path to SQLite cache database (overrides DB_PATH env var)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *dbFlag != "" {
		cfg.Cache.Backend = config.CacheSQLite
		cfg.Cache.DBPath = *dbFlag
	}

	logger, err := logging.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry.Endpoint, cfg.Telemetry.ServiceName)
	if err != nil {
		logger.Fatal("telemetry_setup_failed", zap.Error(err))
	}
	defer func() {
		flushCtx, flushCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer flushCancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("telemetry_shutdown_failed", zap.Error(err))
		}
	}()

	cache, closeCache, err := openCache(ctx, cfg.Cache)
	if err != nil {
		logger.Fatal("cache_open_failed", zap.String("backend", cfg.Cache.Backend), zap.Error(err))
	}
	defer closeCache()
	logger.Info("cache_ready", zap.String("backend", cfg.Cache.Backend))

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	c := classifier.New(classifier.Options{
		Providers: buildProviders(cfg.Classifier, logger),
		Cache:     cache,
		Logger:    logger,
		Metrics:   classifier.NewMetrics(reg),
		BatchSize: cfg.Classifier.BatchSize,
		Timeout:   cfg.Classifier.Timeout,
	})
	logger.Info("classifier_ready", zap.Strings("providers", c.ProviderNames()))

	cat := priorart.Default()
	opts := httpapi.Options{
		Classifier: c,
		Scorer:     scoring.NewEngine(cat),
		Catalogue:  cat,
		Gatherer:   reg,
		Logger:     logger,
	}
	if admin, ok := cache.(httpapi.CacheAdmin); ok {
		opts.Cache = admin
	}
	if cfg.Report.PDF {
		layout, ok := report.LayoutForPaper(cfg.Report.Paper)
		if !ok {
			logger.Fatal("unknown_report_paper", zap.String("paper", cfg.Report.Paper))
		}
		opts.PDF = report.NewChromiumPDFRenderer(cfg.Report.ChromePath).WithLayout(layout)
	}

	srv := &http.Server{Addr: cfg.Addr(), Handler: httpapi.NewServer(opts)}
	go func() {
		<-ctx.Done()
		srv.Close()
	}()
	logger.Info("dashboard_listening", zap.String("addr", cfg.Addr()))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server_failed", zap.Error(err))
	}
}

func buildProviders(cfg config.ClassifierConfig, logger *zap.Logger) []classifier.Provider {
	if cfg.NoLLM {
		return nil
	}
	settings := classifier.BreakerSettings{
		ConsecutiveFailures: cfg.Breaker.ConsecutiveFailures,
		OpenTimeout:         cfg.Breaker.OpenTimeout,
	}
	var providers []classifier.Provider
	if cfg.Anthropic.APIKey != "" {
		p := classifier.NewAnthropicProvider(cfg.Anthropic.APIKey, cfg.Anthropic.Model, cfg.Anthropic.MaxTokens)
		providers = append(providers, classifier.NewBreakerProvider(p, settings, logger))
	}
	if cfg.OpenAI.APIKey != "" {
		p := classifier.NewOpenAIProvider(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.MaxTokens)
		providers = append(providers, classifier.NewBreakerProvider(p, settings, logger))
	}
	return providers
}

func openCache(ctx context.Context, cfg config.CacheConfig) (classifier.Cache, func(), error) {
	switch cfg.Backend {
	case config.CacheSQLite:
		c, err := store.NewSQLiteCache(cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		return c, func() { c.Close() }, nil
	case config.CacheRedis:
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		c, err := store.NewRedisCache(pingCtx, store.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
			TTL:      cfg.Redis.TTL,
		})
		if err != nil {
			return nil, nil, err
		}
		return c, func() { c.Close() }, nil
	default:
		return classifier.NewMemoryCache(), func() {}, nil
	}
}
