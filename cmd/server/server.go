package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/DanielBarbieri21/Chatbot-Auto-Pecas/internal/config"
	catalogdomain "github.com/DanielBarbieri21/Chatbot-Auto-Pecas/internal/domain/catalog"
	"github.com/DanielBarbieri21/Chatbot-Auto-Pecas/internal/domain/chat"
	catalogrepo "github.com/DanielBarbieri21/Chatbot-Auto-Pecas/internal/infrastructure/catalog"
	"github.com/DanielBarbieri21/Chatbot-Auto-Pecas/internal/infrastructure/gemini"
	"github.com/DanielBarbieri21/Chatbot-Auto-Pecas/internal/infrastructure/logger"
	"github.com/DanielBarbieri21/Chatbot-Auto-Pecas/internal/infrastructure/metrics"
	"github.com/DanielBarbieri21/Chatbot-Auto-Pecas/internal/infrastructure/observability"
	"github.com/DanielBarbieri21/Chatbot-Auto-Pecas/internal/infrastructure/openaicompat"
	"github.com/DanielBarbieri21/Chatbot-Auto-Pecas/internal/interfaces/httpserver"
)

// Application bundles the long-running parts of the service.
type Application struct {
	httpServer *httpserver.HttpServer
	store      *chat.HistoryStore
	cfg        *config.Config
	log        zerolog.Logger
}

// NewApplication wires the application entry points.
func NewApplication(httpServer *httpserver.HttpServer, store *chat.HistoryStore, cfg *config.Config, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		store:      store,
		cfg:        cfg,
		log:        log,
	}
}

// Start runs the HTTP listener, the metrics listener and the session
// janitor until the context is cancelled or one of them fails.
func (a *Application) Start(ctx context.Context) error {
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return a.httpServer.Run(egCtx)
	})
	eg.Go(func() error {
		return metrics.Serve(egCtx, a.cfg.MetricsAddr(), a.log)
	})
	eg.Go(func() error {
		a.store.Janitor(egCtx, a.cfg.SessionSweepInterval)
		return nil
	})
	return eg.Wait()
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		os.Exit(1)
	}

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

	catalogRepository := catalogrepo.NewInMemoryRepository()
	catalogService := catalogdomain.NewService(catalogRepository, log)

	store := chat.NewHistoryStore(cfg.HistoryLimit, cfg.SessionTTL)
	completionClient := newCompletionClient(cfg, log)
	chatService := chat.NewService(store, completionClient, catalogService, cfg.CompletionProvider, cfg.CompletionTimeout, log)

	httpServer := httpserver.New(cfg, log, catalogService, chatService)
	app := NewApplication(httpServer, store, cfg, log)

	log.Info().
		Str("provider", cfg.CompletionProvider).
		Int("history_limit", cfg.HistoryLimit).
		Msg("AutoPeças storefront starting")

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

func newCompletionClient(cfg *config.Config, log zerolog.Logger) chat.CompletionClient {
	switch cfg.CompletionProvider {
	case config.ProviderOpenAI:
		return openaicompat.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, log)
	default:
		return gemini.NewClient(cfg.GeminiAPIURL, cfg.GeminiAPIKey, cfg.GeminiModel, log)
	}
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
