//go:build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/rs/zerolog"

	"github.com/DanielBarbieri21/Chatbot-Auto-Pecas/internal/config"
	catalogdomain "github.com/DanielBarbieri21/Chatbot-Auto-Pecas/internal/domain/catalog"
	"github.com/DanielBarbieri21/Chatbot-Auto-Pecas/internal/domain/chat"
	catalogrepo "github.com/DanielBarbieri21/Chatbot-Auto-Pecas/internal/infrastructure/catalog"
	"github.com/DanielBarbieri21/Chatbot-Auto-Pecas/internal/infrastructure/logger"
	"github.com/DanielBarbieri21/Chatbot-Auto-Pecas/internal/interfaces/httpserver"
)

var catalogSet = wire.NewSet(
	catalogrepo.NewInMemoryRepository,
	wire.Bind(new(catalogdomain.Repository), new(*catalogrepo.InMemoryRepository)),
	catalogdomain.NewService,
)

// BuildApplication demonstrates how to assemble the storefront service with Wire.
func BuildApplication() (*Application, error) {
	wire.Build(
		config.Load,
		newLogger,
		catalogSet,
		newHistoryStore,
		newWiredCompletionClient,
		newChatService,
		httpserver.New,
		NewApplication,
	)
	return nil, nil
}

func newLogger(cfg *config.Config) (zerolog.Logger, error) {
	return logger.New(cfg.LogLevel, cfg.LogFormat)
}

func newHistoryStore(cfg *config.Config) *chat.HistoryStore {
	return chat.NewHistoryStore(cfg.HistoryLimit, cfg.SessionTTL)
}

func newWiredCompletionClient(cfg *config.Config, log zerolog.Logger) chat.CompletionClient {
	return newCompletionClient(cfg, log)
}

func newChatService(store *chat.HistoryStore, client chat.CompletionClient, catalogService catalogdomain.Service, cfg *config.Config, log zerolog.Logger) chat.Service {
	return chat.NewService(store, client, catalogService, cfg.CompletionProvider, cfg.CompletionTimeout, log)
}
