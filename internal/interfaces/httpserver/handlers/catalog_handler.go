package handlers

import (
	"context"

	domain "github.com/DanielBarbieri21/Chatbot-Auto-Pecas/internal/domain/catalog"
)

// CatalogHandler invokes domain logic for catalog use cases.
type CatalogHandler struct {
	service domain.Service
}

// NewCatalogHandler wires dependencies for catalog routes.
func NewCatalogHandler(service domain.Service) *CatalogHandler {
	return &CatalogHandler{
		service: service,
	}
}

// List returns all products in catalog order.
func (h *CatalogHandler) List(ctx context.Context) ([]domain.Product, error) {
	return h.service.List(ctx)
}

// Get looks up one product by id.
func (h *CatalogHandler) Get(ctx context.Context, id int) (domain.Product, error) {
	return h.service.Get(ctx, id)
}
