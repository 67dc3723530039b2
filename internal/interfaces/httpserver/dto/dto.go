// Package dto provides data transfer objects for HTTP requests/responses
package dto

import (
	domain "github.com/DanielBarbieri21/Chatbot-Auto-Pecas/internal/domain/catalog"
)

// ProductResponse is the wire form of one catalog entry.
type ProductResponse struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stockQuantity"`
	Description   string  `json:"description"`
}

// FromProduct converts a domain product to its wire form.
func FromProduct(p domain.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Category:      p.Category,
		Price:         p.Price.InexactFloat64(),
		StockQuantity: p.StockQuantity,
		Description:   p.Description,
	}
}

// FromProducts converts a product list preserving catalog order.
func FromProducts(products []domain.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}

// ChatRequest is the POST /chat body.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse carries the assistant reply; both completed and degraded
// outcomes use the same shape.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// MessageResponse confirms an operation with a human readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries a caller visible error.
type ErrorResponse struct {
	Error string `json:"error"`
}
