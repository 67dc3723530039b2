package catalog

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	domain "github.com/DanielBarbieri21/Chatbot-Auto-Pecas/internal/domain/catalog"
)

// InMemoryRepository is the seeded, read-only product catalog.
type InMemoryRepository struct {
	mu       sync.RWMutex
	products []domain.Product
}

// NewInMemoryRepository seeds the store catalog.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		products: []domain.Product{
			{ID: 1, Name: "Filtro de Ar", Category: "Filtros", Price: price("45.90"), StockQuantity: 150, Description: "Filtro de ar de alta qualidade para todos os modelos"},
			{ID: 2, Name: "Óleo do Motor 5W-30", Category: "Óleos", Price: price("28.50"), StockQuantity: 200, Description: "Óleo sintetizado premium para motor"},
			{ID: 3, Name: "Pastilha de Freio", Category: "Freios", Price: price("89.90"), StockQuantity: 120, Description: "Pastilha de freio com alta durabilidade"},
			{ID: 4, Name: "Corrente de Distribuição", Category: "Correntes", Price: price("156.00"), StockQuantity: 80, Description: "Corrente de distribuição original"},
			{ID: 5, Name: "Bateria 60Ah", Category: "Baterias", Price: price("320.00"), StockQuantity: 95, Description: "Bateria de carro 60Ah, 12V"},
			{ID: 6, Name: "Pneu Aro 16", Category: "Pneus", Price: price("280.00"), StockQuantity: 200, Description: "Pneu aro 16 com 5 anos de garantia"},
			{ID: 7, Name: "Amortecedor Dianteiro", Category: "Suspensão", Price: price("250.00"), StockQuantity: 60, Description: "Amortecedor de suspensão dianteiro"},
			{ID: 8, Name: "Vela de Ignição", Category: "Ignição", Price: price("15.90"), StockQuantity: 300, Description: "Vela de ignição premium"},
			{ID: 9, Name: "Correia Serpentina", Category: "Correias", Price: price("68.50"), StockQuantity: 140, Description: "Correia serpentina de alta durabilidade"},
			{ID: 10, Name: "Disco de Freio", Category: "Freios", Price: price("120.00"), StockQuantity: 110, Description: "Disco de freio ventilado"},
		},
	}
}

// List returns all products in catalog order.
func (r *InMemoryRepository) List(ctx context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// GetByID looks a product up by its id.
func (r *InMemoryRepository) GetByID(ctx context.Context, id int) (domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, domain.ErrProductNotFound
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
