package repositories

import (
	"context"
	"sync"

	"farmlink_back_end/internal/models"

	"github.com/google/uuid"
)

// MockCatalogRepository est une implémentation mémoire de CatalogRepository.
type MockCatalogRepository struct {
	products map[string][]models.Product // userID → produits
	mu       sync.RWMutex
}

func NewMockCatalogRepository() *MockCatalogRepository {
	return &MockCatalogRepository{
		products: make(map[string][]models.Product),
	}
}

func (r *MockCatalogRepository) Insert(ctx context.Context, userID string, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = uuid.NewString()
	product.OwnerID = userID
	r.products[userID] = append(r.products[userID], *product)
	return nil
}

func (r *MockCatalogRepository) ByUser(ctx context.Context, userID string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]models.Product, len(r.products[userID]))
	copy(products, r.products[userID])
	return products, nil
}
