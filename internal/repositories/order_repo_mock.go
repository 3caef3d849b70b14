package repositories

import (
	"context"
	"sync"
	"time"

	"farmlink_back_end/internal/models"

	"github.com/google/uuid"
)

// MockOrderRepository est une implémentation mémoire de OrderRepository.
type MockOrderRepository struct {
	orders map[string][]models.Order // userID → commandes
	mu     sync.RWMutex
}

func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{orders: make(map[string][]models.Order)}
}

func (r *MockOrderRepository) Insert(ctx context.Context, order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order.ID = uuid.NewString()
	order.CreatedAt = time.Now()
	r.orders[order.UserID] = append(r.orders[order.UserID], *order)
	return nil
}

func (r *MockOrderRepository) ByUser(ctx context.Context, userID string) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]models.Order, len(r.orders[userID]))
	copy(orders, r.orders[userID])
	return orders, nil
}
