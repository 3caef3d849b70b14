package repositories

import (
	"context"
	"sync"

	"farmlink_back_end/internal/models"

	"github.com/gocql/gocql"
	"github.com/google/uuid"
)

// MockCartRepository est une implémentation mémoire de CartRepository,
// la "fausse" base documentaire utilisée par les tests.
type MockCartRepository struct {
	items map[string]map[string]models.CartItem // userID → name → item
	mu    sync.RWMutex
}

func NewMockCartRepository() *MockCartRepository {
	return &MockCartRepository{
		items: make(map[string]map[string]models.CartItem),
	}
}

func (r *MockCartRepository) ExistsByName(ctx context.Context, userID, name string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.items[userID][name]
	return ok, nil
}

func (r *MockCartRepository) InsertIfAbsent(ctx context.Context, userID string, item models.CartItem) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.items[userID] == nil {
		r.items[userID] = make(map[string]models.CartItem)
	}
	if _, exists := r.items[userID][item.Name]; exists {
		return false, nil
	}

	item.ID = uuid.NewString()
	r.items[userID][item.Name] = item
	return true, nil
}

func (r *MockCartRepository) DeleteByName(ctx context.Context, userID, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items[userID], name)
	return nil
}

func (r *MockCartRepository) DeleteByID(ctx context.Context, userID, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for name, item := range r.items[userID] {
		if item.ID == itemID {
			delete(r.items[userID], name)
			return nil
		}
	}
	return gocql.ErrNotFound
}

func (r *MockCartRepository) List(ctx context.Context, userID string) ([]models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]models.CartItem, 0, len(r.items[userID]))
	for _, item := range r.items[userID] {
		items = append(items, item)
	}
	return items, nil
}

func (r *MockCartRepository) Clear(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, userID)
	return nil
}
