package repositories

import (
	"context"
	"sync"

	"farmlink_back_end/internal/models"

	"github.com/gocql/gocql"
	"github.com/google/uuid"
)

// MockUserRepository est une implémentation mémoire de UserRepository.
type MockUserRepository struct {
	users map[string]models.User // userID → profil
	mu    sync.RWMutex
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[string]models.User)}
}

func (r *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	r.users[user.ID] = *user
	return nil
}

func (r *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return gocql.ErrNotFound
	}
	r.users[user.ID] = *user
	return nil
}

func (r *MockUserRepository) ByID(ctx context.Context, userID string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return nil, gocql.ErrNotFound
	}
	return &user, nil
}

func (r *MockUserRepository) ByEmail(ctx context.Context, email, provider string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email && user.Provider == provider {
			u := user
			return &u, nil
		}
	}
	return nil, gocql.ErrNotFound
}

func (r *MockUserRepository) UserIDs(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	return ids, nil
}
