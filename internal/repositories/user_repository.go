package repositories

import (
	"context"

	"farmlink_back_end/internal/models"
)

// UserRepository : les documents racine users/{userId}
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	// Update réécrit les champs modifiables du profil (l'email ne bouge pas,
	// la table de lookup profiles_by_email reste donc valide)
	Update(ctx context.Context, user *models.User) error
	ByID(ctx context.Context, userID string) (*models.User, error)
	ByEmail(ctx context.Context, email, provider string) (*models.User, error)
	// UserIDs énumère tous les utilisateurs (pour l'agrégation du catalogue)
	UserIDs(ctx context.Context) ([]string, error)
}
