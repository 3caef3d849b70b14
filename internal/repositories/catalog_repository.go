package repositories

import (
	"context"

	"farmlink_back_end/internal/models"
)

// CatalogRepository : la sous-collection users/{userId}/products
type CatalogRepository interface {
	// Insert crée le produit et assigne son identifiant
	Insert(ctx context.Context, userID string, product *models.Product) error
	ByUser(ctx context.Context, userID string) ([]models.Product, error)
}
