package repositories

import (
	"context"

	"farmlink_back_end/internal/models"
)

// OrderRepository : les commandes confirmées après paiement
type OrderRepository interface {
	Insert(ctx context.Context, order *models.Order) error
	ByUser(ctx context.Context, userID string) ([]models.Order, error)
}
