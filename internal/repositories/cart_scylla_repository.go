package repositories

import (
	"context"
	"fmt"

	"farmlink_back_end/internal/models"

	"github.com/gocql/gocql"
)

type ScyllaCartRepository struct {
	session SessionProvider
}

func NewScyllaCartRepository(session SessionProvider) *ScyllaCartRepository {
	return &ScyllaCartRepository{session: session}
}

func (r *ScyllaCartRepository) ExistsByName(ctx context.Context, userID, name string) (bool, error) {
	session, err := r.session()
	if err != nil {
		return false, fmt.Errorf("erreur connexion base de données: %v", err)
	}

	var count int
	err = session.Query(`SELECT COUNT(*) FROM cart_items_by_user WHERE user_id = ? AND name = ?`,
		userID, name).WithContext(ctx).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ScyllaCartRepository) InsertIfAbsent(ctx context.Context, userID string, item models.CartItem) (bool, error) {
	session, err := r.session()
	if err != nil {
		return false, fmt.Errorf("erreur connexion base de données: %v", err)
	}

	itemID := gocql.TimeUUID()

	// LWT : deux toggles concurrents ne peuvent pas créer de doublon,
	// un seul des deux INSERT est appliqué
	applied, err := session.Query(
		`INSERT INTO cart_items_by_user (user_id, name, cart_item_id, price, weight, image_url)
		 VALUES (?, ?, ?, ?, ?, ?) IF NOT EXISTS`,
		userID, item.Name, itemID, item.Price, item.Weight, item.ImageURL,
	).WithContext(ctx).MapScanCAS(map[string]interface{}{})
	if err != nil {
		return false, err
	}

	return applied, nil
}

func (r *ScyllaCartRepository) DeleteByName(ctx context.Context, userID, name string) error {
	session, err := r.session()
	if err != nil {
		return fmt.Errorf("erreur connexion base de données: %v", err)
	}

	return session.Query(`DELETE FROM cart_items_by_user WHERE user_id = ? AND name = ?`,
		userID, name).WithContext(ctx).Exec()
}

func (r *ScyllaCartRepository) DeleteByID(ctx context.Context, userID, itemID string) error {
	// La table est clusterée par nom : on retrouve d'abord l'item
	// (la partition d'un panier tient en quelques lignes)
	items, err := r.List(ctx, userID)
	if err != nil {
		return err
	}

	for _, item := range items {
		if item.ID == itemID {
			return r.DeleteByName(ctx, userID, item.Name)
		}
	}

	return gocql.ErrNotFound
}

func (r *ScyllaCartRepository) List(ctx context.Context, userID string) ([]models.CartItem, error) {
	session, err := r.session()
	if err != nil {
		return nil, fmt.Errorf("erreur connexion base de données: %v", err)
	}

	iter := session.Query(`SELECT cart_item_id, name, price, weight, image_url
		FROM cart_items_by_user WHERE user_id = ?`, userID).WithContext(ctx).Iter()

	items := []models.CartItem{}
	var itemID gocql.UUID
	var item models.CartItem

	for iter.Scan(&itemID, &item.Name, &item.Price, &item.Weight, &item.ImageURL) {
		item.ID = itemID.String()
		items = append(items, item)
		item = models.CartItem{}
	}

	if err := iter.Close(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ScyllaCartRepository) Clear(ctx context.Context, userID string) error {
	session, err := r.session()
	if err != nil {
		return fmt.Errorf("erreur connexion base de données: %v", err)
	}

	return session.Query(`DELETE FROM cart_items_by_user WHERE user_id = ?`,
		userID).WithContext(ctx).Exec()
}
