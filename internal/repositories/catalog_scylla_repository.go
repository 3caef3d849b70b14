package repositories

import (
	"context"
	"fmt"
	"time"

	"farmlink_back_end/internal/models"

	"github.com/gocql/gocql"
)

type ScyllaCatalogRepository struct {
	session SessionProvider
}

func NewScyllaCatalogRepository(session SessionProvider) *ScyllaCatalogRepository {
	return &ScyllaCatalogRepository{session: session}
}

func (r *ScyllaCatalogRepository) Insert(ctx context.Context, userID string, product *models.Product) error {
	session, err := r.session()
	if err != nil {
		return fmt.Errorf("erreur connexion base de données: %v", err)
	}

	productID := gocql.TimeUUID()

	err = session.Query(
		`INSERT INTO products_by_user (user_id, product_id, name, price, weight, image_url, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		userID, productID, product.Name, product.Price, product.Weight, product.ImageURL, time.Now(),
	).WithContext(ctx).Exec()
	if err != nil {
		return err
	}

	product.ID = productID.String()
	product.OwnerID = userID
	return nil
}

func (r *ScyllaCatalogRepository) ByUser(ctx context.Context, userID string) ([]models.Product, error) {
	session, err := r.session()
	if err != nil {
		return nil, fmt.Errorf("erreur connexion base de données: %v", err)
	}

	iter := session.Query(`SELECT product_id, name, price, weight, image_url
		FROM products_by_user WHERE user_id = ?`, userID).WithContext(ctx).Iter()

	products := []models.Product{}
	var productID gocql.UUID
	var p models.Product

	for iter.Scan(&productID, &p.Name, &p.Price, &p.Weight, &p.ImageURL) {
		p.ID = productID.String()
		p.OwnerID = userID
		products = append(products, p)
		p = models.Product{}
	}

	if err := iter.Close(); err != nil {
		return nil, err
	}
	return products, nil
}
