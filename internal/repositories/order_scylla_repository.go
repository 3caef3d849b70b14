package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"farmlink_back_end/internal/models"

	"github.com/gocql/gocql"
)

type ScyllaOrderRepository struct {
	session SessionProvider
}

func NewScyllaOrderRepository(session SessionProvider) *ScyllaOrderRepository {
	return &ScyllaOrderRepository{session: session}
}

func (r *ScyllaOrderRepository) Insert(ctx context.Context, order *models.Order) error {
	session, err := r.session()
	if err != nil {
		return fmt.Errorf("erreur connexion base de données: %v", err)
	}

	orderID := gocql.TimeUUID()
	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("erreur sérialisation items: %v", err)
	}

	now := time.Now()
	err = session.Query(
		`INSERT INTO orders_by_user (user_id, order_id, email, items_json, amount, currency, payment_id, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		order.UserID, orderID, order.Email, string(itemsJSON), order.Amount,
		order.Currency, order.PaymentID, order.Status, now,
	).WithContext(ctx).Exec()
	if err != nil {
		return err
	}

	order.ID = orderID.String()
	order.CreatedAt = now
	return nil
}

func (r *ScyllaOrderRepository) ByUser(ctx context.Context, userID string) ([]models.Order, error) {
	session, err := r.session()
	if err != nil {
		return nil, fmt.Errorf("erreur connexion base de données: %v", err)
	}

	iter := session.Query(`SELECT order_id, email, items_json, amount, currency, payment_id, status, created_at
		FROM orders_by_user WHERE user_id = ?`, userID).WithContext(ctx).Iter()

	orders := []models.Order{}
	var orderID gocql.UUID
	var itemsJSON string
	var o models.Order

	for iter.Scan(&orderID, &o.Email, &itemsJSON, &o.Amount, &o.Currency, &o.PaymentID, &o.Status, &o.CreatedAt) {
		o.ID = orderID.String()
		o.UserID = userID
		_ = json.Unmarshal([]byte(itemsJSON), &o.Items)
		orders = append(orders, o)
		o = models.Order{}
	}

	if err := iter.Close(); err != nil {
		return nil, err
	}
	return orders, nil
}
