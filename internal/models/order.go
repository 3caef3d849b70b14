package models

import "time"

type Order struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Email     string     `json:"email"`
	Items     []CartItem `json:"items"`
	Amount    int64      `json:"amount"` // centimes, fourni par le client au paiement
	Currency  string     `json:"currency"`
	PaymentID string     `json:"payment_id"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
}
