package models

import (
	"fmt"
	"strings"
)

// Role est un type fermé : un compte est soit Farmer, soit Consumer.
// Fini les routages cassés par une faute de frappe dans un champ texte libre.
type Role string

const (
	RoleFarmer   Role = "Farmer"
	RoleConsumer Role = "Consumer"
)

// ParseRole valide un rôle reçu du client (insensible à la casse)
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "farmer":
		return RoleFarmer, nil
	case "consumer":
		return RoleConsumer, nil
	default:
		return "", fmt.Errorf("rôle inconnu: %q (attendu Farmer ou Consumer)", s)
	}
}

func (r Role) Valid() bool {
	return r == RoleFarmer || r == RoleConsumer
}

type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Role         Role   `json:"role"`
	ProfileImage string `json:"profileImage"`
	Password     string `json:"-"` // hash argon2id, jamais sérialisé
	Provider     string `json:"provider"`
	ProviderID   string `json:"-"`
}
