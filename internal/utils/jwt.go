package utils

import (
	"os"
	"time"

	"farmlink_back_end/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// JWTSecret lit le secret à chaque appel : il ne doit pas être figé
// à l'init du package, le .env n'est chargé qu'au démarrage du serveur.
// Signature et vérification passent toutes les deux par ici.
func JWTSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "super_secret"
	}
	return []byte(secret)
}

func GenerateJWT(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    string(user.Role),
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(JWTSecret())
}
