package cache

import (
	"context"
	"encoding/json"
	"time"

	"farmlink_back_end/internal/database"
	"farmlink_back_end/internal/models"
	"farmlink_back_end/internal/repositories"
)

const (
	ProfileCacheTTL = 5 * time.Minute
	CatalogCacheTTL = time.Hour

	CatalogCacheKey = "products:all"
)

// GetProfileFromCache récupère un profil depuis Redis, sinon depuis Scylla
func GetProfileFromCache(ctx context.Context, users repositories.UserRepository, userID string) (*models.User, error) {
	key := "profile:" + userID

	// 1. Essayer le cache Redis
	if database.Redis != nil {
		data, err := database.Redis.Get(ctx, key).Result()
		if err == nil {
			var user models.User
			if json.Unmarshal([]byte(data), &user) == nil {
				return &user, nil
			}
		}
	}

	// 2. Récupérer depuis Scylla
	user, err := users.ByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// 3. Mettre en cache
	if database.Redis != nil {
		jsonData, _ := json.Marshal(user)
		database.Redis.Set(ctx, key, jsonData, ProfileCacheTTL)
	}

	return user, nil
}

// InvalidateProfileCache invalide le cache d'un profil
// (appelé quand le user modifie son profil)
func InvalidateProfileCache(ctx context.Context, userID string) {
	if database.Redis == nil {
		return
	}
	database.Redis.Del(ctx, "profile:"+userID)
}

// InvalidateCatalogCache invalide la liste agrégée des produits
// (appelé quand un farmer publie un nouveau produit)
func InvalidateCatalogCache(ctx context.Context) {
	if database.Redis == nil {
		return
	}
	database.Redis.Del(ctx, CatalogCacheKey)
}
