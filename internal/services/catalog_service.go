package services

import (
	"context"
	"strings"

	"farmlink_back_end/internal/models"
	"farmlink_back_end/internal/repositories"
)

// CatalogService produit le fil de produits côté consumer en aplatissant
// les sous-collections products de tous les utilisateurs.
type CatalogService struct {
	users   repositories.UserRepository
	catalog repositories.CatalogRepository
}

func NewCatalogService(users repositories.UserRepository, catalog repositories.CatalogRepository) *CatalogService {
	return &CatalogService{users: users, catalog: catalog}
}

// FetchAll énumère chaque utilisateur puis lit sa partition de produits.
// Coût : O(nombre d'utilisateurs) allers-retours — le handler met le résultat
// en cache Redis pour amortir.
func (s *CatalogService) FetchAll(ctx context.Context) ([]models.Product, error) {
	userIDs, err := s.users.UserIDs(ctx)
	if err != nil {
		return nil, err
	}

	all := []models.Product{}
	for _, userID := range userIDs {
		products, err := s.catalog.ByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		all = append(all, products...)
	}
	return all, nil
}

// Filter garde les produits dont le nom contient la requête, sans tenir
// compte de la casse. Requête vide → liste inchangée. Pure, aucune I/O.
func Filter(products []models.Product, query string) []models.Product {
	if query == "" {
		return products
	}

	q := strings.ToLower(query)
	filtered := []models.Product{}
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
