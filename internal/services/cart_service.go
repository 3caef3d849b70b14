package services

import (
	"context"
	"fmt"
	"log"

	"farmlink_back_end/internal/models"
	"farmlink_back_end/internal/repositories"
)

// CartService gère l'appartenance au panier : pour un utilisateur donné,
// un produit est dedans ou pas, et Toggle bascule cet état.
type CartService struct {
	repo repositories.CartRepository
}

func NewCartService(repo repositories.CartRepository) *CartService {
	return &CartService{repo: repo}
}

// IsInCart vérifie l'appartenance par égalité de nom.
// Contrat volontairement permissif : identité vide ou erreur de requête
// → "pas dans le panier", jamais d'erreur remontée à l'appelant.
func (s *CartService) IsInCart(ctx context.Context, userID, productName string) bool {
	if userID == "" {
		return false
	}

	exists, err := s.repo.ExistsByName(ctx, userID, productName)
	if err != nil {
		log.Printf("⚠️ Vérification panier échouée pour %s: %v", userID, err)
		return false
	}
	return exists
}

// Toggle bascule l'appartenance du produit au panier.
// L'insertion passe par un LWT : si deux toggles concurrents observent tous
// les deux "absent", un seul INSERT est appliqué et l'autre est un no-op.
func (s *CartService) Toggle(ctx context.Context, userID string, product models.Product, currentlyInCart bool) error {
	if userID == "" {
		return fmt.Errorf("utilisateur non identifié")
	}

	if currentlyInCart {
		if err := s.repo.DeleteByName(ctx, userID, product.Name); err != nil {
			return fmt.Errorf("suppression du panier échouée: %v", err)
		}
		log.Printf("🛒 Produit retiré du panier: %s (user %s)", product.Name, userID)
		return nil
	}

	applied, err := s.repo.InsertIfAbsent(ctx, userID, models.CartItemFromProduct(product))
	if err != nil {
		return fmt.Errorf("ajout au panier échoué: %v", err)
	}
	if !applied {
		// Déjà présent : un toggle concurrent est passé avant nous
		log.Printf("🛒 Produit déjà dans le panier: %s (user %s)", product.Name, userID)
		return nil
	}

	log.Printf("🛒 Produit ajouté au panier: %s (user %s)", product.Name, userID)
	return nil
}

// Remove supprime un item par son identifiant (connu depuis un listing précédent)
func (s *CartService) Remove(ctx context.Context, userID, cartItemID string) error {
	if userID == "" {
		return fmt.Errorf("utilisateur non identifié")
	}
	return s.repo.DeleteByID(ctx, userID, cartItemID)
}

func (s *CartService) List(ctx context.Context, userID string) ([]models.CartItem, error) {
	if userID == "" {
		return nil, fmt.Errorf("utilisateur non identifié")
	}
	return s.repo.List(ctx, userID)
}

func (s *CartService) Clear(ctx context.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("utilisateur non identifié")
	}
	return s.repo.Clear(ctx, userID)
}
