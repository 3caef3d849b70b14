package repositories

import (
	"context"

	"farmlink_back_end/internal/models"

	"github.com/gocql/gocql"
)

// SessionProvider fournit une session Scylla pour un keyspace donné.
// Injecté dans les repositories plutôt que de piocher dans un singleton,
// ce qui permet de brancher un mock dans les tests.
type SessionProvider func() (*gocql.Session, error)

// CartRepository : la sous-collection users/{userId}/cart
type CartRepository interface {
	// ExistsByName : requête d'égalité sur le nom (appartenance au panier)
	ExistsByName(ctx context.Context, userID, name string) (bool, error)
	// InsertIfAbsent insère via LWT ; retourne false si un item du même nom existe déjà
	InsertIfAbsent(ctx context.Context, userID string, item models.CartItem) (bool, error)
	// DeleteByName supprime tous les items portant ce nom
	DeleteByName(ctx context.Context, userID, name string) error
	// DeleteByID supprime un item par son identifiant de document
	DeleteByID(ctx context.Context, userID, itemID string) error
	List(ctx context.Context, userID string) ([]models.CartItem, error)
	Clear(ctx context.Context, userID string) error
}
