package services_test

import (
	"context"
	"testing"

	"farmlink_back_end/internal/models"
	"farmlink_back_end/internal/repositories"
	"farmlink_back_end/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartService() (*services.CartService, *repositories.MockCartRepository) {
	repo := repositories.NewMockCartRepository()
	return services.NewCartService(repo), repo
}

func TestCartService_ToggleAddsProduct(t *testing.T) {
	svc, _ := newCartService()
	ctx := context.Background()

	product := models.Product{Name: "Tomato", Price: "40", Weight: "1kg", ImageURL: "http://img/tomato.jpg"}

	err := svc.Toggle(ctx, "user-1", product, false)
	require.NoError(t, err)

	assert.True(t, svc.IsInCart(ctx, "user-1", "Tomato"))

	items, err := svc.List(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Tomato", items[0].Name)
	assert.Equal(t, "40", items[0].Price)
	assert.Equal(t, "1kg", items[0].Weight)
	assert.NotEmpty(t, items[0].ID)
}

func TestCartService_ToggleTwiceRestoresMembership(t *testing.T) {
	svc, _ := newCartService()
	ctx := context.Background()

	product := models.Product{Name: "Corn", Price: "25"}

	// absent → ajouté → retiré : retour à l'état initial
	require.NoError(t, svc.Toggle(ctx, "user-1", product, false))
	assert.True(t, svc.IsInCart(ctx, "user-1", "Corn"))

	require.NoError(t, svc.Toggle(ctx, "user-1", product, true))
	assert.False(t, svc.IsInCart(ctx, "user-1", "Corn"))

	items, err := svc.List(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartService_DuplicateInsertIsNoOp(t *testing.T) {
	svc, _ := newCartService()
	ctx := context.Background()

	product := models.Product{Name: "Milk", Price: "30"}

	// Deux toggles qui ont tous les deux observé "absent" :
	// le second INSERT n'est pas appliqué, pas de doublon
	require.NoError(t, svc.Toggle(ctx, "user-1", product, false))
	require.NoError(t, svc.Toggle(ctx, "user-1", product, false))

	items, err := svc.List(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestCartService_IsInCart_EmptyUserFailsOpen(t *testing.T) {
	svc, _ := newCartService()

	assert.False(t, svc.IsInCart(context.Background(), "", "Tomato"))
}

func TestCartService_IsInCart_MissingProduct(t *testing.T) {
	svc, _ := newCartService()

	assert.False(t, svc.IsInCart(context.Background(), "user-1", "Tomato"))
}

func TestCartService_RemoveByID(t *testing.T) {
	svc, _ := newCartService()
	ctx := context.Background()

	require.NoError(t, svc.Toggle(ctx, "user-1", models.Product{Name: "Apples", Price: "80"}, false))
	require.NoError(t, svc.Toggle(ctx, "user-1", models.Product{Name: "Beans", Price: "60"}, false))

	items, err := svc.List(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, items, 2)

	var apples models.CartItem
	for _, item := range items {
		if item.Name == "Apples" {
			apples = item
		}
	}
	require.NotEmpty(t, apples.ID)

	require.NoError(t, svc.Remove(ctx, "user-1", apples.ID))

	remaining, err := svc.List(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "Beans", remaining[0].Name)
}

func TestCartService_RemoveUnknownID(t *testing.T) {
	svc, _ := newCartService()

	err := svc.Remove(context.Background(), "user-1", "not-there")
	assert.Error(t, err)
}

func TestCartService_TogglesAreScopedPerUser(t *testing.T) {
	svc, _ := newCartService()
	ctx := context.Background()

	product := models.Product{Name: "Honey", Price: "120"}

	require.NoError(t, svc.Toggle(ctx, "user-1", product, false))

	assert.True(t, svc.IsInCart(ctx, "user-1", "Honey"))
	assert.False(t, svc.IsInCart(ctx, "user-2", "Honey"))
}

func TestCartService_Clear(t *testing.T) {
	svc, _ := newCartService()
	ctx := context.Background()

	require.NoError(t, svc.Toggle(ctx, "user-1", models.Product{Name: "Rice", Price: "55"}, false))
	require.NoError(t, svc.Clear(ctx, "user-1"))

	items, err := svc.List(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, items)
}
