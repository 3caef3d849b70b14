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

func seedCatalog(t *testing.T) (*services.CatalogService, *repositories.MockCatalogRepository) {
	t.Helper()

	users := repositories.NewMockUserRepository()
	catalog := repositories.NewMockCatalogRepository()
	ctx := context.Background()

	farmer1 := &models.User{Username: "Ravi", Email: "ravi@farm.in", Role: models.RoleFarmer, Provider: "local"}
	farmer2 := &models.User{Username: "Sita", Email: "sita@farm.in", Role: models.RoleFarmer, Provider: "local"}
	require.NoError(t, users.Create(ctx, farmer1))
	require.NoError(t, users.Create(ctx, farmer2))

	require.NoError(t, catalog.Insert(ctx, farmer1.ID, &models.Product{Name: "Tomato", Price: "40"}))
	require.NoError(t, catalog.Insert(ctx, farmer1.ID, &models.Product{Name: "Corn", Price: "25"}))
	require.NoError(t, catalog.Insert(ctx, farmer2.ID, &models.Product{Name: "tomatillo", Price: "90"}))

	return services.NewCatalogService(users, catalog), catalog
}

func TestCatalogService_FetchAllAggregatesAcrossUsers(t *testing.T) {
	svc, _ := seedCatalog(t)

	products, err := svc.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 3)

	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.OwnerID)
	}
	assert.ElementsMatch(t, []string{"Tomato", "Corn", "tomatillo"}, names)
}

func TestCatalogService_FetchAllEmpty(t *testing.T) {
	users := repositories.NewMockUserRepository()
	catalog := repositories.NewMockCatalogRepository()
	svc := services.NewCatalogService(users, catalog)

	products, err := svc.FetchAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, products)
	assert.NotNil(t, products)
}

func TestFilter_EmptyQueryIsIdentity(t *testing.T) {
	products := []models.Product{
		{Name: "Tomato"},
		{Name: "Corn"},
	}

	assert.Equal(t, products, services.Filter(products, ""))
}

func TestFilter_CaseInsensitiveSubstring(t *testing.T) {
	products := []models.Product{
		{Name: "Tomato"},
		{Name: "tomatillo"},
		{Name: "Corn"},
	}

	filtered := services.Filter(products, "tom")
	require.Len(t, filtered, 2)
	assert.Equal(t, "Tomato", filtered[0].Name)
	assert.Equal(t, "tomatillo", filtered[1].Name)

	filtered = services.Filter(products, "TOM")
	assert.Len(t, filtered, 2)
}

func TestFilter_NoMatch(t *testing.T) {
	products := []models.Product{{Name: "Corn"}}

	filtered := services.Filter(products, "banane")
	assert.Empty(t, filtered)
	assert.NotNil(t, filtered)
}

func TestFilter_ResultIsSubset(t *testing.T) {
	products := []models.Product{
		{Name: "Mangue"}, {Name: "Manioc"}, {Name: "Oignon"},
	}

	filtered := services.Filter(products, "man")
	for _, p := range filtered {
		assert.Contains(t, products, p)
	}
	assert.LessOrEqual(t, len(filtered), len(products))
}
