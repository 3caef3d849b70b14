package product

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"farmlink_back_end/internal/cache"
	"farmlink_back_end/internal/database"
	"farmlink_back_end/internal/models"
	"farmlink_back_end/internal/repositories"
	"farmlink_back_end/internal/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Catalog  *services.CatalogService
	Products repositories.CatalogRepository
}

func NewHandler(catalog *services.CatalogService, products repositories.CatalogRepository) *Handler {
	return &Handler{Catalog: catalog, Products: products}
}

//
// 🟢 POST /api/products (farmers uniquement)
//
func (h *Handler) CreateProduct(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	var input struct {
		Name     string `json:"name" binding:"required"`
		Price    string `json:"price" binding:"required"`
		Weight   string `json:"weight"`
		ImageURL string `json:"imageUrl"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nom et prix obligatoires"})
		return
	}

	p := models.Product{
		Name:     input.Name,
		Price:    input.Price,
		Weight:   input.Weight,
		ImageURL: input.ImageURL,
	}

	if err := h.Products.Insert(c.Request.Context(), userID, &p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création produit: " + err.Error()})
		return
	}

	// 🔄 Indexation Elasticsearch + invalidation du cache catalogue
	go services.IndexProduct(p)
	cache.InvalidateCatalogCache(c.Request.Context())

	log.Printf("🌾 Nouveau produit publié: %s (farmer %s)", p.Name, userID)
	c.JSON(http.StatusCreated, p)
}

//
// 📋 GET /api/products?q=  (fil consumer, agrégé sur tous les farmers)
//
func (h *Handler) GetAllProducts(c *gin.Context) {
	ctx := c.Request.Context()

	products, err := h.fetchAllCached(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture produits: " + err.Error()})
		return
	}

	// Filtre en mémoire, insensible à la casse ; q vide → liste complète
	c.JSON(http.StatusOK, services.Filter(products, c.Query("q")))
}

//
// 🔎 GET /api/products/search?q=
//
func (h *Handler) SearchProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "paramètre 'q' manquant"})
		return
	}

	// 1️⃣ Elasticsearch en priorité
	results, err := services.SearchProducts(query)
	if err == nil && len(results) > 0 {
		c.JSON(http.StatusOK, results)
		return
	}

	// 2️⃣ Repli : agrégation + filtre en mémoire
	products, err := h.fetchAllCached(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture produits: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, services.Filter(products, query))
}

//
// 🧑‍🌾 GET /api/products/mine
//
func (h *Handler) MyProducts(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	products, err := h.Products.ByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture produits"})
		return
	}

	c.JSON(http.StatusOK, products)
}

// fetchAllCached : agrégation complète avec cache Redis devant
func (h *Handler) fetchAllCached(ctx context.Context) ([]models.Product, error) {
	// ✅ Vérifie le cache Redis
	if val, err := database.RedisClient.Get(ctx, cache.CatalogCacheKey).Result(); err == nil && val != "" {
		var cached []models.Product
		if err := json.Unmarshal([]byte(val), &cached); err == nil {
			return cached, nil
		}
	}

	products, err := h.Catalog.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	// ✅ Met en cache
	if data, err := json.Marshal(products); err == nil {
		database.RedisClient.Set(ctx, cache.CatalogCacheKey, data, cache.CatalogCacheTTL)
	}

	return products, nil
}
