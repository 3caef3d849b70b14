package user

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"farmlink_back_end/internal/database"
	"farmlink_back_end/internal/models"
	"farmlink_back_end/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
)

type CartHandler struct {
	Carts *services.CartService
}

func NewCartHandler(carts *services.CartService) *CartHandler {
	return &CartHandler{Carts: carts}
}

//
// 🛒 GET /api/cart
//
func (h *CartHandler) GetCart(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	items, err := h.Carts.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

//
// 🔁 POST /api/cart/toggle
//
func (h *CartHandler) ToggleCart(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	var input struct {
		Name     string `json:"name" binding:"required"`
		Price    string `json:"price"`
		Weight   string `json:"weight"`
		ImageURL string `json:"imageUrl"`
		// InCart : état observé par l'écran ; absent → le serveur vérifie lui-même
		InCart *bool `json:"inCart"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	ctx := c.Request.Context()

	currentlyInCart := h.Carts.IsInCart(ctx, userID, input.Name)
	if input.InCart != nil {
		currentlyInCart = *input.InCart
	}

	product := models.Product{
		Name:     input.Name,
		Price:    input.Price,
		Weight:   input.Weight,
		ImageURL: input.ImageURL,
	}

	if err := h.Carts.Toggle(ctx, userID, product, currentlyInCart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	items, err := h.Carts.List(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier"})
		return
	}

	h.publishCartUpdate(ctx, userID, items)

	c.JSON(http.StatusOK, gin.H{
		"inCart": !currentlyInCart,
		"items":  items,
	})
}

//
// ❌ DELETE /api/cart/:itemId
//
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	itemID := c.Param("itemId")
	ctx := c.Request.Context()

	if err := h.Carts.Remove(ctx, userID, itemID); err != nil {
		if errors.Is(err, gocql.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item introuvable dans le panier"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression item"})
		return
	}

	items, err := h.Carts.List(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier"})
		return
	}

	h.publishCartUpdate(ctx, userID, items)

	c.JSON(http.StatusOK, gin.H{
		"message": "Produit supprimé du panier",
		"items":   items,
	})
}

//
// 🧹 DELETE /api/cart
//
func (h *CartHandler) ClearCart(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	if err := h.Carts.Clear(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors du vidage du panier"})
		return
	}

	h.publishCartUpdate(c.Request.Context(), userID, []models.CartItem{})

	c.JSON(http.StatusOK, gin.H{"message": "Panier vidé avec succès"})
}

// publishCartUpdate notifie les websockets ouverts de ce user
func (h *CartHandler) publishCartUpdate(ctx context.Context, userID string, items []models.CartItem) {
	if database.Redis == nil {
		return
	}
	payload, err := json.Marshal(gin.H{"type": "cart_updated", "items": items})
	if err != nil {
		return
	}
	if err := database.Redis.Publish(ctx, "cartfeed:"+userID, payload).Err(); err != nil {
		log.Printf("⚠️ Publication cartfeed échouée pour %s: %v", userID, err)
	}
}
