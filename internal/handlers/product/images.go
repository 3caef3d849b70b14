package product

import (
	"net/http"
	"time"

	"farmlink_back_end/internal/services"

	"github.com/gin-gonic/gin"
)

// =========================
// 🟢 UPLOAD IMAGE PRODUIT
// =========================
//
// L'app envoie d'abord la photo, récupère l'URL, puis crée le produit avec.
func (h *Handler) UploadProductImage(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fichier manquant"})
		return
	}
	defer file.Close()

	imageURL, err := services.UploadImage(c.Request.Context(), "products/"+userID, file, header)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur upload MinIO: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "✅ Image uploadée avec succès",
		"image_url": imageURL,
	})
}

// =========================
// 🔐 URL SIGNÉE POUR UNE IMAGE
// =========================
func (h *Handler) SignImageURL(c *gin.Context) {
	objectPath := c.Query("path")
	if objectPath == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "paramètre 'path' manquant"})
		return
	}

	signedURL, err := services.GenerateSignedURL(c.Request.Context(), objectPath, 24*time.Hour)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération URL signée"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"signed_url": signedURL})
}
