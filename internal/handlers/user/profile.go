package user

import (
	"net/http"

	"farmlink_back_end/internal/cache"
	"farmlink_back_end/internal/repositories"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	Users repositories.UserRepository
}

func NewProfileHandler(users repositories.UserRepository) *ProfileHandler {
	return &ProfileHandler{Users: users}
}

//
// 👤 GET /api/profile
//
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	user, err := cache.GetProfileFromCache(c.Request.Context(), h.Users, userID)
	if err != nil {
		// Profil introuvable pour un token valide : compte supprimé,
		// le client doit repasser par le login
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Profil introuvable, reconnectez-vous"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":           user.ID,
		"username":     user.Username,
		"email":        user.Email,
		"phone":        user.Phone,
		"address":      user.Address,
		"role":         user.Role,
		"profileImage": user.ProfileImage,
	})
}

//
// ✏️ PUT /api/profile — champs modifiables uniquement (jamais email ni rôle)
//
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	var input struct {
		Username     *string `json:"username"`
		Phone        *string `json:"phone"`
		Address      *string `json:"address"`
		ProfileImage *string `json:"profileImage"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	ctx := c.Request.Context()

	user, err := h.Users.ByID(ctx, userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Profil introuvable, reconnectez-vous"})
		return
	}

	if input.Username != nil {
		if *input.Username == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Le nom d'utilisateur ne peut pas être vide"})
			return
		}
		user.Username = *input.Username
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Address != nil {
		user.Address = *input.Address
	}
	if input.ProfileImage != nil {
		user.ProfileImage = *input.ProfileImage
	}

	if err := h.Users.Update(ctx, user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour du profil"})
		return
	}

	// Le prochain GET /api/profile relira la base
	cache.InvalidateProfileCache(ctx, userID)

	c.JSON(http.StatusOK, gin.H{
		"id":           user.ID,
		"username":     user.Username,
		"email":        user.Email,
		"phone":        user.Phone,
		"address":      user.Address,
		"role":         user.Role,
		"profileImage": user.ProfileImage,
	})
}
