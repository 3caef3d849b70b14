package user

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"farmlink_back_end/internal/handlers"
	"farmlink_back_end/internal/models"
	"farmlink_back_end/internal/repositories"
	"farmlink_back_end/internal/services"
	"farmlink_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"
	"github.com/markbates/goth/gothic"
)

// AuthHandler : inscription, connexion et OAuth social.
// Les repositories sont injectés — pas de singleton pioché dans les handlers.
type AuthHandler struct {
	Users repositories.UserRepository
}

func NewAuthHandler(users repositories.UserRepository) *AuthHandler {
	return &AuthHandler{Users: users}
}

// ================== AUTH LOCALE ==================

//
// 🟢 POST /api/auth/register (multipart : champs + photo de profil)
//
func (h *AuthHandler) Register(c *gin.Context) {
	username := c.PostForm("username")
	email := c.PostForm("email")
	password := c.PostForm("password")
	confirmPassword := c.PostForm("confirmPassword")
	phone := c.PostForm("phone")
	address := c.PostForm("address")
	roleInput := c.PostForm("role")

	// Validation côté serveur avant tout appel distant
	if username == "" || email == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tous les champs obligatoires doivent être remplis"})
		return
	}
	if password != confirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Les mots de passe ne correspondent pas"})
		return
	}

	role, err := models.ParseRole(roleInput)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	// email déjà pris pour un compte local ?
	existing, err := h.Users.ByEmail(ctx, email, "local")
	if err != nil && !errors.Is(err, gocql.ErrNotFound) {
		// Base injoignable : on refuse plutôt que de risquer un doublon
		log.Printf("❌ Vérification email échouée pour %s: %v", email, err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service indisponible, réessayez plus tard"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Un compte avec cet email existe déjà"})
		return
	}

	// 🖼️ Photo de profil (optionnelle) vers MinIO
	profileImageURL := ""
	if file, header, err := c.Request.FormFile("profileImage"); err == nil {
		defer file.Close()
		profileImageURL, err = services.UploadImage(ctx, "users", file, header)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur upload image de profil: " + err.Error()})
			return
		}
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur hash mot de passe"})
		return
	}

	user := models.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		Phone:        phone,
		Address:      address,
		Role:         role,
		ProfileImage: profileImageURL,
		Password:     hashedPassword,
		Provider:     "local",
	}

	if err := h.Users.Create(ctx, &user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création utilisateur"})
		return
	}

	token, _ := utils.GenerateJWT(user)
	log.Printf("✅ Nouveau compte %s: %s", user.Role, user.Email)

	c.JSON(http.StatusCreated, gin.H{
		"token":        token,
		"userId":       user.ID,
		"username":     user.Username,
		"email":        user.Email,
		"role":         user.Role,
		"profileImage": user.ProfileImage,
	})
}

//
// 🔑 POST /api/auth/login
//
func (h *AuthHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Email == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email et mot de passe requis"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	user, err := h.Users.ByEmail(ctx, input.Email, "local")
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email ou mot de passe incorrect"})
		return
	}

	ok, err := utils.VerifyPassword(input.Password, user.Password)
	if err != nil || !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email ou mot de passe incorrect"})
		return
	}

	token, _ := utils.GenerateJWT(*user)
	c.JSON(http.StatusOK, gin.H{
		"token":        token,
		"userId":       user.ID,
		"username":     user.Username,
		"email":        user.Email,
		"role":         user.Role,
		"profileImage": user.ProfileImage,
	})
}

// GET /api/auth/me — les claims du token courant
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"user_id": c.GetString("user_id"),
		"email":   c.GetString("email"),
		"role":    c.GetString("role"),
	})
}

// ================== AUTH SOCIALE (WEB) ==================

func (h *AuthHandler) BeginAuth(c *gin.Context) {
	provider := c.Param("provider")
	if provider == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "aucun provider spécifié"})
		return
	}

	q := c.Request.URL.Query()
	q.Set("provider", provider)
	c.Request.URL.RawQuery = q.Encode()

	gothic.BeginAuthHandler(c.Writer, c.Request)
}

func (h *AuthHandler) CallbackAuth(c *gin.Context) {
	provider := c.Param("provider")
	if provider == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "aucun provider spécifié"})
		return
	}

	q := c.Request.URL.Query()
	q.Set("provider", provider)
	c.Request.URL.RawQuery = q.Encode()

	userInfo, err := gothic.CompleteUserAuth(c.Writer, c.Request)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	user, err := h.Users.ByEmail(ctx, userInfo.Email, provider)
	if err != nil {
		// Création d'un nouvel utilisateur social — consumer par défaut,
		// un farmer passe par l'inscription classique (photo, adresse, rôle)
		user = &models.User{
			ID:           uuid.NewString(),
			Username:     userInfo.Name,
			Email:        userInfo.Email,
			Role:         models.RoleConsumer,
			ProfileImage: userInfo.AvatarURL,
			Provider:     provider,
			ProviderID:   userInfo.UserID,
		}
		if err := h.Users.Create(ctx, user); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur enregistrement utilisateur"})
			return
		}
		log.Printf("✅ Nouveau compte social (%s): %s", provider, user.Email)
	}

	token, _ := utils.GenerateJWT(*user)
	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"provider": provider,
		"userId":   user.ID,
		"username": user.Username,
		"email":    user.Email,
		"role":     user.Role,
	})
}

// ================== AUTH SOCIALE (MOBILE) ==================

// MobileAuthURL : URL d'autorisation à ouvrir dans le navigateur de l'app.
// Le state est renvoyé au client, qui le revérifie à la redirection.
//
// 🔗 GET /api/auth/mobile/:provider/url
func (h *AuthHandler) MobileAuthURL(c *gin.Context) {
	providerName := c.Param("provider")
	provider, ok := handlers.Providers[providerName]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "provider inconnu: " + providerName})
		return
	}

	state := uuid.NewString()
	c.JSON(http.StatusOK, gin.H{
		"url":   provider.GetAuthURL(state),
		"state": state,
	})
}

// MobileExchange : l'app mobile envoie directement le code d'autorisation
//
// 🟢 POST /api/auth/mobile/:provider  { "code": "..." }
func (h *AuthHandler) MobileExchange(c *gin.Context) {
	providerName := c.Param("provider")
	provider, ok := handlers.Providers[providerName]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "provider inconnu: " + providerName})
		return
	}

	var input struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Code d'autorisation manquant"})
		return
	}

	token, err := provider.Exchange(input.Code)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Échange du code échoué"})
		return
	}

	// Récupère le profil depuis l'API du provider
	client := provider.Config.Client(c.Request.Context(), token)
	res, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération profil"})
		return
	}
	defer res.Body.Close()

	var info struct {
		ID      string `json:"id"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := json.NewDecoder(res.Body).Decode(&info); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur décodage profil"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	user, err := h.Users.ByEmail(ctx, info.Email, providerName)
	if err != nil {
		user = &models.User{
			ID:           uuid.NewString(),
			Username:     info.Name,
			Email:        info.Email,
			Role:         models.RoleConsumer,
			ProfileImage: info.Picture,
			Provider:     providerName,
			ProviderID:   info.ID,
		}
		if err := h.Users.Create(ctx, user); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur enregistrement utilisateur"})
			return
		}
	}

	jwtToken, _ := utils.GenerateJWT(*user)
	c.JSON(http.StatusOK, gin.H{
		"token":    jwtToken,
		"userId":   user.ID,
		"username": user.Username,
		"email":    user.Email,
		"role":     user.Role,
	})
}
