package main

import (
	"errors"
	"log"
	"net/http"
	"os"

	"farmlink_back_end/internal/config"
	"farmlink_back_end/internal/database"
	"farmlink_back_end/internal/handlers"
	"farmlink_back_end/internal/handlers/payement"
	"farmlink_back_end/internal/handlers/product"
	"farmlink_back_end/internal/handlers/user"
	"farmlink_back_end/internal/repositories"
	"farmlink_back_end/internal/routes"
	"farmlink_back_end/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/facebook"
	"github.com/markbates/goth/providers/google"
	"github.com/stripe/stripe-go/v83"
)

func main() {
	config.Load()

	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	if stripe.Key == "" {
		log.Println("⚠️ Pas de clé Stripe — paiement en mode maquette")
	} else {
		log.Println("✅ Stripe initialisé")
	}

	database.ConnectDatabases()

	initOAuthProviders()
	handlers.InitProviders()

	// --- Repositories (Scylla) ---
	userRepo := repositories.NewScyllaUserRepository(database.GetUsersSession)
	cartRepo := repositories.NewScyllaCartRepository(database.GetUsersSession)
	orderRepo := repositories.NewScyllaOrderRepository(database.GetUsersSession)
	catalogRepo := repositories.NewScyllaCatalogRepository(database.GetCatalogSession)

	// --- Services ---
	cartService := services.NewCartService(cartRepo)
	catalogService := services.NewCatalogService(userRepo, catalogRepo)
	weatherService := services.NewWeatherService("", os.Getenv("OPENWEATHER_API_KEY"))

	// --- Handlers ---
	h := routes.Handlers{
		Auth:    user.NewAuthHandler(userRepo),
		Profile: user.NewProfileHandler(userRepo),
		Cart:    user.NewCartHandler(cartService),
		Product: product.NewHandler(catalogService, catalogRepo),
		Payment: payement.NewHandler(cartService, orderRepo),
		Weather: handlers.NewWeatherHandler(weatherService),
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	routes.RegisterRoutes(r, h)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Serveur FarmLink lancé sur le port", port)
	r.Run(":" + port)
}

func initOAuthProviders() {
	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		log.Println("⚠️ SESSION_SECRET manquant — OAuth web désactivé")
		return
	}

	store := sessions.NewCookieStore([]byte(sessionSecret))
	store.MaxAge(86400 * 30)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		Secure:   false, // false en dev, true en prod
		SameSite: http.SameSiteLaxMode,
	}

	gothic.Store = store

	gothic.GetProviderName = func(req *http.Request) (string, error) {
		if provider := req.URL.Query().Get("provider"); provider != "" {
			return provider, nil
		}
		if provider := req.FormValue("provider"); provider != "" {
			return provider, nil
		}
		return "", errors.New("provider not found")
	}

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	googleClientID := os.Getenv("GOOGLE_CLIENT_ID")
	googleClientSecret := os.Getenv("GOOGLE_CLIENT_SECRET")
	facebookClientID := os.Getenv("FACEBOOK_CLIENT_ID")
	facebookClientSecret := os.Getenv("FACEBOOK_CLIENT_SECRET")

	var providers []goth.Provider

	if googleClientID != "" && googleClientSecret != "" {
		providers = append(providers, google.New(
			googleClientID,
			googleClientSecret,
			baseURL+"/api/auth/google/callback",
		))
		log.Println("✅ Google OAuth activé")
	}

	if facebookClientID != "" && facebookClientSecret != "" {
		providers = append(providers, facebook.New(
			facebookClientID,
			facebookClientSecret,
			baseURL+"/api/auth/facebook/callback",
		))
		log.Println("✅ Facebook OAuth activé")
	}

	if len(providers) == 0 {
		log.Println("⚠️ Aucun provider OAuth configuré")
		return
	}

	goth.UseProviders(providers...)
	log.Printf("✅ %d OAuth provider(s) initialisé(s)", len(providers))
}
