package routes

import (
	"farmlink_back_end/internal/handlers"
	"farmlink_back_end/internal/handlers/payement"
	"farmlink_back_end/internal/handlers/product"
	"farmlink_back_end/internal/handlers/user"
	"farmlink_back_end/internal/middleware"
	"farmlink_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Auth    *user.AuthHandler
	Profile *user.ProfileHandler
	Cart    *user.CartHandler
	Product *product.Handler
	Payment *payement.Handler
	Weather *handlers.WeatherHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	api := r.Group("/api")
	api.Use(middleware.APIRateLimit())

	// --- Auth ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", middleware.RegisterRateLimit(), h.Auth.Register)
		auth.POST("/login", middleware.LoginRateLimit(), h.Auth.Login)
		auth.GET("/me", middleware.AuthRequired(), h.Auth.Me)

		// OAuth web (cookies gothic) et mobile (échange direct du code)
		auth.GET("/:provider", h.Auth.BeginAuth)
		auth.GET("/:provider/callback", h.Auth.CallbackAuth)
		auth.GET("/mobile/:provider/url", h.Auth.MobileAuthURL)
		auth.POST("/mobile/:provider", h.Auth.MobileExchange)
	}

	// --- Profil ---
	api.GET("/profile", middleware.AuthRequired(), h.Profile.GetProfile)
	api.PUT("/profile", middleware.AuthRequired(), h.Profile.UpdateProfile)

	// --- Catalogue produits ---
	products := api.Group("/products")
	{
		products.GET("", h.Product.GetAllProducts)
		products.GET("/search", h.Product.SearchProducts)
		products.GET("/sign-url", middleware.AuthRequired(), h.Product.SignImageURL)

		// Publication réservée aux farmers
		products.GET("/mine", middleware.AuthRequired(), middleware.RequireRole(models.RoleFarmer), h.Product.MyProducts)
		products.POST("", middleware.AuthRequired(), middleware.RequireRole(models.RoleFarmer), h.Product.CreateProduct)
		products.POST("/upload", middleware.AuthRequired(), middleware.RequireRole(models.RoleFarmer), h.Product.UploadProductImage)
	}

	// --- Panier ---
	cart := api.Group("/cart", middleware.AuthRequired())
	{
		cart.GET("", h.Cart.GetCart)
		cart.POST("/toggle", h.Cart.ToggleCart)
		cart.DELETE("/:itemId", h.Cart.RemoveFromCart)
		cart.DELETE("", h.Cart.ClearCart)
		cart.GET("/ws", h.Cart.CartWebSocket)
	}

	// --- Paiement ---
	payment := api.Group("/payment")
	{
		payment.POST("/intent", middleware.AuthRequired(), h.Payment.CreatePaymentIntent)
		payment.GET("/upi-qr", middleware.AuthRequired(), h.Payment.UPIQR)
		// Pas d'auth : Stripe signe ses appels
		payment.POST("/webhook", h.Payment.StripeWebhook)
	}

	// --- Commandes ---
	api.GET("/orders", middleware.AuthRequired(), h.Payment.MyOrders)

	// --- Météo (écran d'accueil farmer) ---
	api.GET("/weather", middleware.AuthRequired(), h.Weather.GetWeather)
}
