package routes

import (
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"sent_back_end/internal/handlers"
	"sent_back_end/internal/middleware"
)

func RegisterRoutes(r *gin.Engine) {
	r.Use(corsMiddleware())

	// Sonde de vie (hors /api, pas de rate limit)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.Use(middleware.APIRateLimit())

	// --- Lecture publique (storefront) ---
	api.GET("/products", handlers.GetAllProducts)
	api.GET("/products/featured", handlers.GetFeaturedProducts)
	api.GET("/products/search", middleware.SearchRateLimit(), handlers.SearchProducts)
	api.GET("/products/category/:slug", handlers.GetProductsByCategory)
	api.GET("/products/:id", handlers.GetProductByID)

	api.GET("/categories", handlers.GetCategories)

	api.GET("/events", handlers.GetEvents)
	api.GET("/events/:id", handlers.GetEventByID)
	api.GET("/events/:id/qr", handlers.GetEventQR)

	content := api.Group("/content")
	{
		content.GET("/site-info", handlers.GetSiteInfo)
		content.GET("/about", handlers.GetAboutContent)
		content.GET("/contact", handlers.GetContactInfo)
		content.GET("/social", handlers.GetSocialMedia)
		content.GET("/hero", handlers.GetHeroContent)
		content.GET("/features", handlers.GetFeatures)
		content.GET("/nav-links", handlers.GetNavLinks)
		content.GET("/footer-links", handlers.GetFooterLinks)
	}

	api.GET("/assets", handlers.GetAssets)
	api.GET("/assets/key/:key", handlers.GetAssetByKey)

	// --- Authentification ---
	auth := api.Group("/auth")
	{
		auth.POST("/login", middleware.LoginRateLimit(), handlers.Login)
		auth.POST("/logout", handlers.Logout)
		auth.GET("/session", middleware.AuthRequired(), handlers.Session)
		auth.POST("/change-password", middleware.AuthRequired(), handlers.ChangePassword)
		auth.POST("/forgot-password", middleware.ForgotPasswordRateLimit(), handlers.ForgotPassword)
		auth.POST("/reset-password", handlers.ResetPassword)
	}

	// --- Back-office (admin uniquement) ---
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.AuthRequired(), middleware.RequireAdmin)
	{
		adminGroup.POST("/products", handlers.CreateProduct)
		adminGroup.PUT("/products/:id", handlers.UpdateProduct)
		adminGroup.DELETE("/products/:id", handlers.DeleteProduct)

		adminGroup.POST("/events", handlers.CreateEvent)
		adminGroup.PUT("/events/:id", handlers.UpdateEvent)
		adminGroup.DELETE("/events/:id", handlers.DeleteEvent)

		adminGroup.POST("/categories", handlers.CreateCategory)
		adminGroup.PUT("/categories/:slug", handlers.UpdateCategory)
		adminGroup.DELETE("/categories/:slug", handlers.DeleteCategory)

		adminGroup.PUT("/content/about", handlers.UpdateAboutContent)
		adminGroup.PUT("/content/contact", handlers.UpdateContactInfo)
		adminGroup.PUT("/content/social", handlers.UpdateSocialMedia)
		adminGroup.PUT("/content/site-info", handlers.UpdateSiteInfo)
		adminGroup.PUT("/content/hero", handlers.UpdateHeroContent)

		adminGroup.POST("/features", handlers.CreateFeature)
		adminGroup.PUT("/features/:id", handlers.UpdateFeature)
		adminGroup.DELETE("/features/:id", handlers.DeleteFeature)

		adminGroup.POST("/assets", handlers.CreateAsset)
		adminGroup.PUT("/assets/:id", handlers.UpdateAsset)
		adminGroup.DELETE("/assets/:id", handlers.DeleteAsset)
		adminGroup.POST("/assets/upload", handlers.UploadImage)
		adminGroup.GET("/assets/signed-url", handlers.GetSignedAssetURL)
	}
}

func corsMiddleware() gin.HandlerFunc {
	origins := []string{"http://localhost:5173"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
