package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"chefinho_back_end/internal/handlers"
	"chefinho_back_end/internal/handlers/admin"
	"chefinho_back_end/internal/middleware"
)

func RegisterRoutes(r *gin.Engine) {
	// CORS liberado para o storefront, como nos endpoints originais.
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Authorization"},
		MaxAge:          12 * time.Hour,
	}))

	r.GET("/healthz", handlers.Health)

	api := r.Group("/api")
	{
		// Catálogo no KV store (variante Netlify)
		api.GET("/get-products", handlers.GetProducts)
		api.POST("/update-products", middleware.RequireBearer("ADMIN_TOKEN"), handlers.UpdateProducts)
		api.GET("/get-news", handlers.GetNews)
		api.POST("/update-news", middleware.RequireBearer("ADMIN_TOKEN"), handlers.UpdateNews)

		// Credenciais de upload do CDN de imagens
		api.Any("/imagekit-auth", handlers.ImageKitAuth)

		// Mídia no blob store
		api.POST("/upload-media", middleware.RequireBearer("AUTH_PASSWORD"), handlers.UploadMedia)

		// Sessão do painel admin
		api.POST("/auth/login", admin.Login)
		api.POST("/auth/validate", admin.ValidateToken)

		// CRUD de produtos (proxy Supabase com service role)
		api.Any("/admin/products", middleware.RequireBearer("ADMIN_API_TOKEN"), admin.Products)

		// Storefront
		api.GET("/storefront/products", handlers.StorefrontProducts)
		api.GET("/storefront/products/:id", handlers.StorefrontProduct)
		api.GET("/storefront/catalog", handlers.StorefrontCatalog)

		// Carrinho
		api.GET("/cart/:cartId", handlers.GetCart)
		api.POST("/cart/:cartId/items", handlers.AddToCart)
		api.PATCH("/cart/:cartId/items/:key", handlers.UpdateCartItem)
		api.DELETE("/cart/:cartId/items/:key", handlers.RemoveCartItem)
		api.DELETE("/cart/:cartId", handlers.ClearCart)

		// Checkout via WhatsApp
		api.POST("/checkout/:cartId", handlers.Checkout)
		api.GET("/checkout/:cartId/qr", handlers.CheckoutQR)
	}

	// Preview para crawlers de link e a mídia pública
	r.GET("/p/:id", handlers.Preview)
	r.GET("/media/*key", handlers.ServeMedia)
}
