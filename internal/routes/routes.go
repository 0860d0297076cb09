package routes

import (
	"github.com/gin-gonic/gin"

	"matjar_back_end/internal/handlers"
)

// RegisterRoutes branche toute la surface REST sur le moteur Gin.
func RegisterRoutes(r *gin.Engine, h *handlers.Handler) {
	api := r.Group("/api")

	api.GET("/health", h.Health)

	// Products
	api.GET("/products", h.GetProducts)
	api.POST("/products/analyze", h.AnalyzeProduct)
	api.GET("/products/:id", h.GetProduct)
	api.PATCH("/products/:id", h.UpdateProduct)
	api.DELETE("/products/:id", h.DeleteProduct)
	api.POST("/products/:id/marketing", h.GenerateMarketing)
	api.POST("/products/:id/marketing-image", h.GenerateMarketingImage)
	api.POST("/products/:id/chat", h.ChatAboutProduct)
	api.POST("/products/:id/chat/generate-image", h.ChatGenerateImage)
	api.GET("/products/:id/pdf", h.ExportProduct)
	api.GET("/products/:id/orders", h.GetProductOrders)

	// Orders
	api.GET("/orders", h.GetOrders)
	api.POST("/orders", h.CreateOrder)
	api.GET("/orders/:id", h.GetOrder)
	api.PATCH("/orders/:id", h.UpdateOrder)
	api.DELETE("/orders/:id", h.DeleteOrder)
	api.GET("/orders/:id/pdf", h.ExportOrder)

	// Images uploadées, servies depuis le disque avec un cache long :
	// les fichiers sont immuables (nom unique à l'upload).
	if h.Images.Local() {
		uploads := r.Group("/uploads", func(c *gin.Context) {
			c.Header("Cache-Control", "public, max-age=31536000, immutable")
			c.Next()
		})
		uploads.Static("/", h.Images.Dir())
	}
}
