package api

import (
	"github.com/gin-gonic/gin"

	"github.com/youruser/artifactdeck/internal/cards"
)

// RegisterRoutes mounts the API. The catalog may be nil when loading
// failed at startup; catalog-backed endpoints then answer 503.
func RegisterRoutes(r *gin.Engine, catalog *cards.Catalog) {
	h := &handlers{catalog: catalog}
	api := r.Group("/api")
	{
		api.GET("/health", health)
		api.GET("/decode", decodeHandler)
		api.POST("/encode", encodeHandler)
		api.POST("/filter", h.filterHandler)
		api.GET("/qr", qrHandler)
		api.POST("/deck/image", h.deckImageHandler)
	}
}
