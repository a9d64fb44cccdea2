package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/youruser/artifactdeck/internal/api"
	"github.com/youruser/artifactdeck/internal/cards"
)

func main() {
	dataDir := os.Getenv("DECKAPP_DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	// Load the card catalog at startup (best-effort); the codec endpoints
	// work without it.
	catalog, err := cards.LoadCatalog(cards.LoadOptions{
		Language: os.Getenv("DECKAPP_LANGUAGE"),
		DataDir:  dataDir,
	})
	if err != nil {
		log.Println("Warning: failed to load card sets at startup:", err)
	}

	r := gin.Default()
	api.RegisterRoutes(r, catalog)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("starting server on http://localhost:" + port)
	if err := r.Run(":" + port); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
