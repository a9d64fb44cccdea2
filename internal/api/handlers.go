package api

import (
	"bytes"
	"image"
	"image/png"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/youruser/artifactdeck/internal/cards"
	"github.com/youruser/artifactdeck/internal/deck"
	"github.com/youruser/artifactdeck/internal/deckcode"
	imagepkg "github.com/youruser/artifactdeck/internal/image"
)

type handlers struct {
	catalog *cards.Catalog
}

// health
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// decode a deck code passed as ?code=
func decodeHandler(c *gin.Context) {
	contents, err := deckcode.Decode(c.Query("code"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, contents)
}

// encode posted deck contents into a deck code
func encodeHandler(c *gin.Context) {
	var contents deckcode.DeckContents
	if err := c.ShouldBindJSON(&contents); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	code, err := deckcode.Encode(contents)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": code})
}

// filter the loaded catalog with posted options
func (h *handlers) filterHandler(c *gin.Context) {
	if h.catalog == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "card catalog not loaded"})
		return
	}
	var opt cards.FilterOptions
	if err := c.ShouldBindJSON(&opt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out := cards.Apply(h.catalog.All(), opt)
	c.JSON(http.StatusOK, gin.H{"count": len(out), "cards": out})
}

// qr endpoint returns a PNG QR of the deck code in the "code" query param
func qrHandler(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing code parameter"})
		return
	}
	size := 400
	if sizeStr := c.Query("size"); sizeStr != "" {
		if v, err := strconv.Atoi(sizeStr); err == nil {
			size = v
		}
	}
	b, err := imagepkg.DeckQRPNG(code, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

// deck sheet: decodes the posted code, pulls card art from the catalog
// urls (best-effort) and composes a shareable PNG
func (h *handlers) deckImageHandler(c *gin.Context) {
	if h.catalog == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "card catalog not loaded"})
		return
	}
	var req struct {
		Code string `json:"code"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	d, err := deck.FromCode(req.Code, h.catalog)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var heroArt []image.Image
	for _, hero := range d.Heroes {
		if hero.Card.LargeImage == "" {
			continue
		}
		img, err := imagepkg.DownloadImage(nil, hero.Card.LargeImage)
		if err != nil {
			log.Println("hero art download error:", err)
			continue
		}
		heroArt = append(heroArt, img)
	}

	var cardArt []image.Image
	for i, slot := range d.Cards {
		if i >= 40 || slot.Card.LargeImage == "" {
			continue
		}
		img, err := imagepkg.DownloadImage(nil, slot.Card.LargeImage)
		if err != nil {
			log.Println("card art download error:", err)
			continue
		}
		cardArt = append(cardArt, img)
	}

	qr, err := imagepkg.DeckQRImage(req.Code, 400)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	sheet := imagepkg.ComposeDeckSheet(heroArt, cardArt, qr)
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, sheet); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
