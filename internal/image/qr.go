package imagepkg

import (
	"image"

	qrcode "github.com/skip2/go-qrcode"
)

// Deck codes are pure ASCII, so even large decks fit comfortably in QR
// byte mode at medium error correction.
const qrRecovery = qrcode.Medium

// DeckQRPNG renders a deck code as PNG bytes, ready to serve.
func DeckQRPNG(code string, size int) ([]byte, error) {
	return qrcode.Encode(code, qrRecovery, size)
}

// DeckQRImage renders the QR as an image.Image for sheet composition.
func DeckQRImage(code string, size int) (image.Image, error) {
	q, err := qrcode.New(code, qrRecovery)
	if err != nil {
		return nil, err
	}
	return q.Image(size), nil
}
