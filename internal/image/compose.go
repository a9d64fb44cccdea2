package imagepkg

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

const (
	sheetWidth  = 2150
	sheetHeight = 2048

	heroWidth  = 400
	heroHeight = 600

	cardWidth  = 215
	cardHeight = 300

	margin  = 48
	padding = 8

	qrSize = 400
)

// ComposeDeckSheet renders a shareable deck sheet: hero art across the
// top, the card grid below, and the deck code QR in the top right corner.
// Missing images are simply skipped.
func ComposeDeckSheet(heroes []image.Image, cardArt []image.Image, qr image.Image) image.Image {
	canvas := imaging.New(sheetWidth, sheetHeight, color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff})

	x := margin
	for _, h := range heroes {
		if h == nil {
			continue
		}
		resized := imaging.Resize(h, heroWidth, heroHeight, imaging.Lanczos)
		canvas = imaging.Paste(canvas, resized, image.Pt(x, margin))
		x += heroWidth + padding
		if x+heroWidth > sheetWidth-margin-qrSize {
			break
		}
	}

	if qr != nil {
		resized := imaging.Resize(qr, qrSize, qrSize, imaging.Lanczos)
		canvas = imaging.Paste(canvas, resized, image.Pt(sheetWidth-margin-qrSize, margin))
	}

	x, y := margin, margin+heroHeight+margin
	for _, c := range cardArt {
		if c == nil {
			continue
		}
		resized := imaging.Resize(c, cardWidth, cardHeight, imaging.Lanczos)
		canvas = imaging.Paste(canvas, resized, image.Pt(x, y))
		x += cardWidth + padding
		if x+cardWidth > sheetWidth-margin {
			x = margin
			y += cardHeight + padding
		}
		if y+cardHeight > sheetHeight-margin {
			break
		}
	}

	return canvas
}
