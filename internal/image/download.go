package imagepkg

import (
	"bytes"
	"image"
	"net/http"

	"github.com/disintegration/imaging"

	"github.com/youruser/artifactdeck/internal/util"
)

// DownloadImage fetches card art from a URL and decodes it.
func DownloadImage(client *http.Client, url string) (image.Image, error) {
	body, err := util.GetBytes(client, url)
	if err != nil {
		return nil, err
	}
	return imaging.Decode(bytes.NewReader(body))
}
