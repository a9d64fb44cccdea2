package util

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultClient is used for all outbound fetches unless a caller brings
// its own.
var DefaultClient = &http.Client{Timeout: 12 * time.Second}

// GetBytes fetches a URL and returns the response body.
func GetBytes(client *http.Client, url string) ([]byte, error) {
	if client == nil {
		client = DefaultClient
	}
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: unexpected status %s", url, resp.Status)
	}
	return io.ReadAll(resp.Body)
}
