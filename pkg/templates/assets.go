// Package templates builds the canned LINE messages the bot sends:
// flex cards for the service menu and product catalog, quick reply rows,
// explanation texts and the shared reply copy.
package templates

import "strings"

// Assets resolves public URLs for images referenced by rich messages
type Assets struct {
	baseURL string
}

// NewAssets creates an asset resolver. An empty base URL falls back to
// placeholder images so cards stay deliverable without a CDN.
func NewAssets(baseURL string) *Assets {
	return &Assets{baseURL: strings.TrimRight(baseURL, "/")}
}

// ImageURL returns the full URL for an image path like "services/40HZ.jpg"
func (a *Assets) ImageURL(path string) string {
	if a.baseURL == "" {
		return "https://via.placeholder.com/1024x640/CCCCCC/FFFFFF?text=" + strings.ReplaceAll(path, "/", "+")
	}
	// GCS buckets serve images directly, anything else goes through /static
	if strings.Contains(a.baseURL, "storage.googleapis.com") {
		return a.baseURL + "/images/" + path
	}
	return a.baseURL + "/static/images/" + path
}
