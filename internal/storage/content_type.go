package storage

import (
	"io"
	"mime"
	"net/http"
	"path"
	"strings"
)

// =============================================================================
// Content Type Detection
// =============================================================================

// siteTypes pins the types of the files a site export produces, so the
// result does not depend on the host's mime tables.
var siteTypes = map[string]string{
	".html":        "text/html; charset=utf-8",
	".css":         "text/css; charset=utf-8",
	".js":          "text/javascript; charset=utf-8",
	".json":        "application/json",
	".svg":         "image/svg+xml",
	".png":         "image/png",
	".jpg":         "image/jpeg",
	".jpeg":        "image/jpeg",
	".webp":        "image/webp",
	".ico":         "image/x-icon",
	".txt":         "text/plain; charset=utf-8",
	".xml":         "application/xml",
	".webmanifest": "application/manifest+json",
	".woff2":       "font/woff2",
}

// DetectContentType determines the MIME type of a file.
//
// Detection priority:
// 1. If providedType is non-empty, use it directly
// 2. Look up the extension in the site table, then mime.TypeByExtension
// 3. Sniff content from the first 512 bytes of data (if available)
// 4. Fall back to "application/octet-stream"
func DetectContentType(providedType, filename string, data io.Reader) string {
	if providedType != "" {
		return providedType
	}

	ext := strings.ToLower(path.Ext(filename))
	if contentType, ok := siteTypes[ext]; ok {
		return contentType
	}
	if contentType := mime.TypeByExtension(ext); contentType != "" {
		return contentType
	}

	if data != nil {
		buffer := make([]byte, 512)
		n, err := io.ReadFull(data, buffer)
		if err == nil || err == io.EOF || err == io.ErrUnexpectedEOF {
			return http.DetectContentType(buffer[:n])
		}
	}

	return "application/octet-stream"
}

// =============================================================================
// Cache Policy
// =============================================================================

const (
	cacheRevalidate = "no-cache"
	cacheAssets     = "public, max-age=3600"
)

// CacheControlFor returns the Cache-Control value for a published key.
// Pages and the manifest revalidate on every request so a new export is
// visible at once; static assets may be cached briefly.
func CacheControlFor(key string) string {
	switch strings.ToLower(path.Ext(key)) {
	case ".html", ".json", "":
		return cacheRevalidate
	default:
		return cacheAssets
	}
}

// IsPage reports whether the key is an HTML document.
func IsPage(key string) bool {
	baseType := strings.Split(DetectContentType("", key, nil), ";")[0]
	return strings.TrimSpace(baseType) == "text/html"
}
