package site

import (
	"fmt"
	"strings"
)

// ExportMode selects the deployment target.
type ExportMode string

const (
	// ExportStatic pre-renders the page into files; no server process at request time.
	ExportStatic ExportMode = "static"

	// ExportServer renders the page per request from a running server.
	ExportServer ExportMode = "server"
)

// Valid reports whether m is a known mode.
func (m ExportMode) Valid() bool {
	return m == ExportStatic || m == ExportServer
}

func (m ExportMode) String() string {
	return string(m)
}

// NormalizeBasePath cleans a sub-path prefix into the form "/prefix".
// The empty string and "/" both mean root hosting and normalize to "".
func NormalizeBasePath(p string) (string, error) {
	p = strings.TrimSpace(p)
	p = strings.Trim(p, "/")
	if p == "" {
		return "", nil
	}
	if strings.ContainsAny(p, "?#\\ ") {
		return "", fmt.Errorf("invalid base path %q", p)
	}
	for _, seg := range strings.Split(p, "/") {
		if seg == "" || seg == "." || seg == ".." {
			return "", fmt.Errorf("invalid base path %q", p)
		}
	}
	return "/" + p, nil
}

// AssetPath resolves an asset reference against basePath.
// Absolute URLs (http, https, protocol-relative, data) are returned unchanged.
func AssetPath(basePath, ref string) string {
	switch {
	case ref == "":
		return ""
	case strings.HasPrefix(ref, "http://"),
		strings.HasPrefix(ref, "https://"),
		strings.HasPrefix(ref, "//"),
		strings.HasPrefix(ref, "data:"):
		return ref
	case strings.HasPrefix(ref, "/"):
		return basePath + ref
	default:
		return basePath + "/" + ref
	}
}

// PagePath returns the trailing-slash URL for a page below basePath.
// PagePath("/landing", "") is "/landing/".
func PagePath(basePath, page string) string {
	page = strings.Trim(page, "/")
	if page == "" {
		return basePath + "/"
	}
	return basePath + "/" + page + "/"
}
