// Package web holds the browser assets served under /static/ and copied
// into static exports.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var embedded embed.FS

// Static returns the asset tree rooted at the static directory, so
// "js/contact.js" is the path of /static/js/contact.js.
func Static() fs.FS {
	sub, err := fs.Sub(embedded, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
