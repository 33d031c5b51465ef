// Package frontend embeds the built analyst SPA.
package frontend

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed all:dist
var dist embed.FS

// indexFile marks a usable build; an empty dist only carries placeholders
const indexFile = "index.html"

// GetHTTPFS returns the SPA build for the HTTP server. It fails when the build has no
// index page.
func GetHTTPFS() (http.FileSystem, error) {
	root, err := fs.Sub(dist, "dist")
	if err != nil {
		return nil, err
	}
	if _, err := fs.Stat(root, indexFile); err != nil {
		return nil, err
	}
	return http.FS(root), nil
}
