package http

import (
	"net/http"
	"strings"
)

// GetFrontendURL returns the public base URL of the SPA, without a trailing slash.
// A configured URL wins; otherwise the URL is built from the forwarded request
// headers, assuming TLS termination at the proxy unless it says otherwise.
func GetFrontendURL(r *http.Request, configuredURL string) string {
	if configuredURL != "" {
		return strings.TrimRight(configuredURL, "/")
	}

	scheme := "https"
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "http" {
		scheme = "http"
	}

	host := r.Host
	if forwardedHost := r.Header.Get("X-Forwarded-Host"); forwardedHost != "" {
		// X-Forwarded-Host may list every proxy hop; the first is the client's
		host = strings.TrimSpace(strings.Split(forwardedHost, ",")[0])
	}
	if host == "" {
		host = "localhost"
	}

	return scheme + "://" + host
}
