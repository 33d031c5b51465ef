package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// ValidateRoute rejects empty routes and routes not starting with "/"
func ValidateRoute(route string) error {
	if route == "" || !strings.HasPrefix(route, "/") {
		return goerr.Wrap(ErrInvalidRoute, "cannot navigate", goerr.V("route", route))
	}
	return nil
}
