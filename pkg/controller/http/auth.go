package http

import (
	"strings"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/holodeck/pkg/domain/model"
)

const bearerPrefix = "Bearer "

// tokenSkew tolerates clock drift between the token issuer and this server
const tokenSkew = 30 * time.Second

// ParseBearerToken reads the caller's credentials from an Authorization header.
// The signature is not verified here; the data service verifies every forwarded
// token. Expired tokens are rejected.
func ParseBearerToken(header string, now time.Time) (*model.AuthContext, error) {
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return nil, goerr.New("missing bearer token", goerr.T(model.ErrTagAuth))
	}
	raw := strings.TrimSpace(header[len(bearerPrefix):])

	token, err := jwt.ParseString(raw,
		jwt.WithVerify(false),
		jwt.WithValidate(true),
		jwt.WithClock(jwt.ClockFunc(func() time.Time { return now })),
		jwt.WithAcceptableSkew(tokenSkew),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid bearer token", goerr.T(model.ErrTagAuth))
	}

	return &model.AuthContext{
		Subject:   token.Subject(),
		Token:     raw,
		ExpiresAt: token.Expiration(),
	}, nil
}
