package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/siyanda-labs/contractor-backend-go/internal/domain/auth"
)

// claimString pulls a string claim from the verified access token.
func claimString(r *http.Request, key string) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", err
	}
	value, ok := claims[key].(string)
	if !ok || value == "" {
		return "", auth.ErrInvalidToken
	}
	return value, nil
}
