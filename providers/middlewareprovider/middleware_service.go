package middlewareprovider

import (
	"context"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"inventory/models"
	"inventory/providers"
	"inventory/utils"
)

type contextKey string

const identityContextKey contextKey = "identity_key"

type DefaultAuthMiddleware struct {
	tokens providers.TokenProvider
}

func NewAuthMiddlewareService(tokens providers.TokenProvider) providers.AuthMiddlewareService {
	return &DefaultAuthMiddleware{
		tokens: tokens,
	}
}

func (a *DefaultAuthMiddleware) JWTAuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			accessToken := strings.TrimSpace(r.Header.Get("Authorization"))
			accessToken = strings.TrimSpace(strings.TrimPrefix(accessToken, "Bearer "))

			if accessToken == "" {
				utils.RespondError(w, http.StatusUnauthorized, errors.New("missing access token"), "missing access token")
				return
			}

			identity, err := a.tokens.ParseJWT(accessToken)
			if err != nil {
				utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
				return
			}

			ctx := WithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (a *DefaultAuthMiddleware) RequireRole(allowedRoles ...models.Role) func(http.Handler) http.Handler {
	allowed := make(map[models.Role]bool)
	for _, role := range allowedRoles {
		allowed[role] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := a.GetUserFromContext(r)
			if err != nil {
				utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
				return
			}
			if !allowed[identity.Role] {
				utils.RespondError(w, http.StatusForbidden, nil, "forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (a *DefaultAuthMiddleware) GetUserFromContext(r *http.Request) (models.Identity, error) {
	identity, ok := r.Context().Value(identityContextKey).(models.Identity)
	if !ok {
		return models.Identity{}, errors.New("user not found in context")
	}
	return identity, nil
}

// WithIdentity stores an authenticated identity the way JWTAuthMiddleware does.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, identity)
}
