package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

type contextKey struct{}

// IdentityFromContext returns the verified admin identity set by
// RequireAdmin, or nil outside guarded routes.
func IdentityFromContext(ctx context.Context) *Identity {
	ident, _ := ctx.Value(contextKey{}).(*Identity)
	return ident
}

// RequireAdmin guards admin routes: missing or invalid token yields 401,
// a valid token without the administrator group yields 403. The verified
// identity is placed in the request context for handlers.
func (g *Gate) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := ExtractBearer(r.Header.Get("Authorization"))
		if token == "" {
			denyJSON(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		ident, err := g.Verify(r.Context(), token)
		if err != nil {
			log.Ctx(r.Context()).Debug().Err(err).Msg("token rejected")
			denyJSON(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		if !ident.IsAdmin {
			denyJSON(w, http.StatusForbidden, "Admin access required")
			return
		}

		ctx := context.WithValue(r.Context(), contextKey{}, ident)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func denyJSON(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
