package middleware

import (
	"net/http"
	"strings"

	"github.com/bookhive/bookhive-backend/internal/auth"
	"github.com/bookhive/bookhive-backend/pkg/ctxutil"
)

type assertionVerifier interface {
	Verify(token string) (auth.Identity, error)
}

// Identity stores the caller identity asserted by the presentation layer
// in a signed bearer token. A request without a token stays anonymous; a
// token that fails verification is rejected with 401.
func Identity(verifier assertionVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			id, err := verifier.Verify(token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := ctxutil.WithUserID(r.Context(), id.AccountID)
			ctx = ctxutil.WithUserRole(ctx, id.Role.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}
