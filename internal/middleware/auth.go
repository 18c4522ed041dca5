package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/morph-studio/storefront-api/internal/config"
)

// AdminKeyHeader carries the key issued by the login endpoint
const AdminKeyHeader = "X-Admin-Key"

// AdminAuth middleware gates the admin mutation endpoints on the
// configured admin API key. Like the login check itself this is a
// placeholder trust boundary, not a real session mechanism.
func AdminAuth(cfg config.AdminConfig) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(AdminKeyHeader)

			if key == "" {
				http.Error(w, "Unauthorized: admin key required", http.StatusUnauthorized)
				return
			}

			if subtle.ConstantTimeCompare([]byte(key), []byte(cfg.APIKey)) != 1 {
				http.Error(w, "Forbidden: invalid admin key", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
