package middleware

import (
	"net/http"
	"strings"

	"github.com/hongminglow/user-service/internal/auth"
	"github.com/hongminglow/user-service/internal/http/respond"
	"github.com/hongminglow/user-service/internal/logger"
)

// Bearer rejects requests that lack a token the manager accepts.
func Bearer(tokens *auth.TokenManager, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			respond.Error(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		subject, err := tokens.Verify(strings.TrimSpace(raw))
		if err != nil {
			logger.Debug("auth: rejected token: %v", err)
			respond.Error(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		logger.Debug("auth: %s %s by %s", r.Method, r.URL.Path, subject)
		next.ServeHTTP(w, r)
	})
}
