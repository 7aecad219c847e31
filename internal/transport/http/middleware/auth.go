package middleware

import (
	"context"
	"net/http"
	"strings"

	"koala/internal/domain/auth"
	"koala/internal/transport/http/api"
)

// Auth attaches the admin session to the request context when a valid
// bearer token is presented. Requests without one pass through; the
// admin-only routes reject them in RequireAdmin.
func Auth(sessions *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				next.ServeHTTP(w, r)
				return
			}

			session, err := sessions.Parse(parts[1])
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeySession, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetSession(ctx context.Context) (auth.Session, bool) {
	session, ok := ctx.Value(ctxKeySession).(auth.Session)
	return session, ok
}

func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := GetSession(r.Context())
		if !ok || !session.AdminUnlocked() {
			api.Fail(w, http.StatusUnauthorized, "admin_locked", "admin unlock required", GetRequestID(r.Context()))
			return
		}
		next.ServeHTTP(w, r)
	})
}
