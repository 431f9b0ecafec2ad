package session

import (
	"context"
	"net/http"
)

type contextKey string

const userKey = contextKey("sessionUser")

// RequireAuth creates a middleware that redirects unauthenticated callers
// to the login page and stores the authenticated username in the request
// context for downstream handlers.
func RequireAuth(sessions *Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, ok := sessions.CurrentUser(r)
			if !ok {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UsernameFromContext returns the username stored by RequireAuth.
func UsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(userKey).(string)
	return username, ok
}
