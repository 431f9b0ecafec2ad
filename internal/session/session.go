// Package session implements cookie-based session identity and one-shot
// flash messages. A session holds exactly one username; an absent or
// invalid session is a normal state, not an error.
package session

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const cookieName = "session"

const sessionTTL = 24 * time.Hour

// Claims defines the session token claims structure.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Manager issues and validates session cookies. The signing secret is
// injected at construction, never read from ambient state.
type Manager struct {
	secret []byte
	secure bool
}

// NewManager creates a session Manager. secure controls the Secure flag on
// issued cookies and should be true behind TLS.
func NewManager(secret string, secure bool) *Manager {
	return &Manager{secret: []byte(secret), secure: secure}
}

// Login establishes a session for the given username by setting a signed
// session cookie on the response.
func (m *Manager) Login(w http.ResponseWriter, username string) error {
	expirationTime := time.Now().Add(sessionTTL)
	claims := &Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    signed,
		Expires:  expirationTime,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
	})
	return nil
}

// Logout clears the session cookie.
func (m *Manager) Logout(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
	})
}

// CurrentUser returns the username associated with the request's session
// cookie. The second return value is false when there is no cookie or the
// token is invalid or expired.
func (m *Manager) CurrentUser(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return "", false
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil || !token.Valid || claims.Username == "" {
		return "", false
	}
	return claims.Username, true
}
