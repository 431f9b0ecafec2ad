package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/nkotak/student-collab/internal/services"
	"github.com/nkotak/student-collab/internal/session"
	"github.com/nkotak/student-collab/internal/web"
)

// AuthHandler handles signup, login and logout.
type AuthHandler struct {
	users    services.UserServiceProvider
	sessions *session.Manager
	renderer *web.Renderer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(users services.UserServiceProvider, sessions *session.Manager, renderer *web.Renderer) *AuthHandler {
	return &AuthHandler{users: users, sessions: sessions, renderer: renderer}
}

// SignupForm renders the signup page.
func (h *AuthHandler) SignupForm(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, "signup", web.PageData{
		Flash: session.PopFlash(w, r),
	})
}

// Signup handles new user registration.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	if username == "" || password == "" {
		h.renderer.Render(w, http.StatusOK, "signup", web.PageData{
			Flash: "Username and password are required.",
		})
		return
	}

	if _, err := h.users.CreateUser(username, password); err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			session.SetFlash(w, "Username already exists. Try logging in.")
			http.Redirect(w, r, "/signup", http.StatusSeeOther)
			return
		}
		log.Error().Err(err).Str("username", username).Msg("Failed to create user")
		h.renderer.Render(w, http.StatusOK, "signup", web.PageData{
			Flash: "Something went wrong. Please try again.",
		})
		return
	}

	session.SetFlash(w, "Signup successful! Please login.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// LoginForm renders the login page.
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, "login", web.PageData{
		Flash: session.PopFlash(w, r),
	})
}

// Login verifies credentials and establishes a session. An unknown username
// and a wrong password produce the same response.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	if !h.users.Verify(username, password) {
		log.Warn().Str("username", username).Msg("Failed login attempt")
		h.renderer.Render(w, http.StatusOK, "login", web.PageData{
			Flash: "Invalid username or password.",
		})
		return
	}

	if err := h.sessions.Login(w, username); err != nil {
		log.Error().Err(err).Str("username", username).Msg("Failed to establish session")
		h.renderer.Render(w, http.StatusOK, "login", web.PageData{
			Flash: "Something went wrong. Please try again.",
		})
		return
	}

	session.SetFlash(w, "Login successful!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout clears the session.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Logout(w)
	session.SetFlash(w, "Logged out successfully.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
