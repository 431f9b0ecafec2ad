package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/nkotak/student-collab/internal/services"
	"github.com/nkotak/student-collab/internal/session"
	"github.com/nkotak/student-collab/internal/web"
)

// ProfileHandler renders a user's own posts and registrations.
type ProfileHandler struct {
	posts         services.PostServiceProvider
	registrations services.RegistrationServiceProvider
	renderer      *web.Renderer
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(posts services.PostServiceProvider, registrations services.RegistrationServiceProvider, renderer *web.Renderer) *ProfileHandler {
	return &ProfileHandler{posts: posts, registrations: registrations, renderer: renderer}
}

// Show renders the profile page for the session user.
func (h *ProfileHandler) Show(w http.ResponseWriter, r *http.Request) {
	username, _ := session.UsernameFromContext(r.Context())

	userPosts, err := h.posts.ListPostsByAuthor(username)
	if err != nil {
		log.Error().Err(err).Str("username", username).Msg("Failed to list user posts")
		h.renderer.Render(w, http.StatusOK, "profile", web.PageData{
			Username: username,
			Flash:    "Could not load your profile. Please try again.",
		})
		return
	}

	regs, err := h.registrations.ListRegistrationsByUsername(username)
	if err != nil {
		log.Error().Err(err).Str("username", username).Msg("Failed to list registrations")
		h.renderer.Render(w, http.StatusOK, "profile", web.PageData{
			Username: username,
			Flash:    "Could not load your profile. Please try again.",
		})
		return
	}

	h.renderer.Render(w, http.StatusOK, "profile", web.PageData{
		Username:      username,
		Flash:         session.PopFlash(w, r),
		UserPosts:     userPosts,
		Registrations: regs,
	})
}
