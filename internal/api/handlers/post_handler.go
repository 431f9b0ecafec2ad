package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/nkotak/student-collab/internal/models"
	"github.com/nkotak/student-collab/internal/services"
	"github.com/nkotak/student-collab/internal/session"
	"github.com/nkotak/student-collab/internal/web"
)

// PostHandler handles the post list, post creation and interest
// registration. All routes here sit behind session.RequireAuth.
type PostHandler struct {
	posts         services.PostServiceProvider
	registrations services.RegistrationServiceProvider
	renderer      *web.Renderer
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(posts services.PostServiceProvider, registrations services.RegistrationServiceProvider, renderer *web.Renderer) *PostHandler {
	return &PostHandler{posts: posts, registrations: registrations, renderer: renderer}
}

// Index renders the list of all posts.
func (h *PostHandler) Index(w http.ResponseWriter, r *http.Request) {
	username, _ := session.UsernameFromContext(r.Context())

	posts, err := h.posts.ListPosts()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list posts")
		h.renderer.Render(w, http.StatusOK, "index", web.PageData{
			Username: username,
			Flash:    "Could not load posts. Please try again.",
		})
		return
	}

	h.renderer.Render(w, http.StatusOK, "index", web.PageData{
		Username: username,
		Flash:    session.PopFlash(w, r),
		Posts:    posts,
	})
}

// CreatePostForm renders the post creation page.
func (h *PostHandler) CreatePostForm(w http.ResponseWriter, r *http.Request) {
	username, _ := session.UsernameFromContext(r.Context())
	h.renderer.Render(w, http.StatusOK, "create_post", web.PageData{
		Username: username,
		Flash:    session.PopFlash(w, r),
	})
}

// CreatePost stores a new post authored by the session user.
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	username, _ := session.UsernameFromContext(r.Context())
	title := strings.TrimSpace(r.FormValue("title"))
	content := strings.TrimSpace(r.FormValue("content"))

	if title == "" || content == "" {
		h.renderer.Render(w, http.StatusOK, "create_post", web.PageData{
			Username: username,
			Flash:    "Title and content are required.",
		})
		return
	}

	if _, err := h.posts.CreatePost(title, content, username); err != nil {
		log.Error().Err(err).Str("username", username).Msg("Failed to create post")
		h.renderer.Render(w, http.StatusOK, "create_post", web.PageData{
			Username: username,
			Flash:    "Something went wrong. Please try again.",
		})
		return
	}

	session.SetFlash(w, "Post created successfully!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// RegisterPostForm renders the registration form for a post.
func (h *PostHandler) RegisterPostForm(w http.ResponseWriter, r *http.Request) {
	username, _ := session.UsernameFromContext(r.Context())

	post, ok := h.lookupPost(w, r)
	if !ok {
		return
	}

	h.renderer.Render(w, http.StatusOK, "register_post", web.PageData{
		Username: username,
		Flash:    session.PopFlash(w, r),
		Post:     post,
	})
}

// RegisterPost records the session user's interest in a post. The post is
// resolved first so its title can be copied into the registration.
func (h *PostHandler) RegisterPost(w http.ResponseWriter, r *http.Request) {
	username, _ := session.UsernameFromContext(r.Context())

	post, ok := h.lookupPost(w, r)
	if !ok {
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	email := strings.TrimSpace(r.FormValue("email"))
	interests := strings.TrimSpace(r.FormValue("interests"))

	if name == "" || email == "" || interests == "" {
		h.renderer.Render(w, http.StatusOK, "register_post", web.PageData{
			Username: username,
			Flash:    "Name, email and interests are required.",
			Post:     post,
		})
		return
	}

	if _, err := h.registrations.CreateRegistration(username, *post, name, email, interests); err != nil {
		log.Error().Err(err).Str("username", username).Str("post_id", post.ID).Msg("Failed to create registration")
		h.renderer.Render(w, http.StatusOK, "register_post", web.PageData{
			Username: username,
			Flash:    "Something went wrong. Please try again.",
			Post:     post,
		})
		return
	}

	session.SetFlash(w, "Successfully registered for this event!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// lookupPost resolves the {post_id} URL parameter. On a malformed or
// unknown id it flashes and redirects home, and reports false.
func (h *PostHandler) lookupPost(w http.ResponseWriter, r *http.Request) (*models.Post, bool) {
	id := chi.URLParam(r, "post_id")

	post, err := h.posts.GetPost(id)
	if err != nil {
		log.Error().Err(err).Str("post_id", id).Msg("Failed to get post")
	}
	if err != nil || post == nil {
		session.SetFlash(w, "Post not found.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return nil, false
	}
	return post, true
}
