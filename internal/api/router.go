package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nkotak/student-collab/internal/api/handlers"
	"github.com/nkotak/student-collab/internal/services"
	"github.com/nkotak/student-collab/internal/session"
	"github.com/nkotak/student-collab/internal/web"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(
	sessions *session.Manager,
	renderer *web.Renderer,
	userService services.UserServiceProvider,
	postService services.PostServiceProvider,
	registrationService services.RegistrationServiceProvider,
) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, sessions, renderer)
	postHandler := handlers.NewPostHandler(postService, registrationService, renderer)
	profileHandler := handlers.NewProfileHandler(postService, registrationService, renderer)

	// Public routes: signup, login and logout need no session
	r.Group(func(r chi.Router) {
		r.Get("/signup", authHandler.SignupForm)
		r.Post("/signup", authHandler.Signup)
		r.Get("/login", authHandler.LoginForm)
		r.Post("/login", authHandler.Login)
		r.Get("/logout", authHandler.Logout)
	})

	// Everything else redirects to /login without a valid session
	r.Group(func(r chi.Router) {
		r.Use(session.RequireAuth(sessions))

		r.Get("/", postHandler.Index)
		r.Get("/create_post", postHandler.CreatePostForm)
		r.Post("/create_post", postHandler.CreatePost)
		r.Get("/register_post/{post_id}", postHandler.RegisterPostForm)
		r.Post("/register_post/{post_id}", postHandler.RegisterPost)
		r.Get("/profile", profileHandler.Show)
	})

	return r
}
