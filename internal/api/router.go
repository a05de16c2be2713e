package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/avilaj/bookwish-be/internal/api/handlers"
	"github.com/avilaj/bookwish-be/internal/services"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(
	authService services.AuthServiceProvider,
	userService services.UserServiceProvider,
	wishlistService services.WishlistServiceProvider,
	bookService services.BookSearchProvider,
) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration for development
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"}, // Adjust for your frontend URL
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService)
	bookHandler := handlers.NewBookHandler(bookService)

	// API versioning
	r.Route("/api/v1", func(r chi.Router) {
		// Public endpoints
		r.Post("/auth", authHandler.Login)
		r.Post("/users", userHandler.Register)

		// Everything below requires a valid bearer token
		r.Group(func(r chi.Router) {
			r.Use(authHandler.RequireUser)

			r.Get("/users/me", userHandler.GetMe)
			r.Delete("/users/{id}", userHandler.Delete)

			r.Route("/wishlist", func(r chi.Router) {
				r.Get("/", wishlistHandler.List)
				r.Post("/", wishlistHandler.Add)
				r.Delete("/{id}", wishlistHandler.Delete)
			})

			r.Get("/books", bookHandler.Search)
		})
	})

	return r
}
