package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the blog surface. Static segments (stats, slug) are
// registered alongside the {blogID} route; chi matches them first.
func setupRoutes(r chi.Router, handlers *routeHandlers) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Route("/blogs", func(r chi.Router) {
			r.Get("/", handlers.blogHandler.listBlogs())
			r.Get("/stats", handlers.blogHandler.getBlogStats())
			r.Get("/slug/{slug}", handlers.blogHandler.getBlogBySlug())
			r.Get("/{blogID}", handlers.blogHandler.getBlog())
			r.Post("/", handlers.blogHandler.createBlog())
			r.Put("/{blogID}", handlers.blogHandler.updateBlog())
			r.Delete("/{blogID}", handlers.blogHandler.deleteBlog())
			r.Patch("/{blogID}/like", handlers.blogHandler.likeBlog())
		})

		r.Get("/health", handlers.healthHandler.check())
	})
}
