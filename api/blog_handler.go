package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rpupo63/blog-content-api/database"
	"github.com/rpupo63/blog-content-api/errs"
	"github.com/rpupo63/blog-content-api/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// BlogStore is the document-store surface the handler consumes. Satisfied by
// *database.BlogRepo; faked in tests.
type BlogStore interface {
	FindPage(q database.ListQuery) ([]models.Blog, int64, error)
	FindByID(id uuid.UUID) (*models.Blog, error)
	FindBySlug(slug string) (*models.Blog, error)
	RecordView(id uuid.UUID) error
	Like(id uuid.UUID) (int64, error)
	Add(blog *models.Blog) error
	Update(blog *models.Blog, replaceTags bool) error
	Delete(id uuid.UUID) (*models.Blog, error)
	Stats() (*models.BlogStats, error)
}

type blogHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     BlogStore
}

func newBlogHandler(store BlogStore) blogHandler {
	logger := log.With().Str("handlerName", "blogHandler").Logger()

	return blogHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
	}
}

// blogID parses the path parameter. A malformed id reads as a lookup that can
// never match, so it reports not found rather than a client or server error.
func blogID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "blogID"))
	if err != nil {
		return uuid.Nil, errs.NewNotFoundError("Blog post not found")
	}
	return id, nil
}

// listBlogs serves GET /blogs: filter, search, sort and paginate.
func (h blogHandler) listBlogs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := database.ParseListQuery(r.URL.Query())

		blogs, total, err := h.store.FindPage(q)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "blog posts", err))
			return
		}
		if blogs == nil {
			blogs = []models.Blog{}
		}

		h.responder.WritePaginated(w, blogs, Pagination{
			Page:  q.Page,
			Limit: q.Limit,
			Total: total,
			Pages: q.Pages(total),
		})
	}
}

// getBlogStats serves GET /blogs/stats.
func (h blogHandler) getBlogStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := h.store.Stats()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("aggregate", "blog statistics", err))
			return
		}

		h.responder.WriteSuccess(w, http.StatusOK, "", stats)
	}
}

// getBlog serves GET /blogs/{blogID}. Reading a post counts as a view.
func (h blogHandler) getBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := blogID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		blog, err := h.store.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blog post", err))
			return
		}

		if err := h.store.RecordView(id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("record view on", "blog post", err))
			return
		}
		blog.Views++

		h.responder.WriteSuccess(w, http.StatusOK, "", blog)
	}
}

// getBlogBySlug serves GET /blogs/slug/{slug}. Reading a post counts as a view.
func (h blogHandler) getBlogBySlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")

		blog, err := h.store.FindBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blog post", err))
			return
		}

		if err := h.store.RecordView(blog.ID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("record view on", "blog post", err))
			return
		}
		blog.Views++

		h.responder.WriteSuccess(w, http.StatusOK, "", blog)
	}
}

// createBlog serves POST /blogs.
func (h blogHandler) createBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input models.CreateBlogInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode create request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if violations := input.Validate(); len(violations) > 0 {
			h.responder.WriteError(w, errs.NewValidationError(violations))
			return
		}

		blog := input.ToBlog()
		if err := h.store.Add(&blog); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "blog post", err))
			return
		}

		h.responder.WriteSuccess(w, http.StatusCreated, "Blog post created successfully", blog)
	}
}

// updateBlog serves PUT /blogs/{blogID}: a partial merge onto the stored
// post. The slug is re-derived when the patch changes the title; the merged
// row still has to pass the schema's own constraints on write.
func (h blogHandler) updateBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := blogID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var input models.UpdateBlogInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode update request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if violations := input.Validate(); len(violations) > 0 {
			h.responder.WriteError(w, errs.NewValidationError(violations))
			return
		}

		blog, err := h.store.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blog post", err))
			return
		}

		input.ApplyTo(blog)
		if err := h.store.Update(blog, input.Tags != nil); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "blog post", err))
			return
		}

		h.responder.WriteSuccess(w, http.StatusOK, "Blog post updated successfully", blog)
	}
}

// deleteBlog serves DELETE /blogs/{blogID} and responds with the deleted
// snapshot. Deleting an already-deleted post reports not found.
func (h blogHandler) deleteBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := blogID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		blog, err := h.store.Delete(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "blog post", err))
			return
		}

		h.responder.WriteSuccess(w, http.StatusOK, "Blog post deleted successfully", blog)
	}
}

// likeBlog serves PATCH /blogs/{blogID}/like and responds with the new like
// count only.
func (h blogHandler) likeBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := blogID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		likes, err := h.store.Like(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("like", "blog post", err))
			return
		}

		h.responder.WriteSuccess(w, http.StatusOK, "Blog post liked", map[string]int64{"likes": likes})
	}
}
