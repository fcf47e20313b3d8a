package database

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/rpupo63/blog-content-api/models"
	"gorm.io/gorm"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// Sort is one of the recognized list orderings. Anything else falls back to
// SortNewest.
type Sort string

const (
	SortNewest  Sort = "newest"
	SortOldest  Sort = "oldest"
	SortPopular Sort = "popular"
	SortLiked   Sort = "liked"
	SortTitle   Sort = "title"
)

var sortClauses = map[Sort]string{
	SortNewest:  "created_at DESC",
	SortOldest:  "created_at ASC",
	SortPopular: "views DESC",
	SortLiked:   "likes DESC",
	SortTitle:   "title ASC",
}

// ListQuery is the typed form of the GET /blogs query string, defaulted and
// validated once at the boundary.
type ListQuery struct {
	Page      int
	Limit     int
	Published *bool
	Author    string
	Tags      []string
	Search    string
	Sort      Sort
}

// ParseListQuery reads the recognized parameters out of a raw query string.
// Missing or unparseable values get their defaults; unknown parameters are
// ignored.
func ParseListQuery(values url.Values) ListQuery {
	q := ListQuery{
		Page:  defaultPage,
		Limit: defaultLimit,
		Sort:  SortNewest,
	}

	if page, err := strconv.Atoi(values.Get("page")); err == nil && page >= 1 {
		q.Page = page
	}
	if limit, err := strconv.Atoi(values.Get("limit")); err == nil && limit >= 1 {
		q.Limit = limit
	}

	switch values.Get("published") {
	case "true":
		published := true
		q.Published = &published
	case "false":
		published := false
		q.Published = &published
	}

	q.Author = strings.TrimSpace(values.Get("author"))

	if tags := values.Get("tags"); tags != "" {
		q.Tags = models.NormalizeTags(strings.Split(tags, ","))
	}

	q.Search = strings.TrimSpace(values.Get("search"))

	if sort := Sort(values.Get("sort")); sortClauses[sort] != "" {
		q.Sort = sort
	}

	return q
}

// Offset is the number of rows skipped before the requested page.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// OrderClause returns the SQL ordering for the selected sort.
func (q ListQuery) OrderClause() string {
	return sortClauses[q.Sort]
}

// Filters applies every requested condition, ANDed together. Used for both
// the page select and the total count so the two always agree.
func (q ListQuery) Filters(db *gorm.DB) *gorm.DB {
	if q.Published != nil {
		db = db.Where("published = ?", *q.Published)
	}
	if q.Author != "" {
		db = db.Where("author ILIKE ?", "%"+q.Author+"%")
	}
	if len(q.Tags) > 0 {
		db = db.Where("id IN (SELECT blog_id FROM blog_tags WHERE value IN ?)", q.Tags)
	}
	if q.Search != "" {
		db = db.Where(
			"to_tsvector('english', title || ' ' || content) @@ plainto_tsquery('english', ?)",
			q.Search,
		)
	}
	return db
}

// Pages computes the page count for a total under the query's limit.
func (q ListQuery) Pages(total int64) int {
	pages := int(total) / q.Limit
	if int(total)%q.Limit != 0 {
		pages++
	}
	return pages
}
