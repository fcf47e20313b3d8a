package models

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/rpupo63/blog-content-api/errs"
)

var tagCharset = regexp.MustCompile(`^[a-zA-Z0-9\-_]+$`)

// CreateBlogInput is the accepted body of POST /blogs. Slug, views and likes
// are never client-settable and have no field here.
type CreateBlogInput struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Thumbnail *string  `json:"thumbnail"`
	Author    *string  `json:"author"`
	Tags      []string `json:"tags"`
	Published *bool    `json:"published"`
	Featured  *bool    `json:"featured"`
}

// Validate trims the text fields in place and reports every violation at once
// rather than stopping at the first.
func (in *CreateBlogInput) Validate() []errs.FieldViolation {
	var violations []errs.FieldViolation

	in.Title = strings.TrimSpace(in.Title)
	switch {
	case in.Title == "":
		violations = append(violations, errs.FieldViolation{Field: "title", Message: "Title is required"})
	case utf8.RuneCountInString(in.Title) < 3 || utf8.RuneCountInString(in.Title) > 200:
		violations = append(violations, errs.FieldViolation{Field: "title", Message: "Title must be between 3 and 200 characters"})
	}

	in.Content = strings.TrimSpace(in.Content)
	switch {
	case in.Content == "":
		violations = append(violations, errs.FieldViolation{Field: "content", Message: "Content is required"})
	case utf8.RuneCountInString(in.Content) < 10:
		violations = append(violations, errs.FieldViolation{Field: "content", Message: "Content must be at least 10 characters long"})
	}

	if in.Thumbnail != nil {
		trimmed := strings.TrimSpace(*in.Thumbnail)
		in.Thumbnail = &trimmed
	}

	if in.Author != nil {
		trimmed := strings.TrimSpace(*in.Author)
		in.Author = &trimmed
		if utf8.RuneCountInString(trimmed) < 2 || utf8.RuneCountInString(trimmed) > 100 {
			violations = append(violations, errs.FieldViolation{Field: "author", Message: "Author name must be between 2 and 100 characters"})
		}
	}

	violations = append(violations, validateTags(in.Tags)...)

	return violations
}

// ToBlog materializes a validated payload into a Blog with defaults applied,
// tags normalized and the slug derived from the title.
func (in CreateBlogInput) ToBlog() Blog {
	blog := Blog{
		Title:     in.Title,
		Content:   in.Content,
		Thumbnail: in.Thumbnail,
		Author:    "Anonymous",
		Published: true,
		Featured:  false,
		Slug:      DeriveSlug(in.Title),
	}
	if in.Author != nil {
		blog.Author = *in.Author
	}
	if in.Published != nil {
		blog.Published = *in.Published
	}
	if in.Featured != nil {
		blog.Featured = *in.Featured
	}
	for i, tag := range NormalizeTags(in.Tags) {
		blog.Tags = append(blog.Tags, BlogTag{Value: tag, Position: i})
	}
	return blog
}

// UpdateBlogInput is the accepted body of PUT /blogs/{id}. Every field is
// optional; nil means "leave untouched", which is why they are all pointers.
type UpdateBlogInput struct {
	Title     *string   `json:"title"`
	Content   *string   `json:"content"`
	Thumbnail *string   `json:"thumbnail"`
	Author    *string   `json:"author"`
	Tags      *[]string `json:"tags"`
	Published *bool     `json:"published"`
	Featured  *bool     `json:"featured"`
}

// Validate applies the create-time rules to every field that is present.
func (in *UpdateBlogInput) Validate() []errs.FieldViolation {
	var violations []errs.FieldViolation

	if in.Title != nil {
		trimmed := strings.TrimSpace(*in.Title)
		in.Title = &trimmed
		if utf8.RuneCountInString(trimmed) < 3 || utf8.RuneCountInString(trimmed) > 200 {
			violations = append(violations, errs.FieldViolation{Field: "title", Message: "Title must be between 3 and 200 characters"})
		}
	}

	if in.Content != nil {
		trimmed := strings.TrimSpace(*in.Content)
		in.Content = &trimmed
		if utf8.RuneCountInString(trimmed) < 10 {
			violations = append(violations, errs.FieldViolation{Field: "content", Message: "Content must be at least 10 characters long"})
		}
	}

	if in.Thumbnail != nil {
		trimmed := strings.TrimSpace(*in.Thumbnail)
		in.Thumbnail = &trimmed
	}

	if in.Author != nil {
		trimmed := strings.TrimSpace(*in.Author)
		in.Author = &trimmed
		if utf8.RuneCountInString(trimmed) < 2 || utf8.RuneCountInString(trimmed) > 100 {
			violations = append(violations, errs.FieldViolation{Field: "author", Message: "Author name must be between 2 and 100 characters"})
		}
	}

	if in.Tags != nil {
		violations = append(violations, validateTags(*in.Tags)...)
	}

	return violations
}

// ApplyTo merges the present fields onto an existing blog. The slug is
// re-derived only when the patch carries a changed title; views, likes and
// timestamps are never touched here.
func (in UpdateBlogInput) ApplyTo(blog *Blog) {
	if in.Title != nil && *in.Title != blog.Title {
		blog.Title = *in.Title
		blog.Slug = DeriveSlug(*in.Title)
	}
	if in.Content != nil {
		blog.Content = *in.Content
	}
	if in.Thumbnail != nil {
		blog.Thumbnail = in.Thumbnail
	}
	if in.Author != nil {
		blog.Author = *in.Author
	}
	if in.Published != nil {
		blog.Published = *in.Published
	}
	if in.Featured != nil {
		blog.Featured = *in.Featured
	}
	if in.Tags != nil {
		blog.Tags = nil
		for i, tag := range NormalizeTags(*in.Tags) {
			blog.Tags = append(blog.Tags, BlogTag{BlogID: blog.ID, Value: tag, Position: i})
		}
	}
}

func validateTags(tags []string) []errs.FieldViolation {
	var violations []errs.FieldViolation
	for i, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || utf8.RuneCountInString(tag) > 30 {
			violations = append(violations, errs.FieldViolation{
				Field:   fmt.Sprintf("tags[%d]", i),
				Message: "Each tag must be between 1 and 30 characters",
			})
			continue
		}
		if !tagCharset.MatchString(tag) {
			violations = append(violations, errs.FieldViolation{
				Field:   fmt.Sprintf("tags[%d]", i),
				Message: "Tags can only contain letters, numbers, hyphens, and underscores",
			})
		}
	}
	return violations
}
