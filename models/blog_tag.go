package models

import "github.com/google/uuid"

// BlogTag is one tag attached to a blog post. Position preserves the order the
// tags were submitted in.
type BlogTag struct {
	ID       uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	BlogID   uuid.UUID `json:"blogId" db:"blog_id" gorm:"type:uuid;not null;index:idx_blog_tag_blog_id;uniqueIndex:idx_blog_tag_unique"`
	Value    string    `json:"value" db:"value" gorm:"type:text;not null;uniqueIndex:idx_blog_tag_unique"`
	Position int       `json:"-" db:"position" gorm:"not null;default:0"`
}
