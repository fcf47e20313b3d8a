package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Blog represents a single blog post with its engagement counters
type Blog struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title     string    `json:"title" db:"title" gorm:"type:text;not null"`
	Content   string    `json:"content" db:"content" gorm:"type:text;not null"`
	Thumbnail *string   `json:"thumbnail,omitempty" db:"thumbnail" gorm:"type:text"`
	Author    string    `json:"author" db:"author" gorm:"type:text;not null;default:'Anonymous'"`
	Published bool      `json:"published" db:"published" gorm:"not null;default:true"`
	Featured  bool      `json:"featured" db:"featured" gorm:"not null;default:false"`
	Slug      string    `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex"`
	Views     int64     `json:"views" db:"views" gorm:"not null;default:0"`
	Likes     int64     `json:"likes" db:"likes" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" gorm:"autoUpdateTime"`

	Tags    []BlogTag `json:"-" gorm:"foreignKey:BlogID;references:ID;constraint:OnDelete:CASCADE"`
	TagList []string  `json:"tags" gorm:"-"`
	Excerpt string    `json:"excerpt" gorm:"-"`
}

// AfterFind fills the derived fields that are not persisted.
func (b *Blog) AfterFind(_ *gorm.DB) error {
	b.FillDerived()
	return nil
}

// FillDerived recomputes the excerpt and the flattened tag list from the
// persisted columns. Called after any load or write that changed them.
func (b *Blog) FillDerived() {
	b.Excerpt = Excerpt(b.Content)
	b.TagList = make([]string, 0, len(b.Tags))
	for _, tag := range b.Tags {
		b.TagList = append(b.TagList, tag.Value)
	}
}

// Excerpt truncates content to 150 characters with a trailing ellipsis; shorter
// content is returned untouched. The cut counts runes, not bytes, so multibyte
// content is never split mid-character.
func Excerpt(content string) string {
	const max = 150
	runes := []rune(content)
	if len(runes) > max {
		return string(runes[:max]) + "..."
	}
	return content
}
