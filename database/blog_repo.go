package database

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/blog-content-api/models"
	"gorm.io/gorm"
)

// Per-operation budgets. Contexts derive from context.Background() on
// purpose: an abandoned request must not cancel its in-flight store
// operation, the result is simply discarded.
const (
	listTimeout  = 20 * time.Second
	countTimeout = 10 * time.Second
	opTimeout    = 10 * time.Second
)

type BlogRepo struct {
	db *gorm.DB
}

func NewBlogRepo(db *gorm.DB) *BlogRepo {
	return &BlogRepo{db}
}

func orderedTags(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// FindPage returns one page of blogs matching the query plus the total match
// count for pagination metadata.
func (r *BlogRepo) FindPage(q ListQuery) ([]models.Blog, int64, error) {
	listCtx, cancelList := context.WithTimeout(context.Background(), listTimeout)
	defer cancelList()

	var blogs []models.Blog
	err := q.Filters(r.db.WithContext(listCtx)).
		Order(q.OrderClause()).
		Offset(q.Offset()).
		Limit(q.Limit).
		Preload("Tags", orderedTags).
		Find(&blogs).Error
	if err != nil {
		return nil, 0, err
	}

	countCtx, cancelCount := context.WithTimeout(context.Background(), countTimeout)
	defer cancelCount()

	var total int64
	err = q.Filters(r.db.WithContext(countCtx).Model(&models.Blog{})).Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	return blogs, total, nil
}

// FindByID returns a blog by its ID without side effects.
func (r *BlogRepo) FindByID(id uuid.UUID) (*models.Blog, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var blog models.Blog
	err := r.db.WithContext(ctx).Preload("Tags", orderedTags).First(&blog, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// FindBySlug returns a blog by its slug without side effects.
func (r *BlogRepo) FindBySlug(slug string) (*models.Blog, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var blog models.Blog
	err := r.db.WithContext(ctx).Preload("Tags", orderedTags).First(&blog, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// RecordView bumps the view counter with a store-side increment, never a
// read-modify-write, so concurrent reads cannot lose updates.
func (r *BlogRepo) RecordView(id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	tx := r.db.WithContext(ctx).Model(&models.Blog{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1"))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Like atomically bumps the like counter and returns the new count.
func (r *BlogRepo) Like(id uuid.UUID) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var likes int64
	tx := r.db.WithContext(ctx).
		Raw("UPDATE blogs SET likes = likes + 1 WHERE id = ? RETURNING likes", id).
		Scan(&likes)
	if tx.Error != nil {
		return 0, tx.Error
	}
	if tx.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return likes, nil
}

// Add inserts a new blog together with its tag rows.
func (r *BlogRepo) Add(blog *models.Blog) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := r.db.WithContext(ctx).Create(blog).Error; err != nil {
		return err
	}
	blog.FillDerived()
	return nil
}

// Update persists a fully materialized blog. When replaceTags is set the
// existing tag rows are swapped for blog.Tags in the same transaction. The
// counters and created_at are omitted from the write: they belong to the
// store, and writing back the values loaded earlier would undo any increment
// that landed in between.
func (r *BlogRepo) Update(blog *models.Blog, replaceTags bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags", "Views", "Likes", "CreatedAt").Save(blog).Error; err != nil {
			return err
		}
		if !replaceTags {
			return nil
		}
		if err := tx.Where("blog_id = ?", blog.ID).Delete(&models.BlogTag{}).Error; err != nil {
			return err
		}
		if len(blog.Tags) == 0 {
			return nil
		}
		return tx.Create(&blog.Tags).Error
	})
	if err != nil {
		return err
	}
	blog.FillDerived()
	return nil
}

// Delete removes a blog and returns its final snapshot. A second delete on
// the same id reports not found.
func (r *BlogRepo) Delete(id uuid.UUID) (*models.Blog, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var blog models.Blog
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Tags", orderedTags).First(&blog, "id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Blog{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// Stats scans the whole collection. Acceptable at this scale; a larger
// deployment would pre-aggregate.
func (r *BlogRepo) Stats() (*models.BlogStats, error) {
	ctx, cancel := context.WithTimeout(context.Background(), listTimeout)
	defer cancel()

	db := r.db.WithContext(ctx)
	stats := models.BlogStats{
		TopViewed:   make([]models.ViewedBlog, 0, 5),
		TopLiked:    make([]models.LikedBlog, 0, 5),
		Recent:      make([]models.RecentBlog, 0, 5),
		PopularTags: make([]models.TagCount, 0, 10),
	}

	if err := db.Model(&models.Blog{}).Count(&stats.Counts.Total).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Blog{}).Where("published = ?", true).Count(&stats.Counts.Published).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Blog{}).Where("featured = ?", true).Count(&stats.Counts.Featured).Error; err != nil {
		return nil, err
	}

	err := db.Model(&models.Blog{}).
		Select("title", "views", "slug").
		Order("views DESC").
		Limit(5).
		Scan(&stats.TopViewed).Error
	if err != nil {
		return nil, err
	}

	err = db.Model(&models.Blog{}).
		Select("title", "likes", "slug").
		Order("likes DESC").
		Limit(5).
		Scan(&stats.TopLiked).Error
	if err != nil {
		return nil, err
	}

	err = db.Model(&models.Blog{}).
		Select("title", "created_at", "slug").
		Order("created_at DESC").
		Limit(5).
		Scan(&stats.Recent).Error
	if err != nil {
		return nil, err
	}

	err = db.Model(&models.BlogTag{}).
		Select("value AS tag, COUNT(*) AS count").
		Group("value").
		Order("count DESC").
		Limit(10).
		Scan(&stats.PopularTags).Error
	if err != nil {
		return nil, err
	}

	return &stats, nil
}
