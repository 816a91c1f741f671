package repository

import (
	"errors"
	"fmt"
	"regexp"

	"gorm.io/gorm"

	"github.com/aTrapDeer/portfolio-api/internal/models"
)

const (
	DefaultBlogLimit  = 10
	DefaultBlogOffset = 0
)

var digitsOnly = regexp.MustCompile(`^\d+$`)

type BlogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

// List returns posts newest first. A non-nil published filters on publish
// state. Non-positive limit and negative offset fall back to the defaults.
func (r *BlogRepository) List(published *bool, limit, offset int) ([]models.BlogPost, error) {
	if limit <= 0 {
		limit = DefaultBlogLimit
	}
	if offset < 0 {
		offset = DefaultBlogOffset
	}

	tx := r.db.Order("created_at DESC").Limit(limit).Offset(offset)
	if published != nil {
		tx = tx.Where("published = ?", *published)
	}

	posts := make([]models.BlogPost, 0)
	if err := tx.Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	return posts, nil
}

// GetByIdentifier looks up a post by numeric id when the identifier is all
// digits, otherwise by slug. A slug consisting entirely of digits is
// therefore unreachable here; that mirrors the public URL scheme and is a
// known limitation, not something to change quietly.
func (r *BlogRepository) GetByIdentifier(identifier string) (*models.BlogPost, error) {
	var post models.BlogPost
	var err error
	if digitsOnly.MatchString(identifier) {
		err = r.db.Where("id = ?", identifier).First(&post).Error
	} else {
		err = r.db.Where("slug = ?", identifier).First(&post).Error
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get blog post: %w", err)
	}
	return &post, nil
}

// Create validates the slug shape and its uniqueness before writing. The
// slug column also carries a unique index, so a concurrent writer that slips
// past the pre-check still surfaces as ErrDuplicateSlug instead of a
// duplicate row.
func (r *BlogRepository) Create(post *models.BlogPost) (uint, error) {
	if post.Title == "" || post.Slug == "" || post.Content == "" {
		return 0, &ValidationError{Field: "title, slug, content", Message: "Title, slug, and content are required"}
	}
	if !validSlug(post.Slug) {
		return 0, &ValidationError{Field: "slug", Message: "Slug must contain only lowercase letters, numbers, and hyphens"}
	}

	taken, err := r.slugTaken(post.Slug, 0)
	if err != nil {
		return 0, err
	}
	if taken {
		return 0, ErrDuplicateSlug
	}

	if err := r.db.Create(post).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, ErrDuplicateSlug
		}
		return 0, fmt.Errorf("create blog post: %w", err)
	}
	return post.ID, nil
}

// Update replaces every mutable field. The uniqueness check excludes the
// post being updated, so keeping the current slug always succeeds.
func (r *BlogRepository) Update(id uint, post *models.BlogPost) error {
	if post.Title == "" || post.Slug == "" || post.Content == "" {
		return &ValidationError{Field: "title, slug, content", Message: "Title, slug, and content are required"}
	}
	if !validSlug(post.Slug) {
		return &ValidationError{Field: "slug", Message: "Slug must contain only lowercase letters, numbers, and hyphens"}
	}

	taken, err := r.slugTaken(post.Slug, id)
	if err != nil {
		return err
	}
	if taken {
		return ErrDuplicateSlug
	}

	res := r.db.Model(&models.BlogPost{}).Where("id = ?", id).Updates(map[string]any{
		"title":          post.Title,
		"slug":           post.Slug,
		"content":        post.Content,
		"excerpt":        post.Excerpt,
		"featured_image": post.FeaturedImage,
		"published":      post.Published,
	})
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return ErrDuplicateSlug
		}
		return fmt.Errorf("update blog post: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BlogRepository) Delete(id uint) error {
	res := r.db.Delete(&models.BlogPost{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete blog post: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SetPublished sets the publish state and refreshes updated_at.
func (r *BlogRepository) SetPublished(id uint, published bool) error {
	res := r.db.Model(&models.BlogPost{}).Where("id = ?", id).Update("published", published)
	if res.Error != nil {
		return fmt.Errorf("update publish status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// slugTaken reports whether a post other than excludeID already uses slug.
// excludeID 0 excludes nothing.
func (r *BlogRepository) slugTaken(slug string, excludeID uint) (bool, error) {
	tx := r.db.Model(&models.BlogPost{}).Where("slug = ?", slug)
	if excludeID != 0 {
		tx = tx.Where("id != ?", excludeID)
	}

	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return false, fmt.Errorf("check slug: %w", err)
	}
	return count > 0, nil
}
