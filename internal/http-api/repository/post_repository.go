package repository

import (
	"errors"

	"blogify/internal/http-api/models"

	"gorm.io/gorm"
)

// ErrNotOwner is returned by ownership-gated mutations when the row exists
// but belongs to a different author.
var ErrNotOwner = errors.New("resource is owned by another user")

type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id int64) (*models.Post, error)
	GetAll(page, pageSize int) ([]models.Post, int64, error)
	Update(post *models.Post, authorID string) error
	Delete(id int64, authorID string) error
	Exists(id int64) (bool, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

func (r *postRepository) GetByID(id int64) (*models.Post, error) {
	var post models.Post
	if err := r.db.Preload("Author").First(&post, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// GetAll retrieves posts newest first with pagination
func (r *postRepository) GetAll(page, pageSize int) ([]models.Post, int64, error) {
	var posts []models.Post
	var total int64

	if err := r.db.Model(&models.Post{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := r.db.Preload("Author").
		Order("created_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

// Update applies the author predicate inside the UPDATE itself so a non-owner
// can never win a check-then-act race.
func (r *postRepository) Update(post *models.Post, authorID string) error {
	result := r.db.Model(&models.Post{}).
		Where("id = ? AND author_id = ?", post.ID, authorID).
		Updates(map[string]interface{}{"title": post.Title, "content": post.Content})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.classifyMiss(post.ID)
	}
	return nil
}

// Delete enforces ownership in the DELETE statement, same as Update.
func (r *postRepository) Delete(id int64, authorID string) error {
	result := r.db.Where("id = ? AND author_id = ?", id, authorID).Delete(&models.Post{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.classifyMiss(id)
	}
	return nil
}

func (r *postRepository) Exists(id int64) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Post{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// classifyMiss distinguishes "row absent" from "row owned by someone else"
// after a guarded mutation touched zero rows. The mutation itself already
// ran, so this read only picks the error to report.
func (r *postRepository) classifyMiss(id int64) error {
	var count int64
	if err := r.db.Model(&models.Post{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return gorm.ErrRecordNotFound
	}
	return ErrNotOwner
}
