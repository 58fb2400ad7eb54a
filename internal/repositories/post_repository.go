package repositories

import (
	"errors"

	"giglink_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPostNotFound = errors.New("post not found")

type PostRepository interface {
	Create(post *models.Post) error
	FindByID(id string) (*models.Post, error)
	Delete(id string) error
	ListRecent(limit int) ([]models.Post, error)
	ListByAuthor(authorID string) ([]models.Post, error)
}

type PostRepositoryImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &PostRepositoryImpl{db: db}
}

func (r *PostRepositoryImpl) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

func (r *PostRepositoryImpl) FindByID(id string) (*models.Post, error) {
	var post models.Post
	err := r.db.First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *PostRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Post{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}

func (r *PostRepositoryImpl) ListRecent(limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Order("created_at DESC").Limit(limit).Find(&posts).Error
	return posts, err
}

func (r *PostRepositoryImpl) ListByAuthor(authorID string) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Where("author_id = ?", authorID).Order("created_at DESC").Find(&posts).Error
	return posts, err
}
