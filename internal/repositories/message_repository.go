package repositories

import (
	"giglink_backend/internal/models"

	"gorm.io/gorm"
)

type MessageRepository interface {
	Create(msg *models.Message) error
	ListBetween(a, b string, limit int) ([]models.Message, error)
}

type MessageRepositoryImpl struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &MessageRepositoryImpl{db: db}
}

func (r *MessageRepositoryImpl) Create(msg *models.Message) error {
	return r.db.Create(msg).Error
}

func (r *MessageRepositoryImpl) ListBetween(a, b string, limit int) ([]models.Message, error) {
	var msgs []models.Message
	err := r.db.
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
			a, b, b, a).
		Order("created_at ASC").Limit(limit).Find(&msgs).Error
	return msgs, err
}
