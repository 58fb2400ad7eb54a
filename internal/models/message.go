package models

type Message struct {
	BaseModel
	SenderID    string `gorm:"type:uuid;index;not null" json:"sender_id"`
	RecipientID string `gorm:"type:uuid;index;not null" json:"recipient_id"`
	Body        string `gorm:"not null" json:"body"`
}
