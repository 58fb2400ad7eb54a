package models

import (
	"gorm.io/datatypes"
)

type Post struct {
	BaseModel
	AuthorID string         `gorm:"type:uuid;index;not null" json:"author_id"`
	Body     string         `gorm:"not null" json:"body"`
	Tags     datatypes.JSON `gorm:"type:jsonb" json:"tags"`
}
