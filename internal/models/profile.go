package models

import (
	"gorm.io/datatypes"
)

type Profile struct {
	BaseModel
	UserID      string         `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	DisplayName string         `json:"display_name"`
	Headline    string         `json:"headline"`
	Bio         string         `json:"bio"`
	City        string         `json:"city"`
	Skills      datatypes.JSON `gorm:"type:jsonb" json:"skills"`
	Languages   datatypes.JSON `gorm:"type:jsonb" json:"languages"`
}
