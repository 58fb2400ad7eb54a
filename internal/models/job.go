package models

import (
	"gorm.io/datatypes"
)

type Job struct {
	BaseModel
	EmployerID  string         `gorm:"type:uuid;index;not null" json:"employer_id"`
	Title       string         `gorm:"not null" json:"title"`
	Description string         `json:"description"`
	City        string         `json:"city"`
	PayMin      float64        `json:"pay_min"`
	PayMax      float64        `json:"pay_max"`
	Tags        datatypes.JSON `gorm:"type:jsonb" json:"tags"`
	Status      JobStatus      `gorm:"type:varchar(20);default:'draft'" json:"status"`
}
