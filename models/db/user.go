package dbmodels

import (
	"fnb-tracking-backend/models"
)

type User struct {
	BaseModel
	FNumber  string          `gorm:"type:varchar(50);uniqueIndex"`
	Password string          `gorm:"type:varchar(128)"`
	Email    string          `gorm:"type:varchar(255)"`
	Role     models.UserRole `gorm:"type:varchar(50)"`
	IsActive bool
}
