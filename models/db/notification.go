package dbmodels

import (
	"fnb-tracking-backend/models"
)

type Notification struct {
	BaseModel
	UserID          string                  `gorm:"type:varchar(36);index"`
	User            *User                   `gorm:"foreignKey:UserID"`
	ProjectID       *string                 `gorm:"type:varchar(36);index"`
	Project         *Project                `gorm:"foreignKey:ProjectID"`
	ChangeRequestID *string                 `gorm:"type:varchar(36);index"`
	ChangeRequest   *ChangeRequest          `gorm:"foreignKey:ChangeRequestID"`
	Type            models.NotificationType `gorm:"type:varchar(50)"`
	Message         string
	IsRead          bool
}
