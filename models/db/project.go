package dbmodels

import (
	"time"

	"fnb-tracking-backend/models"
)

type Project struct {
	BaseModel
	// TrackingCode is the externally visible FNBPJ code, distinct from the
	// internal uuid. The unique index is the authoritative guard behind the
	// generation loop.
	TrackingCode string `gorm:"type:varchar(20);uniqueIndex"`
	ProjectName  string `gorm:"type:varchar(255)"`
	Department   string `gorm:"type:varchar(255)"`
	Branch       string `gorm:"type:varchar(255)"`
	Description  string
	Priority     models.PriorityLevel `gorm:"type:varchar(20)"`
	Status       models.RequestStatus `gorm:"type:varchar(50)"`
	LoggedByID   string               `gorm:"type:varchar(36);index"`
	LoggedBy     *User                `gorm:"foreignKey:LoggedByID"`

	IsDeleted      bool `gorm:"index"`
	DeletedAt      *time.Time
	DeletedByID    *string `gorm:"type:varchar(36)"`
	DeletedBy      *User   `gorm:"foreignKey:DeletedByID"`
	DeletionReason string

	Attachments []Attachment `gorm:"foreignKey:ProjectID"`
}
