package dbmodels

import (
	"fnb-tracking-backend/models"
)

type ChangeRequest struct {
	BaseModel
	ProjectID        string   `gorm:"type:varchar(36);index"`
	Project          *Project `gorm:"foreignKey:ProjectID"`
	RequestedFeature string
	ReasonForChange  string
	ImpactLevel      string               `gorm:"type:varchar(50)"`
	Status           models.RequestStatus `gorm:"type:varchar(50)"`
	LoggedByID       string               `gorm:"type:varchar(36);index"`
	LoggedBy         *User                `gorm:"foreignKey:LoggedByID"`

	Attachments []Attachment `gorm:"foreignKey:ChangeRequestID"`
}
