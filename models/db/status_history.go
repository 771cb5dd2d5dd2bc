package dbmodels

import (
	"fnb-tracking-backend/models"
)

// StatusHistory is an append-only ledger row. Exactly one of ProjectID and
// ChangeRequestID is set; rows are never updated, and deleted only together
// with the change request they reference.
type StatusHistory struct {
	BaseModel
	ProjectID       *string              `gorm:"type:varchar(36);index"`
	ChangeRequestID *string              `gorm:"type:varchar(36);index"`
	OldStatus       models.RequestStatus `gorm:"type:varchar(50)"`
	NewStatus       models.RequestStatus `gorm:"type:varchar(50)"`
	RejectionReason string
	UpdatedByID     string `gorm:"type:varchar(36)"`
	UpdatedBy       *User  `gorm:"foreignKey:UpdatedByID"`
}
