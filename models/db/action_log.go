package dbmodels

import (
	"fnb-tracking-backend/models"
)

// ActionLog is the append-only audit trail of user and system actions,
// separate from the status-history ledger. UserID is nil for system actions.
type ActionLog struct {
	BaseModel
	UserID      *string           `gorm:"type:varchar(36);index"`
	User        *User             `gorm:"foreignKey:UserID"`
	ActionType  models.ActionType `gorm:"type:varchar(50)"`
	EntityType  models.EntityType `gorm:"type:varchar(50)"`
	EntityID    string            `gorm:"type:varchar(36)"`
	Description string
	IPAddress   string `gorm:"type:varchar(45)"`
}
