package auditapimodels

import (
	"time"

	dbmodels "fnb-tracking-backend/models/db"
)

type LogView struct {
	ID          string    `json:"id"`
	FNumber     string    `json:"f_number,omitempty"` // empty for system actions
	ActionType  string    `json:"action_type"`
	EntityType  string    `json:"entity_type"`
	EntityID    string    `json:"entity_id"`
	Description string    `json:"description"`
	IPAddress   string    `json:"ip_address,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func LogConvert(rec dbmodels.ActionLog) LogView {
	view := LogView{
		ID:          rec.ID,
		ActionType:  string(rec.ActionType),
		EntityType:  string(rec.EntityType),
		EntityID:    rec.EntityID,
		Description: rec.Description,
		IPAddress:   rec.IPAddress,
		CreatedAt:   rec.CreatedAt,
	}
	if rec.User != nil {
		view.FNumber = rec.User.FNumber
	}
	return view
}
