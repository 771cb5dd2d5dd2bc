package notificationapimodels

import (
	"time"

	dbmodels "fnb-tracking-backend/models/db"
)

type NotificationView struct {
	ID                  string    `json:"id"`
	Type                string    `json:"type"`
	Message             string    `json:"message"`
	IsRead              bool      `json:"is_read"`
	ProjectID           string    `json:"project_id,omitempty"`
	ProjectTrackingCode string    `json:"project_tracking_code,omitempty"`
	ChangeRequestID     string    `json:"change_request_id,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}

func NotificationConvert(rec dbmodels.Notification) NotificationView {
	view := NotificationView{
		ID:        rec.ID,
		Type:      string(rec.Type),
		Message:   rec.Message,
		IsRead:    rec.IsRead,
		CreatedAt: rec.CreatedAt,
	}
	if rec.ProjectID != nil {
		view.ProjectID = *rec.ProjectID
	}
	if rec.Project != nil {
		view.ProjectTrackingCode = rec.Project.TrackingCode
	}
	if rec.ChangeRequestID != nil {
		view.ChangeRequestID = *rec.ChangeRequestID
	}
	return view
}
