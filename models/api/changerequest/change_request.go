package crapimodels

import (
	"time"

	"github.com/pkg/errors"

	attachmentapimodels "fnb-tracking-backend/models/api/attachment"
	dbmodels "fnb-tracking-backend/models/db"
)

type ChangeRequestData struct {
	ProjectID        string `json:"project_id"`
	RequestedFeature string `json:"requested_feature"`
	ReasonForChange  string `json:"reason_for_change"`
	ImpactLevel      string `json:"impact_level"`
}

func (r ChangeRequestData) Validate() error {
	if r.ProjectID == "" {
		return errors.New("project_id is required")
	}
	if r.RequestedFeature == "" {
		return errors.New("requested_feature is required")
	}
	return nil
}

type ChangeRequestView struct {
	ID                  string    `json:"id"`
	ProjectID           string    `json:"project_id"`
	ProjectName         string    `json:"project_name,omitempty"`
	ProjectTrackingCode string    `json:"project_tracking_code,omitempty"`
	RequestedFeature    string    `json:"requested_feature"`
	ReasonForChange     string    `json:"reason_for_change"`
	ImpactLevel         string    `json:"impact_level"`
	Status              string    `json:"status"`
	LoggedBy            string    `json:"logged_by"`
	LoggedByID          string    `json:"logged_by_id"`
	UpdatedBy           string    `json:"updated_by,omitempty"`
	RejectionReason     string    `json:"rejection_reason,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`

	Attachments []attachmentapimodels.AttachmentView `json:"attachments"`
}

func ChangeRequestConvert(rec dbmodels.ChangeRequest) ChangeRequestView {
	view := ChangeRequestView{
		ID:               rec.ID,
		ProjectID:        rec.ProjectID,
		RequestedFeature: rec.RequestedFeature,
		ReasonForChange:  rec.ReasonForChange,
		ImpactLevel:      rec.ImpactLevel,
		Status:           string(rec.Status),
		LoggedByID:       rec.LoggedByID,
		CreatedAt:        rec.CreatedAt,
		UpdatedAt:        rec.UpdatedAt,
		Attachments:      attachmentapimodels.AttachmentListConvert(rec.Attachments),
	}
	if rec.Project != nil {
		view.ProjectName = rec.Project.ProjectName
		view.ProjectTrackingCode = rec.Project.TrackingCode
	}
	if rec.LoggedBy != nil {
		view.LoggedBy = rec.LoggedBy.FNumber
	}
	return view
}
