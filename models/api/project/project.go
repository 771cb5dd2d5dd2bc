package projectapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"

	"fnb-tracking-backend/models"
	attachmentapimodels "fnb-tracking-backend/models/api/attachment"
	dbmodels "fnb-tracking-backend/models/db"
)

type ProjectData struct {
	ProjectName string `json:"project_name"`
	Department  string `json:"department"`
	Branch      string `json:"branch"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

func (r ProjectData) Validate() error {
	if r.ProjectName == "" {
		return errors.New("project_name is required")
	}
	if !models.PriorityLevel(r.Priority).IsValid() {
		return errors.Errorf("unknown priority: %v", r.Priority)
	}
	return nil
}

type StatusUpdateData struct {
	Status          string `json:"status"`
	RejectionReason string `json:"rejection_reason,omitempty"`
}

func (r StatusUpdateData) Validate() error {
	if !models.RequestStatus(r.Status).IsValid() {
		return errors.Wrapf(models.ErrValidation, "unknown status: %v", r.Status)
	}
	return nil
}

// Reason returns the rejection reason to persist: the trimmed value when the
// new status is REJECTED and the value is non-blank, empty otherwise.
func (r StatusUpdateData) Reason() string {
	if models.RequestStatus(r.Status) != models.StatusRejected {
		return ""
	}
	return strings.TrimSpace(r.RejectionReason)
}

type DeleteData struct {
	Reason string `json:"reason"`
}

type ProjectView struct {
	ID              string     `json:"id"`
	TrackingCode    string     `json:"tracking_code"`
	ProjectName     string     `json:"project_name"`
	Department      string     `json:"department"`
	Branch          string     `json:"branch"`
	Description     string     `json:"description"`
	Priority        string     `json:"priority"`
	Status          string     `json:"status"`
	LoggedBy        string     `json:"logged_by"` // creator F-number
	LoggedByID      string     `json:"logged_by_id"`
	UpdatedBy       string     `json:"updated_by,omitempty"` // actor of the latest status transition
	RejectionReason string     `json:"rejection_reason,omitempty"`
	IsDeleted       bool       `json:"is_deleted"`
	DeletedAt       *time.Time `json:"deleted_at,omitempty"`
	DeletedBy       string     `json:"deleted_by,omitempty"`
	DeletionReason  string     `json:"deletion_reason,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	Attachments []attachmentapimodels.AttachmentView `json:"attachments"`
}

func ProjectConvert(rec dbmodels.Project) ProjectView {
	view := ProjectView{
		ID:             rec.ID,
		TrackingCode:   rec.TrackingCode,
		ProjectName:    rec.ProjectName,
		Department:     rec.Department,
		Branch:         rec.Branch,
		Description:    rec.Description,
		Priority:       string(rec.Priority),
		Status:         string(rec.Status),
		LoggedByID:     rec.LoggedByID,
		IsDeleted:      rec.IsDeleted,
		DeletedAt:      rec.DeletedAt,
		DeletionReason: rec.DeletionReason,
		CreatedAt:      rec.CreatedAt,
		UpdatedAt:      rec.UpdatedAt,
		Attachments:    attachmentapimodels.AttachmentListConvert(rec.Attachments),
	}
	if rec.LoggedBy != nil {
		view.LoggedBy = rec.LoggedBy.FNumber
	}
	if rec.DeletedBy != nil {
		view.DeletedBy = rec.DeletedBy.FNumber
	}
	return view
}
