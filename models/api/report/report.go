package reportapimodels

import (
	"time"

	crapimodels "fnb-tracking-backend/models/api/changerequest"
	projectapimodels "fnb-tracking-backend/models/api/project"
)

const (
	TypeProject       = "PROJECT"
	TypeChangeRequest = "CHANGE_REQUEST"
)

// ReportFilter carries the raw query parameters. Dates use YYYY-MM-DD;
// values that fail to parse mean "no filter applied".
type ReportFilter struct {
	DateFrom string `query:"date_from"`
	DateTo   string `query:"date_to"`
	Status   string `query:"status"`
	Type     string `query:"type"`
}

func (r ReportFilter) FromTime() *time.Time {
	if r.DateFrom == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", r.DateFrom)
	if err != nil {
		return nil
	}
	return &t
}

func (r ReportFilter) ToTime() *time.Time {
	if r.DateTo == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", r.DateTo)
	if err != nil {
		return nil
	}
	end := t.Add(24*time.Hour - time.Second)
	return &end
}

func (r ReportFilter) matches(createdAt time.Time, status string) bool {
	if from := r.FromTime(); from != nil && createdAt.Before(*from) {
		return false
	}
	if to := r.ToTime(); to != nil && createdAt.After(*to) {
		return false
	}
	if r.Status != "" && status != "" && status != r.Status {
		return false
	}
	return true
}

func (r ReportFilter) MatchProject(p projectapimodels.ProjectView) bool {
	return r.matches(p.CreatedAt, p.Status)
}

func (r ReportFilter) MatchChangeRequest(cr crapimodels.ChangeRequestView) bool {
	return r.matches(cr.CreatedAt, cr.Status)
}

func (r ReportFilter) IncludeProjects() bool {
	return r.Type == "" || r.Type == TypeProject
}

func (r ReportFilter) IncludeChangeRequests() bool {
	return r.Type == "" || r.Type == TypeChangeRequest
}

type ReportView struct {
	Projects           []projectapimodels.ProjectView  `json:"projects,omitempty"`
	ProjectCount       int                             `json:"project_count"`
	ChangeRequests     []crapimodels.ChangeRequestView `json:"change_requests,omitempty"`
	ChangeRequestCount int                             `json:"change_request_count"`
	Total              int                             `json:"total"`
}
