package dashboardapimodels

import (
	"strings"

	crapimodels "fnb-tracking-backend/models/api/changerequest"
	projectapimodels "fnb-tracking-backend/models/api/project"
)

type DashboardStats struct {
	TotalProjects      int64 `json:"total_projects"`
	NewProjectRequests int64 `json:"new_project_requests"`
	ChangeRequests     int64 `json:"change_requests"`

	ProjectsByStatus     map[string]int64 `json:"projects_by_status"`
	ProjectsByDepartment map[string]int64 `json:"projects_by_department"`
	ProjectsByPriority   map[string]int64 `json:"projects_by_priority"`

	Projects           []projectapimodels.ProjectView  `json:"projects"`
	ChangeRequestsList []crapimodels.ChangeRequestView `json:"change_requests_list"`
}

// BuildStats derives the dashboard from an already caller-scoped data set;
// it holds no state of its own.
func BuildStats(projects []projectapimodels.ProjectView, changeRequests []crapimodels.ChangeRequestView) DashboardStats {
	stats := DashboardStats{
		TotalProjects:        int64(len(projects)),
		NewProjectRequests:   int64(len(projects)),
		ChangeRequests:       int64(len(changeRequests)),
		ProjectsByStatus:     map[string]int64{},
		ProjectsByDepartment: map[string]int64{},
		ProjectsByPriority:   map[string]int64{},
		Projects:             projects,
		ChangeRequestsList:   changeRequests,
	}
	for _, p := range projects {
		status := p.Status
		if status == "" {
			status = "UNKNOWN"
		}
		stats.ProjectsByStatus[status]++
		if strings.TrimSpace(p.Department) != "" {
			stats.ProjectsByDepartment[p.Department]++
		}
		if strings.TrimSpace(p.Priority) != "" {
			stats.ProjectsByPriority[p.Priority]++
		}
	}
	return stats
}
