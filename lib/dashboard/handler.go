package dashboardhandler

import (
	log "github.com/sirupsen/logrus"

	crhandler "fnb-tracking-backend/lib/change-request"
	projecthandler "fnb-tracking-backend/lib/project"
	initchecker "fnb-tracking-backend/lib/utils/init-checker"
	"fnb-tracking-backend/models"
	crapimodels "fnb-tracking-backend/models/api/changerequest"
	dashboardapimodels "fnb-tracking-backend/models/api/dashboard"
	projectapimodels "fnb-tracking-backend/models/api/project"
)

type Provider interface {
	GetStats(userID string, role models.UserRole) (dashboardapimodels.DashboardStats, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		projects:       projecthandler.Instance,
		changeRequests: crhandler.Instance,
	}
	initchecker.CheckInit(
		"projects", instance.projects,
		"changeRequests", instance.changeRequests,
	)
	Instance = instance
}

type impl struct {
	projects       projecthandler.Provider
	changeRequests crhandler.Provider
}

// GetStats recomputes the dashboard from the caller's visible rows on
// every call; admins see everything, other users see their own records.
func (i impl) GetStats(userID string, role models.UserRole) (dashboardapimodels.DashboardStats, error) {
	logger := log.WithField("user_id", userID)
	var (
		projects []projectapimodels.ProjectView
		crList   []crapimodels.ChangeRequestView
		err      error
	)
	if role.IsAdmin() {
		projects, err = i.projects.ListAll()
	} else {
		projects, err = i.projects.ListForUser(userID)
	}
	if err != nil {
		logger.WithError(err).Error("failed to load projects for dashboard")
		return dashboardapimodels.DashboardStats{}, err
	}
	if role.IsAdmin() {
		crList, err = i.changeRequests.ListAll()
	} else {
		crList, err = i.changeRequests.ListForUser(userID)
	}
	if err != nil {
		logger.WithError(err).Error("failed to load change requests for dashboard")
		return dashboardapimodels.DashboardStats{}, err
	}
	return dashboardapimodels.BuildStats(projects, crList), nil
}
