package reporthandler

import (
	"bytes"

	log "github.com/sirupsen/logrus"

	crhandler "fnb-tracking-backend/lib/change-request"
	pdfexport "fnb-tracking-backend/lib/export/pdf"
	xlsexport "fnb-tracking-backend/lib/export/xls"
	projecthandler "fnb-tracking-backend/lib/project"
	initchecker "fnb-tracking-backend/lib/utils/init-checker"
	"fnb-tracking-backend/models"
	crapimodels "fnb-tracking-backend/models/api/changerequest"
	projectapimodels "fnb-tracking-backend/models/api/project"
	reportapimodels "fnb-tracking-backend/models/api/report"
)

type Provider interface {
	Generate(filter reportapimodels.ReportFilter, userID string, role models.UserRole) (reportapimodels.ReportView, error)
	ExportToXls(filter reportapimodels.ReportFilter, userID string, role models.UserRole) (*bytes.Buffer, error)
	ExportToPdf(filter reportapimodels.ReportFilter, userID string, role models.UserRole) (*bytes.Buffer, error)
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

func (i impl) Generate(filter reportapimodels.ReportFilter, userID string, role models.UserRole) (reportapimodels.ReportView, error) {
	logger := log.WithField("user_id", userID)
	report := reportapimodels.ReportView{}
	if filter.IncludeProjects() {
		var (
			list []projectapimodels.ProjectView
			err  error
		)
		if role.IsAdmin() {
			list, err = i.projects.ListAll()
		} else {
			list, err = i.projects.ListForUser(userID)
		}
		if err != nil {
			logger.WithError(err).Error("failed to load projects for report")
			return reportapimodels.ReportView{}, err
		}
		filtered := make([]projectapimodels.ProjectView, 0, len(list))
		for _, item := range list {
			if filter.MatchProject(item) {
				filtered = append(filtered, item)
			}
		}
		report.Projects = filtered
		report.ProjectCount = len(filtered)
	}
	if filter.IncludeChangeRequests() {
		var (
			list []crapimodels.ChangeRequestView
			err  error
		)
		if role.IsAdmin() {
			list, err = i.changeRequests.ListAll()
		} else {
			list, err = i.changeRequests.ListForUser(userID)
		}
		if err != nil {
			logger.WithError(err).Error("failed to load change requests for report")
			return reportapimodels.ReportView{}, err
		}
		filtered := make([]crapimodels.ChangeRequestView, 0, len(list))
		for _, item := range list {
			if filter.MatchChangeRequest(item) {
				filtered = append(filtered, item)
			}
		}
		report.ChangeRequests = filtered
		report.ChangeRequestCount = len(filtered)
	}
	report.Total = report.ProjectCount + report.ChangeRequestCount
	return report, nil
}

func (i impl) ExportToXls(filter reportapimodels.ReportFilter, userID string, role models.UserRole) (*bytes.Buffer, error) {
	report, err := i.Generate(filter, userID, role)
	if err != nil {
		return nil, err
	}
	return xlsexport.Instance.ExportReport(report)
}

func (i impl) ExportToPdf(filter reportapimodels.ReportFilter, userID string, role models.UserRole) (*bytes.Buffer, error) {
	report, err := i.Generate(filter, userID, role)
	if err != nil {
		return nil, err
	}
	return pdfexport.Instance.ExportReport(report)
}
