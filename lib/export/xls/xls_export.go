package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	crapimodels "fnb-tracking-backend/models/api/changerequest"
	projectapimodels "fnb-tracking-backend/models/api/project"
	reportapimodels "fnb-tracking-backend/models/api/report"
)

type Provider interface {
	ExportReport(report reportapimodels.ReportView) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

const dateFormat = "2006-01-02 15:04"

var projectHeaders = []string{"Tracking Code", "Project Name", "Department", "Branch", "Priority", "Status", "Logged By", "Created At"}
var crHeaders = []string{"Project", "Requested Feature", "Reason For Change", "Impact Level", "Status", "Logged By", "Created At"}

func (i impl) ExportReport(report reportapimodels.ReportView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close xlsx file")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, projectHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write project header")
	}
	if len(report.Projects) != 0 {
		_, err = writeProjectData(f, sheet, report.Projects, row)
		if err != nil {
			return nil, errors.Wrap(err, "failed to write project rows")
		}
	}
	f.SetSheetName(sheet, "Projects")

	crSheet := "Change Requests"
	if _, err = f.NewSheet(crSheet); err != nil {
		return nil, errors.Wrap(err, "failed to add change request sheet")
	}
	row = 0
	row, err = writeHeader(f, crSheet, row, crHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write change request header")
	}
	if len(report.ChangeRequests) != 0 {
		_, err = writeChangeRequestData(f, crSheet, report.ChangeRequests, row)
		if err != nil {
			return nil, errors.Wrap(err, "failed to write change request rows")
		}
	}
	return f.WriteToBuffer()
}

func writeProjectData(f *excelize.File, sheet string, list []projectapimodels.ProjectView, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(projectHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		values := []interface{}{
			item.TrackingCode,
			item.ProjectName,
			item.Department,
			item.Branch,
			item.Priority,
			item.Status,
			item.LoggedBy,
			item.CreatedAt.Format(dateFormat),
		}
		for idx, value := range values {
			if err := writeColumn(f, sheet, idx+1, row, value); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}

func writeChangeRequestData(f *excelize.File, sheet string, list []crapimodels.ChangeRequestView, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(crHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		values := []interface{}{
			item.ProjectTrackingCode,
			item.RequestedFeature,
			item.ReasonForChange,
			item.ImpactLevel,
			item.Status,
			item.LoggedBy,
			item.CreatedAt.Format(dateFormat),
		}
		for idx, value := range values {
			if err := writeColumn(f, sheet, idx+1, row, value); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}
