package pdfexport

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

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

const dateFormat = "2006-01-02"

func (i impl) ExportReport(report reportapimodels.ReportView) (buf *bytes.Buffer, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("ExportReport panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, "FNB Tracking Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated %s. Projects: %d. Change requests: %d. Total: %d.",
		time.Now().Format(dateFormat), report.ProjectCount, report.ChangeRequestCount, report.Total),
		"", 1, "C", false, 0, "")
	pdf.Ln(4)

	if len(report.Projects) != 0 {
		writeSectionHeader(pdf, "Projects")
		writeTableHeader(pdf, []string{"Code", "Name", "Department", "Priority", "Status", "Logged By", "Created"},
			projectColWidths)
		pdf.SetFont("Helvetica", "", 9)
		for _, item := range report.Projects {
			writeRow(pdf, []string{
				item.TrackingCode,
				item.ProjectName,
				item.Department,
				item.Priority,
				item.Status,
				item.LoggedBy,
				item.CreatedAt.Format(dateFormat),
			}, projectColWidths)
		}
		pdf.Ln(6)
	}

	if len(report.ChangeRequests) != 0 {
		writeSectionHeader(pdf, "Change Requests")
		writeTableHeader(pdf, []string{"Project", "Requested Feature", "Impact", "Status", "Logged By", "Created"},
			crColWidths)
		pdf.SetFont("Helvetica", "", 9)
		for _, item := range report.ChangeRequests {
			writeRow(pdf, []string{
				item.ProjectTrackingCode,
				item.RequestedFeature,
				item.ImpactLevel,
				item.Status,
				item.LoggedBy,
				item.CreatedAt.Format(dateFormat),
			}, crColWidths)
		}
	}

	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	buf = new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

var projectColWidths = []float64{25, 60, 45, 25, 50, 30, 30}
var crColWidths = []float64{25, 85, 25, 60, 30, 30}

func writeSectionHeader(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
}

func writeTableHeader(pdf *fpdf.Fpdf, headers []string, widths []float64) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for idx, value := range headers {
		pdf.CellFormat(widths[idx], 7, value, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
}

func writeRow(pdf *fpdf.Fpdf, values []string, widths []float64) {
	for idx, value := range values {
		pdf.CellFormat(widths[idx], 6, value, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}
