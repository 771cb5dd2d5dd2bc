package reportapimodels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	projectapimodels "fnb-tracking-backend/models/api/project"
)

func TestReportFilter(t *testing.T) {
	t.Run(`unparsable dates mean no filter`, func(t *testing.T) {
		filter := ReportFilter{DateFrom: "not-a-date", DateTo: "13/01/2025"}
		require.Nil(t, filter.FromTime())
		require.Nil(t, filter.ToTime())

		project := projectapimodels.ProjectView{CreatedAt: time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)}
		require.Equal(t, true, filter.MatchProject(project))
	})

	t.Run(`date_to covers the whole day`, func(t *testing.T) {
		filter := ReportFilter{DateTo: "2025-03-10"}
		endOfDay := projectapimodels.ProjectView{CreatedAt: time.Date(2025, 3, 10, 23, 59, 59, 0, time.UTC)}
		nextDay := projectapimodels.ProjectView{CreatedAt: time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)}
		require.Equal(t, true, filter.MatchProject(endOfDay))
		require.Equal(t, false, filter.MatchProject(nextDay))
	})

	t.Run(`date_from is inclusive`, func(t *testing.T) {
		filter := ReportFilter{DateFrom: "2025-03-10"}
		startOfDay := projectapimodels.ProjectView{CreatedAt: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)}
		dayBefore := projectapimodels.ProjectView{CreatedAt: time.Date(2025, 3, 9, 23, 59, 59, 0, time.UTC)}
		require.Equal(t, true, filter.MatchProject(startOfDay))
		require.Equal(t, false, filter.MatchProject(dayBefore))
	})

	t.Run(`status filter check`, func(t *testing.T) {
		filter := ReportFilter{Status: "PENDING"}
		require.Equal(t, true, filter.MatchProject(projectapimodels.ProjectView{Status: "PENDING"}))
		require.Equal(t, false, filter.MatchProject(projectapimodels.ProjectView{Status: "APPROVED"}))
	})

	t.Run(`type restriction check`, func(t *testing.T) {
		both := ReportFilter{}
		require.Equal(t, true, both.IncludeProjects())
		require.Equal(t, true, both.IncludeChangeRequests())

		onlyProjects := ReportFilter{Type: TypeProject}
		require.Equal(t, true, onlyProjects.IncludeProjects())
		require.Equal(t, false, onlyProjects.IncludeChangeRequests())

		onlyCRs := ReportFilter{Type: TypeChangeRequest}
		require.Equal(t, false, onlyCRs.IncludeProjects())
		require.Equal(t, true, onlyCRs.IncludeChangeRequests())
	})
}
