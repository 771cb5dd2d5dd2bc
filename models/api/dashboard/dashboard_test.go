package dashboardapimodels

import (
	"testing"

	"github.com/stretchr/testify/require"

	crapimodels "fnb-tracking-backend/models/api/changerequest"
	projectapimodels "fnb-tracking-backend/models/api/project"
)

func TestBuildStats(t *testing.T) {
	projects := []projectapimodels.ProjectView{
		{Status: "PENDING", Department: "IT", Priority: "HIGH"},
		{Status: "PENDING", Department: "IT", Priority: "LOW"},
		{Status: "APPROVED", Department: "Finance", Priority: "HIGH"},
		{Status: "", Department: "  ", Priority: ""},
	}
	changeRequests := []crapimodels.ChangeRequestView{
		{Status: "PENDING"},
		{Status: "TESTING"},
	}

	t.Run(`totals check`, func(t *testing.T) {
		stats := BuildStats(projects, changeRequests)
		require.Equal(t, int64(4), stats.TotalProjects)
		require.Equal(t, int64(4), stats.NewProjectRequests)
		require.Equal(t, int64(2), stats.ChangeRequests)
		require.Len(t, stats.Projects, 4)
		require.Len(t, stats.ChangeRequestsList, 2)
	})

	t.Run(`status tally maps blank to UNKNOWN`, func(t *testing.T) {
		stats := BuildStats(projects, changeRequests)
		require.Equal(t, int64(2), stats.ProjectsByStatus["PENDING"])
		require.Equal(t, int64(1), stats.ProjectsByStatus["APPROVED"])
		require.Equal(t, int64(1), stats.ProjectsByStatus["UNKNOWN"])
	})

	t.Run(`department tally skips blank values`, func(t *testing.T) {
		stats := BuildStats(projects, changeRequests)
		require.Equal(t, int64(2), stats.ProjectsByDepartment["IT"])
		require.Equal(t, int64(1), stats.ProjectsByDepartment["Finance"])
		require.Len(t, stats.ProjectsByDepartment, 2)
	})

	t.Run(`priority tally skips blank values`, func(t *testing.T) {
		stats := BuildStats(projects, changeRequests)
		require.Equal(t, int64(2), stats.ProjectsByPriority["HIGH"])
		require.Equal(t, int64(1), stats.ProjectsByPriority["LOW"])
		require.Len(t, stats.ProjectsByPriority, 2)
	})

	t.Run(`empty input yields empty maps`, func(t *testing.T) {
		stats := BuildStats(nil, nil)
		require.Equal(t, int64(0), stats.TotalProjects)
		require.NotNil(t, stats.ProjectsByStatus)
		require.Len(t, stats.ProjectsByStatus, 0)
	})
}
