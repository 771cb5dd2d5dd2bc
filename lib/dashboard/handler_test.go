package dashboardhandler

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"fnb-tracking-backend/models"
	crapimodels "fnb-tracking-backend/models/api/changerequest"
	projectapimodels "fnb-tracking-backend/models/api/project"
)

type fakeProjectProvider struct {
	all     []projectapimodels.ProjectView
	own     []projectapimodels.ProjectView
	listErr error
}

func (f *fakeProjectProvider) Create(data projectapimodels.ProjectData, userID string) (projectapimodels.ProjectView, error) {
	return projectapimodels.ProjectView{}, nil
}
func (f *fakeProjectProvider) ListAll() ([]projectapimodels.ProjectView, error) {
	return f.all, f.listErr
}
func (f *fakeProjectProvider) ListForUser(userID string) ([]projectapimodels.ProjectView, error) {
	return f.own, f.listErr
}
func (f *fakeProjectProvider) GetByID(id string) (projectapimodels.ProjectView, error) {
	return projectapimodels.ProjectView{}, nil
}
func (f *fakeProjectProvider) GetByTrackingCode(code string) (projectapimodels.ProjectView, error) {
	return projectapimodels.ProjectView{}, nil
}
func (f *fakeProjectProvider) Update(id string, data projectapimodels.ProjectData, userID string) (projectapimodels.ProjectView, error) {
	return projectapimodels.ProjectView{}, nil
}
func (f *fakeProjectProvider) UpdateStatus(id string, data projectapimodels.StatusUpdateData, adminID string) (projectapimodels.ProjectView, error) {
	return projectapimodels.ProjectView{}, nil
}
func (f *fakeProjectProvider) SoftDelete(id string, reason string, adminID string) (projectapimodels.ProjectView, error) {
	return projectapimodels.ProjectView{}, nil
}
func (f *fakeProjectProvider) ListDeleted(userID string, role models.UserRole) ([]projectapimodels.ProjectView, error) {
	return nil, nil
}

type fakeCRProvider struct {
	all []crapimodels.ChangeRequestView
	own []crapimodels.ChangeRequestView
}

func (f *fakeCRProvider) Create(data crapimodels.ChangeRequestData, userID string) (crapimodels.ChangeRequestView, error) {
	return crapimodels.ChangeRequestView{}, nil
}
func (f *fakeCRProvider) ListAll() ([]crapimodels.ChangeRequestView, error) { return f.all, nil }
func (f *fakeCRProvider) ListForUser(userID string) ([]crapimodels.ChangeRequestView, error) {
	return f.own, nil
}
func (f *fakeCRProvider) ListByProject(projectID string) ([]crapimodels.ChangeRequestView, error) {
	return nil, nil
}
func (f *fakeCRProvider) GetByID(id string) (crapimodels.ChangeRequestView, error) {
	return crapimodels.ChangeRequestView{}, nil
}
func (f *fakeCRProvider) UpdateStatus(id string, data projectapimodels.StatusUpdateData, adminID string) (crapimodels.ChangeRequestView, error) {
	return crapimodels.ChangeRequestView{}, nil
}
func (f *fakeCRProvider) Delete(id string, adminID string) error { return nil }

func TestGetStats(t *testing.T) {
	adminView := projectapimodels.ProjectView{
		TrackingCode:    "FNBPJ01",
		Department:      "IT",
		Priority:        "HIGH",
		Status:          string(models.StatusRejected),
		RejectionReason: "budget cut",
	}
	ownView := projectapimodels.ProjectView{
		TrackingCode: "FNBPJ02",
		Department:   "HR",
		Priority:     "LOW",
		Status:       string(models.StatusPending),
	}
	projects := &fakeProjectProvider{
		all: []projectapimodels.ProjectView{adminView, ownView},
		own: []projectapimodels.ProjectView{ownView},
	}
	crList := &fakeCRProvider{
		all: []crapimodels.ChangeRequestView{{RequestedFeature: "sso"}, {RequestedFeature: "audit"}},
		own: []crapimodels.ChangeRequestView{{RequestedFeature: "sso"}},
	}
	handler := impl{
		projects:       projects,
		changeRequests: crList,
	}

	t.Run("admin sees all records", func(t *testing.T) {
		stats, err := handler.GetStats("admin-1", models.UserRoleAdmin)
		require.NoError(t, err)
		require.EqualValues(t, 2, stats.TotalProjects)
		require.EqualValues(t, 2, stats.ChangeRequests)
		require.EqualValues(t, 1, stats.ProjectsByStatus[string(models.StatusRejected)])
		require.EqualValues(t, 1, stats.ProjectsByDepartment["IT"])
		require.EqualValues(t, 1, stats.ProjectsByPriority["HIGH"])
	})

	t.Run("user sees own records only", func(t *testing.T) {
		stats, err := handler.GetStats("user-1", models.UserRoleNormal)
		require.NoError(t, err)
		require.EqualValues(t, 1, stats.TotalProjects)
		require.EqualValues(t, 1, stats.ChangeRequests)
		require.Empty(t, stats.ProjectsByStatus[string(models.StatusRejected)])
		require.EqualValues(t, 1, stats.ProjectsByDepartment["HR"])
	})

	t.Run("derived view fields carried through", func(t *testing.T) {
		stats, err := handler.GetStats("admin-1", models.UserRoleAdmin)
		require.NoError(t, err)
		require.Len(t, stats.Projects, 2)
		require.Equal(t, "budget cut", stats.Projects[0].RejectionReason)
	})

	t.Run("load error propagated", func(t *testing.T) {
		broken := impl{
			projects:       &fakeProjectProvider{listErr: errors.New("db down")},
			changeRequests: crList,
		}
		_, err := broken.GetStats("admin-1", models.UserRoleAdmin)
		require.Error(t, err)
	})
}
