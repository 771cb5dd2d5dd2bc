package crhandler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"fnb-tracking-backend/models"
	auditapimodels "fnb-tracking-backend/models/api/audit"
	crapimodels "fnb-tracking-backend/models/api/changerequest"
	dbmodels "fnb-tracking-backend/models/db"
)

type fakeCRStore struct {
	recs    map[string]*dbmodels.ChangeRequest
	deletes *[]string
}

func (f *fakeCRStore) Create(rec dbmodels.ChangeRequest) (string, error) { return "cr1", nil }
func (f *fakeCRStore) GetByID(id string) (*dbmodels.ChangeRequest, error) {
	return f.recs[id], nil
}
func (f *fakeCRStore) List() ([]dbmodels.ChangeRequest, error)                    { return nil, nil }
func (f *fakeCRStore) ListByUser(userID string) ([]dbmodels.ChangeRequest, error) { return nil, nil }
func (f *fakeCRStore) ListByProject(projectID string) ([]dbmodels.ChangeRequest, error) {
	return nil, nil
}
func (f *fakeCRStore) Update(id string, updMap map[string]interface{}) error { return nil }
func (f *fakeCRStore) Delete(id string) error {
	*f.deletes = append(*f.deletes, "entity")
	return nil
}
func (f *fakeCRStore) CountByUser(userID string) (int64, error) { return 0, nil }

type fakeCascadeHistoryStore struct {
	deletes *[]string
}

func (f *fakeCascadeHistoryStore) Create(rec dbmodels.StatusHistory) error { return nil }
func (f *fakeCascadeHistoryStore) ListByProject(projectID string) ([]dbmodels.StatusHistory, error) {
	return nil, nil
}
func (f *fakeCascadeHistoryStore) ListByChangeRequest(changeRequestID string) ([]dbmodels.StatusHistory, error) {
	return nil, nil
}
func (f *fakeCascadeHistoryStore) LatestByProject(projectID string) (*dbmodels.StatusHistory, error) {
	return nil, nil
}
func (f *fakeCascadeHistoryStore) LatestRejectionByProject(projectID string) (*dbmodels.StatusHistory, error) {
	return nil, nil
}
func (f *fakeCascadeHistoryStore) LatestByChangeRequest(changeRequestID string) (*dbmodels.StatusHistory, error) {
	return nil, nil
}
func (f *fakeCascadeHistoryStore) LatestRejectionByChangeRequest(changeRequestID string) (*dbmodels.StatusHistory, error) {
	return nil, nil
}
func (f *fakeCascadeHistoryStore) DeleteByChangeRequest(changeRequestID string) error {
	*f.deletes = append(*f.deletes, "history")
	return nil
}

type fakeNotificationStore struct {
	deletes *[]string
}

func (f *fakeNotificationStore) Create(rec dbmodels.Notification) error { return nil }
func (f *fakeNotificationStore) GetByID(id string) (*dbmodels.Notification, error) {
	return nil, nil
}
func (f *fakeNotificationStore) ListByUser(userID string) ([]dbmodels.Notification, error) {
	return nil, nil
}
func (f *fakeNotificationStore) CountUnread(userID string) (int64, error) { return 0, nil }
func (f *fakeNotificationStore) MarkRead(id string) error                 { return nil }
func (f *fakeNotificationStore) DeleteByChangeRequest(changeRequestID string) error {
	*f.deletes = append(*f.deletes, "notifications")
	return nil
}

type fakeAttachmentStore struct {
	deletes *[]string
}

func (f *fakeAttachmentStore) Create(rec dbmodels.Attachment) (string, error) { return "", nil }
func (f *fakeAttachmentStore) GetByID(id string) (*dbmodels.Attachment, error) {
	return nil, nil
}
func (f *fakeAttachmentStore) DeleteByChangeRequest(changeRequestID string) error {
	*f.deletes = append(*f.deletes, "attachments")
	return nil
}

type fakeAuditor struct {
	calls []models.ActionType
}

func (f *fakeAuditor) LogAction(userID *string, action models.ActionType, entityType models.EntityType, entityID, description, ipAddress string) {
	f.calls = append(f.calls, action)
}

func (f *fakeAuditor) List(userID string, date string) ([]auditapimodels.LogView, error) {
	return nil, nil
}

type fakeProjectStore struct {
	recs map[string]*dbmodels.Project
}

func (f *fakeProjectStore) Create(rec dbmodels.Project) (string, error) { return "", nil }
func (f *fakeProjectStore) GetByID(id string) (*dbmodels.Project, error) {
	return f.recs[id], nil
}
func (f *fakeProjectStore) GetByTrackingCode(code string) (*dbmodels.Project, error) {
	return nil, nil
}
func (f *fakeProjectStore) ExistByTrackingCode(code string) (bool, error) { return false, nil }
func (f *fakeProjectStore) List() ([]dbmodels.Project, error)             { return nil, nil }
func (f *fakeProjectStore) ListByUser(userID string) ([]dbmodels.Project, error) {
	return nil, nil
}
func (f *fakeProjectStore) ListDeleted() ([]dbmodels.Project, error) { return nil, nil }
func (f *fakeProjectStore) ListDeletedByUser(userID string) ([]dbmodels.Project, error) {
	return nil, nil
}
func (f *fakeProjectStore) Update(id string, updMap map[string]interface{}) error { return nil }
func (f *fakeProjectStore) CountByUser(userID string) (int64, error)              { return 0, nil }

type fakeUserStore struct {
	recs map[string]*dbmodels.User
}

func (f *fakeUserStore) Create(rec dbmodels.User) (string, error)  { return "", nil }
func (f *fakeUserStore) GetByID(id string) (*dbmodels.User, error) { return f.recs[id], nil }
func (f *fakeUserStore) GetByFNumber(fNumber string) (*dbmodels.User, error) {
	return nil, nil
}
func (f *fakeUserStore) ExistByFNumber(fNumber string) (bool, error)           { return false, nil }
func (f *fakeUserStore) List() ([]dbmodels.User, error)                        { return nil, nil }
func (f *fakeUserStore) Update(id string, updMap map[string]interface{}) error { return nil }
func (f *fakeUserStore) Delete(id string) error                                { return nil }

func TestDeleteCascade(t *testing.T) {
	t.Run(`dependents removed before the entity`, func(t *testing.T) {
		order := []string{}
		rec := dbmodels.ChangeRequest{RequestedFeature: "bulk export"}
		rec.ID = "cr1"
		store := &fakeCRStore{recs: map[string]*dbmodels.ChangeRequest{"cr1": &rec}, deletes: &order}
		auditor := &fakeAuditor{}
		handler := impl{store: store}

		err := handler.deleteTx(store, &fakeCascadeHistoryStore{deletes: &order},
			&fakeNotificationStore{deletes: &order}, &fakeAttachmentStore{deletes: &order},
			auditor, rec, "admin")
		require.Nil(t, err)
		require.Equal(t, []string{"notifications", "history", "attachments", "entity"}, order)
		require.Equal(t, []models.ActionType{models.ActionDeleteChangeRequest}, auditor.calls)
	})
}

func TestCreateGuards(t *testing.T) {
	data := crapimodels.ChangeRequestData{ProjectID: "p1", RequestedFeature: "bulk export"}

	t.Run(`missing project`, func(t *testing.T) {
		handler := impl{
			store:        &fakeCRStore{recs: map[string]*dbmodels.ChangeRequest{}},
			projectStore: &fakeProjectStore{recs: map[string]*dbmodels.Project{}},
			historyStore: &fakeCascadeHistoryStore{deletes: &[]string{}},
			userStore:    &fakeUserStore{recs: map[string]*dbmodels.User{}},
		}
		_, err := handler.Create(data, "u1")
		require.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run(`deleted project rejected`, func(t *testing.T) {
		project := &dbmodels.Project{IsDeleted: true}
		project.ID = "p1"
		handler := impl{
			store:        &fakeCRStore{recs: map[string]*dbmodels.ChangeRequest{}},
			projectStore: &fakeProjectStore{recs: map[string]*dbmodels.Project{"p1": project}},
			historyStore: &fakeCascadeHistoryStore{deletes: &[]string{}},
			userStore:    &fakeUserStore{recs: map[string]*dbmodels.User{}},
		}
		_, err := handler.Create(data, "u1")
		require.ErrorIs(t, err, models.ErrValidation)
	})
}
