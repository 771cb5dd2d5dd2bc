package usershandler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"fnb-tracking-backend/config"
	auditloghandler "fnb-tracking-backend/lib/audit-log"
	"fnb-tracking-backend/models"
	auditapimodels "fnb-tracking-backend/models/api/audit"
	userapimodels "fnb-tracking-backend/models/api/user"
	dbmodels "fnb-tracking-backend/models/db"
)

type fakeUserStore struct {
	recs    map[string]*dbmodels.User
	exist   bool
	created []dbmodels.User
	deleted []string
}

func (f *fakeUserStore) Create(rec dbmodels.User) (string, error) {
	rec.ID = "u-new"
	f.created = append(f.created, rec)
	f.recs[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeUserStore) GetByID(id string) (*dbmodels.User, error) { return f.recs[id], nil }
func (f *fakeUserStore) GetByFNumber(fNumber string) (*dbmodels.User, error) {
	return nil, nil
}
func (f *fakeUserStore) ExistByFNumber(fNumber string) (bool, error) { return f.exist, nil }
func (f *fakeUserStore) List() ([]dbmodels.User, error)              { return nil, nil }
func (f *fakeUserStore) Update(id string, updMap map[string]interface{}) error {
	return nil
}

func (f *fakeUserStore) Delete(id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeProjectCounter struct {
	count int64
}

func (f *fakeProjectCounter) Create(rec dbmodels.Project) (string, error)  { return "", nil }
func (f *fakeProjectCounter) GetByID(id string) (*dbmodels.Project, error) { return nil, nil }
func (f *fakeProjectCounter) GetByTrackingCode(code string) (*dbmodels.Project, error) {
	return nil, nil
}
func (f *fakeProjectCounter) ExistByTrackingCode(code string) (bool, error) { return false, nil }
func (f *fakeProjectCounter) List() ([]dbmodels.Project, error)             { return nil, nil }
func (f *fakeProjectCounter) ListByUser(userID string) ([]dbmodels.Project, error) {
	return nil, nil
}
func (f *fakeProjectCounter) ListDeleted() ([]dbmodels.Project, error) { return nil, nil }
func (f *fakeProjectCounter) ListDeletedByUser(userID string) ([]dbmodels.Project, error) {
	return nil, nil
}
func (f *fakeProjectCounter) Update(id string, updMap map[string]interface{}) error { return nil }
func (f *fakeProjectCounter) CountByUser(userID string) (int64, error)              { return f.count, nil }

type fakeCRCounter struct {
	count int64
}

func (f *fakeCRCounter) Create(rec dbmodels.ChangeRequest) (string, error)  { return "", nil }
func (f *fakeCRCounter) GetByID(id string) (*dbmodels.ChangeRequest, error) { return nil, nil }
func (f *fakeCRCounter) List() ([]dbmodels.ChangeRequest, error)            { return nil, nil }
func (f *fakeCRCounter) ListByUser(userID string) ([]dbmodels.ChangeRequest, error) {
	return nil, nil
}
func (f *fakeCRCounter) ListByProject(projectID string) ([]dbmodels.ChangeRequest, error) {
	return nil, nil
}
func (f *fakeCRCounter) Update(id string, updMap map[string]interface{}) error { return nil }
func (f *fakeCRCounter) Delete(id string) error                                { return nil }
func (f *fakeCRCounter) CountByUser(userID string) (int64, error)              { return f.count, nil }

type fakeAuditor struct{}

func (f *fakeAuditor) LogAction(userID *string, action models.ActionType, entityType models.EntityType, entityID, description, ipAddress string) {
}

func (f *fakeAuditor) List(userID string, date string) ([]auditapimodels.LogView, error) {
	return nil, nil
}

func initTestEnv() {
	auditloghandler.Instance = &fakeAuditor{}
	if config.Conf == nil {
		conf := new(config.Configuration)
		conf.Auth.DefaultUserPassword = "password123"
		config.Conf = conf
	}
}

func TestCreateUser(t *testing.T) {
	initTestEnv()
	data := userapimodels.UserCreateData{FNumber: "F12345", Role: "NORMAL_USER"}

	t.Run(`duplicate f-number conflicts`, func(t *testing.T) {
		store := &fakeUserStore{recs: map[string]*dbmodels.User{}, exist: true}
		handler := impl{store: store, projectStore: &fakeProjectCounter{}, crStore: &fakeCRCounter{}}
		_, err := handler.Create(data, "admin")
		require.ErrorIs(t, err, models.ErrConflict)
		require.Len(t, store.created, 0)
	})

	t.Run(`default password applied when omitted`, func(t *testing.T) {
		store := &fakeUserStore{recs: map[string]*dbmodels.User{}}
		handler := impl{store: store, projectStore: &fakeProjectCounter{}, crStore: &fakeCRCounter{}}
		_, err := handler.Create(data, "admin")
		require.Nil(t, err)
		require.Len(t, store.created, 1)
		require.Equal(t, config.Conf.Auth.DefaultUserPassword, store.created[0].Password)
		require.Equal(t, true, store.created[0].IsActive)
	})

	t.Run(`provided password wins`, func(t *testing.T) {
		store := &fakeUserStore{recs: map[string]*dbmodels.User{}}
		handler := impl{store: store, projectStore: &fakeProjectCounter{}, crStore: &fakeCRCounter{}}
		withPassword := data
		withPassword.Password = "s3cret"
		_, err := handler.Create(withPassword, "admin")
		require.Nil(t, err)
		require.Equal(t, "s3cret", store.created[0].Password)
	})
}

func TestDeleteUser(t *testing.T) {
	initTestEnv()
	user := &dbmodels.User{FNumber: "F12345"}
	user.ID = "u1"

	t.Run(`blocked while owning projects`, func(t *testing.T) {
		store := &fakeUserStore{recs: map[string]*dbmodels.User{"u1": user}}
		handler := impl{store: store, projectStore: &fakeProjectCounter{count: 2}, crStore: &fakeCRCounter{}}
		err := handler.Delete("u1", "admin")
		require.ErrorIs(t, err, models.ErrConflict)
		require.Len(t, store.deleted, 0)
	})

	t.Run(`blocked while owning change requests`, func(t *testing.T) {
		store := &fakeUserStore{recs: map[string]*dbmodels.User{"u1": user}}
		handler := impl{store: store, projectStore: &fakeProjectCounter{}, crStore: &fakeCRCounter{count: 1}}
		err := handler.Delete("u1", "admin")
		require.ErrorIs(t, err, models.ErrConflict)
		require.Len(t, store.deleted, 0)
	})

	t.Run(`deleted when nothing is owned`, func(t *testing.T) {
		store := &fakeUserStore{recs: map[string]*dbmodels.User{"u1": user}}
		handler := impl{store: store, projectStore: &fakeProjectCounter{}, crStore: &fakeCRCounter{}}
		err := handler.Delete("u1", "admin")
		require.Nil(t, err)
		require.Equal(t, []string{"u1"}, store.deleted)
	})

	t.Run(`missing user`, func(t *testing.T) {
		store := &fakeUserStore{recs: map[string]*dbmodels.User{}}
		handler := impl{store: store, projectStore: &fakeProjectCounter{}, crStore: &fakeCRCounter{}}
		err := handler.Delete("ghost", "admin")
		require.ErrorIs(t, err, models.ErrNotFound)
	})
}
