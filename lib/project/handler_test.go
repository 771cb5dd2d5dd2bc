package projecthandler

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"fnb-tracking-backend/models"
	auditapimodels "fnb-tracking-backend/models/api/audit"
	notificationapimodels "fnb-tracking-backend/models/api/notification"
	projectapimodels "fnb-tracking-backend/models/api/project"
	dbmodels "fnb-tracking-backend/models/db"
)

type fakeProjectStore struct {
	recs       map[string]*dbmodels.Project
	existCalls int
	existFirst bool
	created    []dbmodels.Project
	updates    map[string][]map[string]interface{}
	nextID     int
}

func newFakeProjectStore() *fakeProjectStore {
	return &fakeProjectStore{
		recs:    map[string]*dbmodels.Project{},
		updates: map[string][]map[string]interface{}{},
	}
}

func (f *fakeProjectStore) Create(rec dbmodels.Project) (string, error) {
	f.nextID++
	rec.ID = fmt.Sprintf("id-%d", f.nextID)
	f.created = append(f.created, rec)
	f.recs[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeProjectStore) GetByID(id string) (*dbmodels.Project, error) {
	return f.recs[id], nil
}

func (f *fakeProjectStore) GetByTrackingCode(code string) (*dbmodels.Project, error) {
	for _, rec := range f.recs {
		if rec.TrackingCode == code {
			return rec, nil
		}
	}
	return nil, nil
}

func (f *fakeProjectStore) ExistByTrackingCode(code string) (bool, error) {
	f.existCalls++
	if f.existFirst && f.existCalls == 1 {
		return true, nil
	}
	return false, nil
}

func (f *fakeProjectStore) List() ([]dbmodels.Project, error)                    { return nil, nil }
func (f *fakeProjectStore) ListByUser(userID string) ([]dbmodels.Project, error) { return nil, nil }
func (f *fakeProjectStore) ListDeleted() ([]dbmodels.Project, error)             { return nil, nil }
func (f *fakeProjectStore) ListDeletedByUser(userID string) ([]dbmodels.Project, error) {
	return nil, nil
}

func (f *fakeProjectStore) Update(id string, updMap map[string]interface{}) error {
	f.updates[id] = append(f.updates[id], updMap)
	if rec, exist := f.recs[id]; exist {
		if status, ok := updMap["Status"]; ok {
			rec.Status = status.(models.RequestStatus)
		}
	}
	return nil
}

func (f *fakeProjectStore) CountByUser(userID string) (int64, error) { return 0, nil }

type fakeHistoryStore struct {
	created         []dbmodels.StatusHistory
	latest          *dbmodels.StatusHistory
	latestRejection *dbmodels.StatusHistory
}

func (f *fakeHistoryStore) Create(rec dbmodels.StatusHistory) error {
	f.created = append(f.created, rec)
	return nil
}

func (f *fakeHistoryStore) ListByProject(projectID string) ([]dbmodels.StatusHistory, error) {
	return f.created, nil
}

func (f *fakeHistoryStore) ListByChangeRequest(changeRequestID string) ([]dbmodels.StatusHistory, error) {
	return nil, nil
}

func (f *fakeHistoryStore) LatestByProject(projectID string) (*dbmodels.StatusHistory, error) {
	return f.latest, nil
}

func (f *fakeHistoryStore) LatestRejectionByProject(projectID string) (*dbmodels.StatusHistory, error) {
	return f.latestRejection, nil
}

func (f *fakeHistoryStore) LatestByChangeRequest(changeRequestID string) (*dbmodels.StatusHistory, error) {
	return nil, nil
}

func (f *fakeHistoryStore) LatestRejectionByChangeRequest(changeRequestID string) (*dbmodels.StatusHistory, error) {
	return nil, nil
}

func (f *fakeHistoryStore) DeleteByChangeRequest(changeRequestID string) error { return nil }

type fakeUserStore struct {
	recs map[string]*dbmodels.User
}

func (f *fakeUserStore) Create(rec dbmodels.User) (string, error)  { return "", nil }
func (f *fakeUserStore) GetByID(id string) (*dbmodels.User, error) { return f.recs[id], nil }
func (f *fakeUserStore) GetByFNumber(fNumber string) (*dbmodels.User, error) {
	return nil, nil
}
func (f *fakeUserStore) ExistByFNumber(fNumber string) (bool, error) { return false, nil }
func (f *fakeUserStore) List() ([]dbmodels.User, error)              { return nil, nil }
func (f *fakeUserStore) Update(id string, updMap map[string]interface{}) error {
	return nil
}
func (f *fakeUserStore) Delete(id string) error { return nil }

type notifierCall struct {
	userID  string
	message string
	nType   models.NotificationType
}

type fakeNotifier struct {
	calls []notifierCall
	err   error
}

func (f *fakeNotifier) CreateNotification(userID string, projectID, changeRequestID *string, nType models.NotificationType, message string) error {
	f.calls = append(f.calls, notifierCall{userID: userID, message: message, nType: nType})
	return f.err
}

func (f *fakeNotifier) ListForUser(userID string) ([]notificationapimodels.NotificationView, error) {
	return nil, nil
}

func (f *fakeNotifier) UnreadCount(userID string) (int64, error) { return 0, nil }

func (f *fakeNotifier) MarkAsRead(id, userID string) error { return nil }

type auditorCall struct {
	action      models.ActionType
	entityID    string
	description string
}

type fakeAuditor struct {
	calls []auditorCall
}

func (f *fakeAuditor) LogAction(userID *string, action models.ActionType, entityType models.EntityType, entityID, description, ipAddress string) {
	f.calls = append(f.calls, auditorCall{action: action, entityID: entityID, description: description})
}

func (f *fakeAuditor) List(userID string, date string) ([]auditapimodels.LogView, error) {
	return nil, nil
}

func TestEditWindow(t *testing.T) {
	created := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run(`boundary is inclusive`, func(t *testing.T) {
		require.Equal(t, true, withinEditWindow(created, created.Add(15*time.Minute)))
	})

	t.Run(`inside the window`, func(t *testing.T) {
		require.Equal(t, true, withinEditWindow(created, created.Add(time.Minute)))
	})

	t.Run(`expired beyond the window`, func(t *testing.T) {
		require.Equal(t, false, withinEditWindow(created, created.Add(15*time.Minute+time.Second)))
	})
}

func TestTrackingCode(t *testing.T) {
	codePattern := regexp.MustCompile(`^FNBPJ\d{2}$`)

	t.Run(`generated code format`, func(t *testing.T) {
		for attempt := 0; attempt < 50; attempt++ {
			require.Regexp(t, codePattern, generateTrackingCode())
		}
	})

	t.Run(`taken code is redrawn`, func(t *testing.T) {
		store := newFakeProjectStore()
		store.existFirst = true
		handler := impl{store: store, historyStore: &fakeHistoryStore{}, userStore: &fakeUserStore{}}

		rec := dbmodels.Project{ProjectName: "CRM", Status: models.StatusPending}
		id, err := handler.createWithUniqueCode(&rec)
		require.Nil(t, err)
		require.NotEmpty(t, id)
		require.Equal(t, 2, store.existCalls)
		require.Len(t, store.created, 1)
		require.Regexp(t, codePattern, store.created[0].TrackingCode)
	})
}

func TestUpdate(t *testing.T) {
	newHandler := func(createdAt time.Time) (impl, *fakeProjectStore) {
		store := newFakeProjectStore()
		rec := &dbmodels.Project{
			ProjectName: "CRM",
			LoggedByID:  "creator",
			Status:      models.StatusPending,
		}
		rec.ID = "p1"
		rec.CreatedAt = createdAt
		store.recs["p1"] = rec
		return impl{store: store, historyStore: &fakeHistoryStore{}, userStore: &fakeUserStore{}}, store
	}
	data := projectapimodels.ProjectData{ProjectName: "CRM v2", Priority: "HIGH"}

	t.Run(`only the creator may edit`, func(t *testing.T) {
		handler, store := newHandler(time.Now())
		_, err := handler.Update("p1", data, "someone-else")
		require.ErrorIs(t, err, models.ErrForbidden)
		require.Len(t, store.updates["p1"], 0)
	})

	t.Run(`edit window expiry`, func(t *testing.T) {
		handler, store := newHandler(time.Now().Add(-16 * time.Minute))
		_, err := handler.Update("p1", data, "creator")
		require.ErrorIs(t, err, models.ErrEditWindowExpired)
		require.Len(t, store.updates["p1"], 0)
	})

	t.Run(`missing project`, func(t *testing.T) {
		handler, _ := newHandler(time.Now())
		_, err := handler.Update("unknown", data, "creator")
		require.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestUpdateStatusTx(t *testing.T) {
	rec := dbmodels.Project{
		TrackingCode: "FNBPJ42",
		LoggedByID:   "creator",
		Status:       models.StatusPending,
	}
	rec.ID = "p1"

	t.Run(`history row carries the transition`, func(t *testing.T) {
		store := newFakeProjectStore()
		stored := rec
		store.recs["p1"] = &stored
		history := &fakeHistoryStore{}
		notifier := &fakeNotifier{}
		auditor := &fakeAuditor{}
		handler := impl{store: store, historyStore: history, userStore: &fakeUserStore{}}

		data := projectapimodels.StatusUpdateData{Status: "REJECTED", RejectionReason: "  no budget  "}
		err := handler.updateStatusTx(store, history, notifier, auditor, rec, data, "admin")
		require.Nil(t, err)

		require.Len(t, history.created, 1)
		row := history.created[0]
		require.NotNil(t, row.ProjectID)
		require.Equal(t, "p1", *row.ProjectID)
		require.Equal(t, models.StatusPending, row.OldStatus)
		require.Equal(t, models.StatusRejected, row.NewStatus)
		require.Equal(t, "no budget", row.RejectionReason)
		require.Equal(t, "admin", row.UpdatedByID)

		require.Equal(t, models.StatusRejected, store.recs["p1"].Status)
		require.Len(t, auditor.calls, 1)
		require.Equal(t, models.ActionUpdateStatus, auditor.calls[0].action)
	})

	t.Run(`creator is notified`, func(t *testing.T) {
		store := newFakeProjectStore()
		notifier := &fakeNotifier{}
		handler := impl{store: store, historyStore: &fakeHistoryStore{}, userStore: &fakeUserStore{}}

		data := projectapimodels.StatusUpdateData{Status: "APPROVED"}
		err := handler.updateStatusTx(store, &fakeHistoryStore{}, notifier, &fakeAuditor{}, rec, data, "admin")
		require.Nil(t, err)
		require.Len(t, notifier.calls, 1)
		require.Equal(t, "creator", notifier.calls[0].userID)
		require.Contains(t, notifier.calls[0].message, "FNBPJ42")
		require.Contains(t, notifier.calls[0].message, "APPROVED")
	})

	t.Run(`notification failure does not abort`, func(t *testing.T) {
		store := newFakeProjectStore()
		history := &fakeHistoryStore{}
		notifier := &fakeNotifier{err: fmt.Errorf("smtp down")}
		handler := impl{store: store, historyStore: history, userStore: &fakeUserStore{}}

		data := projectapimodels.StatusUpdateData{Status: "APPROVED"}
		err := handler.updateStatusTx(store, history, notifier, &fakeAuditor{}, rec, data, "admin")
		require.Nil(t, err)
		require.Len(t, history.created, 1)
	})
}

func TestSoftDeleteTx(t *testing.T) {
	rec := dbmodels.Project{
		TrackingCode: "FNBPJ07",
		LoggedByID:   "creator",
		Status:       models.StatusPending,
	}
	rec.ID = "p1"

	t.Run(`marks the record and notifies the owner`, func(t *testing.T) {
		store := newFakeProjectStore()
		stored := rec
		store.recs["p1"] = &stored
		notifier := &fakeNotifier{}
		auditor := &fakeAuditor{}
		handler := impl{store: store, historyStore: &fakeHistoryStore{}, userStore: &fakeUserStore{}}

		err := handler.softDeleteTx(store, notifier, auditor, rec, "duplicate request", "admin")
		require.Nil(t, err)

		require.Len(t, store.updates["p1"], 1)
		updMap := store.updates["p1"][0]
		require.Equal(t, true, updMap["IsDeleted"])
		require.Equal(t, "duplicate request", updMap["DeletionReason"])

		require.Len(t, notifier.calls, 1)
		require.Equal(t, models.NotificationProjectDeleted, notifier.calls[0].nType)
		require.Contains(t, notifier.calls[0].message, "duplicate request")
		require.Len(t, auditor.calls, 1)
		require.Equal(t, models.ActionDeleteProject, auditor.calls[0].action)
	})
}

func TestDerivedViewFields(t *testing.T) {
	rejection := &dbmodels.StatusHistory{RejectionReason: "no budget"}
	actor := &dbmodels.StatusHistory{UpdatedBy: &dbmodels.User{FNumber: "F12345"}}

	t.Run(`rejection reason surfaced while rejected`, func(t *testing.T) {
		history := &fakeHistoryStore{latestRejection: rejection, latest: actor}
		handler := impl{store: newFakeProjectStore(), historyStore: history, userStore: &fakeUserStore{}}

		rec := dbmodels.Project{Status: models.StatusRejected}
		view := handler.toView(rec)
		require.Equal(t, "no budget", view.RejectionReason)
		require.Equal(t, "F12345", view.UpdatedBy)
	})

	t.Run(`rejection reason hidden after leaving rejected`, func(t *testing.T) {
		history := &fakeHistoryStore{latestRejection: rejection, latest: actor}
		handler := impl{store: newFakeProjectStore(), historyStore: history, userStore: &fakeUserStore{}}

		rec := dbmodels.Project{Status: models.StatusPending}
		view := handler.toView(rec)
		require.Equal(t, "", view.RejectionReason)
		require.Equal(t, "F12345", view.UpdatedBy)
	})
}
