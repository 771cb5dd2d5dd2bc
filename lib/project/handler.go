package projecthandler

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"fnb-tracking-backend/db"
	auditloghandler "fnb-tracking-backend/lib/audit-log"
	notificationhandler "fnb-tracking-backend/lib/notification"
	projectstore "fnb-tracking-backend/lib/project/store"
	statushistorystore "fnb-tracking-backend/lib/status-history/store"
	usersstore "fnb-tracking-backend/lib/users/store"
	"fnb-tracking-backend/models"
	projectapimodels "fnb-tracking-backend/models/api/project"
	dbmodels "fnb-tracking-backend/models/db"
)

const (
	trackingCodePrefix = "FNBPJ"

	// editWindow is how long after creation the creator may still edit,
	// inclusive at the boundary.
	editWindow = 15 * time.Minute

	// 100 possible suffixes; the unique index on tracking_code is the
	// authoritative guard, the loop is a best-effort pre-check.
	maxCodeAttempts = 300
)

type Provider interface {
	Create(data projectapimodels.ProjectData, userID string) (projectapimodels.ProjectView, error)
	ListAll() (list []projectapimodels.ProjectView, err error)
	ListForUser(userID string) (list []projectapimodels.ProjectView, err error)
	GetByID(id string) (projectapimodels.ProjectView, error)
	GetByTrackingCode(code string) (projectapimodels.ProjectView, error)
	Update(id string, data projectapimodels.ProjectData, userID string) (projectapimodels.ProjectView, error)
	UpdateStatus(id string, data projectapimodels.StatusUpdateData, adminID string) (projectapimodels.ProjectView, error)
	SoftDelete(id string, reason string, adminID string) (projectapimodels.ProjectView, error)
	ListDeleted(userID string, role models.UserRole) (list []projectapimodels.ProjectView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:        projectstore.NewInstance(db.DB),
		historyStore: statushistorystore.NewInstance(db.DB),
		userStore:    usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	store        projectstore.Provider
	historyStore statushistorystore.Provider
	userStore    usersstore.Provider
}

func generateTrackingCode() string {
	return fmt.Sprintf("%s%02d", trackingCodePrefix, rand.Intn(100))
}

func (i impl) Create(data projectapimodels.ProjectData, userID string) (projectapimodels.ProjectView, error) {
	logger := log.WithField("user_id", userID)
	user, err := i.userStore.GetByID(userID)
	if err != nil {
		logger.WithError(err).Error("failed to resolve project creator")
		return projectapimodels.ProjectView{}, err
	}
	if user == nil {
		return projectapimodels.ProjectView{}, errors.Wrap(models.ErrNotFound, "user not found")
	}

	rec := dbmodels.Project{
		ProjectName: data.ProjectName,
		Department:  data.Department,
		Branch:      data.Branch,
		Description: data.Description,
		Priority:    models.PriorityLevel(data.Priority),
		Status:      models.StatusPending,
		LoggedByID:  userID,
	}
	id, err := i.createWithUniqueCode(&rec)
	if err != nil {
		logger.WithError(err).Error("failed to create project")
		return projectapimodels.ProjectView{}, err
	}

	auditloghandler.Instance.LogAction(&userID, models.ActionCreateProject, models.EntityProject, id,
		"Created project: "+rec.TrackingCode, "")
	logger.
		WithField("rec_id", id).
		WithField("tracking_code", rec.TrackingCode).
		Info("project created")
	return i.getView(id)
}

// createWithUniqueCode draws tracking codes until an unused one is found.
// A concurrent writer can still win the race between the existence check and
// the insert; the unique index reports that as ErrDuplicatedKey and the draw
// is retried.
func (i impl) createWithUniqueCode(rec *dbmodels.Project) (id string, err error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code := generateTrackingCode()
		exist, err := i.store.ExistByTrackingCode(code)
		if err != nil {
			return "", err
		}
		if exist {
			continue
		}
		rec.TrackingCode = code
		id, err = i.store.Create(*rec)
		if err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				continue
			}
			return "", err
		}
		return id, nil
	}
	return "", errors.Wrap(models.ErrConflict, "tracking code space exhausted")
}

func (i impl) ListAll() (list []projectapimodels.ProjectView, err error) {
	recList, err := i.store.List()
	if err != nil {
		log.WithError(err).Error("failed to list projects")
		return nil, err
	}
	return i.toViews(recList), nil
}

func (i impl) ListForUser(userID string) (list []projectapimodels.ProjectView, err error) {
	recList, err := i.store.ListByUser(userID)
	if err != nil {
		log.
			WithField("user_id", userID).
			WithError(err).
			Error("failed to list user projects")
		return nil, err
	}
	return i.toViews(recList), nil
}

func (i impl) GetByID(id string) (projectapimodels.ProjectView, error) {
	return i.getView(id)
}

func (i impl) GetByTrackingCode(code string) (projectapimodels.ProjectView, error) {
	rec, err := i.store.GetByTrackingCode(code)
	if err != nil {
		return projectapimodels.ProjectView{}, err
	}
	if rec == nil {
		return projectapimodels.ProjectView{}, errors.Wrapf(models.ErrNotFound, "project not found with code: %v", code)
	}
	return i.toView(*rec), nil
}

func (i impl) Update(id string, data projectapimodels.ProjectData, userID string) (projectapimodels.ProjectView, error) {
	logger := log.
		WithField("rec_id", id).
		WithField("user_id", userID)
	rec, err := i.getRec(id)
	if err != nil {
		return projectapimodels.ProjectView{}, err
	}
	if rec.LoggedByID != userID {
		return projectapimodels.ProjectView{}, errors.Wrap(models.ErrForbidden, "only the creator can edit a project")
	}
	if !withinEditWindow(rec.CreatedAt, time.Now()) {
		return projectapimodels.ProjectView{}, models.ErrEditWindowExpired
	}
	updMap := map[string]interface{}{
		"ProjectName": data.ProjectName,
		"Department":  data.Department,
		"Branch":      data.Branch,
		"Description": data.Description,
		"Priority":    data.Priority,
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		logger.WithError(err).Error("failed to update project")
		return projectapimodels.ProjectView{}, err
	}
	auditloghandler.Instance.LogAction(&userID, models.ActionUpdateProject, models.EntityProject, id,
		"Updated project: "+rec.TrackingCode, "")
	logger.Info("project updated")
	return i.getView(id)
}

func (i impl) UpdateStatus(id string, data projectapimodels.StatusUpdateData, adminID string) (projectapimodels.ProjectView, error) {
	logger := log.
		WithField("rec_id", id).
		WithField("user_id", adminID).
		WithField("new_status", data.Status)
	rec, err := i.getRec(id)
	if err != nil {
		return projectapimodels.ProjectView{}, err
	}
	admin, err := i.userStore.GetByID(adminID)
	if err != nil {
		return projectapimodels.ProjectView{}, err
	}
	if admin == nil {
		return projectapimodels.ProjectView{}, errors.Wrap(models.ErrNotFound, "admin user not found")
	}
	newStatus := models.RequestStatus(data.Status)
	if !rec.Status.IsAllowChange(newStatus) {
		return projectapimodels.ProjectView{}, errors.Wrapf(models.ErrValidation, "status change from %v to %v is not allowed", rec.Status, newStatus)
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		return i.updateStatusTx(
			projectstore.NewInstance(tx),
			statushistorystore.NewInstance(tx),
			notificationhandler.NewHandlerWithTx(tx),
			auditloghandler.NewHandlerWithTx(tx),
			*rec, data, adminID)
	})
	if err != nil {
		logger.WithError(err).Error("failed to update project status")
		return projectapimodels.ProjectView{}, err
	}
	logger.Info("project status updated")
	return i.getView(id)
}

// updateStatusTx runs the status transition as one unit of work: status
// write and history append abort the transaction on failure, notification
// and audit append are best-effort.
func (i impl) updateStatusTx(
	store projectstore.Provider,
	historyStore statushistorystore.Provider,
	notifier notificationhandler.Provider,
	auditor auditloghandler.Provider,
	rec dbmodels.Project,
	data projectapimodels.StatusUpdateData,
	adminID string,
) error {
	oldStatus := rec.Status
	newStatus := models.RequestStatus(data.Status)
	err := store.Update(rec.ID, map[string]interface{}{
		"Status": newStatus,
	})
	if err != nil {
		return err
	}
	history := dbmodels.StatusHistory{
		ProjectID:       &rec.ID,
		OldStatus:       oldStatus,
		NewStatus:       newStatus,
		RejectionReason: data.Reason(),
		UpdatedByID:     adminID,
	}
	err = historyStore.Create(history)
	if err != nil {
		return err
	}
	message := fmt.Sprintf("Project %s status updated to %s", rec.TrackingCode, newStatus)
	if notifyErr := notifier.CreateNotification(rec.LoggedByID, &rec.ID, nil, models.NotificationStatusUpdate, message); notifyErr != nil {
		log.
			WithField("rec_id", rec.ID).
			WithError(notifyErr).
			Warn("status notification not delivered")
	}
	auditor.LogAction(&adminID, models.ActionUpdateStatus, models.EntityProject, rec.ID,
		fmt.Sprintf("Updated project status from %s to %s", oldStatus, newStatus), "")
	return nil
}

func (i impl) SoftDelete(id string, reason string, adminID string) (projectapimodels.ProjectView, error) {
	logger := log.
		WithField("rec_id", id).
		WithField("user_id", adminID)
	rec, err := i.getRec(id)
	if err != nil {
		return projectapimodels.ProjectView{}, err
	}
	admin, err := i.userStore.GetByID(adminID)
	if err != nil {
		return projectapimodels.ProjectView{}, err
	}
	if admin == nil {
		return projectapimodels.ProjectView{}, errors.Wrap(models.ErrNotFound, "admin user not found")
	}
	if rec.IsDeleted {
		return projectapimodels.ProjectView{}, errors.Wrap(models.ErrConflict, "project is already deleted")
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		return i.softDeleteTx(
			projectstore.NewInstance(tx),
			notificationhandler.NewHandlerWithTx(tx),
			auditloghandler.NewHandlerWithTx(tx),
			*rec, reason, adminID)
	})
	if err != nil {
		logger.WithError(err).Error("failed to delete project")
		return projectapimodels.ProjectView{}, err
	}
	logger.Info("project deleted")
	return i.getView(id)
}

func (i impl) softDeleteTx(
	store projectstore.Provider,
	notifier notificationhandler.Provider,
	auditor auditloghandler.Provider,
	rec dbmodels.Project,
	reason string,
	adminID string,
) error {
	now := time.Now()
	err := store.Update(rec.ID, map[string]interface{}{
		"IsDeleted":      true,
		"DeletedAt":      &now,
		"DeletedByID":    &adminID,
		"DeletionReason": reason,
	})
	if err != nil {
		return err
	}
	message := fmt.Sprintf("Your project %s has been deleted. Reason: %s", rec.TrackingCode, reason)
	if notifyErr := notifier.CreateNotification(rec.LoggedByID, &rec.ID, nil, models.NotificationProjectDeleted, message); notifyErr != nil {
		log.
			WithField("rec_id", rec.ID).
			WithError(notifyErr).
			Warn("deletion notification not delivered")
	}
	auditor.LogAction(&adminID, models.ActionDeleteProject, models.EntityProject, rec.ID,
		fmt.Sprintf("Deleted project: %s. Reason: %s", rec.TrackingCode, reason), "")
	return nil
}

func (i impl) ListDeleted(userID string, role models.UserRole) (list []projectapimodels.ProjectView, err error) {
	var recList []dbmodels.Project
	if role.IsAdmin() {
		recList, err = i.store.ListDeleted()
	} else {
		recList, err = i.store.ListDeletedByUser(userID)
	}
	if err != nil {
		log.WithError(err).Error("failed to list deleted projects")
		return nil, err
	}
	return i.toViews(recList), nil
}

func withinEditWindow(createdAt, now time.Time) bool {
	return now.Sub(createdAt) <= editWindow
}

func (i impl) getRec(id string) (*dbmodels.Project, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.
			WithField("rec_id", id).
			WithError(err).
			Error("failed to get project")
		return nil, err
	}
	if rec == nil {
		return nil, errors.Wrapf(models.ErrNotFound, "project not found: %v", id)
	}
	return rec, nil
}

func (i impl) getView(id string) (projectapimodels.ProjectView, error) {
	rec, err := i.getRec(id)
	if err != nil {
		return projectapimodels.ProjectView{}, err
	}
	return i.toView(*rec), nil
}

// toView decorates the converted record with fields derived from the history
// ledger: the current rejection reason (surfaced only while the status is
// REJECTED) and the actor of the latest transition.
func (i impl) toView(rec dbmodels.Project) projectapimodels.ProjectView {
	view := projectapimodels.ProjectConvert(rec)
	if rec.Status == models.StatusRejected {
		rejection, err := i.historyStore.LatestRejectionByProject(rec.ID)
		if err == nil && rejection != nil {
			view.RejectionReason = rejection.RejectionReason
		}
	}
	latest, err := i.historyStore.LatestByProject(rec.ID)
	if err == nil && latest != nil && latest.UpdatedBy != nil {
		view.UpdatedBy = latest.UpdatedBy.FNumber
	}
	return view
}

func (i impl) toViews(recList []dbmodels.Project) []projectapimodels.ProjectView {
	result := make([]projectapimodels.ProjectView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, i.toView(rec))
	}
	return result
}
