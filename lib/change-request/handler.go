package crhandler

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"fnb-tracking-backend/db"
	auditloghandler "fnb-tracking-backend/lib/audit-log"
	crstore "fnb-tracking-backend/lib/change-request/store"
	attachmentstore "fnb-tracking-backend/lib/file-storage/store"
	notificationhandler "fnb-tracking-backend/lib/notification"
	notificationstore "fnb-tracking-backend/lib/notification/store"
	projectstore "fnb-tracking-backend/lib/project/store"
	statushistorystore "fnb-tracking-backend/lib/status-history/store"
	usersstore "fnb-tracking-backend/lib/users/store"
	"fnb-tracking-backend/models"
	crapimodels "fnb-tracking-backend/models/api/changerequest"
	projectapimodels "fnb-tracking-backend/models/api/project"
	dbmodels "fnb-tracking-backend/models/db"
)

type Provider interface {
	Create(data crapimodels.ChangeRequestData, userID string) (crapimodels.ChangeRequestView, error)
	ListAll() (list []crapimodels.ChangeRequestView, err error)
	ListForUser(userID string) (list []crapimodels.ChangeRequestView, err error)
	ListByProject(projectID string) (list []crapimodels.ChangeRequestView, err error)
	GetByID(id string) (crapimodels.ChangeRequestView, error)
	UpdateStatus(id string, data projectapimodels.StatusUpdateData, adminID string) (crapimodels.ChangeRequestView, error)
	Delete(id string, adminID string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:        crstore.NewInstance(db.DB),
		projectStore: projectstore.NewInstance(db.DB),
		historyStore: statushistorystore.NewInstance(db.DB),
		userStore:    usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	store        crstore.Provider
	projectStore projectstore.Provider
	historyStore statushistorystore.Provider
	userStore    usersstore.Provider
}

func (i impl) Create(data crapimodels.ChangeRequestData, userID string) (crapimodels.ChangeRequestView, error) {
	logger := log.
		WithField("project_id", data.ProjectID).
		WithField("user_id", userID)
	project, err := i.projectStore.GetByID(data.ProjectID)
	if err != nil {
		logger.WithError(err).Error("failed to resolve project")
		return crapimodels.ChangeRequestView{}, err
	}
	if project == nil {
		return crapimodels.ChangeRequestView{}, errors.Wrapf(models.ErrNotFound, "project not found: %v", data.ProjectID)
	}
	if project.IsDeleted {
		return crapimodels.ChangeRequestView{}, errors.Wrap(models.ErrValidation, "cannot create a change request for a deleted project")
	}
	user, err := i.userStore.GetByID(userID)
	if err != nil {
		return crapimodels.ChangeRequestView{}, err
	}
	if user == nil {
		return crapimodels.ChangeRequestView{}, errors.Wrap(models.ErrNotFound, "user not found")
	}

	rec := dbmodels.ChangeRequest{
		ProjectID:        data.ProjectID,
		RequestedFeature: data.RequestedFeature,
		ReasonForChange:  data.ReasonForChange,
		ImpactLevel:      data.ImpactLevel,
		Status:           models.StatusPending,
		LoggedByID:       userID,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("failed to create change request")
		return crapimodels.ChangeRequestView{}, err
	}
	auditloghandler.Instance.LogAction(&userID, models.ActionCreateChangeRequest, models.EntityChangeRequest, id,
		"Created change request for project: "+project.TrackingCode, "")
	logger.WithField("rec_id", id).Info("change request created")
	return i.getView(id)
}

func (i impl) ListAll() (list []crapimodels.ChangeRequestView, err error) {
	recList, err := i.store.List()
	if err != nil {
		log.WithError(err).Error("failed to list change requests")
		return nil, err
	}
	return i.toViews(recList), nil
}

func (i impl) ListForUser(userID string) (list []crapimodels.ChangeRequestView, err error) {
	recList, err := i.store.ListByUser(userID)
	if err != nil {
		log.
			WithField("user_id", userID).
			WithError(err).
			Error("failed to list user change requests")
		return nil, err
	}
	return i.toViews(recList), nil
}

func (i impl) ListByProject(projectID string) (list []crapimodels.ChangeRequestView, err error) {
	recList, err := i.store.ListByProject(projectID)
	if err != nil {
		log.
			WithField("project_id", projectID).
			WithError(err).
			Error("failed to list project change requests")
		return nil, err
	}
	return i.toViews(recList), nil
}

func (i impl) GetByID(id string) (crapimodels.ChangeRequestView, error) {
	return i.getView(id)
}

func (i impl) UpdateStatus(id string, data projectapimodels.StatusUpdateData, adminID string) (crapimodels.ChangeRequestView, error) {
	logger := log.
		WithField("rec_id", id).
		WithField("user_id", adminID).
		WithField("new_status", data.Status)
	rec, err := i.getRec(id)
	if err != nil {
		return crapimodels.ChangeRequestView{}, err
	}
	admin, err := i.userStore.GetByID(adminID)
	if err != nil {
		return crapimodels.ChangeRequestView{}, err
	}
	if admin == nil {
		return crapimodels.ChangeRequestView{}, errors.Wrap(models.ErrNotFound, "admin user not found")
	}
	newStatus := models.RequestStatus(data.Status)
	if !rec.Status.IsAllowChange(newStatus) {
		return crapimodels.ChangeRequestView{}, errors.Wrapf(models.ErrValidation, "status change from %v to %v is not allowed", rec.Status, newStatus)
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		return i.updateStatusTx(
			crstore.NewInstance(tx),
			statushistorystore.NewInstance(tx),
			notificationhandler.NewHandlerWithTx(tx),
			auditloghandler.NewHandlerWithTx(tx),
			*rec, data, adminID)
	})
	if err != nil {
		logger.WithError(err).Error("failed to update change request status")
		return crapimodels.ChangeRequestView{}, err
	}
	logger.Info("change request status updated")
	return i.getView(id)
}

func (i impl) updateStatusTx(
	store crstore.Provider,
	historyStore statushistorystore.Provider,
	notifier notificationhandler.Provider,
	auditor auditloghandler.Provider,
	rec dbmodels.ChangeRequest,
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
		ChangeRequestID: &rec.ID,
		OldStatus:       oldStatus,
		NewStatus:       newStatus,
		RejectionReason: data.Reason(),
		UpdatedByID:     adminID,
	}
	err = historyStore.Create(history)
	if err != nil {
		return err
	}
	message := fmt.Sprintf("Change request status updated to %s", newStatus)
	if rec.Project != nil {
		message = fmt.Sprintf("Change request for project %s status updated to %s", rec.Project.TrackingCode, newStatus)
	}
	if notifyErr := notifier.CreateNotification(rec.LoggedByID, nil, &rec.ID, models.NotificationStatusUpdate, message); notifyErr != nil {
		log.
			WithField("rec_id", rec.ID).
			WithError(notifyErr).
			Warn("status notification not delivered")
	}
	auditor.LogAction(&adminID, models.ActionUpdateStatus, models.EntityChangeRequest, rec.ID,
		fmt.Sprintf("Updated change request status from %s to %s", oldStatus, newStatus), "")
	return nil
}

func (i impl) Delete(id string, adminID string) error {
	logger := log.
		WithField("rec_id", id).
		WithField("user_id", adminID)
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		return i.deleteTx(
			crstore.NewInstance(tx),
			statushistorystore.NewInstance(tx),
			notificationstore.NewInstance(tx),
			attachmentstore.NewInstance(tx),
			auditloghandler.NewHandlerWithTx(tx),
			*rec, adminID)
	})
	if err != nil {
		logger.WithError(err).Error("failed to delete change request")
		return err
	}
	logger.Info("change request deleted")
	return nil
}

// deleteTx removes the change request and its dependents in one unit of
// work; dependents go first so the foreign keys never dangle.
func (i impl) deleteTx(
	store crstore.Provider,
	historyStore statushistorystore.Provider,
	notifStore notificationstore.Provider,
	attStore attachmentstore.Provider,
	auditor auditloghandler.Provider,
	rec dbmodels.ChangeRequest,
	adminID string,
) error {
	err := notifStore.DeleteByChangeRequest(rec.ID)
	if err != nil {
		return err
	}
	err = historyStore.DeleteByChangeRequest(rec.ID)
	if err != nil {
		return err
	}
	err = attStore.DeleteByChangeRequest(rec.ID)
	if err != nil {
		return err
	}
	err = store.Delete(rec.ID)
	if err != nil {
		return err
	}
	auditor.LogAction(&adminID, models.ActionDeleteChangeRequest, models.EntityChangeRequest, rec.ID,
		"Deleted change request: "+rec.RequestedFeature, "")
	return nil
}

func (i impl) getRec(id string) (*dbmodels.ChangeRequest, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.
			WithField("rec_id", id).
			WithError(err).
			Error("failed to get change request")
		return nil, err
	}
	if rec == nil {
		return nil, errors.Wrapf(models.ErrNotFound, "change request not found: %v", id)
	}
	return rec, nil
}

func (i impl) getView(id string) (crapimodels.ChangeRequestView, error) {
	rec, err := i.getRec(id)
	if err != nil {
		return crapimodels.ChangeRequestView{}, err
	}
	return i.toView(*rec), nil
}

func (i impl) toView(rec dbmodels.ChangeRequest) crapimodels.ChangeRequestView {
	view := crapimodels.ChangeRequestConvert(rec)
	if rec.Status == models.StatusRejected {
		rejection, err := i.historyStore.LatestRejectionByChangeRequest(rec.ID)
		if err == nil && rejection != nil {
			view.RejectionReason = rejection.RejectionReason
		}
	}
	latest, err := i.historyStore.LatestByChangeRequest(rec.ID)
	if err == nil && latest != nil && latest.UpdatedBy != nil {
		view.UpdatedBy = latest.UpdatedBy.FNumber
	}
	return view
}

func (i impl) toViews(recList []dbmodels.ChangeRequest) []crapimodels.ChangeRequestView {
	result := make([]crapimodels.ChangeRequestView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, i.toView(rec))
	}
	return result
}
