package notificationhandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"fnb-tracking-backend/db"
	crstore "fnb-tracking-backend/lib/change-request/store"
	notificationstore "fnb-tracking-backend/lib/notification/store"
	projectstore "fnb-tracking-backend/lib/project/store"
	"fnb-tracking-backend/lib/smtp"
	usersstore "fnb-tracking-backend/lib/users/store"
	"fnb-tracking-backend/models"
	notificationapimodels "fnb-tracking-backend/models/api/notification"
	dbmodels "fnb-tracking-backend/models/db"
)

type Provider interface {
	// CreateNotification persists an inbox entry for the recipient. The
	// recipient must resolve; the optional project/change-request references
	// are resolved best-effort and dropped when they do not.
	CreateNotification(userID string, projectID, changeRequestID *string, nType models.NotificationType, message string) error
	ListForUser(userID string) (list []notificationapimodels.NotificationView, err error)
	UnreadCount(userID string) (int64, error)
	MarkAsRead(id, userID string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:        notificationstore.NewInstance(db.DB),
		userStore:    usersstore.NewInstance(db.DB),
		projectStore: projectstore.NewInstance(db.DB),
		crStore:      crstore.NewInstance(db.DB),
		mailer:       smtp.Instance,
	}
}

// NewHandlerWithTx binds notification writes to an open transaction.
func NewHandlerWithTx(tx *gorm.DB) Provider {
	return impl{
		store:        notificationstore.NewInstance(tx),
		userStore:    usersstore.NewInstance(tx),
		projectStore: projectstore.NewInstance(tx),
		crStore:      crstore.NewInstance(tx),
		mailer:       smtp.Instance,
	}
}

type impl struct {
	store        notificationstore.Provider
	userStore    usersstore.Provider
	projectStore projectstore.Provider
	crStore      crstore.Provider
	mailer       smtp.Provider
}

func (i impl) CreateNotification(userID string, projectID, changeRequestID *string, nType models.NotificationType, message string) error {
	logger := log.
		WithField("user_id", userID).
		WithField("notification_type", nType)
	user, err := i.userStore.GetByID(userID)
	if err != nil {
		logger.WithError(err).Error("failed to resolve notification recipient")
		return err
	}
	if user == nil {
		return errors.Wrap(models.ErrNotFound, "notification recipient not found")
	}
	rec := dbmodels.Notification{
		UserID:  userID,
		Type:    nType,
		Message: message,
	}
	if projectID != nil {
		project, err := i.projectStore.GetByID(*projectID)
		if err == nil && project != nil {
			rec.ProjectID = projectID
		}
	}
	if changeRequestID != nil {
		cr, err := i.crStore.GetByID(*changeRequestID)
		if err == nil && cr != nil {
			rec.ChangeRequestID = changeRequestID
		}
	}
	err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("failed to create notification")
		return err
	}
	if user.Email != "" && i.mailer != nil {
		// best-effort email copy
		if mailErr := i.mailer.SendEMail(user.Email, string(nType), message); mailErr != nil {
			logger.WithError(mailErr).Warn("failed to send notification email")
		}
	}
	return nil
}

func (i impl) ListForUser(userID string) (list []notificationapimodels.NotificationView, err error) {
	recList, err := i.store.ListByUser(userID)
	if err != nil {
		log.
			WithField("user_id", userID).
			WithError(err).
			Error("failed to list notifications")
		return nil, err
	}
	result := make([]notificationapimodels.NotificationView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, notificationapimodels.NotificationConvert(rec))
	}
	return result, nil
}

func (i impl) UnreadCount(userID string) (int64, error) {
	return i.store.CountUnread(userID)
}

func (i impl) MarkAsRead(id, userID string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.Wrap(models.ErrNotFound, "notification not found")
	}
	if rec.UserID != userID {
		return errors.Wrap(models.ErrForbidden, "notification does not belong to user")
	}
	return i.store.MarkRead(id)
}
