package auditloghandler

import (
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"fnb-tracking-backend/db"
	auditlogstore "fnb-tracking-backend/lib/audit-log/store"
	"fnb-tracking-backend/lib/utils/helpers"
	"fnb-tracking-backend/models"
	auditapimodels "fnb-tracking-backend/models/api/audit"
	dbmodels "fnb-tracking-backend/models/db"
)

const defaultListLimit = 10

type Provider interface {
	// LogAction appends an audit record. It is best-effort: failures are
	// logged and never propagated to the caller. userID is nil for
	// system-initiated actions.
	LogAction(userID *string, action models.ActionType, entityType models.EntityType, entityID, description, ipAddress string)
	List(userID string, date string) (list []auditapimodels.LogView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: auditlogstore.NewInstance(db.DB),
	}
}

// NewHandlerWithTx binds the handler to an open transaction so the audit row
// joins the caller's unit of work.
func NewHandlerWithTx(tx *gorm.DB) Provider {
	return impl{
		store: auditlogstore.NewInstance(tx),
	}
}

type impl struct {
	store auditlogstore.Provider
}

func (i impl) LogAction(userID *string, action models.ActionType, entityType models.EntityType, entityID, description, ipAddress string) {
	rec := dbmodels.ActionLog{
		UserID:      userID,
		ActionType:  action,
		EntityType:  entityType,
		EntityID:    entityID,
		Description: description,
		IPAddress:   ipAddress,
	}
	err := i.store.Create(rec)
	if err != nil {
		log.
			WithField("action_type", action).
			WithField("entity_id", entityID).
			WithError(err).
			Error("failed to append audit record")
	}
}

func (i impl) List(userID string, date string) (list []auditapimodels.LogView, err error) {
	var recList []dbmodels.ActionLog
	if date != "" {
		from, to, parseErr := helpers.ParseDay(date)
		if parseErr == nil {
			recList, err = i.store.ListByUserAndRange(userID, from, to)
		} else {
			// lenient filtering: an unparsable date means no filter
			recList, err = i.store.ListLatestByUser(userID, defaultListLimit)
		}
	} else {
		recList, err = i.store.ListLatestByUser(userID, defaultListLimit)
	}
	if err != nil {
		log.
			WithField("user_id", userID).
			WithError(err).
			Error("failed to list audit records")
		return nil, err
	}
	result := make([]auditapimodels.LogView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, auditapimodels.LogConvert(rec))
	}
	return result, nil
}
