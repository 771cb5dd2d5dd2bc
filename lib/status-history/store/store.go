package statushistorystore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"fnb-tracking-backend/models"
	dbmodels "fnb-tracking-backend/models/db"
)

// Append-only ledger of status transitions. Rows are created and read, never
// updated; deletion happens only as part of a change-request removal.
type Provider interface {
	Create(rec dbmodels.StatusHistory) error
	ListByProject(projectID string) (list []dbmodels.StatusHistory, err error)
	ListByChangeRequest(changeRequestID string) (list []dbmodels.StatusHistory, err error)
	LatestByProject(projectID string) (rec *dbmodels.StatusHistory, err error)
	LatestRejectionByProject(projectID string) (rec *dbmodels.StatusHistory, err error)
	LatestByChangeRequest(changeRequestID string) (rec *dbmodels.StatusHistory, err error)
	LatestRejectionByChangeRequest(changeRequestID string) (rec *dbmodels.StatusHistory, err error)
	DeleteByChangeRequest(changeRequestID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.StatusHistory) error {
	return i.db.
		Create(&rec).
		Error
}

func (i impl) ListByProject(projectID string) (list []dbmodels.StatusHistory, err error) {
	err = i.db.
		Where("project_id = ?", projectID).
		Preload("UpdatedBy").
		Order("created_at DESC, id DESC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByChangeRequest(changeRequestID string) (list []dbmodels.StatusHistory, err error) {
	err = i.db.
		Where("change_request_id = ?", changeRequestID).
		Preload("UpdatedBy").
		Order("created_at DESC, id DESC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) latest(tx *gorm.DB) (*dbmodels.StatusHistory, error) {
	rec := dbmodels.StatusHistory{}
	err := tx.
		Preload("UpdatedBy").
		Order("created_at DESC, id DESC").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) LatestByProject(projectID string) (*dbmodels.StatusHistory, error) {
	return i.latest(i.db.Where("project_id = ?", projectID))
}

func (i impl) LatestRejectionByProject(projectID string) (*dbmodels.StatusHistory, error) {
	return i.latest(i.db.
		Where("project_id = ?", projectID).
		Where("new_status = ?", models.StatusRejected).
		Where("length(trim(rejection_reason)) > 0"))
}

func (i impl) LatestByChangeRequest(changeRequestID string) (*dbmodels.StatusHistory, error) {
	return i.latest(i.db.Where("change_request_id = ?", changeRequestID))
}

func (i impl) LatestRejectionByChangeRequest(changeRequestID string) (*dbmodels.StatusHistory, error) {
	return i.latest(i.db.
		Where("change_request_id = ?", changeRequestID).
		Where("new_status = ?", models.StatusRejected).
		Where("length(trim(rejection_reason)) > 0"))
}

func (i impl) DeleteByChangeRequest(changeRequestID string) error {
	return i.db.
		Where("change_request_id = ?", changeRequestID).
		Delete(&dbmodels.StatusHistory{}).
		Error
}
