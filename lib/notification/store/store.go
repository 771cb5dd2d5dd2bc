package notificationstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "fnb-tracking-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Notification) error
	GetByID(id string) (rec *dbmodels.Notification, err error)
	ListByUser(userID string) (list []dbmodels.Notification, err error)
	CountUnread(userID string) (int64, error)
	MarkRead(id string) error
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

func (i impl) Create(rec dbmodels.Notification) error {
	return i.db.
		Create(&rec).
		Error
}

func (i impl) GetByID(id string) (*dbmodels.Notification, error) {
	rec := dbmodels.Notification{}
	err := i.db.
		Where("id = ?", id).
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

func (i impl) ListByUser(userID string) (list []dbmodels.Notification, err error) {
	err = i.db.
		Where("user_id = ?", userID).
		Preload("Project").
		Order("created_at DESC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) CountUnread(userID string) (int64, error) {
	var count int64
	err := i.db.
		Model(&dbmodels.Notification{}).
		Where("user_id = ?", userID).
		Where("is_read = false").
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) MarkRead(id string) error {
	return i.db.
		Model(&dbmodels.Notification{}).
		Where("id = ?", id).
		Update("is_read", true).
		Error
}

func (i impl) DeleteByChangeRequest(changeRequestID string) error {
	return i.db.
		Where("change_request_id = ?", changeRequestID).
		Delete(&dbmodels.Notification{}).
		Error
}
