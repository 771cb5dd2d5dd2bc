package auditlogstore

import (
	"time"

	"gorm.io/gorm"

	dbmodels "fnb-tracking-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.ActionLog) error
	ListByUserAndRange(userID string, from, to time.Time) (list []dbmodels.ActionLog, err error)
	ListLatestByUser(userID string, limit int) (list []dbmodels.ActionLog, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ActionLog) error {
	return i.db.
		Create(&rec).
		Error
}

func (i impl) ListByUserAndRange(userID string, from, to time.Time) (list []dbmodels.ActionLog, err error) {
	err = i.db.
		Where("user_id = ?", userID).
		Where("created_at BETWEEN ? AND ?", from, to).
		Preload("User").
		Order("created_at DESC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListLatestByUser(userID string, limit int) (list []dbmodels.ActionLog, err error) {
	err = i.db.
		Where("user_id = ?", userID).
		Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
