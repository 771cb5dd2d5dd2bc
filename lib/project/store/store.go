package projectstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "fnb-tracking-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Project) (id string, err error)
	GetByID(id string) (rec *dbmodels.Project, err error)
	GetByTrackingCode(code string) (rec *dbmodels.Project, err error)
	ExistByTrackingCode(code string) (bool, error)
	List() (list []dbmodels.Project, err error)
	ListByUser(userID string) (list []dbmodels.Project, err error)
	ListDeleted() (list []dbmodels.Project, err error)
	ListDeletedByUser(userID string) (list []dbmodels.Project, err error)
	Update(id string, updMap map[string]interface{}) error
	CountByUser(userID string) (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) withPreloads(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("LoggedBy").
		Preload("DeletedBy").
		Preload("Attachments").
		Preload("Attachments.UploadedBy")
}

func (i impl) Create(rec dbmodels.Project) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Project, error) {
	rec := dbmodels.Project{}
	err := i.withPreloads(i.db).
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

func (i impl) GetByTrackingCode(code string) (*dbmodels.Project, error) {
	rec := dbmodels.Project{}
	err := i.withPreloads(i.db).
		Where("tracking_code = ?", code).
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

func (i impl) ExistByTrackingCode(code string) (bool, error) {
	var count int64
	err := i.db.
		Model(&dbmodels.Project{}).
		Where("tracking_code = ?", code).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (i impl) List() (list []dbmodels.Project, err error) {
	err = i.withPreloads(i.db).
		Where("is_deleted = false").
		Order("created_at DESC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByUser(userID string) (list []dbmodels.Project, err error) {
	err = i.withPreloads(i.db).
		Where("logged_by_id = ?", userID).
		Where("is_deleted = false").
		Order("created_at DESC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListDeleted() (list []dbmodels.Project, err error) {
	err = i.withPreloads(i.db).
		Where("is_deleted = true").
		Order("deleted_at DESC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListDeletedByUser(userID string) (list []dbmodels.Project, err error) {
	err = i.withPreloads(i.db).
		Where("is_deleted = true").
		Where("logged_by_id = ?", userID).
		Order("deleted_at DESC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Project{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("record not found")
	}
	return nil
}

func (i impl) CountByUser(userID string) (int64, error) {
	var count int64
	err := i.db.
		Model(&dbmodels.Project{}).
		Where("logged_by_id = ?", userID).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
