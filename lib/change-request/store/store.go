package crstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "fnb-tracking-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.ChangeRequest) (id string, err error)
	GetByID(id string) (rec *dbmodels.ChangeRequest, err error)
	List() (list []dbmodels.ChangeRequest, err error)
	ListByUser(userID string) (list []dbmodels.ChangeRequest, err error)
	ListByProject(projectID string) (list []dbmodels.ChangeRequest, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
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
		Preload("Project").
		Preload("LoggedBy").
		Preload("Attachments").
		Preload("Attachments.UploadedBy")
}

func (i impl) Create(rec dbmodels.ChangeRequest) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.ChangeRequest, error) {
	rec := dbmodels.ChangeRequest{}
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

func (i impl) List() (list []dbmodels.ChangeRequest, err error) {
	err = i.withPreloads(i.db).
		Order("created_at DESC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByUser(userID string) (list []dbmodels.ChangeRequest, err error) {
	err = i.withPreloads(i.db).
		Where("logged_by_id = ?", userID).
		Order("created_at DESC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByProject(projectID string) (list []dbmodels.ChangeRequest, err error) {
	err = i.withPreloads(i.db).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
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
		Model(&dbmodels.ChangeRequest{}).
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

func (i impl) Delete(id string) error {
	rec := dbmodels.ChangeRequest{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	return i.db.
		Delete(&rec).
		Error
}

func (i impl) CountByUser(userID string) (int64, error) {
	var count int64
	err := i.db.
		Model(&dbmodels.ChangeRequest{}).
		Where("logged_by_id = ?", userID).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
