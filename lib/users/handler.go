package usershandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"fnb-tracking-backend/config"
	"fnb-tracking-backend/db"
	auditloghandler "fnb-tracking-backend/lib/audit-log"
	crstore "fnb-tracking-backend/lib/change-request/store"
	projectstore "fnb-tracking-backend/lib/project/store"
	usersstore "fnb-tracking-backend/lib/users/store"
	"fnb-tracking-backend/models"
	userapimodels "fnb-tracking-backend/models/api/user"
	dbmodels "fnb-tracking-backend/models/db"
)

type Provider interface {
	Create(data userapimodels.UserCreateData, adminID string) (userapimodels.UserView, error)
	List() (list []userapimodels.UserView, err error)
	GetByID(id string) (userapimodels.UserView, error)
	Update(id string, data userapimodels.UserUpdateData, adminID string) (userapimodels.UserView, error)
	Delete(id string, adminID string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:        usersstore.NewInstance(db.DB),
		projectStore: projectstore.NewInstance(db.DB),
		crStore:      crstore.NewInstance(db.DB),
	}
}

type impl struct {
	store        usersstore.Provider
	projectStore projectstore.Provider
	crStore      crstore.Provider
}

func (i impl) Create(data userapimodels.UserCreateData, adminID string) (userapimodels.UserView, error) {
	logger := log.
		WithField("f_number", data.FNumber).
		WithField("user_id", adminID)
	exist, err := i.store.ExistByFNumber(data.FNumber)
	if err != nil {
		logger.WithError(err).Error("failed to check f-number")
		return userapimodels.UserView{}, err
	}
	if exist {
		return userapimodels.UserView{}, errors.Wrapf(models.ErrConflict, "user already exists with f-number: %v", data.FNumber)
	}
	password := data.Password
	if password == "" {
		password = config.Conf.Auth.DefaultUserPassword
	}
	rec := dbmodels.User{
		FNumber:  data.FNumber,
		Password: password,
		Email:    data.Email,
		Role:     models.UserRole(data.Role),
		IsActive: true,
	}
	if data.IsActive != nil {
		rec.IsActive = *data.IsActive
	}
	id, err := i.store.Create(rec)
	if err != nil {
		if errors.Is(err, models.ErrConflict) {
			return userapimodels.UserView{}, err
		}
		logger.WithError(err).Error("failed to create user")
		return userapimodels.UserView{}, err
	}
	auditloghandler.Instance.LogAction(&adminID, models.ActionCreateUser, models.EntityUser, id,
		"Created user: "+data.FNumber, "")
	logger.WithField("rec_id", id).Info("user created")
	return i.getView(id)
}

func (i impl) List() (list []userapimodels.UserView, err error) {
	recList, err := i.store.List()
	if err != nil {
		log.WithError(err).Error("failed to list users")
		return nil, err
	}
	result := make([]userapimodels.UserView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, userapimodels.UserConvert(rec))
	}
	return result, nil
}

func (i impl) GetByID(id string) (userapimodels.UserView, error) {
	return i.getView(id)
}

func (i impl) Update(id string, data userapimodels.UserUpdateData, adminID string) (userapimodels.UserView, error) {
	logger := log.
		WithField("rec_id", id).
		WithField("user_id", adminID)
	rec, err := i.getRec(id)
	if err != nil {
		return userapimodels.UserView{}, err
	}
	updMap := map[string]interface{}{
		"Email":    data.Email,
		"Role":     data.Role,
		"IsActive": *data.IsActive,
	}
	if data.Password != "" {
		updMap["Password"] = data.Password
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		logger.WithError(err).Error("failed to update user")
		return userapimodels.UserView{}, err
	}
	auditloghandler.Instance.LogAction(&adminID, models.ActionUpdateUser, models.EntityUser, id,
		"Updated user: "+rec.FNumber, "")
	logger.Info("user updated")
	return i.getView(id)
}

func (i impl) Delete(id string, adminID string) error {
	logger := log.
		WithField("rec_id", id).
		WithField("user_id", adminID)
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	projectCount, err := i.projectStore.CountByUser(id)
	if err != nil {
		logger.WithError(err).Error("failed to count user projects")
		return err
	}
	if projectCount > 0 {
		return errors.Wrap(models.ErrConflict, "user still owns projects")
	}
	crCount, err := i.crStore.CountByUser(id)
	if err != nil {
		logger.WithError(err).Error("failed to count user change requests")
		return err
	}
	if crCount > 0 {
		return errors.Wrap(models.ErrConflict, "user still owns change requests")
	}
	err = i.store.Delete(id)
	if err != nil {
		logger.WithError(err).Error("failed to delete user")
		return err
	}
	auditloghandler.Instance.LogAction(&adminID, models.ActionDeleteUser, models.EntityUser, id,
		"Deleted user: "+rec.FNumber, "")
	logger.Info("user deleted")
	return nil
}

func (i impl) getRec(id string) (*dbmodels.User, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.
			WithField("rec_id", id).
			WithError(err).
			Error("failed to get user")
		return nil, err
	}
	if rec == nil {
		return nil, errors.Wrapf(models.ErrNotFound, "user not found: %v", id)
	}
	return rec, nil
}

func (i impl) getView(id string) (userapimodels.UserView, error) {
	rec, err := i.getRec(id)
	if err != nil {
		return userapimodels.UserView{}, err
	}
	return userapimodels.UserConvert(*rec), nil
}
