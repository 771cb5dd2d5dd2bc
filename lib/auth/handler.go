package authhandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"fnb-tracking-backend/db"
	auditloghandler "fnb-tracking-backend/lib/audit-log"
	usersstore "fnb-tracking-backend/lib/users/store"
	authutils "fnb-tracking-backend/lib/utils/auth-utils"
	"fnb-tracking-backend/models"
	authapimodels "fnb-tracking-backend/models/api/auth"
)

type Provider interface {
	Login(data authapimodels.LoginRequest, ipAddress string) (authapimodels.LoginResponse, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	store usersstore.Provider
}

func (i impl) Login(data authapimodels.LoginRequest, ipAddress string) (authapimodels.LoginResponse, error) {
	logger := log.WithField("f_number", data.Username)
	rec, err := i.store.GetByFNumber(data.Username)
	if err != nil {
		logger.WithError(err).Error("failed to look up user")
		return authapimodels.LoginResponse{}, err
	}
	if rec == nil {
		return authapimodels.LoginResponse{}, errors.Wrap(models.ErrForbidden, "invalid credentials")
	}
	if !rec.IsActive {
		return authapimodels.LoginResponse{}, errors.Wrap(models.ErrForbidden, "account suspended")
	}
	if rec.Password != data.Password {
		return authapimodels.LoginResponse{}, errors.Wrap(models.ErrForbidden, "invalid credentials")
	}
	token, err := authutils.GetToken(rec.ID, rec.FNumber, rec.Role)
	if err != nil {
		logger.WithError(err).Error("failed to issue token")
		return authapimodels.LoginResponse{}, err
	}
	auditloghandler.Instance.LogAction(&rec.ID, models.ActionLogin, models.EntityUser, rec.ID,
		"User logged in: "+rec.FNumber, ipAddress)
	logger.Info("user logged in")
	return authapimodels.LoginResponse{
		Token:   token,
		FNumber: rec.FNumber,
		Role:    string(rec.Role),
	}, nil
}
