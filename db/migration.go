package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "fnb-tracking-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "failed to migrate User")
	}
	if err := DB.AutoMigrate(&dbmodels.Project{}); err != nil {
		return errors.Wrap(err, "failed to migrate Project")
	}
	if err := DB.AutoMigrate(&dbmodels.ChangeRequest{}); err != nil {
		return errors.Wrap(err, "failed to migrate ChangeRequest")
	}
	if err := DB.AutoMigrate(&dbmodels.StatusHistory{}); err != nil {
		return errors.Wrap(err, "failed to migrate StatusHistory")
	}
	if err := DB.AutoMigrate(&dbmodels.Notification{}); err != nil {
		return errors.Wrap(err, "failed to migrate Notification")
	}
	if err := DB.AutoMigrate(&dbmodels.Attachment{}); err != nil {
		return errors.Wrap(err, "failed to migrate Attachment")
	}
	if err := DB.AutoMigrate(&dbmodels.ActionLog{}); err != nil {
		return errors.Wrap(err, "failed to migrate ActionLog")
	}
	log.Info("migrations finished")
	return nil
}
