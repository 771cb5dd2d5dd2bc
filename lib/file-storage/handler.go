package filestorage

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"fnb-tracking-backend/config"
	"fnb-tracking-backend/db"
	auditloghandler "fnb-tracking-backend/lib/audit-log"
	crstore "fnb-tracking-backend/lib/change-request/store"
	attachmentstore "fnb-tracking-backend/lib/file-storage/store"
	projectstore "fnb-tracking-backend/lib/project/store"
	initchecker "fnb-tracking-backend/lib/utils/init-checker"
	"fnb-tracking-backend/models"
	attachmentapimodels "fnb-tracking-backend/models/api/attachment"
	dbmodels "fnb-tracking-backend/models/db"
	s3client "fnb-tracking-backend/s3"
)

type Provider interface {
	Upload(ctx context.Context, projectID, changeRequestID *string, fileName string, fileReader io.Reader, fileSize int64, userID string) (attachmentapimodels.AttachmentView, error)
	Download(ctx context.Context, id string) (fileName string, body []byte, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:        attachmentstore.NewInstance(db.DB),
		projectStore: projectstore.NewInstance(db.DB),
		crStore:      crstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"projectStore", instance.projectStore,
		"crStore", instance.crStore,
	)
	Instance = instance
}

type impl struct {
	store        attachmentstore.Provider
	projectStore projectstore.Provider
	crStore      crstore.Provider
}

func (i impl) Upload(ctx context.Context, projectID, changeRequestID *string, fileName string, fileReader io.Reader, fileSize int64, userID string) (attachmentapimodels.AttachmentView, error) {
	logger := log.
		WithField("file_name", fileName).
		WithField("user_id", userID)
	if projectID != nil {
		project, err := i.projectStore.GetByID(*projectID)
		if err != nil {
			return attachmentapimodels.AttachmentView{}, err
		}
		if project == nil {
			return attachmentapimodels.AttachmentView{}, errors.Wrapf(models.ErrNotFound, "project not found: %v", *projectID)
		}
	}
	if changeRequestID != nil {
		cr, err := i.crStore.GetByID(*changeRequestID)
		if err != nil {
			return attachmentapimodels.AttachmentView{}, err
		}
		if cr == nil {
			return attachmentapimodels.AttachmentView{}, errors.Wrapf(models.ErrNotFound, "change request not found: %v", *changeRequestID)
		}
	}

	objectKey := uuid.NewString()
	_, err := s3client.Client.PutObject(ctx, config.Conf.S3.BucketName, objectKey, fileReader, fileSize,
		minio.PutObjectOptions{ContentType: "application/octet-stream"})
	if err != nil {
		logger.WithError(err).Error("failed to store file")
		return attachmentapimodels.AttachmentView{}, err
	}

	rec := dbmodels.Attachment{
		ProjectID:       projectID,
		ChangeRequestID: changeRequestID,
		FileName:        fileName,
		FilePath:        objectKey,
		FileSize:        fileSize,
		UploadedByID:    userID,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("failed to save attachment metadata")
		return attachmentapimodels.AttachmentView{}, err
	}
	auditloghandler.Instance.LogAction(&userID, models.ActionUploadFile, models.EntityAttachment, id,
		"Uploaded file: "+fileName, "")
	logger.WithField("rec_id", id).Info("file uploaded")

	saved, err := i.store.GetByID(id)
	if err != nil {
		return attachmentapimodels.AttachmentView{}, err
	}
	if saved == nil {
		return attachmentapimodels.AttachmentView{}, errors.Wrapf(models.ErrNotFound, "attachment not found: %v", id)
	}
	return attachmentapimodels.AttachmentConvert(*saved), nil
}

func (i impl) Download(ctx context.Context, id string) (string, []byte, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.
			WithField("rec_id", id).
			WithError(err).
			Error("failed to get attachment")
		return "", nil, err
	}
	if rec == nil {
		return "", nil, errors.Wrapf(models.ErrNotFound, "attachment not found: %v", id)
	}
	object, err := s3client.Client.GetObject(ctx, config.Conf.S3.BucketName, rec.FilePath, minio.GetObjectOptions{})
	if err != nil {
		log.
			WithField("rec_id", id).
			WithError(err).
			Error("failed to fetch file")
		return "", nil, err
	}
	defer object.Close()
	body, err := io.ReadAll(object)
	if err != nil {
		return "", nil, err
	}
	return rec.FileName, body, nil
}
