package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"

	s3client "fnb-tracking-backend/s3"
)

func InitS3() {
	err := s3client.NewClient()
	if err != nil {
		log.WithError(err).Error("failed to initialize S3 client")
		return
	}
	if err = s3client.MakeBucket(context.Background()); err != nil {
		log.WithError(err).Error("failed to ensure attachment bucket")
		return
	}
	log.Info("S3 client initialized")
}
