package initializers

import (
	"context"

	"f1viz-backend/config"
	"f1viz-backend/lib/archive"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"
)

func InitS3(ctx context.Context) {
	if config.Conf.S3.AccessKeyID == "" {
		// raw payload archive is optional, ingest works without it
		log.Warn("S3 is not configured, raw payload archive disabled")
		return
	}
	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV2(config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey, ""),
		Secure: *config.Conf.S3.UseSSL,
	})
	if err != nil {
		log.WithError(err).Error("failed to initialize S3 client")
		return
	}

	archive.NewInstance(minioClient)
	if err = archive.Instance.EnsureBucket(ctx); err != nil {
		log.WithError(err).Error("failed to ensure archive bucket")
	}
	log.Info("S3 client initialized")
}
