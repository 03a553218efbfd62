package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"f1viz-backend/config"
	"f1viz-backend/lib/utils/helpers"
	"f1viz-backend/models"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Provider archives raw provider payloads so a session can be reshaped later
// without re-fetching it.
type Provider interface {
	PutRaw(ctx context.Context, season int, event string, session models.SessionKind, name string, payload interface{}) error
	EnsureBucket(ctx context.Context) error
}

var Instance Provider

type impl struct {
	s3client *minio.Client
}

func NewInstance(s3client *minio.Client) {
	Instance = &impl{
		s3client: s3client,
	}
}

func (i impl) EnsureBucket(ctx context.Context) error {
	bucketName := config.Conf.S3.BucketName
	location := "us-east-1"
	exists, err := i.s3client.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	err = i.s3client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: location})
	if err != nil {
		return err
	}
	return nil
}

func (i impl) PutRaw(ctx context.Context, season int, event string, session models.SessionKind, name string, payload interface{}) error {
	if i.s3client == nil {
		log.Warn("raw payload not archived, S3 client is not configured")
		return nil
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "failed to encode raw payload")
	}
	objectName := fmt.Sprintf("%v/%s/%s/%s.json", season, helpers.EventKey(event), session, name)
	_, err = i.s3client.PutObject(ctx, config.Conf.S3.BucketName, objectName,
		bytes.NewReader(body), int64(len(body)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return errors.Wrap(err, "failed to archive raw payload")
	}
	return nil
}
