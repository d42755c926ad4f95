package storage

import (
	"bytes"
	"context"
	"intake-service/internal/app/contracts"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/exceptions"
	"intake-service/internal/pkg/utils"
	"io"
	"time"

	"github.com/goccy/go-json"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

type objectPutter interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

type minioArchive struct {
	client     objectPutter
	bucketName string
	log        *zap.Logger
}

// NewMinioArchive stores every dispatched notification as a JSON object
// under <form type>/<yyyy>/<mm>/<dd>/<id>.json.
func NewMinioArchive(client objectPutter, bucketName string, logger *zap.Logger) contracts.Archive {
	return &minioArchive{client: client, bucketName: bucketName, log: logger}
}

func (m *minioArchive) Store(ctx context.Context, notification *requests.Notification) (string, error) {
	body, err := json.Marshal(notification)
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	createdAt, err := time.Parse(time.RFC3339, notification.CreatedAt)
	if err != nil {
		createdAt = time.Now().UTC()
	}
	objectName := utils.GenerateArchiveObjectName(notification.FormType, notification.ID, createdAt)

	_, err = m.client.PutObject(ctx, m.bucketName, objectName, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: constvars.MIMEApplicationJSON,
	})
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, m.bucketName)
	}

	m.log.Debug("minioArchive.Store succeeded",
		zap.String(constvars.LoggingBucketKey, m.bucketName),
		zap.String(constvars.LoggingObjectKey, objectName),
	)
	return objectName, nil
}
