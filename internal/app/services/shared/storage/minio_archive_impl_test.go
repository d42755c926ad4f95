package storage

import (
	"context"
	"errors"
	"intake-service/internal/pkg/dto/requests"
	"io"
	"testing"

	"github.com/goccy/go-json"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePutter struct {
	bucket      string
	object      string
	contentType string
	body        []byte
	err         error
}

func (f *fakePutter) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	if f.err != nil {
		return minio.UploadInfo{}, f.err
	}
	f.bucket, f.object, f.contentType = bucketName, objectName, opts.ContentType
	f.body, _ = io.ReadAll(reader)
	return minio.UploadInfo{Bucket: bucketName, Key: objectName, Size: objectSize}, nil
}

func TestMinioArchive_Store(t *testing.T) {
	putter := &fakePutter{}
	archive := NewMinioArchive(putter, "intake-submissions", zap.NewNop())

	name, err := archive.Store(context.Background(), &requests.Notification{
		ID:        "abc",
		FormType:  "doctor-referral",
		Subject:   "New doctor-referral Form Submission from Maria Lopez",
		CreatedAt: "2024-05-06T17:04:05Z",
	})
	require.NoError(t, err)
	assert.Equal(t, "doctor-referral/2024/05/06/abc.json", name)
	assert.Equal(t, "intake-submissions", putter.bucket)
	assert.Equal(t, "application/json", putter.contentType)

	var stored requests.Notification
	require.NoError(t, json.Unmarshal(putter.body, &stored))
	assert.Equal(t, "abc", stored.ID)
}

func TestMinioArchive_StoreFailure(t *testing.T) {
	archive := NewMinioArchive(&fakePutter{err: errors.New("bucket missing")}, "intake-submissions", zap.NewNop())

	_, err := archive.Store(context.Background(), &requests.Notification{ID: "abc", FormType: "contact"})
	assert.Error(t, err)
}
