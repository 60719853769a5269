package storage

import (
	"context"
	"io"
	"padel-service/internal/app/contracts"
	"padel-service/internal/pkg/constvars"
	"padel-service/internal/pkg/exceptions"
	"padel-service/internal/pkg/utils"
	"time"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

type minioStorage struct {
	MinioClient *minio.Client
	BucketName  string
	Log         *zap.Logger
}

func NewMinioStorage(minioClient *minio.Client, bucketName string, logger *zap.Logger) contracts.Storage {
	return &minioStorage{
		MinioClient: minioClient,
		BucketName:  bucketName,
		Log:         logger,
	}
}

func (m *minioStorage) UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error {
	requestID := utils.GetRequestID(ctx)
	m.Log.Info("minioStorage.UploadFile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)

	_, err := m.MinioClient.PutObject(ctx, m.BucketName, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		m.Log.Error("minioStorage.UploadFile error putting object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return exceptions.ErrMinioCreateObject(err, m.BucketName)
	}
	return nil
}

func (m *minioStorage) GetObjectUrlWithExpiryTime(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	url, err := m.MinioClient.PresignedGetObject(ctx, m.BucketName, objectName, expiry, nil)
	if err != nil {
		m.Log.Error("minioStorage.GetObjectUrlWithExpiryTime error presigning object",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return "", exceptions.ErrMinioPresignObjectURL(err, m.BucketName)
	}
	return url.String(), nil
}
