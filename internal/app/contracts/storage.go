package contracts

import (
	"context"
	"io"
	"time"
)

type Storage interface {
	UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error
	GetObjectUrlWithExpiryTime(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}
