package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"decompile-server/core/apperr"
	"decompile-server/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ErrAssetNotFound reports that no object backs the requested path.
var ErrAssetNotFound = errors.New("asset not found")

// Service resolves asset requests against the storage origin.
type Service struct {
	client storage.Client
	bucket string
	index  string
	logger *zap.Logger
}

// NewService creates a new assets service.
func NewService(client storage.Client, bucket, index string, logger *zap.Logger) *Service {
	return &Service{client: client, bucket: bucket, index: index, logger: logger}
}

// VerifyBucket checks that the configured asset bucket is reachable.
func (s *Service) VerifyBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check asset bucket: %w", err)
	}
	if !exists {
		return fmt.Errorf("asset bucket %q does not exist", s.bucket)
	}
	return nil
}

// Fetch stats and opens the object backing an asset path. The root path is
// answered with the configured index document. Missing objects map to
// ErrAssetNotFound; any other storage failure is an internal error.
func (s *Service) Fetch(ctx context.Context, object string) (io.ReadCloser, minio.ObjectInfo, error) {
	if object == "" {
		object = s.index
	}

	info, err := s.client.StatObject(ctx, s.bucket, object, minio.StatObjectOptions{})
	if err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" || resp.StatusCode == http.StatusNotFound {
			return nil, minio.ObjectInfo{}, ErrAssetNotFound
		}
		return nil, minio.ObjectInfo{}, apperr.Internalf("Failed to stat asset %s: %v", object, err)
	}

	obj, err := s.client.GetObject(ctx, s.bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, minio.ObjectInfo{}, apperr.Internalf("Failed to fetch asset %s: %v", object, err)
	}

	return obj, info, nil
}
