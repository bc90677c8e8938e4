// Package storage stores catalog assets in a gocloud.dev blob bucket.
package storage

import (
	"context"
	"log/slog"
	"strings"

	"dealhub/config"
	"dealhub/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Register the bucket schemes used in configuration.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

// blobStorage implements service.StorageService on top of a blob bucket.
type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// StorageParams holds dependencies for the storage service, injected by Fx
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBlobStorage opens the configured bucket and returns the storage service.
// Without a storage section it falls back to an in-memory bucket, which is
// enough for demo mode and tests.
func NewBlobStorage(params StorageParams) (service.StorageService, error) {
	bucketURL := "mem://"
	publicBaseURL := ""
	if cfg := params.Config.Storage; cfg != nil {
		if cfg.Bucket != "" {
			bucketURL = cfg.Bucket
		}
		publicBaseURL = strings.TrimSuffix(cfg.PublicBaseURL, "/")
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	params.Logger.Info("Blob storage initialized", slog.String("bucket", bucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: publicBaseURL,
	}, nil
}

// Upload writes data under the given key and returns the public URL.
func (s *blobStorage) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	opts := &blob.WriterOptions{ContentType: contentType}
	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return "", errors.Wrapf(err, "failed to write object %s", key)
	}

	return s.PublicURL(key), nil
}

// PublicURL returns the public URL for an already stored key.
func (s *blobStorage) PublicURL(key string) string {
	if s.publicBaseURL == "" {
		return "/" + key
	}

	return s.publicBaseURL + "/" + key
}

// Delete removes the object stored under the given key.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		return errors.Wrapf(err, "failed to delete object %s", key)
	}

	return nil
}

// Module provides the storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewBlobStorage),
)
