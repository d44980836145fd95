// Package storage keeps encoded media in a gocloud.dev blob bucket.
package storage

import (
	"context"
	"log/slog"
	"strings"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"

	"inkq/config"
	"inkq/internal/domain/lifecycle"
	"inkq/internal/domain/service"
	"inkq/internal/errors"
)

// Params defines the dependencies for the blob storage.
type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

type blobStorage struct {
	bucket    *blob.Bucket
	urlPrefix string
}

// New opens the configured bucket and closes it when the application stops.
func New(params Params) (service.MediaStorage, error) {
	bucketURL := params.Config.Media.BucketURL
	if bucketURL == "" {
		return nil, errors.New("media.bucketUrl is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", bucketURL)
	}

	params.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing media bucket")

			return bucket.Close()
		},
	})

	return NewWithBucket(bucket, params.Config.Media.URLPrefix), nil
}

// NewWithBucket wraps an already open bucket.
func NewWithBucket(bucket *blob.Bucket, urlPrefix string) service.MediaStorage {
	return &blobStorage{
		bucket:    bucket,
		urlPrefix: strings.TrimRight(urlPrefix, "/"),
	}
}

// Put writes data under key and returns its public URL.
func (s *blobStorage) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: contentType}); err != nil {
		return "", errors.Wrapf(err, "write object %s", key)
	}

	return s.urlPrefix + "/" + key, nil
}

// Delete removes key from the bucket; a missing object is ignored.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "delete object %s", key)
	}

	return nil
}
