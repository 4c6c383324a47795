// Package storage keeps composed stickers in a gocloud.dev blob bucket.
package storage

import (
	"context"
	"log/slog"
	"strings"

	"crosspromo/config"
	domainerrors "crosspromo/internal/domain/errors"
	"crosspromo/internal/domain/service"
	"crosspromo/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"
)

const pngContentType = "image/png"

// BlobStoreParams holds the dependencies of the sticker store
type BlobStoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// BlobStore implements service.StickerStore on a gocloud.dev bucket.
type BlobStore struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// NewBlobStore opens the configured bucket. Without a bucket URL the store is disabled and
// every call fails with ErrStickerStorageDisabled.
func NewBlobStore(ctx context.Context, params BlobStoreParams) (service.StickerStore, error) {
	logger := params.Logger.With(slog.String("component", "sticker_store"))

	bucketURL := ""
	if params.Config.Sticker != nil {
		bucketURL = strings.TrimSpace(params.Config.Sticker.BucketURL)
	}
	if bucketURL == "" {
		logger.Info("Sticker bucket not configured, sticker storage disabled")

		return &BlobStore{logger: logger}, nil
	}

	store, err := OpenBucket(ctx, bucketURL, logger)
	if err != nil {
		return nil, err
	}

	if params.Lc != nil {
		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return store.Close()
			},
		})
	}

	return store, nil
}

// OpenBucket opens a store on a gocloud.dev bucket URL (file://, mem://, gs://, s3://).
func OpenBucket(ctx context.Context, bucketURL string, logger *slog.Logger) (*BlobStore, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open sticker bucket %s", redact(bucketURL))
	}

	logger.Info("Sticker bucket opened", slog.String("bucket", redact(bucketURL)))

	return &BlobStore{bucket: bucket, logger: logger}, nil
}

func (s *BlobStore) Enabled() bool {
	return s.bucket != nil
}

func (s *BlobStore) Save(ctx context.Context, key string, png []byte) error {
	if s.bucket == nil {
		return domainerrors.ErrStickerStorageDisabled
	}

	opts := &blob.WriterOptions{ContentType: pngContentType}
	if err := s.bucket.WriteAll(ctx, key, png, opts); err != nil {
		return errors.Wrapf(err, "failed to write sticker %s", key)
	}

	s.logger.Debug("Sticker stored", slog.String("key", key), slog.Int("bytes", len(png)))

	return nil
}

func (s *BlobStore) Load(ctx context.Context, key string) ([]byte, error) {
	if s.bucket == nil {
		return nil, domainerrors.ErrStickerStorageDisabled
	}

	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, domainerrors.ErrStickerNotFound.WithDetails(key)
		}

		return nil, errors.Wrapf(err, "failed to read sticker %s", key)
	}

	return data, nil
}

// Close releases the bucket.
func (s *BlobStore) Close() error {
	if s.bucket == nil {
		return nil
	}

	return s.bucket.Close()
}

// redact drops query parameters, which may carry credentials.
func redact(bucketURL string) string {
	if i := strings.IndexByte(bucketURL, '?'); i >= 0 {
		return bucketURL[:i]
	}

	return bucketURL
}
