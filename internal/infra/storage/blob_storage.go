// Package storage keeps uploaded images in a gocloud blob bucket. The bucket URL scheme
// picks the backend: file://, mem://, s3:// or gs://.
package storage

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path"
	"strings"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/util"

	"github.com/gabriel-vasile/mimetype"
	gommonbytes "github.com/labstack/gommon/bytes"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"
)

const (
	defaultBucketURL = "mem://"
	keyPrefix        = "images"
)

// allowedImageTypes maps accepted file extensions to the MIME type the content must sniff as.
var allowedImageTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
	".gif":  "image/gif",
}

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	maxSize       int64
	logger        *slog.Logger
}

// Params holds dependencies for the image storage, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBlobStorage opens the configured bucket and closes it on shutdown.
func NewBlobStorage(params Params) (service.ImageStorage, error) {
	cfg := params.Config.Storage
	bucketURL := strings.TrimSpace(cfg.BucketURL)
	if bucketURL == "" {
		bucketURL = defaultBucketURL
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	storage, err := newBlobStorage(bucket, cfg, params.Logger)
	if err != nil {
		bucket.Close()

		return nil, err
	}

	params.Logger.Info("Image storage initialized",
		slog.String("bucket", bucketURL),
		slog.String("max_upload_size", util.FormatBytes(storage.maxSize)),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return storage, nil
}

func newBlobStorage(bucket *blob.Bucket, cfg *config.StorageConfig, logger *slog.Logger) (*blobStorage, error) {
	maxSize, err := gommonbytes.Parse(cfg.MaxUploadSize)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid storage.maxUploadSize %q", cfg.MaxUploadSize)
	}

	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		maxSize:       maxSize,
		logger:        logger,
	}, nil
}

// Put validates and stores an image under a content-addressed key, so uploading the
// same bytes twice yields the same URL.
func (s *blobStorage) Put(ctx context.Context, r io.Reader, input service.UploadInput) (*service.UploadResult, error) {
	ext := strings.ToLower(path.Ext(input.Filename))
	wantType, ok := allowedImageTypes[ext]
	if !ok {
		return nil, domainerrors.ErrUnsupportedMediaType.WithDetails("allowed types: png, jpg, jpeg, webp, gif")
	}
	if input.Size > s.maxSize {
		return nil, domainerrors.ErrUploadTooLarge.WithDetails("maximum size is " + util.FormatBytes(s.maxSize))
	}

	data, err := io.ReadAll(io.LimitReader(r, s.maxSize+1))
	if err != nil {
		return nil, domainerrors.ErrUploadFailed.WrapMessage(err.Error())
	}
	if int64(len(data)) > s.maxSize {
		return nil, domainerrors.ErrUploadTooLarge.WithDetails("maximum size is " + util.FormatBytes(s.maxSize))
	}
	if len(data) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("file is empty")
	}

	detected := mimetype.Detect(data)
	if !detected.Is(wantType) {
		return nil, domainerrors.ErrUnsupportedMediaType.WithDetails("content does not match extension " + ext)
	}

	checksum, err := util.ContentChecksum(bytes.NewReader(data))
	if err != nil {
		return nil, domainerrors.ErrUploadFailed.WrapMessage(err.Error())
	}
	if ext == ".jpeg" {
		ext = ".jpg"
	}
	key := path.Join(keyPrefix, checksum[:2], checksum+ext)

	if err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{
		ContentType:  wantType,
		CacheControl: "public, max-age=31536000, immutable",
	}); err != nil {
		return nil, domainerrors.ErrUploadFailed.WrapMessage(err.Error())
	}

	s.logger.InfoContext(ctx, "Image stored",
		slog.String("key", key),
		slog.String("size", util.FormatBytes(int64(len(data)))),
	)

	return &service.UploadResult{Key: key, URL: s.publicURL(key)}, nil
}

// Delete removes an object. Deleting a missing key is not an error.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "failed to delete %s", key)
	}

	return nil
}

func (s *blobStorage) publicURL(key string) string {
	if s.publicBaseURL == "" {
		return "/" + key
	}

	return s.publicBaseURL + "/" + key
}
