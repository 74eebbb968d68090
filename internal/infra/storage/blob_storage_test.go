package storage

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

// pngHeader is enough of a PNG for content sniffing.
var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52}

func newTestStorage(t *testing.T, maxSize string) *blobStorage {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { bucket.Close() })

	storage, err := newBlobStorage(bucket, &config.StorageConfig{
		PublicBaseURL: "https://cdn.example.com/",
		MaxUploadSize: maxSize,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return storage
}

func requireAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()

	appErr, ok := errors.AsType[domainerrors.AppError](err)
	require.True(t, ok, "expected AppError, got %v", err)
	assert.Equal(t, code, appErr.ErrorCode())
}

func TestBlobStorage_Put(t *testing.T) {
	storage := newTestStorage(t, "1KB")
	ctx := context.Background()

	result, err := storage.Put(ctx, bytes.NewReader(pngHeader), service.UploadInput{
		Filename:    "Shirt.PNG",
		ContentType: "image/png",
		Size:        int64(len(pngHeader)),
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.Key, "images/"))
	assert.True(t, strings.HasSuffix(result.Key, ".png"))
	assert.Equal(t, "https://cdn.example.com/"+result.Key, result.URL)

	stored, err := storage.bucket.ReadAll(ctx, result.Key)
	require.NoError(t, err)
	assert.Equal(t, pngHeader, stored)

	again, err := storage.Put(ctx, bytes.NewReader(pngHeader), service.UploadInput{Filename: "copy.png"})
	require.NoError(t, err)
	assert.Equal(t, result.Key, again.Key)
}

func TestBlobStorage_Put_Rejections(t *testing.T) {
	storage := newTestStorage(t, "1KB")
	ctx := context.Background()

	t.Run("extension not allowed", func(t *testing.T) {
		_, err := storage.Put(ctx, bytes.NewReader(pngHeader), service.UploadInput{Filename: "notes.txt"})
		requireAppErrorCode(t, err, domainerrors.ErrUnsupportedMediaType.ErrorCode())
	})

	t.Run("content does not match extension", func(t *testing.T) {
		_, err := storage.Put(ctx, strings.NewReader("plain text pretending"), service.UploadInput{Filename: "fake.png"})
		requireAppErrorCode(t, err, domainerrors.ErrUnsupportedMediaType.ErrorCode())
	})

	t.Run("declared size too large", func(t *testing.T) {
		_, err := storage.Put(ctx, bytes.NewReader(pngHeader), service.UploadInput{Filename: "big.png", Size: 4096})
		requireAppErrorCode(t, err, domainerrors.ErrUploadTooLarge.ErrorCode())
	})

	t.Run("actual size too large", func(t *testing.T) {
		data := append(append([]byte{}, pngHeader...), make([]byte, 2048)...)
		_, err := storage.Put(ctx, bytes.NewReader(data), service.UploadInput{Filename: "big.png"})
		requireAppErrorCode(t, err, domainerrors.ErrUploadTooLarge.ErrorCode())
	})

	t.Run("empty file", func(t *testing.T) {
		_, err := storage.Put(ctx, bytes.NewReader(nil), service.UploadInput{Filename: "empty.png"})
		requireAppErrorCode(t, err, domainerrors.ErrValidationFailed.ErrorCode())
	})
}

func TestBlobStorage_Delete(t *testing.T) {
	storage := newTestStorage(t, "1KB")
	ctx := context.Background()

	result, err := storage.Put(ctx, bytes.NewReader(pngHeader), service.UploadInput{Filename: "a.png"})
	require.NoError(t, err)

	require.NoError(t, storage.Delete(ctx, result.Key))
	exists, err := storage.bucket.Exists(ctx, result.Key)
	require.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, storage.Delete(ctx, "images/missing.png"))
}

func TestNewBlobStorage_InvalidMaxSize(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	_, err := newBlobStorage(bucket, &config.StorageConfig{MaxUploadSize: "lots"}, slog.Default())
	assert.Error(t, err)
}
