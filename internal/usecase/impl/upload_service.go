package impl

import (
	"context"
	"log/slog"
	"path"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// uploadKeyPrefix is the folder every stored image lives under.
const uploadKeyPrefix = "images/"

type uploadService struct {
	storage service.ImageStorage
	logger  *slog.Logger
}

// UploadServiceParams holds dependencies for UploadService, injected by Fx.
type UploadServiceParams struct {
	fx.In

	Storage service.ImageStorage
	Logger  *slog.Logger
}

// NewUploadService creates the image upload use case.
func NewUploadService(params UploadServiceParams) usecase.UploadUsecase {
	return &uploadService{
		storage: params.Storage,
		logger:  params.Logger,
	}
}

func (srv *uploadService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *uploadService) UploadImage(ctx context.Context, input *usecase.UploadImageInput) (*service.UploadResult, error) {
	if input.Body == nil || strings.TrimSpace(input.Filename) == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("file is required"))
	}

	result, err := srv.storage.Put(ctx, input.Body, service.UploadInput{
		Filename:    input.Filename,
		ContentType: input.ContentType,
		Size:        input.Size,
	})
	if err != nil {
		srv.log(ctx).Warn("Image upload rejected", slog.String("filename", input.Filename), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store image")
	}

	return result, nil
}

// DeleteImage removes a previously uploaded image. Keys outside the image folder are refused.
func (srv *uploadService) DeleteImage(ctx context.Context, key string) error {
	cleaned := path.Clean(strings.TrimPrefix(key, "/"))
	if !strings.HasPrefix(cleaned, uploadKeyPrefix) || strings.Contains(cleaned, "..") {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("invalid image key"))
	}

	if err := srv.storage.Delete(ctx, cleaned); err != nil {
		return errors.Wrap(err, "failed to delete image")
	}

	srv.log(ctx).Info("Image deleted", slog.String("key", cleaned))

	return nil
}
