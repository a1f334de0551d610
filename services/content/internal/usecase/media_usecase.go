package usecase

import (
	"context"
	"errors"
	"io"
	"strings"

	"affiliate-blog/pkg/logger"
	"affiliate-blog/pkg/s3"
	"affiliate-blog/services/content/internal/entity"
)

const mediaPrefix = "media"

var errNoMediaStore = errors.New("media storage is not configured")

type MediaUseCase interface {
	Upload(ctx context.Context, filename, contentType string, file io.Reader) (string, error)
}

type mediaUseCase struct {
	store  MediaStore
	logger *logger.Logger
}

func NewMediaUseCase(store MediaStore, logger *logger.Logger) MediaUseCase {
	return &mediaUseCase{store: store, logger: logger}
}

// Upload stores an admin image under media/<uuid><ext> and returns its URL.
func (uc *mediaUseCase) Upload(ctx context.Context, filename, contentType string, file io.Reader) (string, error) {
	if uc.store == nil {
		return "", &entity.ExternalServiceError{Service: "media store", Err: errNoMediaStore}
	}
	if filename == "" {
		return "", entity.NewValidationError("file", "file is required")
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", entity.NewValidationError("file", "only image uploads are accepted")
	}

	url, err := uc.store.UploadFile(ctx, s3.MediaKey(mediaPrefix, filename), file, contentType)
	if err != nil {
		return "", &entity.ExternalServiceError{Service: "media store", Err: err}
	}

	uc.logger.Info("Uploaded media %s", url)
	return url, nil
}
