package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"tourmap/pkg/media"
	"tourmap/pkg/utils"
)

// Uploader stores validated image uploads.
type Uploader struct {
	Storage  media.Storage
	MaxBytes int64
}

func NewUploader(storage media.Storage, maxBytes int64) *Uploader {
	return &Uploader{Storage: storage, MaxBytes: maxBytes}
}

// SaveImage stores fh under dir. Problems with the file itself are reported
// as a validation error on field.
func (u *Uploader) SaveImage(ctx context.Context, field, dir string, fh *multipart.FileHeader) (string, error) {
	name, err := media.SaveImage(ctx, u.Storage, dir, fh, u.MaxBytes)
	switch {
	case err == nil:
		return name, nil
	case errors.Is(err, media.ErrInvalidImage):
		return "", utils.FieldError(field, "Upload a valid image. The file you uploaded was either not an image or a corrupted image.")
	case errors.Is(err, media.ErrEmptyFile):
		return "", utils.FieldError(field, "The submitted file is empty.")
	case errors.Is(err, media.ErrFileTooLarge):
		return "", utils.FieldError(field, fmt.Sprintf("Ensure this file is no larger than %d MB.", u.MaxBytes>>20))
	default:
		return "", fmt.Errorf("%w: %v", utils.ErrStorageError, err)
	}
}
