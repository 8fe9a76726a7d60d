package media

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"mime/multipart"

	// decoders accepted for uploads
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

const (
	CategoryIconsDir = "category_icons"
	SpotImagesDir    = "spot_images"
)

var (
	ErrInvalidImage = errors.New("upload a valid image. The file you uploaded was either not an image or a corrupted image")
	ErrFileTooLarge = errors.New("uploaded file is too large")
	ErrEmptyFile    = errors.New("the submitted file is empty")
)

// SaveImage checks that the upload decodes as an image and stores it under dir.
func SaveImage(ctx context.Context, store Storage, dir string, fh *multipart.FileHeader, maxBytes int64) (string, error) {
	if fh.Size == 0 {
		return "", ErrEmptyFile
	}
	if maxBytes > 0 && fh.Size > maxBytes {
		return "", ErrFileTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	if err := CheckImage(f); err != nil {
		return "", err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind upload: %w", err)
	}

	return store.Save(ctx, dir, fh.Filename, f)
}

// CheckImage reports ErrInvalidImage unless r starts with a decodable image header.
func CheckImage(r io.Reader) error {
	if _, _, err := image.DecodeConfig(r); err != nil {
		return ErrInvalidImage
	}
	return nil
}
