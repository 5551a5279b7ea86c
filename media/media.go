// Package media validates and uploads user files to the CDN.
package media

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"funfans-backend/models"
)

const (
	MaxImageSize = 10 * 1024 * 1024
	MaxVideoSize = 100 * 1024 * 1024
)

var (
	ErrUnsupportedType = errors.New("media: unsupported file type")
	ErrTooLarge        = errors.New("media: file too large")
)

var imageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true, ".bmp": true, ".svg": true,
}

var videoExtensions = map[string]bool{
	".mp4": true, ".mov": true, ".webm": true, ".m4v": true,
}

// KindOf classifies a file by its extension.
func KindOf(filename string) (models.MediaKind, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch {
	case imageExtensions[ext]:
		return models.MediaImage, nil
	case videoExtensions[ext]:
		return models.MediaVideo, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedType, filename)
}

// Validate checks the type and the size limit of file.
func Validate(file *multipart.FileHeader) (models.MediaKind, error) {
	kind, err := KindOf(file.Filename)
	if err != nil {
		return "", err
	}
	limit := int64(MaxImageSize)
	if kind == models.MediaVideo {
		limit = MaxVideoSize
	}
	if file.Size > limit {
		return "", fmt.Errorf("%w: %s is %d bytes, limit is %d", ErrTooLarge, file.Filename, file.Size, limit)
	}
	return kind, nil
}

// Uploader stores a file and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, file *multipart.FileHeader, folder string) (string, error)
}

// ErrStorageDisabled is returned when no media storage is configured.
var ErrStorageDisabled = errors.New("media: storage not configured")

// DisabledUploader refuses every upload.
type DisabledUploader struct{}

func (DisabledUploader) Upload(context.Context, *multipart.FileHeader, string) (string, error) {
	return "", ErrStorageDisabled
}
