package storage

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrMissingExtension = errors.New("file extension missing")
	ErrFileType         = errors.New("file type not allowed")
)

var allowedImageExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

func ValidateImageExtension(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))

	if ext == "" {
		return ErrMissingExtension
	}
	if !allowedImageExt[ext] {
		return ErrFileType
	}
	return nil
}

// UploadMultipartFile stores an uploaded image under prefix/<uuid><ext> and returns its URL.
func UploadMultipartFile(
	ctx context.Context,
	store ObjectStore,
	prefix string,
	file *multipart.FileHeader,
) (string, error) {

	if err := ValidateImageExtension(file.Filename); err != nil {
		return "", err
	}

	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	key := fmt.Sprintf(
		"%s/%s%s",
		strings.Trim(prefix, "/"),
		uuid.New().String(),
		strings.ToLower(filepath.Ext(file.Filename)),
	)

	return store.Put(ctx, key, f, file.Header.Get("Content-Type"))
}
