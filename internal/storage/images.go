// Package storage manages uploaded employee images on local disk.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sbilibin2017/employee-directory/internal/logger"
)

// MaxImageSize is the upload size cap in bytes.
const MaxImageSize = 5 << 20 // 5 MB

var (
	ErrImageTooLarge        = errors.New("image exceeds maximum allowed size")
	ErrUnsupportedImageType = errors.New("only .jpeg, .jpg, .png images are allowed")
)

var allowedExtensions = map[string]struct{}{
	".jpeg": {},
	".jpg":  {},
	".png":  {},
}

var allowedContentTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
}

// ImageStore saves and removes employee images under a single directory.
// Stored paths are relative, suitable for serving via the /uploads route.
type ImageStore struct {
	dir string
}

// NewImageStore creates the uploads directory if needed and returns a store.
func NewImageStore(dir string) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &ImageStore{dir: dir}, nil
}

// Dir returns the directory holding the stored images.
func (s *ImageStore) Dir() string {
	return s.dir
}

// Save validates and writes an uploaded image to disk. The stored file is
// named by the upload timestamp plus the original extension. It returns the
// relative path to persist on the employee record.
func (s *ImageStore) Save(ctx context.Context, src io.Reader, originalFilename, contentType string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", ErrUnsupportedImageType
	}
	if _, ok := allowedContentTypes[strings.ToLower(contentType)]; !ok {
		return "", ErrUnsupportedImageType
	}

	name := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)
	fullPath := filepath.Join(s.dir, name)

	dst, err := os.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", err
	}

	written, err := io.Copy(dst, io.LimitReader(src, MaxImageSize+1))
	closeErr := dst.Close()
	if err == nil {
		err = closeErr
	}
	if err == nil && written > MaxImageSize {
		err = ErrImageTooLarge
	}
	if err != nil {
		os.Remove(fullPath)
		return "", err
	}

	relPath := filepath.ToSlash(filepath.Join(filepath.Base(s.dir), name))

	logger.Log.Infow("image stored",
		"path", relPath,
		"size", written,
		"content_type", contentType,
	)

	return relPath, nil
}

// Remove deletes a previously stored image. A missing file is not an error;
// any other failure is logged and swallowed, never failing the caller.
func (s *ImageStore) Remove(ctx context.Context, relPath string) {
	if relPath == "" {
		return
	}

	fullPath := filepath.Join(s.dir, filepath.Base(relPath))
	err := os.Remove(fullPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Log.Errorw("failed to remove image", "path", relPath, "error", err)
		return
	}

	logger.Log.Infow("image removed", "path", relPath)
}
