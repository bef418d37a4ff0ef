// Package storage keeps complaint photos on local disk under a public
// /uploads prefix.
package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const MaxPhotoSize = 5 * 1024 * 1024

var (
	ErrPhotoTooLarge = errors.New("photo must be 5MB or smaller")
	ErrNotAnImage    = errors.New("only image files are allowed")
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

type PhotoStore struct {
	dir string
}

func NewPhotoStore(dir string) (*PhotoStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &PhotoStore{dir: dir}, nil
}

func (s *PhotoStore) Dir() string { return s.dir }

// Save validates and persists an uploaded photo, returning its public URL.
func (s *PhotoStore) Save(fh *multipart.FileHeader) (string, error) {
	if fh.Size > MaxPhotoSize {
		return "", ErrPhotoTooLarge
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExtensions[ext] {
		return "", ErrNotAnImage
	}

	name := fmt.Sprintf("complaint-%d-%s%s", time.Now().UnixMilli(), uuid.New().String()[:8], ext)

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded photo: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to store photo: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to store photo: %w", err)
	}

	return "/uploads/" + name, nil
}

// Open returns the stored file for a photo URL, for feeding the classifier.
func (s *PhotoStore) Open(url string) (*os.File, error) {
	return os.Open(s.path(url))
}

// Remove deletes the stored file behind a photo URL. A file that is already
// gone is not an error.
func (s *PhotoStore) Remove(url string) error {
	err := os.Remove(s.path(url))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (s *PhotoStore) path(url string) string {
	return filepath.Join(s.dir, filepath.Base(url))
}
