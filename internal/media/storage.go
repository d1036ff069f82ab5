package media

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxUploadSize is the largest accepted upload (5MB).
const MaxUploadSize = 5 * 1024 * 1024

var (
	ErrUnsupportedType = errors.New("only PNG, JPG, JPEG, GIF, SVG, WEBP allowed")
	ErrTooLarge        = errors.New("file too large (max 5MB)")
	ErrInvalidPath     = errors.New("invalid media path")
)

var allowedExt = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".svg":  true,
	".webp": true,
}

// Storage keeps uploaded assets on the local filesystem. Stored paths are
// relative to Root and use forward slashes, e.g. "companies/logos/ab12.png".
type Storage struct {
	Root    string
	BaseURL string
}

func NewStorage(root, baseURL string) *Storage {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Storage{Root: root, BaseURL: baseURL}
}

// Save validates and writes an uploaded file under subdir and returns its
// stored path.
func (s *Storage) Save(file *multipart.FileHeader, subdir string) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExt[ext] {
		return "", ErrUnsupportedType
	}
	if file.Size > MaxUploadSize {
		return "", ErrTooLarge
	}

	rel, err := clean(path.Join(subdir, uuid.New().String()[:8]+ext))
	if err != nil {
		return "", err
	}
	dst := filepath.Join(s.Root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return "", fmt.Errorf("create media dir: %w", err)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create media file: %w", err)
	}
	if _, err := io.Copy(out, io.LimitReader(src, MaxUploadSize+1)); err != nil {
		out.Close()
		os.Remove(dst)
		return "", fmt.Errorf("write media file: %w", err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("close media file: %w", err)
	}
	return rel, nil
}

// URL returns the public URL of a stored path. Absolute URLs pass through.
func (s *Storage) URL(p string) string {
	if p == "" {
		return ""
	}
	if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		return p
	}
	return s.BaseURL + strings.TrimPrefix(p, "/")
}

// Exists reports whether the stored path points at a readable file.
func (s *Storage) Exists(p string) bool {
	rel, err := clean(p)
	if err != nil {
		return false
	}
	info, err := os.Stat(filepath.Join(s.Root, filepath.FromSlash(rel)))
	return err == nil && !info.IsDir()
}

// Delete removes a stored file. Missing files are not an error.
func (s *Storage) Delete(p string) error {
	if p == "" {
		return nil
	}
	rel, err := clean(p)
	if err != nil {
		return err
	}
	err = os.Remove(filepath.Join(s.Root, filepath.FromSlash(rel)))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete media file: %w", err)
	}
	return nil
}

func clean(p string) (string, error) {
	rel := path.Clean("/" + strings.TrimPrefix(p, "/"))[1:]
	if rel == "" || strings.HasPrefix(p, "..") || strings.Contains(p, "/../") {
		return "", ErrInvalidPath
	}
	return rel, nil
}
