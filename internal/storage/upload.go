package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

var (
	ErrInvalidKind  = errors.New("invalid upload type")
	ErrTooLarge     = errors.New("file too large")
	ErrUnsupported  = errors.New("unsupported file type")
	ErrEmptyFile    = errors.New("file is empty")
	unsafeNameChars = regexp.MustCompile(`[^a-z0-9_-]+`)
)

var allowedKinds = map[string]struct{}{
	"artists":   {},
	"locations": {},
	"stands":    {},
	"events":    {},
}

var allowedMIME = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// Uploader stores images under <PublicDir>/uploads/<kind>/.
type Uploader struct {
	PublicDir string
	MaxBytes  int64
	Now       func() time.Time
}

func NewUploader(publicDir string, maxBytes int64) *Uploader {
	return &Uploader{
		PublicDir: publicDir,
		MaxBytes:  maxBytes,
		Now:       time.Now,
	}
}

func (u *Uploader) UploadsDir() string {
	return filepath.Join(u.PublicDir, "uploads")
}

// Save validates and writes the upload, returning its public path.
func (u *Uploader) Save(kind, filename string, r io.Reader) (string, error) {
	kind = strings.ToLower(strings.TrimSpace(kind))
	if _, ok := allowedKinds[kind]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}

	data, err := io.ReadAll(io.LimitReader(r, u.MaxBytes+1))
	if err != nil {
		return "", fmt.Errorf("error reading upload: %w", err)
	}
	if len(data) == 0 {
		return "", ErrEmptyFile
	}
	if int64(len(data)) > u.MaxBytes {
		return "", fmt.Errorf("%w: limit is %d bytes", ErrTooLarge, u.MaxBytes)
	}

	detected := mimetype.Detect(data)
	ext, ok := allowedMIME[detected.String()]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupported, detected.String())
	}

	name := fmt.Sprintf("%d-%s%s", u.Now().UnixMilli(), sanitizeName(filename), ext)
	dir := filepath.Join(u.UploadsDir(), kind)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("error creating upload dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("error writing upload: %w", err)
	}

	return "/uploads/" + kind + "/" + name, nil
}

func sanitizeName(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	base = unsafeNameChars.ReplaceAllString(strings.ToLower(base), "-")
	base = strings.Trim(base, "-")
	if base == "" {
		return "image"
	}
	if len(base) > 64 {
		base = base[:64]
	}
	return base
}
