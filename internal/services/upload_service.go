package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Mpictdev01/adventure-hub/internal/domain"
	"github.com/Mpictdev01/adventure-hub/internal/utils"
)

// MaxUploadSize is the largest accepted proof image.
const MaxUploadSize = 5 << 20

var imageExt = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
	"image/bmp":  ".bmp",
}

// UploadService stores proof-of-payment images on local disk. Files are
// served back under /uploads.
type UploadService struct {
	Dir     string
	BaseURL string
	Now     func() time.Time
}

// Save reads at most MaxUploadSize bytes, checks the content is an image and
// returns its public URL.
func (s UploadService) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxUploadSize+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if len(data) == 0 {
		return "", domain.ValidationError{Field: "file", Msg: "file kosong"}
	}
	if len(data) > MaxUploadSize {
		return "", domain.ValidationError{Field: "file", Msg: "ukuran file maksimal 5MB"}
	}
	contentType := http.DetectContentType(data)
	ext, ok := imageExt[contentType]
	if !ok {
		return "", domain.ValidationError{Field: "file", Msg: "file harus berupa gambar jpg, png, gif, webp atau bmp"}
	}

	name := s.fileName(ext)
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", domain.InternalError{Msg: "gagal menyimpan file", Err: err}
	}
	if err := writeFile(filepath.Join(s.Dir, name), data); err != nil {
		return "", domain.InternalError{Msg: "gagal menyimpan file", Err: err}
	}

	utils.LogEvent(utils.RequestIDFrom(ctx), "upload", "save", fmt.Sprintf("file=%s original=%q size=%d type=%s", name, filename, len(data), contentType))
	return strings.TrimRight(s.BaseURL, "/") + "/uploads/" + name, nil
}

// fileName never reuses the client's name: the extension always follows the
// sniffed content type.
func (s UploadService) fileName(ext string) string {
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}
	return fmt.Sprintf("%d-%s%s", now.UnixMilli(), uuid.NewString()[:8], ext)
}

func writeFile(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, bytes.NewReader(data)); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}
