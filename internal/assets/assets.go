// Package assets stores uploaded menu images and generates the QR code
// customers scan to reach the menu.
package assets

import (
	"errors"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
)

// ErrNotImage is returned when an upload does not declare an image
// content type. The declared type is trusted as-is; the bytes are not
// sniffed.
var ErrNotImage = errors.New("file must be an image")

// qrFileName is the fixed name the QR code is written under. Every
// generation overwrites the previous one.
const qrFileName = "qr_menu.png"

// Service writes files into a single upload directory that the router
// serves under /uploads.
type Service struct {
	dir       string
	urlPrefix string
}

// NewService creates the upload directory if needed and returns a
// service writing into it.
func NewService(dir string) (*Service, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Service{dir: dir, urlPrefix: "/uploads"}, nil
}

// SaveImage persists an uploaded image under a random unique name,
// keeping the original file extension, and returns its public path.
// Identical uploads get distinct names; there is no deduplication.
func (s *Service) SaveImage(data []byte, contentType, filename string) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrNotImage
	}

	name := uuid.New().String() + filepath.Ext(filename)
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", err
	}
	return path.Join(s.urlPrefix, name), nil
}

// GenerateQR encodes the target URL into a scannable PNG at medium error
// correction and writes it under the fixed well-known name, replacing
// whatever was there before.
func (s *Service) GenerateQR(target string) (string, error) {
	if err := qrcode.WriteFile(target, qrcode.Medium, 256, filepath.Join(s.dir, qrFileName)); err != nil {
		return "", err
	}
	return path.Join(s.urlPrefix, qrFileName), nil
}
