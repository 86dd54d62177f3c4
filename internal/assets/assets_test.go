package assets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSaveImageRejectsNonImage(t *testing.T) {
	svc, err := NewService(t.TempDir())
	assert.NoError(t, err)

	_, err = svc.SaveImage([]byte("hello"), "text/plain", "notes.txt")
	assert.ErrorIs(t, err, ErrNotImage)
}

func TestSaveImageKeepsExtension(t *testing.T) {
	dir := t.TempDir()
	svc, err := NewService(dir)
	assert.NoError(t, err)

	url, err := svc.SaveImage([]byte{0x89, 0x50, 0x4e, 0x47}, "image/png", "photo.png")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	// The file must actually exist on disk under that name.
	_, err = os.Stat(filepath.Join(dir, filepath.Base(url)))
	assert.NoError(t, err)
}

func TestSaveImageIdenticalContentGetsDistinctNames(t *testing.T) {
	svc, err := NewService(t.TempDir())
	assert.NoError(t, err)

	content := []byte{0x89, 0x50, 0x4e, 0x47}
	first, err := svc.SaveImage(content, "image/png", "photo.png")
	assert.NoError(t, err)
	second, err := svc.SaveImage(content, "image/png", "photo.png")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestGenerateQRWritesFixedName(t *testing.T) {
	dir := t.TempDir()
	svc, err := NewService(dir)
	assert.NoError(t, err)

	url, err := svc.GenerateQR("http://localhost:3000")
	assert.NoError(t, err)
	assert.Equal(t, "/uploads/qr_menu.png", url)

	info, err := os.Stat(filepath.Join(dir, "qr_menu.png"))
	assert.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	// A second call for a different URL overwrites the same file and
	// returns the same path.
	again, err := svc.GenerateQR("https://example.com/menu")
	assert.NoError(t, err)
	assert.Equal(t, url, again)
}

func TestNewServiceCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	_, err := NewService(dir)
	assert.NoError(t, err)

	info, err := os.Stat(dir)
	assert.NoError(t, err)
	assert.True(t, info.IsDir())
}
