package service_test

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"schooladmin/internal/service"
)

func formFile(t *testing.T, name, content string) (multipart.File, *multipart.FileHeader) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("img", name)
	assert.NoError(t, err)
	_, err = part.Write([]byte(content))
	assert.NoError(t, err)
	assert.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	file, header, err := req.FormFile("img")
	assert.NoError(t, err)
	return file, header
}

func TestUploadSave(t *testing.T) {
	dir := t.TempDir()
	uploads := service.NewUploadService(dir)

	file, header := formFile(t, "photo.png", "fake image bytes")
	defer file.Close()

	path, err := uploads.Save(file, header)
	assert.NoError(t, err)

	assert.True(t, strings.HasPrefix(path, "/uploads/"))
	name := strings.TrimPrefix(path, "/uploads/")
	assert.Regexp(t, regexp.MustCompile(`^\d+-photo\.png$`), name, "stored name is timestamp-prefixed")

	data, err := os.ReadFile(filepath.Join(dir, name))
	assert.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))
}

func TestUploadSaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	uploads := service.NewUploadService(dir)

	file, header := formFile(t, "a.jpg", "x")
	defer file.Close()

	_, err := uploads.Save(file, header)
	assert.NoError(t, err)

	entries, err := os.ReadDir(dir)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestUploadSaveStripsDirectoryFromName(t *testing.T) {
	dir := t.TempDir()
	uploads := service.NewUploadService(dir)

	file, header := formFile(t, "b.png", "y")
	defer file.Close()
	header.Filename = "../../etc/b.png"

	path, err := uploads.Save(file, header)
	assert.NoError(t, err)
	assert.NotContains(t, path, "..")

	entries, err := os.ReadDir(dir)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
}
