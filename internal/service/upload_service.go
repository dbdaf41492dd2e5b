package service

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// UploadService persists multipart image files under a web-served directory,
// naming them <unix-millis>-<original-name>. Collisions are possible and
// accepted; stored files are never moved or deleted.
type UploadService struct {
	dir string
}

func NewUploadService(dir string) *UploadService {
	return &UploadService{dir: dir}
}

// Save writes the uploaded file to disk and returns the public path the
// record stores in its img field.
func (s *UploadService) Save(file multipart.File, header *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", err
	}

	name := strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + filepath.Base(header.Filename)
	out, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}
