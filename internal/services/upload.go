package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
)

type UploadService interface {
	ReadPDF(file *multipart.FileHeader) ([]byte, error)
}

type uploadService struct {
	maxFileSize int64
}

func NewUploadService(maxFileSize int64) UploadService {
	if maxFileSize <= 0 {
		maxFileSize = DefaultMaxFileSize
	}
	return &uploadService{maxFileSize: maxFileSize}
}

// ReadPDF loads an uploaded resume into memory, reading at most one byte past
// the size limit so the ingestion check still sees an oversized file.
func (s *uploadService) ReadPDF(file *multipart.FileHeader) ([]byte, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".pdf" {
		return nil, fmt.Errorf("invalid file extension: %q", ext)
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, s.maxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	return data, nil
}
