package services

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("resume", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File["resume"][0]
}

func TestUploadService_ReadPDF(t *testing.T) {
	svc := NewUploadService(0)

	data, err := svc.ReadPDF(fileHeader(t, "Resume.PDF", []byte("%PDF-1.7 body")))
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.7 body"), data)
}

func TestUploadService_RejectsOtherExtensions(t *testing.T) {
	_, err := NewUploadService(0).ReadPDF(fileHeader(t, "resume.docx", []byte("PK")))
	assert.ErrorContains(t, err, "invalid file extension")
}

func TestUploadService_ReadsOnePastTheLimit(t *testing.T) {
	data, err := NewUploadService(4).ReadPDF(fileHeader(t, "r.pdf", []byte("0123456789")))
	require.NoError(t, err)
	assert.Len(t, data, 5)
}
