package http

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"platina/services/content/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func multipartImage(t *testing.T, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestUpload_Success(t *testing.T) {
	mockUpload := new(MockUploadUseCase)
	handler := NewUploadHandler(mockUpload)

	router := setupTestRouter()
	router.POST("/admin/upload", handler.Upload)

	mockUpload.On("Upload", mock.Anything, mock.MatchedBy(func(f usecase.UploadFile) bool {
		return f.Name == "cover.png" && f.ContentType == "image/png" && f.Size == 4 && f.Body != nil
	})).Return(&usecase.UploadResult{
		URL:      "https://cdn.example.com/uploads/x.png",
		Filename: "cover.png",
		Size:     4,
		Type:     "image/png",
	}, nil)

	body, contentType := multipartImage(t, "cover.png", "image/png", []byte("\x89PNG"))
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin/upload", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "https://cdn.example.com/uploads/x.png")
	mockUpload.AssertExpectations(t)
}

func TestUpload_NoFile(t *testing.T) {
	mockUpload := new(MockUploadUseCase)
	handler := NewUploadHandler(mockUpload)

	router := setupTestRouter()
	router.POST("/admin/upload", handler.Upload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin/upload", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Nenhum arquivo fornecido")
}

func TestUpload_RejectedType(t *testing.T) {
	mockUpload := new(MockUploadUseCase)
	handler := NewUploadHandler(mockUpload)

	router := setupTestRouter()
	router.POST("/admin/upload", handler.Upload)

	mockUpload.On("Upload", mock.Anything, mock.Anything).
		Return(nil, &usecase.UserError{Message: "Tipo de arquivo não permitido. Use: JPG, PNG, WebP ou GIF"})

	body, contentType := multipartImage(t, "doc.pdf", "application/pdf", []byte("%PDF"))
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin/upload", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Tipo de arquivo não permitido")
}

func TestUpload_StorageUnavailable(t *testing.T) {
	mockUpload := new(MockUploadUseCase)
	handler := NewUploadHandler(mockUpload)

	router := setupTestRouter()
	router.POST("/admin/upload", handler.Upload)

	mockUpload.On("Upload", mock.Anything, mock.Anything).Return(nil, usecase.ErrStorageUnavailable)

	body, contentType := multipartImage(t, "cover.png", "image/png", []byte("\x89PNG"))
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin/upload", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
