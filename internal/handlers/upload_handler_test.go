package handlers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ClaudeMKA/Pulse-sub001/internal/handlers"
	"github.com/ClaudeMKA/Pulse-sub001/internal/storage"
)

// 1x1 transparent PNG.
var pngPixel = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0d, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

func multipartRequest(t *testing.T, kind, filename string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	if kind != "" {
		require.NoError(t, w.WriteField("type", kind))
	}
	if content != nil {
		part, err := w.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func uploadRouter(t *testing.T) (*storage.Uploader, http.Handler) {
	uploader := storage.NewUploader(t.TempDir(), 1<<20)
	h := handlers.NewUploadHandler(uploader, uploader.MaxBytes)
	r := newRouter()
	r.POST("/upload", h.Upload)
	return uploader, r
}

func TestUploadHandler(t *testing.T) {
	uploader, r := uploadRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, multipartRequest(t, "events", "poster.png", pngPixel))

	require.Equal(t, http.StatusCreated, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Regexp(t, `^/uploads/events/\d+-poster\.png$`, body["path"])

	_, err := os.Stat(filepath.Join(uploader.PublicDir, filepath.FromSlash(body["path"])))
	assert.NoError(t, err)
}

func TestUploadHandler_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		kind     string
		filename string
		content  []byte
	}{
		{"missing file", "events", "", nil},
		{"unknown type", "tickets", "poster.png", pngPixel},
		{"not an image", "events", "notes.png", []byte("plain text pretending to be a png")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, r := uploadRouter(t)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, multipartRequest(t, tt.kind, tt.filename, tt.content))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
