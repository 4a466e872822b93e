package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// room for the multipart envelope around the file itself
const multipartOverhead = 1 << 20

type Uploader interface {
	Save(kind, filename string, r io.Reader) (string, error)
}

type UploadHandler struct {
	Uploader Uploader
	MaxBytes int64
}

func NewUploadHandler(u Uploader, maxBytes int64) *UploadHandler {
	return &UploadHandler{Uploader: u, MaxBytes: maxBytes}
}

// POST /api/upload
func (h *UploadHandler) Upload(c *gin.Context) {
	if h.MaxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxBytes+multipartOverhead)
	}

	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	file, err := header.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer file.Close()

	path, err := h.Uploader.Save(c.PostForm("type"), header.Filename, file)
	if err != nil {
		respondError(c, err)
		return
	}

	logrus.WithFields(logrus.Fields{"path": path, "size": header.Size}).Info("file uploaded")
	c.JSON(http.StatusCreated, gin.H{"path": path})
}
