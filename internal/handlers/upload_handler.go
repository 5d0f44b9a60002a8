package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/fortune-club/internal/httperr"
	"github.com/BruksfildServices01/fortune-club/internal/httpresp"
	"github.com/BruksfildServices01/fortune-club/internal/middleware"
	ucUpload "github.com/BruksfildServices01/fortune-club/internal/usecase/upload"
)

type UploadHandler struct {
	upload   *ucUpload.UploadImage
	maxBytes int64
}

// NewUploadHandler accepts a nil use case when no bucket is configured.
func NewUploadHandler(upload *ucUpload.UploadImage, maxBytes int64) *UploadHandler {
	return &UploadHandler{upload: upload, maxBytes: maxBytes}
}

func (h *UploadHandler) Upload(c *gin.Context) {
	if h.upload == nil {
		httperr.Write(c, http.StatusServiceUnavailable, "uploads_disabled", "Uploads are not configured.")
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+1024*1024)

	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httperr.Write(c, http.StatusRequestEntityTooLarge, "file_too_large", "The file is too large.")
			return
		}
		httperr.BadRequest(c, "file_required", "No file was submitted.")
		return
	}
	if fh.Size > h.maxBytes {
		httperr.Write(c, http.StatusRequestEntityTooLarge, "file_too_large", "The file is too large.")
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.maxBytes+1))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	res, err := h.upload.Execute(c.Request.Context(), middleware.ActorFrom(c), data)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, res)
}
