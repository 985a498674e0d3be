package rest

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/site-admin/internal/metrics"
	"github.com/daniilsolovey/site-admin/internal/upload"
)

// UploadImage handles POST /api/v1/upload
// @Summary Upload an image
// @Description Accepts a multipart image, scales it down to the configured bounds and stores it as JPEG. Answers with the stored file name only.
// @Tags upload
// @Accept mpfd
// @Produce json
// @Param image formData file true "Image file"
// @Success 201 {object} rest.Response
// @Failure 400,413,500 {object} rest.Response
// @Security BearerAuth
// @Router /api/v1/upload [post]
func (h *Handler) UploadImage(c echo.Context) error {
	file, err := c.FormFile("image")
	if err != nil {
		return fail(c, http.StatusBadRequest, "image file is required")
	}
	if !strings.HasPrefix(file.Header.Get(echo.HeaderContentType), "image/") {
		return fail(c, http.StatusBadRequest, "file must be an image")
	}
	if file.Size > h.uploadCfg.MaxBytes() {
		return fail(c, http.StatusRequestEntityTooLarge, "image file too large")
	}

	src, err := file.Open()
	if err != nil {
		return fail(c, http.StatusBadRequest, "cannot read image file")
	}
	defer src.Close()

	name, err := h.upload.Process(io.LimitReader(src, h.uploadCfg.MaxBytes()))
	if err != nil {
		metrics.RecordUpload(false)
		if errors.Is(err, upload.ErrInvalidImage) {
			return fail(c, http.StatusBadRequest, "invalid image data")
		}
		return h.handleError(c, err)
	}

	metrics.RecordUpload(true)

	return created(c, UploadResult{Filename: name})
}

// DeleteImage handles DELETE /api/v1/upload/:filename
// @Summary Delete an uploaded image
// @Tags upload
// @Produce json
// @Param filename path string true "Stored file name"
// @Success 200 {object} rest.Response
// @Failure 400,404,500 {object} rest.Response
// @Security BearerAuth
// @Router /api/v1/upload/{filename} [delete]
func (h *Handler) DeleteImage(c echo.Context) error {
	name := c.Param("filename")
	if name == "" {
		return fail(c, http.StatusBadRequest, "filename is required")
	}

	if err := h.upload.Delete(name); err != nil {
		if errors.Is(err, upload.ErrNotFound) {
			return fail(c, http.StatusNotFound, "image not found")
		}
		return h.handleError(c, err)
	}

	return okMessage(c, nil, "image deleted")
}
