package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bandsite/cms-api/internal/api/metrics"
	"github.com/bandsite/cms-api/internal/api/response"
	"github.com/bandsite/cms-api/internal/core/domain"
	"github.com/bandsite/cms-api/internal/core/ports"
)

const uploadField = "image"

type UploadHandler struct {
	service ports.UploadService
}

func NewUploadHandler(service ports.UploadService) *UploadHandler {
	return &UploadHandler{service: service}
}

// Upload handles POST /api/upload with a multipart "image" field.
//
// @Summary      Upload an image
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        image  formData  file  true  "JPEG, PNG, WebP or GIF"
// @Success      201    {object}  response.Envelope{data=domain.MediaAsset}
// @Failure      400    {object}  response.Envelope
// @Failure      403    {object}  response.Envelope
// @Router       /api/upload [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile(uploadField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return domain.BadRequest("Keine Datei hochgeladen")
		}
		return domain.BadRequest(msgInvalidPayload)
	}

	file, err := fh.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	asset, err := h.service.Upload(c.Request().Context(), ports.UploadInput{
		Filename: fh.Filename,
		Size:     fh.Size,
		Body:     file,
	})
	if err != nil {
		metrics.UploadsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.UploadsTotal.WithLabelValues("ok").Inc()
	return response.Message(c, http.StatusCreated, "Bild hochgeladen", asset)
}
