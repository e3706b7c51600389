package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/bandsite/cms-api/internal/core/ports"
)

type GalleryHandler struct {
	service ports.GalleryService
}

func NewGalleryHandler(service ports.GalleryService) *GalleryHandler {
	return &GalleryHandler{service: service}
}

// List handles GET /api/gallery.
//
// @Summary      List gallery images
// @Tags         gallery
// @Produce      json
// @Param        page   query     int  false  "Page (default 1)"
// @Param        limit  query     int  false  "Page size (default 20, max 100)"
// @Success      200    {object}  response.Envelope{data=[]domain.GalleryImage}
// @Router       /api/gallery [get]
func (h *GalleryHandler) List(c echo.Context) error {
	return listDocs(c, h.service.List)
}

// Get handles GET /api/gallery/:id.
//
// @Summary      Get a gallery image
// @Tags         gallery
// @Produce      json
// @Param        id   path      string  true  "Id"
// @Success      200  {object}  response.Envelope{data=domain.GalleryImage}
// @Failure      400  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /api/gallery/{id} [get]
func (h *GalleryHandler) Get(c echo.Context) error {
	return getDoc(c, h.service.Get)
}

// Create handles POST /api/gallery. The image is uploaded beforehand
// through /api/upload.
//
// @Summary      Create a gallery image
// @Tags         gallery
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      galleryRequest  true  "a gallery image"
// @Success      201   {object}  response.Envelope{data=domain.GalleryImage}
// @Failure      401   {object}  response.Envelope
// @Failure      403   {object}  response.Envelope
// @Failure      422   {object}  response.Envelope
// @Router       /api/gallery [post]
func (h *GalleryHandler) Create(c echo.Context) error {
	return createDoc(c, galleryRequest.toDomain, h.service.Create)
}

// Update handles PUT /api/gallery/:id. Only the fields present are changed.
//
// @Summary      Update a gallery image
// @Tags         gallery
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Id"
// @Param        body  body      galleryPatchRequest  true  "Fields to change"
// @Success      200   {object}  response.Envelope{data=domain.GalleryImage}
// @Failure      400   {object}  response.Envelope
// @Failure      404   {object}  response.Envelope
// @Failure      422   {object}  response.Envelope
// @Router       /api/gallery/{id} [put]
func (h *GalleryHandler) Update(c echo.Context) error {
	return updateDoc(c, galleryPatchRequest.toPatch, h.service.Update)
}

// Delete handles DELETE /api/gallery/:id. The hosted file is removed in
// the background.
//
// @Summary      Delete a gallery image
// @Tags         gallery
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Id"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /api/gallery/{id} [delete]
func (h *GalleryHandler) Delete(c echo.Context) error {
	return deleteDoc(c, h.service.Delete, "Bild gelöscht")
}
