package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/bandsite/cms-api/internal/core/ports"
)

type SongHandler struct {
	service ports.SongService
}

func NewSongHandler(service ports.SongService) *SongHandler {
	return &SongHandler{service: service}
}

// List handles GET /api/songs.
//
// @Summary      List songs
// @Tags         songs
// @Produce      json
// @Param        page   query     int  false  "Page (default 1)"
// @Param        limit  query     int  false  "Page size (default 20, max 100)"
// @Success      200    {object}  response.Envelope{data=[]domain.Song}
// @Router       /api/songs [get]
func (h *SongHandler) List(c echo.Context) error {
	return listDocs(c, h.service.List)
}

// Get handles GET /api/songs/:id.
//
// @Summary      Get a song
// @Tags         songs
// @Produce      json
// @Param        id   path      string  true  "Id"
// @Success      200  {object}  response.Envelope{data=domain.Song}
// @Failure      400  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /api/songs/{id} [get]
func (h *SongHandler) Get(c echo.Context) error {
	return getDoc(c, h.service.Get)
}

// Create handles POST /api/songs.
//
// @Summary      Create a song
// @Tags         songs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      songRequest  true  "a song"
// @Success      201   {object}  response.Envelope{data=domain.Song}
// @Failure      401   {object}  response.Envelope
// @Failure      403   {object}  response.Envelope
// @Failure      422   {object}  response.Envelope
// @Router       /api/songs [post]
func (h *SongHandler) Create(c echo.Context) error {
	return createDoc(c, songRequest.toDomain, h.service.Create)
}

// Update handles PUT /api/songs/:id. Only the fields present are changed.
//
// @Summary      Update a song
// @Tags         songs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Id"
// @Param        body  body      songPatchRequest  true  "Fields to change"
// @Success      200   {object}  response.Envelope{data=domain.Song}
// @Failure      400   {object}  response.Envelope
// @Failure      404   {object}  response.Envelope
// @Failure      422   {object}  response.Envelope
// @Router       /api/songs/{id} [put]
func (h *SongHandler) Update(c echo.Context) error {
	return updateDoc(c, songPatchRequest.toPatch, h.service.Update)
}

// Delete handles DELETE /api/songs/:id.
//
// @Summary      Delete a song
// @Tags         songs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Id"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /api/songs/{id} [delete]
func (h *SongHandler) Delete(c echo.Context) error {
	return deleteDoc(c, h.service.Delete, "Song gelöscht")
}
