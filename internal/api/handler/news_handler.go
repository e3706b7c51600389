package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bandsite/cms-api/internal/api/response"
	"github.com/bandsite/cms-api/internal/core/ports"
)

// NewsHandler serves the blog. Drafts are only listed through ListAll.
type NewsHandler struct {
	service ports.NewsService
}

func NewNewsHandler(service ports.NewsService) *NewsHandler {
	return &NewsHandler{service: service}
}

// List handles GET /api/news.
//
// @Summary      List published news
// @Tags         news
// @Produce      json
// @Param        page   query     int  false  "Page (default 1)"
// @Param        limit  query     int  false  "Page size (default 20, max 100)"
// @Success      200    {object}  response.Envelope{data=[]domain.NewsPost}
// @Router       /api/news [get]
func (h *NewsHandler) List(c echo.Context) error {
	return h.list(c, true)
}

// ListAll handles GET /api/news/all.
//
// @Summary      List all news including drafts
// @Tags         news
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page (default 1)"
// @Param        limit  query     int  false  "Page size (default 20, max 100)"
// @Success      200    {object}  response.Envelope{data=[]domain.NewsPost}
// @Failure      401    {object}  response.Envelope
// @Failure      403    {object}  response.Envelope
// @Router       /api/news/all [get]
func (h *NewsHandler) ListAll(c echo.Context) error {
	return h.list(c, false)
}

func (h *NewsHandler) list(c echo.Context, publishedOnly bool) error {
	page, err := pageQuery(c)
	if err != nil {
		return err
	}
	posts, err := h.service.List(c.Request().Context(), publishedOnly, page)
	if err != nil {
		return err
	}
	return response.List(c, posts)
}

// Get handles GET /api/news/:id, where id may also be a slug. Drafts are
// not found here.
//
// @Summary      Get a published post
// @Tags         news
// @Produce      json
// @Param        id   path      string  true  "Post id or slug"
// @Success      200  {object}  response.Envelope{data=domain.NewsPost}
// @Failure      404  {object}  response.Envelope
// @Router       /api/news/{id} [get]
func (h *NewsHandler) Get(c echo.Context) error {
	post, err := h.service.Get(c.Request().Context(), c.Param("id"), false)
	if err != nil {
		return err
	}
	return response.OK(c, http.StatusOK, post)
}

// Create handles POST /api/news.
//
// @Summary      Create a post
// @Tags         news
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      newsRequest  true  "Post"
// @Success      201   {object}  response.Envelope{data=domain.NewsPost}
// @Failure      409   {object}  response.Envelope
// @Failure      422   {object}  response.Envelope
// @Router       /api/news [post]
func (h *NewsHandler) Create(c echo.Context) error {
	author, err := ctxClaim(c)
	if err != nil {
		return err
	}

	var req newsRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	post, err := h.service.Create(c.Request().Context(), author, req.toInput())
	if err != nil {
		return err
	}
	return response.OK(c, http.StatusCreated, post)
}

// Update handles PUT /api/news/:id.
//
// @Summary      Update a post
// @Tags         news
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Post id"
// @Param        body  body      newsPatchRequest  true  "Fields to change"
// @Success      200   {object}  response.Envelope{data=domain.NewsPost}
// @Failure      404   {object}  response.Envelope
// @Failure      409   {object}  response.Envelope
// @Router       /api/news/{id} [put]
func (h *NewsHandler) Update(c echo.Context) error {
	return updateDoc(c, newsPatchRequest.toUpdate, h.service.Update)
}

// Delete handles DELETE /api/news/:id.
//
// @Summary      Delete a post
// @Tags         news
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /api/news/{id} [delete]
func (h *NewsHandler) Delete(c echo.Context) error {
	return deleteDoc(c, h.service.Delete, "Beitrag gelöscht")
}
