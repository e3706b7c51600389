package handler

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/bandsite/cms-api/internal/core/domain"
	"github.com/bandsite/cms-api/internal/core/ports"
)

type GigHandler struct {
	service ports.GigService
}

func NewGigHandler(service ports.GigService) *GigHandler {
	return &GigHandler{service: service}
}

// List handles GET /api/gigs. ?when=upcoming lists future gigs soonest
// first, ?when=past the latest first; without it all gigs are listed.
//
// @Summary      List gigs
// @Tags         gigs
// @Produce      json
// @Param        when   query     string  false  "upcoming, past or all"
// @Param        page   query     int  false  "Page (default 1)"
// @Param        limit  query     int  false  "Page size (default 20, max 100)"
// @Success      200    {object}  response.Envelope{data=[]domain.Gig}
// @Router       /api/gigs [get]
func (h *GigHandler) List(c echo.Context) error {
	var q gigListQuery
	if err := echo.QueryParamsBinder(c).String("when", &q.When).BindError(); err != nil {
		return domain.BadRequest(msgInvalidPayload)
	}
	if err := c.Validate(&q); err != nil {
		return err
	}

	window := domain.GigWindow(q.When)
	return listDocs(c, func(ctx context.Context, page ports.Page) (*ports.List[domain.Gig], error) {
		return h.service.List(ctx, window, page)
	})
}

// Get handles GET /api/gigs/:id.
//
// @Summary      Get a gig
// @Tags         gigs
// @Produce      json
// @Param        id   path      string  true  "Id"
// @Success      200  {object}  response.Envelope{data=domain.Gig}
// @Failure      400  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /api/gigs/{id} [get]
func (h *GigHandler) Get(c echo.Context) error {
	return getDoc(c, h.service.Get)
}

// Create handles POST /api/gigs.
//
// @Summary      Create a gig
// @Tags         gigs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      gigRequest  true  "a gig"
// @Success      201   {object}  response.Envelope{data=domain.Gig}
// @Failure      401   {object}  response.Envelope
// @Failure      403   {object}  response.Envelope
// @Failure      422   {object}  response.Envelope
// @Router       /api/gigs [post]
func (h *GigHandler) Create(c echo.Context) error {
	return createDoc(c, gigRequest.toDomain, h.service.Create)
}

// Update handles PUT /api/gigs/:id. Only the fields present are changed.
//
// @Summary      Update a gig
// @Tags         gigs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Id"
// @Param        body  body      gigPatchRequest  true  "Fields to change"
// @Success      200   {object}  response.Envelope{data=domain.Gig}
// @Failure      400   {object}  response.Envelope
// @Failure      404   {object}  response.Envelope
// @Failure      422   {object}  response.Envelope
// @Router       /api/gigs/{id} [put]
func (h *GigHandler) Update(c echo.Context) error {
	return updateDoc(c, gigPatchRequest.toPatch, h.service.Update)
}

// Delete handles DELETE /api/gigs/:id.
//
// @Summary      Delete a gig
// @Tags         gigs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Id"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /api/gigs/{id} [delete]
func (h *GigHandler) Delete(c echo.Context) error {
	return deleteDoc(c, h.service.Delete, "Konzert gelöscht")
}
