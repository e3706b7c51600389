package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/bandsite/cms-api/internal/core/ports"
)

// MemberHandler serves the line-up. Reads are public.
type MemberHandler struct {
	service ports.MemberService
}

func NewMemberHandler(service ports.MemberService) *MemberHandler {
	return &MemberHandler{service: service}
}

// List handles GET /api/members.
//
// @Summary      List band members
// @Tags         members
// @Produce      json
// @Param        page   query     int  false  "Page (default 1)"
// @Param        limit  query     int  false  "Page size (default 20, max 100)"
// @Success      200    {object}  response.Envelope{data=[]domain.Member}
// @Router       /api/members [get]
func (h *MemberHandler) List(c echo.Context) error {
	return listDocs(c, h.service.List)
}

// Get handles GET /api/members/:id.
//
// @Summary      Get a band member
// @Tags         members
// @Produce      json
// @Param        id   path      string  true  "Id"
// @Success      200  {object}  response.Envelope{data=domain.Member}
// @Failure      400  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /api/members/{id} [get]
func (h *MemberHandler) Get(c echo.Context) error {
	return getDoc(c, h.service.Get)
}

// Create handles POST /api/members.
//
// @Summary      Create a band member
// @Tags         members
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      memberRequest  true  "a band member"
// @Success      201   {object}  response.Envelope{data=domain.Member}
// @Failure      401   {object}  response.Envelope
// @Failure      403   {object}  response.Envelope
// @Failure      422   {object}  response.Envelope
// @Router       /api/members [post]
func (h *MemberHandler) Create(c echo.Context) error {
	return createDoc(c, memberRequest.toDomain, h.service.Create)
}

// Update handles PUT /api/members/:id. Only the fields present are changed.
//
// @Summary      Update a band member
// @Tags         members
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Id"
// @Param        body  body      memberPatchRequest  true  "Fields to change"
// @Success      200   {object}  response.Envelope{data=domain.Member}
// @Failure      400   {object}  response.Envelope
// @Failure      404   {object}  response.Envelope
// @Failure      422   {object}  response.Envelope
// @Router       /api/members/{id} [put]
func (h *MemberHandler) Update(c echo.Context) error {
	return updateDoc(c, memberPatchRequest.toPatch, h.service.Update)
}

// Delete handles DELETE /api/members/:id.
//
// @Summary      Delete a band member
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Id"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /api/members/{id} [delete]
func (h *MemberHandler) Delete(c echo.Context) error {
	return deleteDoc(c, h.service.Delete, "Bandmitglied gelöscht")
}
