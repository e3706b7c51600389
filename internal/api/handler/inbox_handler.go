package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bandsite/cms-api/internal/api/response"
	"github.com/bandsite/cms-api/internal/core/ports"
)

// ContactHandler serves the contact form and its inbox.
type ContactHandler struct {
	service ports.ContactService
}

func NewContactHandler(service ports.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// Submit handles POST /api/contact.
//
// @Summary      Send a contact message
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Message"
// @Success      201   {object}  response.Envelope
// @Failure      422   {object}  response.Envelope
// @Failure      429   {object}  response.Envelope
// @Router       /api/contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	if _, err := h.service.Submit(c.Request().Context(), req.toInput()); err != nil {
		return err
	}
	return response.Message(c, http.StatusCreated, "Nachricht gesendet", nil)
}

// List handles GET /api/contact. Unread messages come first.
//
// @Summary      List contact messages
// @Tags         contact
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page (default 1)"
// @Param        limit  query     int  false  "Page size (default 20, max 100)"
// @Success      200    {object}  response.Envelope{data=[]domain.ContactMessage}
// @Failure      403    {object}  response.Envelope
// @Router       /api/contact [get]
func (h *ContactHandler) List(c echo.Context) error {
	return listDocs(c, h.service.List)
}

// MarkRead handles PATCH /api/contact/:id/read.
//
// @Summary      Mark a message as read
// @Tags         contact
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Message id"
// @Success      200  {object}  response.Envelope{data=domain.ContactMessage}
// @Failure      404  {object}  response.Envelope
// @Router       /api/contact/{id}/read [patch]
func (h *ContactHandler) MarkRead(c echo.Context) error {
	return getDoc(c, h.service.MarkRead)
}

// Delete handles DELETE /api/contact/:id.
//
// @Summary      Delete a message
// @Tags         contact
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Message id"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /api/contact/{id} [delete]
func (h *ContactHandler) Delete(c echo.Context) error {
	return deleteDoc(c, h.service.Delete, "Nachricht gelöscht")
}

// GuestbookHandler serves the guestbook. New entries wait for moderation.
type GuestbookHandler struct {
	service ports.GuestbookService
}

func NewGuestbookHandler(service ports.GuestbookService) *GuestbookHandler {
	return &GuestbookHandler{service: service}
}

// List handles GET /api/guestbook.
//
// @Summary      List approved entries
// @Tags         guestbook
// @Produce      json
// @Param        page   query     int  false  "Page (default 1)"
// @Param        limit  query     int  false  "Page size (default 20, max 100)"
// @Success      200    {object}  response.Envelope{data=[]domain.GuestbookEntry}
// @Router       /api/guestbook [get]
func (h *GuestbookHandler) List(c echo.Context) error {
	return h.list(c, true)
}

// Pending handles GET /api/guestbook/pending.
//
// @Summary      List entries awaiting approval
// @Tags         guestbook
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Envelope{data=[]domain.GuestbookEntry}
// @Failure      403  {object}  response.Envelope
// @Router       /api/guestbook/pending [get]
func (h *GuestbookHandler) Pending(c echo.Context) error {
	return h.list(c, false)
}

func (h *GuestbookHandler) list(c echo.Context, approved bool) error {
	page, err := pageQuery(c)
	if err != nil {
		return err
	}
	entries, err := h.service.List(c.Request().Context(), approved, page)
	if err != nil {
		return err
	}
	return response.List(c, entries)
}

// Sign handles POST /api/guestbook.
//
// @Summary      Sign the guestbook
// @Tags         guestbook
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      guestbookRequest  true  "Entry"
// @Success      201   {object}  response.Envelope{data=domain.GuestbookEntry}
// @Failure      401   {object}  response.Envelope
// @Failure      422   {object}  response.Envelope
// @Failure      429   {object}  response.Envelope
// @Router       /api/guestbook [post]
func (h *GuestbookHandler) Sign(c echo.Context) error {
	author, err := ctxClaim(c)
	if err != nil {
		return err
	}

	var req guestbookRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	entry, err := h.service.Sign(c.Request().Context(), author, req.Name, req.Message)
	if err != nil {
		return err
	}
	return response.Message(c, http.StatusCreated, "Eintrag wird nach Prüfung freigeschaltet", entry)
}

// Approve handles PATCH /api/guestbook/:id/approve.
//
// @Summary      Approve an entry
// @Tags         guestbook
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Entry id"
// @Success      200  {object}  response.Envelope{data=domain.GuestbookEntry}
// @Failure      404  {object}  response.Envelope
// @Router       /api/guestbook/{id}/approve [patch]
func (h *GuestbookHandler) Approve(c echo.Context) error {
	return getDoc(c, h.service.Approve)
}

// Delete handles DELETE /api/guestbook/:id.
//
// @Summary      Delete an entry
// @Tags         guestbook
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Entry id"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /api/guestbook/{id} [delete]
func (h *GuestbookHandler) Delete(c echo.Context) error {
	return deleteDoc(c, h.service.Delete, "Eintrag gelöscht")
}
