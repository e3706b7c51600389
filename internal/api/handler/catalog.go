package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bandsite/cms-api/internal/api/response"
	"github.com/bandsite/cms-api/internal/core/ports"
)

// Shared request flow of the band content handlers.

func createDoc[R any, T any](c echo.Context, toDomain func(R) *T, create func(context.Context, *T) (*T, error)) error {
	var req R
	if err := bindValid(c, &req); err != nil {
		return err
	}
	doc, err := create(c.Request().Context(), toDomain(req))
	if err != nil {
		return err
	}
	return response.OK(c, http.StatusCreated, doc)
}

func getDoc[T any](c echo.Context, get func(context.Context, string) (*T, error)) error {
	doc, err := get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return response.OK(c, http.StatusOK, doc)
}

func updateDoc[R any, P any, T any](c echo.Context, toPatch func(R) P, update func(context.Context, string, P) (*T, error)) error {
	var req R
	if err := bindValid(c, &req); err != nil {
		return err
	}
	doc, err := update(c.Request().Context(), c.Param("id"), toPatch(req))
	if err != nil {
		return err
	}
	return response.OK(c, http.StatusOK, doc)
}

func deleteDoc(c echo.Context, del func(context.Context, string) error, msg string) error {
	if err := del(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return response.Message(c, http.StatusOK, msg, nil)
}

func listDocs[T any](c echo.Context, list func(context.Context, ports.Page) (*ports.List[T], error)) error {
	page, err := pageQuery(c)
	if err != nil {
		return err
	}
	docs, err := list(c.Request().Context(), page)
	if err != nil {
		return err
	}
	return response.List(c, docs)
}
