// Package response defines the JSON envelope shared by every endpoint.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bandsite/cms-api/internal/core/domain"
	"github.com/bandsite/cms-api/internal/core/ports"
)

// Envelope wraps every response body.
type Envelope struct {
	Success    bool                `json:"success"`
	Data       any                 `json:"data,omitempty"`
	Message    string              `json:"message,omitempty"`
	Error      string              `json:"error,omitempty"`
	Details    []domain.FieldIssue `json:"details,omitempty"`
	Pagination *Pagination         `json:"pagination,omitempty"`
	// Stack is only set in development mode.
	Stack string `json:"stack,omitempty"`
}

type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// OK renders data with status.
func OK(c echo.Context, status int, data any) error {
	return c.JSON(status, Envelope{Success: true, Data: data})
}

// Message renders a success message, optionally with data.
func Message(c echo.Context, status int, msg string, data any) error {
	return c.JSON(status, Envelope{Success: true, Message: msg, Data: data})
}

// List renders one page of items with its pagination block.
func List[T any](c echo.Context, l *ports.List[T]) error {
	return c.JSON(http.StatusOK, Envelope{
		Success: true,
		Data:    l.Items,
		Pagination: &Pagination{
			Total:      l.Total,
			Page:       l.Page,
			Limit:      l.Limit,
			TotalPages: l.TotalPages,
		},
	})
}

// Failure builds the error envelope for e.
func Failure(e *domain.Error) Envelope {
	return Envelope{Success: false, Error: e.Message, Details: e.Details}
}
