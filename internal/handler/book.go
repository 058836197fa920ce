// Package handler exposes the HTTP handlers for the book listing API.  The
// handlers are stateless; the only shared resource they touch is the database
// connection pool behind the repository.
package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/book-manager/internal/model"
)

// BookLister is the slice of the repository the handler needs.  Accepting an
// interface here lets tests exercise both the success and failure paths
// without a live database.
type BookLister interface {
	ListAll(ctx context.Context) (model.BookList, error)
}

// BookHandler serves the read-only book endpoints.
type BookHandler struct {
	Books BookLister // provides access to book data
}

// NewBookHandler constructs a BookHandler and panics if the dependency is nil.
func NewBookHandler(books BookLister) *BookHandler {
	if books == nil {
		panic("nil BookLister passed to NewBookHandler")
	}
	return &BookHandler{Books: books}
}

// List returns every book in the table as a JSON array.  Pool acquisition
// failures and query/mapping failures are deliberately indistinguishable to
// the caller: both collapse to a bare 500 with no body.  The underlying cause
// is logged internally only.
func (h *BookHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	books, err := h.Books.ListAll(ctx)
	if err != nil {
		c.Logger().Error(err)
		return c.NoContent(http.StatusInternalServerError)
	}
	out := make(model.BookList, 0, len(books))
	out = append(out, books...)
	return c.JSON(http.StatusOK, out)
}
