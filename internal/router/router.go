package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/book-manager/internal/handler" // import the handlers that implement the endpoints
)

// RegisterRoutes registers the full route table on the provided Echo
// instance.  The API exposes exactly two endpoints: a liveness check and the
// book listing.  Any other path falls through to Echo's default not-found
// handling.
func RegisterRoutes(e *echo.Echo, books *handler.BookHandler) {
	// Map the GET request at path "/health" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/health", handler.Health)
	// Map the GET request at path "/books" to the listing handler, which
	// reads every row of the books table through the shared pool.
	e.GET("/books", books.List)
}
