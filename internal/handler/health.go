package handler // declare the package name; contains HTTP handlers

import (
	"net/http" // net/http provides status codes and response helpers

	"github.com/labstack/echo/v4" // echo is the web framework used for this project
)

// Health is a simple health-check endpoint used by load balancers and
// monitoring systems to verify that the service process is running.  It
// returns 204 No Content with an empty body, unconditionally: it has no
// failure path and does not check database connectivity.
func Health(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}
