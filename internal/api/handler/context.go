package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// adminUsername returns the authenticated username stored by the auth
// middleware, or a 401 if the request somehow reached the handler without it.
func adminUsername(c echo.Context) (string, error) {
	username, _ := c.Get("username").(string)
	if username == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "no authenticated user")
	}
	return username, nil
}
