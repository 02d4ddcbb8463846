package api

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"net/http"
)

const (
	urlParamId      = "id"
	indentationChar = "  "

	EndpointPathAlive = "/alive/"
)

type (
	Result struct {
		Name    string `json:"name"`
		Message string `json:"message"`
	}
)

func CreateRestService() *echo.Echo {
	echoRest := echo.New()
	echoRest.HideBanner = true
	echoRest.HidePort = true

	// Root level middleware
	echoRest.Pre(middleware.AddTrailingSlash())

	echoRest.Use(middleware.Secure())
	echoRest.Use(middleware.Recover())

	echoRest.GET(EndpointPathAlive, isAlive)

	registerLoopEndpoints(echoRest)

	return echoRest
}

// returns an empty "ok" answer
func isAlive(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

// return a "not found" message
func returnNotFound(c echo.Context, id string) (err error) {
	return c.JSONPretty(http.StatusNotFound, &Result{
		Name:    "Not found",
		Message: "No item with id '" + id + "' found",
	}, indentationChar)
}

// return a "bad request" message for invalid input
func returnBadRequest(c echo.Context, e error) (err error) {
	return c.JSONPretty(http.StatusBadRequest, &Result{
		Name:    "Bad Request",
		Message: e.Error(),
	}, indentationChar)
}

// return the error message of an error
func returnError(c echo.Context, status int, e error) (err error) {
	return c.JSONPretty(status, &Result{
		Name:    http.StatusText(status),
		Message: e.Error(),
	}, indentationChar)
}
