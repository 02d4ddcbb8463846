package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const MetricsEndpoint = "/metrics"

// CreateWebserver creates the statistics webserver, exposing all registered collectors
func CreateWebserver() *echo.Echo {
	webserver := echo.New()
	webserver.HideBanner = true
	webserver.HidePort = true

	webserver.Use(middleware.Secure())
	webserver.Use(middleware.Recover())

	webserver.GET(MetricsEndpoint, echoprometheus.NewHandler())

	return webserver
}
