package api

import (
	"errors"
	"github.com/labstack/echo/v4"
	"github.com/markusressel/pid2go/internal/controller"
	"github.com/markusressel/pid2go/internal/trend"
	"github.com/markusressel/pid2go/internal/tuning"
	"github.com/qdm12/reprint"
	"net/http"
)

// EventRequest is the body of an operator event, f.ex. {"event": "step +1"}
type EventRequest struct {
	Event string `json:"event"`
}

func registerLoopEndpoints(rest *echo.Echo) {
	group := rest.Group("/loop")

	group.GET("/", getLoops)
	group.GET("/:"+urlParamId+"/", getLoop)
	group.GET("/:"+urlParamId+"/tuning/", getLoopTuning)
	group.GET("/:"+urlParamId+"/trend/", getLoopTrend)
	group.POST("/:"+urlParamId+"/event/", postLoopEvent)
}

// returns the status of all loops
func getLoops(c echo.Context) error {
	data := reprint.This(controller.StatusMap.Items())
	return c.JSONPretty(http.StatusOK, data, indentationChar)
}

func getLoop(c echo.Context) error {
	id := c.Param(urlParamId)
	data, exists := controller.StatusMap.Get(id)
	if !exists {
		return returnNotFound(c, id)
	} else {
		return c.JSONPretty(http.StatusOK, reprint.This(data), indentationChar)
	}
}

func getLoopTuning(c echo.Context) error {
	id := c.Param(urlParamId)
	data, exists := controller.StatusMap.Get(id)
	if !exists {
		return returnNotFound(c, id)
	}
	return c.JSONPretty(http.StatusOK, data.Loop.Tuning, indentationChar)
}

// returns the trend of a loop, oldest sample first
func getLoopTrend(c echo.Context) error {
	id := c.Param(urlParamId)
	data, exists := controller.StatusMap.Get(id)
	if !exists {
		return returnNotFound(c, id)
	}
	return c.JSONPretty(http.StatusOK, trend.Rows(data.Pens), indentationChar)
}

// queues an operator event for the next scan of a loop
func postLoopEvent(c echo.Context) error {
	id := c.Param(urlParamId)

	var request EventRequest
	if err := c.Bind(&request); err != nil {
		return returnBadRequest(c, err)
	}

	event, err := tuning.ParseEvent(request.Event)
	if err != nil {
		return returnBadRequest(c, err)
	}

	err = controller.SendEvent(id, event)
	switch {
	case errors.Is(err, controller.ErrUnknownLoop):
		return returnNotFound(c, id)
	case errors.Is(err, controller.ErrQueueFull):
		return returnError(c, http.StatusServiceUnavailable, err)
	case err != nil:
		return returnError(c, http.StatusInternalServerError, err)
	}

	return c.JSONPretty(http.StatusAccepted, &Result{
		Name:    "Accepted",
		Message: "Event '" + event.String() + "' queued for loop '" + id + "'",
	}, indentationChar)
}
