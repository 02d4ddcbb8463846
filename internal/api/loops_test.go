package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/markusressel/pid2go/internal/controller"
	"github.com/markusressel/pid2go/internal/operator"
	"github.com/markusressel/pid2go/internal/pid"
	"github.com/markusressel/pid2go/internal/trend"
	"github.com/markusressel/pid2go/internal/tuning"
	"github.com/stretchr/testify/assert"
)

func request(method string, path string, body string) *httptest.ResponseRecorder {
	rest := CreateRestService()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if len(body) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	rest.ServeHTTP(rec, req)
	return rec
}

func registerLoop(t *testing.T, id string, queueSize int) *operator.ChannelSource {
	loop := pid.NewLoop(id)
	loop.PV = 42
	controller.StatusMap.Set(id, controller.Status{
		Loop:    loop.Snapshot(),
		Pens:    []trend.Sample{{PV: 2}, {PV: 1}},
		Running: true,
	})
	source := operator.NewChannelSource(queueSize)
	controller.EventSourceMap.Set(id, source)
	t.Cleanup(func() {
		controller.StatusMap.Remove(id)
		controller.EventSourceMap.Remove(id)
	})
	return source
}

func TestAlive(t *testing.T) {
	// WHEN
	rec := request(http.MethodGet, "/alive", "")

	// THEN
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetLoop(t *testing.T) {
	// GIVEN
	registerLoop(t, "api-get", 1)

	// WHEN
	rec := request(http.MethodGet, "/loop/api-get/", "")

	// THEN
	assert.Equal(t, http.StatusOK, rec.Code)
	var status controller.Status
	err := json.Unmarshal(rec.Body.Bytes(), &status)
	assert.NoError(t, err)
	assert.Equal(t, 42.0, status.Loop.PV)
	assert.True(t, status.Running)
}

func TestGetLoops(t *testing.T) {
	// GIVEN
	registerLoop(t, "api-list", 1)

	// WHEN
	rec := request(http.MethodGet, "/loop/", "")

	// THEN
	assert.Equal(t, http.StatusOK, rec.Code)
	var statuses map[string]controller.Status
	err := json.Unmarshal(rec.Body.Bytes(), &statuses)
	assert.NoError(t, err)
	assert.Contains(t, statuses, "api-list")
}

func TestGetLoop_NotFound(t *testing.T) {
	// WHEN
	rec := request(http.MethodGet, "/loop/missing/", "")

	// THEN
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "No item with id 'missing' found")
}

func TestGetLoopTuning(t *testing.T) {
	// GIVEN
	registerLoop(t, "api-tuning", 1)

	// WHEN
	rec := request(http.MethodGet, "/loop/api-tuning/tuning/", "")

	// THEN
	assert.Equal(t, http.StatusOK, rec.Code)
	var result pid.Tuning
	err := json.Unmarshal(rec.Body.Bytes(), &result)
	assert.NoError(t, err)
	assert.Equal(t, 0.5, result.KP)
	assert.Equal(t, pid.ActionReverse, result.Action)
}

func TestGetLoopTrend(t *testing.T) {
	// GIVEN
	registerLoop(t, "api-trend", 1)

	// WHEN
	rec := request(http.MethodGet, "/loop/api-trend/trend/", "")

	// THEN
	assert.Equal(t, http.StatusOK, rec.Code)
	var rows []trend.Row
	err := json.Unmarshal(rec.Body.Bytes(), &rows)
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].Index)
	assert.Equal(t, 1.0, rows[0].PV)
	assert.Equal(t, 2.0, rows[1].PV)
}

func TestPostLoopEvent(t *testing.T) {
	// GIVEN
	source := registerLoop(t, "api-event", 1)

	// WHEN
	rec := request(http.MethodPost, "/loop/api-event/event/", `{"event": "step -0.1"}`)

	// THEN
	assert.Equal(t, http.StatusAccepted, rec.Code)
	event, ok := source.Poll()
	assert.True(t, ok)
	assert.Equal(t, tuning.Step(-0.1), event)
}

func TestPostLoopEvent_InvalidEvent(t *testing.T) {
	// GIVEN
	registerLoop(t, "api-event-invalid", 1)

	// WHEN
	rec := request(http.MethodPost, "/loop/api-event-invalid/event/", `{"event": "step 2"}`)

	// THEN
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unsupported step value '2'")
}

func TestPostLoopEvent_UnknownLoop(t *testing.T) {
	// WHEN
	rec := request(http.MethodPost, "/loop/missing/event/", `{"event": "auto"}`)

	// THEN
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPostLoopEvent_QueueFull(t *testing.T) {
	// GIVEN
	source := registerLoop(t, "api-event-full", 1)
	source.Send(tuning.Event{Kind: tuning.EventManual})

	// WHEN
	rec := request(http.MethodPost, "/loop/api-event-full/event/", `{"event": "auto"}`)

	// THEN
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
