package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calebmaier/taskline-api/internal/config"
	"github.com/calebmaier/taskline-api/internal/mocks"
	"github.com/calebmaier/taskline-api/internal/service"
)

// newTestApplication wires the full router and service stack over an
// in-memory store, so the lifecycle below exercises everything except the
// physical database.
func newTestApplication(t *testing.T) *application {
	t.Helper()

	logger := slog.Default()
	taskStore := mocks.NewInMemoryTaskStore()

	return &application{
		config: &config.Config{
			Server:   config.ServerConfig{Port: 8080, LogLevel: "info"},
			Database: config.DatabaseConfig{URL: "postgres://test", Table: "tasks"},
		},
		logger:      logger,
		taskStore:   taskStore,
		taskService: service.NewTaskService(taskStore, logger),
	}
}

func do(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// TestTaskLifecycle walks a task through create, read, update, and delete
// over the real routes.
func TestTaskLifecycle(t *testing.T) {
	app := newTestApplication(t)
	router := app.setupRouter()

	// Empty collection serializes as an array.
	rec := do(t, router, http.MethodGet, "/tasks", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))

	// Create assigns id 1 and defaults completed to false.
	rec = do(t, router, http.MethodPost, "/tasks", `{"title":"buy milk"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":1,"title":"buy milk","completed":false}`, rec.Body.String())

	// The created task is readable by id.
	rec = do(t, router, http.MethodGet, "/tasks/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"title":"buy milk","completed":false}`, rec.Body.String())

	// A partial update flips completed and leaves the title alone.
	rec = do(t, router, http.MethodPut, "/tasks/1", `{"completed":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"title":"buy milk","completed":true}`, rec.Body.String())

	// Delete succeeds with no body.
	rec = do(t, router, http.MethodDelete, "/tasks/1", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	// The task is gone.
	rec = do(t, router, http.MethodGet, "/tasks/1", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var errResp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, "task not found", errResp.Error)
}

func TestTaskLifecycle_IDsAreSequential(t *testing.T) {
	app := newTestApplication(t)
	router := app.setupRouter()

	for i, title := range []string{"first", "second", "third"} {
		rec := do(t, router, http.MethodPost, "/tasks", `{"title":"`+title+`"}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		var task struct {
			ID int64 `json:"id"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &task))
		assert.Equal(t, int64(i+1), task.ID)
	}

	// Deleting the highest id frees it for the next create.
	rec := do(t, router, http.MethodDelete, "/tasks/3", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, router, http.MethodPost, "/tasks", `{"title":"fourth"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var task struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &task))
	assert.Equal(t, int64(3), task.ID)
}

func TestTaskLifecycle_InvalidRequests(t *testing.T) {
	app := newTestApplication(t)
	router := app.setupRouter()

	// Non-numeric id.
	rec := do(t, router, http.MethodGet, "/tasks/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Missing title on create.
	rec = do(t, router, http.MethodPost, "/tasks", `{"completed":true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Update of an absent task.
	rec = do(t, router, http.MethodPut, "/tasks/99", `{"completed":true}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Double delete: the second one finds nothing.
	rec = do(t, router, http.MethodPost, "/tasks", `{"title":"once"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = do(t, router, http.MethodDelete, "/tasks/1", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(t, router, http.MethodDelete, "/tasks/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApplication(t)
	router := app.setupRouter()

	rec := do(t, router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}
