package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmuseum/collections-import/internal/store"
)

func setupHTTPTestStore(t *testing.T) (*store.Store, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_http_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	st, err := store.Open(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		os.Remove(dbPath)
	}
	return st, cleanup
}

func TestHealthController_Status(t *testing.T) {
	t.Run("returns healthy when database is connected", func(t *testing.T) {
		st, cleanup := setupHTTPTestStore(t)
		defer cleanup()

		controller := NewHealthController(st, "1.0.0")

		router := gin.New()
		router.GET("/health", controller.Status)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/health", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response HealthResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)

		assert.Equal(t, "healthy", response.Status)
		assert.Equal(t, "1.0.0", response.Version)
		assert.Equal(t, "ok", response.Checks["database"])
		assert.NotEmpty(t, response.Time)
	})

	t.Run("reports missing database", func(t *testing.T) {
		gin.SetMode(gin.TestMode)

		controller := NewHealthController(nil, "1.0.0")

		router := gin.New()
		router.GET("/health", controller.Status)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/health", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "not configured", response.Checks["database"])
	})
}

func TestImportsController_List(t *testing.T) {
	st, cleanup := setupHTTPTestStore(t)
	defer cleanup()

	checkpoints := store.NewCheckpoints(st.DB())

	status, err := checkpoints.Get("emu import specimens")
	require.NoError(t, err)
	status.CachedResult = []int64{1, 2, 3, 4}
	status.CurrentOffset = 1
	require.NoError(t, checkpoints.Save(status))

	finished, err := checkpoints.Get("emu import items")
	require.NoError(t, err)
	require.NoError(t, checkpoints.Finish(finished, time.Date(2024, 6, 15, 2, 0, 0, 0, time.UTC)))

	controller := NewImportsController(checkpoints)

	router := gin.New()
	router.GET("/imports", controller.List)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/imports", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []ImportStatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 2)

	// Ordered by import type: items before specimens.
	assert.Equal(t, "emu import items", response[0].ImportType)
	assert.True(t, response[0].IsFinished)
	assert.NotNil(t, response[0].PreviousDateRun)

	assert.Equal(t, "emu import specimens", response[1].ImportType)
	assert.False(t, response[1].IsFinished)
	assert.Equal(t, 1, response[1].CurrentOffset)
	assert.Equal(t, 4, response[1].CachedKeys)
	assert.Equal(t, 3, response[1].Remaining)
}
