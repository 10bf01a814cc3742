package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lottery-data-backend/internal/features/lottery/models"
	"lottery-data-backend/internal/features/lottery/repository/file"
	"lottery-data-backend/internal/features/lottery/service"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo, err := file.New(t.TempDir())
	require.NoError(t, err)

	handler := NewLotteryHandler(service.NewLotteryService(repo))
	router := gin.New()
	handler.RegisterRoutes(router.Group("/api/v1"))
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestValidateEndpoint_FreshInstall(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/lottery/validate", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp ValidateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Valid)
}

func TestSaveAndLoadEndpoints(t *testing.T) {
	router := newTestRouter(t)
	state := models.DefaultState()

	w := doRequest(t, router, http.MethodPut, "/api/v1/lottery/data", state)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, router, http.MethodGet, "/api/v1/lottery/data", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var loaded models.State
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loaded))
	assert.Equal(t, state.CurrentCycle.ID, loaded.CurrentCycle.ID)
	assert.Len(t, loaded.AvailablePrizes, 6)
}

func TestSaveEndpoint_RejectsBadPayload(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/lottery/data", bytes.NewReader([]byte("not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBackupEndpoint_NoDataFile(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/api/v1/lottery/backups", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBackupAndRestoreEndpoints(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodPut, "/api/v1/lottery/data", models.DefaultState())
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, router, http.MethodPost, "/api/v1/lottery/backups", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var backup BackupResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &backup))
	require.NotEmpty(t, backup.BackupPath)

	w = doRequest(t, router, http.MethodPost, "/api/v1/lottery/restore", RestoreRequest{BackupPath: backup.BackupPath})
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRestoreEndpoint_MissingCandidate(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/api/v1/lottery/restore",
		RestoreRequest{BackupPath: filepath.Join(t.TempDir(), "gone.json")})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
