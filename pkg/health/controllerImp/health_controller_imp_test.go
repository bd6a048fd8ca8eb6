package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pestplan/database"
)

func TestRootHealth(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	before := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, NewHealthCtrl(nil).Root(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Status string `json:"status"`
		Time   string `json:"time"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "ok", out.Status)

	ts, err := time.Parse(time.RFC3339, out.Time)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, ts.Location())
	assert.False(t, ts.Before(before))
}

func TestDeepHealth(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, NewHealthCtrl(database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))).Health(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	require.NoError(t, NewHealthCtrl(nil).Health(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
