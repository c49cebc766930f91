package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fortuned/internal/models"
	"fortuned/internal/testutil"
)

func TestHealth_Ok(t *testing.T) {
	hc := NewHealthController(&testutil.MockStore{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	hc.Health(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp healthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.GreaterOrEqual(t, resp.UptimeSeconds, 0.0)
	assert.Equal(t, 0, resp.HistoryRecords)
}

func TestHealth_ReportsHistoryCount(t *testing.T) {
	store := &testutil.MockStore{Records: []models.HistoryRecord{
		{Date: "2025-09-15", Timestamp: 200},
		{Date: "2025-09-14", Timestamp: 100},
	}}
	hc := NewHealthController(store)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	hc.Health(rr, req)

	var resp healthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.HistoryRecords)
}

func TestHealth_MethodNotAllowed(t *testing.T) {
	hc := NewHealthController(&testutil.MockStore{})

	req := httptest.NewRequest(http.MethodPost, "/health", nil)
	rr := httptest.NewRecorder()

	hc.Health(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		duration time.Duration
		expected string
	}{
		{0, "0h0m0s"},
		{30 * time.Second, "0h0m30s"},
		{5 * time.Minute, "0h5m0s"},
		{90 * time.Minute, "1h30m0s"},
		{25*time.Hour + 61*time.Second, "25h1m1s"},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, formatDuration(c.duration))
	}
}
