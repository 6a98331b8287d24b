package api

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/terraincognita07/cyclelens/internal/services"
)

func TestHealth(t *testing.T) {
	ta := newTestApp(t, "")

	status, body := ta.do(t, http.MethodGet, "/healthz", nil, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestUnknownRouteReturnsJSONError(t *testing.T) {
	ta := newTestApp(t, "")

	status, body := ta.do(t, http.MethodGet, "/api/nope", nil, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `{"error":"not found"}`, string(body))
}

func TestAnalyticsOnEmptyStoreReportsNoData(t *testing.T) {
	ta := newTestApp(t, "")

	status, body := ta.do(t, http.MethodGet, "/api/analytics", nil, nil)
	require.Equal(t, http.StatusOK, status, string(body))

	report := decodeJSON[services.AnalyticsReport](t, body)
	assert.Equal(t, services.ReportStatusNoData, report.Status)
	assert.Equal(t, services.DefaultWindow, report.Window)
	assert.Equal(t, "2024-03-15", report.GeneratedFor)
	assert.Equal(t, services.InsufficientDataText, report.Prediction.NextPeriod)
}

func TestAnalyticsRejectsBadQuery(t *testing.T) {
	ta := newTestApp(t, "")

	status, body := ta.do(t, http.MethodGet, "/api/analytics?window=fortnight", nil, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"error":"invalid window"}`, string(body))

	status, _ = ta.do(t, http.MethodGet, "/api/analytics?date=15-03-2024", nil, nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestAnalyticsWithConfigAndFewRecordsIsInsufficient(t *testing.T) {
	ta := newTestApp(t, "")

	status, body := ta.do(t, http.MethodPut, "/api/cycle-config", map[string]any{
		"last_period_date":      "2024-01-01",
		"average_cycle_length":  28,
		"average_period_length": 5,
	}, nil)
	require.Equal(t, http.StatusOK, status, string(body))

	for _, day := range []string{"2024-01-01", "2024-01-02"} {
		status, body = ta.do(t, http.MethodPut, "/api/days/"+day, map[string]any{"flow": "medium"}, nil)
		require.Equal(t, http.StatusOK, status, string(body))
	}

	status, body = ta.do(t, http.MethodGet, "/api/analytics?window=all&date=2024-01-10", nil, nil)
	require.Equal(t, http.StatusOK, status, string(body))

	report := decodeJSON[services.AnalyticsReport](t, body)
	assert.Equal(t, services.ReportStatusInsufficientData, report.Status)
	assert.Equal(t, 2, report.RecordCount)
	assert.Equal(t, "2024-01-29", report.Prediction.NextPeriod)
	assert.Equal(t, "2024-01-10", report.GeneratedFor)
	assert.Len(t, report.FutureCycles, 3)
}

func TestAnalyticsReportsCorruptedStore(t *testing.T) {
	ta := newTestApp(t, "")
	require.NoError(t, ta.database.Exec(
		`INSERT INTO daily_logs (day, symptoms, mood, flow, notes) VALUES ('2024-03-01', '{broken', '', 'none', '')`,
	).Error)

	status, body := ta.do(t, http.MethodGet, "/api/analytics", nil, nil)
	require.Equal(t, http.StatusOK, status, string(body))

	report := decodeJSON[services.AnalyticsReport](t, body)
	assert.Equal(t, services.ReportStatusDataCorrupted, report.Status)

	status, _ = ta.do(t, http.MethodGet, "/api/days", nil, nil)
	assert.Equal(t, http.StatusConflict, status)
}

func TestAnalyticsChanges(t *testing.T) {
	ta := newTestApp(t, "")

	status, body := ta.do(t, http.MethodGet, "/api/analytics/changes?since=0", nil, nil)
	require.Equal(t, http.StatusOK, status)
	initial := decodeJSON[struct {
		Changed bool  `json:"changed"`
		Token   int64 `json:"token"`
	}](t, body)
	assert.False(t, initial.Changed)

	status, _ = ta.do(t, http.MethodPut, "/api/days/2024-03-01", map[string]any{"mood": "Calm"}, nil)
	require.Equal(t, http.StatusOK, status)

	status, body = ta.do(t, http.MethodGet, fmt.Sprintf("/api/analytics/changes?since=%d", initial.Token), nil, nil)
	require.Equal(t, http.StatusOK, status)
	after := decodeJSON[struct {
		Changed bool  `json:"changed"`
		Token   int64 `json:"token"`
	}](t, body)
	assert.True(t, after.Changed)
	assert.Greater(t, after.Token, initial.Token)

	status, _ = ta.do(t, http.MethodGet, "/api/analytics/changes?since=abc", nil, nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestDaysLifecycle(t *testing.T) {
	ta := newTestApp(t, "")

	status, body := ta.do(t, http.MethodPut, "/api/days/2024-03-02", map[string]any{
		"flow":     "Heavy",
		"mood":     " Tired ",
		"symptoms": []string{"Cramps", " Cramps ", "Headache", ""},
		"notes":    "long day",
	}, nil)
	require.Equal(t, http.StatusOK, status, string(body))
	assert.JSONEq(t, `{"date":"2024-03-02","flow":"heavy","mood":"Tired","symptoms":["Cramps","Headache"],"notes":"long day"}`, string(body))

	status, _ = ta.do(t, http.MethodPut, "/api/days/2024-03-01", map[string]any{}, nil)
	require.Equal(t, http.StatusOK, status)

	status, body = ta.do(t, http.MethodGet, "/api/days?from=2024-03-02", nil, nil)
	require.Equal(t, http.StatusOK, status)
	days := decodeJSON[[]dayResponse](t, body)
	require.Len(t, days, 1)
	assert.Equal(t, "2024-03-02", days[0].Date)

	status, _ = ta.do(t, http.MethodDelete, "/api/days/2024-03-02", nil, nil)
	assert.Equal(t, http.StatusNoContent, status)
	status, _ = ta.do(t, http.MethodDelete, "/api/days/2024-03-02", nil, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestDaysValidation(t *testing.T) {
	ta := newTestApp(t, "")

	tests := []struct {
		name    string
		method  string
		target  string
		body    any
		status  int
		message string
	}{
		{name: "bad flow", method: http.MethodPut, target: "/api/days/2024-03-01", body: map[string]any{"flow": "torrential"}, status: http.StatusBadRequest, message: "invalid flow value"},
		{name: "future day", method: http.MethodPut, target: "/api/days/2024-03-16", body: map[string]any{}, status: http.StatusBadRequest, message: "date is in the future"},
		{name: "bad date", method: http.MethodPut, target: "/api/days/yesterday", body: map[string]any{}, status: http.StatusBadRequest, message: "invalid date"},
		{name: "bad from", method: http.MethodGet, target: "/api/days?from=nope", status: http.StatusBadRequest, message: "invalid from date"},
		{name: "reversed range", method: http.MethodGet, target: "/api/days?from=2024-03-02&to=2024-03-01", status: http.StatusBadRequest, message: "invalid range"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			status, body := ta.do(t, test.method, test.target, test.body, nil)
			assert.Equal(t, test.status, status)
			assert.JSONEq(t, fmt.Sprintf(`{"error":%q}`, test.message), string(body))
		})
	}
}

func TestCycleConfigEndpoints(t *testing.T) {
	ta := newTestApp(t, "")

	status, _ := ta.do(t, http.MethodGet, "/api/cycle-config", nil, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, body := ta.do(t, http.MethodPut, "/api/cycle-config", map[string]any{
		"last_period_date":      "2024-03-01",
		"average_cycle_length":  45,
		"average_period_length": 5,
	}, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"error":"cycle length out of range"}`, string(body))

	status, body = ta.do(t, http.MethodPut, "/api/cycle-config", map[string]any{
		"last_period_date":      "2024-04-01",
		"average_cycle_length":  28,
		"average_period_length": 5,
	}, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"error":"invalid last period date"}`, string(body))

	status, body = ta.do(t, http.MethodPut, "/api/cycle-config", map[string]any{
		"last_period_date":      "2024-03-01",
		"average_cycle_length":  30,
		"average_period_length": 4,
	}, nil)
	require.Equal(t, http.StatusOK, status, string(body))

	status, body = ta.do(t, http.MethodGet, "/api/cycle-config", nil, nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"last_period_date":"2024-03-01","average_cycle_length":30,"average_period_length":4}`, string(body))
}

func TestLoggingNewPeriodAdvancesConfiguredLastPeriod(t *testing.T) {
	ta := newTestApp(t, "")

	status, _ := ta.do(t, http.MethodPut, "/api/cycle-config", map[string]any{
		"last_period_date":      "2024-02-01",
		"average_cycle_length":  28,
		"average_period_length": 5,
	}, nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = ta.do(t, http.MethodPut, "/api/days/2024-03-01", map[string]any{"flow": "light"}, nil)
	require.Equal(t, http.StatusOK, status)

	config, err := ta.repos.CycleConfigs.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, config)
	assert.Equal(t, "2024-03-01", config.LastPeriodDate.Format(time.DateOnly))
}
