package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/terraincognita07/cyclelens/internal/db"
	"github.com/terraincognita07/cyclelens/internal/services"
	"gorm.io/gorm"
)

const testSecretKey = "0123456789abcdef0123456789abcdef"

var testNow = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

type testApp struct {
	app      *fiber.App
	handler  *Handler
	database *gorm.DB
	repos    *db.Repositories
}

func newTestApp(t *testing.T, secret string) *testApp {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close(database)
	})

	repos := db.NewRepositories(database)
	handler, err := NewHandler(HandlerDependencies{
		Analytics: services.NewAnalyticsService(repos, services.DefaultAnalyticsOptions(), zerolog.Nop()),
		Days:      services.NewDayService(repos.DailyLogs, repos.CycleConfigs),
		Settings:  services.NewSettingsService(repos.CycleConfigs),
		SecretKey: secret,
		Logger:    zerolog.Nop(),
	})
	require.NoError(t, err)
	handler.now = func() time.Time { return testNow }

	app := fiber.New()
	RegisterRoutes(app, handler)
	return &testApp{app: app, handler: handler, database: database, repos: repos}
}

func (ta *testApp) do(t *testing.T, method string, target string, body any, headers map[string]string) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, target, reader)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		request.Header.Set(key, value)
	}

	response, err := ta.app.Test(request, -1)
	require.NoError(t, err)
	defer response.Body.Close()

	payload, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	return response.StatusCode, payload
}

func decodeJSON[T any](t *testing.T, payload []byte) T {
	t.Helper()

	var value T
	require.NoError(t, json.Unmarshal(payload, &value), string(payload))
	return value
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}
