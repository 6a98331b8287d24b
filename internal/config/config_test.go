package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/terraincognita07/cyclelens/internal/security"
)

func TestResolvePort(t *testing.T) {
	port, err := ResolvePort("")
	require.NoError(t, err)
	assert.Equal(t, "8080", port)

	port, err = ResolvePort("9090")
	require.NoError(t, err)
	assert.Equal(t, "9090", port)

	for _, raw := range []string{"0", "70000", "not-a-number"} {
		_, err := ResolvePort(raw)
		assert.ErrorIsf(t, err, ErrInvalidPort, "port %q", raw)
	}
}

func TestResolveSecretKey(t *testing.T) {
	secret, err := ResolveSecretKey("")
	require.NoError(t, err)
	assert.Empty(t, secret)

	for _, raw := range []string{"change_me_in_production", "replace_with_at_least_32_random_characters", "too-short-secret"} {
		_, err := ResolveSecretKey(raw)
		assert.ErrorIsf(t, err, ErrInsecureSecret, "secret %q", raw)
	}

	valid := "0123456789abcdef0123456789abcdef"
	secret, err = ResolveSecretKey(valid)
	require.NoError(t, err)
	assert.Equal(t, valid, secret)
}

func TestLoadDefaults(t *testing.T) {
	chdirForTest(t, t.TempDir())
	for _, key := range []string{"PORT", "DB_PATH", "TZ", "SECRET_KEY", "REFRESH_INTERVAL", "FORECAST_CYCLES", "CONCERNING_SYMPTOMS"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, filepath.Join("data", "cyclelens.db"), cfg.DBPath)
	assert.Equal(t, time.UTC.String(), cfg.Location.String())
	assert.Equal(t, time.Second, cfg.RefreshInterval)
	assert.Equal(t, []string{"Severe cramps", "Excessive bleeding", "Intense pain"}, cfg.ConcerningSymptoms)

	options := cfg.AnalyticsOptions()
	assert.Equal(t, 3, options.ForecastCycles)
	assert.Equal(t, 5, options.MinimumRecords)
}

func TestLoadReadsEnvironmentOverrides(t *testing.T) {
	chdirForTest(t, t.TempDir())
	t.Setenv("PORT", "9191")
	t.Setenv("TZ", "Europe/Berlin")
	t.Setenv("REFRESH_INTERVAL", "250ms")
	t.Setenv("FORECAST_CYCLES", "6")
	t.Setenv("FORECAST_PERIOD_DAYS", "5")
	t.Setenv("CONCERNING_SYMPTOMS", " Migraine , ,Fainting")
	t.Setenv("TELEGRAM_NOTIFY_FERTILITY", "false")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "9191", cfg.Port)
	assert.Equal(t, "Europe/Berlin", cfg.Location.String())
	assert.Equal(t, 250*time.Millisecond, cfg.RefreshInterval)
	assert.False(t, cfg.FertilityReminder)

	options := cfg.AnalyticsOptions()
	assert.Equal(t, 6, options.ForecastCycles)
	assert.Equal(t, 5, options.ForecastPeriodDays)
	assert.Equal(t, []string{"Migraine", "Fainting"}, options.Rules.ConcerningSymptoms)
}

func TestLoadReadsDotEnvAndConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdirForTest(t, dir)
	require.NoError(t, os.Unsetenv("DB_PATH"))
	require.NoError(t, os.Unsetenv("LOG_LEVEL"))
	t.Cleanup(func() {
		_ = os.Unsetenv("DB_PATH")
	})

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DB_PATH=from-dotenv.db\n"), 0o644))
	configPath := filepath.Join(dir, "cyclelens.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("LOG_LEVEL: debug\n"), 0o644))

	cfg, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	chdirForTest(t, t.TempDir())

	t.Setenv("TZ", "Mars/Olympus")
	_, err := Load("")
	assert.ErrorIs(t, err, ErrInvalidLocation)

	t.Setenv("TZ", "UTC")
	t.Setenv("TELEGRAM_PERIOD_REMINDER_DAYS", "40")
	_, err = Load("")
	assert.ErrorIs(t, err, ErrInvalidReminders)

	t.Setenv("TELEGRAM_PERIOD_REMINDER_DAYS", "2")
	t.Setenv("API_PASSWORD_HASH", "not-a-bcrypt-hash")
	_, err = Load("")
	assert.ErrorIs(t, err, security.ErrInvalidPasswordHash)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

// chdirForTest changes the working directory for the rest of the test and
// restores the previous one on cleanup.
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	previous, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(previous) })
}
