package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"github.com/terraincognita07/cyclelens/internal/security"
	"github.com/terraincognita07/cyclelens/internal/services"
)

const minSecretKeyLength = 32

var (
	ErrInvalidPort      = errors.New("invalid port")
	ErrInsecureSecret   = errors.New("insecure secret key")
	ErrInvalidLocation  = errors.New("invalid time zone")
	ErrInvalidReminders = errors.New("invalid reminder settings")
)

var insecureSecretPlaceholders = []string{
	"change_me_in_production",
	"replace_with_at_least_32_random_characters",
}

// AppConfig holds the resolved runtime settings.
type AppConfig struct {
	Port            string
	DBPath          string
	Location        *time.Location
	SecretKey       string
	PasswordHash    string
	LogLevel        string
	LogsFolder      string
	RefreshInterval time.Duration

	TelegramBotToken   string
	TelegramChatID     string
	PeriodReminderDays int
	FertilityReminder  bool
	ForecastCycles     int
	ForecastPeriodDays int
	ConcerningSymptoms []string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_PATH", filepath.Join("data", "cyclelens.db"))
	v.SetDefault("TZ", "UTC")
	v.SetDefault("SECRET_KEY", "")
	v.SetDefault("API_PASSWORD_HASH", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOGS_FOLDER", "logs")
	v.SetDefault("REFRESH_INTERVAL", services.DefaultRefreshInterval.String())
	v.SetDefault("TELEGRAM_BOT_TOKEN", "")
	v.SetDefault("TELEGRAM_CHAT_ID", "")
	v.SetDefault("TELEGRAM_PERIOD_REMINDER_DAYS", 2)
	v.SetDefault("TELEGRAM_NOTIFY_FERTILITY", true)
	v.SetDefault("FORECAST_CYCLES", 3)
	v.SetDefault("FORECAST_PERIOD_DAYS", 0)
	v.SetDefault("CONCERNING_SYMPTOMS", strings.Join(services.DefaultScoringRules().ConcerningSymptoms, ","))
}

// Load reads .env (when present), an optional config file and the
// environment, in increasing priority.
func Load(configFile string) (*AppConfig, error) {
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("loaded .env from working directory")
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*AppConfig, error) {
	port, err := ResolvePort(v.GetString("PORT"))
	if err != nil {
		return nil, err
	}
	secret, err := ResolveSecretKey(v.GetString("SECRET_KEY"))
	if err != nil {
		return nil, err
	}
	passwordHash, err := security.ValidatePasswordHash(v.GetString("API_PASSWORD_HASH"))
	if err != nil {
		return nil, err
	}
	location, err := time.LoadLocation(strings.TrimSpace(v.GetString("TZ")))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLocation, err)
	}

	refresh := v.GetDuration("REFRESH_INTERVAL")
	if refresh <= 0 {
		refresh = services.DefaultRefreshInterval
	}

	reminderDays := v.GetInt("TELEGRAM_PERIOD_REMINDER_DAYS")
	if reminderDays < 0 || reminderDays > 10 {
		return nil, fmt.Errorf("%w: TELEGRAM_PERIOD_REMINDER_DAYS=%d", ErrInvalidReminders, reminderDays)
	}

	return &AppConfig{
		Port:               port,
		DBPath:             v.GetString("DB_PATH"),
		Location:           location,
		SecretKey:          secret,
		PasswordHash:       passwordHash,
		LogLevel:           v.GetString("LOG_LEVEL"),
		LogsFolder:         v.GetString("LOGS_FOLDER"),
		RefreshInterval:    refresh,
		TelegramBotToken:   strings.TrimSpace(v.GetString("TELEGRAM_BOT_TOKEN")),
		TelegramChatID:     strings.TrimSpace(v.GetString("TELEGRAM_CHAT_ID")),
		PeriodReminderDays: reminderDays,
		FertilityReminder:  v.GetBool("TELEGRAM_NOTIFY_FERTILITY"),
		ForecastCycles:     v.GetInt("FORECAST_CYCLES"),
		ForecastPeriodDays: v.GetInt("FORECAST_PERIOD_DAYS"),
		ConcerningSymptoms: splitList(v.GetString("CONCERNING_SYMPTOMS")),
	}, nil
}

func ResolvePort(raw string) (string, error) {
	port := strings.TrimSpace(raw)
	if port == "" {
		return "8080", nil
	}
	value, err := strconv.Atoi(port)
	if err != nil || value < 1 || value > 65535 {
		return "", fmt.Errorf("%w: %q", ErrInvalidPort, raw)
	}
	return port, nil
}

// ResolveSecretKey accepts an empty key, which leaves the API open.
func ResolveSecretKey(raw string) (string, error) {
	secret := strings.TrimSpace(raw)
	if secret == "" {
		return "", nil
	}
	for _, placeholder := range insecureSecretPlaceholders {
		if strings.EqualFold(secret, placeholder) {
			return "", fmt.Errorf("%w: placeholder value", ErrInsecureSecret)
		}
	}
	if len(secret) < minSecretKeyLength {
		return "", fmt.Errorf("%w: must be at least %d characters", ErrInsecureSecret, minSecretKeyLength)
	}
	return secret, nil
}

// AnalyticsOptions maps the forecast and scoring settings onto the engine.
func (cfg *AppConfig) AnalyticsOptions() services.AnalyticsOptions {
	options := services.DefaultAnalyticsOptions()
	if cfg.ForecastCycles > 0 {
		options.ForecastCycles = cfg.ForecastCycles
	}
	if cfg.ForecastPeriodDays > 0 {
		options.ForecastPeriodDays = cfg.ForecastPeriodDays
	}
	if len(cfg.ConcerningSymptoms) > 0 {
		options.Rules = services.ScoringRules{ConcerningSymptoms: cfg.ConcerningSymptoms}
	}
	return options
}

func (cfg *AppConfig) ReminderOptions() services.ReminderOptions {
	return services.ReminderOptions{
		PeriodReminderDays: cfg.PeriodReminderDays,
		FertilityReminder:  cfg.FertilityReminder,
		Location:           cfg.Location,
	}
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
