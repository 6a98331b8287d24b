package api

import (
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/terraincognita07/cyclelens/internal/services"
)

type HandlerDependencies struct {
	Analytics    *services.AnalyticsService
	Days         *services.DayService
	Settings     *services.SettingsService
	SecretKey    string
	PasswordHash string
	Location     *time.Location
	Logger       zerolog.Logger
}

type Handler struct {
	analytics   *services.AnalyticsService
	days        *services.DayService
	settings    *services.SettingsService
	secretKey   []byte
	password    string
	location    *time.Location
	logger      zerolog.Logger
	now         func() time.Time
	authLimiter *attemptLimiter
}

func NewHandler(deps HandlerDependencies) (*Handler, error) {
	if deps.Analytics == nil || deps.Days == nil || deps.Settings == nil {
		return nil, errors.New("analytics, day and settings services are required")
	}
	location := deps.Location
	if location == nil {
		location = time.UTC
	}

	return &Handler{
		analytics:   deps.Analytics,
		days:        deps.Days,
		settings:    deps.Settings,
		secretKey:   []byte(deps.SecretKey),
		password:    deps.PasswordHash,
		location:    location,
		logger:      deps.Logger.With().Str("component", "api").Logger(),
		now:         time.Now,
		authLimiter: newAttemptLimiter(authFailureLimit, authFailureWindow),
	}, nil
}

// today is the current calendar day in the configured location.
func (handler *Handler) today() time.Time {
	return services.CalendarDay(services.DateAtLocation(handler.now(), handler.location))
}
