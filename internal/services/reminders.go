package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultReminderInterval   = 6 * time.Hour
	defaultPeriodReminderDays = 2
	maxRememberedReminders    = 500
)

type ReminderSender interface {
	Send(ctx context.Context, message string) error
}

type ReminderOptions struct {
	PeriodReminderDays int
	FertilityReminder  bool
	Interval           time.Duration
	Location           *time.Location
}

type ReminderService struct {
	source  RecordSource
	sender  ReminderSender
	options ReminderOptions
	logger  zerolog.Logger
	now     func() time.Time
	trigger chan struct{}

	mu   sync.Mutex
	sent map[string]time.Time
}

func NewReminderService(source RecordSource, sender ReminderSender, options ReminderOptions, logger zerolog.Logger) *ReminderService {
	if options.Interval <= 0 {
		options.Interval = defaultReminderInterval
	}
	if options.PeriodReminderDays < 0 {
		options.PeriodReminderDays = defaultPeriodReminderDays
	}
	if options.Location == nil {
		options.Location = time.UTC
	}
	return &ReminderService{
		source:  source,
		sender:  sender,
		options: options,
		logger:  logger.With().Str("component", "reminders").Logger(),
		now:     time.Now,
		trigger: make(chan struct{}, 1),
		sent:    make(map[string]time.Time),
	}
}

// Notify schedules an extra check, typically after the store changed.
func (service *ReminderService) Notify(ChangeToken) {
	select {
	case service.trigger <- struct{}{}:
	default:
	}
}

func (service *ReminderService) Run(ctx context.Context) error {
	if service.sender == nil {
		service.logger.Info().Msg("reminders disabled")
		return nil
	}

	ticker := time.NewTicker(service.options.Interval)
	defer ticker.Stop()

	service.Check(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			service.Check(ctx)
		case <-service.trigger:
			service.Check(ctx)
		}
	}
}

// Check sends the reminders due today. It returns the messages it sent.
func (service *ReminderService) Check(ctx context.Context) []string {
	config, err := service.source.LoadCycleConfig(ctx)
	if err != nil {
		service.logger.Error().Err(err).Msg("load cycle config failed")
		return nil
	}
	if config == nil {
		return nil
	}
	records, err := service.source.LoadDailyRecords(ctx)
	if err != nil {
		service.logger.Error().Err(err).Msg("load daily records failed")
		return nil
	}

	resolved := *config
	resolved.LastPeriodDate = EffectivePeriodStart(*config, records)
	today := CalendarDay(service.now().In(service.options.Location))
	phase := CalculatePhase(today, resolved)

	due := make([]reminder, 0, 2)
	daysUntilPeriod := resolved.AverageCycleLength - phase.DayOfCycle + 1
	if daysUntilPeriod == service.options.PeriodReminderDays {
		nextPeriod := AddDays(today, daysUntilPeriod)
		due = append(due, reminder{
			key:     "period:" + FormatDay(today),
			message: fmt.Sprintf("Reminder: your predicted period starts in %d day(s) on %s.", daysUntilPeriod, nextPeriod.Format("Jan 2")),
		})
	}
	// The fertile window is taken from the same prediction the report shows,
	// anchored on the start of the cycle today falls in.
	cycleStart := AddDays(today, -(phase.DayOfCycle - 1))
	fertileStart := PredictNextCycle(resolved, cycleStart, ReportFertileWindow).FertileWindowStart
	if service.options.FertilityReminder && sameCalendarDay(fertileStart, today) {
		due = append(due, reminder{
			key:     "fertility:" + FormatDay(today),
			message: fmt.Sprintf("Reminder: your fertile window starts today (%s).", today.Format("Jan 2")),
		})
	}

	sent := make([]string, 0, len(due))
	for _, item := range due {
		if !service.shouldSend(item.key, today) {
			continue
		}
		if err := service.sender.Send(ctx, item.message); err != nil {
			service.logger.Error().Err(err).Str("reminder", item.key).Msg("send reminder failed")
			continue
		}
		sent = append(sent, item.message)
	}
	return sent
}

type reminder struct {
	key     string
	message string
}

func (service *ReminderService) shouldSend(key string, today time.Time) bool {
	service.mu.Lock()
	defer service.mu.Unlock()

	if sentOn, ok := service.sent[key]; ok && sameCalendarDay(sentOn, today) {
		return false
	}
	service.sent[key] = today
	if len(service.sent) > maxRememberedReminders {
		service.sent = map[string]time.Time{key: today}
	}
	return true
}

type TelegramSender struct {
	botToken string
	chatID   string
	endpoint string
	client   *http.Client
}

// NewTelegramSender returns nil when either credential is missing, which
// disables reminders.
func NewTelegramSender(botToken string, chatID string) ReminderSender {
	if strings.TrimSpace(botToken) == "" || strings.TrimSpace(chatID) == "" {
		return nil
	}
	return &TelegramSender{
		botToken: botToken,
		chatID:   chatID,
		endpoint: "https://api.telegram.org",
		client:   &http.Client{Timeout: 8 * time.Second},
	}
}

func (sender *TelegramSender) Send(ctx context.Context, message string) error {
	values := url.Values{}
	values.Set("chat_id", sender.chatID)
	values.Set("text", message)

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", sender.endpoint, sender.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(values.Encode()))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := sender.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("telegram status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
